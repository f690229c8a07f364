package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"cens-backend/internal/drive"
	"cens-backend/internal/forms"
	"cens-backend/internal/store"
)

// fakeStorage records every upload and lets tests fail calls whose
// generated name starts with failPrefix.
type fakeStorage struct {
	mu         sync.Mutex
	names      []string
	failPrefix string
	failAll    bool
}

func (f *fakeStorage) Upload(_ context.Context, _ []byte, name, mimeType, folderID string) (*drive.UploadedFile, error) {
	f.mu.Lock()
	f.names = append(f.names, name)
	f.mu.Unlock()

	if f.failAll || (f.failPrefix != "" && strings.HasPrefix(name, f.failPrefix)) {
		return nil, errors.New("storage unavailable")
	}
	return &drive.UploadedFile{
		ID:       "file-" + name,
		Name:     name,
		MimeType: mimeType,
		ViewURL:  "https://store.example/view/" + name,
	}, nil
}

func (f *fakeStorage) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.names)
}

func (f *fakeStorage) allNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

type fakeNotifier struct {
	mu       sync.Mutex
	calls    int
	lastURL  string
	payloads []any
	err      error
}

func (f *fakeNotifier) Notify(_ context.Context, webhookURL string, payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastURL = webhookURL
	f.payloads = append(f.payloads, payload)
	return f.err
}

func pdfBlob(size int) *forms.FileBlob {
	return &forms.FileBlob{Data: make([]byte, size), Filename: "doc.pdf", MimeType: forms.MimePDF, Size: int64(size)}
}

var pipelineSlots = []forms.SlotSpec{
	{Name: "idScan", Required: true, MaxBytes: 10 * forms.MB, MimeTypes: []string{forms.MimePDF}, NamePrefix: "student-ids"},
	{Name: "paymentProof", Required: true, MaxBytes: 20 * forms.MB, MimeTypes: []string{forms.MimePDF}, NamePrefix: "payment-proof"},
}

func pipelineFiles() map[string]*forms.FileBlob {
	return map[string]*forms.FileBlob{
		"idScan":       pdfBlob(1024),
		"paymentProof": pdfBlob(1024),
	}
}

func TestPipeline_Success(t *testing.T) {
	storage := &fakeStorage{}
	notifier := &fakeNotifier{}
	p := NewPipeline(storage, notifier)

	fixedTime := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	persisted := 0

	res, err := p.Execute(context.Background(), Run{
		Slots:      pipelineSlots,
		Files:      pipelineFiles(),
		FolderID:   "folder-1",
		NameHint:   "Success",
		WebhookURL: "https://hooks.example/sheet",
		Persist: func(_ context.Context, files map[string]*drive.UploadedFile) (uint, time.Time, error) {
			persisted++
			if len(files) != 2 {
				t.Fatalf("persist must see every uploaded file, got %d", len(files))
			}
			return 42, fixedTime, nil
		},
		Notification: func(id uint, createdAt time.Time, _ map[string]*drive.UploadedFile) any {
			return map[string]any{"submissionId": id, "timestamp": createdAt}
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.SubmissionID != 42 {
		t.Errorf("unexpected submission id: %d", res.SubmissionID)
	}
	if len(res.Files) != 2 {
		t.Errorf("expected 2 uploaded files, got %d", len(res.Files))
	}
	if !res.SheetsUpdated {
		t.Error("expected sheetsUpdated true")
	}
	if persisted != 1 {
		t.Errorf("expected exactly one persist, got %d", persisted)
	}
	if storage.callCount() != 2 {
		t.Errorf("expected 2 uploads, got %d", storage.callCount())
	}
	if notifier.calls != 1 || notifier.lastURL != "https://hooks.example/sheet" {
		t.Errorf("unexpected notifier state: %d %q", notifier.calls, notifier.lastURL)
	}
}

func TestPipeline_GateRejectsBeforeAnyUpload(t *testing.T) {
	storage := &fakeStorage{}
	p := NewPipeline(storage, &fakeNotifier{})

	files := pipelineFiles()
	files["paymentProof"] = &forms.FileBlob{Data: make([]byte, 25*forms.MB), Filename: "big.pdf", MimeType: forms.MimePDF, Size: 25 * forms.MB}

	_, err := p.Execute(context.Background(), Run{
		Slots:    pipelineSlots,
		Files:    files,
		FolderID: "folder-1",
		Persist: func(context.Context, map[string]*drive.UploadedFile) (uint, time.Time, error) {
			t.Fatal("persist must not run after a gate rejection")
			return 0, time.Time{}, nil
		},
	})

	var fileErr *forms.FileError
	if !errors.As(err, &fileErr) {
		t.Fatalf("expected *forms.FileError, got %v", err)
	}
	if fileErr.Slot != "paymentProof" {
		t.Fatalf("expected paymentProof, got %q", fileErr.Slot)
	}
	if storage.callCount() != 0 {
		t.Fatalf("gate rejection must precede uploads, got %d calls", storage.callCount())
	}
}

func TestPipeline_UploadFailureSkipsPersist(t *testing.T) {
	storage := &fakeStorage{failPrefix: "payment-proof"}
	p := NewPipeline(storage, &fakeNotifier{})

	persisted := 0
	_, err := p.Execute(context.Background(), Run{
		Slots:    pipelineSlots,
		Files:    pipelineFiles(),
		FolderID: "folder-1",
		Persist: func(context.Context, map[string]*drive.UploadedFile) (uint, time.Time, error) {
			persisted++
			return 1, time.Now(), nil
		},
	})

	if !errors.Is(err, ErrUploadFailed) {
		t.Fatalf("expected ErrUploadFailed, got %v", err)
	}
	if persisted != 0 {
		t.Fatalf("no record may be persisted after an upload failure, got %d", persisted)
	}
}

func TestPipeline_PersistFailureReported(t *testing.T) {
	notifier := &fakeNotifier{}
	p := NewPipeline(&fakeStorage{}, notifier)

	_, err := p.Execute(context.Background(), Run{
		Slots:      pipelineSlots,
		Files:      pipelineFiles(),
		FolderID:   "folder-1",
		WebhookURL: "https://hooks.example/sheet",
		Persist: func(context.Context, map[string]*drive.UploadedFile) (uint, time.Time, error) {
			return 0, time.Time{}, errors.New("connection refused")
		},
		Notification: func(uint, time.Time, map[string]*drive.UploadedFile) any { return nil },
	})

	if !errors.Is(err, ErrPersistFailed) {
		t.Fatalf("expected ErrPersistFailed, got %v", err)
	}
	if notifier.calls != 0 {
		t.Fatal("relay must not run after a persist failure")
	}
}

func TestPipeline_NoDatabaseMapsToNotConfigured(t *testing.T) {
	p := NewPipeline(&fakeStorage{}, &fakeNotifier{})

	_, err := p.Execute(context.Background(), Run{
		Slots:    pipelineSlots,
		Files:    pipelineFiles(),
		FolderID: "folder-1",
		Persist: func(context.Context, map[string]*drive.UploadedFile) (uint, time.Time, error) {
			return 0, time.Time{}, store.ErrNoDatabase
		},
	})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestPipeline_NotifyFailureDoesNotFailRun(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("timeout")}
	p := NewPipeline(&fakeStorage{}, notifier)

	res, err := p.Execute(context.Background(), Run{
		Slots:      pipelineSlots,
		Files:      pipelineFiles(),
		FolderID:   "folder-1",
		WebhookURL: "https://hooks.example/sheet",
		Persist: func(context.Context, map[string]*drive.UploadedFile) (uint, time.Time, error) {
			return 7, time.Now(), nil
		},
		Notification: func(uint, time.Time, map[string]*drive.UploadedFile) any { return nil },
	})
	if err != nil {
		t.Fatalf("relay failure must not fail the run: %v", err)
	}
	if res.SheetsUpdated {
		t.Fatal("expected sheetsUpdated false")
	}
}

func TestPipeline_NoWebhookSkipsRelay(t *testing.T) {
	notifier := &fakeNotifier{}
	p := NewPipeline(&fakeStorage{}, notifier)

	res, err := p.Execute(context.Background(), Run{
		Slots:    pipelineSlots,
		Files:    pipelineFiles(),
		FolderID: "folder-1",
		Persist: func(context.Context, map[string]*drive.UploadedFile) (uint, time.Time, error) {
			return 7, time.Now(), nil
		},
		Notification: func(uint, time.Time, map[string]*drive.UploadedFile) any { return nil },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if notifier.calls != 0 {
		t.Fatal("relay must be skipped without a webhook URL")
	}
	if res.SheetsUpdated {
		t.Fatal("expected sheetsUpdated false when skipped")
	}
}

func TestPipeline_MissingStorageConfig(t *testing.T) {
	p := NewPipeline(nil, &fakeNotifier{})

	_, err := p.Execute(context.Background(), Run{
		Slots:    pipelineSlots,
		Files:    pipelineFiles(),
		FolderID: "folder-1",
		Persist: func(context.Context, map[string]*drive.UploadedFile) (uint, time.Time, error) {
			return 1, time.Now(), nil
		},
	})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured for nil storage, got %v", err)
	}

	p = NewPipeline(&fakeStorage{}, &fakeNotifier{})
	_, err = p.Execute(context.Background(), Run{
		Slots:    pipelineSlots,
		Files:    pipelineFiles(),
		FolderID: "",
		Persist: func(context.Context, map[string]*drive.UploadedFile) (uint, time.Time, error) {
			return 1, time.Now(), nil
		},
	})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured for empty folder, got %v", err)
	}
}

func TestPipeline_GeneratedNamesNeverRepeat(t *testing.T) {
	storage := &fakeStorage{}
	p := NewPipeline(storage, &fakeNotifier{})

	run := func() {
		_, err := p.Execute(context.Background(), Run{
			Slots:    pipelineSlots,
			Files:    pipelineFiles(),
			FolderID: "folder-1",
			NameHint: "Success",
			Persist: func(context.Context, map[string]*drive.UploadedFile) (uint, time.Time, error) {
				return 1, time.Now(), nil
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	run()
	run()

	names := storage.allNames()
	if len(names) != 4 {
		t.Fatalf("expected 4 uploads, got %d", len(names))
	}
	seen := map[string]bool{}
	for _, n := range names {
		if seen[n] {
			t.Fatalf("generated name repeated: %q", n)
		}
		seen[n] = true
	}
}
