package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"cens-backend/internal/drive"
	"cens-backend/internal/forms"
	"cens-backend/internal/store"

	"golang.org/x/sync/errgroup"
)

// FileStorage is the external file-store collaborator.
type FileStorage interface {
	Upload(ctx context.Context, data []byte, name, mimeType, folderID string) (*drive.UploadedFile, error)
}

// Notifier is the spreadsheet webhook collaborator.
type Notifier interface {
	Notify(ctx context.Context, webhookURL string, payload any) error
}

var (
	// ErrNotConfigured means a mandatory collaborator (storage folder,
	// database) is missing from the environment. Maps to a 500 without
	// crashing the server.
	ErrNotConfigured = errors.New("server configuration error")

	ErrUploadFailed  = errors.New("failed to upload files to storage")
	ErrPersistFailed = errors.New("failed to save submission to database")
)

// Pipeline runs the shared submission flow: gate the attachments, upload
// them concurrently, persist exactly one record, then notify the
// spreadsheet webhook best-effort. Every endpoint instantiates the same
// pipeline with its own schema, slots, folder and webhook.
type Pipeline struct {
	storage  FileStorage
	notifier Notifier
}

func NewPipeline(storage FileStorage, notifier Notifier) *Pipeline {
	return &Pipeline{storage: storage, notifier: notifier}
}

// Run parameterizes one pipeline execution.
type Run struct {
	Slots      []forms.SlotSpec
	Files      map[string]*forms.FileBlob
	FolderID   string
	NameHint   string
	WebhookURL string

	// Persist writes the single submission record once every required
	// upload has succeeded, and reports the assigned id and timestamp.
	Persist func(ctx context.Context, files map[string]*drive.UploadedFile) (uint, time.Time, error)

	// Notification builds the flattened webhook payload. Nil skips the
	// relay even when a webhook URL is configured.
	Notification func(submissionID uint, createdAt time.Time, files map[string]*drive.UploadedFile) any
}

type Result struct {
	SubmissionID  uint
	CreatedAt     time.Time
	Files         map[string]*drive.UploadedFile
	SheetsUpdated bool
}

func (p *Pipeline) Execute(ctx context.Context, run Run) (*Result, error) {
	if err := forms.CheckFiles(run.Files, run.Slots); err != nil {
		return nil, err
	}

	uploaded := make(map[string]*drive.UploadedFile)

	if p.countUploads(run) > 0 {
		if p.storage == nil || run.FolderID == "" {
			return nil, ErrNotConfigured
		}

		// Fan out one upload per present slot; wait for all, abort on the
		// first failure so no record ever references a missing file.
		var mu sync.Mutex
		g, gctx := errgroup.WithContext(ctx)
		for _, slot := range run.Slots {
			blob := run.Files[slot.Name]
			if blob == nil {
				continue
			}
			slot := slot
			g.Go(func() error {
				name := drive.UniqueFileName(namePrefix(slot, run.NameHint), blob.Filename)
				f, err := p.storage.Upload(gctx, blob.Data, name, blob.MimeType, run.FolderID)
				if err != nil {
					return fmt.Errorf("%w: %v", ErrUploadFailed, err)
				}
				mu.Lock()
				uploaded[slot.Name] = f
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	id, createdAt, err := run.Persist(ctx, uploaded)
	if err != nil {
		if errors.Is(err, store.ErrNoDatabase) {
			return nil, ErrNotConfigured
		}
		// Uploaded files stay orphaned in storage; cleanup is manual.
		return nil, fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}

	result := &Result{
		SubmissionID: id,
		CreatedAt:    createdAt,
		Files:        uploaded,
	}

	if run.WebhookURL != "" && run.Notification != nil && p.notifier != nil {
		payload := run.Notification(id, createdAt, uploaded)
		if err := p.notifier.Notify(ctx, run.WebhookURL, payload); err != nil {
			log.Printf("sheets webhook: %v", err)
		} else {
			result.SheetsUpdated = true
		}
	}

	return result, nil
}

func (p *Pipeline) countUploads(run Run) int {
	n := 0
	for _, slot := range run.Slots {
		if run.Files[slot.Name] != nil {
			n++
		}
	}
	return n
}

func namePrefix(slot forms.SlotSpec, hint string) string {
	if hint == "" {
		return slot.NamePrefix
	}
	return slot.NamePrefix + "-" + hint
}
