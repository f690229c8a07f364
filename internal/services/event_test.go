package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"cens-backend/internal/forms"
	"cens-backend/internal/models"
)

type fakeEventStore struct {
	created []*models.EventSubmission
	err     error
}

func (f *fakeEventStore) CreateEvent(_ context.Context, sub *models.EventSubmission) error {
	if f.err != nil {
		return f.err
	}
	sub.ID = uint(len(f.created) + 1)
	sub.CreatedAt = time.Date(2026, 4, 10, 14, 30, 0, 0, time.UTC)
	f.created = append(f.created, sub)
	return nil
}

func eventDraft() *forms.Draft {
	return &forms.Draft{
		Values: map[string]string{
			"fullName":    "Budi Santoso",
			"email":       "budi@example.com",
			"phoneNumber": "081234567890",
			"institution": "Institut Teknologi Contoh",
			"eventKind":   models.EventWorkshop,
		},
		Files: map[string]*forms.FileBlob{},
	}
}

func TestEventSubmit_WithoutAttachment(t *testing.T) {
	storage := &fakeStorage{}
	notifier := &fakeNotifier{}
	st := &fakeEventStore{}
	svc := NewEventService(NewPipeline(storage, notifier), st, "folder-event", "https://hooks.example/event")

	res, err := svc.Submit(context.Background(), eventDraft())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if storage.callCount() != 0 {
		t.Errorf("no attachment means no upload, got %d", storage.callCount())
	}
	if len(st.created) != 1 {
		t.Fatalf("expected one record, got %d", len(st.created))
	}
	if st.created[0].AttachmentFileID != "" {
		t.Error("attachment id set without an attachment")
	}
	if !res.SheetsUpdated {
		t.Error("expected sheetsUpdated true")
	}

	payload := notifier.payloads[0].(eventNotification)
	if payload.SubmissionType != "event" || payload.EventKind != models.EventWorkshop {
		t.Errorf("unexpected notification: %+v", payload)
	}
	if payload.AttachmentURL != "" {
		t.Error("attachment url set without an attachment")
	}
}

func TestEventSubmit_WithAttachment(t *testing.T) {
	storage := &fakeStorage{}
	st := &fakeEventStore{}
	svc := NewEventService(NewPipeline(storage, &fakeNotifier{}), st, "folder-event", "")

	draft := eventDraft()
	draft.Values["specialRequirements"] = "wheelchair access"
	draft.Files["attachment"] = pdfBlob(4096)

	_, err := svc.Submit(context.Background(), draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if storage.callCount() != 1 {
		t.Fatalf("expected one upload, got %d", storage.callCount())
	}
	sub := st.created[0]
	if sub.AttachmentFileID == "" || sub.AttachmentFileURL == "" {
		t.Error("attachment references missing from record")
	}
	if sub.SpecialRequirements != "wheelchair access" {
		t.Errorf("unexpected special requirements: %q", sub.SpecialRequirements)
	}
}

func TestEventSubmit_UnknownKindRejected(t *testing.T) {
	storage := &fakeStorage{}
	st := &fakeEventStore{}
	svc := NewEventService(NewPipeline(storage, &fakeNotifier{}), st, "folder-event", "")

	draft := eventDraft()
	draft.Values["eventKind"] = "gala-dinner"

	_, err := svc.Submit(context.Background(), draft)

	var errs forms.FieldErrors
	if !errors.As(err, &errs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if len(errs["eventKind"]) == 0 {
		t.Error("expected an eventKind error")
	}
	if len(st.created) != 0 {
		t.Error("invalid draft must not be persisted")
	}
}
