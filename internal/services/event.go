package services

import (
	"context"
	"time"

	"cens-backend/internal/drive"
	"cens-backend/internal/forms"
	"cens-backend/internal/models"
)

type EventStore interface {
	CreateEvent(ctx context.Context, sub *models.EventSubmission) error
}

var eventSchema = forms.Schema{
	{Name: "fullName", Rules: []forms.Rule{forms.MinLen(2, "Full name"), forms.MaxLen(100, "Full name")}},
	{Name: "email", Rules: []forms.Rule{forms.Email()}},
	{Name: "phoneNumber", Rules: []forms.Rule{forms.Phone()}},
	{Name: "institution", Rules: []forms.Rule{forms.MinLen(2, "Institution"), forms.MaxLen(200, "Institution")}},
	{Name: "eventKind", Rules: []forms.Rule{forms.OneOf("Event",
		models.EventWorkshop, models.EventDiscussionForum, models.EventNationalSummit)}},
	{Name: "specialRequirements", Optional: true, Rules: []forms.Rule{forms.MaxLen(1000, "Special requirements")}},
}

// EventSlots: registration may carry one optional supporting PDF.
var EventSlots = []forms.SlotSpec{
	{Name: "attachment", Required: false, MaxBytes: 10 * forms.MB, MimeTypes: []string{forms.MimePDF}, NamePrefix: "event"},
}

type EventService struct {
	pipeline   *Pipeline
	store      EventStore
	folderID   string
	webhookURL string
}

func NewEventService(pipeline *Pipeline, store EventStore, folderID, webhookURL string) *EventService {
	return &EventService{
		pipeline:   pipeline,
		store:      store,
		folderID:   folderID,
		webhookURL: webhookURL,
	}
}

type eventNotification struct {
	SubmissionType      string `json:"submissionType"`
	Timestamp           string `json:"timestamp"`
	FullName            string `json:"fullName"`
	Email               string `json:"email"`
	PhoneNumber         string `json:"phoneNumber"`
	Institution         string `json:"institution"`
	EventKind           string `json:"eventKind"`
	SpecialRequirements string `json:"specialRequirements,omitempty"`
	AttachmentURL       string `json:"attachmentUrl,omitempty"`
}

func (s *EventService) Submit(ctx context.Context, draft *forms.Draft) (*Result, error) {
	if errs := eventSchema.Validate(draft.Values); errs != nil {
		return nil, errs
	}

	sub := &models.EventSubmission{
		FullName:            draft.Get("fullName"),
		Email:               draft.Get("email"),
		PhoneNumber:         draft.Get("phoneNumber"),
		Institution:         draft.Get("institution"),
		EventKind:           draft.Get("eventKind"),
		SpecialRequirements: draft.Get("specialRequirements"),
	}

	return s.pipeline.Execute(ctx, Run{
		Slots:      EventSlots,
		Files:      draft.Files,
		FolderID:   s.folderID,
		NameHint:   sub.FullName,
		WebhookURL: s.webhookURL,
		Persist: func(ctx context.Context, files map[string]*drive.UploadedFile) (uint, time.Time, error) {
			if f, ok := files["attachment"]; ok {
				sub.AttachmentFileID = f.ID
				sub.AttachmentFileURL = f.ViewURL
			}
			if err := s.store.CreateEvent(ctx, sub); err != nil {
				return 0, time.Time{}, err
			}
			return sub.ID, sub.CreatedAt, nil
		},
		Notification: func(_ uint, createdAt time.Time, files map[string]*drive.UploadedFile) any {
			n := eventNotification{
				SubmissionType:      "event",
				Timestamp:           createdAt.UTC().Format(time.RFC3339),
				FullName:            sub.FullName,
				Email:               sub.Email,
				PhoneNumber:         sub.PhoneNumber,
				Institution:         sub.Institution,
				EventKind:           sub.EventKind,
				SpecialRequirements: sub.SpecialRequirements,
			}
			if f, ok := files["attachment"]; ok {
				n.AttachmentURL = f.ViewURL
			}
			return n
		},
	})
}
