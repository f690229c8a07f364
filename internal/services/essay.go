package services

import (
	"context"
	"time"

	"cens-backend/internal/drive"
	"cens-backend/internal/forms"
	"cens-backend/internal/models"
)

type EssayStore interface {
	CreateEssay(ctx context.Context, sub *models.EssaySubmission) error
}

var essaySchema = forms.Merge(
	forms.Schema{
		{Name: "teamName", Rules: []forms.Rule{forms.MinLen(2, "Team name"), forms.MaxLen(100, "Team name")}},
		{Name: "subtheme", Rules: []forms.Rule{forms.Required("Subtheme"), forms.MaxLen(200, "Subtheme")}},
	},
	forms.ParticipantFields(""),
)

var EssaySlots = []forms.SlotSpec{
	{Name: "essayDocument", Required: true, MaxBytes: 10 * forms.MB, MimeTypes: []string{forms.MimePDF}, NamePrefix: "essay"},
}

type EssayService struct {
	pipeline   *Pipeline
	store      EssayStore
	folderID   string
	webhookURL string
}

func NewEssayService(pipeline *Pipeline, store EssayStore, folderID, webhookURL string) *EssayService {
	return &EssayService{
		pipeline:   pipeline,
		store:      store,
		folderID:   folderID,
		webhookURL: webhookURL,
	}
}

type documentNotification struct {
	SubmissionType string            `json:"submissionType"`
	Timestamp      string            `json:"timestamp"`
	TeamName       string            `json:"teamName"`
	Subtheme       string            `json:"subtheme"`
	AuthorName     string            `json:"authorName"`
	AuthorEmail    string            `json:"authorEmail"`
	Institution    string            `json:"institution"`
	FileURLs       map[string]string `json:"fileUrls"`
}

func (s *EssayService) Submit(ctx context.Context, draft *forms.Draft) (*Result, error) {
	if errs := essaySchema.Validate(draft.Values); errs != nil {
		return nil, errs
	}

	sub := &models.EssaySubmission{
		TeamName: draft.Get("teamName"),
		Subtheme: draft.Get("subtheme"),
		Author:   participantFromDraft(draft, ""),
	}

	return s.pipeline.Execute(ctx, Run{
		Slots:      EssaySlots,
		Files:      draft.Files,
		FolderID:   s.folderID,
		NameHint:   sub.TeamName,
		WebhookURL: s.webhookURL,
		Persist: func(ctx context.Context, files map[string]*drive.UploadedFile) (uint, time.Time, error) {
			sub.EssayFileID = files["essayDocument"].ID
			sub.EssayFileURL = files["essayDocument"].ViewURL
			if err := s.store.CreateEssay(ctx, sub); err != nil {
				return 0, time.Time{}, err
			}
			return sub.ID, sub.CreatedAt, nil
		},
		Notification: func(_ uint, createdAt time.Time, files map[string]*drive.UploadedFile) any {
			return documentNotification{
				SubmissionType: "essay",
				Timestamp:      createdAt.UTC().Format(time.RFC3339),
				TeamName:       sub.TeamName,
				Subtheme:       sub.Subtheme,
				AuthorName:     sub.Author.FullName,
				AuthorEmail:    sub.Author.Email,
				Institution:    sub.Author.Institution,
				FileURLs:       fileURLs(files),
			}
		},
	})
}
