package services

import (
	"context"
	"time"

	"cens-backend/internal/drive"
	"cens-backend/internal/forms"
	"cens-backend/internal/models"
)

type ProposalStore interface {
	CreateProposal(ctx context.Context, sub *models.ProposalSubmission) error
}

var proposalSchema = forms.Merge(
	forms.Schema{
		{Name: "teamName", Rules: []forms.Rule{forms.MinLen(2, "Team name"), forms.MaxLen(100, "Team name")}},
		{Name: "subtheme", Rules: []forms.Rule{forms.Required("Subtheme"), forms.MaxLen(200, "Subtheme")}},
	},
	forms.ParticipantFields(""),
)

// ProposalSlots: the tender proposal itself plus its bill-of-quantities
// spreadsheet.
var ProposalSlots = []forms.SlotSpec{
	{Name: "proposalDocument", Required: true, MaxBytes: 20 * forms.MB, MimeTypes: []string{forms.MimePDF}, NamePrefix: "proposal"},
	{Name: "billOfQuantities", Required: true, MaxBytes: 10 * forms.MB, MimeTypes: []string{forms.MimeXLSX, forms.MimeXLS}, NamePrefix: "boq"},
}

type ProposalService struct {
	pipeline   *Pipeline
	store      ProposalStore
	folderID   string
	webhookURL string
}

func NewProposalService(pipeline *Pipeline, store ProposalStore, folderID, webhookURL string) *ProposalService {
	return &ProposalService{
		pipeline:   pipeline,
		store:      store,
		folderID:   folderID,
		webhookURL: webhookURL,
	}
}

func (s *ProposalService) Submit(ctx context.Context, draft *forms.Draft) (*Result, error) {
	if errs := proposalSchema.Validate(draft.Values); errs != nil {
		return nil, errs
	}

	sub := &models.ProposalSubmission{
		TeamName: draft.Get("teamName"),
		Subtheme: draft.Get("subtheme"),
		Author:   participantFromDraft(draft, ""),
	}

	return s.pipeline.Execute(ctx, Run{
		Slots:      ProposalSlots,
		Files:      draft.Files,
		FolderID:   s.folderID,
		NameHint:   sub.TeamName,
		WebhookURL: s.webhookURL,
		Persist: func(ctx context.Context, files map[string]*drive.UploadedFile) (uint, time.Time, error) {
			sub.ProposalFileID = files["proposalDocument"].ID
			sub.ProposalFileURL = files["proposalDocument"].ViewURL
			sub.BoQFileID = files["billOfQuantities"].ID
			sub.BoQFileURL = files["billOfQuantities"].ViewURL
			if err := s.store.CreateProposal(ctx, sub); err != nil {
				return 0, time.Time{}, err
			}
			return sub.ID, sub.CreatedAt, nil
		},
		Notification: func(_ uint, createdAt time.Time, files map[string]*drive.UploadedFile) any {
			return documentNotification{
				SubmissionType: "proposal",
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
