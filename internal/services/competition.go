package services

import (
	"context"
	"time"

	"cens-backend/internal/drive"
	"cens-backend/internal/forms"
	"cens-backend/internal/models"
)

type CompetitionStore interface {
	CreateCompetition(ctx context.Context, sub *models.CompetitionSubmission) error
}

var competitionSchema = forms.Merge(
	forms.Schema{
		{Name: "teamName", Rules: []forms.Rule{forms.MinLen(2, "Team name"), forms.MaxLen(100, "Team name")}},
		{Name: "competitionKind", Rules: []forms.Rule{forms.OneOf("Competition kind",
			models.CompetitionInnovativeEssay, models.CompetitionNationalTender)}},
	},
	forms.ParticipantFields("leader"),
	forms.ParticipantFields("member2"),
	forms.ParticipantFields("member3"),
)

// CompetitionSlots are the three required attachments for a team entry.
var CompetitionSlots = []forms.SlotSpec{
	{Name: "idScan", Required: true, MaxBytes: 10 * forms.MB, MimeTypes: []string{forms.MimePDF}, NamePrefix: "student-ids"},
	{Name: "paymentProof", Required: true, MaxBytes: 20 * forms.MB, MimeTypes: []string{forms.MimePDF}, NamePrefix: "payment-proof"},
	{Name: "promoProof", Required: true, MaxBytes: 10 * forms.MB, MimeTypes: []string{forms.MimePDF}, NamePrefix: "promo-proof"},
}

type CompetitionService struct {
	pipeline   *Pipeline
	store      CompetitionStore
	folderID   string
	webhookURL string
}

func NewCompetitionService(pipeline *Pipeline, store CompetitionStore, folderID, webhookURL string) *CompetitionService {
	return &CompetitionService{
		pipeline:   pipeline,
		store:      store,
		folderID:   folderID,
		webhookURL: webhookURL,
	}
}

type competitionNotification struct {
	SubmissionType  string            `json:"submissionType"`
	Timestamp       string            `json:"timestamp"`
	TeamName        string            `json:"teamName"`
	CompetitionKind string            `json:"competitionKind"`
	LeaderName      string            `json:"leaderName"`
	LeaderEmail     string            `json:"leaderEmail"`
	StudentCount    int               `json:"studentCount"`
	FileURLs        map[string]string `json:"fileUrls"`
}

// Submit validates a team-competition draft and runs it through the
// pipeline.
func (s *CompetitionService) Submit(ctx context.Context, draft *forms.Draft) (*Result, error) {
	if errs := competitionSchema.Validate(draft.Values); errs != nil {
		return nil, errs
	}

	sub := &models.CompetitionSubmission{
		TeamName:        draft.Get("teamName"),
		CompetitionKind: draft.Get("competitionKind"),
		Leader:          participantFromDraft(draft, "leader"),
		Member2:         participantFromDraft(draft, "member2"),
		Member3:         participantFromDraft(draft, "member3"),
	}

	return s.pipeline.Execute(ctx, Run{
		Slots:      CompetitionSlots,
		Files:      draft.Files,
		FolderID:   s.folderID,
		NameHint:   sub.TeamName,
		WebhookURL: s.webhookURL,
		Persist: func(ctx context.Context, files map[string]*drive.UploadedFile) (uint, time.Time, error) {
			sub.IDScanFileID = files["idScan"].ID
			sub.IDScanFileURL = files["idScan"].ViewURL
			sub.PaymentProofID = files["paymentProof"].ID
			sub.PaymentProofURL = files["paymentProof"].ViewURL
			sub.PromoProofFileID = files["promoProof"].ID
			sub.PromoProofFileURL = files["promoProof"].ViewURL
			if err := s.store.CreateCompetition(ctx, sub); err != nil {
				return 0, time.Time{}, err
			}
			return sub.ID, sub.CreatedAt, nil
		},
		Notification: func(_ uint, createdAt time.Time, files map[string]*drive.UploadedFile) any {
			return competitionNotification{
				SubmissionType:  "competition",
				Timestamp:       createdAt.UTC().Format(time.RFC3339),
				TeamName:        sub.TeamName,
				CompetitionKind: sub.CompetitionKind,
				LeaderName:      sub.Leader.FullName,
				LeaderEmail:     sub.Leader.Email,
				StudentCount:    3,
				FileURLs:        fileURLs(files),
			}
		},
	})
}

func participantFromDraft(d *forms.Draft, prefix string) models.Participant {
	key := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + "." + name
	}
	return models.Participant{
		FullName:    d.Get(key("fullName")),
		StudentID:   d.Get(key("studentId")),
		PhoneNumber: d.Get(key("phoneNumber")),
		MessagingID: d.Get(key("messagingId")),
		Email:       d.Get(key("email")),
		Institution: d.Get(key("institution")),
		Department:  d.Get(key("department")),
	}
}

func fileURLs(files map[string]*drive.UploadedFile) map[string]string {
	out := make(map[string]string, len(files))
	for slot, f := range files {
		out[slot] = f.ViewURL
	}
	return out
}

func fileIDs(files map[string]*drive.UploadedFile) map[string]string {
	out := make(map[string]string, len(files))
	for slot, f := range files {
		out[slot] = f.ID
	}
	return out
}
