package services

import (
	"context"
	"strings"
	"time"

	"cens-backend/internal/drive"
	"cens-backend/internal/forms"
	"cens-backend/internal/models"
)

// RegistrationRequest is the JSON-only team entry: files were already
// pushed through the standalone upload endpoint, so the body carries the
// storage references instead of the bytes.
type RegistrationRequest struct {
	TeamName        string             `json:"teamName"`
	CompetitionKind string             `json:"competitionKind"`
	Leader          models.Participant `json:"leader"`
	Member2         models.Participant `json:"member2"`
	Member3         models.Participant `json:"member3"`
	FileIDs         map[string]string  `json:"fileIds"`
	FileURLs        map[string]string  `json:"fileUrls"`
}

type RegistrationService struct {
	pipeline   *Pipeline
	store      CompetitionStore
	webhookURL string
}

func NewRegistrationService(pipeline *Pipeline, store CompetitionStore, webhookURL string) *RegistrationService {
	return &RegistrationService{
		pipeline:   pipeline,
		store:      store,
		webhookURL: webhookURL,
	}
}

func (s *RegistrationService) Submit(ctx context.Context, req *RegistrationRequest) (*Result, error) {
	trimRegistration(req)
	values := flattenRegistration(req)
	errs := competitionSchema.Validate(values)

	merged := forms.FieldErrors{}
	for field, msgs := range errs {
		merged[field] = msgs
	}
	for _, slot := range CompetitionSlots {
		if req.FileIDs[slot.Name] == "" {
			merged["fileIds."+slot.Name] = append(merged["fileIds."+slot.Name], slot.Name+" file id is required")
		}
		if req.FileURLs[slot.Name] == "" {
			merged["fileUrls."+slot.Name] = append(merged["fileUrls."+slot.Name], slot.Name+" file url is required")
		}
	}
	if len(merged) > 0 {
		return nil, merged
	}

	sub := &models.CompetitionSubmission{
		TeamName:          req.TeamName,
		CompetitionKind:   req.CompetitionKind,
		Leader:            req.Leader,
		Member2:           req.Member2,
		Member3:           req.Member3,
		IDScanFileID:      req.FileIDs["idScan"],
		IDScanFileURL:     req.FileURLs["idScan"],
		PaymentProofID:    req.FileIDs["paymentProof"],
		PaymentProofURL:   req.FileURLs["paymentProof"],
		PromoProofFileID:  req.FileIDs["promoProof"],
		PromoProofFileURL: req.FileURLs["promoProof"],
	}

	// No slots: the upload step already happened out of band.
	return s.pipeline.Execute(ctx, Run{
		WebhookURL: s.webhookURL,
		Persist: func(ctx context.Context, _ map[string]*drive.UploadedFile) (uint, time.Time, error) {
			if err := s.store.CreateCompetition(ctx, sub); err != nil {
				return 0, time.Time{}, err
			}
			return sub.ID, sub.CreatedAt, nil
		},
		Notification: func(_ uint, createdAt time.Time, _ map[string]*drive.UploadedFile) any {
			return competitionNotification{
				SubmissionType:  "competition-registration",
				Timestamp:       createdAt.UTC().Format(time.RFC3339),
				TeamName:        sub.TeamName,
				CompetitionKind: sub.CompetitionKind,
				LeaderName:      sub.Leader.FullName,
				LeaderEmail:     sub.Leader.Email,
				StudentCount:    3,
				FileURLs:        req.FileURLs,
			}
		},
	})
}

func trimRegistration(req *RegistrationRequest) {
	req.TeamName = strings.TrimSpace(req.TeamName)
	req.CompetitionKind = strings.TrimSpace(req.CompetitionKind)
	for _, p := range []*models.Participant{&req.Leader, &req.Member2, &req.Member3} {
		p.FullName = strings.TrimSpace(p.FullName)
		p.StudentID = strings.TrimSpace(p.StudentID)
		p.PhoneNumber = strings.TrimSpace(p.PhoneNumber)
		p.MessagingID = strings.TrimSpace(p.MessagingID)
		p.Email = strings.TrimSpace(p.Email)
		p.Institution = strings.TrimSpace(p.Institution)
		p.Department = strings.TrimSpace(p.Department)
	}
}

func flattenRegistration(req *RegistrationRequest) map[string]string {
	values := map[string]string{
		"teamName":        req.TeamName,
		"competitionKind": req.CompetitionKind,
	}
	flattenParticipant(values, "leader", req.Leader)
	flattenParticipant(values, "member2", req.Member2)
	flattenParticipant(values, "member3", req.Member3)
	return values
}

func flattenParticipant(values map[string]string, prefix string, p models.Participant) {
	values[prefix+".fullName"] = p.FullName
	values[prefix+".studentId"] = p.StudentID
	values[prefix+".phoneNumber"] = p.PhoneNumber
	values[prefix+".messagingId"] = p.MessagingID
	values[prefix+".email"] = p.Email
	values[prefix+".institution"] = p.Institution
	values[prefix+".department"] = p.Department
}
