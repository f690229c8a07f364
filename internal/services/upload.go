package services

import (
	"context"

	"cens-backend/internal/drive"
	"cens-backend/internal/forms"
)

// uploadSlots mirrors the competition slots but with the standalone
// endpoint's 20MB ceiling: clients push large files here one at a time to
// stay under the hosting platform's request-size limit, then submit the
// rest as JSON.
var uploadSlots = map[string]forms.SlotSpec{
	"idScan":       {Name: "idScan", Required: true, MaxBytes: 20 * forms.MB, MimeTypes: []string{forms.MimePDF}, NamePrefix: "student-ids"},
	"paymentProof": {Name: "paymentProof", Required: true, MaxBytes: 20 * forms.MB, MimeTypes: []string{forms.MimePDF}, NamePrefix: "payment-proof"},
	"promoProof":   {Name: "promoProof", Required: true, MaxBytes: 20 * forms.MB, MimeTypes: []string{forms.MimePDF}, NamePrefix: "promo-proof"},
}

var uploadSchema = forms.Schema{
	{Name: "fileType", Rules: []forms.Rule{forms.OneOf("fileType", "idScan", "paymentProof", "promoProof")}},
	{Name: "teamName", Rules: []forms.Rule{forms.Required("teamName")}},
}

type UploadService struct {
	storage  FileStorage
	folderID string
}

func NewUploadService(storage FileStorage, folderID string) *UploadService {
	return &UploadService{storage: storage, folderID: folderID}
}

// Upload pushes a single ahead-of-submission file to storage and returns
// the reference the client will cite in its later JSON submission.
func (s *UploadService) Upload(ctx context.Context, draft *forms.Draft) (*drive.UploadedFile, string, error) {
	if errs := uploadSchema.Validate(draft.Values); errs != nil {
		return nil, "", errs
	}

	fileType := draft.Get("fileType")
	slot := uploadSlots[fileType]

	blob := draft.Files["file"]
	files := map[string]*forms.FileBlob{slot.Name: blob}
	if err := forms.CheckFiles(files, []forms.SlotSpec{slot}); err != nil {
		return nil, "", err
	}

	if s.storage == nil || s.folderID == "" {
		return nil, "", ErrNotConfigured
	}

	name := drive.UniqueFileName(slot.NamePrefix+"-"+draft.Get("teamName"), blob.Filename)
	uploaded, err := s.storage.Upload(ctx, blob.Data, name, blob.MimeType, s.folderID)
	if err != nil {
		return nil, "", ErrUploadFailed
	}
	return uploaded, fileType, nil
}
