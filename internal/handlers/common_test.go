package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync"
	"testing"
	"time"

	"cens-backend/internal/drive"
	"cens-backend/internal/forms"
	"cens-backend/internal/models"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubStorage struct {
	mu    sync.Mutex
	calls int
	fail  bool
}

func (s *stubStorage) Upload(_ context.Context, _ []byte, name, mimeType, _ string) (*drive.UploadedFile, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.fail {
		return nil, errors.New("storage unavailable")
	}
	return &drive.UploadedFile{
		ID:       "file-" + name,
		Name:     name,
		MimeType: mimeType,
		ViewURL:  "https://store.example/view/" + name,
	}, nil
}

func (s *stubStorage) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type stubNotifier struct{}

func (stubNotifier) Notify(context.Context, string, any) error { return nil }

type stubCompetitionStore struct {
	created []*models.CompetitionSubmission
	err     error
}

func (s *stubCompetitionStore) CreateCompetition(_ context.Context, sub *models.CompetitionSubmission) error {
	if s.err != nil {
		return s.err
	}
	sub.ID = 1
	sub.CreatedAt = time.Now()
	s.created = append(s.created, sub)
	return nil
}

// formRequest builds the multipart body a browser form submission sends:
// scalar fields plus named PDF attachments.
func formRequest(t *testing.T, path string, fields map[string]string, files map[string][]byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	for slot, data := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+slot+`"; filename="doc.pdf"`)
		h.Set("Content-Type", forms.MimePDF)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(data); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	w.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func participantFields(prefix string) map[string]string {
	return map[string]string{
		prefix + ".fullName":    "Dewi Lestari",
		prefix + ".studentId":   "2110501234",
		prefix + ".phoneNumber": "+62 812-3456-7890",
		prefix + ".messagingId": "dewi_lestari",
		prefix + ".email":       "dewi@student.example.ac.id",
		prefix + ".institution": "Universitas Contoh",
		prefix + ".department":  "Civil Engineering",
	}
}
