package handlers

import (
	"errors"
	"net/http"

	"cens-backend/internal/drive"
	"cens-backend/internal/forms"
	"cens-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Response is the single envelope every endpoint answers with.
type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    any               `json:"data,omitempty"`
	Errors  forms.FieldErrors `json:"errors,omitempty"`
	Error   string            `json:"error,omitempty"`
}

func respondOK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Message: message})
}

// respondPipelineError maps the pipeline's error taxonomy onto the HTTP
// contract: validation and gate failures are 400s, collaborator failures
// are 500s, anything unclassified is a 500 with the technical message.
func respondPipelineError(c *gin.Context, err error) {
	var fieldErrs forms.FieldErrors
	var fileErr *forms.FileError

	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Message: "Validation failed",
			Errors:  fieldErrs,
		})
	case errors.As(err, &fileErr):
		respondMessage(c, http.StatusBadRequest, fileErr.Message)
	case errors.Is(err, services.ErrNotConfigured):
		respondMessage(c, http.StatusInternalServerError, "Server configuration error")
	case errors.Is(err, services.ErrUploadFailed):
		respondMessage(c, http.StatusInternalServerError, "Failed to upload files to storage")
	case errors.Is(err, services.ErrPersistFailed):
		respondMessage(c, http.StatusInternalServerError, "Failed to save submission to database")
	default:
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Message: "An error occurred while processing your submission",
			Error:   err.Error(),
		})
	}
}

func fileIDs(files map[string]*drive.UploadedFile) map[string]string {
	out := make(map[string]string, len(files))
	for slot, f := range files {
		out[slot] = f.ID
	}
	return out
}

func fileURLs(files map[string]*drive.UploadedFile) map[string]string {
	out := make(map[string]string, len(files))
	for slot, f := range files {
		out[slot] = f.ViewURL
	}
	return out
}

func slotNames(slots []forms.SlotSpec) []string {
	names := make([]string, len(slots))
	for i, s := range slots {
		names[i] = s.Name
	}
	return names
}
