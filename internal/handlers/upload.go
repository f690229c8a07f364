package handlers

import (
	"net/http"

	"cens-backend/internal/forms"
	"cens-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	service *services.UploadService
}

func NewUploadHandler(service *services.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload godoc
// @Summary      Upload a single file ahead of a JSON submission
// @Description  Multipart form: file, fileType tag and teamName for naming
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Success      200 {object} Response
// @Failure      400 {object} Response
// @Failure      500 {object} Response
// @Router       /api/upload-file [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	draft, err := forms.ParseMultipart(c.Request, []string{"file"})
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid form data. Make sure you are sending multipart/form-data.")
		return
	}

	uploaded, fileType, err := h.service.Upload(c.Request.Context(), draft)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	respondOK(c, "File uploaded successfully", gin.H{
		"externalId": uploaded.ID,
		"viewUrl":    uploaded.ViewURL,
		"fileName":   uploaded.Name,
		"fileType":   fileType,
	})
}
