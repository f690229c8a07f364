package handlers

import (
	"net/http"

	"cens-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	service *services.RegistrationService
}

func NewRegistrationHandler(service *services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

// Submit godoc
// @Summary      Submit a team entry with pre-uploaded files
// @Description  JSON body citing storage references from /api/upload-file
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Success      200 {object} Response
// @Failure      400 {object} Response
// @Failure      500 {object} Response
// @Router       /api/submit-registration [post]
func (h *RegistrationHandler) Submit(c *gin.Context) {
	var req services.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	res, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	respondOK(c, "Competition registration received successfully", gin.H{
		"submissionId":  res.SubmissionID,
		"sheetsUpdated": res.SheetsUpdated,
	})
}
