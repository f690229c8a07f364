package handlers

import (
	"net/http"

	"cens-backend/internal/forms"
	"cens-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CompetitionHandler struct {
	service *services.CompetitionService
}

func NewCompetitionHandler(service *services.CompetitionService) *CompetitionHandler {
	return &CompetitionHandler{service: service}
}

// Submit godoc
// @Summary      Submit a team competition entry
// @Description  Multipart form: team info, three participants, three PDF attachments
// @Tags         submissions
// @Accept       multipart/form-data
// @Produce      json
// @Success      200 {object} Response
// @Failure      400 {object} Response
// @Failure      500 {object} Response
// @Router       /api/submit-competition [post]
func (h *CompetitionHandler) Submit(c *gin.Context) {
	draft, err := forms.ParseMultipart(c.Request, slotNames(services.CompetitionSlots))
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid form data. Make sure you are sending multipart/form-data.")
		return
	}

	res, err := h.service.Submit(c.Request.Context(), draft)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	respondOK(c, "Competition submission received successfully", gin.H{
		"submissionId":  res.SubmissionID,
		"fileIds":       fileIDs(res.Files),
		"fileUrls":      fileURLs(res.Files),
		"sheetsUpdated": res.SheetsUpdated,
	})
}
