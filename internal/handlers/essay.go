package handlers

import (
	"net/http"

	"cens-backend/internal/forms"
	"cens-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type EssayHandler struct {
	service *services.EssayService
}

func NewEssayHandler(service *services.EssayService) *EssayHandler {
	return &EssayHandler{service: service}
}

// Submit godoc
// @Summary      Submit an essay
// @Description  Multipart form: author info, team name, subtheme and the essay PDF
// @Tags         submissions
// @Accept       multipart/form-data
// @Produce      json
// @Success      200 {object} Response
// @Failure      400 {object} Response
// @Failure      500 {object} Response
// @Router       /api/submit-essay [post]
func (h *EssayHandler) Submit(c *gin.Context) {
	draft, err := forms.ParseMultipart(c.Request, slotNames(services.EssaySlots))
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid form data. Make sure you are sending multipart/form-data.")
		return
	}

	res, err := h.service.Submit(c.Request.Context(), draft)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	respondOK(c, "Essay submission received successfully", gin.H{
		"submissionId":  res.SubmissionID,
		"fileIds":       fileIDs(res.Files),
		"fileUrls":      fileURLs(res.Files),
		"sheetsUpdated": res.SheetsUpdated,
	})
}
