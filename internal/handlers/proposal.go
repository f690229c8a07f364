package handlers

import (
	"net/http"

	"cens-backend/internal/forms"
	"cens-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ProposalHandler struct {
	service *services.ProposalService
}

func NewProposalHandler(service *services.ProposalService) *ProposalHandler {
	return &ProposalHandler{service: service}
}

// Submit godoc
// @Summary      Submit a tender proposal
// @Description  Multipart form: author info, proposal PDF and bill-of-quantities spreadsheet
// @Tags         submissions
// @Accept       multipart/form-data
// @Produce      json
// @Success      200 {object} Response
// @Failure      400 {object} Response
// @Failure      500 {object} Response
// @Router       /api/submit-proposal [post]
func (h *ProposalHandler) Submit(c *gin.Context) {
	draft, err := forms.ParseMultipart(c.Request, slotNames(services.ProposalSlots))
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid form data. Make sure you are sending multipart/form-data.")
		return
	}

	res, err := h.service.Submit(c.Request.Context(), draft)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	respondOK(c, "Proposal submission received successfully", gin.H{
		"submissionId":  res.SubmissionID,
		"fileIds":       fileIDs(res.Files),
		"fileUrls":      fileURLs(res.Files),
		"sheetsUpdated": res.SheetsUpdated,
	})
}
