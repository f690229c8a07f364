package handlers

import (
	"net/http"

	"cens-backend/internal/forms"
	"cens-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	service *services.EventService
}

func NewEventHandler(service *services.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// Submit godoc
// @Summary      Register for an event
// @Description  Multipart form: contact fields, event identifier, optional PDF
// @Tags         submissions
// @Accept       multipart/form-data
// @Produce      json
// @Success      200 {object} Response
// @Failure      400 {object} Response
// @Failure      500 {object} Response
// @Router       /api/submit-event [post]
func (h *EventHandler) Submit(c *gin.Context) {
	draft, err := forms.ParseMultipart(c.Request, slotNames(services.EventSlots))
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid form data. Make sure you are sending multipart/form-data.")
		return
	}

	res, err := h.service.Submit(c.Request.Context(), draft)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	respondOK(c, "Event registration received successfully", gin.H{
		"submissionId":  res.SubmissionID,
		"fileIds":       fileIDs(res.Files),
		"fileUrls":      fileURLs(res.Files),
		"sheetsUpdated": res.SheetsUpdated,
	})
}
