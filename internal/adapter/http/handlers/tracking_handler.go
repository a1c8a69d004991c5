package handlers

import (
	"net/http"

	"repairdesk/internal/adapter/http/dto/request"
	"repairdesk/internal/adapter/http/middleware"
	"repairdesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

// TrackingHandler serves the public homepage: customers check the progress
// of a repair by ticket id, no login involved.

type TrackingHandler struct {
	tickets usecase.ITicketUseCase
}

func NewTrackingHandler(tickets usecase.ITicketUseCase) *TrackingHandler {
	return &TrackingHandler{tickets: tickets}
}

// ShowTrackingPage renders the empty lookup form. GET never performs a
// lookup.
func (h *TrackingHandler) ShowTrackingPage(c *gin.Context) {
	render(c, http.StatusOK, "tracking.html", gin.H{})
}

// TrackTicket handles the lookup form submission.
func (h *TrackingHandler) TrackTicket(c *gin.Context) {
	var payload request.TrackTicketRequest
	_ = c.ShouldBind(&payload)

	if payload.Empty() {
		render(c, http.StatusOK, "tracking.html", gin.H{})
		return
	}

	id, err := payload.ResolveTicketID()
	if err != nil {
		appErr := mapTicketError(err)
		render(c, http.StatusOK, "tracking.html", gin.H{},
			middleware.Notice{Kind: middleware.NoticeError, Message: appErr.Message})
		return
	}

	t, err := h.tickets.GetTicket(c.Request.Context(), id)
	if err != nil {
		appErr := mapTicketError(err)
		render(c, http.StatusOK, "tracking.html", gin.H{},
			middleware.Notice{Kind: middleware.NoticeError, Message: appErr.Message})
		return
	}

	render(c, http.StatusOK, "tracking.html", gin.H{"Ticket": t})
}
