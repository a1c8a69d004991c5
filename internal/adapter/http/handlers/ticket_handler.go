package handlers

import (
	"log"
	"net/http"

	"repairdesk/internal/adapter/http/dto/request"
	"repairdesk/internal/adapter/http/middleware"
	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

// TicketHandler serves the staff dashboard: listing, intake, status/cost
// updates and deletion. Every route here sits behind RequireLogin.

type TicketHandler struct {
	tickets usecase.ITicketUseCase
}

func NewTicketHandler(tickets usecase.ITicketUseCase) *TicketHandler {
	return &TicketHandler{tickets: tickets}
}

// Dashboard lists every ticket, newest first. A listing failure degrades to
// an empty dashboard with a generic notice; the raw error goes to the log.
func (h *TicketHandler) Dashboard(c *gin.Context) {
	tickets, err := h.tickets.ListTickets(c.Request.Context())
	if err != nil {
		log.Printf("[dashboard] listing tickets failed: %v", err)
		tickets = []entities.Ticket{}
		render(c, http.StatusOK, "dashboard.html", gin.H{
			"Tickets":  tickets,
			"Statuses": entities.AllTicketStatuses(),
		}, middleware.Notice{Kind: middleware.NoticeError, Message: "Error connecting to the repair database. Check credentials."})
		return
	}

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"Tickets":  tickets,
		"Statuses": entities.AllTicketStatuses(),
	})
}

// AddTicket creates a ticket from the intake form. Whatever the outcome the
// browser ends up back on the dashboard with a notice.
func (h *TicketHandler) AddTicket(c *gin.Context) {
	var payload request.AddTicketRequest
	if err := c.ShouldBind(&payload); err != nil {
		h.redirectWithError(c, mapTicketError(usecase.ErrMissingTicketFields).Message)
		return
	}

	_, err := h.tickets.CreateTicket(c.Request.Context(), usecase.TicketIntake{
		CustomerName:     payload.CustomerName,
		CustomerEmail:    payload.CustomerEmail,
		DeviceModel:      payload.DeviceModel,
		SerialNumber:     payload.SerialNumber,
		IssueDescription: payload.IssueDescription,
	})
	if err != nil {
		h.redirectWithError(c, mapTicketError(err).Message)
		return
	}

	h.redirectWithSuccess(c, "Ticket created successfully!")
}

// UpdateTicket changes exactly the status and estimated cost of one ticket.
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	id, err := request.ParsePathID(c.Param("id"))
	if err != nil {
		h.redirectWithError(c, mapTicketError(err).Message)
		return
	}

	var payload request.UpdateTicketRequest
	if err := c.ShouldBind(&payload); err != nil {
		h.redirectWithError(c, "Status and estimated cost are required.")
		return
	}

	status, err := payload.ResolveStatus()
	if err != nil {
		h.redirectWithError(c, mapTicketError(err).Message)
		return
	}
	cost, err := payload.ResolveCost()
	if err != nil {
		h.redirectWithError(c, mapTicketError(err).Message)
		return
	}

	if _, err := h.tickets.UpdateTicket(c.Request.Context(), id, status, cost); err != nil {
		h.redirectWithError(c, mapTicketError(err).Message)
		return
	}

	h.redirectWithSuccess(c, "Ticket updated successfully!")
}

// DeleteTicket removes a ticket. Deleting an id that no longer exists still
// reads as success; there is no confirmation step.
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	id, err := request.ParsePathID(c.Param("id"))
	if err != nil {
		h.redirectWithError(c, mapTicketError(err).Message)
		return
	}

	if err := h.tickets.DeleteTicket(c.Request.Context(), id); err != nil {
		h.redirectWithError(c, mapTicketError(err).Message)
		return
	}

	h.redirectWithSuccess(c, "Ticket deleted.")
}

func (h *TicketHandler) redirectWithSuccess(c *gin.Context, msg string) {
	middleware.Flash(c, middleware.NoticeSuccess, msg)
	middleware.SaveSession(c)
	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *TicketHandler) redirectWithError(c *gin.Context, msg string) {
	middleware.Flash(c, middleware.NoticeError, msg)
	middleware.SaveSession(c)
	c.Redirect(http.StatusFound, "/dashboard")
}
