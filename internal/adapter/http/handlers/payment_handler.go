package handlers

import (
	"net/http"

	"repairdesk/internal/adapter/http/dto/request"
	"repairdesk/internal/adapter/http/middleware"
	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PaymentHandler lets customers settle the estimated cost of a finished
// repair from the tracking page.

type PaymentHandler struct {
	payments usecase.IPaymentUseCase
	tickets  usecase.ITicketUseCase
}

func NewPaymentHandler(payments usecase.IPaymentUseCase, tickets usecase.ITicketUseCase) *PaymentHandler {
	return &PaymentHandler{payments: payments, tickets: tickets}
}

// PayTicket charges the quoted amount and re-renders the tracking page with
// the outcome. The amount comes from the stored ticket, never the form.
func (h *PaymentHandler) PayTicket(c *gin.Context) {
	id, err := request.ParsePathID(c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		render(c, http.StatusOK, "tracking.html", gin.H{},
			middleware.Notice{Kind: middleware.NoticeError, Message: appErr.Message})
		return
	}

	payment, err := h.payments.PayTicket(c.Request.Context(), id)
	if err != nil {
		appErr := mapPaymentError(err)
		data := gin.H{}
		if t, lookupErr := h.tickets.GetTicket(c.Request.Context(), id); lookupErr == nil {
			data["Ticket"] = t
		}
		render(c, http.StatusOK, "tracking.html", data,
			middleware.Notice{Kind: middleware.NoticeError, Message: appErr.Message})
		return
	}

	data := gin.H{"Payment": payment}
	if t, lookupErr := h.tickets.GetTicket(c.Request.Context(), id); lookupErr == nil {
		data["Ticket"] = t
	}

	notice := middleware.Notice{Kind: middleware.NoticeSuccess, Message: "Payment received. Thank you!"}
	if payment.Status != entities.PaymentStatusApproved {
		notice = middleware.Notice{Kind: middleware.NoticeSuccess, Message: "Payment submitted and pending confirmation."}
	}
	render(c, http.StatusOK, "tracking.html", data, notice)
}
