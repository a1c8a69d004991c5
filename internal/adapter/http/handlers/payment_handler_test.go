package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"repairdesk/internal/adapter/http/handlers/mocks"
	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func paymentRouter(payments *mocks.MockIPaymentUseCase, tickets *mocks.MockITicketUseCase) *gin.Engine {
	h := NewPaymentHandler(payments, tickets)
	r := newTestRouter()
	r.POST("/pay/:id", h.PayTicket)
	return r
}

func TestPaymentHandler_PayTicket(t *testing.T) {
	t.Run("approved payment renders a receipt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mocks.NewMockIPaymentUseCase(ctrl)
		tickets := mocks.NewMockITicketUseCase(ctrl)
		r := paymentRouter(payments, tickets)

		payments.EXPECT().PayTicket(gomock.Any(), int64(42)).Return(entities.TicketPayment{
			ID:       "p-1",
			TicketID: 42,
			Amount:   149.90,
			Status:   entities.PaymentStatusApproved,
		}, nil)
		tickets.EXPECT().GetTicket(gomock.Any(), int64(42)).Return(entities.Ticket{
			ID:            42,
			CustomerName:  "Grace Hopper",
			Status:        entities.TicketStatusReadyForPickup,
			EstimatedCost: 149.90,
		}, nil)

		w := doPostForm(r, "/pay/42", url.Values{})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Payment received. Thank you!") {
			t.Fatalf("expected receipt notice, body: %s", w.Body.String())
		}
	})

	t.Run("unpayable ticket renders the rejection with the ticket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mocks.NewMockIPaymentUseCase(ctrl)
		tickets := mocks.NewMockITicketUseCase(ctrl)
		r := paymentRouter(payments, tickets)

		payments.EXPECT().PayTicket(gomock.Any(), int64(42)).
			Return(entities.TicketPayment{}, usecase.ErrTicketNotPayable)
		tickets.EXPECT().GetTicket(gomock.Any(), int64(42)).Return(entities.Ticket{
			ID:     42,
			Status: entities.TicketStatusInRepair,
		}, nil)

		w := doPostForm(r, "/pay/42", url.Values{})
		if !strings.Contains(w.Body.String(), "This repair is not ready for payment yet.") {
			t.Fatalf("expected rejection notice, body: %s", w.Body.String())
		}
	})

	t.Run("bad id never reaches the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mocks.NewMockIPaymentUseCase(ctrl)
		tickets := mocks.NewMockITicketUseCase(ctrl)
		r := paymentRouter(payments, tickets)

		w := doPostForm(r, "/pay/zero", url.Values{})
		if !strings.Contains(w.Body.String(), "Ticket ID must be a positive number.") {
			t.Fatalf("expected validation notice, body: %s", w.Body.String())
		}
	})
}
