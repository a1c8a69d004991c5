package handlers

import (
	"errors"
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

func trackingRouter(tickets *mocks.MockITicketUseCase) *gin.Engine {
	h := NewTrackingHandler(tickets)
	r := newTestRouter()
	r.GET("/", h.ShowTrackingPage)
	r.POST("/", h.TrackTicket)
	return r
}

func TestTrackingHandler_ShowTrackingPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tickets := mocks.NewMockITicketUseCase(ctrl)
	r := trackingRouter(tickets)

	// No GetTicket expectation: a GET must not touch the usecase.
	w := doGet(r, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ticket_id") {
		t.Fatalf("expected lookup form in body")
	}
}

func TestTrackingHandler_TrackTicket(t *testing.T) {
	t.Run("empty form skips the lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tickets := mocks.NewMockITicketUseCase(ctrl)
		r := trackingRouter(tickets)

		w := doPostForm(r, "/", url.Values{"ticket_id": {"  "}})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("non-numeric id renders a validation notice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tickets := mocks.NewMockITicketUseCase(ctrl)
		r := trackingRouter(tickets)

		w := doPostForm(r, "/", url.Values{"ticket_id": {"abc"}})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Ticket ID must be a positive number.") {
			t.Fatalf("expected validation notice, body: %s", w.Body.String())
		}
	})

	t.Run("unknown id renders not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tickets := mocks.NewMockITicketUseCase(ctrl)
		r := trackingRouter(tickets)

		tickets.EXPECT().GetTicket(gomock.Any(), int64(9999)).
			Return(entities.Ticket{}, usecase.ErrTicketNotFound)

		w := doPostForm(r, "/", url.Values{"ticket_id": {"9999"}})
		if !strings.Contains(w.Body.String(), "Ticket not found. Please check the ID.") {
			t.Fatalf("expected not-found notice, body: %s", w.Body.String())
		}
	})

	t.Run("backend failure hides the raw error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tickets := mocks.NewMockITicketUseCase(ctrl)
		r := trackingRouter(tickets)

		tickets.EXPECT().GetTicket(gomock.Any(), int64(5)).
			Return(entities.Ticket{}, errors.New("dynamo: connection refused"))

		w := doPostForm(r, "/", url.Values{"ticket_id": {"5"}})
		body := w.Body.String()
		if !strings.Contains(body, "Could not reach the repair database. Please try again.") {
			t.Fatalf("expected generic notice, body: %s", body)
		}
		if strings.Contains(body, "connection refused") {
			t.Fatalf("raw error leaked into the page")
		}
	})

	t.Run("found ticket is rendered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tickets := mocks.NewMockITicketUseCase(ctrl)
		r := trackingRouter(tickets)

		tickets.EXPECT().GetTicket(gomock.Any(), int64(42)).Return(entities.Ticket{
			ID:           42,
			CustomerName: "Grace Hopper",
			DeviceModel:  "MacBook Air",
			Status:       entities.TicketStatusInRepair,
		}, nil)

		w := doPostForm(r, "/", url.Values{"ticket_id": {"42"}})
		body := w.Body.String()
		if !strings.Contains(body, "Grace Hopper") || !strings.Contains(body, "In Repair") {
			t.Fatalf("expected ticket details, body: %s", body)
		}
	})
}
