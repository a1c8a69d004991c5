package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTicketNotPayable          = errors.New("ticket not payable")
	ErrTicketAlreadyPaid         = errors.New("ticket already paid")
	ErrPaymentGatewayUnavailable = errors.New("payment gateway unavailable")
)

// IPaymentUseCase encapsulates the pay-on-pickup flow: once a repair is
// ready and quoted, the customer settles the estimated cost from the
// tracking page.

type IPaymentUseCase interface {
	PayTicket(ctx context.Context, ticketID int64) (entities.TicketPayment, error)
	ListPayments(ctx context.Context, ticketID int64) ([]entities.TicketPayment, error)
}

type PaymentUseCase struct {
	repo       interfaces.ITicketPaymentRepository
	ticketRepo interfaces.ITicketRepository
	gateway    interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.ITicketPaymentRepository, ticketRepo interfaces.ITicketRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, ticketRepo: ticketRepo, gateway: gateway}
}

func (u *PaymentUseCase) PayTicket(ctx context.Context, ticketID int64) (entities.TicketPayment, error) {
	if ticketID <= 0 {
		return entities.TicketPayment{}, ErrInvalidTicketID
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured ticket_id=%d", ticketID)
		return entities.TicketPayment{}, ErrPaymentGatewayUnavailable
	}

	t, err := u.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return entities.TicketPayment{}, err
	}
	if t.ID == 0 {
		return entities.TicketPayment{}, ErrTicketNotFound
	}
	if !t.Payable() {
		return entities.TicketPayment{}, ErrTicketNotPayable
	}

	existing, err := u.repo.ListByTicketID(ctx, ticketID)
	if err != nil {
		return entities.TicketPayment{}, err
	}
	for _, p := range existing {
		if p.Status == entities.PaymentStatusApproved {
			return entities.TicketPayment{}, ErrTicketAlreadyPaid
		}
	}

	// The source of truth for the amount is the ticket in DB; the browser
	// never supplies it.
	charge := interfaces.PaymentCharge{
		Amount:      t.EstimatedCost,
		Description: fmt.Sprintf("Repair ticket #%d (%s)", t.ID, t.DeviceModel),
		Reference:   strconv.FormatInt(t.ID, 10),
		PayerEmail:  t.CustomerEmail,
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, charge)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed ticket_id=%d err=%v", ticketID, err)
		return entities.TicketPayment{}, ErrPaymentGatewayUnavailable
	}

	p := entities.TicketPayment{
		ID:                  uuid.NewString(),
		TicketID:            t.ID,
		Amount:              t.EstimatedCost,
		Date:                time.Now().UTC(),
		Status:              paymentStatusFromProvider(providerStatus),
		ProviderPaymentID:   providerPaymentID,
		ProviderResponseRaw: providerResp,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed ticket_id=%d payment_id=%s err=%v", ticketID, p.ID, err)
		return entities.TicketPayment{}, err
	}
	log.Printf("[payment][usecase] payment recorded ticket_id=%d payment_id=%s status=%s", ticketID, created.ID, created.Status)
	return created, nil
}

func (u *PaymentUseCase) ListPayments(ctx context.Context, ticketID int64) ([]entities.TicketPayment, error) {
	if ticketID <= 0 {
		return nil, ErrInvalidTicketID
	}
	return u.repo.ListByTicketID(ctx, ticketID)
}

func paymentStatusFromProvider(providerStatus string) entities.PaymentStatus {
	switch providerStatus {
	case "approved":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}
