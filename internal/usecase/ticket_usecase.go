package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase/interfaces"
)

var (
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrInvalidTicketID     = errors.New("invalid ticket id")
	ErrMissingTicketFields = errors.New("missing required ticket fields")
	ErrInvalidTicketStatus = errors.New("invalid ticket status")
	ErrInvalidTicketCost   = errors.New("invalid estimated cost")
)

// TicketIntake carries the fields accepted at ticket creation. Status and
// cost are deliberately absent: every new ticket starts as "Received" with
// a 0.00 estimate no matter what the caller sends.
type TicketIntake struct {
	CustomerName     string
	CustomerEmail    string
	DeviceModel      string
	SerialNumber     string
	IssueDescription string
}

// ITicketUseCase exposes the repair ticket operations.
//
// These map one-to-one onto the web surface:
//   - public tracking lookup  => GetTicket()
//   - dashboard listing       => ListTickets()
//   - intake form             => CreateTicket()
//   - status/cost form        => UpdateTicket()
//   - delete button           => DeleteTicket()

type ITicketUseCase interface {
	CreateTicket(ctx context.Context, intake TicketIntake) (entities.Ticket, error)
	GetTicket(ctx context.Context, id int64) (entities.Ticket, error)
	ListTickets(ctx context.Context) ([]entities.Ticket, error)
	UpdateTicket(ctx context.Context, id int64, status entities.TicketStatus, cost float64) (entities.Ticket, error)
	DeleteTicket(ctx context.Context, id int64) error
}

type TicketUseCase struct {
	repo interfaces.ITicketRepository
}

var _ ITicketUseCase = (*TicketUseCase)(nil)

func NewTicketUseCase(repo interfaces.ITicketRepository) *TicketUseCase {
	return &TicketUseCase{repo: repo}
}

func (u *TicketUseCase) CreateTicket(ctx context.Context, intake TicketIntake) (entities.Ticket, error) {
	intake.CustomerName = strings.TrimSpace(intake.CustomerName)
	intake.CustomerEmail = strings.TrimSpace(intake.CustomerEmail)
	intake.DeviceModel = strings.TrimSpace(intake.DeviceModel)
	intake.SerialNumber = strings.TrimSpace(intake.SerialNumber)
	intake.IssueDescription = strings.TrimSpace(intake.IssueDescription)

	if intake.CustomerName == "" || intake.CustomerEmail == "" || intake.DeviceModel == "" ||
		intake.SerialNumber == "" || intake.IssueDescription == "" {
		return entities.Ticket{}, ErrMissingTicketFields
	}

	now := time.Now().UTC()
	t := entities.Ticket{
		CustomerName:     intake.CustomerName,
		CustomerEmail:    intake.CustomerEmail,
		DeviceModel:      intake.DeviceModel,
		SerialNumber:     intake.SerialNumber,
		IssueDescription: intake.IssueDescription,
		Status:           entities.TicketStatusReceived,
		EstimatedCost:    0,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return u.repo.Create(ctx, t)
}

func (u *TicketUseCase) GetTicket(ctx context.Context, id int64) (entities.Ticket, error) {
	if id <= 0 {
		return entities.Ticket{}, ErrInvalidTicketID
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Ticket{}, err
	}
	if t.ID == 0 {
		return entities.Ticket{}, ErrTicketNotFound
	}
	return t, nil
}

func (u *TicketUseCase) ListTickets(ctx context.Context) ([]entities.Ticket, error) {
	return u.repo.List(ctx)
}

func (u *TicketUseCase) UpdateTicket(ctx context.Context, id int64, status entities.TicketStatus, cost float64) (entities.Ticket, error) {
	if id <= 0 {
		return entities.Ticket{}, ErrInvalidTicketID
	}
	if !status.Valid() {
		return entities.Ticket{}, ErrInvalidTicketStatus
	}
	if cost < 0 {
		return entities.Ticket{}, ErrInvalidTicketCost
	}

	updated, err := u.repo.UpdateStatusCost(ctx, id, status, cost)
	if err != nil {
		return entities.Ticket{}, err
	}
	if updated.ID == 0 {
		return entities.Ticket{}, ErrTicketNotFound
	}
	return updated, nil
}

func (u *TicketUseCase) DeleteTicket(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidTicketID
	}
	return u.repo.Delete(ctx, id)
}
