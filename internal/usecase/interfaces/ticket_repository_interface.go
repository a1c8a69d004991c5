package interfaces

import (
	"context"

	"repairdesk/internal/domain/entities"
)

//go:generate mockgen -source=ticket_repository_interface.go -destination=mocks/ticket_repository_mock.go -package=mock_interfaces

// ITicketRepository abstracts DynamoDB persistence for repair tickets.
//
// The tracker must be able to:
//   - create a ticket at intake (the repository assigns the next integer id)
//   - fetch one ticket by id for the public tracking page
//   - list every ticket, newest id first, for the staff dashboard
//   - update status and estimated cost, and nothing else
//   - delete a ticket
//
// A zero-ID ticket return with a nil error means "not found"; callers map
// that to their own not-found sentinel.
type ITicketRepository interface {
	Create(ctx context.Context, t entities.Ticket) (entities.Ticket, error)
	GetByID(ctx context.Context, id int64) (entities.Ticket, error)
	List(ctx context.Context) ([]entities.Ticket, error)
	UpdateStatusCost(ctx context.Context, id int64, status entities.TicketStatus, cost float64) (entities.Ticket, error)
	Delete(ctx context.Context, id int64) error
}
