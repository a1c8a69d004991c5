package interfaces

import (
	"context"

	"repairdesk/internal/domain/entities"
)

//go:generate mockgen -source=ticket_payment_repository_interface.go -destination=mocks/ticket_payment_repository_mock.go -package=mock_interfaces

// ITicketPaymentRepository abstracts DynamoDB persistence for payments
// taken against finished repairs.
type ITicketPaymentRepository interface {
	Create(ctx context.Context, p entities.TicketPayment) (entities.TicketPayment, error)
	ListByTicketID(ctx context.Context, ticketID int64) ([]entities.TicketPayment, error)
}
