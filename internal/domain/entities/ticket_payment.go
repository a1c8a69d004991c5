package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// TicketPayment records a customer payment for a finished repair.
//
// Storage model (DynamoDB):
//   - Table: ticket_payments
//   - PK: id (string, uuid)
//   - GSI: ticket_id-index (PK: ticket_id)
//
// Provider payload:
//   - ProviderResponseRaw keeps the original gateway response (JSON) for
//     traceability; Amount is the charged value as quoted on the ticket.
type TicketPayment struct {
	ID       string        `json:"id"`
	TicketID int64         `json:"ticket_id"`
	Amount   float64       `json:"amount"`
	Date     time.Time     `json:"date"`
	Status   PaymentStatus `json:"status"`

	ProviderPaymentID   string          `json:"provider_payment_id,omitempty"`
	ProviderResponseRaw json.RawMessage `json:"provider_response_raw,omitempty"`
}
