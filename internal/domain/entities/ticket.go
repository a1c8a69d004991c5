package entities

import "time"

// TicketStatus is the repair lifecycle stage shown to customers.
//
// Domain notes:
//   - Every ticket starts as "Received"; staff move it forward from the
//     dashboard.
//   - The update form only offers values from this set; anything else is
//     rejected at the boundary.

type TicketStatus string

const (
	TicketStatusReceived       TicketStatus = "Received"
	TicketStatusDiagnosing     TicketStatus = "Diagnosing"
	TicketStatusAwaitingParts  TicketStatus = "Awaiting Parts"
	TicketStatusInRepair       TicketStatus = "In Repair"
	TicketStatusReadyForPickup TicketStatus = "Ready for Pickup"
	TicketStatusCompleted      TicketStatus = "Completed"
)

// AllTicketStatuses lists the valid stages in lifecycle order, used by the
// dashboard select and by boundary validation.
func AllTicketStatuses() []TicketStatus {
	return []TicketStatus{
		TicketStatusReceived,
		TicketStatusDiagnosing,
		TicketStatusAwaitingParts,
		TicketStatusInRepair,
		TicketStatusReadyForPickup,
		TicketStatusCompleted,
	}
}

func (s TicketStatus) Valid() bool {
	for _, known := range AllTicketStatuses() {
		if s == known {
			return true
		}
	}
	return false
}

// Ticket is the repair job record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - Table: tickets
//   - PK: id (number, assigned from an atomic counter item)
//
// Mutability:
//   - Only Status and EstimatedCost change after creation; the customer
//     and device fields are written once at intake.
type Ticket struct {
	ID               int64        `json:"id"`
	CustomerName     string       `json:"customer_name"`
	CustomerEmail    string       `json:"customer_email"`
	DeviceModel      string       `json:"device_model"`
	SerialNumber     string       `json:"serial_number"`
	IssueDescription string       `json:"issue_description"`
	Status           TicketStatus `json:"status"`
	EstimatedCost    float64      `json:"estimated_cost"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// Payable reports whether the customer can pay for the repair from the
// tracking page: the device is done and a cost has been quoted.
func (t Ticket) Payable() bool {
	if t.EstimatedCost <= 0 {
		return false
	}
	return t.Status == TicketStatusReadyForPickup || t.Status == TicketStatusCompleted
}
