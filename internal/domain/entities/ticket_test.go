package entities

import "testing"

func TestTicketStatusValid(t *testing.T) {
	for _, s := range AllTicketStatuses() {
		if !s.Valid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	for _, s := range []TicketStatus{"", "Lost", "received"} {
		if s.Valid() {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}

func TestTicketPayable(t *testing.T) {
	cases := []struct {
		name   string
		ticket Ticket
		want   bool
	}{
		{"ready with estimate", Ticket{Status: TicketStatusReadyForPickup, EstimatedCost: 100}, true},
		{"completed with estimate", Ticket{Status: TicketStatusCompleted, EstimatedCost: 100}, true},
		{"still in repair", Ticket{Status: TicketStatusInRepair, EstimatedCost: 100}, false},
		{"ready without estimate", Ticket{Status: TicketStatusReadyForPickup, EstimatedCost: 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ticket.Payable(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
