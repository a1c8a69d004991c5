package repository

import (
	"testing"
	"time"

	"repairdesk/internal/domain/entities"
)

func TestTicketItemConversion(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 26, 53, 589000000, time.UTC)
	in := entities.Ticket{
		ID:               12,
		CustomerName:     "Grace Hopper",
		CustomerEmail:    "grace@example.com",
		DeviceModel:      "MacBook Air",
		SerialNumber:     "C02XYZ",
		IssueDescription: "Cracked screen",
		Status:           entities.TicketStatusAwaitingParts,
		EstimatedCost:    249.5,
		CreatedAt:        created,
		UpdatedAt:        created.Add(time.Hour),
	}

	it := toTicketItem(in)
	if it.EstimatedCost != "249.5" {
		t.Fatalf("cost stored as %q", it.EstimatedCost)
	}
	if it.Status != "Awaiting Parts" {
		t.Fatalf("status stored as %q", it.Status)
	}

	out := fromTicketItem(it)
	if out.ID != in.ID || out.Status != in.Status || out.EstimatedCost != in.EstimatedCost {
		t.Fatalf("round trip mismatch: %+v", out)
	}
	if !out.CreatedAt.Equal(in.CreatedAt) || !out.UpdatedAt.Equal(in.UpdatedAt) {
		t.Fatalf("timestamp mismatch: %+v", out)
	}
}

func TestSortTicketsByIDDesc(t *testing.T) {
	tickets := []entities.Ticket{{ID: 3}, {ID: 11}, {ID: 1}, {ID: 7}}
	SortTicketsByIDDesc(tickets)

	want := []int64{11, 7, 3, 1}
	for i, w := range want {
		if tickets[i].ID != w {
			t.Fatalf("position %d: expected id %d, got %d", i, w, tickets[i].ID)
		}
	}
}

func TestFloatToString(t *testing.T) {
	if got := floatToString(0); got != "0" {
		t.Fatalf("expected 0, got %q", got)
	}
	if got := floatToString(149.9); got != "149.9" {
		t.Fatalf("expected 149.9, got %q", got)
	}
}
