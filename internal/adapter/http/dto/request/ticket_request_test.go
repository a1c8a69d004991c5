package request

import (
	"errors"
	"testing"

	"repairdesk/internal/domain/entities"
)

func TestTrackTicketRequest(t *testing.T) {
	t.Run("empty form", func(t *testing.T) {
		if !(TrackTicketRequest{TicketID: "  "}).Empty() {
			t.Fatalf("expected blank ticket_id to be empty")
		}
		if (TrackTicketRequest{TicketID: "42"}).Empty() {
			t.Fatalf("expected 42 to be non-empty")
		}
	})

	t.Run("resolve id", func(t *testing.T) {
		id, err := TrackTicketRequest{TicketID: " 42 "}.ResolveTicketID()
		if err != nil || id != 42 {
			t.Fatalf("expected 42, got %d err=%v", id, err)
		}

		for _, raw := range []string{"abc", "0", "-3", "4.5", ""} {
			if _, err := (TrackTicketRequest{TicketID: raw}).ResolveTicketID(); !errors.Is(err, ErrInvalidTicketIDField) {
				t.Fatalf("raw %q: expected ErrInvalidTicketIDField, got %v", raw, err)
			}
		}
	})
}

func TestUpdateTicketRequest(t *testing.T) {
	t.Run("resolve status", func(t *testing.T) {
		status, err := UpdateTicketRequest{Status: "In Repair"}.ResolveStatus()
		if err != nil || status != entities.TicketStatusInRepair {
			t.Fatalf("expected In Repair, got %q err=%v", status, err)
		}

		if _, err := (UpdateTicketRequest{Status: "Lost"}).ResolveStatus(); !errors.Is(err, ErrInvalidStatusField) {
			t.Fatalf("expected ErrInvalidStatusField, got %v", err)
		}
	})

	t.Run("resolve cost", func(t *testing.T) {
		cost, err := UpdateTicketRequest{EstimatedCost: " 49.99 "}.ResolveCost()
		if err != nil || cost != 49.99 {
			t.Fatalf("expected 49.99, got %v err=%v", cost, err)
		}

		if _, err := (UpdateTicketRequest{EstimatedCost: "free"}).ResolveCost(); !errors.Is(err, ErrInvalidCostField) {
			t.Fatalf("expected ErrInvalidCostField for text, got %v", err)
		}
		if _, err := (UpdateTicketRequest{EstimatedCost: "-10"}).ResolveCost(); !errors.Is(err, ErrInvalidCostField) {
			t.Fatalf("expected ErrInvalidCostField for negative, got %v", err)
		}
	})
}

func TestParsePathID(t *testing.T) {
	id, err := ParsePathID("7")
	if err != nil || id != 7 {
		t.Fatalf("expected 7, got %d err=%v", id, err)
	}
	if _, err := ParsePathID("seven"); !errors.Is(err, ErrInvalidTicketIDField) {
		t.Fatalf("expected ErrInvalidTicketIDField, got %v", err)
	}
	if _, err := ParsePathID("0"); !errors.Is(err, ErrInvalidTicketIDField) {
		t.Fatalf("expected ErrInvalidTicketIDField, got %v", err)
	}
}
