package request

import (
	"errors"
	"strconv"
	"strings"

	"repairdesk/internal/domain/entities"
)

var (
	ErrInvalidTicketIDField = errors.New("invalid ticket id")
	ErrInvalidStatusField   = errors.New("invalid status value")
	ErrInvalidCostField     = errors.New("invalid estimated cost value")
)

// TrackTicketRequest is the public tracking form. The field is optional:
// submitting an empty form just re-renders the page.
type TrackTicketRequest struct {
	TicketID string `form:"ticket_id"`
}

func (r TrackTicketRequest) Empty() bool {
	return strings.TrimSpace(r.TicketID) == ""
}

func (r TrackTicketRequest) ResolveTicketID() (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(r.TicketID), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidTicketIDField
	}
	return id, nil
}

// LoginRequest is the staff login form.
type LoginRequest struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// AddTicketRequest is the intake form on the dashboard. Status and cost are
// not accepted here; creation forces Received / 0.00.
type AddTicketRequest struct {
	CustomerName     string `form:"customer_name" binding:"required"`
	CustomerEmail    string `form:"customer_email" binding:"required"`
	DeviceModel      string `form:"device_model" binding:"required"`
	SerialNumber     string `form:"serial_number" binding:"required"`
	IssueDescription string `form:"issue_description" binding:"required"`
}

// UpdateTicketRequest is the per-row status/cost form on the dashboard.
// Both fields are validated at the boundary: status against the known set,
// cost as a non-negative number.
type UpdateTicketRequest struct {
	Status        string `form:"status" binding:"required"`
	EstimatedCost string `form:"estimated_cost" binding:"required"`
}

func (r UpdateTicketRequest) ResolveStatus() (entities.TicketStatus, error) {
	status := entities.TicketStatus(strings.TrimSpace(r.Status))
	if !status.Valid() {
		return "", ErrInvalidStatusField
	}
	return status, nil
}

func (r UpdateTicketRequest) ResolveCost() (float64, error) {
	cost, err := strconv.ParseFloat(strings.TrimSpace(r.EstimatedCost), 64)
	if err != nil || cost < 0 {
		return 0, ErrInvalidCostField
	}
	return cost, nil
}

// ParsePathID resolves the :id path segment used by update/delete/pay.
func ParsePathID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidTicketIDField
	}
	return id, nil
}
