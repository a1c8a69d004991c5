package handlers

import (
	"errors"
	"net/http"

	"repairdesk/internal/adapter/http/dto/request"
	"repairdesk/internal/usecase"
	"repairdesk/pkg"
)

// Users only ever see the Message of these AppErrors; raw upstream error
// text stays out of rendered pages.
func mapTicketError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingTicketFields):
		return pkg.NewDomainErrorSimple(pkg.CodeValidation, "All intake fields are required.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTicketID), errors.Is(err, request.ErrInvalidTicketIDField):
		return pkg.NewDomainErrorSimple(pkg.CodeValidation, "Ticket ID must be a positive number.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTicketStatus), errors.Is(err, request.ErrInvalidStatusField):
		return pkg.NewDomainErrorSimple(pkg.CodeValidation, "Unknown repair status.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTicketCost), errors.Is(err, request.ErrInvalidCostField):
		return pkg.NewDomainErrorSimple(pkg.CodeValidation, "Estimated cost must be a non-negative number.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTicketNotFound):
		return pkg.NewDomainErrorSimple(pkg.CodeNotFound, "Ticket not found. Please check the ID.", http.StatusNotFound)
	default:
		return pkg.NewDomainError(pkg.CodeUpstreamUnavailable, "Could not reach the repair database. Please try again.", err, http.StatusBadGateway)
	}
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCredentials):
		return pkg.NewDomainErrorSimple(pkg.CodeValidation, "Email and password are required.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple(pkg.CodeUnauthorized, "Login failed: invalid email or password.", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError(pkg.CodeUpstreamUnavailable, "Login is temporarily unavailable. Please try again.", err, http.StatusBadGateway)
	}
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrTicketNotFound):
		return pkg.NewDomainErrorSimple(pkg.CodeNotFound, "Ticket not found. Please check the ID.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTicketID), errors.Is(err, request.ErrInvalidTicketIDField):
		return pkg.NewDomainErrorSimple(pkg.CodeValidation, "Ticket ID must be a positive number.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTicketNotPayable):
		return pkg.NewDomainErrorSimple(pkg.CodeValidation, "This repair is not ready for payment yet.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTicketAlreadyPaid):
		return pkg.NewDomainErrorSimple(pkg.CodeValidation, "This repair has already been paid.", http.StatusConflict)
	default:
		return pkg.NewDomainError(pkg.CodeUpstreamUnavailable, "Payment is temporarily unavailable. Please try again.", err, http.StatusBadGateway)
	}
}
