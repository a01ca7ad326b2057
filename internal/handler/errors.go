package handler

import (
	"errors"
	"net/http"

	"github.com/gmottab/cine-reservas/internal/service"
)

// statusFor maps the domain taxonomy to HTTP statuses. Anything outside the
// taxonomy is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrClientNotFound),
		errors.Is(err, service.ErrReservationNotFound),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrFilmNotFound),
		errors.Is(err, service.ErrEmptySessionList):
		return http.StatusNotFound
	case errors.Is(err, service.ErrSessionAlreadyExists),
		errors.Is(err, service.ErrReservationInactive):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidSessionDate),
		errors.Is(err, service.ErrInvalidPaymentAmount):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
