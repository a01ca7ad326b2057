// Package service holds the sentinel errors shared by the domain services.
// Handlers translate them to HTTP statuses, the confirmation consumer uses
// them to decide between dropping and redelivering a message.
package service

import "errors"

var (
	ErrClientNotFound       = errors.New("client not found")
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrReservationInactive  = errors.New("reservation is not active")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionAlreadyExists = errors.New("session already exists for this room and time")
	ErrInvalidSessionDate   = errors.New("session date must be in the future")
	ErrFilmNotFound         = errors.New("film not found")
	ErrEmptySessionList     = errors.New("no sessions registered")
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
)

// IsDomainError reports whether err belongs to the domain taxonomy above.
// Domain errors are permanent: retrying the same input cannot succeed.
func IsDomainError(err error) bool {
	for _, domainErr := range []error{
		ErrClientNotFound,
		ErrReservationNotFound,
		ErrReservationInactive,
		ErrInsufficientBalance,
		ErrSessionNotFound,
		ErrSessionAlreadyExists,
		ErrInvalidSessionDate,
		ErrFilmNotFound,
		ErrEmptySessionList,
		ErrInvalidPaymentAmount,
	} {
		if errors.Is(err, domainErr) {
			return true
		}
	}
	return false
}
