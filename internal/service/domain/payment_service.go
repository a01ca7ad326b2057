package domain

import (
	"context"
	"errors"

	"github.com/gmottab/cine-reservas/internal/cache"
	"github.com/gmottab/cine-reservas/internal/remote"
	"github.com/gmottab/cine-reservas/internal/service"
)

type PaymentService interface {
	ValidatePayment(ctx context.Context, clientID, reservationID string, amount float64) error
}

type paymentService struct {
	clients      remote.ClientDirectory
	reservations remote.ReservationLookup
	balances     BalanceStore
}

var _ PaymentService = (*paymentService)(nil)

func NewPaymentService(clients remote.ClientDirectory, reservations remote.ReservationLookup, balances BalanceStore) *paymentService {
	return &paymentService{
		clients:      clients,
		reservations: reservations,
		balances:     balances,
	}
}

// ValidatePayment runs the fixed validation sequence, stopping at the first
// failure: remote client existence, remote reservation existence and
// ownership, reservation active state, local balance sufficiency. The local
// balance snapshot can lag the remote directory, so a client that passed
// the first check may still miss here.
func (s *paymentService) ValidatePayment(ctx context.Context, clientID, reservationID string, amount float64) error {
	if _, err := s.clients.GetClientByID(ctx, clientID); err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			return service.ErrClientNotFound
		}
		return err
	}

	reservation, err := s.reservations.GetReservation(ctx, clientID, reservationID)
	if err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			return service.ErrReservationNotFound
		}
		return err
	}

	if !reservation.Active {
		return service.ErrReservationInactive
	}

	balance, err := s.balances.GetClientBalance(clientID)
	if err != nil {
		// the snapshot feed lags the directory, absent here means not found
		if errors.Is(err, cache.ErrBalanceNotFound) {
			return service.ErrClientNotFound
		}
		return err
	}
	if balance < amount {
		return service.ErrInsufficientBalance
	}
	return nil
}
