package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gmottab/cine-reservas/internal/model"
	"github.com/gmottab/cine-reservas/internal/remote"
	"github.com/gmottab/cine-reservas/internal/repository"
	"github.com/gmottab/cine-reservas/internal/service"
)

// Status messages shown to clients on their reservations.
const (
	StatusAwaitingPayment  = "Reserva criada. Aguardando pagamento."
	StatusPaymentConfirmed = "Pagamento confirmado."
	StatusCancelled        = "Reserva cancelada."
)

type ReservationService interface {
	CreateReservation(ctx context.Context, clientID string, sessionID uint) (*model.Reservation, error)
	GetReservation(clientID, reservationID string) (*model.Reservation, error)
	CancelReservation(clientID, reservationID string) error
	ConfirmPayment(clientID, reservationID string, amount float64) error
}

// BalanceStore is the local client-balance snapshot the payment flow reads
// and debits. Backed by Redis in production. Debits are keyed by reservation
// id and must be idempotent: the confirmation listener retries them on
// redelivery.
type BalanceStore interface {
	GetClientBalance(clientID string) (float64, error)
	DebitForReservation(clientID, reservationID string, amount float64) error
}

type reservationService struct {
	repo     repository.ReservationRepo
	sessions SessionService
	clients  remote.ClientDirectory
	balances BalanceStore
}

var _ ReservationService = (*reservationService)(nil)

func NewReservationService(reservationRepo repository.ReservationRepo, sessions SessionService, clients remote.ClientDirectory, balances BalanceStore) *reservationService {
	return &reservationService{
		repo:     reservationRepo,
		sessions: sessions,
		clients:  clients,
		balances: balances,
	}
}

// CreateReservation binds a new pending reservation to an active session.
// The session's active flag is the one read here; it is not re-checked
// between validation and persist.
func (s *reservationService) CreateReservation(ctx context.Context, clientID string, sessionID uint) (*model.Reservation, error) {
	if _, err := s.clients.GetClientByID(ctx, clientID); err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			return nil, service.ErrClientNotFound
		}
		return nil, err
	}

	session, err := s.sessions.GetSessionByID(sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Active {
		return nil, service.ErrSessionNotFound
	}

	reservation := &model.Reservation{
		ID:            uuid.NewString(),
		ClientID:      clientID,
		SessionID:     session.ID,
		Confirmed:     false,
		Active:        true,
		StatusMessage: StatusAwaitingPayment,
	}

	if err := s.repo.Create(reservation); err != nil {
		return nil, err
	}
	if err := s.sessions.AttachReservation(reservation); err != nil {
		return nil, err
	}
	// Attach is allowed to touch the reservation, so it is saved again.
	if err := s.repo.Save(reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

// GetReservation looks a reservation up for a given owner. A reservation
// owned by someone else behaves exactly like a missing one.
func (s *reservationService) GetReservation(clientID, reservationID string) (*model.Reservation, error) {
	reservation, err := s.repo.GetByID(reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrReservationNotFound
		}
		return nil, err
	}
	if reservation.ClientID != clientID {
		return nil, service.ErrReservationNotFound
	}
	return reservation, nil
}

// CancelReservation is terminal: the reservation stays attached to its
// session but never becomes active again.
func (s *reservationService) CancelReservation(clientID, reservationID string) error {
	reservation, err := s.GetReservation(clientID, reservationID)
	if err != nil {
		return err
	}
	if err := s.repo.Deactivate(reservation.ID, StatusCancelled); err != nil {
		return err
	}
	reservation.Active = false
	reservation.StatusMessage = StatusCancelled
	return s.sessions.DetachReservation(reservation)
}

// ConfirmPayment applies the payment confirmation to the reservation. The
// flip plus status message is one conditional update keyed on the
// reservation id, so redelivery of the same message, concurrent or not,
// flips nothing twice. The debit is attempted on every delivery and is
// itself keyed by reservation id: a debit that failed after the flip
// committed surfaces as an error, the message is redelivered, and the
// retried debit lands instead of being lost.
func (s *reservationService) ConfirmPayment(clientID, reservationID string, amount float64) error {
	if amount <= 0 {
		return service.ErrInvalidPaymentAmount
	}

	reservation, err := s.GetReservation(clientID, reservationID)
	if err != nil {
		return err
	}

	if _, err := s.repo.ConfirmIfPending(reservation.ID, StatusPaymentConfirmed); err != nil {
		return err
	}

	return s.balances.DebitForReservation(clientID, reservation.ID, amount)
}
