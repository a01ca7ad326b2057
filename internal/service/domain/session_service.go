package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gmottab/cine-reservas/internal/model"
	"github.com/gmottab/cine-reservas/internal/remote"
	"github.com/gmottab/cine-reservas/internal/repository"
	"github.com/gmottab/cine-reservas/internal/service"
)

type SessionService interface {
	CreateSession(ctx context.Context, filmTitle string, room int, price float64, startsAt time.Time) (*model.Session, error)
	ListSessions() ([]model.Session, error)
	GetSessionByID(id uint) (*model.Session, error)
	CancelSession(id uint) error
	AttachReservation(reservation *model.Reservation) error
	DetachReservation(reservation *model.Reservation) error
	ReservationsOfSession(id uint) ([]model.Reservation, error)
}

type sessionService struct {
	db              *gorm.DB
	repo            repository.SessionRepo
	reservationRepo repository.ReservationRepo
	catalog         remote.FilmCatalog
}

var _ SessionService = (*sessionService)(nil)

func NewSessionService(db *gorm.DB, sessionRepo repository.SessionRepo, reservationRepo repository.ReservationRepo, catalog remote.FilmCatalog) *sessionService {
	return &sessionService{
		db:              db,
		repo:            sessionRepo,
		reservationRepo: reservationRepo,
		catalog:         catalog,
	}
}

// CreateSession registers a screening. The film descriptor is fetched from
// the catalog by title and copied onto the session row; it is not looked at
// again after this point. (room, startsAt) must be free across active and
// cancelled sessions alike.
func (s *sessionService) CreateSession(ctx context.Context, filmTitle string, room int, price float64, startsAt time.Time) (*model.Session, error) {
	film, err := s.catalog.GetFilmByTitle(ctx, filmTitle)
	if err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			return nil, service.ErrFilmNotFound
		}
		return nil, err
	}

	if !startsAt.After(time.Now()) {
		return nil, service.ErrInvalidSessionDate
	}

	session := &model.Session{
		FilmTitle:       film.Title,
		FilmDurationMin: film.DurationMin,
		FilmGenre:       film.Genre,
		FilmAuthor:      film.Author,
		FilmReleaseDate: film.ReleaseDate,
		Room:            room,
		Price:           price,
		StartsAt:        startsAt,
		Active:          true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		_, err := repo.GetByRoomAndStart(room, startsAt)
		if err == nil {
			return service.ErrSessionAlreadyExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// a concurrent create can still slip past the check; the unique
		// index on (room, starts_at) turns that into a duplicate-key error
		if err := repo.Create(session); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return service.ErrSessionAlreadyExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// ListSessions treats an empty store as an error, not an empty success.
func (s *sessionService) ListSessions() ([]model.Session, error) {
	sessions, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, service.ErrEmptySessionList
	}
	return sessions, nil
}

func (s *sessionService) GetSessionByID(id uint) (*model.Session, error) {
	session, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// CancelSession flips the session inactive. Cancelling twice is fine: the
// second call re-saves the already inactive row.
func (s *sessionService) CancelSession(id uint) error {
	session, err := s.GetSessionByID(id)
	if err != nil {
		return err
	}
	session.Active = false
	return s.repo.Save(session)
}

// AttachReservation checks that the session the reservation points at
// exists. Membership itself is the reservation's session foreign key, so
// nothing on the session row needs rewriting.
func (s *sessionService) AttachReservation(reservation *model.Reservation) error {
	_, err := s.GetSessionByID(reservation.SessionID)
	return err
}

func (s *sessionService) DetachReservation(reservation *model.Reservation) error {
	_, err := s.GetSessionByID(reservation.SessionID)
	return err
}

// ReservationsOfSession derives the reservation set by indexed query.
func (s *sessionService) ReservationsOfSession(id uint) ([]model.Reservation, error) {
	if _, err := s.GetSessionByID(id); err != nil {
		return nil, err
	}
	return s.reservationRepo.GetBySessionID(id)
}
