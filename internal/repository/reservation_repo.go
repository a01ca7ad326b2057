package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/gmottab/cine-reservas/internal/model"
)

type ReservationRepo interface {
	Create(reservation *model.Reservation) error
	GetByID(id string) (*model.Reservation, error)
	GetBySessionID(sessionID uint) ([]model.Reservation, error)
	Save(reservation *model.Reservation) error
	ConfirmIfPending(id string, statusMessage string) (flipped bool, err error)
	Deactivate(id string, statusMessage string) error
}

type reservationRepoGorm struct {
	db *gorm.DB
}

var _ ReservationRepo = (*reservationRepoGorm)(nil)

func NewReservationRepoGorm(db *gorm.DB) *reservationRepoGorm {
	return &reservationRepoGorm{
		db: db,
	}
}

func (r *reservationRepoGorm) Create(reservation *model.Reservation) error {
	ctx := context.Background()
	if err := gorm.G[model.Reservation](r.db).Create(ctx, reservation); err != nil {
		return err
	}
	return nil
}

func (r *reservationRepoGorm) GetByID(id string) (*model.Reservation, error) {
	ctx := context.Background()
	reservation, err := gorm.G[model.Reservation](r.db).Where(&model.Reservation{ID: id}).First(ctx)
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepoGorm) GetBySessionID(sessionID uint) ([]model.Reservation, error) {
	ctx := context.Background()
	reservations, err := gorm.G[model.Reservation](r.db).Where(&model.Reservation{SessionID: sessionID}).Find(ctx)
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepoGorm) Save(reservation *model.Reservation) error {
	return r.db.Save(reservation).Error
}

// ConfirmIfPending flips the confirmed flag and stamps the status message in
// a single conditional update, gated on confirmed still being false. The
// single statement keeps flag and message consistent, leaves the other
// columns alone so a concurrent cancellation is never overwritten, and makes
// confirmation idempotent under at-least-once delivery: a redelivered message
// matches zero rows.
func (r *reservationRepoGorm) ConfirmIfPending(id string, statusMessage string) (bool, error) {
	res := r.db.Model(&model.Reservation{}).
		Where("id = ? AND confirmed = ?", id, false).
		Updates(map[string]any{"confirmed": true, "status_message": statusMessage})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Deactivate clears the active flag and stamps the status message without
// touching the confirmed column, so cancelling never races a concurrent
// confirmation into a stale full-row write.
func (r *reservationRepoGorm) Deactivate(id string, statusMessage string) error {
	return r.db.Model(&model.Reservation{}).
		Where("id = ?", id).
		Updates(map[string]any{"active": false, "status_message": statusMessage}).Error
}
