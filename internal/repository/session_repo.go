package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/gmottab/cine-reservas/internal/model"
)

type SessionRepo interface {
	WithTx(tx *gorm.DB) SessionRepo
	Create(session *model.Session) error
	GetByID(id uint) (*model.Session, error)
	GetByRoomAndStart(room int, startsAt time.Time) (*model.Session, error)
	ListAll() ([]model.Session, error)
	Save(session *model.Session) error
}

type sessionRepoGorm struct {
	db *gorm.DB
}

var _ SessionRepo = (*sessionRepoGorm)(nil)

func NewSessionRepoGorm(db *gorm.DB) *sessionRepoGorm {
	return &sessionRepoGorm{
		db: db,
	}
}

func (r *sessionRepoGorm) WithTx(tx *gorm.DB) SessionRepo {
	return &sessionRepoGorm{
		db: tx,
	}
}

func (r *sessionRepoGorm) Create(session *model.Session) error {
	ctx := context.Background()
	if err := gorm.G[model.Session](r.db).Create(ctx, session); err != nil {
		return err
	}
	return nil
}

func (r *sessionRepoGorm) GetByID(id uint) (*model.Session, error) {
	ctx := context.Background()
	session, err := gorm.G[model.Session](r.db).Where(&model.Session{ID: id}).First(ctx)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepoGorm) GetByRoomAndStart(room int, startsAt time.Time) (*model.Session, error) {
	ctx := context.Background()
	session, err := gorm.G[model.Session](r.db).Where("room = ? AND starts_at = ?", room, startsAt).First(ctx)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepoGorm) ListAll() ([]model.Session, error) {
	ctx := context.Background()
	sessions, err := gorm.G[model.Session](r.db).Find(ctx)
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepoGorm) Save(session *model.Session) error {
	return r.db.Save(session).Error
}
