package domain

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"github.com/gmottab/cine-reservas/internal/cache"
	"github.com/gmottab/cine-reservas/internal/model"
	"github.com/gmottab/cine-reservas/internal/remote"
	"github.com/gmottab/cine-reservas/internal/repository"
)

// stubConnPool backs a gorm.DB whose transactions begin, commit and roll
// back as no-ops. The statements inside the transaction go through the fake
// repos, never through this pool.
type stubConnPool struct{}

func (stubConnPool) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return nil, sql.ErrConnDone
}

func (stubConnPool) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, sql.ErrConnDone
}

func (stubConnPool) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, sql.ErrConnDone
}

func (stubConnPool) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (stubConnPool) BeginTx(ctx context.Context, opts *sql.TxOptions) (gorm.ConnPool, error) {
	return &stubTx{}, nil
}

type stubTx struct{ stubConnPool }

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

func newStubDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{ConnPool: stubConnPool{}})
	require.NoError(t, err)
	return db
}

type fakeSessionRepo struct {
	sessions map[uint]model.Session
	nextID   uint

	createErr     error // returned by the next Create
	getErr        error // returned when getCalls reaches failGetOnCall
	failGetOnCall int
	getCalls      int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uint]model.Session)}
}

func (r *fakeSessionRepo) WithTx(tx *gorm.DB) repository.SessionRepo { return r }

func (r *fakeSessionRepo) Create(session *model.Session) error {
	if r.createErr != nil {
		err := r.createErr
		r.createErr = nil
		return err
	}
	r.nextID++
	session.ID = r.nextID
	r.sessions[session.ID] = *session
	return nil
}

func (r *fakeSessionRepo) GetByID(id uint) (*model.Session, error) {
	r.getCalls++
	if r.failGetOnCall != 0 && r.getCalls == r.failGetOnCall {
		return nil, r.getErr
	}
	session, ok := r.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &session, nil
}

func (r *fakeSessionRepo) GetByRoomAndStart(room int, startsAt time.Time) (*model.Session, error) {
	for _, session := range r.sessions {
		if session.Room == room && session.StartsAt.Equal(startsAt) {
			found := session
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSessionRepo) ListAll() ([]model.Session, error) {
	var all []model.Session
	for _, session := range r.sessions {
		all = append(all, session)
	}
	return all, nil
}

func (r *fakeSessionRepo) Save(session *model.Session) error {
	r.sessions[session.ID] = *session
	return nil
}

type fakeReservationRepo struct {
	reservations map[string]model.Reservation
	saveCount    int
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{reservations: make(map[string]model.Reservation)}
}

func (r *fakeReservationRepo) Create(reservation *model.Reservation) error {
	r.reservations[reservation.ID] = *reservation
	return nil
}

func (r *fakeReservationRepo) GetByID(id string) (*model.Reservation, error) {
	reservation, ok := r.reservations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &reservation, nil
}

func (r *fakeReservationRepo) GetBySessionID(sessionID uint) ([]model.Reservation, error) {
	var matched []model.Reservation
	for _, reservation := range r.reservations {
		if reservation.SessionID == sessionID {
			matched = append(matched, reservation)
		}
	}
	return matched, nil
}

func (r *fakeReservationRepo) Save(reservation *model.Reservation) error {
	r.saveCount++
	r.reservations[reservation.ID] = *reservation
	return nil
}

func (r *fakeReservationRepo) ConfirmIfPending(id string, statusMessage string) (bool, error) {
	reservation, ok := r.reservations[id]
	if !ok || reservation.Confirmed {
		return false, nil
	}
	reservation.Confirmed = true
	reservation.StatusMessage = statusMessage
	r.reservations[id] = reservation
	return true, nil
}

func (r *fakeReservationRepo) Deactivate(id string, statusMessage string) error {
	reservation, ok := r.reservations[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	reservation.Active = false
	reservation.StatusMessage = statusMessage
	r.reservations[id] = reservation
	return nil
}

func pendingReservation(id string, sessionID uint) *model.Reservation {
	return &model.Reservation{
		ID:            id,
		ClientID:      "11111111-1111-1111-1111-111111111111",
		SessionID:     sessionID,
		Active:        true,
		StatusMessage: StatusAwaitingPayment,
	}
}

type fakeCatalog struct {
	films map[string]remote.FilmDescriptor
}

func (c *fakeCatalog) GetFilmByTitle(ctx context.Context, correlationTitle string) (*remote.FilmDescriptor, error) {
	film, ok := c.films[correlationTitle]
	if !ok {
		return nil, remote.ErrNotFound
	}
	return &film, nil
}

type fakeClientDirectory struct {
	clients map[string]remote.ClientSnapshot
}

func (d *fakeClientDirectory) GetClientByID(ctx context.Context, clientID string) (*remote.ClientSnapshot, error) {
	snapshot, ok := d.clients[clientID]
	if !ok {
		return nil, remote.ErrNotFound
	}
	return &snapshot, nil
}

type fakeReservationLookup struct {
	// keyed by clientID + "/" + reservationID, ownership baked into the key
	snapshots map[string]remote.ReservationSnapshot
}

func (l *fakeReservationLookup) GetReservation(ctx context.Context, clientID, reservationID string) (*remote.ReservationSnapshot, error) {
	snapshot, ok := l.snapshots[clientID+"/"+reservationID]
	if !ok {
		return nil, remote.ErrNotFound
	}
	return &snapshot, nil
}

type fakeBalanceStore struct {
	balances map[string]float64
	debits   []float64
	debited  map[string]bool
	debitErr error // consumed by the next debit attempt
}

func (b *fakeBalanceStore) GetClientBalance(clientID string) (float64, error) {
	balance, ok := b.balances[clientID]
	if !ok {
		return 0, cache.ErrBalanceNotFound
	}
	return balance, nil
}

func (b *fakeBalanceStore) DebitForReservation(clientID, reservationID string, amount float64) error {
	if b.debitErr != nil {
		err := b.debitErr
		b.debitErr = nil
		return err
	}
	if b.debited[reservationID] {
		return nil
	}
	balance, ok := b.balances[clientID]
	if !ok {
		return cache.ErrBalanceNotFound
	}
	if b.debited == nil {
		b.debited = make(map[string]bool)
	}
	b.balances[clientID] = balance - amount
	b.debits = append(b.debits, amount)
	b.debited[reservationID] = true
	return nil
}
