package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gmottab/cine-reservas/internal/remote"
	"github.com/gmottab/cine-reservas/internal/service"
)

const reservationID = "33333333-3333-3333-3333-333333333333"

type paymentFixture struct {
	svc      *paymentService
	clients  *fakeClientDirectory
	lookup   *fakeReservationLookup
	balances *fakeBalanceStore
}

func newPaymentFixture() *paymentFixture {
	clients := &fakeClientDirectory{clients: map[string]remote.ClientSnapshot{
		clientAna: {ID: clientAna, Name: "Ana"},
	}}
	lookup := &fakeReservationLookup{snapshots: map[string]remote.ReservationSnapshot{
		clientAna + "/" + reservationID: {Active: true, Message: StatusAwaitingPayment},
	}}
	balances := &fakeBalanceStore{balances: map[string]float64{clientAna: 50}}
	return &paymentFixture{
		svc:      NewPaymentService(clients, lookup, balances),
		clients:  clients,
		lookup:   lookup,
		balances: balances,
	}
}

func TestValidatePaymentSuccess(t *testing.T) {
	f := newPaymentFixture()

	err := f.svc.ValidatePayment(context.Background(), clientAna, reservationID, 30)
	assert.NoError(t, err)
}

func TestValidatePaymentClientMissingRemotely(t *testing.T) {
	f := newPaymentFixture()

	err := f.svc.ValidatePayment(context.Background(), clientBeto, reservationID, 30)
	assert.ErrorIs(t, err, service.ErrClientNotFound)
}

func TestValidatePaymentReservationMissingOrForeign(t *testing.T) {
	f := newPaymentFixture()

	err := f.svc.ValidatePayment(context.Background(), clientAna, "no-such-id", 30)
	assert.ErrorIs(t, err, service.ErrReservationNotFound)

	// a reservation owned by another client must behave identically
	f.clients.clients[clientBeto] = remote.ClientSnapshot{ID: clientBeto, Name: "Beto"}
	f.balances.balances[clientBeto] = 500

	err = f.svc.ValidatePayment(context.Background(), clientBeto, reservationID, 30)
	assert.ErrorIs(t, err, service.ErrReservationNotFound)
}

func TestValidatePaymentInactiveReservation(t *testing.T) {
	f := newPaymentFixture()

	f.lookup.snapshots[clientAna+"/"+reservationID] = remote.ReservationSnapshot{Active: false}

	err := f.svc.ValidatePayment(context.Background(), clientAna, reservationID, 30)
	assert.ErrorIs(t, err, service.ErrReservationInactive)
}

func TestValidatePaymentLocalSnapshotMissing(t *testing.T) {
	f := newPaymentFixture()

	// the client exists remotely but the local balance row lags behind
	delete(f.balances.balances, clientAna)

	err := f.svc.ValidatePayment(context.Background(), clientAna, reservationID, 30)
	assert.ErrorIs(t, err, service.ErrClientNotFound)
}

func TestValidatePaymentInsufficientBalance(t *testing.T) {
	f := newPaymentFixture()

	err := f.svc.ValidatePayment(context.Background(), clientAna, reservationID, 80)
	assert.ErrorIs(t, err, service.ErrInsufficientBalance)

	// exact balance is enough
	err = f.svc.ValidatePayment(context.Background(), clientAna, reservationID, 50)
	assert.NoError(t, err)
}
