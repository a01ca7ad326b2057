package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmottab/cine-reservas/internal/mq"
	"github.com/gmottab/cine-reservas/internal/service"
)

type fakePaymentService struct {
	err   error
	calls int
}

func (s *fakePaymentService) ValidatePayment(ctx context.Context, clientID, reservationID string, amount float64) error {
	s.calls++
	return s.err
}

type fakePublisher struct {
	published []mq.PaymentRequestMessage
	err       error
}

func (p *fakePublisher) PublishPaymentRequest(ctx context.Context, message mq.PaymentRequestMessage) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, message)
	return nil
}

func TestRequestPaymentPublishesExactlyOneMessage(t *testing.T) {
	svc := &fakePaymentService{}
	pub := &fakePublisher{}
	w := NewPaymentWorkflow(svc, pub)

	err := w.RequestPayment(context.Background(), "client-1", "reservation-1", 42.5)
	require.NoError(t, err)

	require.Len(t, pub.published, 1)
	assert.Equal(t, mq.PaymentRequestMessage{
		ClientID:      "client-1",
		ReservationID: "reservation-1",
		Amount:        42.5,
	}, pub.published[0])
}

func TestRequestPaymentDoesNotPublishOnValidationFailure(t *testing.T) {
	svc := &fakePaymentService{err: service.ErrInsufficientBalance}
	pub := &fakePublisher{}
	w := NewPaymentWorkflow(svc, pub)

	err := w.RequestPayment(context.Background(), "client-1", "reservation-1", 42.5)
	assert.ErrorIs(t, err, service.ErrInsufficientBalance)
	assert.Empty(t, pub.published)
	assert.Equal(t, 1, svc.calls)
}
