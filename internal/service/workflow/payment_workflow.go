package workflow

import (
	"context"

	"github.com/gmottab/cine-reservas/internal/mq"
	"github.com/gmottab/cine-reservas/internal/service/domain"
)

// PaymentPublisher pushes a validated payment request onto the fanout
// exchange. Implemented by mq.Producer.
type PaymentPublisher interface {
	PublishPaymentRequest(ctx context.Context, message mq.PaymentRequestMessage) error
}

type PaymentWorkflow struct {
	PaymentService domain.PaymentService
	Publisher      PaymentPublisher
}

func NewPaymentWorkflow(paymentService domain.PaymentService, publisher PaymentPublisher) *PaymentWorkflow {
	return &PaymentWorkflow{
		PaymentService: paymentService,
		Publisher:      publisher,
	}
}

// RequestPayment validates the request and, only on full success, publishes
// one payment-request message. Publishing is fire-and-forget: nothing here
// waits for the confirmation side, and a failure between validation and
// publish leaves no side effect anywhere.
func (w *PaymentWorkflow) RequestPayment(ctx context.Context, clientID, reservationID string, amount float64) error {
	if err := w.PaymentService.ValidatePayment(ctx, clientID, reservationID, amount); err != nil {
		return err
	}

	return w.Publisher.PublishPaymentRequest(ctx, mq.PaymentRequestMessage{
		ClientID:      clientID,
		ReservationID: reservationID,
		Amount:        amount,
	})
}
