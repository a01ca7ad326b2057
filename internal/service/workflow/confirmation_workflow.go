package workflow

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/gmottab/cine-reservas/internal/mq"
	"github.com/gmottab/cine-reservas/internal/service"
	"github.com/gmottab/cine-reservas/internal/service/domain"
)

// ConfirmationWorkflow consumes payment requests from the work queue and
// applies the confirmation to the reservation. Delivery is at-least-once;
// the reservation-keyed conditional update downstream makes redelivery a
// no-op.
type ConfirmationWorkflow struct {
	reservationService domain.ReservationService
	logger             *zap.Logger
}

func NewConfirmationWorkflow(reservationService domain.ReservationService, logger *zap.Logger) *ConfirmationWorkflow {
	return &ConfirmationWorkflow{
		reservationService: reservationService,
		logger:             logger,
	}
}

func (w *ConfirmationWorkflow) Start(mqConn *amqp.Connection) error {
	ch, err := mq.NewChannel(mqConn)
	if err != nil {
		return err
	}

	msgs, err := ch.Consume(mq.PaymentDetailsQueue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			w.HandleDelivery(msg)
		}
	}()

	return nil
}

// HandleDelivery decides the fate of one inbound message:
//   - unparseable or empty payload: ack and drop, redelivery cannot fix it
//   - domain error from confirmation: ack and drop, it is permanent
//   - any other error: nack; first failure requeues, a failure of an
//     already redelivered message goes to the dead-letter queue
//   - success: ack
func (w *ConfirmationWorkflow) HandleDelivery(msg amqp.Delivery) {
	var message mq.PaymentRequestMessage
	if err := json.Unmarshal(msg.Body, &message); err != nil {
		w.logger.Warn("dropping malformed payment message", zap.Error(err))
		msg.Ack(false)
		return
	}
	if message.ClientID == "" || message.ReservationID == "" {
		w.logger.Warn("dropping empty payment message", zap.ByteString("body", msg.Body))
		msg.Ack(false)
		return
	}

	err := w.reservationService.ConfirmPayment(message.ClientID, message.ReservationID, message.Amount)
	if err == nil {
		msg.Ack(false)
		return
	}

	if service.IsDomainError(err) {
		w.logger.Warn("dropping payment message after domain error",
			zap.String("reservation_id", message.ReservationID),
			zap.Error(err))
		msg.Ack(false)
		return
	}

	if msg.Redelivered {
		w.logger.Error("dead-lettering payment message",
			zap.String("reservation_id", message.ReservationID),
			zap.Error(err))
		msg.Nack(false, false)
		return
	}
	w.logger.Warn("requeueing payment message",
		zap.String("reservation_id", message.ReservationID),
		zap.Error(err))
	msg.Nack(false, true)
}
