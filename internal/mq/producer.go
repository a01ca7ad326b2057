package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Producer publishes payment requests to the fanout exchange. The routing
// key is left empty: fanout delivery copies the message to every bound
// queue regardless of key.
type Producer struct {
	conn *amqp.Connection
}

func NewProducer(conn *amqp.Connection) *Producer {
	return &Producer{
		conn: conn,
	}
}

func (p *Producer) PublishPaymentRequest(ctx context.Context, message PaymentRequestMessage) error {
	ch, err := NewChannel(p.conn)
	if err != nil {
		return err
	}
	defer ch.Close()

	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = ch.PublishWithContext(
		ctx,
		PaymentsExchange,
		"",
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message to exchange %s: %w", PaymentsExchange, err)
	}

	return nil
}
