package mq

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

// InitTopology declares the payments exchange, its work queue and the
// dead-letter pair. Queues are non-durable on purpose: the topology is
// redeclared on startup and does not survive a broker restart.
func InitTopology(mqConn *amqp.Connection) error {
	ch, err := NewChannel(mqConn)
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(PaymentsExchange, "fanout", false, false, false, false, nil); err != nil {
		return err
	}

	workArgs := amqp.Table{
		"x-dead-letter-exchange":    PaymentsDLX,
		"x-dead-letter-routing-key": PaymentDLQRoutingKey,
	}
	if _, err := ch.QueueDeclare(PaymentDetailsQueue, false, false, false, false, workArgs); err != nil {
		return err
	}
	if err := ch.QueueBind(PaymentDetailsQueue, "", PaymentsExchange, false, nil); err != nil {
		return err
	}

	if err := ch.ExchangeDeclare(PaymentsDLX, "direct", false, false, false, false, nil); err != nil {
		return err
	}
	if _, err := ch.QueueDeclare(PaymentDLQ, false, false, false, false, nil); err != nil {
		return err
	}
	return ch.QueueBind(PaymentDLQ, PaymentDLQRoutingKey, PaymentsDLX, false, nil)
}

func NewMQConn(url string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func NewChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	return ch, nil
}
