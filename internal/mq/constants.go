package mq

// Exchange and queue names, part of the contract with the payments
// deployment. Renaming any of these breaks the consumers on the other side.

// fanout exchange from the payments service to the confirmation workers
// every bound queue gets a copy, the routing key is ignored
const (
	PaymentsExchange     = "pagamentos.ex"
	PaymentDetailsQueue  = "pagamentos.detalhes"
	PaymentsDLX          = "pagamentos.dlx"
	PaymentDLQ           = "pagamentos.detalhes.dlq"
	PaymentDLQRoutingKey = "pagamentos.detalhes.dlq"
)

// PaymentRequestMessage is the payload carried on the broker. It is never
// persisted by the publisher; the reservation id doubles as the dedupe key
// because confirmation is idempotent per reservation.
type PaymentRequestMessage struct {
	ClientID      string  `json:"client_id"`
	ReservationID string  `json:"reservation_id"`
	Amount        float64 `json:"amount"`
}
