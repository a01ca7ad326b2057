package cache

import (
	"errors"
	"fmt"

	redis "github.com/redis/go-redis/v9"
)

// key names definition
// key names in lua scripts should follow these formats
const (
	ClientBalanceKey      = "client:%s:balance"        // balance snapshot of a client, '%s' is client id
	ReservationDebitedKey = "reservation:%s:debited"   // debit marker, '%s' is reservation id
)

func MakeClientBalanceKey(clientID string) string {
	return fmt.Sprintf("client:%s:balance", clientID)
}

func MakeReservationDebitedKey(reservationID string) string {
	return fmt.Sprintf("reservation:%s:debited", reservationID)
}

// errors
var (
	ErrBalanceNotFound = errors.New("no balance snapshot for client")
)

// lua scripts
var debitForReservationScript = redis.NewScript(`
	-- KEYS[1] = client:{client_id}:balance
	-- KEYS[2] = reservation:{reservation_id}:debited
	-- ARGV[1] = amount

	if redis.call("EXISTS", KEYS[2]) == 1 then
		return 0
	end

	local balance = tonumber(redis.call("GET", KEYS[1]))
	if not balance then
		return -1
	end

	local amount = tonumber(ARGV[1])
	if balance < amount then
		return -2
	end

	redis.call("INCRBYFLOAT", KEYS[1], -amount)
	redis.call("SET", KEYS[2], 1)
	return 1
`)
