package cache

import (
	"context"
	"errors"

	redis "github.com/redis/go-redis/v9"
)

var ctx = context.Background()

// RedisCache holds the local client-balance snapshots the payment service
// reads. The snapshots are fed by the clients service; this process never
// creates them, it only reads and debits.
type RedisCache struct {
	Client *redis.Client
}

func NewRedisCache(url string) (*RedisCache, error) {
	client := redis.NewClient(
		&redis.Options{
			Addr:     url,
			Password: "",
			DB:       0,
		},
	)
	redisCache := &RedisCache{Client: client}

	return redisCache, nil
}

// GetClientBalance returns the locally known balance of a client. A client
// that passed the remote existence check can still miss here: the snapshot
// feed lags behind the clients service.
func (r *RedisCache) GetClientBalance(clientID string) (float64, error) {
	balance, err := r.Client.Get(ctx, MakeClientBalanceKey(clientID)).Float64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrBalanceNotFound
		}
		return 0, err
	}
	return balance, nil
}

// DebitForReservation atomically subtracts amount from the client's snapshot
// and records the reservation id as debited, in one script. A reservation
// that was already debited is a no-op, so the caller can safely run this
// again on a redelivered confirmation. Returns ErrBalanceNotFound when there
// is no snapshot; an insufficient balance at debit time is also surfaced as
// an error so the caller can log the discrepancy with the earlier check.
func (r *RedisCache) DebitForReservation(clientID, reservationID string, amount float64) error {
	keys := []string{MakeClientBalanceKey(clientID), MakeReservationDebitedKey(reservationID)}
	res, err := debitForReservationScript.Run(ctx, r.Client, keys, amount).Int64()
	if err != nil {
		return err
	}
	if res == -1 {
		return ErrBalanceNotFound
	}
	if res == -2 {
		return errors.New("balance dropped below requested amount")
	}
	return nil
}

// SetClientBalance writes a snapshot row. Used by the snapshot feed and by
// test fixtures, never by the request path.
func (r *RedisCache) SetClientBalance(clientID string, balance float64) error {
	return r.Client.Set(ctx, MakeClientBalanceKey(clientID), balance, 0).Err()
}
