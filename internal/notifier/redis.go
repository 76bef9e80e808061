package notifier

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/go-petr/bank-ledger/internal/domain"
)

// RedisPublisher broadcasts balance-change events over redis pub/sub.
type RedisPublisher struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewRedisPublisher returns a publisher connected to the redis server at addr.
func NewRedisPublisher(addr string, logger zerolog.Logger) *RedisPublisher {
	client := redis.NewClient(&redis.Options{Addr: addr})

	return &RedisPublisher{
		client: client,
		logger: logger,
	}
}

// Publish sends the encoded snapshot on the broadcast channel.
func (p *RedisPublisher) Publish(ctx context.Context, a domain.Account) error {
	if err := p.client.Publish(ctx, Channel, Encode(a)).Err(); err != nil {
		p.logger.Error().Err(err).
			Str("uuid", a.ID.String()).
			Msg("cannot publish bank account update")

		return err
	}

	return nil
}

// Close releases the underlying redis connection.
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
