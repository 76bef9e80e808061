package notifier

import (
	"context"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/go-petr/bank-ledger/internal/domain"
)

// AMQPPublisher broadcasts balance-change events through a fanout exchange.
type AMQPPublisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	logger  zerolog.Logger
}

// NewAMQPPublisher connects to the broker at url and declares the fanout
// exchange named after the broadcast channel.
func NewAMQPPublisher(url string, logger zerolog.Logger) (*AMQPPublisher, error) {
	conn, err := amqp091.DialConfig(url, amqp091.Config{Dial: amqp091.DefaultDial(10 * time.Second)})
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := ch.ExchangeDeclare(Channel, "fanout", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, err
	}

	return &AMQPPublisher{
		conn:    conn,
		channel: ch,
		logger:  logger,
	}, nil
}

// Publish sends the encoded snapshot to the fanout exchange.
func (p *AMQPPublisher) Publish(ctx context.Context, a domain.Account) error {
	err := p.channel.PublishWithContext(ctx,
		Channel,
		"",
		false,
		false,
		amqp091.Publishing{
			ContentType: "text/plain",
			Timestamp:   time.Now(),
			Body:        []byte(Encode(a)),
		},
	)
	if err != nil {
		p.logger.Error().Err(err).
			Str("uuid", a.ID.String()).
			Msg("cannot publish bank account update")

		return err
	}

	return nil
}

// Close releases the broker connection.
func (p *AMQPPublisher) Close() error {
	return p.conn.Close()
}
