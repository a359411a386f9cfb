package events

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/vmesquit/mesapos/internal/config"
)

// Module wires the order event publisher. Without AMQP_URL events are
// silently dropped via NoopPublisher.
var Module = fx.Provide(newPublisher)

type publisherParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newPublisher(p publisherParams) (Publisher, error) {
	if p.Config.AMQPURL == "" {
		return NoopPublisher{}, nil
	}

	publisher, err := NewAMQPPublisher(p.Config.AMQPURL, p.Logger)
	if err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}
