package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

type natsPublisher struct {
	nc *nats.Conn
}

// NewNATS creates publisher which sends events as JSON messages where subject is the event kind.
func NewNATS(nc *nats.Conn) Publisher {
	return natsPublisher{nc: nc}
}

func (p natsPublisher) Publish(_ context.Context, e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.nc.PublishMsg(&nats.Msg{
		Subject: string(e.Subject),
		Data:    data,
	}); err != nil {
		return fmt.Errorf("failed to publish %s: %w", e.Subject, err)
	}

	return nil
}
