package events

import "context"

// NoopPublisher discards change events. The service factory substitutes it
// when no NATS URL is configured, so operation code never nil-checks the
// publisher.
type NoopPublisher struct{}

func (n *NoopPublisher) Publish(ctx context.Context, topic string, event any) error {
	return nil
}

func (n *NoopPublisher) Close() error {
	return nil
}
