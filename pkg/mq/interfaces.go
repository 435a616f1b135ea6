package mq

import "context"

type EventPublisher interface {
	PublishEngagementEvent(ctx context.Context, event *EngagementEvent) error
	Close() error
}

var (
	_ EventPublisher = (*Producer)(nil)
	_ EventPublisher = NopPublisher{}
)

// NopPublisher drops every event; it stands in when RabbitMQ is not configured.
type NopPublisher struct{}

func (NopPublisher) PublishEngagementEvent(context.Context, *EngagementEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
