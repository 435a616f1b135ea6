package mq

import (
	"context"
	"time"

	"vidtube.com/pkg/toggle"

	"github.com/google/uuid"
)

// ToggleObserver forwards toggle results to the engagement exchange.
type ToggleObserver struct {
	publisher EventPublisher
}

func NewToggleObserver(p EventPublisher) *ToggleObserver {
	if p == nil {
		p = NopPublisher{}
	}
	return &ToggleObserver{publisher: p}
}

func NewEngagementEvent(ev toggle.Event) *EngagementEvent {
	return &EngagementEvent{
		EventID:   uuid.NewString(),
		Kind:      string(ev.Kind),
		ActorID:   ev.Actor,
		TargetID:  ev.Target,
		Active:    ev.Active,
		Timestamp: time.Now().UnixMilli(),
	}
}

func (o *ToggleObserver) Toggled(ctx context.Context, ev toggle.Event) error {
	return o.publisher.PublishEngagementEvent(ctx, NewEngagementEvent(ev))
}
