package mq

import (
	"context"
	"encoding/json"
	"testing"

	"vidtube.com/pkg/toggle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	events []*EngagementEvent
}

func (c *capturePublisher) PublishEngagementEvent(_ context.Context, e *EngagementEvent) error {
	c.events = append(c.events, e)
	return nil
}

func (c *capturePublisher) Close() error { return nil }

func TestToggleObserverPublishes(t *testing.T) {
	pub := &capturePublisher{}
	obs := NewToggleObserver(pub)

	require.NoError(t, obs.Toggled(context.Background(), toggle.Event{Kind: toggle.KindChannel, Actor: 3, Target: 4, Active: true}))
	require.Len(t, pub.events, 1)
	e := pub.events[0]
	assert.Equal(t, "channel", e.Kind)
	assert.Equal(t, int64(3), e.ActorID)
	assert.Equal(t, int64(4), e.TargetID)
	assert.True(t, e.Active)
	assert.NotEmpty(t, e.EventID)

	body, err := json.Marshal(e)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"target_id":4`)
}

func TestNopObserver(t *testing.T) {
	assert.NoError(t, NewToggleObserver(nil).Toggled(context.Background(), toggle.Event{Kind: toggle.KindVideo, Actor: 1, Target: 2}))
}
