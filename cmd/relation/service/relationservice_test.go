package service

import (
	"context"
	"testing"

	"vidtube.com/cmd/dal/memory"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/compose"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/paging"
	"vidtube.com/pkg/toggle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, opts ...toggle.Option) *RelationService {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()
	for i, name := range []string{"alice", "bob", "carol"} {
		require.NoError(t, s.CreateUser(ctx, &model.User{ID: int64(i + 1), Username: name, Email: name + "@vidtube.test"}))
	}
	return NewRelationService(ctx, s, toggle.New(s, opts...), compose.New(s))
}

func TestToggleSubscription(t *testing.T) {
	svc := newService(t)
	w := paging.Normalize(1, 10)

	for _, actor := range []int64{2, 3} {
		active, err := svc.ToggleSubscription(actor, 1)
		require.NoError(t, err)
		assert.True(t, active)
	}

	subs, err := svc.ChannelSubscribers(1, w)
	require.NoError(t, err)
	require.Len(t, subs.Items, 2)

	channels, err := svc.SubscribedChannels(2, w)
	require.NoError(t, err)
	require.Len(t, channels.Items, 1)
	assert.Equal(t, "alice", channels.Items[0].Username)

	active, err := svc.ToggleSubscription(2, 1)
	require.NoError(t, err)
	assert.False(t, active)
	subs, err = svc.ChannelSubscribers(1, w)
	require.NoError(t, err)
	require.Len(t, subs.Items, 1)
	assert.Equal(t, "carol", subs.Items[0].Username)
}

func TestSelfSubscription(t *testing.T) {
	_, err := newService(t).ToggleSubscription(1, 1)
	assert.ErrorIs(t, err, errno.ParamErr)

	active, err := newService(t, toggle.WithSelfSubscribe(true)).ToggleSubscription(1, 1)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestSubscriptionListsUnknownUser(t *testing.T) {
	svc := newService(t)
	_, err := svc.ChannelSubscribers(404, paging.Normalize(1, 10))
	assert.ErrorIs(t, err, errno.NotFoundErr)
	_, err = svc.SubscribedChannels(0, paging.Normalize(1, 10))
	assert.ErrorIs(t, err, errno.ParamErr)

	_, err = svc.ToggleSubscription(2, 404)
	assert.ErrorIs(t, err, errno.NotFoundErr)
}
