package cache

import (
	"context"
	"testing"
	"time"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/toggle"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource map[int64]int64

// countingSource counts reads and runs onRead before answering.
type countingSource struct {
	counts fixedSource
	reads  int
	onRead func()
}

func (c *countingSource) CountLikesByTargets(ctx context.Context, kind model.TargetKind, ids []int64) (map[int64]int64, error) {
	c.reads++
	out, err := c.counts.CountLikesByTargets(ctx, kind, ids)
	if c.onRead != nil {
		c.onRead()
	}
	return out, err
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func (f fixedSource) CountLikesByTargets(_ context.Context, _ model.TargetKind, ids []int64) (map[int64]int64, error) {
	out := make(map[int64]int64, len(ids))
	for _, id := range ids {
		if n, ok := f[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

func TestLikeCountKey(t *testing.T) {
	assert.Equal(t, "like:{comment:12}:count", likeCountKey(model.TargetComment, 12))
	assert.Equal(t, "like:{comment:12}:epoch", likeEpochKey(model.TargetComment, 12))
}

func TestFallsBackToSourceWhenRedisIsDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewLikeCountCache(client, fixedSource{1: 3, 2: 5}, time.Minute)
	counts, err := c.CountLikesByTargets(context.Background(), model.TargetVideo, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts[1])
	assert.Equal(t, int64(5), counts[2])
	assert.Zero(t, counts[3])
}

func TestEmptyBatchSkipsRedis(t *testing.T) {
	c := NewLikeCountCache(nil, fixedSource{}, 0)
	counts, err := c.CountLikesByTargets(context.Background(), model.TargetVideo, nil)
	require.NoError(t, err)
	assert.Empty(t, counts)
	assert.NoError(t, c.Invalidate(context.Background(), model.TargetVideo))
}

func TestFillsOnMissAndServesHits(t *testing.T) {
	mr, client := newRedis(t)
	src := &countingSource{counts: fixedSource{1: 3, 2: 5}}
	c := NewLikeCountCache(client, src, time.Minute)
	ctx := context.Background()

	counts, err := c.CountLikesByTargets(ctx, model.TargetVideo, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{1: 3, 2: 5, 3: 0}, counts)
	assert.Equal(t, 1, src.reads)
	got, err := mr.Get(likeCountKey(model.TargetVideo, 1))
	require.NoError(t, err)
	assert.Equal(t, "3", got)
	assert.Greater(t, mr.TTL(likeCountKey(model.TargetVideo, 1)), time.Duration(0))

	require.NoError(t, mr.Set(likeCountKey(model.TargetVideo, 2), "42"))
	counts, err = c.CountLikesByTargets(ctx, model.TargetVideo, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{1: 3, 2: 42, 3: 0}, counts)
	assert.Equal(t, 1, src.reads)
}

func TestToggledDropsCount(t *testing.T) {
	mr, client := newRedis(t)
	src := &countingSource{counts: fixedSource{1: 3}}
	c := NewLikeCountCache(client, src, time.Minute)
	ctx := context.Background()

	_, err := c.CountLikesByTargets(ctx, model.TargetVideo, []int64{1})
	require.NoError(t, err)
	require.True(t, mr.Exists(likeCountKey(model.TargetVideo, 1)))

	require.NoError(t, c.Toggled(ctx, toggle.Event{Kind: toggle.KindChannel, Actor: 2, Target: 1, Active: true}))
	assert.True(t, mr.Exists(likeCountKey(model.TargetVideo, 1)))

	require.NoError(t, c.Toggled(ctx, toggle.Event{Kind: toggle.KindVideo, Actor: 2, Target: 1, Active: true}))
	assert.False(t, mr.Exists(likeCountKey(model.TargetVideo, 1)))

	src.counts[1] = 4
	counts, err := c.CountLikesByTargets(ctx, model.TargetVideo, []int64{1})
	require.NoError(t, err)
	assert.Equal(t, int64(4), counts[1])
	assert.Equal(t, 2, src.reads)
	got, err := mr.Get(likeCountKey(model.TargetVideo, 1))
	require.NoError(t, err)
	assert.Equal(t, "4", got)
}

func TestToggleDuringFillDiscardsStaleCount(t *testing.T) {
	mr, client := newRedis(t)
	c := NewLikeCountCache(client, nil, time.Minute)
	ctx := context.Background()
	src := &countingSource{counts: fixedSource{1: 3}}
	src.onRead = func() {
		require.NoError(t, c.Toggled(ctx, toggle.Event{Kind: toggle.KindVideo, Actor: 2, Target: 1, Active: true}))
	}
	c.source = src

	counts, err := c.CountLikesByTargets(ctx, model.TargetVideo, []int64{1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts[1])
	assert.False(t, mr.Exists(likeCountKey(model.TargetVideo, 1)))

	src.onRead = nil
	src.counts[1] = 4
	counts, err = c.CountLikesByTargets(ctx, model.TargetVideo, []int64{1})
	require.NoError(t, err)
	assert.Equal(t, int64(4), counts[1])
	got, err := mr.Get(likeCountKey(model.TargetVideo, 1))
	require.NoError(t, err)
	assert.Equal(t, "4", got)
}
