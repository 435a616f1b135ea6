package cache

import (
	"context"
	"fmt"
	"time"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/toggle"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// LikeCountKey holds the like count of one target. LikeEpochKey is bumped on
// every toggle of that target; both share a hash tag so they live in one slot.
const (
	LikeCountKey = "like:{%s:%d}:count"
	LikeEpochKey = "like:{%s:%d}:epoch"
)

// fillScript writes a count only if no toggle happened since the reader took
// its epoch snapshot.
var fillScript = redis.NewScript(`
local epoch = redis.call('GET', KEYS[2]) or '0'
if epoch ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`)

// CountSource is the authoritative like counter, normally the entity store.
type CountSource interface {
	CountLikesByTargets(ctx context.Context, kind model.TargetKind, ids []int64) (map[int64]int64, error)
}

// LikeCountCache is a read-through Redis cache in front of a CountSource.
// Toggles bump the target's epoch and drop its count; a fill computed before
// the toggle is discarded. Redis failures fall back to the source.
type LikeCountCache struct {
	client redis.UniversalClient
	source CountSource
	ttl    time.Duration
}

func NewLikeCountCache(client redis.UniversalClient, source CountSource, ttl time.Duration) *LikeCountCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &LikeCountCache{client: client, source: source, ttl: ttl}
}

func likeCountKey(kind model.TargetKind, id int64) string {
	return fmt.Sprintf(LikeCountKey, kind, id)
}

func likeEpochKey(kind model.TargetKind, id int64) string {
	return fmt.Sprintf(LikeEpochKey, kind, id)
}

func (c *LikeCountCache) CountLikesByTargets(ctx context.Context, kind model.TargetKind, ids []int64) (map[int64]int64, error) {
	if len(ids) == 0 {
		return map[int64]int64{}, nil
	}
	keys := make([]string, 0, 2*len(ids))
	for _, id := range ids {
		keys = append(keys, likeCountKey(kind, id))
	}
	for _, id := range ids {
		keys = append(keys, likeEpochKey(kind, id))
	}
	// plain GETs rather than MGET, so a cluster client can route keys from different slots
	pipe := c.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(keys))
	for i, key := range keys {
		cmds[i] = pipe.Get(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		hlog.CtxWarnf(ctx, "like count cache read failed, using store: %v", err)
		return c.source.CountLikesByTargets(ctx, kind, ids)
	}

	out := make(map[int64]int64, len(ids))
	missing := make([]int64, 0)
	epochs := make(map[int64]string)
	for i, id := range ids {
		n, err := cmds[i].Int64()
		if err == nil {
			out[id] = n
			continue
		}
		missing = append(missing, id)
		epoch, err := cmds[len(ids)+i].Result()
		if err != nil {
			epoch = "0"
		}
		epochs[id] = epoch
	}
	if len(missing) == 0 {
		return out, nil
	}

	fresh, err := c.source.CountLikesByTargets(ctx, kind, missing)
	if err != nil {
		return nil, err
	}
	fill := c.client.Pipeline()
	for _, id := range missing {
		out[id] = fresh[id]
		fillScript.Eval(ctx, fill,
			[]string{likeCountKey(kind, id), likeEpochKey(kind, id)},
			epochs[id], fresh[id], c.ttl.Milliseconds())
	}
	if _, err = fill.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		hlog.CtxWarnf(ctx, "like count cache fill failed: %v", err)
	}
	return out, nil
}

// Toggled invalidates the toggled target. Subscriptions are not cached here.
func (c *LikeCountCache) Toggled(ctx context.Context, ev toggle.Event) error {
	if ev.Kind == toggle.KindChannel {
		return nil
	}
	return c.Invalidate(ctx, model.TargetKind(ev.Kind), ev.Target)
}

func (c *LikeCountCache) Invalidate(ctx context.Context, kind model.TargetKind, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	pipe := c.client.Pipeline()
	for _, id := range ids {
		epoch := likeEpochKey(kind, id)
		pipe.Incr(ctx, epoch)
		// outlives any fill still holding the previous epoch
		pipe.Expire(ctx, epoch, 2*c.ttl)
		pipe.Del(ctx, likeCountKey(kind, id))
	}
	_, err := pipe.Exec(ctx)
	return err
}
