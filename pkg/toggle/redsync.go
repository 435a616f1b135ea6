package toggle

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedsyncLocker serializes toggles across gateway replicas through Redis.
type RedsyncLocker struct {
	rs     *redsync.Redsync
	expiry time.Duration
	tries  int
}

func NewRedsyncLocker(client redis.UniversalClient, expiry time.Duration) *RedsyncLocker {
	if expiry <= 0 {
		expiry = 5 * time.Second
	}
	return &RedsyncLocker{
		rs:     redsync.New(goredis.NewPool(client)),
		expiry: expiry,
		tries:  32,
	}
}

func (l *RedsyncLocker) Lock(ctx context.Context, key string) (func(), error) {
	m := l.rs.NewMutex("lock:"+key, redsync.WithExpiry(l.expiry), redsync.WithTries(l.tries))
	if err := m.LockContext(ctx); err != nil {
		return nil, errors.Wrapf(err, "acquire %s", key)
	}
	return func() {
		if _, err := m.UnlockContext(context.Background()); err != nil {
			hlog.Warnf("release %s: %v", key, err)
		}
	}, nil
}
