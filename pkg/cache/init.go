package cache

import (
	"context"
	"time"

	"vidtube.com/config"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

// NewClient connects to the configured Redis. It returns nil when no address
// is configured or the server does not answer.
func NewClient() *redis.Client {
	cfg := config.ConfigInfo.Redis
	if cfg.Addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		hlog.Warnf("Redis %s unreachable, running without cache: %v", cfg.Addr, err)
		client.Close()
		return nil
	}
	hlog.Infof("Connect Redis %s Success", cfg.Addr)
	return client
}
