package main

import (
	"context"
	"os"

	"vidtube.com/cmd/api/handlers"
	"vidtube.com/cmd/api/router"
	"vidtube.com/cmd/api/router/authfunc"
	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/dal/db"
	"vidtube.com/cmd/dal/memory"
	"vidtube.com/config"
	"vidtube.com/config/jaeger"
	"vidtube.com/config/pprof"
	"vidtube.com/pkg/cache"
	"vidtube.com/pkg/compose"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/metrics"
	"vidtube.com/pkg/middleware"
	"vidtube.com/pkg/mq"
	"vidtube.com/pkg/oss"
	"vidtube.com/pkg/toggle"
	"vidtube.com/pkg/utils"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/cors"
)

func newStore() dal.Store {
	if config.ConfigInfo.Server.StorageMemory {
		hlog.Warn("using in-memory entity store")
		return memory.NewStore()
	}
	return db.Init()
}

func newPublisher() mq.EventPublisher {
	url := config.ConfigInfo.RabbitMq.URL()
	if url == "" {
		hlog.Info("rabbitmq not configured, engagement events are dropped")
		return mq.NopPublisher{}
	}
	producer, err := mq.NewProducer(url)
	if err != nil {
		hlog.Warnf("rabbitmq unavailable, engagement events are dropped: %v", err)
		return mq.NopPublisher{}
	}
	return producer
}

func main() {
	config.Init()
	cfg := config.ConfigInfo

	if err := utils.InitSnowflake(cfg.Snowflake.WorkerID, cfg.Snowflake.DatacenterID); err != nil {
		hlog.Fatalf("snowflake init failed: %v", err)
	}
	_, closer := jaeger.InitJaeger(constants.ServiceName, cfg.Jaeger.AgentAddr, cfg.Jaeger.SamplerParam)
	defer closer.Close()
	pprof.Load(cfg.Metrics.Addr)

	ctx := context.Background()
	store := newStore()
	publisher := newPublisher()
	defer publisher.Close()

	observers := []toggle.Observer{metrics.ToggleObserver{}, mq.NewToggleObserver(publisher)}
	engineOpts := []toggle.Option{toggle.WithSelfSubscribe(cfg.Engagement.AllowSelfSubscribe)}
	composerOpts := []compose.Option{}
	if client := cache.NewClient(); client != nil {
		defer client.Close()
		counts := cache.NewLikeCountCache(client, store, cfg.Engagement.CountCacheTTL)
		observers = append(observers, counts)
		composerOpts = append(composerOpts, compose.WithLikeCounter(counts))
		engineOpts = append(engineOpts, toggle.WithLocker(toggle.NewRedsyncLocker(client, cfg.Engagement.LockTTL)))
	}
	engineOpts = append(engineOpts, toggle.WithObservers(observers...))

	blobs, err := oss.New(ctx)
	if err != nil {
		hlog.Fatalf("blob storage init failed: %v", err)
	}
	if err = middleware.InitSentinel(cfg.Sentinel.ToggleQPS); err != nil {
		hlog.Fatalf("sentinel init failed: %v", err)
	}
	if cfg.Jwt.Secret == "" && !cfg.Auth.DevHeader {
		hlog.Fatal("jwt.secret must be set unless auth.dev_header is enabled")
	}
	auth, err := authfunc.NewResolver(cfg.Jwt.Secret, cfg.Jwt.Realm, cfg.Jwt.Timeout, cfg.Auth.DevHeader)
	if err != nil {
		hlog.Fatalf("jwt init failed: %v", err)
	}
	if err = os.MkdirAll(cfg.Blob.TmpDir, 0o755); err != nil {
		hlog.Fatalf("create upload dir failed: %v", err)
	}

	h := &handlers.Handlers{
		Store:    store,
		Composer: compose.New(store, composerOpts...),
		Engine:   toggle.New(store, engineOpts...),
		Blobs:    blobs,
		TmpDir:   cfg.Blob.TmpDir,
	}

	r := server.New(
		server.WithHostPorts(cfg.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(cfg.Server.MaxBodyMB*1024*1024),
	)
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CorsOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", authfunc.DevHeader},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))
	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			handlers.SendResponse(c, errno.ServiceErr, nil)
		})))
	r.Use(middleware.Tracing())

	router.Register(r.Engine, h, auth)
	r.Spin()
}
