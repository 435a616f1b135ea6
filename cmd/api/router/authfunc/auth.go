package authfunc

import (
	"context"
	"strconv"
	"time"

	"vidtube.com/cmd/api/handlers"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/jwt"
)

// DevHeader carries the actor id directly when development auth is enabled.
const DevHeader = "X-User-Id"

// Resolver turns a request into an actor id stored under constants.IdentityKey.
type Resolver struct {
	mw        *jwt.HertzJWTMiddleware
	strict    app.HandlerFunc
	devHeader bool
}

func NewResolver(secret, realm string, timeout time.Duration, devHeader bool) (*Resolver, error) {
	mw, err := jwt.New(&jwt.HertzJWTMiddleware{
		Realm:       realm,
		Key:         []byte(secret),
		Timeout:     timeout,
		IdentityKey: constants.IdentityKey,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			// ids exceed 2^53, so a JSON number would lose the low bits
			if id, ok := data.(int64); ok {
				return jwt.MapClaims{constants.IdentityKey: strconv.FormatInt(id, 10)}
			}
			return jwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			if id := identity(jwt.ExtractClaims(ctx, c)); id > 0 {
				return id
			}
			return nil
		},
		Authorizator: func(data interface{}, ctx context.Context, c *app.RequestContext) bool {
			id, ok := data.(int64)
			return ok && id > 0
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			hlog.CtxInfof(ctx, "reject request: %d %s", code, message)
			handlers.SendResponse(c, errno.AuthorizationFailedErr.WithMessage(message), nil)
		},
	})
	if err != nil {
		return nil, err
	}
	return &Resolver{mw: mw, strict: mw.MiddlewareFunc(), devHeader: devHeader}, nil
}

func identity(claims jwt.MapClaims) int64 {
	switch v := claims[constants.IdentityKey].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case string:
		id, _ := utils.ParseID(v)
		return id
	}
	return 0
}

func (r *Resolver) fromDevHeader(c *app.RequestContext) (int64, bool) {
	if !r.devHeader {
		return 0, false
	}
	return utils.ParseID(string(c.GetHeader(DevHeader)))
}

// Required rejects requests without a valid actor.
func (r *Resolver) Required() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if id, ok := r.fromDevHeader(c); ok {
			c.Set(constants.IdentityKey, id)
			c.Next(ctx)
			return
		}
		r.strict(ctx, c)
	}
}

// Optional resolves the actor when credentials are present and lets anonymous
// requests through. Invalid credentials are still rejected.
func (r *Resolver) Optional() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if id, ok := r.fromDevHeader(c); ok {
			c.Set(constants.IdentityKey, id)
			c.Next(ctx)
			return
		}
		if len(c.GetHeader("Authorization")) == 0 {
			c.Next(ctx)
			return
		}
		claims, err := r.mw.GetClaimsFromJWT(ctx, c)
		id := identity(claims)
		if err != nil || id <= 0 {
			handlers.SendResponse(c, errno.AuthorizationFailedErr.WithMessage("invalid token"), nil)
			c.Abort()
			return
		}
		c.Set(constants.IdentityKey, id)
		c.Next(ctx)
	}
}
