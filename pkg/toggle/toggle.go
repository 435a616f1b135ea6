// Package toggle flips engagement edges (likes and subscriptions) with at
// most one edge per actor and target.
package toggle

import (
	"context"
	"fmt"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type Kind string

const (
	KindVideo   Kind = "video"
	KindComment Kind = "comment"
	KindPost    Kind = "post"
	KindChannel Kind = "channel"
)

// Event describes a completed toggle.
type Event struct {
	Kind   Kind
	Actor  int64
	Target int64
	Active bool
}

// Observer is notified after every successful toggle. Its error is logged
// and never changes the toggle result.
type Observer interface {
	Toggled(ctx context.Context, ev Event) error
}

type ObserverFunc func(ctx context.Context, ev Event) error

func (f ObserverFunc) Toggled(ctx context.Context, ev Event) error { return f(ctx, ev) }

type Engine struct {
	store              dal.Store
	locker             Locker
	observers          []Observer
	allowSelfSubscribe bool
	nextID             func() int64
}

type Option func(*Engine)

func WithLocker(l Locker) Option {
	return func(e *Engine) {
		if l != nil {
			e.locker = l
		}
	}
}

func WithObservers(obs ...Observer) Option {
	return func(e *Engine) { e.observers = append(e.observers, obs...) }
}

func WithSelfSubscribe(allow bool) Option {
	return func(e *Engine) { e.allowSelfSubscribe = allow }
}

func WithIDGenerator(next func() int64) Option {
	return func(e *Engine) {
		if next != nil {
			e.nextID = next
		}
	}
}

func New(store dal.Store, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		locker: NewLocalLocker(),
		nextID: utils.GenerateID,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Toggle creates the (actor, kind, target) edge when absent and removes it
// when present. It returns whether the edge exists afterwards.
func (e *Engine) Toggle(ctx context.Context, actor int64, kind Kind, target int64) (bool, error) {
	if actor <= 0 {
		return false, errno.AuthorizationFailedErr
	}
	if target <= 0 {
		return false, errno.ParamErr.WithMessage("invalid " + string(kind) + " id")
	}
	if err := e.checkTarget(ctx, actor, kind, target); err != nil {
		return false, err
	}

	unlock, err := e.locker.Lock(ctx, fmt.Sprintf("toggle:%s:%d:%d", kind, actor, target))
	if err != nil {
		hlog.CtxErrorf(ctx, "toggle lock failed: %v", err)
		return false, errno.ServiceErr.WithMessage("toggle is busy, retry later")
	}
	var active bool
	if kind == KindChannel {
		active, err = e.flipSubscription(ctx, actor, target)
	} else {
		active, err = e.flipLike(ctx, actor, model.Target{Kind: model.TargetKind(kind), ID: target})
	}
	unlock()
	if err != nil {
		return false, err
	}

	ev := Event{Kind: kind, Actor: actor, Target: target, Active: active}
	for _, obs := range e.observers {
		if oerr := obs.Toggled(ctx, ev); oerr != nil {
			hlog.CtxWarnf(ctx, "toggle observer failed for %s %d: %v", kind, target, oerr)
		}
	}
	return active, nil
}

func (e *Engine) checkTarget(ctx context.Context, actor int64, kind Kind, target int64) error {
	var (
		found bool
		err   error
	)
	switch kind {
	case KindVideo:
		var v *model.Video
		v, err = e.store.FindVideoByID(ctx, target)
		found = v != nil && v.VisibleTo(actor)
	case KindComment:
		var c *model.Comment
		c, err = e.store.FindCommentByID(ctx, target)
		found = c != nil
	case KindPost:
		var p *model.Post
		p, err = e.store.FindPostByID(ctx, target)
		found = p != nil
	case KindChannel:
		if actor == target && !e.allowSelfSubscribe {
			return errno.ParamErr.WithMessage("cannot subscribe to your own channel")
		}
		var u *model.User
		u, err = e.store.FindUserByID(ctx, target)
		found = u != nil
	default:
		return errno.ParamErr.WithMessage("unknown toggle kind " + string(kind))
	}
	if err != nil {
		return err
	}
	if !found {
		return errno.NotFoundErr.WithMessage(string(kind) + " does not exist")
	}
	return nil
}

func (e *Engine) flipLike(ctx context.Context, actor int64, target model.Target) (bool, error) {
	existing, err := e.store.FindLike(ctx, actor, target)
	if err != nil {
		return false, err
	}
	if existing != nil {
		// zero rows means a concurrent toggle removed it first; inactive either way
		if _, err = e.store.DeleteLike(ctx, actor, target); err != nil {
			return false, err
		}
		return false, nil
	}
	like, err := model.NewLike(e.nextID(), actor, target)
	if err != nil {
		return false, err
	}
	if err = e.store.CreateLike(ctx, like); err != nil {
		if errors.Is(err, dal.ErrDuplicate) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

func (e *Engine) flipSubscription(ctx context.Context, actor, channel int64) (bool, error) {
	existing, err := e.store.FindSubscription(ctx, actor, channel)
	if err != nil {
		return false, err
	}
	if existing != nil {
		if _, err = e.store.DeleteSubscription(ctx, actor, channel); err != nil {
			return false, err
		}
		return false, nil
	}
	err = e.store.CreateSubscription(ctx, &model.Subscription{
		ID:           e.nextID(),
		SubscriberId: actor,
		ChannelId:    channel,
	})
	if err != nil {
		if errors.Is(err, dal.ErrDuplicate) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}
