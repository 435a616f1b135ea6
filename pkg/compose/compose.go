// Package compose builds the denormalized read views of the content graph:
// entities joined with their owners, aggregate counts and viewer flags.
package compose

import (
	"context"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/paging"
)

// LikeCounter answers like counts for a batch of targets. The store
// implements it; pkg/cache wraps it with a Redis layer.
type LikeCounter interface {
	CountLikesByTargets(ctx context.Context, kind model.TargetKind, ids []int64) (map[int64]int64, error)
}

type Composer struct {
	store dal.Store
	likes LikeCounter
}

type Option func(*Composer)

// WithLikeCounter replaces the store as the source of like counts.
func WithLikeCounter(lc LikeCounter) Option {
	return func(c *Composer) {
		if lc != nil {
			c.likes = lc
		}
	}
}

func New(store dal.Store, opts ...Option) *Composer {
	c := &Composer{store: store, likes: store}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Composer) owners(ctx context.Context, ids []int64) (map[int64]*model.User, error) {
	return c.store.FindUsersByIDs(ctx, unique(ids))
}

// ownerLite is the to-one join: a missing owner is nil, never an error.
func ownerLite(users map[int64]*model.User, id int64) *model.UserLite {
	return users[id].Lite()
}

func unique(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// ChannelStats aggregates a channel's videos, views, likes, comments and subscribers.
func (c *Composer) ChannelStats(ctx context.Context, owner int64) (*model.ChannelStats, error) {
	videos, views, err := c.store.ChannelVideoTotals(ctx, owner)
	if err != nil {
		return nil, err
	}
	ids, err := c.store.VideoIDsByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	likes, err := c.likes.CountLikesByTargets(ctx, model.TargetVideo, ids)
	if err != nil {
		return nil, err
	}
	comments, err := c.store.CountCommentsByVideos(ctx, ids)
	if err != nil {
		return nil, err
	}
	subscribers, err := c.store.CountSubscribers(ctx, owner)
	if err != nil {
		return nil, err
	}
	stats := &model.ChannelStats{
		TotalVideos:      videos,
		TotalViews:       views,
		TotalSubscribers: subscribers,
	}
	for _, n := range likes {
		stats.TotalLikes += n
	}
	for _, n := range comments {
		stats.TotalComments += n
	}
	return stats, nil
}

// ChannelProfile resolves a channel by handle with its subscription counts
// and whether actor subscribes to it.
func (c *Composer) ChannelProfile(ctx context.Context, actor int64, username string) (*model.ChannelProfile, error) {
	user, err := c.store.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errno.NotFoundErr.WithMessage("channel does not exist")
	}
	subscribers, err := c.store.CountSubscribers(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	subscribedTo, err := c.store.CountSubscribedTo(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	profile := &model.ChannelProfile{
		UserLite:          *user.Lite(),
		CoverImage:        user.CoverImage,
		SubscribersCount:  subscribers,
		SubscribedToCount: subscribedTo,
	}
	if actor > 0 {
		sub, err := c.store.FindSubscription(ctx, actor, user.ID)
		if err != nil {
			return nil, err
		}
		profile.IsSubscribed = sub != nil
	}
	return profile, nil
}

func (c *Composer) userPage(ctx context.Context, w paging.Window, ids []int64) (paging.Page[model.UserLite], error) {
	users, err := c.store.FindUsersByIDs(ctx, ids)
	if err != nil {
		return paging.Page[model.UserLite]{}, err
	}
	items := make([]model.UserLite, 0, len(ids))
	for _, id := range ids {
		if u, ok := users[id]; ok {
			items = append(items, *u.Lite())
		}
	}
	return paging.NewPage(w, items), nil
}

// Subscribers lists the users subscribed to channel, newest first.
func (c *Composer) Subscribers(ctx context.Context, channel int64, w paging.Window) (paging.Page[model.UserLite], error) {
	subs, err := c.store.ListSubscribers(ctx, channel, w.Offset(), w.Limit)
	if err != nil {
		return paging.Page[model.UserLite]{}, err
	}
	ids := make([]int64, len(subs))
	for i, s := range subs {
		ids[i] = s.SubscriberId
	}
	return c.userPage(ctx, w, ids)
}

// SubscribedChannels lists the channels subscriber follows, newest first.
func (c *Composer) SubscribedChannels(ctx context.Context, subscriber int64, w paging.Window) (paging.Page[model.UserLite], error) {
	subs, err := c.store.ListSubscribed(ctx, subscriber, w.Offset(), w.Limit)
	if err != nil {
		return paging.Page[model.UserLite]{}, err
	}
	ids := make([]int64, len(subs))
	for i, s := range subs {
		ids[i] = s.ChannelId
	}
	return c.userPage(ctx, w, ids)
}
