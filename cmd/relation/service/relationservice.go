package service

import (
	"context"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/compose"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/paging"
	"vidtube.com/pkg/toggle"

	"github.com/pkg/errors"
)

type RelationService struct {
	ctx      context.Context
	store    dal.Store
	engine   *toggle.Engine
	composer *compose.Composer
}

func NewRelationService(ctx context.Context, store dal.Store, engine *toggle.Engine, composer *compose.Composer) *RelationService {
	return &RelationService{ctx: ctx, store: store, engine: engine, composer: composer}
}

// ToggleSubscription returns true when the actor is now subscribed to channel.
func (s *RelationService) ToggleSubscription(actor, channelID int64) (bool, error) {
	return s.engine.Toggle(s.ctx, actor, toggle.KindChannel, channelID)
}

func (s *RelationService) ChannelSubscribers(channelID int64, w paging.Window) (paging.Page[model.UserLite], error) {
	if err := s.userExists(channelID); err != nil {
		return paging.Page[model.UserLite]{}, err
	}
	return s.composer.Subscribers(s.ctx, channelID, w)
}

func (s *RelationService) SubscribedChannels(subscriberID int64, w paging.Window) (paging.Page[model.UserLite], error) {
	if err := s.userExists(subscriberID); err != nil {
		return paging.Page[model.UserLite]{}, err
	}
	return s.composer.SubscribedChannels(s.ctx, subscriberID, w)
}

func (s *RelationService) userExists(id int64) error {
	if id <= 0 {
		return errno.ParamErr.WithMessage("invalid user id")
	}
	user, err := s.store.FindUserByID(s.ctx, id)
	if err != nil {
		return errors.WithMessage(err, "dal.FindUserByID failed")
	}
	if user == nil {
		return errno.NotFoundErr.WithMessage("user does not exist")
	}
	return nil
}
