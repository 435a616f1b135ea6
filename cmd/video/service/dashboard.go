package service

import (
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/compose"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/paging"
)

func (s *VideoService) ChannelStats(actor int64) (*model.ChannelStats, error) {
	if actor <= 0 {
		return nil, errno.AuthorizationFailedErr
	}
	return s.composer.ChannelStats(s.ctx, actor)
}

// ChannelVideos lists the actor's own videos, drafts included.
func (s *VideoService) ChannelVideos(actor int64, w paging.Window) (paging.Page[model.VideoCard], error) {
	if actor <= 0 {
		return paging.Page[model.VideoCard]{}, errno.AuthorizationFailedErr
	}
	return s.composer.VideoCards(s.ctx, compose.VideoFilter{Actor: actor, OwnerID: actor}, w)
}
