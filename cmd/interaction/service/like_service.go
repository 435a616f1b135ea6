package service

import (
	"context"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/compose"
	"vidtube.com/pkg/paging"
	"vidtube.com/pkg/toggle"
)

type LikeService struct {
	ctx      context.Context
	engine   *toggle.Engine
	composer *compose.Composer
}

func NewLikeService(ctx context.Context, engine *toggle.Engine, composer *compose.Composer) *LikeService {
	return &LikeService{ctx: ctx, engine: engine, composer: composer}
}

// ToggleVideoLike returns true when the actor now likes the video.
func (service *LikeService) ToggleVideoLike(actor, videoID int64) (bool, error) {
	return service.engine.Toggle(service.ctx, actor, toggle.KindVideo, videoID)
}

func (service *LikeService) ToggleCommentLike(actor, commentID int64) (bool, error) {
	return service.engine.Toggle(service.ctx, actor, toggle.KindComment, commentID)
}

func (service *LikeService) TogglePostLike(actor, postID int64) (bool, error) {
	return service.engine.Toggle(service.ctx, actor, toggle.KindPost, postID)
}

// LikedVideos lists the videos the actor liked, most recent like first.
func (service *LikeService) LikedVideos(actor int64, w paging.Window) (paging.Page[model.VideoLite], error) {
	return service.composer.LikedVideos(service.ctx, actor, w)
}
