package service

import (
	"context"
	"time"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/compose"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/guard"
	"vidtube.com/pkg/metrics"
	"vidtube.com/pkg/paging"
	"vidtube.com/pkg/utils"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type CommentService struct {
	ctx      context.Context
	store    dal.Store
	composer *compose.Composer
}

func NewCommentService(ctx context.Context, store dal.Store, composer *compose.Composer) *CommentService {
	return &CommentService{ctx: ctx, store: store, composer: composer}
}

// ListVideoComments pages through a video's comments, newest first.
func (service *CommentService) ListVideoComments(videoID int64, w paging.Window) (paging.Page[model.CommentView], error) {
	if videoID <= 0 {
		return paging.Page[model.CommentView]{}, errno.ParamErr.WithMessage("invalid video id")
	}
	return service.composer.Comments(service.ctx, videoID, w)
}

func (service *CommentService) AddComment(actor, videoID int64, content string) (*model.Comment, error) {
	content, err := utils.CheckContent(content, constants.MaxCommentLength)
	if err != nil {
		return nil, err
	}
	video, err := service.store.FindVideoByID(service.ctx, videoID)
	if err != nil {
		return nil, errors.WithMessage(err, "dal.FindVideoByID failed")
	}
	if video == nil || !video.VisibleTo(actor) {
		return nil, errno.NotFoundErr.WithMessage("video does not exist")
	}
	comment := &model.Comment{
		ID:        utils.GenerateID(),
		VideoId:   videoID,
		OwnerId:   actor,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err = service.store.CreateComment(service.ctx, comment); err != nil {
		return nil, errors.WithMessage(err, "dal.CreateComment failed")
	}
	return comment, nil
}

func (service *CommentService) owned(actor, commentID int64) (*model.Comment, error) {
	comment, err := service.store.FindCommentByID(service.ctx, commentID)
	if err != nil {
		return nil, errors.WithMessage(err, "dal.FindCommentByID failed")
	}
	if comment == nil {
		return nil, errno.NotFoundErr.WithMessage("comment does not exist")
	}
	if err = guard.AssertOwner(actor, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (service *CommentService) UpdateComment(actor, commentID int64, content string) (*model.Comment, error) {
	content, err := utils.CheckContent(content, constants.MaxCommentLength)
	if err != nil {
		return nil, err
	}
	comment, err := service.owned(actor, commentID)
	if err != nil {
		return nil, err
	}
	comment.Content = content
	if err = service.store.UpdateComment(service.ctx, comment); err != nil {
		return nil, errors.WithMessage(err, "dal.UpdateComment failed")
	}
	return comment, nil
}

// DeleteComment removes the comment and then its likes.
func (service *CommentService) DeleteComment(actor, commentID int64) error {
	comment, err := service.owned(actor, commentID)
	if err != nil {
		return err
	}
	rows, err := service.store.DeleteComment(service.ctx, comment.ID)
	if err != nil {
		return errors.WithMessage(err, "dal.DeleteComment failed")
	}
	if rows == 0 {
		return errno.NotFoundErr.WithMessage("comment does not exist")
	}
	if _, err = service.store.DeleteLikesByTargets(service.ctx, model.TargetComment, []int64{comment.ID}); err != nil {
		hlog.CtxErrorf(service.ctx, "delete likes of comment %d failed: %v", comment.ID, err)
		metrics.CleanupFailed("comment_likes")
	}
	return nil
}
