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

type PostService struct {
	ctx      context.Context
	store    dal.Store
	composer *compose.Composer
}

func NewPostService(ctx context.Context, store dal.Store, composer *compose.Composer) *PostService {
	return &PostService{ctx: ctx, store: store, composer: composer}
}

func (s *PostService) CreatePost(actor int64, content string) (*model.Post, error) {
	content, err := utils.CheckContent(content, constants.MaxPostLength)
	if err != nil {
		return nil, err
	}
	post := &model.Post{
		ID:        utils.GenerateID(),
		OwnerId:   actor,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err = s.store.CreatePost(s.ctx, post); err != nil {
		return nil, errors.WithMessage(err, "dal.CreatePost failed")
	}
	return post, nil
}

func (s *PostService) ListUserPosts(userID int64, w paging.Window) (paging.Page[model.PostView], error) {
	if userID <= 0 {
		return paging.Page[model.PostView]{}, errno.ParamErr.WithMessage("invalid user id")
	}
	user, err := s.store.FindUserByID(s.ctx, userID)
	if err != nil {
		return paging.Page[model.PostView]{}, errors.WithMessage(err, "dal.FindUserByID failed")
	}
	if user == nil {
		return paging.Page[model.PostView]{}, errno.NotFoundErr.WithMessage("user does not exist")
	}
	return s.composer.Posts(s.ctx, userID, w)
}

func (s *PostService) owned(actor, id int64) (*model.Post, error) {
	post, err := s.store.FindPostByID(s.ctx, id)
	if err != nil {
		return nil, errors.WithMessage(err, "dal.FindPostByID failed")
	}
	if post == nil {
		return nil, errno.NotFoundErr.WithMessage("post does not exist")
	}
	if err = guard.AssertOwner(actor, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) UpdatePost(actor, id int64, content string) (*model.Post, error) {
	content, err := utils.CheckContent(content, constants.MaxPostLength)
	if err != nil {
		return nil, err
	}
	post, err := s.owned(actor, id)
	if err != nil {
		return nil, err
	}
	post.Content = content
	if err = s.store.UpdatePost(s.ctx, post); err != nil {
		return nil, errors.WithMessage(err, "dal.UpdatePost failed")
	}
	return post, nil
}

// DeletePost removes the post and then its likes.
func (s *PostService) DeletePost(actor, id int64) error {
	post, err := s.owned(actor, id)
	if err != nil {
		return err
	}
	rows, err := s.store.DeletePost(s.ctx, post.ID)
	if err != nil {
		return errors.WithMessage(err, "dal.DeletePost failed")
	}
	if rows == 0 {
		return errno.NotFoundErr.WithMessage("post does not exist")
	}
	if _, err = s.store.DeleteLikesByTargets(s.ctx, model.TargetPost, []int64{post.ID}); err != nil {
		hlog.CtxErrorf(s.ctx, "delete likes of post %d failed: %v", post.ID, err)
		metrics.CleanupFailed("post_likes")
	}
	return nil
}
