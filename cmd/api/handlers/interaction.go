package handlers

import (
	"context"

	"vidtube.com/cmd/interaction/service"
	"vidtube.com/pkg/errno"

	"github.com/cloudwego/hertz/pkg/app"
)

func (h *Handlers) commentService(ctx context.Context) *service.CommentService {
	return service.NewCommentService(ctx, h.Store, h.Composer)
}

func (h *Handlers) likeService(ctx context.Context) *service.LikeService {
	return service.NewLikeService(ctx, h.Engine, h.Composer)
}

func (h *Handlers) ListComments(ctx context.Context, c *app.RequestContext) {
	id, err := pathID(c, "videoId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var p PageParam
	if err = c.BindAndValidate(&p); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	page, err := h.commentService(ctx).ListVideoComments(id, p.Window())
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, page)
}

func (h *Handlers) AddComment(ctx context.Context, c *app.RequestContext) {
	id, err := pathID(c, "videoId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var p ContentParam
	if err = c.Bind(&p); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	comment, err := h.commentService(ctx).AddComment(actorOf(c), id, p.Content)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}

func (h *Handlers) UpdateComment(ctx context.Context, c *app.RequestContext) {
	id, err := pathID(c, "commentId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var p ContentParam
	if err = c.Bind(&p); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	comment, err := h.commentService(ctx).UpdateComment(actorOf(c), id, p.Content)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}

func (h *Handlers) DeleteComment(ctx context.Context, c *app.RequestContext) {
	id, err := pathID(c, "commentId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	if err = h.commentService(ctx).DeleteComment(actorOf(c), id); err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// likeToggle builds a handler that toggles a like on the id found in param.
func (h *Handlers) likeToggle(param string, flip func(*service.LikeService, int64, int64) (bool, error)) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		id, err := pathID(c, param)
		if err != nil {
			SendResponse(c, err, nil)
			return
		}
		liked, err := flip(h.likeService(ctx), actorOf(c), id)
		if err != nil {
			SendResponse(c, err, nil)
			return
		}
		SendResponse(c, errno.Success, map[string]bool{"isLiked": liked})
	}
}

func (h *Handlers) ToggleVideoLike() app.HandlerFunc {
	return h.likeToggle("videoId", (*service.LikeService).ToggleVideoLike)
}

func (h *Handlers) ToggleCommentLike() app.HandlerFunc {
	return h.likeToggle("commentId", (*service.LikeService).ToggleCommentLike)
}

func (h *Handlers) TogglePostLike() app.HandlerFunc {
	return h.likeToggle("tweetId", (*service.LikeService).TogglePostLike)
}

func (h *Handlers) LikedVideos(ctx context.Context, c *app.RequestContext) {
	var p PageParam
	if err := c.BindAndValidate(&p); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	page, err := h.likeService(ctx).LikedVideos(actorOf(c), p.Window())
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, page)
}
