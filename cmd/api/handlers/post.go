package handlers

import (
	"context"

	"vidtube.com/cmd/post/service"
	"vidtube.com/pkg/errno"

	"github.com/cloudwego/hertz/pkg/app"
)

func (h *Handlers) postService(ctx context.Context) *service.PostService {
	return service.NewPostService(ctx, h.Store, h.Composer)
}

func (h *Handlers) CreatePost(ctx context.Context, c *app.RequestContext) {
	var p ContentParam
	if err := c.Bind(&p); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	post, err := h.postService(ctx).CreatePost(actorOf(c), p.Content)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, post)
}

func (h *Handlers) UserPosts(ctx context.Context, c *app.RequestContext) {
	id, err := pathID(c, "userId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var p PageParam
	if err = c.BindAndValidate(&p); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	page, err := h.postService(ctx).ListUserPosts(id, p.Window())
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, page)
}

func (h *Handlers) UpdatePost(ctx context.Context, c *app.RequestContext) {
	id, err := pathID(c, "tweetId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var p ContentParam
	if err = c.Bind(&p); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	post, err := h.postService(ctx).UpdatePost(actorOf(c), id, p.Content)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, post)
}

func (h *Handlers) DeletePost(ctx context.Context, c *app.RequestContext) {
	id, err := pathID(c, "tweetId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	if err = h.postService(ctx).DeletePost(actorOf(c), id); err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
