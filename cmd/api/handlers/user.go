package handlers

import (
	"context"

	"vidtube.com/cmd/user/service"
	"vidtube.com/pkg/errno"

	"github.com/cloudwego/hertz/pkg/app"
)

func (h *Handlers) userService(ctx context.Context) *service.UserService {
	return service.NewUserService(ctx, h.Store, h.Composer, h.Blobs)
}

func (h *Handlers) Register(ctx context.Context, c *app.RequestContext) {
	var p RegisterParam
	if err := c.Bind(&p); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	avatar, err := h.saveUpload(c, "avatar")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	cover, err := h.saveUpload(c, "coverImage")
	defer discard(avatar, cover)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	user, err := h.userService(ctx).Register(service.RegisterInput{
		Username:   p.Username,
		FullName:   p.FullName,
		Email:      p.Email,
		Password:   p.Password,
		Avatar:     avatar,
		CoverImage: cover,
	})
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, user)
}

func (h *Handlers) ChannelProfile(ctx context.Context, c *app.RequestContext) {
	profile, err := h.userService(ctx).ChannelProfile(actorOf(c), c.Param("username"))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, profile)
}
