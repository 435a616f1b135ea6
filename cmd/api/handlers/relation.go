package handlers

import (
	"context"

	"vidtube.com/cmd/relation/service"
	"vidtube.com/pkg/errno"

	"github.com/cloudwego/hertz/pkg/app"
)

func (h *Handlers) relationService(ctx context.Context) *service.RelationService {
	return service.NewRelationService(ctx, h.Store, h.Engine, h.Composer)
}

func (h *Handlers) ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	id, err := pathID(c, "channelId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	subscribed, err := h.relationService(ctx).ToggleSubscription(actorOf(c), id)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, map[string]bool{"isSubscribed": subscribed})
}

func (h *Handlers) ChannelSubscribers(ctx context.Context, c *app.RequestContext) {
	id, err := pathID(c, "channelId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var p PageParam
	if err = c.BindAndValidate(&p); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	page, err := h.relationService(ctx).ChannelSubscribers(id, p.Window())
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, page)
}

func (h *Handlers) SubscribedChannels(ctx context.Context, c *app.RequestContext) {
	id, err := pathID(c, "subscriberId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var p PageParam
	if err = c.BindAndValidate(&p); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	page, err := h.relationService(ctx).SubscribedChannels(id, p.Window())
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, page)
}
