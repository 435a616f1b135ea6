package handlers

import (
	"context"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/playlist/service"
	"vidtube.com/pkg/errno"

	"github.com/cloudwego/hertz/pkg/app"
)

func (h *Handlers) playlistService(ctx context.Context) *service.PlaylistService {
	return service.NewPlaylistService(ctx, h.Store, h.Composer)
}

func (h *Handlers) CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	var p PlaylistParam
	if err := c.Bind(&p); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	playlist, err := h.playlistService(ctx).CreatePlaylist(actorOf(c), p.Name, p.Description)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}

func (h *Handlers) UserPlaylists(ctx context.Context, c *app.RequestContext) {
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
	page, err := h.playlistService(ctx).ListUserPlaylists(id, p.Window())
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, page)
}

func (h *Handlers) GetPlaylist(ctx context.Context, c *app.RequestContext) {
	id, err := pathID(c, "playlistId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	playlist, err := h.playlistService(ctx).GetPlaylist(actorOf(c), id)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}

func (h *Handlers) UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	id, err := pathID(c, "playlistId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var p PlaylistParam
	if err = c.Bind(&p); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	playlist, err := h.playlistService(ctx).UpdatePlaylist(actorOf(c), id, p.Name, p.Description)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}

func (h *Handlers) DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	id, err := pathID(c, "playlistId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	if err = h.playlistService(ctx).DeletePlaylist(actorOf(c), id); err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func (h *Handlers) AddPlaylistVideo(ctx context.Context, c *app.RequestContext) {
	h.changeMembership(ctx, c, (*service.PlaylistService).AddVideo)
}

func (h *Handlers) RemovePlaylistVideo(ctx context.Context, c *app.RequestContext) {
	h.changeMembership(ctx, c, (*service.PlaylistService).RemoveVideo)
}

func (h *Handlers) changeMembership(ctx context.Context, c *app.RequestContext,
	change func(*service.PlaylistService, int64, int64, int64) (*model.PlaylistDetail, error)) {
	playlistID, err := pathID(c, "playlistId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	videoID, err := pathID(c, "videoId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	detail, err := change(h.playlistService(ctx), actorOf(c), playlistID, videoID)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, detail)
}
