package handlers

import (
	"context"

	"vidtube.com/cmd/video/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func (h *Handlers) videoService(ctx context.Context) *service.VideoService {
	return service.NewVideoService(ctx, h.Store, h.Composer, h.Blobs)
}

func (h *Handlers) ListVideos(ctx context.Context, c *app.RequestContext) {
	var p VideoListParam
	if err := c.BindAndValidate(&p); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	var owner int64
	if p.UserId != "" {
		id, ok := utils.ParseID(p.UserId)
		if !ok {
			SendResponse(c, errno.ParamErr.WithMessage("invalid userId"), nil)
			return
		}
		owner = id
	}
	page, err := h.videoService(ctx).ListVideos(actorOf(c), service.ListVideosInput{
		Window:   p.Window(),
		Query:    p.Query,
		SortBy:   p.SortBy,
		SortType: p.SortType,
		UserID:   owner,
	})
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, page)
}

func (h *Handlers) GetVideo(ctx context.Context, c *app.RequestContext) {
	id, err := pathID(c, "videoId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	video, err := h.videoService(ctx).GetVideo(actorOf(c), id)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, video)
}

func (h *Handlers) PublishVideo(ctx context.Context, c *app.RequestContext) {
	var p VideoPublishParam
	if err := c.Bind(&p); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	videoFile, err := h.saveUpload(c, "videoFile")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	thumbnail, err := h.saveUpload(c, "thumbnail")
	defer discard(videoFile, thumbnail)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	video, err := h.videoService(ctx).PublishVideo(actorOf(c), service.PublishVideoInput{
		Title:       p.Title,
		Description: p.Description,
		VideoFile:   videoFile,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		hlog.CtxInfof(ctx, "publish video failed: %v", err)
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, video)
}

func (h *Handlers) UpdateVideo(ctx context.Context, c *app.RequestContext) {
	id, err := pathID(c, "videoId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var p VideoUpdateParam
	if err = c.Bind(&p); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	thumbnail, err := h.saveUpload(c, "thumbnail")
	defer discard(thumbnail)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	video, err := h.videoService(ctx).UpdateVideo(actorOf(c), id, service.UpdateVideoInput{
		Title:       p.Title,
		Description: p.Description,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, video)
}

func (h *Handlers) DeleteVideo(ctx context.Context, c *app.RequestContext) {
	id, err := pathID(c, "videoId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	if err = h.videoService(ctx).DeleteVideo(actorOf(c), id); err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func (h *Handlers) TogglePublishStatus(ctx context.Context, c *app.RequestContext) {
	id, err := pathID(c, "videoId")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	published, err := h.videoService(ctx).TogglePublishStatus(actorOf(c), id)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, map[string]bool{"isPublished": published})
}

func (h *Handlers) ChannelStats(ctx context.Context, c *app.RequestContext) {
	stats, err := h.videoService(ctx).ChannelStats(actorOf(c))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, stats)
}

func (h *Handlers) ChannelVideos(ctx context.Context, c *app.RequestContext) {
	var p PageParam
	if err := c.BindAndValidate(&p); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	page, err := h.videoService(ctx).ChannelVideos(actorOf(c), p.Window())
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, page)
}
