package service

import (
	"context"
	"strings"
	"time"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/compose"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/guard"
	"vidtube.com/pkg/oss"
	"vidtube.com/pkg/paging"
	"vidtube.com/pkg/utils"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type VideoService struct {
	ctx      context.Context
	store    dal.Store
	composer *compose.Composer
	blobs    oss.BlobStore
}

func NewVideoService(ctx context.Context, store dal.Store, composer *compose.Composer, blobs oss.BlobStore) *VideoService {
	return &VideoService{ctx: ctx, store: store, composer: composer, blobs: blobs}
}

type ListVideosInput struct {
	Window   paging.Window
	Query    string
	SortBy   string
	SortType string
	UserID   int64
}

// PublishVideoInput carries local paths of the uploaded files.
type PublishVideoInput struct {
	Title       string
	Description string
	VideoFile   string
	Thumbnail   string
}

// UpdateVideoInput leaves a field untouched when it is empty.
type UpdateVideoInput struct {
	Title       string
	Description string
	Thumbnail   string
}

func (s *VideoService) ListVideos(actor int64, in ListVideosInput) (paging.Page[model.VideoCard], error) {
	return s.composer.VideoCards(s.ctx, compose.VideoFilter{
		Actor:    actor,
		OwnerID:  in.UserID,
		Query:    in.Query,
		SortBy:   in.SortBy,
		SortType: in.SortType,
	}, in.Window)
}

func (s *VideoService) GetVideo(actor, videoID int64) (*model.VideoDetail, error) {
	if videoID <= 0 {
		return nil, errno.ParamErr.WithMessage("invalid video id")
	}
	return s.composer.VideoDetail(s.ctx, actor, videoID)
}

func (s *VideoService) PublishVideo(actor int64, in PublishVideoInput) (*model.Video, error) {
	title, description := strings.TrimSpace(in.Title), strings.TrimSpace(in.Description)
	if title == "" || description == "" {
		return nil, errno.ParamErr.WithMessage("title and description are required")
	}
	if in.VideoFile == "" || in.Thumbnail == "" {
		return nil, errno.ParamErr.WithMessage("video file and thumbnail are required")
	}

	// Probe before uploading, the upload removes the local file.
	duration, err := utils.ProbeDuration(in.VideoFile)
	if err != nil {
		hlog.CtxWarnf(s.ctx, "probe duration of %s failed: %v", in.VideoFile, err)
		duration = 0
	}

	videoURL, videoErr := s.blobs.Upload(s.ctx, in.VideoFile)
	thumbURL, thumbErr := s.blobs.Upload(s.ctx, in.Thumbnail)
	if videoErr != nil || thumbErr != nil {
		if videoErr == nil {
			s.blobs.Delete(s.ctx, videoURL)
		}
		if thumbErr == nil {
			s.blobs.Delete(s.ctx, thumbURL)
		}
		hlog.CtxErrorf(s.ctx, "upload media failed: video=%v thumbnail=%v", videoErr, thumbErr)
		return nil, errno.OssErr.WithMessage("failed to upload media")
	}

	video := &model.Video{
		ID:          utils.GenerateID(),
		OwnerId:     actor,
		VideoFile:   videoURL,
		Thumbnail:   thumbURL,
		Title:       title,
		Description: description,
		Duration:    duration,
		IsPublished: true,
		CreatedAt:   time.Now(),
	}
	if err = s.store.CreateVideo(s.ctx, video); err != nil {
		s.blobs.Delete(s.ctx, videoURL)
		s.blobs.Delete(s.ctx, thumbURL)
		return nil, errors.WithMessage(err, "dal.CreateVideo failed")
	}
	hlog.CtxInfof(s.ctx, "user %d published video %d", actor, video.ID)
	return video, nil
}

// owned loads a video and checks that actor may change it.
func (s *VideoService) owned(actor, videoID int64) (*model.Video, error) {
	if videoID <= 0 {
		return nil, errno.ParamErr.WithMessage("invalid video id")
	}
	video, err := s.store.FindVideoByID(s.ctx, videoID)
	if err != nil {
		return nil, errors.WithMessage(err, "dal.FindVideoByID failed")
	}
	if video == nil {
		return nil, errno.NotFoundErr.WithMessage("video does not exist")
	}
	if err = guard.AssertOwner(actor, video); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *VideoService) UpdateVideo(actor, videoID int64, in UpdateVideoInput) (*model.Video, error) {
	title, description := strings.TrimSpace(in.Title), strings.TrimSpace(in.Description)
	if title == "" && description == "" && in.Thumbnail == "" {
		return nil, errno.ParamErr.WithMessage("nothing to update")
	}
	video, err := s.owned(actor, videoID)
	if err != nil {
		return nil, err
	}
	if title != "" {
		video.Title = title
	}
	if description != "" {
		video.Description = description
	}
	oldThumbnail := ""
	if in.Thumbnail != "" {
		url, err := s.blobs.Upload(s.ctx, in.Thumbnail)
		if err != nil {
			hlog.CtxErrorf(s.ctx, "upload thumbnail failed: %v", err)
			return nil, errno.OssErr.WithMessage("failed to upload thumbnail")
		}
		oldThumbnail, video.Thumbnail = video.Thumbnail, url
	}
	if err = s.store.UpdateVideo(s.ctx, video); err != nil {
		return nil, errors.WithMessage(err, "dal.UpdateVideo failed")
	}
	if oldThumbnail != "" && !s.blobs.Delete(s.ctx, oldThumbnail) {
		hlog.CtxWarnf(s.ctx, "delete old thumbnail %s of video %d failed", oldThumbnail, video.ID)
	}
	return video, nil
}

// TogglePublishStatus flips the published flag and returns the new state.
func (s *VideoService) TogglePublishStatus(actor, videoID int64) (bool, error) {
	video, err := s.owned(actor, videoID)
	if err != nil {
		return false, err
	}
	video.IsPublished = !video.IsPublished
	if err = s.store.UpdateVideo(s.ctx, video); err != nil {
		return false, errors.WithMessage(err, "dal.UpdateVideo failed")
	}
	return video.IsPublished, nil
}
