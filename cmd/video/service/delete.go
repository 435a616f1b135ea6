package service

import (
	"context"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/metrics"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type cleanupStep struct {
	name string
	run  func(ctx context.Context) error
}

// DeleteVideo removes the video row, then everything hanging off it. Cleanup
// steps run in order and a failed step only gets logged and counted.
func (s *VideoService) DeleteVideo(actor, videoID int64) error {
	video, err := s.owned(actor, videoID)
	if err != nil {
		return err
	}
	rows, err := s.store.DeleteVideo(s.ctx, video.ID)
	if err != nil {
		return errors.WithMessage(err, "dal.DeleteVideo failed")
	}
	if rows == 0 {
		return errno.NotFoundErr.WithMessage("video does not exist")
	}
	for _, step := range s.cleanupSteps(video) {
		if err := step.run(s.ctx); err != nil {
			hlog.CtxErrorf(s.ctx, "delete video %d: cleanup %s failed: %v", video.ID, step.name, err)
			metrics.CleanupFailed(step.name)
		}
	}
	hlog.CtxInfof(s.ctx, "user %d deleted video %d", actor, video.ID)
	return nil
}

func (s *VideoService) cleanupSteps(video *model.Video) []cleanupStep {
	return []cleanupStep{
		{name: "comment_likes", run: func(ctx context.Context) error {
			ids, err := s.store.CommentIDsByVideo(ctx, video.ID)
			if err != nil {
				return err
			}
			_, err = s.store.DeleteLikesByTargets(ctx, model.TargetComment, ids)
			return err
		}},
		{name: "comments", run: func(ctx context.Context) error {
			_, err := s.store.DeleteCommentsByVideo(ctx, video.ID)
			return err
		}},
		{name: "video_likes", run: func(ctx context.Context) error {
			_, err := s.store.DeleteLikesByTargets(ctx, model.TargetVideo, []int64{video.ID})
			return err
		}},
		{name: "playlist_entries", run: func(ctx context.Context) error {
			_, err := s.store.RemoveVideoFromPlaylists(ctx, video.ID)
			return err
		}},
		{name: "video_blob", run: func(ctx context.Context) error {
			return s.deleteBlob(ctx, video.VideoFile)
		}},
		{name: "thumbnail_blob", run: func(ctx context.Context) error {
			return s.deleteBlob(ctx, video.Thumbnail)
		}},
	}
}

func (s *VideoService) deleteBlob(ctx context.Context, url string) error {
	if url == "" {
		return nil
	}
	if !s.blobs.Delete(ctx, url) {
		return errors.Errorf("blob %s was not deleted", url)
	}
	return nil
}
