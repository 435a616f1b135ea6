package service

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"vidtube.com/cmd/dal/memory"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/compose"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/metrics"
	"vidtube.com/pkg/paging"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBlobs struct {
	mu         sync.Mutex
	failUpload map[string]bool
	failDelete bool
	uploaded   []string
	deleted    []string
}

func (f *fakeBlobs) Upload(_ context.Context, localPath string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := filepath.Base(localPath)
	if f.failUpload[name] {
		return "", errors.New("upload refused")
	}
	url := "https://blobs.test/" + name
	f.uploaded = append(f.uploaded, url)
	return url, nil
}

func (f *fakeBlobs) Delete(_ context.Context, url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, url)
	return !f.failDelete
}

func tempFile(t *testing.T, name string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte("media"), 0o644))
	return p
}

func newService(t *testing.T) (*VideoService, *memory.Store, *fakeBlobs) {
	t.Helper()
	s := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, s.CreateUser(ctx, &model.User{ID: 1, Username: "alice", Email: "alice@vidtube.test"}))
	require.NoError(t, s.CreateUser(ctx, &model.User{ID: 2, Username: "bob", Email: "bob@vidtube.test"}))
	blobs := &fakeBlobs{failUpload: map[string]bool{}}
	return NewVideoService(ctx, s, compose.New(s), blobs), s, blobs
}

func TestPublishVideo(t *testing.T) {
	svc, s, blobs := newService(t)

	video, err := svc.PublishVideo(1, PublishVideoInput{
		Title:       " Intro ",
		Description: "first upload",
		VideoFile:   tempFile(t, "intro.mp4"),
		Thumbnail:   tempFile(t, "intro.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Intro", video.Title)
	assert.Equal(t, "https://blobs.test/intro.mp4", video.VideoFile)
	assert.Equal(t, "https://blobs.test/intro.png", video.Thumbnail)
	assert.True(t, video.IsPublished)
	assert.Equal(t, int64(1), video.OwnerId)

	stored, err := s.FindVideoByID(context.Background(), video.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Len(t, blobs.uploaded, 2)
}

func TestPublishVideoValidation(t *testing.T) {
	svc, _, _ := newService(t)
	_, err := svc.PublishVideo(1, PublishVideoInput{Title: "t", Description: " ", VideoFile: "a", Thumbnail: "b"})
	assert.ErrorIs(t, err, errno.ParamErr)
	_, err = svc.PublishVideo(1, PublishVideoInput{Title: "t", Description: "d", VideoFile: "a"})
	assert.ErrorIs(t, err, errno.ParamErr)
}

func TestPublishVideoUploadFailure(t *testing.T) {
	svc, s, blobs := newService(t)
	blobs.failUpload["clip.png"] = true

	_, err := svc.PublishVideo(1, PublishVideoInput{
		Title:       "clip",
		Description: "d",
		VideoFile:   tempFile(t, "clip.mp4"),
		Thumbnail:   tempFile(t, "clip.png"),
	})
	assert.ErrorIs(t, err, errno.OssErr)
	assert.Equal(t, []string{"https://blobs.test/clip.mp4"}, blobs.deleted)

	videos, err := s.VideoIDsByOwner(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, videos)
}

func TestUpdateVideo(t *testing.T) {
	svc, s, blobs := newService(t)
	ctx := context.Background()
	require.NoError(t, s.CreateVideo(ctx, &model.Video{ID: 10, OwnerId: 1, Title: "old", Description: "d", Thumbnail: "https://blobs.test/old.png", IsPublished: true}))

	_, err := svc.UpdateVideo(2, 10, UpdateVideoInput{Title: "hijack"})
	assert.ErrorIs(t, err, errno.ForbiddenErr)
	v, _ := s.FindVideoByID(ctx, 10)
	assert.Equal(t, "old", v.Title)

	_, err = svc.UpdateVideo(1, 10, UpdateVideoInput{})
	assert.ErrorIs(t, err, errno.ParamErr)

	_, err = svc.UpdateVideo(1, 404, UpdateVideoInput{Title: "x"})
	assert.ErrorIs(t, err, errno.NotFoundErr)

	updated, err := svc.UpdateVideo(1, 10, UpdateVideoInput{Title: "new", Thumbnail: tempFile(t, "new.png")})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Title)
	assert.Equal(t, "d", updated.Description)
	assert.Equal(t, "https://blobs.test/new.png", updated.Thumbnail)
	assert.Equal(t, []string{"https://blobs.test/old.png"}, blobs.deleted)

	v, _ = s.FindVideoByID(ctx, 10)
	assert.Equal(t, "https://blobs.test/new.png", v.Thumbnail)
}

func TestTogglePublishStatus(t *testing.T) {
	svc, s, _ := newService(t)
	require.NoError(t, s.CreateVideo(context.Background(), &model.Video{ID: 10, OwnerId: 1, IsPublished: true}))

	published, err := svc.TogglePublishStatus(1, 10)
	require.NoError(t, err)
	assert.False(t, published)
	published, err = svc.TogglePublishStatus(1, 10)
	require.NoError(t, err)
	assert.True(t, published)

	_, err = svc.TogglePublishStatus(2, 10)
	assert.ErrorIs(t, err, errno.ForbiddenErr)
}

func TestDeleteVideoCascades(t *testing.T) {
	svc, s, blobs := newService(t)
	ctx := context.Background()
	require.NoError(t, s.CreateVideo(ctx, &model.Video{ID: 10, OwnerId: 1, VideoFile: "https://blobs.test/v.mp4", Thumbnail: "https://blobs.test/v.png", IsPublished: true}))
	require.NoError(t, s.CreateVideo(ctx, &model.Video{ID: 11, OwnerId: 1, IsPublished: true}))
	require.NoError(t, s.CreateComment(ctx, &model.Comment{ID: 20, VideoId: 10, OwnerId: 2, Content: "hi"}))
	require.NoError(t, s.CreateComment(ctx, &model.Comment{ID: 21, VideoId: 11, OwnerId: 2, Content: "keep"}))
	for i, target := range []model.Target{
		{Kind: model.TargetVideo, ID: 10},
		{Kind: model.TargetComment, ID: 20},
		{Kind: model.TargetVideo, ID: 11},
	} {
		l, err := model.NewLike(int64(100+i), 2, target)
		require.NoError(t, err)
		require.NoError(t, s.CreateLike(ctx, l))
	}
	require.NoError(t, s.CreatePlaylist(ctx, &model.Playlist{ID: 30, OwnerId: 2, Name: "mix"}))
	require.NoError(t, s.AddPlaylistVideo(ctx, &model.PlaylistVideo{PlaylistId: 30, VideoId: 10, Position: 1}))
	require.NoError(t, s.AddPlaylistVideo(ctx, &model.PlaylistVideo{PlaylistId: 30, VideoId: 11, Position: 2}))

	assert.ErrorIs(t, svc.DeleteVideo(2, 10), errno.ForbiddenErr)
	require.NoError(t, svc.DeleteVideo(1, 10))

	v, err := s.FindVideoByID(ctx, 10)
	require.NoError(t, err)
	assert.Nil(t, v)
	c, err := s.FindCommentByID(ctx, 20)
	require.NoError(t, err)
	assert.Nil(t, c)
	c, err = s.FindCommentByID(ctx, 21)
	require.NoError(t, err)
	assert.NotNil(t, c)

	videoLikes, err := s.CountLikesByTargets(ctx, model.TargetVideo, []int64{10, 11})
	require.NoError(t, err)
	assert.Zero(t, videoLikes[10])
	assert.Equal(t, int64(1), videoLikes[11])
	commentLikes, err := s.CountLikesByTargets(ctx, model.TargetComment, []int64{20})
	require.NoError(t, err)
	assert.Zero(t, commentLikes[20])

	ids, err := s.PlaylistVideoIDs(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, []int64{11}, ids)
	assert.Equal(t, []string{"https://blobs.test/v.mp4", "https://blobs.test/v.png"}, blobs.deleted)

	assert.ErrorIs(t, svc.DeleteVideo(1, 10), errno.NotFoundErr)
}

func TestDeleteVideoBlobFailureIsSuppressed(t *testing.T) {
	svc, s, blobs := newService(t)
	blobs.failDelete = true
	require.NoError(t, s.CreateVideo(context.Background(), &model.Video{ID: 10, OwnerId: 1, VideoFile: "https://blobs.test/v.mp4", Thumbnail: "https://blobs.test/v.png"}))
	before := testutil.ToFloat64(metrics.CleanupFailuresTotal.WithLabelValues("video_blob"))

	require.NoError(t, svc.DeleteVideo(1, 10))
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.CleanupFailuresTotal.WithLabelValues("video_blob")))
}

func TestDashboard(t *testing.T) {
	svc, s, _ := newService(t)
	ctx := context.Background()
	require.NoError(t, s.CreateVideo(ctx, &model.Video{ID: 10, OwnerId: 1, Views: 120, IsPublished: true}))
	require.NoError(t, s.CreateVideo(ctx, &model.Video{ID: 11, OwnerId: 1, Views: 80, IsPublished: false}))
	require.NoError(t, s.CreateVideo(ctx, &model.Video{ID: 12, OwnerId: 2, Views: 5, IsPublished: true}))

	stats, err := svc.ChannelStats(1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalVideos)
	assert.Equal(t, int64(200), stats.TotalViews)

	page, err := svc.ChannelVideos(1, paging.Normalize(1, 10))
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)

	public, err := svc.ListVideos(2, ListVideosInput{Window: paging.Normalize(1, 10), UserID: 1})
	require.NoError(t, err)
	require.Len(t, public.Items, 1)
	assert.Equal(t, int64(10), public.Items[0].ID)

	_, err = svc.ChannelStats(0)
	assert.ErrorIs(t, err, errno.AuthorizationFailedErr)
}
