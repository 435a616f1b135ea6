package memory

import (
	"context"
	"testing"
	"time"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeEdgeIsUnique(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	target := model.Target{Kind: model.TargetVideo, ID: 10}

	require.NoError(t, s.CreateLike(ctx, &model.Like{ID: 1, LikedBy: 5, Target: target}))
	err := s.CreateLike(ctx, &model.Like{ID: 2, LikedBy: 5, Target: target})
	assert.ErrorIs(t, err, dal.ErrDuplicate)

	counts, err := s.CountLikesByTargets(ctx, model.TargetVideo, []int64{10, 11})
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[10])
	assert.Zero(t, counts[11])

	n, err := s.DeleteLike(ctx, 5, target)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = s.DeleteLike(ctx, 5, target)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReturnedRowsAreCopies(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.CreateVideo(ctx, &model.Video{ID: 1, OwnerId: 2, Title: "a"}))

	v, err := s.FindVideoByID(ctx, 1)
	require.NoError(t, err)
	v.Title = "mutated"

	again, err := s.FindVideoByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "a", again.Title)
}

func TestListVideosOrderingAndWindow(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	base := time.Now()
	for i := int64(1); i <= 5; i++ {
		require.NoError(t, s.CreateVideo(ctx, &model.Video{
			ID:          i,
			OwnerId:     1,
			Title:       "clip",
			Views:       10 * (i % 2),
			IsPublished: i != 3,
			CreatedAt:   base.Add(time.Duration(i) * time.Second),
		}))
	}

	t.Run("newest first", func(t *testing.T) {
		got, err := s.ListVideos(ctx, dal.VideoQuery{SortBy: dal.SortCreatedAt, Desc: true, Limit: 2})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(5), got[0].ID)
		assert.Equal(t, int64(4), got[1].ID)
	})

	t.Run("ties break on id", func(t *testing.T) {
		got, err := s.ListVideos(ctx, dal.VideoQuery{SortBy: dal.SortViews, Limit: 10})
		require.NoError(t, err)
		ids := make([]int64, 0, len(got))
		for _, v := range got {
			ids = append(ids, v.ID)
		}
		assert.Equal(t, []int64{2, 4, 1, 3, 5}, ids)
	})

	t.Run("published only", func(t *testing.T) {
		got, err := s.ListVideos(ctx, dal.VideoQuery{PublishedOnly: true, Limit: 10})
		require.NoError(t, err)
		assert.Len(t, got, 4)
	})

	t.Run("offset past end", func(t *testing.T) {
		got, err := s.ListVideos(ctx, dal.VideoQuery{Offset: 10, Limit: 10})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestListVideosTitleIgnoresCase(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	for i, title := range []string{"banana", "Apple", "cherry", "apricot"} {
		require.NoError(t, s.CreateVideo(ctx, &model.Video{ID: int64(i + 1), OwnerId: 1, Title: title}))
	}
	got, err := s.ListVideos(ctx, dal.VideoQuery{SortBy: dal.SortTitle, Limit: 10})
	require.NoError(t, err)
	titles := make([]string, 0, len(got))
	for _, v := range got {
		titles = append(titles, v.Title)
	}
	assert.Equal(t, []string{"Apple", "apricot", "banana", "cherry"}, titles)
}

func TestPlaylistMembership(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.CreatePlaylist(ctx, &model.Playlist{ID: 1, OwnerId: 1, Name: "mix"}))
	require.NoError(t, s.AddPlaylistVideo(ctx, &model.PlaylistVideo{PlaylistId: 1, VideoId: 8, Position: 2}))
	require.NoError(t, s.AddPlaylistVideo(ctx, &model.PlaylistVideo{PlaylistId: 1, VideoId: 9, Position: 1}))
	assert.ErrorIs(t, s.AddPlaylistVideo(ctx, &model.PlaylistVideo{PlaylistId: 1, VideoId: 8, Position: 3}), dal.ErrDuplicate)

	ids, err := s.PlaylistVideoIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{9, 8}, ids)

	n, err := s.DeletePlaylist(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	counts, err := s.CountVideosByPlaylists(ctx, []int64{1})
	require.NoError(t, err)
	assert.Zero(t, counts[1])
}
