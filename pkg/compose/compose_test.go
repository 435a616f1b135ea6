package compose

import (
	"context"
	"testing"
	"time"

	"vidtube.com/cmd/dal/memory"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/paging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func seedUser(t *testing.T, s *memory.Store, id int64, username string) {
	t.Helper()
	require.NoError(t, s.CreateUser(context.Background(), &model.User{
		ID: id, Username: username, FullName: username, Email: username + "@vidtube.test",
	}))
}

func seedVideo(t *testing.T, s *memory.Store, v model.Video) {
	t.Helper()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = epoch.Add(time.Duration(v.ID) * time.Minute)
	}
	require.NoError(t, s.CreateVideo(context.Background(), &v))
}

func like(t *testing.T, s *memory.Store, id, actor int64, kind model.TargetKind, target int64, at time.Time) {
	t.Helper()
	l, err := model.NewLike(id, actor, model.Target{Kind: kind, ID: target})
	require.NoError(t, err)
	l.CreatedAt = at
	require.NoError(t, s.CreateLike(context.Background(), l))
}

func TestVideoCardsPagination(t *testing.T) {
	s := memory.NewStore()
	seedUser(t, s, 1, "alice")
	for i := int64(1); i <= 25; i++ {
		seedVideo(t, s, model.Video{ID: i, OwnerId: 1, Title: "v", IsPublished: true})
	}
	c := New(s)
	ctx := context.Background()

	first, err := c.VideoCards(ctx, VideoFilter{}, paging.Normalize(1, 10))
	require.NoError(t, err)
	require.Len(t, first.Items, 10)
	for i, card := range first.Items {
		assert.Equal(t, int64(25-i), card.ID)
	}

	third, err := c.VideoCards(ctx, VideoFilter{}, paging.Normalize(3, 10))
	require.NoError(t, err)
	require.Len(t, third.Items, 5)
	assert.Equal(t, int64(5), third.Items[0].ID)
	assert.Equal(t, int64(1), third.Items[4].ID)

	seen := make(map[int64]bool)
	for page := 1; page <= 3; page++ {
		p, err := c.VideoCards(ctx, VideoFilter{}, paging.Normalize(page, 10))
		require.NoError(t, err)
		for _, card := range p.Items {
			assert.False(t, seen[card.ID], "video %d appeared twice", card.ID)
			seen[card.ID] = true
		}
	}
	assert.Len(t, seen, 25)
}

func TestVideoCardsFilters(t *testing.T) {
	s := memory.NewStore()
	seedUser(t, s, 1, "alice")
	seedUser(t, s, 2, "bob")
	seedVideo(t, s, model.Video{ID: 1, OwnerId: 1, Title: "Learning Go", IsPublished: true})
	seedVideo(t, s, model.Video{ID: 2, OwnerId: 1, Title: "Cooking", Description: "a GOurmet dish", IsPublished: true})
	seedVideo(t, s, model.Video{ID: 3, OwnerId: 2, Title: "go fishing", IsPublished: true})
	seedVideo(t, s, model.Video{ID: 4, OwnerId: 1, Title: "go draft", IsPublished: false})
	c := New(s)
	ctx := context.Background()
	w := paging.Normalize(1, 10)

	ids := func(p paging.Page[model.VideoCard]) []int64 {
		out := make([]int64, 0, len(p.Items))
		for _, card := range p.Items {
			out = append(out, card.ID)
		}
		return out
	}

	t.Run("owner and text", func(t *testing.T) {
		p, err := c.VideoCards(ctx, VideoFilter{OwnerID: 1, Query: "go"}, w)
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 1}, ids(p))
	})

	t.Run("owner sees drafts", func(t *testing.T) {
		p, err := c.VideoCards(ctx, VideoFilter{Actor: 1, OwnerID: 1, Query: "go"}, w)
		require.NoError(t, err)
		assert.Equal(t, []int64{4, 2, 1}, ids(p))
	})

	t.Run("title ascending", func(t *testing.T) {
		p, err := c.VideoCards(ctx, VideoFilter{SortBy: "title", SortType: "asc"}, w)
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 1, 3}, ids(p))
	})

	t.Run("unknown sort falls back", func(t *testing.T) {
		p, err := c.VideoCards(ctx, VideoFilter{SortBy: "bogus", SortType: "sideways"}, w)
		require.NoError(t, err)
		assert.Equal(t, []int64{3, 2, 1}, ids(p))
	})
}

func TestVideoCardsMissingOwnerIsNull(t *testing.T) {
	s := memory.NewStore()
	seedVideo(t, s, model.Video{ID: 1, OwnerId: 99, Title: "orphan", IsPublished: true})
	p, err := New(s).VideoCards(context.Background(), VideoFilter{}, paging.Normalize(1, 10))
	require.NoError(t, err)
	require.Len(t, p.Items, 1)
	assert.Nil(t, p.Items[0].Owner)
}

func TestVideoDetail(t *testing.T) {
	s := memory.NewStore()
	seedUser(t, s, 1, "alice")
	seedVideo(t, s, model.Video{ID: 1, OwnerId: 1, Views: 4, IsPublished: true})
	seedVideo(t, s, model.Video{ID: 2, OwnerId: 1, IsPublished: false})
	like(t, s, 100, 7, model.TargetVideo, 1, epoch)
	require.NoError(t, s.CreateComment(context.Background(), &model.Comment{ID: 1, VideoId: 1, OwnerId: 7, Content: "hi"}))
	c := New(s)
	ctx := context.Background()

	d, err := c.VideoDetail(ctx, 7, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), d.Views)
	assert.Equal(t, int64(1), d.Likes)
	assert.Equal(t, int64(1), d.Comments)
	assert.True(t, d.IsLiked)
	assert.Equal(t, "alice", d.Owner.Username)

	d, err = c.VideoDetail(ctx, 8, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(6), d.Views)
	assert.False(t, d.IsLiked)

	_, err = c.VideoDetail(ctx, 7, 2)
	assert.ErrorIs(t, err, errno.NotFoundErr)
	_, err = c.VideoDetail(ctx, 1, 2)
	assert.NoError(t, err)
	_, err = c.VideoDetail(ctx, 7, 404)
	assert.ErrorIs(t, err, errno.NotFoundErr)
}

func TestLikedVideosReplaceRoot(t *testing.T) {
	s := memory.NewStore()
	seedUser(t, s, 1, "alice")
	seedVideo(t, s, model.Video{ID: 1, OwnerId: 1, Title: "first", IsPublished: true})
	seedVideo(t, s, model.Video{ID: 2, OwnerId: 1, Title: "second", IsPublished: true})
	like(t, s, 10, 7, model.TargetVideo, 1, epoch.Add(time.Hour))
	like(t, s, 11, 7, model.TargetVideo, 2, epoch.Add(2*time.Hour))
	like(t, s, 12, 7, model.TargetVideo, 3, epoch.Add(3*time.Hour))
	like(t, s, 13, 8, model.TargetVideo, 1, epoch)

	p, err := New(s).LikedVideos(context.Background(), 7, paging.Normalize(1, 10))
	require.NoError(t, err)
	require.Len(t, p.Items, 2)
	assert.Equal(t, "second", p.Items[0].Title)
	assert.Equal(t, "first", p.Items[1].Title)
	assert.Equal(t, "alice", p.Items[0].Owner.Username)
}

func TestChannelStats(t *testing.T) {
	s := memory.NewStore()
	seedUser(t, s, 1, "alice")
	seedVideo(t, s, model.Video{ID: 1, OwnerId: 1, Views: 120, IsPublished: true})
	seedVideo(t, s, model.Video{ID: 2, OwnerId: 1, Views: 80, IsPublished: true})
	seedVideo(t, s, model.Video{ID: 3, OwnerId: 2, Views: 1000, IsPublished: true})
	next := int64(100)
	for actor := int64(10); actor < 13; actor++ {
		like(t, s, next, actor, model.TargetVideo, 1, epoch)
		next++
	}
	for actor := int64(10); actor < 15; actor++ {
		like(t, s, next, actor, model.TargetVideo, 2, epoch)
		next++
	}
	like(t, s, next, 10, model.TargetVideo, 3, epoch)
	ctx := context.Background()
	require.NoError(t, s.CreateSubscription(ctx, &model.Subscription{ID: 1, SubscriberId: 10, ChannelId: 1}))
	require.NoError(t, s.CreateComment(ctx, &model.Comment{ID: 1, VideoId: 2, OwnerId: 10, Content: "nice"}))

	stats, err := New(s).ChannelStats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model.ChannelStats{
		TotalVideos:      2,
		TotalViews:       200,
		TotalLikes:       8,
		TotalComments:    1,
		TotalSubscribers: 1,
	}, *stats)
}

func TestPlaylistDetailKeepsOrder(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	seedUser(t, s, 1, "alice")
	seedUser(t, s, 2, "bob")
	seedVideo(t, s, model.Video{ID: 1, OwnerId: 2, Title: "bob's", IsPublished: true})
	seedVideo(t, s, model.Video{ID: 2, OwnerId: 1, Title: "alice's", IsPublished: true})
	require.NoError(t, s.CreatePlaylist(ctx, &model.Playlist{ID: 5, OwnerId: 1, Name: "mix"}))
	require.NoError(t, s.AddPlaylistVideo(ctx, &model.PlaylistVideo{PlaylistId: 5, VideoId: 2, Position: 1}))
	require.NoError(t, s.AddPlaylistVideo(ctx, &model.PlaylistVideo{PlaylistId: 5, VideoId: 1, Position: 2}))

	c := New(s)
	d, err := c.PlaylistDetail(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, "alice", d.Owner.Username)
	require.Len(t, d.Videos, 2)
	assert.Equal(t, int64(2), d.Videos[0].ID)
	assert.Equal(t, "bob", d.Videos[1].Owner.Username)

	summaries, err := c.PlaylistSummaries(ctx, 1, paging.Normalize(1, 10))
	require.NoError(t, err)
	require.Len(t, summaries.Items, 1)
	assert.Equal(t, int64(2), summaries.Items[0].VideoCount)

	_, err = c.PlaylistDetail(ctx, 1, 6)
	assert.ErrorIs(t, err, errno.NotFoundErr)
}

func TestChannelProfile(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	seedUser(t, s, 1, "alice")
	seedUser(t, s, 2, "bob")
	require.NoError(t, s.CreateSubscription(ctx, &model.Subscription{ID: 1, SubscriberId: 2, ChannelId: 1}))

	c := New(s)
	p, err := c.ChannelProfile(ctx, 2, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.SubscribersCount)
	assert.Zero(t, p.SubscribedToCount)
	assert.True(t, p.IsSubscribed)

	p, err = c.ChannelProfile(ctx, 0, "alice")
	require.NoError(t, err)
	assert.False(t, p.IsSubscribed)

	_, err = c.ChannelProfile(ctx, 2, "carol")
	assert.ErrorIs(t, err, errno.NotFoundErr)

	subs, err := c.Subscribers(ctx, 1, paging.Normalize(1, 10))
	require.NoError(t, err)
	require.Len(t, subs.Items, 1)
	assert.Equal(t, "bob", subs.Items[0].Username)

	channels, err := c.SubscribedChannels(ctx, 2, paging.Normalize(1, 10))
	require.NoError(t, err)
	require.Len(t, channels.Items, 1)
	assert.Equal(t, "alice", channels.Items[0].Username)
}

func TestParseSort(t *testing.T) {
	field, desc := ParseSort("", "")
	assert.Equal(t, "created_at", string(field))
	assert.True(t, desc)

	field, desc = ParseSort("duration", "ASC")
	assert.Equal(t, "duration", string(field))
	assert.False(t, desc)
}

func TestUnpublishedVideosHiddenFromOthers(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	seedUser(t, s, 1, "alice")
	seedUser(t, s, 2, "bob")
	seedVideo(t, s, model.Video{ID: 1, OwnerId: 1, Title: "public", IsPublished: true})
	seedVideo(t, s, model.Video{ID: 2, OwnerId: 1, Title: "draft"})
	like(t, s, 10, 1, model.TargetVideo, 2, epoch.Add(time.Hour))
	like(t, s, 11, 1, model.TargetVideo, 1, epoch)
	like(t, s, 12, 2, model.TargetVideo, 2, epoch.Add(time.Hour))
	like(t, s, 13, 2, model.TargetVideo, 1, epoch)
	require.NoError(t, s.CreatePlaylist(ctx, &model.Playlist{ID: 5, OwnerId: 1, Name: "mine"}))
	require.NoError(t, s.AddPlaylistVideo(ctx, &model.PlaylistVideo{PlaylistId: 5, VideoId: 2, Position: 1}))
	require.NoError(t, s.AddPlaylistVideo(ctx, &model.PlaylistVideo{PlaylistId: 5, VideoId: 1, Position: 2}))
	c := New(s)

	liked, err := c.LikedVideos(ctx, 2, paging.Normalize(1, 10))
	require.NoError(t, err)
	require.Len(t, liked.Items, 1)
	assert.Equal(t, "public", liked.Items[0].Title)

	liked, err = c.LikedVideos(ctx, 1, paging.Normalize(1, 10))
	require.NoError(t, err)
	assert.Len(t, liked.Items, 2)

	d, err := c.PlaylistDetail(ctx, 2, 5)
	require.NoError(t, err)
	require.Len(t, d.Videos, 1)
	assert.Equal(t, int64(1), d.Videos[0].ID)

	d, err = c.PlaylistDetail(ctx, 0, 5)
	require.NoError(t, err)
	assert.Len(t, d.Videos, 1)

	d, err = c.PlaylistDetail(ctx, 1, 5)
	require.NoError(t, err)
	assert.Len(t, d.Videos, 2)
}
