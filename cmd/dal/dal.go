// Package dal declares the per-collection access interfaces of the entity
// store. Lookups by id return (nil, nil) when the row does not exist; deletes
// report the number of affected rows.
package dal

import (
	"context"

	"vidtube.com/cmd/model"

	"github.com/pkg/errors"
)

// ErrDuplicate is returned by creates that hit a unique index.
var ErrDuplicate = errors.New("dal: duplicate key")

// SortField is a sortable video column.
type SortField string

const (
	SortCreatedAt SortField = "created_at"
	SortViews     SortField = "views"
	SortDuration  SortField = "duration"
	SortTitle     SortField = "title"
)

// VideoQuery selects a window of videos. Zero OwnerID and empty Text match
// everything.
type VideoQuery struct {
	OwnerID       int64
	Text          string
	PublishedOnly bool
	SortBy        SortField
	Desc          bool
	Offset        int
	Limit         int
}

type UserRepo interface {
	CreateUser(ctx context.Context, user *model.User) error
	FindUserByID(ctx context.Context, id int64) (*model.User, error)
	FindUserByUsername(ctx context.Context, username string) (*model.User, error)
	FindUsersByIDs(ctx context.Context, ids []int64) (map[int64]*model.User, error)
}

type VideoRepo interface {
	CreateVideo(ctx context.Context, video *model.Video) error
	FindVideoByID(ctx context.Context, id int64) (*model.Video, error)
	FindVideosByIDs(ctx context.Context, ids []int64) (map[int64]*model.Video, error)
	ListVideos(ctx context.Context, q VideoQuery) ([]*model.Video, error)
	UpdateVideo(ctx context.Context, video *model.Video) error
	DeleteVideo(ctx context.Context, id int64) (int64, error)
	// IncrementViews adds one view in a single statement.
	IncrementViews(ctx context.Context, id int64) error
	// ChannelVideoTotals returns the number of videos of owner and their summed views.
	ChannelVideoTotals(ctx context.Context, owner int64) (videos int64, views int64, err error)
	VideoIDsByOwner(ctx context.Context, owner int64) ([]int64, error)
}

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	FindCommentByID(ctx context.Context, id int64) (*model.Comment, error)
	UpdateComment(ctx context.Context, comment *model.Comment) error
	DeleteComment(ctx context.Context, id int64) (int64, error)
	// ListCommentsByVideo is ordered newest first.
	ListCommentsByVideo(ctx context.Context, videoID int64, offset, limit int) ([]*model.Comment, error)
	CountCommentsByVideos(ctx context.Context, videoIDs []int64) (map[int64]int64, error)
	CommentIDsByVideo(ctx context.Context, videoID int64) ([]int64, error)
	DeleteCommentsByVideo(ctx context.Context, videoID int64) (int64, error)
}

type LikeRepo interface {
	FindLike(ctx context.Context, actor int64, target model.Target) (*model.Like, error)
	// CreateLike returns ErrDuplicate when the edge already exists.
	CreateLike(ctx context.Context, like *model.Like) error
	DeleteLike(ctx context.Context, actor int64, target model.Target) (int64, error)
	CountLikesByTargets(ctx context.Context, kind model.TargetKind, ids []int64) (map[int64]int64, error)
	// LikedByActor reports which of ids the actor has liked.
	LikedByActor(ctx context.Context, actor int64, kind model.TargetKind, ids []int64) (map[int64]bool, error)
	// ListLikesByActor is ordered newest like first.
	ListLikesByActor(ctx context.Context, actor int64, kind model.TargetKind, offset, limit int) ([]*model.Like, error)
	DeleteLikesByTargets(ctx context.Context, kind model.TargetKind, ids []int64) (int64, error)
}

type SubscriptionRepo interface {
	FindSubscription(ctx context.Context, subscriber, channel int64) (*model.Subscription, error)
	// CreateSubscription returns ErrDuplicate when the edge already exists.
	CreateSubscription(ctx context.Context, sub *model.Subscription) error
	DeleteSubscription(ctx context.Context, subscriber, channel int64) (int64, error)
	CountSubscribers(ctx context.Context, channel int64) (int64, error)
	CountSubscribedTo(ctx context.Context, subscriber int64) (int64, error)
	// ListSubscribers and ListSubscribed are ordered newest edge first.
	ListSubscribers(ctx context.Context, channel int64, offset, limit int) ([]*model.Subscription, error)
	ListSubscribed(ctx context.Context, subscriber int64, offset, limit int) ([]*model.Subscription, error)
}

type PlaylistRepo interface {
	CreatePlaylist(ctx context.Context, playlist *model.Playlist) error
	FindPlaylistByID(ctx context.Context, id int64) (*model.Playlist, error)
	UpdatePlaylist(ctx context.Context, playlist *model.Playlist) error
	// DeletePlaylist removes the playlist and its memberships.
	DeletePlaylist(ctx context.Context, id int64) (int64, error)
	ListPlaylistsByOwner(ctx context.Context, owner int64, offset, limit int) ([]*model.Playlist, error)
	CountVideosByPlaylists(ctx context.Context, ids []int64) (map[int64]int64, error)
	// AddPlaylistVideo returns ErrDuplicate when the video is already a member.
	AddPlaylistVideo(ctx context.Context, entry *model.PlaylistVideo) error
	RemovePlaylistVideo(ctx context.Context, playlistID, videoID int64) (int64, error)
	// PlaylistVideoIDs is ordered by position.
	PlaylistVideoIDs(ctx context.Context, playlistID int64) ([]int64, error)
	RemoveVideoFromPlaylists(ctx context.Context, videoID int64) (int64, error)
}

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	FindPostByID(ctx context.Context, id int64) (*model.Post, error)
	UpdatePost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id int64) (int64, error)
	// ListPostsByOwner is ordered newest first.
	ListPostsByOwner(ctx context.Context, owner int64, offset, limit int) ([]*model.Post, error)
}

// Store groups every collection.
type Store interface {
	UserRepo
	VideoRepo
	CommentRepo
	LikeRepo
	SubscriptionRepo
	PlaylistRepo
	PostRepo
}
