// Package memory is an in-process dal.Store. Every read returns copies so
// callers never alias stored rows.
package memory

import (
	"sort"
	"sync"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
)

type likeKey struct {
	actor  int64
	target model.Target
}

type subKey struct {
	subscriber int64
	channel    int64
}

type memberKey struct {
	playlist int64
	video    int64
}

type Store struct {
	mu sync.RWMutex

	users         map[int64]*model.User
	videos        map[int64]*model.Video
	comments      map[int64]*model.Comment
	likes         map[likeKey]*model.Like
	subscriptions map[subKey]*model.Subscription
	playlists     map[int64]*model.Playlist
	members       map[memberKey]*model.PlaylistVideo
	posts         map[int64]*model.Post
}

var _ dal.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		users:         make(map[int64]*model.User),
		videos:        make(map[int64]*model.Video),
		comments:      make(map[int64]*model.Comment),
		likes:         make(map[likeKey]*model.Like),
		subscriptions: make(map[subKey]*model.Subscription),
		playlists:     make(map[int64]*model.Playlist),
		members:       make(map[memberKey]*model.PlaylistVideo),
		posts:         make(map[int64]*model.Post),
	}
}

// window slices items the way OFFSET/LIMIT would.
func window[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

// newestFirst orders rows by creation time then id, both descending.
func newestFirst[T any](items []T, key func(T) (int64, int64)) {
	sort.Slice(items, func(i, j int) bool {
		ti, ii := key(items[i])
		tj, ij := key(items[j])
		if ti != tj {
			return ti > tj
		}
		return ii > ij
	})
}
