package memory

import (
	"context"
	"sort"
	"time"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
)

func (s *Store) CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.playlists[playlist.ID]; ok {
		return dal.ErrDuplicate
	}
	if playlist.CreatedAt.IsZero() {
		playlist.CreatedAt = time.Now()
	}
	playlist.UpdatedAt = playlist.CreatedAt
	cp := *playlist
	s.playlists[playlist.ID] = &cp
	return nil
}

func (s *Store) FindPlaylistByID(ctx context.Context, id int64) (*model.Playlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.playlists[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *Store) UpdatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.playlists[playlist.ID]; ok {
		p.Name = playlist.Name
		p.Description = playlist.Description
		p.UpdatedAt = time.Now()
		playlist.UpdatedAt = p.UpdatedAt
	}
	return nil
}

func (s *Store) DeletePlaylist(ctx context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k := range s.members {
		if k.playlist == id {
			delete(s.members, k)
		}
	}
	if _, ok := s.playlists[id]; !ok {
		return 0, nil
	}
	delete(s.playlists, id)
	return 1, nil
}

func (s *Store) ListPlaylistsByOwner(ctx context.Context, owner int64, offset, limit int) ([]*model.Playlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Playlist, 0)
	for _, p := range s.playlists {
		if p.OwnerId == owner {
			cp := *p
			out = append(out, &cp)
		}
	}
	newestFirst(out, func(p *model.Playlist) (int64, int64) { return p.CreatedAt.UnixNano(), p.ID })
	return window(out, offset, limit), nil
}

func (s *Store) CountVideosByPlaylists(ctx context.Context, ids []int64) (map[int64]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	out := make(map[int64]int64, len(ids))
	for k := range s.members {
		if _, ok := wanted[k.playlist]; ok {
			out[k.playlist]++
		}
	}
	return out, nil
}

func (s *Store) AddPlaylistVideo(ctx context.Context, entry *model.PlaylistVideo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := memberKey{entry.PlaylistId, entry.VideoId}
	if _, ok := s.members[key]; ok {
		return dal.ErrDuplicate
	}
	cp := *entry
	s.members[key] = &cp
	return nil
}

func (s *Store) RemovePlaylistVideo(ctx context.Context, playlistID, videoID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := memberKey{playlistID, videoID}
	if _, ok := s.members[key]; !ok {
		return 0, nil
	}
	delete(s.members, key)
	return 1, nil
}

func (s *Store) PlaylistVideoIDs(ctx context.Context, playlistID int64) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*model.PlaylistVideo, 0)
	for k, m := range s.members {
		if k.playlist == playlistID {
			entries = append(entries, m)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Position < entries[j].Position })
	ids := make([]int64, len(entries))
	for i, e := range entries {
		ids[i] = e.VideoId
	}
	return ids, nil
}

func (s *Store) RemoveVideoFromPlaylists(ctx context.Context, videoID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for k := range s.members {
		if k.video == videoID {
			delete(s.members, k)
			n++
		}
	}
	return n, nil
}
