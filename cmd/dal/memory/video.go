package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
)

func (s *Store) CreateVideo(ctx context.Context, video *model.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.videos[video.ID]; ok {
		return dal.ErrDuplicate
	}
	if video.CreatedAt.IsZero() {
		video.CreatedAt = time.Now()
	}
	video.UpdatedAt = video.CreatedAt
	cp := *video
	s.videos[video.ID] = &cp
	return nil
}

func (s *Store) FindVideoByID(ctx context.Context, id int64) (*model.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.videos[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (s *Store) FindVideosByIDs(ctx context.Context, ids []int64) (map[int64]*model.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int64]*model.Video, len(ids))
	for _, id := range ids {
		if v, ok := s.videos[id]; ok {
			cp := *v
			out[id] = &cp
		}
	}
	return out, nil
}

func compareVideos(field dal.SortField, a, b *model.Video) int {
	switch field {
	case dal.SortViews:
		return compareInt(a.Views, b.Views)
	case dal.SortDuration:
		switch {
		case a.Duration < b.Duration:
			return -1
		case a.Duration > b.Duration:
			return 1
		}
		return 0
	case dal.SortTitle:
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	}
	return compareInt(a.CreatedAt.UnixNano(), b.CreatedAt.UnixNano())
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (s *Store) ListVideos(ctx context.Context, q dal.VideoQuery) ([]*model.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	text := strings.ToLower(q.Text)
	matched := make([]*model.Video, 0, len(s.videos))
	for _, v := range s.videos {
		if q.OwnerID > 0 && v.OwnerId != q.OwnerID {
			continue
		}
		if q.PublishedOnly && !v.IsPublished {
			continue
		}
		if text != "" &&
			!strings.Contains(strings.ToLower(v.Title), text) &&
			!strings.Contains(strings.ToLower(v.Description), text) {
			continue
		}
		cp := *v
		matched = append(matched, &cp)
	}
	sort.Slice(matched, func(i, j int) bool {
		c := compareVideos(q.SortBy, matched[i], matched[j])
		if c == 0 {
			c = compareInt(matched[i].ID, matched[j].ID)
		}
		if q.Desc {
			return c > 0
		}
		return c < 0
	})
	return window(matched, q.Offset, q.Limit), nil
}

func (s *Store) UpdateVideo(ctx context.Context, video *model.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.videos[video.ID]
	if !ok {
		return nil
	}
	v.Title = video.Title
	v.Description = video.Description
	v.Thumbnail = video.Thumbnail
	v.IsPublished = video.IsPublished
	v.UpdatedAt = time.Now()
	video.UpdatedAt = v.UpdatedAt
	return nil
}

func (s *Store) DeleteVideo(ctx context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.videos[id]; !ok {
		return 0, nil
	}
	delete(s.videos, id)
	return 1, nil
}

func (s *Store) IncrementViews(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.videos[id]; ok {
		v.Views++
	}
	return nil
}

func (s *Store) ChannelVideoTotals(ctx context.Context, owner int64) (int64, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var videos, views int64
	for _, v := range s.videos {
		if v.OwnerId == owner {
			videos++
			views += v.Views
		}
	}
	return videos, views, nil
}

func (s *Store) VideoIDsByOwner(ctx context.Context, owner int64) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0)
	for _, v := range s.videos {
		if v.OwnerId == owner {
			ids = append(ids, v.ID)
		}
	}
	return ids, nil
}
