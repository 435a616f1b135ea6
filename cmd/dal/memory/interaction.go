package memory

import (
	"context"
	"time"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
)

func (s *Store) CreateComment(ctx context.Context, comment *model.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[comment.ID]; ok {
		return dal.ErrDuplicate
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	comment.UpdatedAt = comment.CreatedAt
	cp := *comment
	s.comments[comment.ID] = &cp
	return nil
}

func (s *Store) FindCommentByID(ctx context.Context, id int64) (*model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.comments[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (s *Store) UpdateComment(ctx context.Context, comment *model.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.comments[comment.ID]; ok {
		c.Content = comment.Content
		c.UpdatedAt = time.Now()
		comment.UpdatedAt = c.UpdatedAt
	}
	return nil
}

func (s *Store) DeleteComment(ctx context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[id]; !ok {
		return 0, nil
	}
	delete(s.comments, id)
	return 1, nil
}

func (s *Store) ListCommentsByVideo(ctx context.Context, videoID int64, offset, limit int) ([]*model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Comment, 0)
	for _, c := range s.comments {
		if c.VideoId == videoID {
			cp := *c
			out = append(out, &cp)
		}
	}
	newestFirst(out, func(c *model.Comment) (int64, int64) { return c.CreatedAt.UnixNano(), c.ID })
	return window(out, offset, limit), nil
}

func (s *Store) CountCommentsByVideos(ctx context.Context, videoIDs []int64) (map[int64]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[int64]struct{}, len(videoIDs))
	for _, id := range videoIDs {
		wanted[id] = struct{}{}
	}
	out := make(map[int64]int64, len(videoIDs))
	for _, c := range s.comments {
		if _, ok := wanted[c.VideoId]; ok {
			out[c.VideoId]++
		}
	}
	return out, nil
}

func (s *Store) CommentIDsByVideo(ctx context.Context, videoID int64) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0)
	for _, c := range s.comments {
		if c.VideoId == videoID {
			ids = append(ids, c.ID)
		}
	}
	return ids, nil
}

func (s *Store) DeleteCommentsByVideo(ctx context.Context, videoID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, c := range s.comments {
		if c.VideoId == videoID {
			delete(s.comments, id)
			n++
		}
	}
	return n, nil
}

func (s *Store) FindLike(ctx context.Context, actor int64, target model.Target) (*model.Like, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.likes[likeKey{actor, target}]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (s *Store) CreateLike(ctx context.Context, like *model.Like) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := likeKey{like.LikedBy, like.Target}
	if _, ok := s.likes[key]; ok {
		return dal.ErrDuplicate
	}
	if like.CreatedAt.IsZero() {
		like.CreatedAt = time.Now()
	}
	cp := *like
	s.likes[key] = &cp
	return nil
}

func (s *Store) DeleteLike(ctx context.Context, actor int64, target model.Target) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := likeKey{actor, target}
	if _, ok := s.likes[key]; !ok {
		return 0, nil
	}
	delete(s.likes, key)
	return 1, nil
}

func (s *Store) CountLikesByTargets(ctx context.Context, kind model.TargetKind, ids []int64) (map[int64]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	out := make(map[int64]int64, len(ids))
	for k := range s.likes {
		if k.target.Kind != kind {
			continue
		}
		if _, ok := wanted[k.target.ID]; ok {
			out[k.target.ID]++
		}
	}
	return out, nil
}

func (s *Store) LikedByActor(ctx context.Context, actor int64, kind model.TargetKind, ids []int64) (map[int64]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if _, ok := s.likes[likeKey{actor, model.Target{Kind: kind, ID: id}}]; ok {
			out[id] = true
		}
	}
	return out, nil
}

func (s *Store) ListLikesByActor(ctx context.Context, actor int64, kind model.TargetKind, offset, limit int) ([]*model.Like, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Like, 0)
	for k, l := range s.likes {
		if k.actor == actor && k.target.Kind == kind {
			cp := *l
			out = append(out, &cp)
		}
	}
	newestFirst(out, func(l *model.Like) (int64, int64) { return l.CreatedAt.UnixNano(), l.ID })
	return window(out, offset, limit), nil
}

func (s *Store) DeleteLikesByTargets(ctx context.Context, kind model.TargetKind, ids []int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	var n int64
	for k := range s.likes {
		if k.target.Kind != kind {
			continue
		}
		if _, ok := wanted[k.target.ID]; ok {
			delete(s.likes, k)
			n++
		}
	}
	return n, nil
}
