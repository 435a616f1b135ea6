package memory

import (
	"context"
	"time"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
)

func (s *Store) CreatePost(ctx context.Context, post *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[post.ID]; ok {
		return dal.ErrDuplicate
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	post.UpdatedAt = post.CreatedAt
	cp := *post
	s.posts[post.ID] = &cp
	return nil
}

func (s *Store) FindPostByID(ctx context.Context, id int64) (*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *Store) UpdatePost(ctx context.Context, post *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.posts[post.ID]; ok {
		p.Content = post.Content
		p.UpdatedAt = time.Now()
		post.UpdatedAt = p.UpdatedAt
	}
	return nil
}

func (s *Store) DeletePost(ctx context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return 0, nil
	}
	delete(s.posts, id)
	return 1, nil
}

func (s *Store) ListPostsByOwner(ctx context.Context, owner int64, offset, limit int) ([]*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Post, 0)
	for _, p := range s.posts {
		if p.OwnerId == owner {
			cp := *p
			out = append(out, &cp)
		}
	}
	newestFirst(out, func(p *model.Post) (int64, int64) { return p.CreatedAt.UnixNano(), p.ID })
	return window(out, offset, limit), nil
}
