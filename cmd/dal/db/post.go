package db

import (
	"context"

	"vidtube.com/cmd/model"
)

func (s *Store) CreatePost(ctx context.Context, post *model.Post) error {
	return wrap(s.db.WithContext(ctx).Create(post).Error, "CreatePost failed")
}

func (s *Store) FindPostByID(ctx context.Context, id int64) (*model.Post, error) {
	var post model.Post
	res := s.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&post)
	if res.Error != nil {
		return nil, wrap(res.Error, "FindPostByID failed")
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &post, nil
}

func (s *Store) UpdatePost(ctx context.Context, post *model.Post) error {
	err := s.db.WithContext(ctx).Model(post).Select("content", "updated_at").Updates(post).Error
	return wrap(err, "UpdatePost failed")
}

func (s *Store) DeletePost(ctx context.Context, id int64) (int64, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{})
	return res.RowsAffected, wrap(res.Error, "DeletePost failed")
}

func (s *Store) ListPostsByOwner(ctx context.Context, owner int64, offset, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).Where("owner_id = ?", owner).
		Order("created_at DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, wrap(err, "ListPostsByOwner failed")
	}
	return posts, nil
}
