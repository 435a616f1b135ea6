package db

import (
	"context"

	"vidtube.com/cmd/model"
)

func (s *Store) CreateComment(ctx context.Context, comment *model.Comment) error {
	return wrap(s.db.WithContext(ctx).Create(comment).Error, "CreateComment failed")
}

func (s *Store) FindCommentByID(ctx context.Context, id int64) (*model.Comment, error) {
	var comment model.Comment
	res := s.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&comment)
	if res.Error != nil {
		return nil, wrap(res.Error, "FindCommentByID failed")
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &comment, nil
}

func (s *Store) UpdateComment(ctx context.Context, comment *model.Comment) error {
	err := s.db.WithContext(ctx).Model(comment).Select("content", "updated_at").Updates(comment).Error
	return wrap(err, "UpdateComment failed")
}

func (s *Store) DeleteComment(ctx context.Context, id int64) (int64, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Comment{})
	return res.RowsAffected, wrap(res.Error, "DeleteComment failed")
}

func (s *Store) ListCommentsByVideo(ctx context.Context, videoID int64, offset, limit int) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).Where("video_id = ?", videoID).
		Order("created_at DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, wrap(err, "ListCommentsByVideo failed")
	}
	return comments, nil
}

func (s *Store) CountCommentsByVideos(ctx context.Context, videoIDs []int64) (map[int64]int64, error) {
	if len(videoIDs) == 0 {
		return map[int64]int64{}, nil
	}
	var rows []countRow
	err := s.db.WithContext(ctx).Model(&model.Comment{}).
		Select("video_id AS id, COUNT(*) AS total").
		Where("video_id IN ?", videoIDs).
		Group("video_id").
		Scan(&rows).Error
	if err != nil {
		return nil, wrap(err, "CountCommentsByVideos failed")
	}
	return countMap(rows), nil
}

func (s *Store) CommentIDsByVideo(ctx context.Context, videoID int64) ([]int64, error) {
	ids := make([]int64, 0)
	if err := s.db.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoID).Pluck("id", &ids).Error; err != nil {
		return nil, wrap(err, "CommentIDsByVideo failed")
	}
	return ids, nil
}

func (s *Store) DeleteCommentsByVideo(ctx context.Context, videoID int64) (int64, error) {
	res := s.db.WithContext(ctx).Where("video_id = ?", videoID).Delete(&model.Comment{})
	return res.RowsAffected, wrap(res.Error, "DeleteCommentsByVideo failed")
}

func (s *Store) FindLike(ctx context.Context, actor int64, target model.Target) (*model.Like, error) {
	var like model.Like
	res := s.db.WithContext(ctx).
		Where("liked_by = ? AND target_kind = ? AND target_id = ?", actor, target.Kind, target.ID).
		Limit(1).Find(&like)
	if res.Error != nil {
		return nil, wrap(res.Error, "FindLike failed")
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &like, nil
}

func (s *Store) CreateLike(ctx context.Context, like *model.Like) error {
	return wrap(s.db.WithContext(ctx).Create(like).Error, "CreateLike failed")
}

func (s *Store) DeleteLike(ctx context.Context, actor int64, target model.Target) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("liked_by = ? AND target_kind = ? AND target_id = ?", actor, target.Kind, target.ID).
		Delete(&model.Like{})
	return res.RowsAffected, wrap(res.Error, "DeleteLike failed")
}

func (s *Store) CountLikesByTargets(ctx context.Context, kind model.TargetKind, ids []int64) (map[int64]int64, error) {
	if len(ids) == 0 {
		return map[int64]int64{}, nil
	}
	var rows []countRow
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Select("target_id AS id, COUNT(*) AS total").
		Where("target_kind = ? AND target_id IN ?", kind, ids).
		Group("target_id").
		Scan(&rows).Error
	if err != nil {
		return nil, wrap(err, "CountLikesByTargets failed")
	}
	return countMap(rows), nil
}

func (s *Store) LikedByActor(ctx context.Context, actor int64, kind model.TargetKind, ids []int64) (map[int64]bool, error) {
	out := make(map[int64]bool, len(ids))
	if len(ids) == 0 || actor <= 0 {
		return out, nil
	}
	liked := make([]int64, 0)
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("liked_by = ? AND target_kind = ? AND target_id IN ?", actor, kind, ids).
		Pluck("target_id", &liked).Error
	if err != nil {
		return nil, wrap(err, "LikedByActor failed")
	}
	for _, id := range liked {
		out[id] = true
	}
	return out, nil
}

func (s *Store) ListLikesByActor(ctx context.Context, actor int64, kind model.TargetKind, offset, limit int) ([]*model.Like, error) {
	var likes []*model.Like
	err := s.db.WithContext(ctx).
		Where("liked_by = ? AND target_kind = ?", actor, kind).
		Order("created_at DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&likes).Error
	if err != nil {
		return nil, wrap(err, "ListLikesByActor failed")
	}
	return likes, nil
}

func (s *Store) DeleteLikesByTargets(ctx context.Context, kind model.TargetKind, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := s.db.WithContext(ctx).Where("target_kind = ? AND target_id IN ?", kind, ids).Delete(&model.Like{})
	return res.RowsAffected, wrap(res.Error, "DeleteLikesByTargets failed")
}
