package db

import (
	"context"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"

	"gorm.io/gorm"
)

func (s *Store) CreateVideo(ctx context.Context, video *model.Video) error {
	return wrap(s.db.WithContext(ctx).Create(video).Error, "CreateVideo failed")
}

func (s *Store) FindVideoByID(ctx context.Context, id int64) (*model.Video, error) {
	var video model.Video
	res := s.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&video)
	if res.Error != nil {
		return nil, wrap(res.Error, "FindVideoByID failed")
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &video, nil
}

func (s *Store) FindVideosByIDs(ctx context.Context, ids []int64) (map[int64]*model.Video, error) {
	out := make(map[int64]*model.Video, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var videos []*model.Video
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&videos).Error; err != nil {
		return nil, wrap(err, "FindVideosByIDs failed")
	}
	for _, v := range videos {
		out[v.ID] = v
	}
	return out, nil
}

func sortColumn(f dal.SortField) string {
	switch f {
	case dal.SortViews, dal.SortDuration, dal.SortTitle:
		return string(f)
	}
	return string(dal.SortCreatedAt)
}

func (s *Store) ListVideos(ctx context.Context, q dal.VideoQuery) ([]*model.Video, error) {
	tx := s.db.WithContext(ctx).Model(&model.Video{})
	if q.OwnerID > 0 {
		tx = tx.Where("owner_id = ?", q.OwnerID)
	}
	if q.PublishedOnly {
		tx = tx.Where("is_published = ?", true)
	}
	if q.Text != "" {
		pattern := containsPattern(q.Text)
		tx = tx.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", pattern, pattern)
	}
	dir := " ASC"
	if q.Desc {
		dir = " DESC"
	}
	var videos []*model.Video
	err := tx.Order(sortColumn(q.SortBy) + dir).Order("id" + dir).
		Offset(q.Offset).Limit(q.Limit).
		Find(&videos).Error
	if err != nil {
		return nil, wrap(err, "ListVideos failed")
	}
	return videos, nil
}

func (s *Store) UpdateVideo(ctx context.Context, video *model.Video) error {
	err := s.db.WithContext(ctx).Model(video).
		Select("title", "description", "thumbnail", "is_published", "updated_at").
		Updates(video).Error
	return wrap(err, "UpdateVideo failed")
}

func (s *Store) DeleteVideo(ctx context.Context, id int64) (int64, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Video{})
	return res.RowsAffected, wrap(res.Error, "DeleteVideo failed")
}

func (s *Store) IncrementViews(ctx context.Context, id int64) error {
	err := s.db.WithContext(ctx).Model(&model.Video{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
	return wrap(err, "IncrementViews failed")
}

func (s *Store) ChannelVideoTotals(ctx context.Context, owner int64) (int64, int64, error) {
	var row struct {
		Videos int64
		Views  int64
	}
	err := s.db.WithContext(ctx).Model(&model.Video{}).
		Select("COUNT(*) AS videos, COALESCE(SUM(views), 0) AS views").
		Where("owner_id = ?", owner).
		Scan(&row).Error
	if err != nil {
		return 0, 0, wrap(err, "ChannelVideoTotals failed")
	}
	return row.Videos, row.Views, nil
}

func (s *Store) VideoIDsByOwner(ctx context.Context, owner int64) ([]int64, error) {
	ids := make([]int64, 0)
	if err := s.db.WithContext(ctx).Model(&model.Video{}).Where("owner_id = ?", owner).Pluck("id", &ids).Error; err != nil {
		return nil, wrap(err, "VideoIDsByOwner failed")
	}
	return ids, nil
}
