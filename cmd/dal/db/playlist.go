package db

import (
	"context"

	"vidtube.com/cmd/model"

	"gorm.io/gorm"
)

func (s *Store) CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	return wrap(s.db.WithContext(ctx).Create(playlist).Error, "CreatePlaylist failed")
}

func (s *Store) FindPlaylistByID(ctx context.Context, id int64) (*model.Playlist, error) {
	var playlist model.Playlist
	res := s.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&playlist)
	if res.Error != nil {
		return nil, wrap(res.Error, "FindPlaylistByID failed")
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &playlist, nil
}

func (s *Store) UpdatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	err := s.db.WithContext(ctx).Model(playlist).Select("name", "description", "updated_at").Updates(playlist).Error
	return wrap(err, "UpdatePlaylist failed")
}

func (s *Store) DeletePlaylist(ctx context.Context, id int64) (int64, error) {
	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.Playlist{})
		affected = res.RowsAffected
		return res.Error
	})
	return affected, wrap(err, "DeletePlaylist failed")
}

func (s *Store) ListPlaylistsByOwner(ctx context.Context, owner int64, offset, limit int) ([]*model.Playlist, error) {
	var playlists []*model.Playlist
	err := s.db.WithContext(ctx).Where("owner_id = ?", owner).
		Order("created_at DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&playlists).Error
	if err != nil {
		return nil, wrap(err, "ListPlaylistsByOwner failed")
	}
	return playlists, nil
}

func (s *Store) CountVideosByPlaylists(ctx context.Context, ids []int64) (map[int64]int64, error) {
	if len(ids) == 0 {
		return map[int64]int64{}, nil
	}
	var rows []countRow
	err := s.db.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Select("playlist_id AS id, COUNT(*) AS total").
		Where("playlist_id IN ?", ids).
		Group("playlist_id").
		Scan(&rows).Error
	if err != nil {
		return nil, wrap(err, "CountVideosByPlaylists failed")
	}
	return countMap(rows), nil
}

func (s *Store) AddPlaylistVideo(ctx context.Context, entry *model.PlaylistVideo) error {
	return wrap(s.db.WithContext(ctx).Create(entry).Error, "AddPlaylistVideo failed")
}

func (s *Store) RemovePlaylistVideo(ctx context.Context, playlistID, videoID int64) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistVideo{})
	return res.RowsAffected, wrap(res.Error, "RemovePlaylistVideo failed")
}

func (s *Store) PlaylistVideoIDs(ctx context.Context, playlistID int64) ([]int64, error) {
	ids := make([]int64, 0)
	err := s.db.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlistID).
		Order("position ASC").
		Pluck("video_id", &ids).Error
	if err != nil {
		return nil, wrap(err, "PlaylistVideoIDs failed")
	}
	return ids, nil
}

func (s *Store) RemoveVideoFromPlaylists(ctx context.Context, videoID int64) (int64, error) {
	res := s.db.WithContext(ctx).Where("video_id = ?", videoID).Delete(&model.PlaylistVideo{})
	return res.RowsAffected, wrap(res.Error, "RemoveVideoFromPlaylists failed")
}
