package service

import (
	"context"
	"strings"
	"time"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/compose"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/guard"
	"vidtube.com/pkg/paging"
	"vidtube.com/pkg/utils"

	"github.com/pkg/errors"
)

type PlaylistService struct {
	ctx      context.Context
	store    dal.Store
	composer *compose.Composer
	// position hands out increasing membership positions.
	position func() int64
}

func NewPlaylistService(ctx context.Context, store dal.Store, composer *compose.Composer) *PlaylistService {
	return &PlaylistService{ctx: ctx, store: store, composer: composer, position: utils.GenerateID}
}

func (s *PlaylistService) CreatePlaylist(actor int64, name, description string) (*model.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errno.ParamErr.WithMessage("playlist name is required")
	}
	playlist := &model.Playlist{
		ID:          utils.GenerateID(),
		OwnerId:     actor,
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   time.Now(),
	}
	if err := s.store.CreatePlaylist(s.ctx, playlist); err != nil {
		return nil, errors.WithMessage(err, "dal.CreatePlaylist failed")
	}
	return playlist, nil
}

func (s *PlaylistService) ListUserPlaylists(userID int64, w paging.Window) (paging.Page[model.PlaylistSummary], error) {
	if userID <= 0 {
		return paging.Page[model.PlaylistSummary]{}, errno.ParamErr.WithMessage("invalid user id")
	}
	return s.composer.PlaylistSummaries(s.ctx, userID, w)
}

func (s *PlaylistService) GetPlaylist(actor, id int64) (*model.PlaylistDetail, error) {
	if id <= 0 {
		return nil, errno.ParamErr.WithMessage("invalid playlist id")
	}
	return s.composer.PlaylistDetail(s.ctx, actor, id)
}

func (s *PlaylistService) owned(actor, id int64) (*model.Playlist, error) {
	playlist, err := s.store.FindPlaylistByID(s.ctx, id)
	if err != nil {
		return nil, errors.WithMessage(err, "dal.FindPlaylistByID failed")
	}
	if playlist == nil {
		return nil, errno.NotFoundErr.WithMessage("playlist does not exist")
	}
	if err = guard.AssertOwner(actor, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// AddVideo appends a video to the end of the playlist.
func (s *PlaylistService) AddVideo(actor, playlistID, videoID int64) (*model.PlaylistDetail, error) {
	playlist, err := s.owned(actor, playlistID)
	if err != nil {
		return nil, err
	}
	video, err := s.store.FindVideoByID(s.ctx, videoID)
	if err != nil {
		return nil, errors.WithMessage(err, "dal.FindVideoByID failed")
	}
	if video == nil || !video.VisibleTo(actor) {
		return nil, errno.NotFoundErr.WithMessage("video does not exist")
	}
	err = s.store.AddPlaylistVideo(s.ctx, &model.PlaylistVideo{
		PlaylistId: playlist.ID,
		VideoId:    video.ID,
		Position:   s.position(),
	})
	if errors.Is(err, dal.ErrDuplicate) {
		return nil, errno.RequestErr.WithMessage("video is already in the playlist")
	}
	if err != nil {
		return nil, errors.WithMessage(err, "dal.AddPlaylistVideo failed")
	}
	return s.composer.PlaylistDetail(s.ctx, actor, playlist.ID)
}

func (s *PlaylistService) RemoveVideo(actor, playlistID, videoID int64) (*model.PlaylistDetail, error) {
	playlist, err := s.owned(actor, playlistID)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.RemovePlaylistVideo(s.ctx, playlist.ID, videoID)
	if err != nil {
		return nil, errors.WithMessage(err, "dal.RemovePlaylistVideo failed")
	}
	if rows == 0 {
		return nil, errno.NotFoundErr.WithMessage("video is not in the playlist")
	}
	return s.composer.PlaylistDetail(s.ctx, actor, playlist.ID)
}

// UpdatePlaylist leaves a field untouched when it is empty.
func (s *PlaylistService) UpdatePlaylist(actor, id int64, name, description string) (*model.Playlist, error) {
	name, description = strings.TrimSpace(name), strings.TrimSpace(description)
	if name == "" && description == "" {
		return nil, errno.ParamErr.WithMessage("nothing to update")
	}
	playlist, err := s.owned(actor, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		playlist.Name = name
	}
	if description != "" {
		playlist.Description = description
	}
	if err = s.store.UpdatePlaylist(s.ctx, playlist); err != nil {
		return nil, errors.WithMessage(err, "dal.UpdatePlaylist failed")
	}
	return playlist, nil
}

func (s *PlaylistService) DeletePlaylist(actor, id int64) error {
	playlist, err := s.owned(actor, id)
	if err != nil {
		return err
	}
	rows, err := s.store.DeletePlaylist(s.ctx, playlist.ID)
	if err != nil {
		return errors.WithMessage(err, "dal.DeletePlaylist failed")
	}
	if rows == 0 {
		return errno.NotFoundErr.WithMessage("playlist does not exist")
	}
	return nil
}
