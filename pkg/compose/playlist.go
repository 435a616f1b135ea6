package compose

import (
	"context"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/paging"
)

func (c *Composer) PlaylistSummaries(ctx context.Context, owner int64, w paging.Window) (paging.Page[model.PlaylistSummary], error) {
	playlists, err := c.store.ListPlaylistsByOwner(ctx, owner, w.Offset(), w.Limit)
	if err != nil {
		return paging.Page[model.PlaylistSummary]{}, err
	}
	ids := make([]int64, len(playlists))
	for i, p := range playlists {
		ids[i] = p.ID
	}
	counts, err := c.store.CountVideosByPlaylists(ctx, ids)
	if err != nil {
		return paging.Page[model.PlaylistSummary]{}, err
	}
	items := make([]model.PlaylistSummary, len(playlists))
	for i, p := range playlists {
		items[i] = model.PlaylistSummary{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			VideoCount:  counts[p.ID],
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		}
	}
	return paging.NewPage(w, items), nil
}

// PlaylistDetail returns the playlist with its owner and its videos in
// playlist order, each video with its own owner. Videos hidden from viewer
// are left out.
func (c *Composer) PlaylistDetail(ctx context.Context, viewer, id int64) (*model.PlaylistDetail, error) {
	playlist, err := c.store.FindPlaylistByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if playlist == nil {
		return nil, errno.NotFoundErr.WithMessage("playlist does not exist")
	}
	users, err := c.owners(ctx, []int64{playlist.OwnerId})
	if err != nil {
		return nil, err
	}
	videoIDs, err := c.store.PlaylistVideoIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	videos, err := c.videoLites(ctx, viewer, videoIDs)
	if err != nil {
		return nil, err
	}
	return &model.PlaylistDetail{
		ID:          playlist.ID,
		Name:        playlist.Name,
		Description: playlist.Description,
		CreatedAt:   playlist.CreatedAt,
		UpdatedAt:   playlist.UpdatedAt,
		Owner:       ownerLite(users, playlist.OwnerId),
		Videos:      videos,
	}, nil
}
