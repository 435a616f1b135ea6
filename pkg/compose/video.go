package compose

import (
	"context"
	"strings"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/paging"
)

// VideoFilter is the listing request as received from a caller. SortBy and
// SortType use the public names (createdAt, views, duration, title; asc, desc).
type VideoFilter struct {
	Actor    int64
	OwnerID  int64
	Query    string
	SortBy   string
	SortType string
}

// ParseSort maps public sort names onto a column and direction. Unknown keys
// fall back to createdAt and unknown directions to descending.
func ParseSort(sortBy, sortType string) (dal.SortField, bool) {
	field := dal.SortCreatedAt
	switch sortBy {
	case "views":
		field = dal.SortViews
	case "duration":
		field = dal.SortDuration
	case "title":
		field = dal.SortTitle
	}
	return field, !strings.EqualFold(sortType, "asc")
}

// query turns a filter into a store query. Unpublished videos are only
// visible when the actor lists their own channel.
func (f VideoFilter) query(w paging.Window) dal.VideoQuery {
	field, desc := ParseSort(f.SortBy, f.SortType)
	return dal.VideoQuery{
		OwnerID:       f.OwnerID,
		Text:          strings.TrimSpace(f.Query),
		PublishedOnly: f.OwnerID <= 0 || f.OwnerID != f.Actor,
		SortBy:        field,
		Desc:          desc,
		Offset:        w.Offset(),
		Limit:         w.Limit,
	}
}

func (c *Composer) VideoCards(ctx context.Context, f VideoFilter, w paging.Window) (paging.Page[model.VideoCard], error) {
	videos, err := c.store.ListVideos(ctx, f.query(w))
	if err != nil {
		return paging.Page[model.VideoCard]{}, err
	}
	cards, err := c.cards(ctx, videos)
	if err != nil {
		return paging.Page[model.VideoCard]{}, err
	}
	return paging.NewPage(w, cards), nil
}

func (c *Composer) cards(ctx context.Context, videos []*model.Video) ([]model.VideoCard, error) {
	ids := make([]int64, len(videos))
	ownerIDs := make([]int64, len(videos))
	for i, v := range videos {
		ids[i] = v.ID
		ownerIDs[i] = v.OwnerId
	}
	users, err := c.owners(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}
	likes, err := c.likes.CountLikesByTargets(ctx, model.TargetVideo, ids)
	if err != nil {
		return nil, err
	}
	comments, err := c.store.CountCommentsByVideos(ctx, ids)
	if err != nil {
		return nil, err
	}
	cards := make([]model.VideoCard, len(videos))
	for i, v := range videos {
		cards[i] = model.VideoCard{
			ID:          v.ID,
			VideoFile:   v.VideoFile,
			Thumbnail:   v.Thumbnail,
			Title:       v.Title,
			Description: v.Description,
			Duration:    v.Duration,
			Views:       v.Views,
			IsPublished: v.IsPublished,
			CreatedAt:   v.CreatedAt,
			Owner:       ownerLite(users, v.OwnerId),
			Likes:       likes[v.ID],
			Comments:    comments[v.ID],
		}
	}
	return cards, nil
}

// VideoDetail records one view and returns the video with its owner, counts
// and whether actor liked it. Unpublished videos are visible to their owner only.
func (c *Composer) VideoDetail(ctx context.Context, actor, id int64) (*model.VideoDetail, error) {
	video, err := c.store.FindVideoByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if video == nil || !video.VisibleTo(actor) {
		return nil, errno.NotFoundErr.WithMessage("video does not exist")
	}
	if err = c.store.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	if video, err = c.store.FindVideoByID(ctx, id); err != nil {
		return nil, err
	}
	if video == nil {
		return nil, errno.NotFoundErr.WithMessage("video does not exist")
	}
	cards, err := c.cards(ctx, []*model.Video{video})
	if err != nil {
		return nil, err
	}
	liked, err := c.store.LikedByActor(ctx, actor, model.TargetVideo, []int64{id})
	if err != nil {
		return nil, err
	}
	return &model.VideoDetail{VideoCard: cards[0], IsLiked: liked[id]}, nil
}

// LikedVideos replaces each of actor's video likes with the liked video,
// newest like first. Likes whose video no longer exists or is hidden from
// actor are skipped.
func (c *Composer) LikedVideos(ctx context.Context, actor int64, w paging.Window) (paging.Page[model.VideoLite], error) {
	likes, err := c.store.ListLikesByActor(ctx, actor, model.TargetVideo, w.Offset(), w.Limit)
	if err != nil {
		return paging.Page[model.VideoLite]{}, err
	}
	ids := make([]int64, len(likes))
	for i, l := range likes {
		ids[i] = l.Target.ID
	}
	items, err := c.videoLites(ctx, actor, ids)
	if err != nil {
		return paging.Page[model.VideoLite]{}, err
	}
	return paging.NewPage(w, items), nil
}

// videoLites narrows the videos viewer may see, in the given order, each with
// its owner.
func (c *Composer) videoLites(ctx context.Context, viewer int64, ids []int64) ([]model.VideoLite, error) {
	videos, err := c.store.FindVideosByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	ownerIDs := make([]int64, 0, len(videos))
	for _, v := range videos {
		ownerIDs = append(ownerIDs, v.OwnerId)
	}
	users, err := c.owners(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}
	items := make([]model.VideoLite, 0, len(ids))
	for _, id := range ids {
		v, ok := videos[id]
		if !ok || !v.VisibleTo(viewer) {
			continue
		}
		items = append(items, v.Lite(ownerLite(users, v.OwnerId)))
	}
	return items, nil
}
