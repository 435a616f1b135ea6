package compose

import (
	"context"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/paging"
)

// Comments lists a video's comments newest first with owner and like count.
func (c *Composer) Comments(ctx context.Context, videoID int64, w paging.Window) (paging.Page[model.CommentView], error) {
	video, err := c.store.FindVideoByID(ctx, videoID)
	if err != nil {
		return paging.Page[model.CommentView]{}, err
	}
	if video == nil {
		return paging.Page[model.CommentView]{}, errno.NotFoundErr.WithMessage("video does not exist")
	}
	comments, err := c.store.ListCommentsByVideo(ctx, videoID, w.Offset(), w.Limit)
	if err != nil {
		return paging.Page[model.CommentView]{}, err
	}
	ids := make([]int64, len(comments))
	ownerIDs := make([]int64, len(comments))
	for i, cm := range comments {
		ids[i] = cm.ID
		ownerIDs[i] = cm.OwnerId
	}
	users, err := c.owners(ctx, ownerIDs)
	if err != nil {
		return paging.Page[model.CommentView]{}, err
	}
	likes, err := c.likes.CountLikesByTargets(ctx, model.TargetComment, ids)
	if err != nil {
		return paging.Page[model.CommentView]{}, err
	}
	items := make([]model.CommentView, len(comments))
	for i, cm := range comments {
		items[i] = model.CommentView{
			ID:        cm.ID,
			VideoId:   cm.VideoId,
			Content:   cm.Content,
			CreatedAt: cm.CreatedAt,
			Owner:     ownerLite(users, cm.OwnerId),
			Likes:     likes[cm.ID],
		}
	}
	return paging.NewPage(w, items), nil
}

// Posts lists a user's posts newest first with owner and like count.
func (c *Composer) Posts(ctx context.Context, owner int64, w paging.Window) (paging.Page[model.PostView], error) {
	posts, err := c.store.ListPostsByOwner(ctx, owner, w.Offset(), w.Limit)
	if err != nil {
		return paging.Page[model.PostView]{}, err
	}
	ids := make([]int64, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	users, err := c.owners(ctx, []int64{owner})
	if err != nil {
		return paging.Page[model.PostView]{}, err
	}
	likes, err := c.likes.CountLikesByTargets(ctx, model.TargetPost, ids)
	if err != nil {
		return paging.Page[model.PostView]{}, err
	}
	items := make([]model.PostView, len(posts))
	for i, p := range posts {
		items[i] = model.PostView{
			ID:        p.ID,
			Content:   p.Content,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
			Owner:     ownerLite(users, p.OwnerId),
			Likes:     likes[p.ID],
		}
	}
	return paging.NewPage(w, items), nil
}
