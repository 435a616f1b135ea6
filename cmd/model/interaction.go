package model

import (
	"time"

	"vidtube.com/pkg/errno"
)

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	VideoId   int64     `gorm:"not null;index" json:"video"`
	OwnerId   int64     `gorm:"not null;index" json:"owner"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Comment) TableName() string {
	return "comments"
}

func (c *Comment) OwnerID() int64 { return c.OwnerId }

// TargetKind names the entity a like points at.
type TargetKind string

const (
	TargetVideo   TargetKind = "video"
	TargetComment TargetKind = "comment"
	TargetPost    TargetKind = "post"
)

func (k TargetKind) Valid() bool {
	switch k {
	case TargetVideo, TargetComment, TargetPost:
		return true
	}
	return false
}

// Target is exactly one liked entity.
type Target struct {
	Kind TargetKind `gorm:"column:target_kind;size:16;not null;uniqueIndex:idx_like_edge,priority:2;index:idx_like_target,priority:1" json:"kind"`
	ID   int64      `gorm:"column:target_id;not null;uniqueIndex:idx_like_edge,priority:3;index:idx_like_target,priority:2" json:"id"`
}

// Like is an engagement edge. At most one row exists per (LikedBy, Target).
type Like struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	LikedBy   int64     `gorm:"not null;uniqueIndex:idx_like_edge,priority:1" json:"likedBy"`
	Target    Target    `gorm:"embedded" json:"target"`
	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}

// NewLike is the only constructor for a like edge.
func NewLike(id, actor int64, target Target) (*Like, error) {
	if !target.Kind.Valid() {
		return nil, errno.ParamErr.WithMessage("unknown like target kind " + string(target.Kind))
	}
	if target.ID <= 0 || actor <= 0 {
		return nil, errno.ParamErr.WithMessage("invalid like target")
	}
	return &Like{ID: id, LikedBy: actor, Target: target, CreatedAt: time.Now()}, nil
}
