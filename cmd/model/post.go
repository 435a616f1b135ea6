package model

import "time"

// Post is a short text update on a channel.
type Post struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	OwnerId   int64     `gorm:"not null;index" json:"owner"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Post) TableName() string {
	return "posts"
}

func (p *Post) OwnerID() int64 { return p.OwnerId }
