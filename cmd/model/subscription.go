package model

import "time"

// Subscription is the subscriber -> channel edge.
type Subscription struct {
	ID           int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	SubscriberId int64     `gorm:"not null;uniqueIndex:idx_subscription_edge,priority:1" json:"subscriber"`
	ChannelId    int64     `gorm:"not null;uniqueIndex:idx_subscription_edge,priority:2;index" json:"channel"`
	CreatedAt    time.Time `gorm:"not null;index" json:"createdAt"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
