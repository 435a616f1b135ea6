package model

import "time"

type Playlist struct {
	ID          int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	OwnerId     int64     `gorm:"not null;index" json:"owner"`
	Name        string    `gorm:"not null;size:255" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Playlist) TableName() string {
	return "playlists"
}

func (p *Playlist) OwnerID() int64 { return p.OwnerId }

// PlaylistVideo keeps a playlist's videos in insertion order.
type PlaylistVideo struct {
	PlaylistId int64 `gorm:"primaryKey;autoIncrement:false;uniqueIndex:idx_playlist_video,priority:1" json:"playlist"`
	VideoId    int64 `gorm:"primaryKey;autoIncrement:false;uniqueIndex:idx_playlist_video,priority:2;index" json:"video"`
	Position   int64 `gorm:"not null" json:"position"`
}

func (PlaylistVideo) TableName() string {
	return "playlist_videos"
}
