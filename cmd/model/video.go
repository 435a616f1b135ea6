package model

import "time"

type Video struct {
	ID          int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	OwnerId     int64     `gorm:"not null;index" json:"owner"`
	VideoFile   string    `gorm:"not null;size:512" json:"videoFile"`
	Thumbnail   string    `gorm:"not null;size:512" json:"thumbnail"`
	Title       string    `gorm:"not null;size:255" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Duration    float64   `gorm:"not null;default:0" json:"duration"`
	Views       int64     `gorm:"not null;default:0" json:"views"`
	IsPublished bool      `gorm:"not null;default:true;index" json:"isPublished"`
	CreatedAt   time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Video) TableName() string {
	return "videos"
}

func (v *Video) OwnerID() int64 { return v.OwnerId }

// VisibleTo reports whether actor may see the video. Unpublished videos are
// visible to their owner only.
func (v *Video) VisibleTo(actor int64) bool {
	return v.IsPublished || v.OwnerId == actor
}

// VideoLite is the narrowed video embedded in playlists and liked lists.
type VideoLite struct {
	ID          int64     `json:"id"`
	VideoFile   string    `json:"videoFile"`
	Thumbnail   string    `json:"thumbnail"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"`
	Views       int64     `json:"views"`
	Owner       *UserLite `json:"owner,omitempty"`
}

func (v *Video) Lite(owner *UserLite) VideoLite {
	return VideoLite{
		ID:          v.ID,
		VideoFile:   v.VideoFile,
		Thumbnail:   v.Thumbnail,
		Title:       v.Title,
		Description: v.Description,
		Duration:    v.Duration,
		Views:       v.Views,
		Owner:       owner,
	}
}
