package model

import "time"

// User is an account and, at the same time, the channel it publishes on.
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Username     string    `gorm:"not null;size:64;uniqueIndex" json:"username"`
	FullName     string    `gorm:"not null;size:128" json:"fullName"`
	Email        string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Avatar       string    `gorm:"size:512" json:"avatar"`
	CoverImage   string    `gorm:"size:512" json:"coverImage"`
	PasswordHash string    `gorm:"not null;size:255" json:"-"`
	CreatedAt    time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// UserLite is the narrowed user embedded in every composed view.
type UserLite struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Avatar   string `json:"avatar"`
}

func (u *User) Lite() *UserLite {
	if u == nil {
		return nil
	}
	return &UserLite{ID: u.ID, Username: u.Username, FullName: u.FullName, Avatar: u.Avatar}
}
