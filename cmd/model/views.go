package model

import "time"

// VideoCard is one row of a video listing.
type VideoCard struct {
	ID          int64     `json:"id"`
	VideoFile   string    `json:"videoFile"`
	Thumbnail   string    `json:"thumbnail"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"`
	Views       int64     `json:"views"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	Owner       *UserLite `json:"owner"`
	Likes       int64     `json:"likes"`
	Comments    int64     `json:"comments"`
}

type VideoDetail struct {
	VideoCard
	IsLiked bool `json:"isLiked"`
}

type CommentView struct {
	ID        int64     `json:"id"`
	VideoId   int64     `json:"video"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Owner     *UserLite `json:"owner"`
	Likes     int64     `json:"likes"`
}

type PostView struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Owner     *UserLite `json:"owner"`
	Likes     int64     `json:"likes"`
}

type PlaylistSummary struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	VideoCount  int64     `json:"videoCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type PlaylistDetail struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	Owner       *UserLite   `json:"owner"`
	Videos      []VideoLite `json:"videos"`
}

type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalViews       int64 `json:"totalViews"`
	TotalLikes       int64 `json:"totalLikes"`
	TotalComments    int64 `json:"totalComments"`
	TotalSubscribers int64 `json:"totalSubscribers"`
}

type ChannelProfile struct {
	UserLite
	CoverImage        string `json:"coverImage"`
	SubscribersCount  int64  `json:"subscribersCount"`
	SubscribedToCount int64  `json:"channelsSubscribedToCount"`
	IsSubscribed      bool   `json:"isSubscribed"`
}
