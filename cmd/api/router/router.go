package router

import (
	"vidtube.com/cmd/api/handlers"
	"vidtube.com/cmd/api/router/authfunc"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/middleware"

	"github.com/cloudwego/hertz/pkg/route"
)

// Register mounts every route under constants.ApiPrefix.
func Register(r *route.Engine, h *handlers.Handlers, auth *authfunc.Resolver) {
	api := r.Group(constants.ApiPrefix)
	required := auth.Required()
	optional := auth.Optional()
	flow := middleware.FlowControl(middleware.ToggleResource)

	api.GET("/healthcheck", handlers.HealthCheck)

	users := api.Group("/users")
	users.POST("/register", h.Register)
	users.GET("/c/:username", optional, h.ChannelProfile)

	videos := api.Group("/videos")
	videos.GET("", optional, h.ListVideos)
	videos.POST("", required, h.PublishVideo)
	videos.GET("/:videoId", optional, h.GetVideo)
	videos.PATCH("/:videoId", required, h.UpdateVideo)
	videos.DELETE("/:videoId", required, h.DeleteVideo)
	videos.PATCH("/toggle/publish/:videoId", required, h.TogglePublishStatus)

	comments := api.Group("/comments")
	comments.GET("/:videoId", h.ListComments)
	comments.POST("/:videoId", required, h.AddComment)
	comments.PATCH("/c/:commentId", required, h.UpdateComment)
	comments.DELETE("/c/:commentId", required, h.DeleteComment)

	likes := api.Group("/likes", required)
	likes.POST("/toggle/v/:videoId", flow, h.ToggleVideoLike())
	likes.POST("/toggle/c/:commentId", flow, h.ToggleCommentLike())
	likes.POST("/toggle/t/:tweetId", flow, h.TogglePostLike())
	likes.GET("/videos", h.LikedVideos)

	subscriptions := api.Group("/subscriptions")
	subscriptions.POST("/c/:channelId", required, flow, h.ToggleSubscription)
	subscriptions.GET("/c/:channelId", h.ChannelSubscribers)
	subscriptions.GET("/u/:subscriberId", h.SubscribedChannels)

	playlists := api.Group("/playlist")
	playlists.POST("", required, h.CreatePlaylist)
	playlists.GET("/user/:userId", h.UserPlaylists)
	playlists.GET("/:playlistId", optional, h.GetPlaylist)
	playlists.PATCH("/:playlistId", required, h.UpdatePlaylist)
	playlists.DELETE("/:playlistId", required, h.DeletePlaylist)
	playlists.PATCH("/add/:videoId/:playlistId", required, h.AddPlaylistVideo)
	playlists.PATCH("/remove/:videoId/:playlistId", required, h.RemovePlaylistVideo)

	tweets := api.Group("/tweets")
	tweets.POST("", required, h.CreatePost)
	tweets.GET("/user/:userId", h.UserPosts)
	tweets.PATCH("/:tweetId", required, h.UpdatePost)
	tweets.DELETE("/:tweetId", required, h.DeletePost)

	dashboard := api.Group("/dashboard", required)
	dashboard.GET("/stats", h.ChannelStats)
	dashboard.GET("/videos", h.ChannelVideos)
}
