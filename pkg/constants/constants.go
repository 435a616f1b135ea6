package constants

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	MaxCommentLength = 500
	MaxPostLength    = 1000

	IdentityKey = "uid"

	ServiceName = "vidtube"
	ApiPrefix   = "/api/v1"
)
