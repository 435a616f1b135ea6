package mq

const (
	EngagementEventExchange = "engagement_events"
	EngagementEventQueue    = "engagement_event_queue"
)

// EngagementEvent is published after every like or subscription toggle.
type EngagementEvent struct {
	EventID   string `json:"event_id"`
	Kind      string `json:"kind"` // video, comment, post or channel
	ActorID   int64  `json:"actor_id"`
	TargetID  int64  `json:"target_id"`
	Active    bool   `json:"active"`
	Timestamp int64  `json:"timestamp"`
}
