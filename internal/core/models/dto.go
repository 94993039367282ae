package models

import "time"

type ConnectionDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	QueueManager string `json:"queue_manager"`
	Host         string `json:"host"`
	Port         int    `json:"port"`
	Channel      string `json:"channel"`
	User         string `json:"user,omitempty"`

	// State is the lifecycle snapshot at mapping time:
	// "disconnected", "connecting", "connected", "disconnecting" or "error".
	State          string    `json:"state"`
	StateError     string    `json:"state_error,omitempty"`
	StateChangedAt time.Time `json:"state_changed_at"`
}

type QueueDTO struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	CurrentDepth int32  `json:"current_depth"`
	MaxDepth     int32  `json:"max_depth"`

	// DepthPercent is CurrentDepth/MaxDepth; DepthKnown is false when the
	// queue has no usable max depth and the ratio is meaningless.
	DepthPercent float64 `json:"depth_percent"`
	DepthKnown   bool    `json:"depth_known"`
	DepthStatus  string  `json:"depth_status"`

	InhibitGet bool `json:"inhibit_get"`
	InhibitPut bool `json:"inhibit_put"`
	Degraded   bool `json:"degraded"`
}

type MessageDTO struct {
	// ID is the hex-encoded message identifier.
	ID       string `json:"id"`
	CorrelID string `json:"correl_id,omitempty"`
	Position int    `json:"position"`

	Format      string `json:"format"`
	Type        string `json:"type"`
	Persistence string `json:"persistence"`
	Priority    int32  `json:"priority"`

	Size        int   `json:"size"`
	TotalLength int32 `json:"total_length"`
	Truncated   bool  `json:"truncated"`

	PutTime     time.Time `json:"put_time"`
	PutApplName string    `json:"put_appl_name,omitempty"`
	ReplyToQ    string    `json:"reply_to_q,omitempty"`

	Payload string `json:"payload"`
}

type AuditEntryDTO struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Action       string    `json:"action"`
	Resource     string    `json:"resource"`
	Detail       string    `json:"detail,omitempty"`
	QueueManager string    `json:"queue_manager,omitempty"`
	Actor        string    `json:"actor,omitempty"`
}
