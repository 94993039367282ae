package models

type CreateConnectionRequest struct {
	ID           string `json:"id" validate:"required"`
	Name         string `json:"name"`
	QueueManager string `json:"queue_manager" validate:"required"`
	Host         string `json:"host" validate:"required"`
	Port         int    `json:"port" validate:"required"`
	Channel      string `json:"channel" validate:"required"`
	User         string `json:"user"`
	// Password is stored in the secrets store, never in the connection list.
	Password string `json:"password,omitempty"`
}

type SendMessageRequest struct {
	Payload string `json:"payload" validate:"required"`

	// Type is "datagram", "request", "reply" or "report"; defaults to datagram.
	Type string `json:"type"`
	// Persistence is "persistent", "notPersistent" or "asQueueDef";
	// defaults to asQueueDef.
	Persistence string `json:"persistence"`
	Priority    int    `json:"priority"`
}

type CreateQueueRequest struct {
	Name string `json:"name" validate:"required"`
}

type ExportAuditRequest struct {
	Path string `json:"path" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
