package models

type ErrorResponse struct {
	Error string `json:"error"`
}

type UnauthorizedErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

type ConnectionListResponse struct {
	Connections []ConnectionDTO `json:"connections"`
}

type QueueListResponse struct {
	Queues []QueueDTO `json:"queues"`
}

type MessageListResponse struct {
	Messages []MessageDTO `json:"messages"`
}

type AuditListResponse struct {
	Entries []AuditEntryDTO `json:"entries"`
}

type PurgeResponse struct {
	Removed int `json:"removed"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
