package mqi

import (
	"context"
	"time"
)

// ConnHandle is an opaque token for an established queue-manager connection.
// Tokens are minted by the transport, owned by the connection state machine,
// and are never reused across sessions.
type ConnHandle string

// QueueHandle is an opaque token for an open queue object under a connection.
type QueueHandle string

// OpenMode selects what an opened queue handle may be used for.
type OpenMode int

const (
	OpenBrowse OpenMode = iota
	OpenInput
	OpenOutput
	OpenInquire
)

func (m OpenMode) String() string {
	switch m {
	case OpenBrowse:
		return "browse"
	case OpenInput:
		return "input"
	case OpenOutput:
		return "output"
	case OpenInquire:
		return "inquire"
	default:
		return "unknown"
	}
}

// DialConfig carries everything needed for one MQCONNX.
type DialConfig struct {
	QueueManager string
	Host         string
	Port         int
	Channel      string
	User         string
	Password     string
}

// QueueAttributes is the raw inquiry result for one queue.
type QueueAttributes struct {
	Name         string
	Type         int32
	CurrentDepth int32
	MaxDepth     int32
	InhibitGet   bool
	InhibitPut   bool
}

// MessageDescriptor mirrors the MQMD fields the inspector surfaces.
type MessageDescriptor struct {
	MsgID        []byte
	CorrelID     []byte
	Format       string
	MsgType      int32
	Persistence  int32
	Priority     int32
	PutTime      time.Time
	PutApplName  string
	ReplyToQ     string
	ReplyToQMgr  string
	MsgSeqNumber int32
}

// GetResult is one retrieved message. Payload holds the bytes actually
// copied; TotalLength is the full message length on the queue, so
// Truncated implies TotalLength > len(Payload).
type GetResult struct {
	Desc        MessageDescriptor
	Payload     []byte
	TotalLength int32
	Truncated   bool
}

// PutDescriptor carries the caller-controlled fields of an MQPUT.
type PutDescriptor struct {
	Format      string
	MsgType     int32
	Persistence int32
	Priority    int32
	ReplyToQ    string
	CorrelID    []byte
}

// Transport is the vendor-API seam. The real implementation wraps
// ibm-messaging/mq-golang; tests substitute an in-memory fake. All calls are
// blocking round trips and honor ctx cancellation.
type Transport interface {
	/* Connection */

	// Connect performs MQCONNX and mints a fresh handle token.
	Connect(ctx context.Context, cfg DialConfig) (ConnHandle, error)
	// Disconnect performs MQDISC and invalidates the token.
	Disconnect(ctx context.Context, h ConnHandle) error

	/* Object handles */

	OpenQueue(ctx context.Context, h ConnHandle, queue string, mode OpenMode) (QueueHandle, error)
	CloseQueue(ctx context.Context, h ConnHandle, q QueueHandle) error

	/* Browse cursor */

	// BrowseFirst resets the cursor of q to the head of the queue.
	BrowseFirst(ctx context.Context, h ConnHandle, q QueueHandle) (*GetResult, error)
	// BrowseNext advances the cursor. A ReasonNoMessageAvailable error marks
	// normal end of queue.
	BrowseNext(ctx context.Context, h ConnHandle, q QueueHandle) (*GetResult, error)

	/* Destructive get */

	// Get destructively removes the next available message.
	Get(ctx context.Context, h ConnHandle, q QueueHandle) (*GetResult, error)
	// GetByMsgID destructively removes the message matching msgID
	// (MQMO_MATCH_MSG_ID), independent of any browse cursor.
	GetByMsgID(ctx context.Context, h ConnHandle, q QueueHandle, msgID []byte) (*GetResult, error)

	/* Put */

	Put(ctx context.Context, h ConnHandle, q QueueHandle, desc PutDescriptor, payload []byte) error

	/* Inquiry and administration */

	InquireQueue(ctx context.Context, h ConnHandle, queue string) (QueueAttributes, error)
	ListQueueNames(ctx context.Context, h ConnHandle) ([]string, error)
	CreateQueue(ctx context.Context, h ConnHandle, queue string) error
	DeleteQueue(ctx context.Context, h ConnHandle, queue string) error
}
