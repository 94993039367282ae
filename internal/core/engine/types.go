package engine

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/mqscope/mqscope/internal/core/mqi"
)

// ConnectionConfig identifies one queue manager and how to dial it.
// Credentials are never part of this struct; the secret store holds them
// keyed by ID.
type ConnectionConfig struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	QueueManager string `json:"queue_manager"`
	Host         string `json:"host"`
	Port         int    `json:"port"`
	Channel      string `json:"channel"`
	User         string `json:"user,omitempty"`
}

// Normalize uppercases the fields MQ treats as case-normalized.
func (c *ConnectionConfig) Normalize() {
	c.QueueManager = strings.ToUpper(strings.TrimSpace(c.QueueManager))
	c.Channel = strings.ToUpper(strings.TrimSpace(c.Channel))
	c.Host = strings.TrimSpace(c.Host)
}

// Validate checks the fields required for dialing.
func (c *ConnectionConfig) Validate() error {
	if c.ID == "" {
		return newInvalidArgument("connection id is required")
	}
	if c.QueueManager == "" {
		return newInvalidArgument("queue manager name is required")
	}
	if c.Host == "" {
		return newInvalidArgument("host is required")
	}
	if c.Port < 1 || c.Port > 65535 {
		return newInvalidArgument(fmt.Sprintf("port %d out of range", c.Port))
	}
	if c.Channel == "" {
		return newInvalidArgument("channel is required")
	}
	return nil
}

// StateKind enumerates the connection lifecycle states.
type StateKind int

const (
	StateDisconnected StateKind = iota
	StateConnecting
	StateConnected
	StateDisconnecting
	StateError
)

func (s StateKind) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateDisconnecting:
		return "disconnecting"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// ConnectionState is the externally visible lifecycle snapshot for one id.
// The connection handle itself is never part of it.
type ConnectionState struct {
	Kind      StateKind
	Err       error
	ChangedAt time.Time
}

// QueueType is the closed queue-type enumeration.
type QueueType int

const (
	QueueTypeUnknown QueueType = iota
	QueueTypeLocal
	QueueTypeAlias
	QueueTypeRemote
	QueueTypeModel
	QueueTypeCluster
)

func (t QueueType) String() string {
	switch t {
	case QueueTypeLocal:
		return "local"
	case QueueTypeAlias:
		return "alias"
	case QueueTypeRemote:
		return "remote"
	case QueueTypeModel:
		return "model"
	case QueueTypeCluster:
		return "cluster"
	default:
		return "unknown"
	}
}

func queueTypeFromMQI(t int32) QueueType {
	switch t {
	case mqi.MQQT_LOCAL:
		return QueueTypeLocal
	case mqi.MQQT_ALIAS:
		return QueueTypeAlias
	case mqi.MQQT_REMOTE:
		return QueueTypeRemote
	case mqi.MQQT_MODEL:
		return QueueTypeModel
	case mqi.MQQT_CLUSTER:
		return QueueTypeCluster
	default:
		return QueueTypeUnknown
	}
}

// Depth thresholds for the derived queue status.
const (
	depthNearThreshold     = 0.80
	depthCriticalThreshold = 0.95
)

// Queue is one catalog entry. Degraded reports that the attribute inquiry
// failed and only the name is trustworthy.
type Queue struct {
	Name         string    `json:"name"`
	Type         QueueType `json:"type"`
	CurrentDepth int32     `json:"current_depth"`
	MaxDepth     int32     `json:"max_depth"`
	InhibitGet   bool      `json:"inhibit_get"`
	InhibitPut   bool      `json:"inhibit_put"`
	Degraded     bool      `json:"degraded"`
}

// DepthPercent returns currentDepth/maxDepth; ok is false when MaxDepth is
// zero (unbounded or not a local queue) and the ratio is undefined.
func (q Queue) DepthPercent() (float64, bool) {
	if q.MaxDepth <= 0 {
		return 0, false
	}
	return float64(q.CurrentDepth) / float64(q.MaxDepth), true
}

// DepthStatus classifies fill level as ok/near/critical/full.
func (q Queue) DepthStatus() string {
	pct, ok := q.DepthPercent()
	switch {
	case !ok:
		return "ok"
	case pct >= 1.0:
		return "full"
	case pct >= depthCriticalThreshold:
		return "critical"
	case pct >= depthNearThreshold:
		return "near"
	default:
		return "ok"
	}
}

// queueNameAlphabet is the restricted MQ object-name character set.
const queueNameAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789./_% "

// ValidateQueueName enforces MQ object-name rules before any open.
func ValidateQueueName(name string) error {
	if name == "" {
		return newInvalidArgument("queue name is empty")
	}
	if len(name) > mqi.QNameLength {
		return newInvalidArgument(fmt.Sprintf("queue name %q exceeds %d characters", name, mqi.QNameLength))
	}
	for _, r := range name {
		if !strings.ContainsRune(queueNameAlphabet, r) {
			return newInvalidArgument(fmt.Sprintf("queue name %q contains invalid character %q", name, r))
		}
	}
	return nil
}

// MessageType is the closed message-type enumeration.
type MessageType int

const (
	MessageTypeUnknown MessageType = iota
	MessageTypeDatagram
	MessageTypeRequest
	MessageTypeReply
	MessageTypeReport
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeDatagram:
		return "datagram"
	case MessageTypeRequest:
		return "request"
	case MessageTypeReply:
		return "reply"
	case MessageTypeReport:
		return "report"
	default:
		return "unknown"
	}
}

func messageTypeFromMQI(t int32) MessageType {
	switch t {
	case mqi.MQMT_DATAGRAM:
		return MessageTypeDatagram
	case mqi.MQMT_REQUEST:
		return MessageTypeRequest
	case mqi.MQMT_REPLY:
		return MessageTypeReply
	case mqi.MQMT_REPORT:
		return MessageTypeReport
	default:
		return MessageTypeUnknown
	}
}

func (t MessageType) toMQI() int32 {
	switch t {
	case MessageTypeRequest:
		return mqi.MQMT_REQUEST
	case MessageTypeReply:
		return mqi.MQMT_REPLY
	case MessageTypeReport:
		return mqi.MQMT_REPORT
	default:
		return mqi.MQMT_DATAGRAM
	}
}

// Persistence is the closed persistence enumeration.
type Persistence int

const (
	PersistenceUnknown Persistence = iota
	PersistenceNo
	PersistenceYes
	PersistenceAsQueueDef
)

func (p Persistence) String() string {
	switch p {
	case PersistenceNo:
		return "notPersistent"
	case PersistenceYes:
		return "persistent"
	case PersistenceAsQueueDef:
		return "asQueueDef"
	default:
		return "unknown"
	}
}

func persistenceFromMQI(p int32) Persistence {
	switch p {
	case mqi.MQPER_NOT_PERSISTENT:
		return PersistenceNo
	case mqi.MQPER_PERSISTENT:
		return PersistenceYes
	case mqi.MQPER_PERSISTENCE_AS_Q_DEF:
		return PersistenceAsQueueDef
	default:
		return PersistenceUnknown
	}
}

func (p Persistence) toMQI() int32 {
	switch p {
	case PersistenceNo:
		return mqi.MQPER_NOT_PERSISTENT
	case PersistenceYes:
		return mqi.MQPER_PERSISTENT
	default:
		return mqi.MQPER_PERSISTENCE_AS_Q_DEF
	}
}

// MessageFormat is the closed format-token enumeration.
type MessageFormat int

const (
	FormatUnknown MessageFormat = iota
	FormatString
	FormatRFHeader2
	FormatNone
	FormatAdmin
	FormatDeadLetterHeader
	FormatEvent
)

func (f MessageFormat) String() string {
	switch f {
	case FormatString:
		return "MQSTR"
	case FormatRFHeader2:
		return "MQHRF2"
	case FormatNone:
		return "MQNONE"
	case FormatAdmin:
		return "MQADMIN"
	case FormatDeadLetterHeader:
		return "MQDEAD"
	case FormatEvent:
		return "MQEVENT"
	default:
		return "unknown"
	}
}

func formatFromToken(token string) MessageFormat {
	switch strings.TrimSpace(token) {
	case "MQSTR":
		return FormatString
	case "MQHRF2":
		return FormatRFHeader2
	case "", "MQNONE":
		return FormatNone
	case "MQADMIN":
		return FormatAdmin
	case "MQDEAD":
		return FormatDeadLetterHeader
	case "MQEVENT":
		return FormatEvent
	default:
		return FormatUnknown
	}
}

// Message is an immutable browse snapshot. Position reflects browse order at
// the moment of the browse, not a stable queue offset; re-browsing a mutated
// queue may renumber the same message id.
type Message struct {
	ID             []byte        `json:"id"`
	CorrelID       []byte        `json:"correl_id"`
	Format         MessageFormat `json:"format"`
	Payload        []byte        `json:"payload"`
	Size           int           `json:"size"`
	TotalLength    int32         `json:"total_length"`
	Truncated      bool          `json:"truncated"`
	PutTime        time.Time     `json:"put_time"`
	PutApplName    string        `json:"put_appl_name"`
	Type           MessageType   `json:"type"`
	Persistence    Persistence   `json:"persistence"`
	Priority       int32         `json:"priority"`
	ReplyToQ       string        `json:"reply_to_q"`
	ReplyToQMgr    string        `json:"reply_to_qmgr"`
	SequenceNumber int32         `json:"sequence_number"`
	Position       int           `json:"position"`
}

// HexID renders the 24-byte message identifier as lowercase hex.
func (m Message) HexID() string {
	return hex.EncodeToString(m.ID)
}

func messageFromResult(res *mqi.GetResult, position int) Message {
	id := make([]byte, len(res.Desc.MsgID))
	copy(id, res.Desc.MsgID)
	correl := make([]byte, len(res.Desc.CorrelID))
	copy(correl, res.Desc.CorrelID)

	return Message{
		ID:             id,
		CorrelID:       correl,
		Format:         formatFromToken(res.Desc.Format),
		Payload:        res.Payload,
		Size:           len(res.Payload),
		TotalLength:    res.TotalLength,
		Truncated:      res.Truncated,
		PutTime:        res.Desc.PutTime,
		PutApplName:    res.Desc.PutApplName,
		Type:           messageTypeFromMQI(res.Desc.MsgType),
		Persistence:    persistenceFromMQI(res.Desc.Persistence),
		Priority:       res.Desc.Priority,
		ReplyToQ:       res.Desc.ReplyToQ,
		ReplyToQMgr:    res.Desc.ReplyToQMgr,
		SequenceNumber: res.Desc.MsgSeqNumber,
		Position:       position,
	}
}
