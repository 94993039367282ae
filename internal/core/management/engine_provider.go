package management

import (
	"context"

	"github.com/mqscope/mqscope/internal/core/audit"
	"github.com/mqscope/mqscope/internal/core/engine"
)

// EngineProvider defines the minimal interface that management operations
// need from the connection engine.
type EngineProvider interface {
	/* Connections */

	AddConnection(cfg engine.ConnectionConfig) error
	RemoveConnection(id string) error
	Connections() []engine.ConnectionConfig
	ConnectionState(id string) (engine.ConnectionState, error)
	Connect(ctx context.Context, id string) (engine.ConnectionState, error)
	Disconnect(ctx context.Context, id string) error
	DisconnectAll(ctx context.Context) map[string]error

	/* Queues */

	RefreshQueues(ctx context.Context, id string) error
	Queues(id string) ([]engine.Queue, error)
	CreateQueue(ctx context.Context, id, queue string) error
	DeleteQueue(ctx context.Context, id, queue string) error
	PurgeQueue(ctx context.Context, id, queue string) (int, error)

	/* Messages */

	BrowseMessages(ctx context.Context, id, queue string) ([]engine.Message, error)
	DeleteMessage(ctx context.Context, id, queue string, msgID []byte) error
	Send(ctx context.Context, id, queue string, payload []byte, msgType engine.MessageType, persistence engine.Persistence, priority int) error

	/* Audit */

	AuditLog() []audit.Entry
	ExportAuditLog(path string) error
}
