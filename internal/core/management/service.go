package management

import (
	"context"

	"github.com/mqscope/mqscope/internal/core/engine"
	"github.com/mqscope/mqscope/internal/core/models"
	"github.com/mqscope/mqscope/internal/core/secrets"
)

// ConnectionStore persists connection configurations across restarts.
// Passwords never pass through it; the secrets store owns those.
type ConnectionStore interface {
	SaveConnection(cfg engine.ConnectionConfig) error
	DeleteConnection(id string) error
}

// InspectorService is the operation surface exposed to the web layer and the
// CLI. Everything is expressed in ids, names and DTOs; engine types never
// leak past this boundary.
type InspectorService interface {
	/* Connections */

	// ListConnections lists every registered queue-manager connection with
	// its current state.
	ListConnections() []models.ConnectionDTO
	// GetConnection retrieves one connection by id.
	GetConnection(id string) (*models.ConnectionDTO, error)
	// CreateConnection registers a connection and stores its password.
	CreateConnection(req models.CreateConnectionRequest) (*models.ConnectionDTO, error)
	// DeleteConnection unregisters a disconnected connection and drops its
	// stored password.
	DeleteConnection(id string) error
	// Connect dials the queue manager for id.
	Connect(ctx context.Context, id string) (*models.ConnectionDTO, error)
	// Disconnect hangs up the connection for id.
	Disconnect(ctx context.Context, id string) error

	/* Queues */

	// ListQueues returns the cached queue catalog for id.
	ListQueues(id string) ([]models.QueueDTO, error)
	// RefreshQueues re-enumerates the catalog and returns the new snapshot.
	RefreshQueues(ctx context.Context, id string) ([]models.QueueDTO, error)
	// CreateQueue defines a new local queue.
	CreateQueue(ctx context.Context, id string, req models.CreateQueueRequest) error
	// DeleteQueue removes a queue.
	DeleteQueue(ctx context.Context, id, queue string) error
	// PurgeQueue drains a queue and returns the number of messages removed.
	PurgeQueue(ctx context.Context, id, queue string) (int, error)

	/* Messages */

	// BrowseMessages returns a non-destructive snapshot of queue.
	BrowseMessages(ctx context.Context, id, queue string) ([]models.MessageDTO, error)
	// DeleteMessage removes the message with the hex-encoded id msgID.
	DeleteMessage(ctx context.Context, id, queue, msgID string) error
	// SendMessage puts a message on queue.
	SendMessage(ctx context.Context, id, queue string, req models.SendMessageRequest) error

	/* Audit */

	// ListAuditEntries returns the audit trail, most recent first.
	ListAuditEntries() []models.AuditEntryDTO
	// ExportAudit writes the audit trail to a file.
	ExportAudit(path string) error
}

type Service struct {
	engine  EngineProvider
	secrets secrets.Store
	store   ConnectionStore
}

var _ InspectorService = (*Service)(nil)

// NewService wires the service. store may be nil, in which case connections
// only live for the process lifetime.
func NewService(e EngineProvider, s secrets.Store, store ConnectionStore) *Service {
	return &Service{engine: e, secrets: s, store: store}
}
