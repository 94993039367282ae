package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/mqscope/mqscope/internal/core/audit"
	"github.com/mqscope/mqscope/internal/core/mqi"
	"github.com/mqscope/mqscope/internal/core/secrets"
	"github.com/mqscope/mqscope/pkg/metrics"
)

// Engine is the connection and browsing core. It owns every connection and
// queue handle; callers above it only ever see ids, names, and immutable
// snapshots.
type Engine struct {
	transport mqi.Transport
	secrets   secrets.Store
	audit     *audit.Log
	metrics   metrics.Collector
	actor     string

	connectTimeout time.Duration
	refreshTimeout time.Duration

	mu    sync.RWMutex
	conns map[string]*connection
}

const (
	defaultConnectTimeout = 30 * time.Second
	defaultRefreshTimeout = 30 * time.Second
)

// NewEngine wires the engine. actor is the identity recorded on audit
// entries for operations issued through this process.
func NewEngine(transport mqi.Transport, store secrets.Store, auditLog *audit.Log, collector metrics.Collector, actor string) *Engine {
	if collector == nil {
		collector = metrics.NewNoopCollector()
	}
	return &Engine{
		transport:      transport,
		secrets:        store,
		audit:          auditLog,
		metrics:        collector,
		actor:          actor,
		connectTimeout: defaultConnectTimeout,
		refreshTimeout: defaultRefreshTimeout,
		conns:          make(map[string]*connection),
	}
}

// SetTimeouts overrides the dial and catalog-refresh deadlines. Non-positive
// values keep the current setting. Call before the engine starts serving.
func (e *Engine) SetTimeouts(connect, refresh time.Duration) {
	if connect > 0 {
		e.connectTimeout = connect
	}
	if refresh > 0 {
		e.refreshTimeout = refresh
	}
}

// AddConnection registers a queue-manager configuration. The id must be new;
// the configuration is normalized and validated for dialing.
func (e *Engine) AddConnection(cfg ConnectionConfig) error {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, exists := e.conns[cfg.ID]; exists {
		return newInvalidArgument(fmt.Sprintf("connection %q already registered", cfg.ID))
	}
	e.conns[cfg.ID] = newConnection(cfg)
	return nil
}

// RemoveConnection unregisters a configuration. The connection must be
// disconnected first.
func (e *Engine) RemoveConnection(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	c, ok := e.conns[id]
	if !ok {
		return newInvalidArgument(fmt.Sprintf("unknown connection %q", id))
	}
	c.mu.Lock()
	kind := c.state.Kind
	c.mu.Unlock()
	if kind != StateDisconnected && kind != StateError {
		return newInvalidArgument(fmt.Sprintf("connection %q is %s", id, kind))
	}
	delete(e.conns, id)
	return nil
}

// Connections returns the registered configurations.
func (e *Engine) Connections() []ConnectionConfig {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]ConnectionConfig, 0, len(e.conns))
	for _, c := range e.conns {
		out = append(out, c.cfg)
	}
	return out
}

// ConnectionState returns the lifecycle snapshot for id.
func (e *Engine) ConnectionState(id string) (ConnectionState, error) {
	c, err := e.connection(id)
	if err != nil {
		return ConnectionState{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, nil
}

// IsConnected reports whether id is currently connected.
func (e *Engine) IsConnected(id string) bool {
	c, err := e.connection(id)
	if err != nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Kind == StateConnected
}

// AuditLog returns a most-recent-first snapshot of the audit trail.
func (e *Engine) AuditLog() []audit.Entry {
	return e.audit.Entries()
}

// ExportAuditLog writes the audit trail to path (JSON for .json, text
// otherwise). Failures surface as typed export errors and leave the
// in-memory log untouched.
func (e *Engine) ExportAuditLog(path string) error {
	if err := e.audit.ExportFile(path); err != nil {
		return &Error{Code: CodeExportFailed, Msg: path, Cause: err}
	}
	return nil
}

func (e *Engine) connection(id string) (*connection, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	c, ok := e.conns[id]
	if !ok {
		return nil, newInvalidArgument(fmt.Sprintf("unknown connection %q", id))
	}
	return c, nil
}
