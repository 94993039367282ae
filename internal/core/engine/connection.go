package engine

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mqscope/mqscope/internal/core/mqi"
)

// connection is the per-id state machine. mu serializes every transition;
// the dial/hangup round trips themselves run outside the lock so state reads
// stay cheap, with the connecting/disconnecting states acting as the
// in-flight markers.
type connection struct {
	cfg ConnectionConfig

	mu     sync.Mutex
	state  ConnectionState
	handle mqi.ConnHandle
	queues map[string]mqi.QueueHandle

	// ops gates queue operations against disconnect: a disconnect waits for
	// all in-flight operations before releasing the handle.
	ops sync.WaitGroup

	catMu   sync.RWMutex
	catalog []Queue
}

func newConnection(cfg ConnectionConfig) *connection {
	return &connection{
		cfg:    cfg,
		state:  ConnectionState{Kind: StateDisconnected, ChangedAt: time.Now()},
		queues: make(map[string]mqi.QueueHandle),
	}
}

func (c *connection) setState(kind StateKind, err error) ConnectionState {
	c.state = ConnectionState{Kind: kind, Err: err, ChangedAt: time.Now()}
	return c.state
}

// beginOp admits one queue operation while connected and returns the handle
// to use for it. The handle must not be retained past the operation.
func (c *connection) beginOp() (mqi.ConnHandle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Kind != StateConnected {
		return "", newNotConnected(c.cfg.ID)
	}
	c.ops.Add(1)
	return c.handle, nil
}

func (c *connection) endOp() {
	c.ops.Done()
}

// Connect dials the queue manager for id. Connected is a no-op; a dial
// already in flight fails with AlreadyConnecting; disconnected and error
// states start a fresh dial. On success the queue catalog is refreshed
// asynchronously.
func (e *Engine) Connect(ctx context.Context, id string) (ConnectionState, error) {
	c, err := e.connection(id)
	if err != nil {
		return ConnectionState{}, err
	}

	c.mu.Lock()
	switch c.state.Kind {
	case StateConnected:
		st := c.state
		c.mu.Unlock()
		return st, nil
	case StateConnecting, StateDisconnecting:
		st := c.state
		c.mu.Unlock()
		return st, newAlreadyConnecting(id)
	}
	st := c.setState(StateConnecting, nil)
	cfg := c.cfg
	c.mu.Unlock()

	e.metrics.RecordConnectAttempt(id)
	log.Info().Str("connection", id).Str("queue_manager", cfg.QueueManager).
		Str("host", cfg.Host).Int("port", cfg.Port).Str("channel", cfg.Channel).
		Msg("Connecting to queue manager")

	dialCtx, cancel := context.WithTimeout(ctx, e.connectTimeout)
	defer cancel()

	password, _ := e.secrets.GetPassword(id)
	handle, dialErr := e.transport.Connect(dialCtx, mqi.DialConfig{
		QueueManager: cfg.QueueManager,
		Host:         cfg.Host,
		Port:         cfg.Port,
		Channel:      cfg.Channel,
		User:         cfg.User,
		Password:     password,
	})

	c.mu.Lock()
	if dialErr != nil {
		st = c.setState(StateError, dialErr)
		c.mu.Unlock()
		e.metrics.RecordConnectFailure(id)
		log.Error().Err(dialErr).Str("connection", id).Msg("Connection failed")
		return st, dialErr
	}
	c.handle = handle
	st = c.setState(StateConnected, nil)
	c.mu.Unlock()

	e.metrics.RecordConnectSuccess(id)
	log.Info().Str("connection", id).Msg("Connected to queue manager")

	// Populate the catalog without blocking the caller.
	go func() {
		refreshCtx, cancel := context.WithTimeout(context.Background(), e.refreshTimeout)
		defer cancel()
		if err := e.RefreshQueues(refreshCtx, id); err != nil {
			log.Warn().Err(err).Str("connection", id).Msg("Initial queue refresh failed")
		}
	}()

	return st, nil
}

// Disconnect releases the connection for id. Disconnecting an already
// disconnected id is a no-op success. All open queue handles are closed
// first, best effort; cleanup failures are logged but never block reaching
// the released state.
func (e *Engine) Disconnect(ctx context.Context, id string) error {
	c, err := e.connection(id)
	if err != nil {
		return err
	}

	c.mu.Lock()
	switch c.state.Kind {
	case StateDisconnected, StateDisconnecting:
		c.mu.Unlock()
		return nil
	case StateConnecting:
		c.mu.Unlock()
		return newAlreadyConnecting(id)
	case StateError:
		// No live handle to release.
		c.handle = ""
		c.queues = make(map[string]mqi.QueueHandle)
		c.setState(StateDisconnected, nil)
		c.mu.Unlock()
		return nil
	}
	c.setState(StateDisconnecting, nil)
	handle := c.handle
	open := c.queues
	c.queues = make(map[string]mqi.QueueHandle)
	c.mu.Unlock()

	// Let in-flight queue operations drain before the handle goes away.
	c.ops.Wait()

	// A drained operation may have finished an open that started before the
	// state flipped, landing its handle in the fresh map. Sweep those up so
	// no handle survives into the next session.
	c.mu.Lock()
	for name, qh := range c.queues {
		open[name] = qh
	}
	c.queues = make(map[string]mqi.QueueHandle)
	c.mu.Unlock()

	for name, qh := range open {
		if err := e.transport.CloseQueue(ctx, handle, qh); err != nil {
			log.Warn().Err(err).Str("connection", id).Str("queue", name).Msg("Failed to close queue handle during disconnect")
		}
	}

	discErr := e.transport.Disconnect(ctx, handle)

	c.mu.Lock()
	c.handle = ""
	if discErr != nil {
		// Connection presumed lost; the handle is invalid either way.
		c.setState(StateError, discErr)
	} else {
		c.setState(StateDisconnected, nil)
	}
	c.mu.Unlock()

	e.metrics.RecordDisconnect(id)
	if discErr != nil {
		log.Error().Err(discErr).Str("connection", id).Msg("Disconnect failed")
		return discErr
	}
	log.Info().Str("connection", id).Msg("Disconnected from queue manager")
	return nil
}

// DisconnectAll disconnects every tracked id. Individual failures do not
// abort the sweep; they are collected and returned per id.
func (e *Engine) DisconnectAll(ctx context.Context) map[string]error {
	e.mu.RLock()
	ids := make([]string, 0, len(e.conns))
	for id := range e.conns {
		ids = append(ids, id)
	}
	e.mu.RUnlock()

	failures := make(map[string]error)
	for _, id := range ids {
		if err := e.Disconnect(ctx, id); err != nil {
			failures[id] = err
		}
	}
	return failures
}

// ensureQueue returns the open handle for queue under c, opening it with
// mode when needed. Handles are cached per queue+mode until disconnect.
func (e *Engine) ensureQueue(ctx context.Context, c *connection, handle mqi.ConnHandle, queue string, mode mqi.OpenMode) (mqi.QueueHandle, error) {
	key := queue + "|" + mode.String()

	c.mu.Lock()
	if qh, ok := c.queues[key]; ok {
		c.mu.Unlock()
		return qh, nil
	}
	c.mu.Unlock()

	qh, err := e.transport.OpenQueue(ctx, handle, queue, mode)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	if existing, ok := c.queues[key]; ok {
		// Lost a race with a concurrent open; keep the first handle.
		c.mu.Unlock()
		if err := e.transport.CloseQueue(ctx, handle, qh); err != nil {
			log.Warn().Err(err).Str("queue", queue).Msg("Failed to close duplicate queue handle")
		}
		return existing, nil
	}
	c.queues[key] = qh
	c.mu.Unlock()
	return qh, nil
}
