package engine

import (
	"context"

	"github.com/rs/zerolog/log"
)

// RefreshQueues re-enumerates and re-inquires every queue on the connected
// queue manager. The new list replaces the cached one wholesale; on any
// failure before the swap the previous snapshot stays untouched. A queue
// whose attribute inquiry fails is kept with degraded attributes so the
// caller still sees that it exists.
func (e *Engine) RefreshQueues(ctx context.Context, id string) error {
	c, err := e.connection(id)
	if err != nil {
		return err
	}
	handle, err := c.beginOp()
	if err != nil {
		return err
	}
	defer c.endOp()

	names, err := e.transport.ListQueueNames(ctx, handle)
	if err != nil {
		return err
	}

	queues := make([]Queue, 0, len(names))
	for _, name := range names {
		attrs, err := e.transport.InquireQueue(ctx, handle, name)
		if err != nil {
			log.Debug().Err(err).Str("connection", id).Str("queue", name).Msg("Queue inquiry failed, keeping degraded entry")
			queues = append(queues, Queue{Name: name, Type: QueueTypeUnknown, Degraded: true})
			continue
		}
		queues = append(queues, Queue{
			Name:         attrs.Name,
			Type:         queueTypeFromMQI(attrs.Type),
			CurrentDepth: attrs.CurrentDepth,
			MaxDepth:     attrs.MaxDepth,
			InhibitGet:   attrs.InhibitGet,
			InhibitPut:   attrs.InhibitPut,
		})
		e.metrics.SetQueueDepth(id, attrs.Name, int64(attrs.CurrentDepth))
	}

	c.catMu.Lock()
	c.catalog = queues
	c.catMu.Unlock()

	e.metrics.RecordRefresh(id, len(queues))
	log.Debug().Str("connection", id).Int("queues", len(queues)).Msg("Queue catalog refreshed")
	return nil
}

// Queues returns the cached catalog snapshot for id. The snapshot is a copy;
// mutating it cannot affect the cache.
func (e *Engine) Queues(id string) ([]Queue, error) {
	c, err := e.connection(id)
	if err != nil {
		return nil, err
	}
	c.catMu.RLock()
	defer c.catMu.RUnlock()
	out := make([]Queue, len(c.catalog))
	copy(out, c.catalog)
	return out, nil
}
