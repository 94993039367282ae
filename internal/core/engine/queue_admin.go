package engine

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/mqscope/mqscope/internal/core/audit"
)

// CreateQueue defines a new local queue on the connected queue manager and
// refreshes the catalog so the new queue is visible immediately.
func (e *Engine) CreateQueue(ctx context.Context, id, queue string) error {
	if err := ValidateQueueName(queue); err != nil {
		return err
	}
	c, err := e.connection(id)
	if err != nil {
		return err
	}
	handle, err := c.beginOp()
	if err != nil {
		return err
	}
	defer c.endOp()

	if err := e.transport.CreateQueue(ctx, handle, queue); err != nil {
		return err
	}

	e.audit.RecordDetail(audit.ActionQueueCreated, queue, "", c.cfg.QueueManager, e.actor)
	log.Info().Str("connection", id).Str("queue", queue).Msg("Created queue")
	return nil
}

// DeleteQueue removes a queue from the connected queue manager. Any cached
// handle for the queue is closed first.
func (e *Engine) DeleteQueue(ctx context.Context, id, queue string) error {
	if err := ValidateQueueName(queue); err != nil {
		return err
	}
	c, err := e.connection(id)
	if err != nil {
		return err
	}
	handle, err := c.beginOp()
	if err != nil {
		return err
	}
	defer c.endOp()

	c.mu.Lock()
	var stale []string
	for key, qh := range c.queues {
		if len(key) > len(queue) && key[:len(queue)+1] == queue+"|" {
			stale = append(stale, key)
			if err := e.transport.CloseQueue(ctx, handle, qh); err != nil {
				log.Warn().Err(err).Str("queue", queue).Msg("Failed to close handle of queue being deleted")
			}
		}
	}
	for _, key := range stale {
		delete(c.queues, key)
	}
	c.mu.Unlock()

	if err := e.transport.DeleteQueue(ctx, handle, queue); err != nil {
		return err
	}

	e.audit.RecordDetail(audit.ActionQueueDeleted, queue, "", c.cfg.QueueManager, e.actor)
	log.Info().Str("connection", id).Str("queue", queue).Msg("Deleted queue")
	return nil
}
