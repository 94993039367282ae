package engine

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mqscope/mqscope/internal/core/audit"
	"github.com/mqscope/mqscope/internal/core/mqi"
)

// Priority bounds fixed by the MQ message descriptor.
const (
	MinPriority = 0
	MaxPriority = 9
)

// Send puts one message on queue with the given descriptor fields. An
// out-of-range priority is rejected rather than clamped so caller bugs are
// not masked; nothing is audited on failure.
func (e *Engine) Send(ctx context.Context, id, queue string, payload []byte, msgType MessageType, persistence Persistence, priority int) error {
	if err := ValidateQueueName(queue); err != nil {
		return err
	}
	if priority < MinPriority || priority > MaxPriority {
		return newInvalidArgument(fmt.Sprintf("priority %d out of range [%d,%d]", priority, MinPriority, MaxPriority))
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

	qh, err := e.ensureQueue(ctx, c, handle, queue, mqi.OpenOutput)
	if err != nil {
		return err
	}

	desc := mqi.PutDescriptor{
		Format:      FormatString.String(),
		MsgType:     msgType.toMQI(),
		Persistence: persistence.toMQI(),
		Priority:    int32(priority),
	}
	if err := e.transport.Put(ctx, handle, qh, desc, payload); err != nil {
		return err
	}

	e.audit.RecordDetail(audit.ActionMessageSent, queue,
		fmt.Sprintf("Sent %d bytes", len(payload)), c.cfg.QueueManager, e.actor)
	e.metrics.RecordSend(queue, len(payload))
	log.Info().Str("connection", id).Str("queue", queue).Int("bytes", len(payload)).Msg("Sent message")
	return nil
}
