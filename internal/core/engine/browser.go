package engine

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mqscope/mqscope/internal/core/audit"
	"github.com/mqscope/mqscope/internal/core/mqi"
	mqierr "github.com/mqscope/mqscope/internal/core/mqi/errors"
)

// BrowseMessages non-destructively drains the browse cursor of queue into an
// ordered snapshot. The cursor is reset to the head on every call, so
// re-invoking re-browses from the start. "No message available" terminates
// the sequence normally; truncated messages are yielded with the bytes that
// were copied.
func (e *Engine) BrowseMessages(ctx context.Context, id, queue string) ([]Message, error) {
	if err := ValidateQueueName(queue); err != nil {
		return nil, err
	}
	c, err := e.connection(id)
	if err != nil {
		return nil, err
	}
	handle, err := c.beginOp()
	if err != nil {
		return nil, err
	}
	defer c.endOp()

	qh, err := e.ensureQueue(ctx, c, handle, queue, mqi.OpenBrowse)
	if err != nil {
		return nil, err
	}

	messages := make([]Message, 0)
	res, err := e.transport.BrowseFirst(ctx, handle, qh)
	for {
		if err != nil {
			if mqierr.IsReason(err, mqierr.ReasonNoMessageAvailable) {
				break
			}
			return nil, err
		}
		messages = append(messages, messageFromResult(res, len(messages)))
		res, err = e.transport.BrowseNext(ctx, handle, qh)
	}

	e.metrics.RecordBrowse(queue, len(messages))
	log.Debug().Str("connection", id).Str("queue", queue).Int("messages", len(messages)).Msg("Browsed queue")
	return messages, nil
}

// DeleteMessage destructively removes exactly the message with msgID from
// queue, matching by id rather than through the browse cursor. A missing
// message (e.g. consumed concurrently) fails with MessageNotFound, never
// with a connectivity error.
func (e *Engine) DeleteMessage(ctx context.Context, id, queue string, msgID []byte) error {
	if err := ValidateQueueName(queue); err != nil {
		return err
	}
	if len(msgID) == 0 {
		return newInvalidArgument("message id is empty")
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

	qh, err := e.ensureQueue(ctx, c, handle, queue, mqi.OpenInput)
	if err != nil {
		return err
	}

	hexID := hex.EncodeToString(msgID)
	if _, err := e.transport.GetByMsgID(ctx, handle, qh, msgID); err != nil {
		if mqierr.IsReason(err, mqierr.ReasonNoMessageAvailable) {
			return newMessageNotFound(queue, hexID)
		}
		return err
	}

	e.audit.RecordDetail(audit.ActionMessageDeleted, queue,
		fmt.Sprintf("Message %s", hexID), c.cfg.QueueManager, e.actor)
	e.metrics.RecordDelete(queue)
	log.Info().Str("connection", id).Str("queue", queue).Str("message_id", hexID).Msg("Deleted message")
	return nil
}

// PurgeQueue destructively drains queue until no message is available and
// returns the number removed. The drain is not a point-in-time transaction:
// messages arriving mid-purge may or may not be removed. Exactly one audit
// entry is emitted, even for an empty queue.
func (e *Engine) PurgeQueue(ctx context.Context, id, queue string) (int, error) {
	if err := ValidateQueueName(queue); err != nil {
		return 0, err
	}
	c, err := e.connection(id)
	if err != nil {
		return 0, err
	}
	handle, err := c.beginOp()
	if err != nil {
		return 0, err
	}
	defer c.endOp()

	qh, err := e.ensureQueue(ctx, c, handle, queue, mqi.OpenInput)
	if err != nil {
		return 0, err
	}

	removed := 0
	for {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if _, err := e.transport.Get(ctx, handle, qh); err != nil {
			if mqierr.IsReason(err, mqierr.ReasonNoMessageAvailable) {
				break
			}
			return removed, err
		}
		removed++
	}

	e.audit.RecordDetail(audit.ActionQueuePurged, queue,
		fmt.Sprintf("Removed %d messages", removed), c.cfg.QueueManager, e.actor)
	e.metrics.RecordPurge(queue, removed)
	log.Info().Str("connection", id).Str("queue", queue).Int("removed", removed).Msg("Purged queue")
	return removed, nil
}
