package engine

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mqscope/mqscope/internal/core/audit"
)

func TestBrowseReturnsMessagesInQueueOrder(t *testing.T) {
	eng, fake := newTestEngine(t)
	seedQueue(fake, "DEV.QUEUE.1", "first", "second", "third")
	ctx := context.Background()
	mustConnect(t, eng, "qm1")

	msgs, err := eng.BrowseMessages(ctx, "qm1", "DEV.QUEUE.1")
	require.NoError(t, err)
	require.Len(t, msgs, 3)

	for i, want := range []string{"first", "second", "third"} {
		assert.Equal(t, i, msgs[i].Position)
		assert.Equal(t, want, string(msgs[i].Payload))
		assert.Equal(t, len(want), msgs[i].Size)
		assert.Equal(t, FormatString, msgs[i].Format)
	}
}

func TestBrowseIsNonDestructiveAndIdempotent(t *testing.T) {
	eng, fake := newTestEngine(t)
	seedQueue(fake, "DEV.QUEUE.1", "first", "second")
	ctx := context.Background()
	mustConnect(t, eng, "qm1")

	first, err := eng.BrowseMessages(ctx, "qm1", "DEV.QUEUE.1")
	require.NoError(t, err)
	second, err := eng.BrowseMessages(ctx, "qm1", "DEV.QUEUE.1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, fake.QueueMessages("DEV.QUEUE.1"), 2)
}

func TestBrowseEmptyQueueReturnsEmptySlice(t *testing.T) {
	eng, fake := newTestEngine(t)
	seedQueue(fake, "DEV.QUEUE.1")
	ctx := context.Background()
	mustConnect(t, eng, "qm1")

	msgs, err := eng.BrowseMessages(ctx, "qm1", "DEV.QUEUE.1")
	require.NoError(t, err)
	assert.NotNil(t, msgs)
	assert.Empty(t, msgs)
}

func TestBrowseYieldsTruncatedMessageWithActualLength(t *testing.T) {
	eng, fake := newTestEngine(t)
	seedQueue(fake, "DEV.QUEUE.1", "a payload far too long")
	fake.TruncateReadsAt(5)
	ctx := context.Background()
	mustConnect(t, eng, "qm1")

	msgs, err := eng.BrowseMessages(ctx, "qm1", "DEV.QUEUE.1")
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	m := msgs[0]
	assert.True(t, m.Truncated)
	assert.Equal(t, "a pay", string(m.Payload))
	assert.Equal(t, 5, m.Size)
	assert.Equal(t, int32(len("a payload far too long")), m.TotalLength)
}

func TestBrowseRejectsInvalidQueueName(t *testing.T) {
	eng, _ := newTestEngine(t)
	mustConnect(t, eng, "qm1")

	_, err := eng.BrowseMessages(context.Background(), "qm1", "bad-name!")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = eng.BrowseMessages(context.Background(), "qm1", "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDeleteMessageRemovesExactlyThatMessage(t *testing.T) {
	eng, fake := newTestEngine(t)
	seedQueue(fake, "DEV.QUEUE.1", "first", "second", "third")
	ctx := context.Background()
	mustConnect(t, eng, "qm1")

	before, err := eng.BrowseMessages(ctx, "qm1", "DEV.QUEUE.1")
	require.NoError(t, err)
	require.Len(t, before, 3)

	require.NoError(t, eng.DeleteMessage(ctx, "qm1", "DEV.QUEUE.1", before[1].ID))

	after, err := eng.BrowseMessages(ctx, "qm1", "DEV.QUEUE.1")
	require.NoError(t, err)
	require.Len(t, after, 2)
	assert.Equal(t, "first", string(after[0].Payload))
	assert.Equal(t, "third", string(after[1].Payload))
	// Positions are renumbered against the mutated queue.
	assert.Equal(t, 0, after[0].Position)
	assert.Equal(t, 1, after[1].Position)

	deleted := auditEntries(eng, audit.ActionMessageDeleted)
	require.Len(t, deleted, 1)
	assert.Equal(t, "DEV.QUEUE.1", deleted[0].Resource)
	assert.Equal(t, "Message "+hex.EncodeToString(before[1].ID), deleted[0].Detail)
	assert.Equal(t, "QM1", deleted[0].QueueManager)
	assert.Equal(t, "tester", deleted[0].Actor)
}

func TestDeleteMissingMessageFailsWithMessageNotFound(t *testing.T) {
	eng, fake := newTestEngine(t)
	seedQueue(fake, "DEV.QUEUE.1", "only")
	ctx := context.Background()
	mustConnect(t, eng, "qm1")

	err := eng.DeleteMessage(ctx, "qm1", "DEV.QUEUE.1", msgID(99))
	require.ErrorIs(t, err, ErrMessageNotFound)

	// Nothing was removed and nothing was audited.
	assert.Len(t, fake.QueueMessages("DEV.QUEUE.1"), 1)
	assert.Empty(t, auditEntries(eng, audit.ActionMessageDeleted))
}

func TestDeleteMessageRejectsEmptyID(t *testing.T) {
	eng, fake := newTestEngine(t)
	seedQueue(fake, "DEV.QUEUE.1", "only")
	mustConnect(t, eng, "qm1")

	err := eng.DeleteMessage(context.Background(), "qm1", "DEV.QUEUE.1", nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPurgeQueueDrainsAllMessages(t *testing.T) {
	eng, fake := newTestEngine(t)
	seedQueue(fake, "DEV.QUEUE.1", "a", "b", "c", "d")
	ctx := context.Background()
	mustConnect(t, eng, "qm1")

	removed, err := eng.PurgeQueue(ctx, "qm1", "DEV.QUEUE.1")
	require.NoError(t, err)
	assert.Equal(t, 4, removed)
	assert.Empty(t, fake.QueueMessages("DEV.QUEUE.1"))

	purged := auditEntries(eng, audit.ActionQueuePurged)
	require.Len(t, purged, 1)
	assert.Equal(t, "Removed 4 messages", purged[0].Detail)
}

func TestPurgeEmptyQueueAuditsZeroRemoved(t *testing.T) {
	eng, fake := newTestEngine(t)
	seedQueue(fake, "DEV.QUEUE.1")
	ctx := context.Background()
	mustConnect(t, eng, "qm1")

	removed, err := eng.PurgeQueue(ctx, "qm1", "DEV.QUEUE.1")
	require.NoError(t, err)
	assert.Equal(t, 0, removed)

	purged := auditEntries(eng, audit.ActionQueuePurged)
	require.Len(t, purged, 1)
	assert.Equal(t, "Removed 0 messages", purged[0].Detail)
}

func TestPurgeHonorsContextCancellation(t *testing.T) {
	eng, fake := newTestEngine(t)
	seedQueue(fake, "DEV.QUEUE.1", "a", "b")
	mustConnect(t, eng, "qm1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := eng.PurgeQueue(ctx, "qm1", "DEV.QUEUE.1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, auditEntries(eng, audit.ActionQueuePurged))
}
