package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mqscope/mqscope/internal/core/audit"
)

func TestCreateQueueMakesQueueUsable(t *testing.T) {
	eng, fake := newTestEngine(t)
	ctx := context.Background()
	mustConnect(t, eng, "qm1")

	require.NoError(t, eng.CreateQueue(ctx, "qm1", "APP.NEW.QUEUE"))

	require.NoError(t, eng.Send(ctx, "qm1", "APP.NEW.QUEUE", []byte("first"), MessageTypeDatagram, PersistenceNo, 0))
	msgs := fake.QueueMessages("APP.NEW.QUEUE")
	assert.Len(t, msgs, 1)

	created := auditEntries(eng, audit.ActionQueueCreated)
	require.Len(t, created, 1)
	assert.Equal(t, "APP.NEW.QUEUE", created[0].Resource)
}

func TestCreateQueueRejectsInvalidName(t *testing.T) {
	eng, _ := newTestEngine(t)
	mustConnect(t, eng, "qm1")

	err := eng.CreateQueue(context.Background(), "qm1", "lower.case")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Empty(t, auditEntries(eng, audit.ActionQueueCreated))
}

func TestDeleteQueueRemovesQueue(t *testing.T) {
	eng, fake := newTestEngine(t)
	seedQueue(fake, "DEV.QUEUE.1", "leftover")
	ctx := context.Background()
	mustConnect(t, eng, "qm1")

	// Open a handle first so delete has something cached to close.
	_, err := eng.BrowseMessages(ctx, "qm1", "DEV.QUEUE.1")
	require.NoError(t, err)

	require.NoError(t, eng.DeleteQueue(ctx, "qm1", "DEV.QUEUE.1"))

	_, err = eng.BrowseMessages(ctx, "qm1", "DEV.QUEUE.1")
	require.Error(t, err)

	deleted := auditEntries(eng, audit.ActionQueueDeleted)
	require.Len(t, deleted, 1)
	assert.Equal(t, "DEV.QUEUE.1", deleted[0].Resource)
}

func TestDeleteUnknownQueueFails(t *testing.T) {
	eng, _ := newTestEngine(t)
	mustConnect(t, eng, "qm1")

	err := eng.DeleteQueue(context.Background(), "qm1", "NO.SUCH.QUEUE")
	require.Error(t, err)
	assert.Empty(t, auditEntries(eng, audit.ActionQueueDeleted))
}
