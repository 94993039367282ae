package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mqscope/mqscope/internal/core/audit"
	"github.com/mqscope/mqscope/internal/core/mqi"
)

func TestSendPutsMessageOnQueue(t *testing.T) {
	eng, fake := newTestEngine(t)
	seedQueue(fake, "DEV.QUEUE.1")
	ctx := context.Background()
	mustConnect(t, eng, "qm1")

	payload := []byte("hello from the inspector")
	require.NoError(t, eng.Send(ctx, "qm1", "DEV.QUEUE.1", payload, MessageTypeDatagram, PersistenceYes, 4))

	msgs := fake.QueueMessages("DEV.QUEUE.1")
	require.Len(t, msgs, 1)
	assert.Equal(t, payload, msgs[0].Payload)
	assert.Equal(t, "MQSTR", msgs[0].Format)
	assert.Equal(t, int32(4), msgs[0].Priority)

	sent := auditEntries(eng, audit.ActionMessageSent)
	require.Len(t, sent, 1)
	assert.Equal(t, "DEV.QUEUE.1", sent[0].Resource)
	assert.Equal(t, "Sent 24 bytes", sent[0].Detail)
}

func TestSentMessageIsBrowsable(t *testing.T) {
	eng, fake := newTestEngine(t)
	seedQueue(fake, "DEV.QUEUE.1", "existing")
	ctx := context.Background()
	mustConnect(t, eng, "qm1")

	require.NoError(t, eng.Send(ctx, "qm1", "DEV.QUEUE.1", []byte("appended"), MessageTypeDatagram, PersistenceNo, 0))

	msgs, err := eng.BrowseMessages(ctx, "qm1", "DEV.QUEUE.1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "existing", string(msgs[0].Payload))
	assert.Equal(t, "appended", string(msgs[1].Payload))
}

func TestSendRejectsOutOfRangePriority(t *testing.T) {
	eng, fake := newTestEngine(t)
	seedQueue(fake, "DEV.QUEUE.1")
	ctx := context.Background()
	mustConnect(t, eng, "qm1")

	for _, priority := range []int{-1, 10, 100} {
		err := eng.Send(ctx, "qm1", "DEV.QUEUE.1", []byte("x"), MessageTypeDatagram, PersistenceNo, priority)
		assert.ErrorIs(t, err, ErrInvalidArgument, "priority %d", priority)
	}

	// Nothing was put and nothing was audited.
	assert.Empty(t, fake.QueueMessages("DEV.QUEUE.1"))
	assert.Empty(t, auditEntries(eng, audit.ActionMessageSent))
}

func TestSendBoundaryPrioritiesAccepted(t *testing.T) {
	eng, fake := newTestEngine(t)
	seedQueue(fake, "DEV.QUEUE.1")
	ctx := context.Background()
	mustConnect(t, eng, "qm1")

	require.NoError(t, eng.Send(ctx, "qm1", "DEV.QUEUE.1", []byte("lo"), MessageTypeDatagram, PersistenceNo, MinPriority))
	require.NoError(t, eng.Send(ctx, "qm1", "DEV.QUEUE.1", []byte("hi"), MessageTypeDatagram, PersistenceNo, MaxPriority))
	assert.Len(t, fake.QueueMessages("DEV.QUEUE.1"), 2)
}

func TestSendFailureIsNotAudited(t *testing.T) {
	eng, fake := newTestEngine(t)
	fake.SeedQueue(mqi.QueueAttributes{Name: "DEV.QUEUE.1", Type: mqi.MQQT_LOCAL, MaxDepth: 5000, InhibitPut: true})
	ctx := context.Background()
	mustConnect(t, eng, "qm1")

	err := eng.Send(ctx, "qm1", "DEV.QUEUE.1", []byte("x"), MessageTypeDatagram, PersistenceNo, 0)
	require.Error(t, err)
	assert.Empty(t, auditEntries(eng, audit.ActionMessageSent))
}
