package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mqscope/mqscope/internal/core/mqi"
	mqierr "github.com/mqscope/mqscope/internal/core/mqi/errors"
)

func queueByName(queues []Queue, name string) (Queue, bool) {
	for _, q := range queues {
		if q.Name == name {
			return q, true
		}
	}
	return Queue{}, false
}

func TestRefreshQueuesPopulatesCatalog(t *testing.T) {
	eng, fake := newTestEngine(t)
	fake.SeedQueue(mqi.QueueAttributes{Name: "DEV.QUEUE.1", Type: mqi.MQQT_LOCAL, MaxDepth: 5000})
	fake.SeedQueue(mqi.QueueAttributes{Name: "DEV.QUEUE.2", Type: mqi.MQQT_ALIAS, MaxDepth: 1000, InhibitPut: true})
	ctx := context.Background()
	mustConnect(t, eng, "qm1")

	require.NoError(t, eng.RefreshQueues(ctx, "qm1"))

	queues, err := eng.Queues("qm1")
	require.NoError(t, err)
	require.Len(t, queues, 2)

	q1, ok := queueByName(queues, "DEV.QUEUE.1")
	require.True(t, ok)
	assert.Equal(t, QueueTypeLocal, q1.Type)
	assert.Equal(t, int32(5000), q1.MaxDepth)
	assert.False(t, q1.Degraded)

	q2, ok := queueByName(queues, "DEV.QUEUE.2")
	require.True(t, ok)
	assert.Equal(t, QueueTypeAlias, q2.Type)
	assert.True(t, q2.InhibitPut)
}

func TestRefreshQueuesTracksDepth(t *testing.T) {
	eng, fake := newTestEngine(t)
	seedQueue(fake, "DEV.QUEUE.1", "a", "b", "c")
	ctx := context.Background()
	mustConnect(t, eng, "qm1")

	require.NoError(t, eng.RefreshQueues(ctx, "qm1"))
	queues, err := eng.Queues("qm1")
	require.NoError(t, err)
	q, ok := queueByName(queues, "DEV.QUEUE.1")
	require.True(t, ok)
	assert.Equal(t, int32(3), q.CurrentDepth)

	_, err = eng.PurgeQueue(ctx, "qm1", "DEV.QUEUE.1")
	require.NoError(t, err)

	require.NoError(t, eng.RefreshQueues(ctx, "qm1"))
	queues, err = eng.Queues("qm1")
	require.NoError(t, err)
	q, _ = queueByName(queues, "DEV.QUEUE.1")
	assert.Equal(t, int32(0), q.CurrentDepth)
}

func TestRefreshOnDisconnectedConnectionKeepsCache(t *testing.T) {
	eng, fake := newTestEngine(t)
	seedQueue(fake, "DEV.QUEUE.1", "a")
	ctx := context.Background()
	mustConnect(t, eng, "qm1")
	require.NoError(t, eng.RefreshQueues(ctx, "qm1"))
	require.NoError(t, eng.Disconnect(ctx, "qm1"))

	err := eng.RefreshQueues(ctx, "qm1")
	require.ErrorIs(t, err, ErrNotConnected)

	// The last-known snapshot survives the failed refresh.
	queues, err := eng.Queues("qm1")
	require.NoError(t, err)
	assert.Len(t, queues, 1)
}

func TestRefreshFailureLeavesPreviousSnapshot(t *testing.T) {
	eng, fake := newTestEngine(t)
	seedQueue(fake, "DEV.QUEUE.1", "a")
	ctx := context.Background()
	mustConnect(t, eng, "qm1")
	require.NoError(t, eng.RefreshQueues(ctx, "qm1"))

	fake.FailList(mqierr.New("MQGET", mqierr.ReasonConnectionBroken))
	err := eng.RefreshQueues(ctx, "qm1")
	require.Error(t, err)
	assert.True(t, mqierr.IsReason(err, mqierr.ReasonConnectionBroken))

	queues, err := eng.Queues("qm1")
	require.NoError(t, err)
	assert.Len(t, queues, 1)
}

func TestRefreshKeepsDegradedEntryWhenInquiryFails(t *testing.T) {
	eng, fake := newTestEngine(t)
	fake.SeedQueue(mqi.QueueAttributes{Name: "DEV.QUEUE.1", Type: mqi.MQQT_LOCAL, MaxDepth: 5000})
	fake.SeedQueue(mqi.QueueAttributes{Name: "DEV.QUEUE.2", Type: mqi.MQQT_LOCAL, MaxDepth: 5000})
	fake.FailInquiry("DEV.QUEUE.2")
	ctx := context.Background()
	mustConnect(t, eng, "qm1")

	require.NoError(t, eng.RefreshQueues(ctx, "qm1"))

	queues, err := eng.Queues("qm1")
	require.NoError(t, err)
	require.Len(t, queues, 2)

	degraded, ok := queueByName(queues, "DEV.QUEUE.2")
	require.True(t, ok)
	assert.True(t, degraded.Degraded)
	assert.Equal(t, QueueTypeUnknown, degraded.Type)

	healthy, ok := queueByName(queues, "DEV.QUEUE.1")
	require.True(t, ok)
	assert.False(t, healthy.Degraded)
}

func TestQueuesReturnsACopy(t *testing.T) {
	eng, fake := newTestEngine(t)
	seedQueue(fake, "DEV.QUEUE.1")
	ctx := context.Background()
	mustConnect(t, eng, "qm1")
	require.NoError(t, eng.RefreshQueues(ctx, "qm1"))

	queues, err := eng.Queues("qm1")
	require.NoError(t, err)
	require.Len(t, queues, 1)
	queues[0].Name = "MUTATED"

	again, err := eng.Queues("qm1")
	require.NoError(t, err)
	assert.Equal(t, "DEV.QUEUE.1", again[0].Name)
}

func TestDepthStatusThresholds(t *testing.T) {
	cases := []struct {
		name    string
		current int32
		max     int32
		status  string
	}{
		{"empty", 0, 100, "ok"},
		{"below near", 79, 100, "ok"},
		{"near", 80, 100, "near"},
		{"critical", 95, 100, "critical"},
		{"full", 100, 100, "full"},
		{"no max depth", 10, 0, "ok"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := Queue{Name: "Q", CurrentDepth: tc.current, MaxDepth: tc.max}
			assert.Equal(t, tc.status, q.DepthStatus())
		})
	}
}
