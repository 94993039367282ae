package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mqscope/mqscope/internal/core/audit"
	"github.com/mqscope/mqscope/internal/core/mqi"
	mqierr "github.com/mqscope/mqscope/internal/core/mqi/errors"
	"github.com/mqscope/mqscope/internal/core/secrets"
	"github.com/mqscope/mqscope/internal/testutil"
)

// gatedOpenTransport holds the first OpenQueue until released, signaling when
// the call has arrived. It lets a test pin an admitted operation mid-open.
type gatedOpenTransport struct {
	mqi.Transport
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (g *gatedOpenTransport) OpenQueue(ctx context.Context, h mqi.ConnHandle, queue string, mode mqi.OpenMode) (mqi.QueueHandle, error) {
	g.once.Do(func() { close(g.entered) })
	<-g.release
	return g.Transport.OpenQueue(ctx, h, queue, mode)
}

func TestConnectReachesConnectedState(t *testing.T) {
	eng, fake := newTestEngine(t)

	st, err := eng.Connect(context.Background(), "qm1")
	require.NoError(t, err)
	assert.Equal(t, StateConnected, st.Kind)
	assert.True(t, eng.IsConnected("qm1"))
	assert.Len(t, fake.MintedHandles(), 1)
}

func TestConnectWhenConnectedIsNoOp(t *testing.T) {
	eng, fake := newTestEngine(t)
	mustConnect(t, eng, "qm1")

	st, err := eng.Connect(context.Background(), "qm1")
	require.NoError(t, err)
	assert.Equal(t, StateConnected, st.Kind)
	// No second dial happened.
	assert.Len(t, fake.MintedHandles(), 1)
}

func TestConnectWhileDialInFlightFailsAlreadyConnecting(t *testing.T) {
	eng, fake := newTestEngine(t)
	fake.ConnectGate = make(chan struct{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := eng.Connect(context.Background(), "qm1")
		assert.NoError(t, err)
	}()

	require.Eventually(t, func() bool {
		st, err := eng.ConnectionState("qm1")
		return err == nil && st.Kind == StateConnecting
	}, time.Second, 5*time.Millisecond)

	_, err := eng.Connect(context.Background(), "qm1")
	assert.ErrorIs(t, err, ErrAlreadyConnecting)

	// Disconnect is rejected too while the dial is in flight.
	assert.ErrorIs(t, eng.Disconnect(context.Background(), "qm1"), ErrAlreadyConnecting)

	close(fake.ConnectGate)
	<-done
	assert.True(t, eng.IsConnected("qm1"))
}

func TestConnectFailureEntersErrorState(t *testing.T) {
	eng, fake := newTestEngine(t)
	fake.FailNextConnect(mqierr.New("MQCONNX", mqierr.ReasonHostUnavailable))

	_, err := eng.Connect(context.Background(), "qm1")
	require.Error(t, err)
	assert.True(t, mqierr.IsReason(err, mqierr.ReasonHostUnavailable))

	st, err := eng.ConnectionState("qm1")
	require.NoError(t, err)
	assert.Equal(t, StateError, st.Kind)
	assert.Error(t, st.Err)

	// A fresh connect from the error state succeeds.
	mustConnect(t, eng, "qm1")
}

func TestDisconnectIsIdempotent(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	// Never connected: still a no-op success.
	require.NoError(t, eng.Disconnect(ctx, "qm1"))

	mustConnect(t, eng, "qm1")
	require.NoError(t, eng.Disconnect(ctx, "qm1"))
	require.NoError(t, eng.Disconnect(ctx, "qm1"))

	st, err := eng.ConnectionState("qm1")
	require.NoError(t, err)
	assert.Equal(t, StateDisconnected, st.Kind)
}

func TestDisconnectClearsErrorState(t *testing.T) {
	eng, fake := newTestEngine(t)
	fake.FailNextConnect(mqierr.New("MQCONNX", mqierr.ReasonChannelUnavailable))

	_, err := eng.Connect(context.Background(), "qm1")
	require.Error(t, err)

	require.NoError(t, eng.Disconnect(context.Background(), "qm1"))
	st, err := eng.ConnectionState("qm1")
	require.NoError(t, err)
	assert.Equal(t, StateDisconnected, st.Kind)
	assert.NoError(t, st.Err)
}

func TestHandleNeverReusedAcrossSessions(t *testing.T) {
	eng, fake := newTestEngine(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		mustConnect(t, eng, "qm1")
		require.NoError(t, eng.Disconnect(ctx, "qm1"))
	}

	handles := fake.MintedHandles()
	require.Len(t, handles, 3)
	seen := make(map[string]bool)
	for _, h := range handles {
		assert.False(t, seen[string(h)], "handle %s reused", h)
		seen[string(h)] = true
	}
}

func TestDisconnectClosesOpenQueueHandles(t *testing.T) {
	eng, fake := newTestEngine(t)
	seedQueue(fake, "DEV.QUEUE.1", "one")
	ctx := context.Background()
	mustConnect(t, eng, "qm1")

	// Browsing caches a queue handle on the connection.
	_, err := eng.BrowseMessages(ctx, "qm1", "DEV.QUEUE.1")
	require.NoError(t, err)

	require.NoError(t, eng.Disconnect(ctx, "qm1"))

	// The next session starts with no cached handles: a fresh browse opens
	// the queue again instead of reusing a stale token.
	mustConnect(t, eng, "qm1")
	msgs, err := eng.BrowseMessages(ctx, "qm1", "DEV.QUEUE.1")
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestDisconnectSweepsHandleOpenedDuringDrain(t *testing.T) {
	fake := testutil.NewFakeTransport()
	gated := &gatedOpenTransport{Transport: fake, entered: make(chan struct{}), release: make(chan struct{})}
	eng := NewEngine(gated, secrets.NewMemoryStore(), audit.NewLog(0), nil, "tester")
	require.NoError(t, eng.AddConnection(testConfig("qm1")))
	seedQueue(fake, "DEV.QUEUE.1", "one")
	ctx := context.Background()
	mustConnect(t, eng, "qm1")

	// An admitted browse stalls inside the open while the disconnect runs.
	browsed := make(chan error, 1)
	go func() {
		_, err := eng.BrowseMessages(ctx, "qm1", "DEV.QUEUE.1")
		browsed <- err
	}()
	<-gated.entered

	disconnected := make(chan error, 1)
	go func() { disconnected <- eng.Disconnect(ctx, "qm1") }()
	require.Eventually(t, func() bool {
		st, err := eng.ConnectionState("qm1")
		return err == nil && st.Kind == StateDisconnecting
	}, time.Second, 5*time.Millisecond)

	close(gated.release)
	require.NoError(t, <-browsed)
	require.NoError(t, <-disconnected)

	// The handle opened during the drain must not leak into the next
	// session; a fresh browse opens the queue again.
	mustConnect(t, eng, "qm1")
	msgs, err := eng.BrowseMessages(ctx, "qm1", "DEV.QUEUE.1")
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestConnectHonorsConfiguredDialTimeout(t *testing.T) {
	eng, fake := newTestEngine(t)
	fake.ConnectGate = make(chan struct{})
	eng.SetTimeouts(20*time.Millisecond, 0)

	_, err := eng.Connect(context.Background(), "qm1")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	st, err := eng.ConnectionState("qm1")
	require.NoError(t, err)
	assert.Equal(t, StateError, st.Kind)
}

func TestDisconnectAllCollectsFailuresPerConnection(t *testing.T) {
	eng, _ := newTestEngine(t)
	require.NoError(t, eng.AddConnection(testConfig("qm2")))
	ctx := context.Background()

	mustConnect(t, eng, "qm1")
	mustConnect(t, eng, "qm2")

	failures := eng.DisconnectAll(ctx)
	assert.Empty(t, failures)
	assert.False(t, eng.IsConnected("qm1"))
	assert.False(t, eng.IsConnected("qm2"))
}

func TestOperationsRequireConnectedState(t *testing.T) {
	eng, fake := newTestEngine(t)
	seedQueue(fake, "DEV.QUEUE.1", "one")
	ctx := context.Background()

	_, err := eng.BrowseMessages(ctx, "qm1", "DEV.QUEUE.1")
	assert.ErrorIs(t, err, ErrNotConnected)

	err = eng.Send(ctx, "qm1", "DEV.QUEUE.1", []byte("hi"), MessageTypeDatagram, PersistenceNo, 4)
	assert.ErrorIs(t, err, ErrNotConnected)

	_, err = eng.PurgeQueue(ctx, "qm1", "DEV.QUEUE.1")
	assert.ErrorIs(t, err, ErrNotConnected)
}
