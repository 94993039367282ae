package management

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mqscope/mqscope/internal/core/audit"
	"github.com/mqscope/mqscope/internal/core/engine"
	"github.com/mqscope/mqscope/internal/core/mqi"
	"github.com/mqscope/mqscope/internal/core/models"
	"github.com/mqscope/mqscope/internal/core/secrets"
	"github.com/mqscope/mqscope/internal/testutil"
)

func setupTestService(t *testing.T) (*Service, *testutil.FakeTransport) {
	t.Helper()
	fake := testutil.NewFakeTransport()
	store := secrets.NewMemoryStore()
	eng := engine.NewEngine(fake, store, audit.NewLog(0), nil, "tester")
	return NewService(eng, store, nil), fake
}

// recordingConnStore captures persistence calls for assertions.
type recordingConnStore struct {
	saved   []engine.ConnectionConfig
	deleted []string
}

func (r *recordingConnStore) SaveConnection(cfg engine.ConnectionConfig) error {
	r.saved = append(r.saved, cfg)
	return nil
}

func (r *recordingConnStore) DeleteConnection(id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func testConnectionRequest(id string) models.CreateConnectionRequest {
	return models.CreateConnectionRequest{
		ID:           id,
		Name:         "dev box",
		QueueManager: "QM1",
		Host:         "localhost",
		Port:         1414,
		Channel:      "DEV.APP.SVRCONN",
		User:         "app",
		Password:     "passw0rd",
	}
}

func connectTestService(t *testing.T, svc *Service, id string) {
	t.Helper()
	_, err := svc.CreateConnection(testConnectionRequest(id))
	require.NoError(t, err)
	dto, err := svc.Connect(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "connected", dto.State)
}

func TestCreateConnectionStoresPassword(t *testing.T) {
	svc, _ := setupTestService(t)

	dto, err := svc.CreateConnection(testConnectionRequest("qm1"))
	require.NoError(t, err)
	assert.Equal(t, "qm1", dto.ID)
	assert.Equal(t, "disconnected", dto.State)

	secret, ok := svc.secrets.GetPassword("qm1")
	assert.True(t, ok)
	assert.Equal(t, "passw0rd", secret)
}

func TestCreateConnectionPersistsConfig(t *testing.T) {
	fake := testutil.NewFakeTransport()
	secretStore := secrets.NewMemoryStore()
	eng := engine.NewEngine(fake, secretStore, audit.NewLog(0), nil, "tester")
	rec := &recordingConnStore{}
	svc := NewService(eng, secretStore, rec)

	_, err := svc.CreateConnection(testConnectionRequest("qm1"))
	require.NoError(t, err)
	require.Len(t, rec.saved, 1)
	assert.Equal(t, "qm1", rec.saved[0].ID)
	assert.Equal(t, "QM1", rec.saved[0].QueueManager)

	require.NoError(t, svc.DeleteConnection("qm1"))
	assert.Equal(t, []string{"qm1"}, rec.deleted)
}

func TestCreateConnectionRejectsInvalidConfig(t *testing.T) {
	svc, _ := setupTestService(t)

	req := testConnectionRequest("qm1")
	req.Host = ""
	_, err := svc.CreateConnection(req)
	assert.ErrorIs(t, err, engine.ErrInvalidArgument)
}

func TestListConnectionsReflectsState(t *testing.T) {
	svc, _ := setupTestService(t)
	connectTestService(t, svc, "qm1")
	_, err := svc.CreateConnection(testConnectionRequest("qm2"))
	require.NoError(t, err)

	dtos := svc.ListConnections()
	require.Len(t, dtos, 2)

	states := map[string]string{}
	for _, dto := range dtos {
		states[dto.ID] = dto.State
	}
	assert.Equal(t, "connected", states["qm1"])
	assert.Equal(t, "disconnected", states["qm2"])
}

func TestConnectionDTOCarriesErrorDetail(t *testing.T) {
	svc, fake := setupTestService(t)
	_, err := svc.CreateConnection(testConnectionRequest("qm1"))
	require.NoError(t, err)

	fake.FailNextConnect(assert.AnError)
	_, err = svc.Connect(context.Background(), "qm1")
	require.Error(t, err)

	dto, err := svc.GetConnection("qm1")
	require.NoError(t, err)
	assert.Equal(t, "error", dto.State)
	assert.NotEmpty(t, dto.StateError)
}

func TestDeleteConnectionDropsSecret(t *testing.T) {
	svc, _ := setupTestService(t)
	_, err := svc.CreateConnection(testConnectionRequest("qm1"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteConnection("qm1"))

	_, err = svc.GetConnection("qm1")
	assert.Error(t, err)
	_, ok := svc.secrets.GetPassword("qm1")
	assert.False(t, ok)
}

func TestRefreshQueuesReturnsMappedCatalog(t *testing.T) {
	svc, fake := setupTestService(t)
	fake.SeedQueue(mqi.QueueAttributes{Name: "DEV.QUEUE.1", Type: mqi.MQQT_LOCAL, CurrentDepth: 0, MaxDepth: 100})
	connectTestService(t, svc, "qm1")

	queues, err := svc.RefreshQueues(context.Background(), "qm1")
	require.NoError(t, err)
	require.Len(t, queues, 1)

	q := queues[0]
	assert.Equal(t, "DEV.QUEUE.1", q.Name)
	assert.Equal(t, "local", q.Type)
	assert.True(t, q.DepthKnown)
	assert.Equal(t, "ok", q.DepthStatus)
}

func TestPurgeQueueReportsRemovedCount(t *testing.T) {
	svc, fake := setupTestService(t)
	fake.SeedQueue(mqi.QueueAttributes{Name: "DEV.QUEUE.1", Type: mqi.MQQT_LOCAL, MaxDepth: 100},
		testutil.FakeMessage{ID: []byte("ID0000000000000000000001"), Payload: []byte("a")},
		testutil.FakeMessage{ID: []byte("ID0000000000000000000002"), Payload: []byte("b")},
	)
	connectTestService(t, svc, "qm1")

	removed, err := svc.PurgeQueue(context.Background(), "qm1", "DEV.QUEUE.1")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
}

func TestListAuditEntriesMapsActions(t *testing.T) {
	svc, fake := setupTestService(t)
	fake.SeedQueue(mqi.QueueAttributes{Name: "DEV.QUEUE.1", Type: mqi.MQQT_LOCAL, MaxDepth: 100})
	connectTestService(t, svc, "qm1")

	_, err := svc.PurgeQueue(context.Background(), "qm1", "DEV.QUEUE.1")
	require.NoError(t, err)

	entries := svc.ListAuditEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, "queuePurged", entries[0].Action)
	assert.Equal(t, "DEV.QUEUE.1", entries[0].Resource)
	assert.Equal(t, "tester", entries[0].Actor)
}
