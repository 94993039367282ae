package management

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mqscope/mqscope/internal/core/engine"
	"github.com/mqscope/mqscope/internal/core/models"
	"github.com/mqscope/mqscope/internal/core/mqi"
	"github.com/mqscope/mqscope/internal/testutil"
)

func seedBrowseQueue(fake *testutil.FakeTransport) {
	fake.SeedQueue(mqi.QueueAttributes{Name: "DEV.QUEUE.1", Type: mqi.MQQT_LOCAL, MaxDepth: 100},
		testutil.FakeMessage{ID: []byte("ID0000000000000000000001"), Payload: []byte("hello"), Format: "MQSTR"},
		testutil.FakeMessage{ID: []byte("ID0000000000000000000002"), Payload: []byte("world"), Format: "MQSTR"},
	)
}

func TestBrowseMessagesMapsToDTO(t *testing.T) {
	svc, fake := setupTestService(t)
	seedBrowseQueue(fake)
	connectTestService(t, svc, "qm1")

	msgs, err := svc.BrowseMessages(context.Background(), "qm1", "DEV.QUEUE.1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	assert.Equal(t, hex.EncodeToString([]byte("ID0000000000000000000001")), msgs[0].ID)
	assert.Equal(t, 0, msgs[0].Position)
	assert.Equal(t, "hello", msgs[0].Payload)
	assert.Equal(t, "MQSTR", msgs[0].Format)
	assert.Equal(t, 1, msgs[1].Position)
}

func TestDeleteMessageDecodesHexID(t *testing.T) {
	svc, fake := setupTestService(t)
	seedBrowseQueue(fake)
	connectTestService(t, svc, "qm1")

	hexID := hex.EncodeToString([]byte("ID0000000000000000000001"))
	require.NoError(t, svc.DeleteMessage(context.Background(), "qm1", "DEV.QUEUE.1", hexID))

	msgs, err := svc.BrowseMessages(context.Background(), "qm1", "DEV.QUEUE.1")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "world", msgs[0].Payload)
}

func TestDeleteMessageRejectsMalformedID(t *testing.T) {
	svc, fake := setupTestService(t)
	seedBrowseQueue(fake)
	connectTestService(t, svc, "qm1")

	err := svc.DeleteMessage(context.Background(), "qm1", "DEV.QUEUE.1", "not-hex!")
	assert.Error(t, err)
}

func TestSendMessageParsesTokens(t *testing.T) {
	svc, fake := setupTestService(t)
	fake.SeedQueue(mqi.QueueAttributes{Name: "DEV.QUEUE.1", Type: mqi.MQQT_LOCAL, MaxDepth: 100})
	connectTestService(t, svc, "qm1")

	req := models.SendMessageRequest{
		Payload:     "payload",
		Type:        "request",
		Persistence: "persistent",
		Priority:    5,
	}
	require.NoError(t, svc.SendMessage(context.Background(), "qm1", "DEV.QUEUE.1", req))

	msgs := fake.QueueMessages("DEV.QUEUE.1")
	require.Len(t, msgs, 1)
	assert.Equal(t, int32(5), msgs[0].Priority)
	assert.Equal(t, mqi.MQMT_REQUEST, msgs[0].MsgType)
	assert.Equal(t, mqi.MQPER_PERSISTENT, msgs[0].Persistence)
}

func TestSendMessageDefaultsTypeAndPersistence(t *testing.T) {
	svc, fake := setupTestService(t)
	fake.SeedQueue(mqi.QueueAttributes{Name: "DEV.QUEUE.1", Type: mqi.MQQT_LOCAL, MaxDepth: 100})
	connectTestService(t, svc, "qm1")

	require.NoError(t, svc.SendMessage(context.Background(), "qm1", "DEV.QUEUE.1", models.SendMessageRequest{Payload: "x"}))

	msgs := fake.QueueMessages("DEV.QUEUE.1")
	require.Len(t, msgs, 1)
	assert.Equal(t, mqi.MQMT_DATAGRAM, msgs[0].MsgType)
	assert.Equal(t, mqi.MQPER_PERSISTENCE_AS_Q_DEF, msgs[0].Persistence)
}

func TestSendMessageRejectsUnknownTokens(t *testing.T) {
	svc, fake := setupTestService(t)
	fake.SeedQueue(mqi.QueueAttributes{Name: "DEV.QUEUE.1", Type: mqi.MQQT_LOCAL, MaxDepth: 100})
	connectTestService(t, svc, "qm1")
	ctx := context.Background()

	err := svc.SendMessage(ctx, "qm1", "DEV.QUEUE.1", models.SendMessageRequest{Payload: "x", Type: "telegram"})
	assert.Error(t, err)
	err = svc.SendMessage(ctx, "qm1", "DEV.QUEUE.1", models.SendMessageRequest{Payload: "x", Persistence: "forever"})
	assert.Error(t, err)
	assert.Empty(t, fake.QueueMessages("DEV.QUEUE.1"))
}

func TestSendMessageOutOfRangePriorityFails(t *testing.T) {
	svc, fake := setupTestService(t)
	fake.SeedQueue(mqi.QueueAttributes{Name: "DEV.QUEUE.1", Type: mqi.MQQT_LOCAL, MaxDepth: 100})
	connectTestService(t, svc, "qm1")

	err := svc.SendMessage(context.Background(), "qm1", "DEV.QUEUE.1", models.SendMessageRequest{Payload: "x", Priority: 10})
	assert.ErrorIs(t, err, engine.ErrInvalidArgument)
	assert.Empty(t, svc.ListAuditEntries())
}
