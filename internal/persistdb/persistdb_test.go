package persistdb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mqscope/mqscope/internal/core/engine"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	SetDbPath(filepath.Join(t.TempDir(), "mqscope.db"))
	require.NoError(t, InitDB())
	require.NoError(t, AddDefaultRoles())
	t.Cleanup(func() { _ = CloseDB() })
}

func TestUserRoundTrip(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, AddUser(UserCreateDTO{Username: "alice", Password: "s3cret", RoleID: RoleAdmin}))

	u, err := GetUserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, RoleAdmin, u.RoleID)
	// The stored hash is never the plaintext.
	assert.NotEqual(t, "s3cret", u.PasswordHash)
}

func TestAddUserRejectsDuplicateUsername(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, AddUser(UserCreateDTO{Username: "alice", Password: "one", RoleID: RoleAdmin}))
	assert.Error(t, AddUser(UserCreateDTO{Username: "alice", Password: "two", RoleID: RoleViewer}))
}

func TestAuthenticateUser(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, AddUser(UserCreateDTO{Username: "alice", Password: "s3cret", RoleID: RoleAdmin}))

	u, err := AuthenticateUser("alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	_, err = AuthenticateUser("alice", "wrong")
	assert.Error(t, err)
	_, err = AuthenticateUser("bob", "s3cret")
	assert.Error(t, err)
}

func TestConnectionRoundTrip(t *testing.T) {
	setupTestDB(t)

	cfg := engine.ConnectionConfig{
		ID:           "qm1",
		Name:         "dev box",
		QueueManager: "QM1",
		Host:         "localhost",
		Port:         1414,
		Channel:      "DEV.APP.SVRCONN",
		User:         "app",
	}
	require.NoError(t, SaveConnection(cfg))

	configs, err := ListConnections()
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, cfg, configs[0])

	// Upsert replaces in place.
	cfg.Host = "mq.example.com"
	require.NoError(t, SaveConnection(cfg))
	configs, err = ListConnections()
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, "mq.example.com", configs[0].Host)

	require.NoError(t, DeleteConnection("qm1"))
	configs, err = ListConnections()
	require.NoError(t, err)
	assert.Empty(t, configs)
}
