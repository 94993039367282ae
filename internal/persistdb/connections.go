package persistdb

import (
	"fmt"

	"github.com/mqscope/mqscope/internal/core/engine"
)

// SaveConnection upserts a queue-manager connection configuration so it
// survives restarts. Passwords never go through here; they live in the
// secrets store.
func SaveConnection(cfg engine.ConnectionConfig) error {
	_, err := db.Exec(`INSERT INTO connections (id, name, queue_manager, host, port, channel, user)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			queue_manager = excluded.queue_manager,
			host = excluded.host,
			port = excluded.port,
			channel = excluded.channel,
			user = excluded.user`,
		cfg.ID, cfg.Name, cfg.QueueManager, cfg.Host, cfg.Port, cfg.Channel, cfg.User)
	if err != nil {
		return fmt.Errorf("saving connection '%s': %w", cfg.ID, err)
	}
	return nil
}

func ListConnections() ([]engine.ConnectionConfig, error) {
	rows, err := db.Query(`SELECT id, name, queue_manager, host, port, channel, user FROM connections ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying connections: %w", err)
	}
	defer rows.Close()

	var configs []engine.ConnectionConfig
	for rows.Next() {
		var cfg engine.ConnectionConfig
		if err := rows.Scan(&cfg.ID, &cfg.Name, &cfg.QueueManager, &cfg.Host, &cfg.Port, &cfg.Channel, &cfg.User); err != nil {
			return nil, fmt.Errorf("scanning connection: %w", err)
		}
		configs = append(configs, cfg)
	}
	return configs, rows.Err()
}

func DeleteConnection(id string) error {
	if _, err := db.Exec(`DELETE FROM connections WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting connection '%s': %w", id, err)
	}
	return nil
}

// ConnectionStore exposes connection persistence as a value the management
// service can hold. Each call opens and closes the database, the same way
// the admin handlers use it.
type ConnectionStore struct{}

func (ConnectionStore) SaveConnection(cfg engine.ConnectionConfig) error {
	if err := OpenDB(); err != nil {
		return err
	}
	defer CloseDB()
	return SaveConnection(cfg)
}

func (ConnectionStore) DeleteConnection(id string) error {
	if err := OpenDB(); err != nil {
		return err
	}
	defer CloseDB()
	return DeleteConnection(id)
}
