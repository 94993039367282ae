package management

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mqscope/mqscope/internal/core/engine"
	"github.com/mqscope/mqscope/internal/core/models"
)

// ListConnections returns every registered connection with its state.
func (s *Service) ListConnections() []models.ConnectionDTO {
	configs := s.engine.Connections()
	dtos := make([]models.ConnectionDTO, 0, len(configs))
	for _, cfg := range configs {
		state, err := s.engine.ConnectionState(cfg.ID)
		if err != nil {
			// Removed concurrently; skip it.
			continue
		}
		dtos = append(dtos, connectionToDTO(cfg, state))
	}
	return dtos
}

func (s *Service) GetConnection(id string) (*models.ConnectionDTO, error) {
	state, err := s.engine.ConnectionState(id)
	if err != nil {
		return nil, err
	}
	for _, cfg := range s.engine.Connections() {
		if cfg.ID == id {
			dto := connectionToDTO(cfg, state)
			return &dto, nil
		}
	}
	return nil, fmt.Errorf("connection '%s' not found", id)
}

// CreateConnection registers a connection. The password, when given, goes to
// the secrets store under the connection id.
func (s *Service) CreateConnection(req models.CreateConnectionRequest) (*models.ConnectionDTO, error) {
	cfg := engine.ConnectionConfig{
		ID:           req.ID,
		Name:         req.Name,
		QueueManager: req.QueueManager,
		Host:         req.Host,
		Port:         req.Port,
		Channel:      req.Channel,
		User:         req.User,
	}
	// Normalize up front so the persisted row matches what the engine holds.
	cfg.Normalize()
	if err := s.engine.AddConnection(cfg); err != nil {
		return nil, err
	}
	if req.Password != "" {
		if err := s.secrets.SetPassword(req.ID, req.Password); err != nil {
			return nil, fmt.Errorf("storing password: %w", err)
		}
	}
	if s.store != nil {
		if err := s.store.SaveConnection(cfg); err != nil {
			log.Warn().Err(err).Str("connection", req.ID).Msg("Failed to persist connection")
		}
	}
	return s.GetConnection(req.ID)
}

func (s *Service) DeleteConnection(id string) error {
	if err := s.engine.RemoveConnection(id); err != nil {
		return err
	}
	if s.store != nil {
		if err := s.store.DeleteConnection(id); err != nil {
			log.Warn().Err(err).Str("connection", id).Msg("Failed to remove persisted connection")
		}
	}
	return s.secrets.DeletePassword(id)
}

func (s *Service) Connect(ctx context.Context, id string) (*models.ConnectionDTO, error) {
	if _, err := s.engine.Connect(ctx, id); err != nil {
		return nil, err
	}
	return s.GetConnection(id)
}

func (s *Service) Disconnect(ctx context.Context, id string) error {
	return s.engine.Disconnect(ctx, id)
}

func connectionToDTO(cfg engine.ConnectionConfig, state engine.ConnectionState) models.ConnectionDTO {
	dto := models.ConnectionDTO{
		ID:             cfg.ID,
		Name:           cfg.Name,
		QueueManager:   cfg.QueueManager,
		Host:           cfg.Host,
		Port:           cfg.Port,
		Channel:        cfg.Channel,
		User:           cfg.User,
		State:          state.Kind.String(),
		StateChangedAt: state.ChangedAt,
	}
	if state.Err != nil {
		dto.StateError = state.Err.Error()
	}
	return dto
}
