package management

import (
	"context"

	"github.com/mqscope/mqscope/internal/core/engine"
	"github.com/mqscope/mqscope/internal/core/models"
)

// ListQueues returns the cached catalog for id, as last refreshed.
func (s *Service) ListQueues(id string) ([]models.QueueDTO, error) {
	queues, err := s.engine.Queues(id)
	if err != nil {
		return nil, err
	}
	return queuesToDTO(queues), nil
}

// RefreshQueues re-enumerates the catalog and returns the fresh snapshot.
func (s *Service) RefreshQueues(ctx context.Context, id string) ([]models.QueueDTO, error) {
	if err := s.engine.RefreshQueues(ctx, id); err != nil {
		return nil, err
	}
	return s.ListQueues(id)
}

func (s *Service) CreateQueue(ctx context.Context, id string, req models.CreateQueueRequest) error {
	return s.engine.CreateQueue(ctx, id, req.Name)
}

func (s *Service) DeleteQueue(ctx context.Context, id, queue string) error {
	return s.engine.DeleteQueue(ctx, id, queue)
}

func (s *Service) PurgeQueue(ctx context.Context, id, queue string) (int, error) {
	return s.engine.PurgeQueue(ctx, id, queue)
}

func queuesToDTO(queues []engine.Queue) []models.QueueDTO {
	dtos := make([]models.QueueDTO, len(queues))
	for i, q := range queues {
		pct, known := q.DepthPercent()
		dtos[i] = models.QueueDTO{
			Name:         q.Name,
			Type:         q.Type.String(),
			CurrentDepth: q.CurrentDepth,
			MaxDepth:     q.MaxDepth,
			DepthPercent: pct,
			DepthKnown:   known,
			DepthStatus:  q.DepthStatus(),
			InhibitGet:   q.InhibitGet,
			InhibitPut:   q.InhibitPut,
			Degraded:     q.Degraded,
		}
	}
	return dtos
}
