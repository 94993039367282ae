package management

import (
	"github.com/mqscope/mqscope/internal/core/models"
)

// ListAuditEntries returns the audit trail, most recent first.
func (s *Service) ListAuditEntries() []models.AuditEntryDTO {
	entries := s.engine.AuditLog()
	dtos := make([]models.AuditEntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = models.AuditEntryDTO{
			ID:           e.ID,
			Timestamp:    e.Timestamp,
			Action:       string(e.Action),
			Resource:     e.Resource,
			Detail:       e.Detail,
			QueueManager: e.QueueManager,
			Actor:        e.Actor,
		}
	}
	return dtos
}

// ExportAudit writes the audit trail to path.
func (s *Service) ExportAudit(path string) error {
	return s.engine.ExportAuditLog(path)
}
