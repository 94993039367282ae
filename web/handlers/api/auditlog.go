package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mqscope/mqscope/internal/core/management"
	"github.com/mqscope/mqscope/internal/core/models"
)

// ListAuditEntries godoc
// @Summary List audit entries
// @Description Get the audit trail of destructive operations, most recent first
// @Tags audit
// @Accept json
// @Produce json
// @Success 200 {object} models.AuditListResponse
// @Failure 401 {object} models.UnauthorizedErrorResponse "Missing or invalid JWT token"
// @Router /audit [get]
// @Security BearerAuth
func ListAuditEntries(c *fiber.Ctx, svc management.InspectorService) error {
	return c.Status(fiber.StatusOK).JSON(models.AuditListResponse{
		Entries: svc.ListAuditEntries(),
	})
}

// ExportAudit godoc
// @Summary Export the audit trail
// @Description Write the audit trail to a server-side file (JSON for .json paths, text otherwise)
// @Tags audit
// @Accept json
// @Produce json
// @Param export body models.ExportAuditRequest true "Export destination"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.UnauthorizedErrorResponse "Missing or invalid JWT token"
// @Failure 500 {object} models.ErrorResponse "Export failed"
// @Router /audit/export [post]
// @Security BearerAuth
func ExportAudit(c *fiber.Ctx, svc management.InspectorService) error {
	var request models.ExportAuditRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "invalid request body: " + err.Error(),
		})
	}
	if request.Path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "export path is required",
		})
	}
	if err := svc.ExportAudit(request.Path); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(models.SuccessResponse{
		Message: "Audit log exported to " + request.Path,
	})
}
