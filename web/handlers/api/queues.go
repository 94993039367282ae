package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mqscope/mqscope/internal/core/management"
	"github.com/mqscope/mqscope/internal/core/models"
)

// ListQueues godoc
// @Summary List queues
// @Description Get the cached queue catalog for a connection
// @Tags queues
// @Accept json
// @Produce json
// @Param id path string true "Connection id"
// @Success 200 {object} models.QueueListResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.UnauthorizedErrorResponse "Missing or invalid JWT token"
// @Router /connections/{id}/queues [get]
// @Security BearerAuth
func ListQueues(c *fiber.Ctx, svc management.InspectorService) error {
	queues, err := svc.ListQueues(c.Params("id"))
	if err != nil {
		return c.Status(httpStatus(err)).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(models.QueueListResponse{
		Queues: queues,
	})
}

// RefreshQueues godoc
// @Summary Refresh the queue catalog
// @Description Re-enumerate the queues on the queue manager and return the fresh snapshot
// @Tags queues
// @Accept json
// @Produce json
// @Param id path string true "Connection id"
// @Success 200 {object} models.QueueListResponse
// @Failure 401 {object} models.UnauthorizedErrorResponse "Missing or invalid JWT token"
// @Failure 409 {object} models.ErrorResponse "Connection is not connected"
// @Router /connections/{id}/queues/refresh [post]
// @Security BearerAuth
func RefreshQueues(c *fiber.Ctx, svc management.InspectorService) error {
	queues, err := svc.RefreshQueues(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(httpStatus(err)).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(models.QueueListResponse{
		Queues: queues,
	})
}

// CreateQueue godoc
// @Summary Create a queue
// @Description Define a new local queue on the queue manager
// @Tags queues
// @Accept json
// @Produce json
// @Param id path string true "Connection id"
// @Param queue body models.CreateQueueRequest true "Queue to create"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.UnauthorizedErrorResponse "Missing or invalid JWT token"
// @Failure 409 {object} models.ErrorResponse "Connection is not connected"
// @Router /connections/{id}/queues [post]
// @Security BearerAuth
func CreateQueue(c *fiber.Ctx, svc management.InspectorService) error {
	var request models.CreateQueueRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "invalid request body: " + err.Error(),
		})
	}
	if request.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "queue name is required",
		})
	}
	if err := svc.CreateQueue(c.Context(), c.Params("id"), request); err != nil {
		return c.Status(httpStatus(err)).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(models.SuccessResponse{
		Message: "Queue created successfully",
	})
}

// DeleteQueue godoc
// @Summary Delete a queue
// @Description Remove a queue from the queue manager
// @Tags queues
// @Accept json
// @Produce json
// @Param id path string true "Connection id"
// @Param queue path string true "Queue name"
// @Success 204 {object} nil
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.UnauthorizedErrorResponse "Missing or invalid JWT token"
// @Failure 409 {object} models.ErrorResponse "Connection is not connected"
// @Router /connections/{id}/queues/{queue} [delete]
// @Security BearerAuth
func DeleteQueue(c *fiber.Ctx, svc management.InspectorService) error {
	if err := svc.DeleteQueue(c.Context(), c.Params("id"), c.Params("queue")); err != nil {
		return c.Status(httpStatus(err)).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PurgeQueue godoc
// @Summary Purge a queue
// @Description Destructively drain every message and report the removed count
// @Tags queues
// @Accept json
// @Produce json
// @Param id path string true "Connection id"
// @Param queue path string true "Queue name"
// @Success 200 {object} models.PurgeResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.UnauthorizedErrorResponse "Missing or invalid JWT token"
// @Failure 409 {object} models.ErrorResponse "Connection is not connected"
// @Router /connections/{id}/queues/{queue}/content [delete]
// @Security BearerAuth
func PurgeQueue(c *fiber.Ctx, svc management.InspectorService) error {
	removed, err := svc.PurgeQueue(c.Context(), c.Params("id"), c.Params("queue"))
	if err != nil {
		return c.Status(httpStatus(err)).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(models.PurgeResponse{
		Removed: removed,
	})
}
