package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mqscope/mqscope/internal/core/management"
	"github.com/mqscope/mqscope/internal/core/models"
)

// ListConnections godoc
// @Summary List all connections
// @Description Get every registered queue-manager connection with its state
// @Tags connections
// @Accept json
// @Produce json
// @Success 200 {object} models.ConnectionListResponse
// @Failure 401 {object} models.UnauthorizedErrorResponse "Missing or invalid JWT token"
// @Router /connections [get]
// @Security BearerAuth
func ListConnections(c *fiber.Ctx, svc management.InspectorService) error {
	return c.Status(fiber.StatusOK).JSON(models.ConnectionListResponse{
		Connections: svc.ListConnections(),
	})
}

// GetConnection godoc
// @Summary Get a connection
// @Description Get one connection by id
// @Tags connections
// @Accept json
// @Produce json
// @Param id path string true "Connection id"
// @Success 200 {object} models.ConnectionDTO
// @Failure 401 {object} models.UnauthorizedErrorResponse "Missing or invalid JWT token"
// @Failure 404 {object} models.ErrorResponse
// @Router /connections/{id} [get]
// @Security BearerAuth
func GetConnection(c *fiber.Ctx, svc management.InspectorService) error {
	dto, err := svc.GetConnection(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(*dto)
}

// CreateConnection godoc
// @Summary Register a connection
// @Description Register a queue-manager connection; the password goes to the secrets store
// @Tags connections
// @Accept json
// @Produce json
// @Param connection body models.CreateConnectionRequest true "Connection to register"
// @Success 201 {object} models.ConnectionDTO
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.UnauthorizedErrorResponse "Missing or invalid JWT token"
// @Router /connections [post]
// @Security BearerAuth
func CreateConnection(c *fiber.Ctx, svc management.InspectorService) error {
	var request models.CreateConnectionRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "invalid request body: " + err.Error(),
		})
	}
	dto, err := svc.CreateConnection(request)
	if err != nil {
		return c.Status(httpStatus(err)).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(*dto)
}

// DeleteConnection godoc
// @Summary Unregister a connection
// @Description Unregister a disconnected connection and drop its stored password
// @Tags connections
// @Accept json
// @Produce json
// @Param id path string true "Connection id"
// @Success 204 {object} nil
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.UnauthorizedErrorResponse "Missing or invalid JWT token"
// @Router /connections/{id} [delete]
// @Security BearerAuth
func DeleteConnection(c *fiber.Ctx, svc management.InspectorService) error {
	if err := svc.DeleteConnection(c.Params("id")); err != nil {
		return c.Status(httpStatus(err)).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Connect godoc
// @Summary Connect to a queue manager
// @Description Dial the queue manager for the given connection id
// @Tags connections
// @Accept json
// @Produce json
// @Param id path string true "Connection id"
// @Success 200 {object} models.ConnectionDTO
// @Failure 401 {object} models.UnauthorizedErrorResponse "Missing or invalid JWT token"
// @Failure 409 {object} models.ErrorResponse "A connect is already in flight"
// @Failure 500 {object} models.ErrorResponse
// @Router /connections/{id}/connect [post]
// @Security BearerAuth
func Connect(c *fiber.Ctx, svc management.InspectorService) error {
	dto, err := svc.Connect(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(httpStatus(err)).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(*dto)
}

// Disconnect godoc
// @Summary Disconnect from a queue manager
// @Description Hang up the connection; disconnecting a disconnected id is a no-op
// @Tags connections
// @Accept json
// @Produce json
// @Param id path string true "Connection id"
// @Success 200 {object} models.SuccessResponse
// @Failure 401 {object} models.UnauthorizedErrorResponse "Missing or invalid JWT token"
// @Failure 409 {object} models.ErrorResponse "A connect is already in flight"
// @Router /connections/{id}/disconnect [post]
// @Security BearerAuth
func Disconnect(c *fiber.Ctx, svc management.InspectorService) error {
	if err := svc.Disconnect(c.Context(), c.Params("id")); err != nil {
		return c.Status(httpStatus(err)).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(models.SuccessResponse{
		Message: "Disconnected",
	})
}
