package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mqscope/mqscope/internal/core/management"
	"github.com/mqscope/mqscope/internal/core/models"
)

// BrowseMessages godoc
// @Summary Browse a queue
// @Description Non-destructively list the messages on a queue, head first
// @Tags messages
// @Accept json
// @Produce json
// @Param id path string true "Connection id"
// @Param queue path string true "Queue name"
// @Success 200 {object} models.MessageListResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.UnauthorizedErrorResponse "Missing or invalid JWT token"
// @Failure 409 {object} models.ErrorResponse "Connection is not connected"
// @Router /connections/{id}/queues/{queue}/messages [get]
// @Security BearerAuth
func BrowseMessages(c *fiber.Ctx, svc management.InspectorService) error {
	messages, err := svc.BrowseMessages(c.Context(), c.Params("id"), c.Params("queue"))
	if err != nil {
		return c.Status(httpStatus(err)).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(models.MessageListResponse{
		Messages: messages,
	})
}

// DeleteMessage godoc
// @Summary Delete a message
// @Description Destructively remove the message with the given hex id
// @Tags messages
// @Accept json
// @Produce json
// @Param id path string true "Connection id"
// @Param queue path string true "Queue name"
// @Param msgId path string true "Hex-encoded message id"
// @Success 204 {object} nil
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.UnauthorizedErrorResponse "Missing or invalid JWT token"
// @Failure 404 {object} models.ErrorResponse "Message not found"
// @Router /connections/{id}/queues/{queue}/messages/{msgId} [delete]
// @Security BearerAuth
func DeleteMessage(c *fiber.Ctx, svc management.InspectorService) error {
	if err := svc.DeleteMessage(c.Context(), c.Params("id"), c.Params("queue"), c.Params("msgId")); err != nil {
		return c.Status(httpStatus(err)).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SendMessage godoc
// @Summary Send a message
// @Description Put one message on a queue
// @Tags messages
// @Accept json
// @Produce json
// @Param id path string true "Connection id"
// @Param queue path string true "Queue name"
// @Param message body models.SendMessageRequest true "Message to send"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Invalid body or priority out of range"
// @Failure 401 {object} models.UnauthorizedErrorResponse "Missing or invalid JWT token"
// @Failure 409 {object} models.ErrorResponse "Connection is not connected"
// @Router /connections/{id}/queues/{queue}/messages [post]
// @Security BearerAuth
func SendMessage(c *fiber.Ctx, svc management.InspectorService) error {
	var request models.SendMessageRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "invalid request body: " + err.Error(),
		})
	}
	if err := svc.SendMessage(c.Context(), c.Params("id"), c.Params("queue"), request); err != nil {
		return c.Status(httpStatus(err)).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(models.SuccessResponse{
		Message: "Message sent",
	})
}
