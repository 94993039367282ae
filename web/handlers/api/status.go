package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mqscope/mqscope/internal/core/engine"
)

// httpStatus maps engine error codes onto HTTP statuses.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, engine.ErrInvalidArgument):
		return fiber.StatusBadRequest
	case errors.Is(err, engine.ErrMessageNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, engine.ErrNotConnected), errors.Is(err, engine.ErrAlreadyConnecting):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
