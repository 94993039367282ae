package api_admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mqscope/mqscope/internal/core/models"
	"github.com/mqscope/mqscope/internal/persistdb"
)

// GetUsers godoc
// @Summary List web users
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {array} persistdb.User
// @Failure 401 {object} models.UnauthorizedErrorResponse "Missing or invalid JWT token"
// @Router /admin/users [get]
// @Security BearerAuth
func GetUsers(c *fiber.Ctx) error {
	if err := persistdb.OpenDB(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "database unavailable",
		})
	}
	defer persistdb.CloseDB()

	users, err := persistdb.ListUsers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// AddUser godoc
// @Summary Add a web user
// @Tags admin
// @Accept json
// @Produce json
// @Param user body persistdb.UserCreateDTO true "User to add"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.UnauthorizedErrorResponse "Missing or invalid JWT token"
// @Router /admin/users [post]
// @Security BearerAuth
func AddUser(c *fiber.Ctx) error {
	var request persistdb.UserCreateDTO
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "invalid request body: " + err.Error(),
		})
	}
	if request.Username == "" || request.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "username and password are required",
		})
	}
	if request.RoleID == 0 {
		request.RoleID = persistdb.RoleViewer
	}

	if err := persistdb.OpenDB(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "database unavailable",
		})
	}
	defer persistdb.CloseDB()

	if err := persistdb.AddUser(request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(models.SuccessResponse{
		Message: "User added",
	})
}
