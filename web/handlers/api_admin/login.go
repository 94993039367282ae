package api_admin

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/mqscope/mqscope/internal/core/models"
	"github.com/mqscope/mqscope/internal/persistdb"
)

// Login godoc
// @Summary Log in
// @Description Exchange username/password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Router /login [post]
func Login(c *fiber.Ctx, jwtKey string) error {
	var request models.LoginRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "invalid request body: " + err.Error(),
		})
	}

	if err := persistdb.OpenDB(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "database unavailable",
		})
	}
	defer persistdb.CloseDB()

	user, err := persistdb.AuthenticateUser(request.Username, request.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
			Error: "Invalid credentials",
		})
	}

	claims := jwt.MapClaims{
		"sub":  user.Username,
		"role": user.RoleID,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(jwtKey))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "failed to sign token",
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.LoginResponse{
		Token: signed,
	})
}
