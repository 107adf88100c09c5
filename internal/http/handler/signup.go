package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"docqa/internal/users"
)

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupResponse struct {
	Message string     `json:"message"`
	Data    signupData `json:"data"`
}

type signupData struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Signup delegates account creation to the external user-management
// collaborator. A created-but-unconfirmed account is reported as a failure.
func Signup(userSvc users.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req signupRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}
		if req.Email == "" || req.Password == "" {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "email and password are required")
		}

		user, err := userSvc.Create(c.UserContext(), req.Email, req.Password)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "PROCESSING_ERROR", "user creation failed")
		}
		if user.ConfirmedAt.IsZero() {
			return writeError(c, fiber.StatusBadRequest, "SIGNUP_FAILED", "user creation failed")
		}

		return c.JSON(signupResponse{
			Message: "User created successfully",
			Data: signupData{
				ID:        user.ID,
				Email:     user.Email,
				CreatedAt: user.CreatedAt,
			},
		})
	}
}
