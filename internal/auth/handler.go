package auth

import (
	"errors"

	"github.com/biz365/admin-api/internal/database"
	"github.com/biz365/admin-api/internal/response"
	"github.com/gofiber/fiber/v2"
)

func LoginHandler(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}
	problems := map[string]string{}
	if body.Email == "" {
		problems["email"] = "email is required"
	}
	if body.Password == "" {
		problems["password"] = "password is required"
	}
	if len(problems) > 0 {
		return response.ValidationError(c, problems)
	}

	user, token, err := Authenticate(database.DB, body.Email, body.Password, c.IP(), c.Get("User-Agent"))
	if err != nil {
		if errors.Is(err, ErrAccountInactive) {
			return response.Forbidden(c, "Account is not active")
		}
		if errors.Is(err, ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid email or password")
		}
		return response.InternalError(c, "Failed to sign in")
	}

	return response.Success(c, fiber.Map{
		"token": token,
		"user":  user,
	}, "Login successful")
}

// LogoutHandler exists so clients have a uniform call in both modes.
// Tokens are stateless; the client drops its copy.
func LogoutHandler(c *fiber.Ctx) error {
	return response.Success(c, nil, "Logged out successfully")
}

func MeHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	user, err := CurrentUser(userID)
	if err != nil {
		return response.Unauthorized(c, "User not found")
	}
	return response.Success(c, user, "User retrieved successfully")
}
