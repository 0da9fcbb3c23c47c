package auth

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/EduplannerDev/Eduplanner-sub001/app/database"
	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
)

// Middleware validates the JWT and loads the user with their active plantel
// assignments into the request context.
func Middleware(db *sql.DB, issuer *TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var tokenString string

		// First try cookie
		tokenString = c.Cookies("jwt_token")

		// If no cookie, try Authorization header
		if tokenString == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				tokenString = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if tokenString == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Authentication required"})
		}

		claims, err := issuer.Validate(tokenString)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		user, err := database.GetUserByID(db, claims.UserID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "User not found"})
		}

		assignments, err := database.GetUserAssignments(db, user.ID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to load assignments"})
		}
		user.Assignments = assignments

		c.Locals("user", user)
		return c.Next()
	}
}

// RequireRole restricts a route to users holding one of the given roles at
// any plantel.
func RequireRole(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		for _, role := range roles {
			if user.HasRole(role) {
				return c.Next()
			}
		}
		return c.Status(403).JSON(fiber.Map{"error": "Access denied"})
	}
}

// CurrentUser returns the authenticated user set by Middleware.
func CurrentUser(c *fiber.Ctx) *models.User {
	return c.Locals("user").(*models.User)
}
