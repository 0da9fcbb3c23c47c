package auth

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes registers login/logout and password management.
func SetupAuthRoutes(app *fiber.App, db *sql.DB, issuer *TokenIssuer) {
	group := app.Group("/auth")

	// Public routes
	group.Post("/login", func(c *fiber.Ctx) error { return LoginAPI(c, db, issuer) })
	group.Post("/logout", LogoutAPI)

	// Protected routes
	group.Use(Middleware(db, issuer))
	group.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user": CurrentUser(c)})
	})
	group.Post("/change-password", func(c *fiber.Ctx) error { return ChangePasswordAPI(c, db) })
}
