package dashboard

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/EduplannerDev/Eduplanner-sub001/app/routes/auth"
)

// SetupDashboardRoutes registers the role-aware dashboard route.
func SetupDashboardRoutes(app *fiber.App, db *sql.DB, issuer *auth.TokenIssuer) {
	api := app.Group("/api/dashboard")
	api.Use(auth.Middleware(db, issuer))

	api.Get("/", func(c *fiber.Ctx) error { return GetDashboardAPI(c, db) })
}
