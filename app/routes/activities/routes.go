package activities

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
	"github.com/EduplannerDev/Eduplanner-sub001/app/routes/auth"
)

// SetupActivitiesRoutes registers activity management routes.
func SetupActivitiesRoutes(app *fiber.App, db *sql.DB, issuer *auth.TokenIssuer) {
	api := app.Group("/api")
	api.Use(auth.Middleware(db, issuer))

	api.Get("/groups/:id/activities", func(c *fiber.Ctx) error { return GetActivitiesAPI(c, db) })
	api.Get("/activities/:id", func(c *fiber.Ctx) error { return GetActivityAPI(c, db) })

	manage := api.Group("/activities", auth.RequireRole(models.RoleTeacher, models.RoleDirector))
	manage.Post("/", func(c *fiber.Ctx) error { return CreateActivityAPI(c, db) })
	manage.Put("/:id", func(c *fiber.Ctx) error { return UpdateActivityAPI(c, db) })
	manage.Delete("/:id", func(c *fiber.Ctx) error { return DeleteActivityAPI(c, db) })
}
