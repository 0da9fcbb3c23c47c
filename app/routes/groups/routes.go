package groups

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
	"github.com/EduplannerDev/Eduplanner-sub001/app/routes/auth"
)

// SetupGroupsRoutes registers grupo management routes.
func SetupGroupsRoutes(app *fiber.App, db *sql.DB, issuer *auth.TokenIssuer) {
	api := app.Group("/api/groups")
	api.Use(auth.Middleware(db, issuer))

	api.Get("/", func(c *fiber.Ctx) error { return GetGruposAPI(c, db) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetGrupoAPI(c, db) })
	api.Get("/:id/students", func(c *fiber.Ctx) error { return GetRosterAPI(c, db) })

	manage := api.Group("", auth.RequireRole(models.RoleDirector, models.RoleAdministrator))
	manage.Post("/", func(c *fiber.Ctx) error { return CreateGrupoAPI(c, db) })
	manage.Put("/:id", func(c *fiber.Ctx) error { return UpdateGrupoAPI(c, db) })
	manage.Delete("/:id", func(c *fiber.Ctx) error { return DeleteGrupoAPI(c, db) })
}
