package planteles

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
	"github.com/EduplannerDev/Eduplanner-sub001/app/routes/auth"
)

// SetupPlantelesRoutes registers plantel management and assignment routes.
func SetupPlantelesRoutes(app *fiber.App, db *sql.DB, issuer *auth.TokenIssuer) {
	api := app.Group("/api/planteles")
	api.Use(auth.Middleware(db, issuer))

	api.Get("/", func(c *fiber.Ctx) error { return GetPlantelesAPI(c, db) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetPlantelAPI(c, db) })
	api.Get("/:id/occupancy", func(c *fiber.Ctx) error { return GetOccupancyAPI(c, db) })
	api.Get("/:id/assignments", func(c *fiber.Ctx) error { return GetAssignmentsAPI(c, db) })

	// Mutations are administrator-only
	admin := api.Group("", auth.RequireRole(models.RoleAdministrator))
	admin.Post("/", func(c *fiber.Ctx) error { return CreatePlantelAPI(c, db) })
	admin.Put("/:id", func(c *fiber.Ctx) error { return UpdatePlantelAPI(c, db) })
	admin.Delete("/:id", func(c *fiber.Ctx) error { return DeletePlantelAPI(c, db) })
	admin.Post("/:id/assignments", func(c *fiber.Ctx) error { return CreateAssignmentAPI(c, db) })
	admin.Delete("/:id/assignments/:userId", func(c *fiber.Ctx) error { return DeleteAssignmentAPI(c, db) })
}
