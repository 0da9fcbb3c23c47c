package grades

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
	"github.com/EduplannerDev/Eduplanner-sub001/app/routes/auth"
)

// SetupGradesRoutes registers grade-book and grade entry routes.
func SetupGradesRoutes(app *fiber.App, db *sql.DB, issuer *auth.TokenIssuer) {
	api := app.Group("/api")
	api.Use(auth.Middleware(db, issuer))

	api.Get("/groups/:id/gradebook", func(c *fiber.Ctx) error { return GetGradebookAPI(c, db) })
	api.Get("/students/:id/average", func(c *fiber.Ctx) error { return GetStudentAverageAPI(c, db) })
	api.Get("/activities/:id/stats", func(c *fiber.Ctx) error { return GetActivityStatsAPI(c, db) })

	teacher := api.Group("/grades", auth.RequireRole(models.RoleTeacher, models.RoleDirector))
	teacher.Post("/batch", func(c *fiber.Ctx) error { return BatchSaveGradesAPI(c, db) })
	teacher.Put("/:id", func(c *fiber.Ctx) error { return UpdateGradeAPI(c, db) })
}
