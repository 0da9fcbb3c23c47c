package lessonplans

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
	"github.com/EduplannerDev/Eduplanner-sub001/app/routes/auth"
)

// SetupLessonPlansRoutes registers lesson plan and exam routes.
func SetupLessonPlansRoutes(app *fiber.App, db *sql.DB, issuer *auth.TokenIssuer) {
	api := app.Group("/api")
	api.Use(auth.Middleware(db, issuer))
	api.Use(auth.RequireRole(models.RoleTeacher, models.RoleDirector))

	api.Get("/lesson-plans", func(c *fiber.Ctx) error { return GetLessonPlansAPI(c, db) })
	api.Get("/lesson-plans/:id", func(c *fiber.Ctx) error { return GetLessonPlanAPI(c, db) })
	api.Post("/lesson-plans", func(c *fiber.Ctx) error { return CreateLessonPlanAPI(c, db) })
	api.Put("/lesson-plans/:id", func(c *fiber.Ctx) error { return UpdateLessonPlanAPI(c, db) })

	api.Get("/groups/:id/exams", func(c *fiber.Ctx) error { return GetExamsAPI(c, db) })
	api.Post("/exams", func(c *fiber.Ctx) error { return CreateExamAPI(c, db) })
}
