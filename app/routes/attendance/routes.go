package attendance

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
	"github.com/EduplannerDev/Eduplanner-sub001/app/routes/auth"
)

// SetupAttendanceRoutes registers attendance marking and summary routes.
func SetupAttendanceRoutes(app *fiber.App, db *sql.DB, issuer *auth.TokenIssuer) {
	api := app.Group("/api")
	api.Use(auth.Middleware(db, issuer))

	api.Get("/groups/:id/attendance", func(c *fiber.Ctx) error { return GetDayAttendanceAPI(c, db) })
	api.Get("/groups/:id/attendance/history", func(c *fiber.Ctx) error { return GetAttendanceHistoryAPI(c, db) })
	api.Get("/students/:id/attendance", func(c *fiber.Ctx) error { return GetStudentAttendanceAPI(c, db) })

	marking := api.Group("", auth.RequireRole(models.RoleTeacher, models.RoleDirector))
	marking.Post("/groups/:id/attendance", func(c *fiber.Ctx) error { return MarkAttendanceAPI(c, db) })
}
