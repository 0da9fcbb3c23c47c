package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/EduplannerDev/Eduplanner-sub001/app/config"
	"github.com/EduplannerDev/Eduplanner-sub001/app/database"
	"github.com/EduplannerDev/Eduplanner-sub001/app/routes/activities"
	"github.com/EduplannerDev/Eduplanner-sub001/app/routes/attendance"
	"github.com/EduplannerDev/Eduplanner-sub001/app/routes/auth"
	"github.com/EduplannerDev/Eduplanner-sub001/app/routes/dashboard"
	"github.com/EduplannerDev/Eduplanner-sub001/app/routes/grades"
	"github.com/EduplannerDev/Eduplanner-sub001/app/routes/groups"
	"github.com/EduplannerDev/Eduplanner-sub001/app/routes/lessonplans"
	"github.com/EduplannerDev/Eduplanner-sub001/app/routes/messages"
	"github.com/EduplannerDev/Eduplanner-sub001/app/routes/planteles"
	"github.com/EduplannerDev/Eduplanner-sub001/app/routes/students"
	"github.com/EduplannerDev/Eduplanner-sub001/app/services"
)

// customErrorHandler renders every unhandled error as JSON.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	cfg := config.Load()

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	issuer := auth.NewTokenIssuer(cfg.JWTSecret)

	// Start background scheduler
	services.StartScheduler(db)

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Routes
	auth.SetupAuthRoutes(app, db, issuer)
	planteles.SetupPlantelesRoutes(app, db, issuer)
	groups.SetupGroupsRoutes(app, db, issuer)
	students.SetupStudentsRoutes(app, db, issuer)
	activities.SetupActivitiesRoutes(app, db, issuer)
	grades.SetupGradesRoutes(app, db, issuer)
	attendance.SetupAttendanceRoutes(app, db, issuer)
	messages.SetupMessagesRoutes(app, db, issuer)
	lessonplans.SetupLessonPlansRoutes(app, db, issuer)
	dashboard.SetupDashboardRoutes(app, db, issuer)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	log.Println("Server starting on :" + cfg.AppPort)
	log.Fatal(app.Listen(":" + cfg.AppPort))
}
