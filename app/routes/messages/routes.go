package messages

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/EduplannerDev/Eduplanner-sub001/app/routes/auth"
)

// SetupMessagesRoutes registers internal messaging routes.
func SetupMessagesRoutes(app *fiber.App, db *sql.DB, issuer *auth.TokenIssuer) {
	api := app.Group("/api/messages")
	api.Use(auth.Middleware(db, issuer))

	api.Get("/", func(c *fiber.Ctx) error { return GetMessagesAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return SendMessageAPI(c, db) })
	api.Put("/:id/read", func(c *fiber.Ctx) error { return MarkReadAPI(c, db) })
}
