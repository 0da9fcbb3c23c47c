package messages

import (
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/EduplannerDev/Eduplanner-sub001/app/database"
	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
	"github.com/EduplannerDev/Eduplanner-sub001/app/routes/auth"
)

var validate = validator.New()

func GetMessagesAPI(c *fiber.Ctx, db *sql.DB) error {
	user := auth.CurrentUser(c)

	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	messages, err := database.GetMessagesForUser(db, user.ID, limit, offset)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch messages"})
	}

	unread, err := database.CountUnreadMessages(db, user.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to count unread messages"})
	}

	return c.JSON(fiber.Map{
		"messages": messages,
		"unread":   unread,
	})
}

func SendMessageAPI(c *fiber.Ctx, db *sql.DB) error {
	type SendRequest struct {
		PlantelID   *string `json:"plantel_id" validate:"omitempty,uuid"`
		RecipientID string  `json:"recipient_id" validate:"required,uuid"`
		Subject     string  `json:"subject" validate:"required"`
		Body        string  `json:"body" validate:"required"`
	}

	var req SendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	sender := auth.CurrentUser(c)
	if req.RecipientID == sender.ID {
		return c.Status(400).JSON(fiber.Map{"error": "Cannot send a message to yourself"})
	}

	if _, err := database.GetUserByID(db, req.RecipientID); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Recipient not found"})
	}

	message := &models.Message{
		PlantelID:   req.PlantelID,
		SenderID:    sender.ID,
		RecipientID: req.RecipientID,
		Subject:     req.Subject,
		Body:        req.Body,
	}
	if err := database.CreateMessage(db, message); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to send message"})
	}

	return c.Status(201).JSON(fiber.Map{"message": message})
}

func MarkReadAPI(c *fiber.Ctx, db *sql.DB) error {
	user := auth.CurrentUser(c)

	err := database.MarkMessageRead(db, c.Params("id"), user.ID)
	if err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Message not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to mark message read"})
	}

	return c.JSON(fiber.Map{"message": "Marked as read"})
}
