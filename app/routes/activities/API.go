package activities

import (
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/EduplannerDev/Eduplanner-sub001/app/database"
	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
)

var validate = validator.New()

func GetActivitiesAPI(c *fiber.Ctx, db *sql.DB) error {
	activities, err := database.GetActivitiesByGrupo(db, c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch activities"})
	}

	return c.JSON(fiber.Map{
		"activities": activities,
		"count":      len(activities),
	})
}

func GetActivityAPI(c *fiber.Ctx, db *sql.DB) error {
	activity, err := database.GetActivityByID(db, c.Params("id"))
	if err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Activity not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch activity"})
	}

	return c.JSON(fiber.Map{"activity": activity})
}

type activityRequest struct {
	GrupoID      string     `json:"grupo_id" validate:"required,uuid"`
	Name         string     `json:"name" validate:"required"`
	Kind         string     `json:"kind" validate:"required"`
	DueDate      *time.Time `json:"due_date"`
	Weight       int        `json:"weight" validate:"min=0,max=100"`
	ExamID       *string    `json:"exam_id" validate:"omitempty,uuid"`
	LessonPlanID *string    `json:"lesson_plan_id" validate:"omitempty,uuid"`
}

func CreateActivityAPI(c *fiber.Ctx, db *sql.DB) error {
	var req activityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	kind := models.ActivityKind(req.Kind)
	if !kind.Valid() {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid kind. Must be exam, homework, project, participation, or other"})
	}

	activity := &models.Activity{
		GrupoID:      req.GrupoID,
		Name:         req.Name,
		Kind:         kind,
		DueDate:      req.DueDate,
		Weight:       req.Weight,
		ExamID:       req.ExamID,
		LessonPlanID: req.LessonPlanID,
	}
	if err := database.CreateActivity(db, activity); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create activity"})
	}

	return c.Status(201).JSON(fiber.Map{"activity": activity})
}

func UpdateActivityAPI(c *fiber.Ctx, db *sql.DB) error {
	var req activityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	kind := models.ActivityKind(req.Kind)
	if !kind.Valid() {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid kind. Must be exam, homework, project, participation, or other"})
	}

	activity := &models.Activity{
		ID:      c.Params("id"),
		Name:    req.Name,
		Kind:    kind,
		DueDate: req.DueDate,
		Weight:  req.Weight,
	}
	if err := database.UpdateActivity(db, activity); err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Activity not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update activity"})
	}

	return c.JSON(fiber.Map{"message": "Activity updated successfully"})
}

// DeleteActivityAPI tombstones an activity. Its grades stay queryable for
// history but drop out of averages.
func DeleteActivityAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.SoftDeleteActivity(db, c.Params("id")); err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Activity not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete activity"})
	}

	return c.JSON(fiber.Map{"message": "Activity deleted"})
}
