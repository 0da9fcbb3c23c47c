package lessonplans

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/EduplannerDev/Eduplanner-sub001/app/database"
	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
	"github.com/EduplannerDev/Eduplanner-sub001/app/routes/auth"
)

var validate = validator.New()

func GetLessonPlansAPI(c *fiber.Ctx, db *sql.DB) error {
	plans, err := database.GetLessonPlansByTeacher(db, auth.CurrentUser(c).ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch lesson plans"})
	}

	return c.JSON(fiber.Map{
		"lesson_plans": plans,
		"count":        len(plans),
	})
}

func GetLessonPlanAPI(c *fiber.Ctx, db *sql.DB) error {
	plan, err := database.GetLessonPlanByID(db, c.Params("id"))
	if err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Lesson plan not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch lesson plan"})
	}

	return c.JSON(fiber.Map{"lesson_plan": plan})
}

type lessonPlanRequest struct {
	GrupoID string `json:"grupo_id" validate:"required,uuid"`
	Title   string `json:"title" validate:"required"`
	Subject string `json:"subject"`
	Content string `json:"content"`
}

func CreateLessonPlanAPI(c *fiber.Ctx, db *sql.DB) error {
	var req lessonPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	plan := &models.LessonPlan{
		GrupoID:   req.GrupoID,
		TeacherID: auth.CurrentUser(c).ID,
		Title:     req.Title,
		Subject:   req.Subject,
		Content:   req.Content,
	}
	if err := database.CreateLessonPlan(db, plan); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create lesson plan"})
	}

	return c.Status(201).JSON(fiber.Map{"lesson_plan": plan})
}

func UpdateLessonPlanAPI(c *fiber.Ctx, db *sql.DB) error {
	var req lessonPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	plan := &models.LessonPlan{
		ID:      c.Params("id"),
		Title:   req.Title,
		Subject: req.Subject,
		Content: req.Content,
	}
	if err := database.UpdateLessonPlan(db, plan); err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Lesson plan not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update lesson plan"})
	}

	return c.JSON(fiber.Map{"message": "Lesson plan updated successfully"})
}

func GetExamsAPI(c *fiber.Ctx, db *sql.DB) error {
	exams, err := database.GetExamsByGrupo(db, c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch exams"})
	}

	return c.JSON(fiber.Map{
		"exams": exams,
		"count": len(exams),
	})
}

func CreateExamAPI(c *fiber.Ctx, db *sql.DB) error {
	type ExamRequest struct {
		GrupoID      string          `json:"grupo_id" validate:"required,uuid"`
		LessonPlanID *string         `json:"lesson_plan_id" validate:"omitempty,uuid"`
		Title        string          `json:"title" validate:"required"`
		Questions    json.RawMessage `json:"questions" validate:"required"`
	}

	var req ExamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	exam := &models.Exam{
		GrupoID:      req.GrupoID,
		LessonPlanID: req.LessonPlanID,
		Title:        req.Title,
		Questions:    req.Questions,
	}
	if err := database.CreateExam(db, exam); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create exam"})
	}

	return c.Status(201).JSON(fiber.Map{"exam": exam})
}
