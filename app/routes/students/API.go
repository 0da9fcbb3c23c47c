package students

import (
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/EduplannerDev/Eduplanner-sub001/app/database"
	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
)

var validate = validator.New()

// GetStudentsAPI lists students with optional search, scope, sorting and
// pagination query parameters.
func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	filters := database.StudentFilters{
		Search:    c.Query("search"),
		PlantelID: c.Query("plantel_id"),
		GrupoID:   c.Query("grupo_id"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Limit:     c.QueryInt("limit", 50),
		Offset:    c.QueryInt("offset", 0),
	}

	students, total, err := database.GetStudentsWithFilters(db, filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students": students,
		"total":    total,
		"limit":    filters.Limit,
		"offset":   filters.Offset,
	})
}

func GetStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	student, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	return c.JSON(fiber.Map{"student": student})
}

type studentRequest struct {
	PlantelID    string  `json:"plantel_id" validate:"required,uuid"`
	GrupoID      *string `json:"grupo_id" validate:"omitempty,uuid"`
	FirstName    string  `json:"first_name" validate:"required"`
	LastName     string  `json:"last_name" validate:"required"`
	ListNumber   *int    `json:"list_number" validate:"omitempty,min=1"`
	TutorName    string  `json:"tutor_name"`
	TutorContact string  `json:"tutor_contact"`
}

func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	student := &models.Student{
		PlantelID:    req.PlantelID,
		GrupoID:      req.GrupoID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		ListNumber:   req.ListNumber,
		TutorName:    req.TutorName,
		TutorContact: req.TutorContact,
	}
	if err := database.CreateStudent(db, student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(201).JSON(fiber.Map{"student": student})
}

func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	student := &models.Student{
		ID:           c.Params("id"),
		GrupoID:      req.GrupoID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		ListNumber:   req.ListNumber,
		TutorName:    req.TutorName,
		TutorContact: req.TutorContact,
	}
	if err := database.UpdateStudent(db, student); err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(fiber.Map{"message": "Student updated successfully"})
}

func DeleteStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeactivateStudent(db, c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to deactivate student"})
	}
	return c.JSON(fiber.Map{"message": "Student deactivated"})
}
