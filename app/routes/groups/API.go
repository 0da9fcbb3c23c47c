package groups

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

// GetGruposAPI lists grupos, scoped by query: ?plantel_id= for a plantel,
// otherwise the authenticated teacher's own grupos.
func GetGruposAPI(c *fiber.Ctx, db *sql.DB) error {
	plantelID := c.Query("plantel_id")

	var grupos []*models.Grupo
	var err error
	if plantelID != "" {
		grupos, err = database.GetGruposByPlantel(db, plantelID)
	} else {
		grupos, err = database.GetGruposByTeacher(db, auth.CurrentUser(c).ID)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch grupos"})
	}

	return c.JSON(fiber.Map{
		"grupos": grupos,
		"count":  len(grupos),
	})
}

func GetGrupoAPI(c *fiber.Ctx, db *sql.DB) error {
	grupo, err := database.GetGrupoByID(db, c.Params("id"))
	if err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Grupo not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch grupo"})
	}

	students, err := database.GetStudentsByGrupo(db, grupo.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"grupo":    grupo,
		"students": students,
	})
}

// GetRosterAPI returns the active student roster of a grupo.
func GetRosterAPI(c *fiber.Ctx, db *sql.DB) error {
	students, err := database.GetStudentsByGrupo(db, c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

type grupoRequest struct {
	PlantelID    string  `json:"plantel_id" validate:"required,uuid"`
	TeacherID    *string `json:"teacher_id" validate:"omitempty,uuid"`
	Name         string  `json:"name" validate:"required"`
	GradeLevel   string  `json:"grade_level"`
	CicloEscolar string  `json:"ciclo_escolar"`
}

func CreateGrupoAPI(c *fiber.Ctx, db *sql.DB) error {
	var req grupoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	grupo := &models.Grupo{
		PlantelID:    req.PlantelID,
		TeacherID:    req.TeacherID,
		Name:         req.Name,
		GradeLevel:   req.GradeLevel,
		CicloEscolar: req.CicloEscolar,
	}
	if err := database.CreateGrupo(db, grupo); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create grupo"})
	}

	return c.Status(201).JSON(fiber.Map{"grupo": grupo})
}

func UpdateGrupoAPI(c *fiber.Ctx, db *sql.DB) error {
	var req grupoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	grupo := &models.Grupo{
		ID:           c.Params("id"),
		TeacherID:    req.TeacherID,
		Name:         req.Name,
		GradeLevel:   req.GradeLevel,
		CicloEscolar: req.CicloEscolar,
	}
	if err := database.UpdateGrupo(db, grupo); err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Grupo not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update grupo"})
	}

	return c.JSON(fiber.Map{"message": "Grupo updated successfully"})
}

func DeleteGrupoAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeactivateGrupo(db, c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to deactivate grupo"})
	}
	return c.JSON(fiber.Map{"message": "Grupo deactivated"})
}
