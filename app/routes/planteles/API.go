package planteles

import (
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/EduplannerDev/Eduplanner-sub001/app/database"
	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
)

var validate = validator.New()

// parseID validates a path parameter as a UUID, rejecting malformed ids
// before they reach a query.
func parseID(c *fiber.Ctx, param string) (string, bool) {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		return "", false
	}
	return id.String(), true
}

func GetPlantelesAPI(c *fiber.Ctx, db *sql.DB) error {
	planteles, err := database.GetPlanteles(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch planteles"})
	}

	return c.JSON(fiber.Map{
		"planteles": planteles,
		"count":     len(planteles),
	})
}

func GetPlantelAPI(c *fiber.Ctx, db *sql.DB) error {
	plantelID, ok := parseID(c, "id")
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid plantel id"})
	}

	plantel, err := database.GetPlantelByID(db, plantelID)
	if err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Plantel not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch plantel"})
	}

	return c.JSON(fiber.Map{"plantel": plantel})
}

type plantelRequest struct {
	Name          string `json:"name" validate:"required"`
	CCT           string `json:"cct"`
	Address       string `json:"address"`
	CicloEscolar  string `json:"ciclo_escolar"`
	MaxUsuarios   *int   `json:"max_usuarios" validate:"omitempty,min=0"`
	MaxProfesores *int   `json:"max_profesores" validate:"omitempty,min=0"`
	MaxDirectores *int   `json:"max_directores" validate:"omitempty,min=0"`
}

func CreatePlantelAPI(c *fiber.Ctx, db *sql.DB) error {
	var req plantelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	plantel := &models.Plantel{
		Name:          req.Name,
		CCT:           req.CCT,
		Address:       req.Address,
		CicloEscolar:  req.CicloEscolar,
		MaxUsuarios:   req.MaxUsuarios,
		MaxProfesores: req.MaxProfesores,
		MaxDirectores: req.MaxDirectores,
	}

	if err := database.CreatePlantel(db, plantel); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create plantel"})
	}

	return c.Status(201).JSON(fiber.Map{"plantel": plantel})
}

func UpdatePlantelAPI(c *fiber.Ctx, db *sql.DB) error {
	var req plantelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	plantel := &models.Plantel{
		ID:            c.Params("id"),
		Name:          req.Name,
		CCT:           req.CCT,
		Address:       req.Address,
		CicloEscolar:  req.CicloEscolar,
		MaxUsuarios:   req.MaxUsuarios,
		MaxProfesores: req.MaxProfesores,
		MaxDirectores: req.MaxDirectores,
	}

	if err := database.UpdatePlantel(db, plantel); err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Plantel not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update plantel"})
	}

	return c.JSON(fiber.Map{"message": "Plantel updated successfully"})
}

func DeletePlantelAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeactivatePlantel(db, c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to deactivate plantel"})
	}
	return c.JSON(fiber.Map{"message": "Plantel deactivated"})
}

// GetOccupancyAPI returns the point-in-time occupancy snapshot for a plantel.
func GetOccupancyAPI(c *fiber.Ctx, db *sql.DB) error {
	plantelID, ok := parseID(c, "id")
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid plantel id"})
	}

	occupancy, err := database.GetOccupancy(db, plantelID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch occupancy"})
	}

	return c.JSON(fiber.Map{
		"plantel_id": plantelID,
		"occupancy":  occupancy,
	})
}

func GetAssignmentsAPI(c *fiber.Ctx, db *sql.DB) error {
	assignments, err := database.GetAssignmentsByPlantel(db, c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assignments"})
	}

	return c.JSON(fiber.Map{
		"assignments": assignments,
		"count":       len(assignments),
	})
}

// CreateAssignmentAPI assigns a user to a plantel under a role. The ceiling
// is pre-flighted against a fresh occupancy snapshot, then enforced
// authoritatively inside the activation transaction.
func CreateAssignmentAPI(c *fiber.Ctx, db *sql.DB) error {
	type AssignmentRequest struct {
		UserID string `json:"user_id" validate:"required,uuid"`
		Role   string `json:"role" validate:"required,oneof=teacher director administrator"`
	}

	plantelID, ok := parseID(c, "id")
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid plantel id"})
	}

	var req AssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	role := models.Role(req.Role)
	if !role.Valid() {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid role. Must be teacher, director, or administrator"})
	}

	plantel, err := database.GetPlantelByID(db, plantelID)
	if err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Plantel not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch plantel"})
	}

	occupancy, err := database.GetOccupancy(db, plantelID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch occupancy"})
	}

	if ok, reason := models.CanAssign(plantel.Limits(), occupancy, role); !ok {
		return c.Status(409).JSON(fiber.Map{"error": reason})
	}

	assignment, err := database.ActivateAssignment(db, req.UserID, plantelID, role)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrCapacityExceeded):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, database.ErrAlreadyAssigned):
			return c.Status(409).JSON(fiber.Map{"error": "User already assigned to this plantel"})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to create assignment"})
		}
	}

	return c.Status(201).JSON(fiber.Map{"assignment": assignment})
}

func DeleteAssignmentAPI(c *fiber.Ctx, db *sql.DB) error {
	err := database.DeactivateAssignment(db, c.Params("userId"), c.Params("id"))
	if err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Active assignment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to deactivate assignment"})
	}

	return c.JSON(fiber.Map{"message": "Assignment deactivated"})
}
