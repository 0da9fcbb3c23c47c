package grades

import (
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/EduplannerDev/Eduplanner-sub001/app/database"
	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
)

var validate = validator.New()

// GetGradebookAPI returns per-student averages for a grupo. Pass
// ?weighted=true for the weight-applied variant; the default is the simple
// mean of available scores.
func GetGradebookAPI(c *fiber.Ctx, db *sql.DB) error {
	grupoID := c.Params("id")
	weighted := c.QueryBool("weighted", false)

	activities, err := database.GetActivitiesByGrupo(db, grupoID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch activities"})
	}

	grades, err := database.GetGradesByGrupo(db, grupoID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch grades"})
	}

	students, err := database.GetStudentsByGrupo(db, grupoID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	studentIDs := make([]string, len(students))
	for i, s := range students {
		studentIDs[i] = s.ID
	}

	summaries := GroupAverages(activities, grades, studentIDs, weighted)

	return c.JSON(fiber.Map{
		"grupo_id":   grupoID,
		"weighted":   weighted,
		"students":   students,
		"summaries":  summaries,
		"activities": activities,
	})
}

// GetStudentAverageAPI returns one student's rollup across their grupo's
// activities. A student with no recorded scores yields average: null.
func GetStudentAverageAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("id")
	weighted := c.QueryBool("weighted", false)

	student, err := database.GetStudentByID(db, studentID)
	if err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}
	if student.GrupoID == nil {
		return c.Status(400).JSON(fiber.Map{"error": "Student is not assigned to a grupo"})
	}

	activities, err := database.GetActivitiesByGrupo(db, *student.GrupoID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch activities"})
	}

	grades, err := database.GetGradesByStudent(db, studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch grades"})
	}

	var avg float64
	if weighted {
		avg, err = StudentWeightedAverage(activities, grades, studentID)
	} else {
		avg, err = StudentAverage(activities, grades, studentID)
	}

	if err != nil {
		var validationErr *models.ValidationError
		switch {
		case errors.Is(err, ErrNoGrades):
			return c.JSON(fiber.Map{
				"student_id": studentID,
				"average":    nil,
				"weighted":   weighted,
			})
		case errors.As(err, &validationErr):
			return c.Status(422).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to compute average"})
		}
	}

	return c.JSON(fiber.Map{
		"student_id": studentID,
		"average":    avg,
		"weighted":   weighted,
	})
}

// GetActivityStatsAPI returns score statistics for one activity.
func GetActivityStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	activityID := c.Params("id")

	activity, err := database.GetActivityByID(db, activityID)
	if err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Activity not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch activity"})
	}

	grades, err := database.GetGradesByActivity(db, activityID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch grades"})
	}

	result, err := ActivityStats(grades)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			return c.Status(422).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute stats"})
	}

	return c.JSON(fiber.Map{
		"activity": activity,
		"stats":    result,
	})
}

// BatchSaveGradesAPI records scores for several students of one activity in
// a single request. Failures are per-entry; valid entries still save.
func BatchSaveGradesAPI(c *fiber.Ctx, db *sql.DB) error {
	type GradeEntry struct {
		StudentID string   `json:"student_id" validate:"required,uuid"`
		Score     *float64 `json:"score" validate:"omitempty,min=0"`
		Feedback  string   `json:"feedback"`
	}
	type BatchRequest struct {
		ActivityID string       `json:"activity_id" validate:"required,uuid"`
		Entries    []GradeEntry `json:"entries" validate:"required,min=1,dive"`
	}

	var req BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if _, err := database.GetActivityByID(db, req.ActivityID); err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Activity not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch activity"})
	}

	saved := 0
	var failures []fiber.Map
	for _, entry := range req.Entries {
		if entry.Score != nil {
			if err := validateScore(*entry.Score); err != nil {
				failures = append(failures, fiber.Map{"student_id": entry.StudentID, "error": err.Error()})
				continue
			}
		}

		grade := &models.Grade{
			ActivityID: req.ActivityID,
			StudentID:  entry.StudentID,
			Score:      entry.Score,
			Feedback:   entry.Feedback,
		}
		if err := database.SaveGrade(db, grade); err != nil {
			failures = append(failures, fiber.Map{"student_id": entry.StudentID, "error": "failed to save"})
			continue
		}
		saved++
	}

	return c.JSON(fiber.Map{
		"saved":    saved,
		"failed":   len(failures),
		"failures": failures,
	})
}

func UpdateGradeAPI(c *fiber.Ctx, db *sql.DB) error {
	type UpdateRequest struct {
		Score    *float64 `json:"score"`
		Feedback string   `json:"feedback"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Score != nil {
		if err := validateScore(*req.Score); err != nil {
			return c.Status(422).JSON(fiber.Map{"error": err.Error()})
		}
	}

	grade := &models.Grade{
		ID:       c.Params("id"),
		Score:    req.Score,
		Feedback: req.Feedback,
	}
	if err := database.UpdateGradeByID(db, grade); err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Grade not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update grade"})
	}

	return c.JSON(fiber.Map{"grade": grade})
}
