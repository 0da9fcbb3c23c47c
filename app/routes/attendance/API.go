package attendance

import (
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/EduplannerDev/Eduplanner-sub001/app/database"
	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
	"github.com/EduplannerDev/Eduplanner-sub001/app/routes/auth"
)

var validate = validator.New()

const dateLayout = "2006-01-02"

// MarkAttendanceAPI records attendance for several students of a grupo on
// one date. Re-marking a (student, date) pair replaces the earlier status.
func MarkAttendanceAPI(c *fiber.Ctx, db *sql.DB) error {
	type MarkEntry struct {
		StudentID string `json:"student_id" validate:"required,uuid"`
		Status    string `json:"status" validate:"required"`
		Note      string `json:"note"`
	}
	type MarkRequest struct {
		Date    string      `json:"date" validate:"required"`
		Entries []MarkEntry `json:"entries" validate:"required,min=1,dive"`
	}

	grupoID := c.Params("id")

	var req MarkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date. Use YYYY-MM-DD"})
	}

	if _, err := database.GetGrupoByID(db, grupoID); err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Grupo not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch grupo"})
	}

	recordedBy := auth.CurrentUser(c).ID

	saved := 0
	var failures []fiber.Map
	for _, entry := range req.Entries {
		status := models.AttendanceStatus(entry.Status)
		if !status.Valid() {
			failures = append(failures, fiber.Map{
				"student_id": entry.StudentID,
				"error":      "Invalid status. Must be present, absent, late, or excused",
			})
			continue
		}

		rec := &models.AttendanceRecord{
			StudentID:  entry.StudentID,
			GrupoID:    grupoID,
			Date:       date,
			Status:     status,
			Note:       entry.Note,
			RecordedBy: &recordedBy,
		}
		if err := database.UpsertAttendance(db, rec); err != nil {
			failures = append(failures, fiber.Map{"student_id": entry.StudentID, "error": "failed to save"})
			continue
		}
		saved++
	}

	return c.JSON(fiber.Map{
		"date":     req.Date,
		"saved":    saved,
		"failed":   len(failures),
		"failures": failures,
	})
}

// GetDayAttendanceAPI returns one date's roster view: the effective record
// per student plus the students with no record that day, kept separate so
// "unrecorded" never reads as "absent".
func GetDayAttendanceAPI(c *fiber.Ctx, db *sql.DB) error {
	grupoID := c.Params("id")

	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid or missing date. Use ?date=YYYY-MM-DD"})
	}

	records, students, err := database.GetAttendanceByGrupoAndDate(db, grupoID, date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	effective := CollapseLatest(records)
	recorded := make(map[string]bool, len(effective))
	for _, rec := range effective {
		recorded[rec.StudentID] = true
	}

	var unrecorded []*models.Student
	for _, s := range students {
		if !recorded[s.ID] {
			unrecorded = append(unrecorded, s)
		}
	}

	summary := GroupDailySummary(records, date)

	return c.JSON(fiber.Map{
		"grupo_id":   grupoID,
		"date":       c.Query("date"),
		"records":    effective,
		"unrecorded": unrecorded,
		"summary":    summary,
		"rate":       RoundPercent(summary.Rate()),
	})
}

// GetAttendanceHistoryAPI returns per-date summaries for a grupo, most
// recent date first.
func GetAttendanceHistoryAPI(c *fiber.Ctx, db *sql.DB) error {
	grupoID := c.Params("id")

	records, err := database.GetAttendanceByGrupo(db, grupoID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	summaries := HistoricalSummary(records)

	return c.JSON(fiber.Map{
		"grupo_id":  grupoID,
		"summaries": summaries,
		"count":     len(summaries),
	})
}

// GetStudentAttendanceAPI returns one student's record history and overall
// percentage. A student with no records gets percentage: null.
func GetStudentAttendanceAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("id")

	if _, err := database.GetStudentByID(db, studentID); err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	records, err := database.GetAttendanceByStudent(db, studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	effective := CollapseLatest(records)

	pct, err := StudentPercentage(records, studentID)
	if err != nil {
		if errors.Is(err, ErrNoAttendance) {
			return c.JSON(fiber.Map{
				"student_id": studentID,
				"records":    effective,
				"percentage": nil,
			})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute percentage"})
	}

	rounded := RoundPercent(pct)
	return c.JSON(fiber.Map{
		"student_id": studentID,
		"records":    effective,
		"percentage": rounded,
	})
}
