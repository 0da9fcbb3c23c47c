package database

import (
	"database/sql"
	"fmt"

	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
)

// GetGradesByGrupo returns every grade row for the grupo's activities,
// including historical duplicates. Callers resolve the current grade per
// (activity, student) by latest updated_at.
func GetGradesByGrupo(db *sql.DB, grupoID string) ([]*models.Grade, error) {
	query := `
		SELECT g.id, g.activity_id, g.student_id, g.score, COALESCE(g.feedback, ''),
		       g.created_at, g.updated_at
		FROM grades g
		JOIN activities a ON a.id = g.activity_id
		WHERE a.grupo_id = $1 AND a.deleted_at IS NULL
		ORDER BY g.updated_at
	`
	return queryGrades(db, query, grupoID)
}

// GetGradesByActivity returns all grade rows for one activity across students.
func GetGradesByActivity(db *sql.DB, activityID string) ([]*models.Grade, error) {
	query := `
		SELECT g.id, g.activity_id, g.student_id, g.score, COALESCE(g.feedback, ''),
		       g.created_at, g.updated_at
		FROM grades g
		WHERE g.activity_id = $1
		ORDER BY g.updated_at
	`
	return queryGrades(db, query, activityID)
}

// GetGradesByStudent returns all grade rows for one student.
func GetGradesByStudent(db *sql.DB, studentID string) ([]*models.Grade, error) {
	query := `
		SELECT g.id, g.activity_id, g.student_id, g.score, COALESCE(g.feedback, ''),
		       g.created_at, g.updated_at
		FROM grades g
		JOIN activities a ON a.id = g.activity_id
		WHERE g.student_id = $1 AND a.deleted_at IS NULL
		ORDER BY g.updated_at
	`
	return queryGrades(db, query, studentID)
}

// SaveGrade records a score for (activity, student). An existing row for the
// pair is updated in place; otherwise a new row is inserted. Either way
// updated_at advances so the row becomes the logically-current grade.
func SaveGrade(db *sql.DB, g *models.Grade) error {
	update := `
		UPDATE grades SET score = $1, feedback = $2, updated_at = NOW()
		WHERE id = (
			SELECT id FROM grades
			WHERE activity_id = $3 AND student_id = $4
			ORDER BY updated_at DESC LIMIT 1
		)
		RETURNING id, created_at, updated_at
	`
	err := db.QueryRow(update, g.Score, g.Feedback, g.ActivityID, g.StudentID).
		Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to update grade: %w", err)
	}

	insert := `
		INSERT INTO grades (activity_id, student_id, score, feedback)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err = db.QueryRow(insert, g.ActivityID, g.StudentID, g.Score, g.Feedback).
		Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create grade: %w", err)
	}
	return nil
}

func UpdateGradeByID(db *sql.DB, g *models.Grade) error {
	query := `
		UPDATE grades SET score = $1, feedback = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING activity_id, student_id, created_at, updated_at
	`
	err := db.QueryRow(query, g.Score, g.Feedback, g.ID).
		Scan(&g.ActivityID, &g.StudentID, &g.CreatedAt, &g.UpdatedAt)
	if err == sql.ErrNoRows {
		return &models.NotFoundError{Entity: "grade", ID: g.ID}
	}
	return err
}

func queryGrades(db *sql.DB, query string, args ...interface{}) ([]*models.Grade, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch grades: %w", err)
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		g := &models.Grade{}
		var score sql.NullFloat64
		err := rows.Scan(&g.ID, &g.ActivityID, &g.StudentID, &score, &g.Feedback,
			&g.CreatedAt, &g.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan grade: %w", err)
		}
		if score.Valid {
			g.Score = &score.Float64
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}
