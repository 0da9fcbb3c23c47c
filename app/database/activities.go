package database

import (
	"database/sql"
	"fmt"

	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
)

// GetActivitiesByGrupo returns all non-deleted activities for a grupo.
func GetActivitiesByGrupo(db *sql.DB, grupoID string) ([]*models.Activity, error) {
	query := `
		SELECT id, grupo_id, name, kind, due_date, weight, exam_id, lesson_plan_id,
		       created_at, updated_at, deleted_at
		FROM activities
		WHERE grupo_id = $1 AND deleted_at IS NULL
		ORDER BY due_date NULLS LAST, created_at
	`
	rows, err := db.Query(query, grupoID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func GetActivityByID(db *sql.DB, activityID string) (*models.Activity, error) {
	query := `
		SELECT id, grupo_id, name, kind, due_date, weight, exam_id, lesson_plan_id,
		       created_at, updated_at, deleted_at
		FROM activities
		WHERE id = $1 AND deleted_at IS NULL
	`
	a := &models.Activity{}
	var dueDate, deletedAt sql.NullTime
	var examID, lessonPlanID sql.NullString

	err := db.QueryRow(query, activityID).Scan(
		&a.ID, &a.GrupoID, &a.Name, &a.Kind, &dueDate, &a.Weight,
		&examID, &lessonPlanID, &a.CreatedAt, &a.UpdatedAt, &deletedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &models.NotFoundError{Entity: "activity", ID: activityID}
		}
		return nil, err
	}

	if dueDate.Valid {
		a.DueDate = &dueDate.Time
	}
	if examID.Valid {
		a.ExamID = &examID.String
	}
	if lessonPlanID.Valid {
		a.LessonPlanID = &lessonPlanID.String
	}
	return a, nil
}

func CreateActivity(db *sql.DB, a *models.Activity) error {
	query := `
		INSERT INTO activities (grupo_id, name, kind, due_date, weight, exam_id, lesson_plan_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(query, a.GrupoID, a.Name, a.Kind, a.DueDate, a.Weight,
		a.ExamID, a.LessonPlanID,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func UpdateActivity(db *sql.DB, a *models.Activity) error {
	query := `
		UPDATE activities
		SET name = $1, kind = $2, due_date = $3, weight = $4, updated_at = NOW()
		WHERE id = $5 AND deleted_at IS NULL
	`
	result, err := db.Exec(query, a.Name, a.Kind, a.DueDate, a.Weight, a.ID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return &models.NotFoundError{Entity: "activity", ID: a.ID}
	}
	return nil
}

// SoftDeleteActivity tombstones an activity; rows are never removed so
// historical grades stay resolvable.
func SoftDeleteActivity(db *sql.DB, activityID string) error {
	query := `UPDATE activities SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	result, err := db.Exec(query, activityID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return &models.NotFoundError{Entity: "activity", ID: activityID}
	}
	return nil
}

func scanActivity(rows *sql.Rows) (*models.Activity, error) {
	a := &models.Activity{}
	var dueDate, deletedAt sql.NullTime
	var examID, lessonPlanID sql.NullString

	err := rows.Scan(
		&a.ID, &a.GrupoID, &a.Name, &a.Kind, &dueDate, &a.Weight,
		&examID, &lessonPlanID, &a.CreatedAt, &a.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan activity: %w", err)
	}

	if dueDate.Valid {
		a.DueDate = &dueDate.Time
	}
	if deletedAt.Valid {
		a.DeletedAt = &deletedAt.Time
	}
	if examID.Valid {
		a.ExamID = &examID.String
	}
	if lessonPlanID.Valid {
		a.LessonPlanID = &lessonPlanID.String
	}
	return a, nil
}
