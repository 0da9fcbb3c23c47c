package database

import (
	"database/sql"
	"fmt"

	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
)

func GetLessonPlansByTeacher(db *sql.DB, teacherID string) ([]*models.LessonPlan, error) {
	query := `
		SELECT id, grupo_id, teacher_id, title, COALESCE(subject, ''), COALESCE(content, ''),
		       created_at, updated_at
		FROM lesson_plans
		WHERE teacher_id = $1
		ORDER BY created_at DESC
	`
	rows, err := db.Query(query, teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lesson plans: %w", err)
	}
	defer rows.Close()

	var plans []*models.LessonPlan
	for rows.Next() {
		p := &models.LessonPlan{}
		err := rows.Scan(&p.ID, &p.GrupoID, &p.TeacherID, &p.Title, &p.Subject, &p.Content,
			&p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson plan: %w", err)
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func GetLessonPlanByID(db *sql.DB, planID string) (*models.LessonPlan, error) {
	query := `
		SELECT id, grupo_id, teacher_id, title, COALESCE(subject, ''), COALESCE(content, ''),
		       created_at, updated_at
		FROM lesson_plans
		WHERE id = $1
	`
	p := &models.LessonPlan{}
	err := db.QueryRow(query, planID).Scan(
		&p.ID, &p.GrupoID, &p.TeacherID, &p.Title, &p.Subject, &p.Content,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &models.NotFoundError{Entity: "lesson plan", ID: planID}
		}
		return nil, err
	}
	return p, nil
}

func CreateLessonPlan(db *sql.DB, p *models.LessonPlan) error {
	query := `
		INSERT INTO lesson_plans (grupo_id, teacher_id, title, subject, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(query, p.GrupoID, p.TeacherID, p.Title, p.Subject, p.Content).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func UpdateLessonPlan(db *sql.DB, p *models.LessonPlan) error {
	query := `
		UPDATE lesson_plans
		SET title = $1, subject = $2, content = $3, updated_at = NOW()
		WHERE id = $4
	`
	result, err := db.Exec(query, p.Title, p.Subject, p.Content, p.ID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return &models.NotFoundError{Entity: "lesson plan", ID: p.ID}
	}
	return nil
}

func GetExamsByGrupo(db *sql.DB, grupoID string) ([]*models.Exam, error) {
	query := `
		SELECT id, grupo_id, lesson_plan_id, title, questions, created_at
		FROM exams
		WHERE grupo_id = $1
		ORDER BY created_at DESC
	`
	rows, err := db.Query(query, grupoID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exams: %w", err)
	}
	defer rows.Close()

	var exams []*models.Exam
	for rows.Next() {
		e := &models.Exam{}
		var lessonPlanID sql.NullString
		err := rows.Scan(&e.ID, &e.GrupoID, &lessonPlanID, &e.Title, &e.Questions, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exam: %w", err)
		}
		if lessonPlanID.Valid {
			e.LessonPlanID = &lessonPlanID.String
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

func CreateExam(db *sql.DB, e *models.Exam) error {
	query := `
		INSERT INTO exams (grupo_id, lesson_plan_id, title, questions)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return db.QueryRow(query, e.GrupoID, e.LessonPlanID, e.Title, []byte(e.Questions)).
		Scan(&e.ID, &e.CreatedAt)
}
