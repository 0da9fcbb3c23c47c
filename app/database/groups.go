package database

import (
	"database/sql"
	"fmt"

	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
)

func GetGruposByPlantel(db *sql.DB, plantelID string) ([]*models.Grupo, error) {
	query := `
		SELECT g.id, g.plantel_id, g.teacher_id, g.name, COALESCE(g.grade_level, ''),
		       COALESCE(g.ciclo_escolar, ''), g.is_active, g.created_at, g.updated_at,
		       u.id, u.first_name, u.last_name, u.email,
		       (SELECT COUNT(*) FROM students s WHERE s.grupo_id = g.id AND s.is_active = true)
		FROM grupos g
		LEFT JOIN users u ON g.teacher_id = u.id
		WHERE g.plantel_id = $1 AND g.is_active = true
		ORDER BY g.grade_level, g.name
	`
	rows, err := db.Query(query, plantelID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch grupos: %w", err)
	}
	defer rows.Close()

	var grupos []*models.Grupo
	for rows.Next() {
		g, err := scanGrupo(rows)
		if err != nil {
			return nil, err
		}
		grupos = append(grupos, g)
	}
	return grupos, rows.Err()
}

func GetGruposByTeacher(db *sql.DB, teacherID string) ([]*models.Grupo, error) {
	query := `
		SELECT g.id, g.plantel_id, g.teacher_id, g.name, COALESCE(g.grade_level, ''),
		       COALESCE(g.ciclo_escolar, ''), g.is_active, g.created_at, g.updated_at,
		       u.id, u.first_name, u.last_name, u.email,
		       (SELECT COUNT(*) FROM students s WHERE s.grupo_id = g.id AND s.is_active = true)
		FROM grupos g
		LEFT JOIN users u ON g.teacher_id = u.id
		WHERE g.teacher_id = $1 AND g.is_active = true
		ORDER BY g.grade_level, g.name
	`
	rows, err := db.Query(query, teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch grupos: %w", err)
	}
	defer rows.Close()

	var grupos []*models.Grupo
	for rows.Next() {
		g, err := scanGrupo(rows)
		if err != nil {
			return nil, err
		}
		grupos = append(grupos, g)
	}
	return grupos, rows.Err()
}

func GetGrupoByID(db *sql.DB, grupoID string) (*models.Grupo, error) {
	query := `
		SELECT g.id, g.plantel_id, g.teacher_id, g.name, COALESCE(g.grade_level, ''),
		       COALESCE(g.ciclo_escolar, ''), g.is_active, g.created_at, g.updated_at
		FROM grupos g
		WHERE g.id = $1 AND g.is_active = true
	`
	g := &models.Grupo{}
	var teacherID sql.NullString

	err := db.QueryRow(query, grupoID).Scan(
		&g.ID, &g.PlantelID, &teacherID, &g.Name, &g.GradeLevel,
		&g.CicloEscolar, &g.IsActive, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &models.NotFoundError{Entity: "grupo", ID: grupoID}
		}
		return nil, err
	}

	if teacherID.Valid {
		g.TeacherID = &teacherID.String
	}
	return g, nil
}

func CreateGrupo(db *sql.DB, g *models.Grupo) error {
	query := `
		INSERT INTO grupos (plantel_id, teacher_id, name, grade_level, ciclo_escolar)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_active, created_at, updated_at
	`
	return db.QueryRow(query, g.PlantelID, g.TeacherID, g.Name, g.GradeLevel, g.CicloEscolar).
		Scan(&g.ID, &g.IsActive, &g.CreatedAt, &g.UpdatedAt)
}

func UpdateGrupo(db *sql.DB, g *models.Grupo) error {
	query := `
		UPDATE grupos
		SET name = $1, grade_level = $2, ciclo_escolar = $3, teacher_id = $4, updated_at = NOW()
		WHERE id = $5 AND is_active = true
	`
	result, err := db.Exec(query, g.Name, g.GradeLevel, g.CicloEscolar, g.TeacherID, g.ID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return &models.NotFoundError{Entity: "grupo", ID: g.ID}
	}
	return nil
}

func DeactivateGrupo(db *sql.DB, grupoID string) error {
	query := `UPDATE grupos SET is_active = false, updated_at = NOW() WHERE id = $1`
	_, err := db.Exec(query, grupoID)
	return err
}

func scanGrupo(rows *sql.Rows) (*models.Grupo, error) {
	g := &models.Grupo{}
	var teacherID sql.NullString
	var teacherUserID, teacherFirstName, teacherLastName, teacherEmail sql.NullString

	err := rows.Scan(
		&g.ID, &g.PlantelID, &teacherID, &g.Name, &g.GradeLevel,
		&g.CicloEscolar, &g.IsActive, &g.CreatedAt, &g.UpdatedAt,
		&teacherUserID, &teacherFirstName, &teacherLastName, &teacherEmail,
		&g.StudentCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan grupo: %w", err)
	}

	if teacherID.Valid && teacherUserID.Valid {
		g.TeacherID = &teacherID.String
		g.Teacher = &models.User{
			ID:        teacherUserID.String,
			FirstName: teacherFirstName.String,
			LastName:  teacherLastName.String,
			Email:     teacherEmail.String,
		}
	}
	return g, nil
}
