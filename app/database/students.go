package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
)

// StudentFilters represents filtering options for students
type StudentFilters struct {
	Search    string
	PlantelID string
	GrupoID   string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// GetStudentsWithFilters returns students matching the filters plus the total
// count before pagination.
func GetStudentsWithFilters(db *sql.DB, filters StudentFilters) ([]*models.Student, int, error) {
	var conditions []string
	var args []interface{}

	conditions = append(conditions, "s.is_active = true")

	if filters.PlantelID != "" {
		args = append(args, filters.PlantelID)
		conditions = append(conditions, fmt.Sprintf("s.plantel_id = $%d", len(args)))
	}
	if filters.GrupoID != "" {
		args = append(args, filters.GrupoID)
		conditions = append(conditions, fmt.Sprintf("s.grupo_id = $%d", len(args)))
	}
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(s.first_name ILIKE $%d OR s.last_name ILIKE $%d)", len(args), len(args)))
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	var totalCount int
	countQuery := "SELECT COUNT(*) FROM students s " + where
	if err := db.QueryRow(countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}

	sortBy := "s.list_number"
	switch filters.SortBy {
	case "name":
		sortBy = "s.first_name"
	case "last_name":
		sortBy = "s.last_name"
	case "created_at":
		sortBy = "s.created_at"
	}
	sortOrder := "ASC"
	if strings.EqualFold(filters.SortOrder, "desc") {
		sortOrder = "DESC"
	}

	query := `
		SELECT s.id, s.plantel_id, s.grupo_id, s.first_name, s.last_name, s.list_number,
		       COALESCE(s.tutor_name, ''), COALESCE(s.tutor_contact, ''),
		       s.is_active, s.created_at, s.updated_at
		FROM students s ` + where + `
		ORDER BY ` + sortBy + ` ` + sortOrder + ` NULLS LAST`

	if filters.Limit > 0 {
		args = append(args, filters.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filters.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}
	return students, totalCount, rows.Err()
}

// GetStudentsByGrupo returns the active roster of a grupo ordered by list number.
func GetStudentsByGrupo(db *sql.DB, grupoID string) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.plantel_id, s.grupo_id, s.first_name, s.last_name, s.list_number,
		       COALESCE(s.tutor_name, ''), COALESCE(s.tutor_contact, ''),
		       s.is_active, s.created_at, s.updated_at
		FROM students s
		WHERE s.grupo_id = $1 AND s.is_active = true
		ORDER BY s.list_number NULLS LAST, s.first_name
	`
	rows, err := db.Query(query, grupoID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	query := `
		SELECT s.id, s.plantel_id, s.grupo_id, s.first_name, s.last_name, s.list_number,
		       COALESCE(s.tutor_name, ''), COALESCE(s.tutor_contact, ''),
		       s.is_active, s.created_at, s.updated_at
		FROM students s
		WHERE s.id = $1 AND s.is_active = true
	`
	s := &models.Student{}
	var grupoID sql.NullString
	var listNumber sql.NullInt64

	err := db.QueryRow(query, studentID).Scan(
		&s.ID, &s.PlantelID, &grupoID, &s.FirstName, &s.LastName, &listNumber,
		&s.TutorName, &s.TutorContact, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &models.NotFoundError{Entity: "student", ID: studentID}
		}
		return nil, err
	}

	if grupoID.Valid {
		s.GrupoID = &grupoID.String
	}
	s.ListNumber = nullIntPtr(listNumber)
	return s, nil
}

func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `
		INSERT INTO students (plantel_id, grupo_id, first_name, last_name, list_number, tutor_name, tutor_contact)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, is_active, created_at, updated_at
	`
	return db.QueryRow(query, s.PlantelID, s.GrupoID, s.FirstName, s.LastName,
		s.ListNumber, s.TutorName, s.TutorContact,
	).Scan(&s.ID, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
}

func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `
		UPDATE students
		SET grupo_id = $1, first_name = $2, last_name = $3, list_number = $4,
		    tutor_name = $5, tutor_contact = $6, updated_at = NOW()
		WHERE id = $7 AND is_active = true
	`
	result, err := db.Exec(query, s.GrupoID, s.FirstName, s.LastName, s.ListNumber,
		s.TutorName, s.TutorContact, s.ID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return &models.NotFoundError{Entity: "student", ID: s.ID}
	}
	return nil
}

func DeactivateStudent(db *sql.DB, studentID string) error {
	query := `UPDATE students SET is_active = false, updated_at = NOW() WHERE id = $1`
	_, err := db.Exec(query, studentID)
	return err
}

func scanStudent(rows *sql.Rows) (*models.Student, error) {
	s := &models.Student{}
	var grupoID sql.NullString
	var listNumber sql.NullInt64

	err := rows.Scan(
		&s.ID, &s.PlantelID, &grupoID, &s.FirstName, &s.LastName, &listNumber,
		&s.TutorName, &s.TutorContact, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan student: %w", err)
	}

	if grupoID.Valid {
		s.GrupoID = &grupoID.String
	}
	s.ListNumber = nullIntPtr(listNumber)
	return s, nil
}
