package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
)

// ErrCapacityExceeded is returned when activating an assignment would exceed
// one of the plantel's configured ceilings.
var ErrCapacityExceeded = errors.New("plantel capacity exceeded")

// ErrAlreadyAssigned is returned when the user already holds an active
// assignment at the plantel.
var ErrAlreadyAssigned = errors.New("user already has an active assignment at this plantel")

// GetAssignmentsByPlantel returns all assignments at a plantel, active and
// inactive, with user details.
func GetAssignmentsByPlantel(db *sql.DB, plantelID string) ([]*models.PlantelAssignment, error) {
	query := `
		SELECT a.id, a.user_id, a.plantel_id, a.role, a.is_active, a.assigned_at,
		       u.id, u.email, u.first_name, u.last_name
		FROM plantel_assignments a
		JOIN users u ON u.id = a.user_id
		WHERE a.plantel_id = $1
		ORDER BY a.assigned_at DESC
	`
	rows, err := db.Query(query, plantelID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*models.PlantelAssignment
	for rows.Next() {
		var a models.PlantelAssignment
		var u models.User
		err := rows.Scan(
			&a.ID, &a.UserID, &a.PlantelID, &a.Role, &a.IsActive, &a.AssignedAt,
			&u.ID, &u.Email, &u.FirstName, &u.LastName,
		)
		if err != nil {
			return nil, err
		}
		a.User = &u
		assignments = append(assignments, &a)
	}
	return assignments, rows.Err()
}

// ActivateAssignment creates (or reactivates) an active assignment for a user
// at a plantel. The ceiling check and the insert run inside one transaction
// with the plantel row locked, so two concurrent "last slot" requests cannot
// both succeed. Handlers may still pre-flight with models.CanAssign on a
// fresh occupancy snapshot; this transaction is authoritative.
func ActivateAssignment(db *sql.DB, userID, plantelID string, role models.Role) (*models.PlantelAssignment, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Lock the plantel row; concurrent activations at the same plantel
	// serialize here.
	var limits models.PlantelLimits
	var maxUsuarios, maxProfesores, maxDirectores sql.NullInt64
	err = tx.QueryRow(
		`SELECT max_usuarios, max_profesores, max_directores
		 FROM planteles WHERE id = $1 AND is_active = true FOR UPDATE`,
		plantelID,
	).Scan(&maxUsuarios, &maxProfesores, &maxDirectores)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &models.NotFoundError{Entity: "plantel", ID: plantelID}
		}
		return nil, err
	}
	limits.MaxUsuarios = nullIntPtr(maxUsuarios)
	limits.MaxProfesores = nullIntPtr(maxProfesores)
	limits.MaxDirectores = nullIntPtr(maxDirectores)

	var exists bool
	err = tx.QueryRow(
		`SELECT EXISTS (
			SELECT 1 FROM plantel_assignments
			WHERE user_id = $1 AND plantel_id = $2 AND is_active = true
		)`, userID, plantelID,
	).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyAssigned
	}

	var occ models.Occupancy
	err = tx.QueryRow(
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE role = 'teacher'),
		        COUNT(*) FILTER (WHERE role = 'director'),
		        COUNT(*) FILTER (WHERE role = 'administrator')
		 FROM plantel_assignments
		 WHERE plantel_id = $1 AND is_active = true`,
		plantelID,
	).Scan(&occ.Users, &occ.Teachers, &occ.Directors, &occ.Administrators)
	if err != nil {
		return nil, err
	}

	if ok, reason := models.CanAssign(limits, occ, role); !ok {
		return nil, fmt.Errorf("%w: %s", ErrCapacityExceeded, reason)
	}

	a := &models.PlantelAssignment{UserID: userID, PlantelID: plantelID, Role: role}
	err = tx.QueryRow(
		`INSERT INTO plantel_assignments (user_id, plantel_id, role, is_active, assigned_at)
		 VALUES ($1, $2, $3, true, NOW())
		 RETURNING id, is_active, assigned_at`,
		userID, plantelID, role,
	).Scan(&a.ID, &a.IsActive, &a.AssignedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return a, nil
}

// DeactivateAssignment toggles off the user's active assignment at a plantel.
// The row is kept for history.
func DeactivateAssignment(db *sql.DB, userID, plantelID string) error {
	result, err := db.Exec(
		`UPDATE plantel_assignments SET is_active = false
		 WHERE user_id = $1 AND plantel_id = $2 AND is_active = true`,
		userID, plantelID,
	)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return &models.NotFoundError{Entity: "assignment", ID: userID}
	}
	return nil
}
