package database

import (
	"database/sql"

	"golang.org/x/crypto/bcrypt"

	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
)

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserAssignments returns all active plantel assignments for a user.
func GetUserAssignments(db *sql.DB, userID string) ([]*models.PlantelAssignment, error) {
	query := `
		SELECT a.id, a.user_id, a.plantel_id, a.role, a.is_active, a.assigned_at
		FROM plantel_assignments a
		WHERE a.user_id = $1 AND a.is_active = true
		ORDER BY a.assigned_at
	`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*models.PlantelAssignment
	for rows.Next() {
		var a models.PlantelAssignment
		if err := rows.Scan(&a.ID, &a.UserID, &a.PlantelID, &a.Role, &a.IsActive, &a.AssignedAt); err != nil {
			return nil, err
		}
		assignments = append(assignments, &a)
	}
	return assignments, rows.Err()
}

// CreateUser creates a user account, hashing the password before storing.
func CreateUser(db *sql.DB, user *models.User) error {
	hashedPassword, err := hashPassword(user.Password)
	if err != nil {
		return err
	}

	query := `INSERT INTO users (email, password, first_name, last_name, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, user.Email, hashedPassword, user.FirstName, user.LastName).Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt,
	)
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

// GetUsersByPlantel returns users with an active assignment at a plantel.
func GetUsersByPlantel(db *sql.DB, plantelID string) ([]*models.User, error) {
	query := `
		SELECT u.id, u.email, u.first_name, u.last_name, u.is_active, u.created_at, u.updated_at
		FROM users u
		JOIN plantel_assignments a ON a.user_id = u.id
		WHERE a.plantel_id = $1 AND a.is_active = true AND u.is_active = true
		ORDER BY u.first_name, u.last_name
	`
	rows, err := db.Query(query, plantelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

func DeactivateUser(db *sql.DB, userID string) error {
	query := `UPDATE users SET is_active = false, updated_at = NOW() WHERE id = $1`
	_, err := db.Exec(query, userID)
	return err
}
