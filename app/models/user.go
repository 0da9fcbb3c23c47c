package models

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Assignments is populated on login and by the auth middleware.
	Assignments []*PlantelAssignment `json:"assignments,omitempty"`
}

// HasRole reports whether the user holds the role in any active assignment.
func (u *User) HasRole(role Role) bool {
	for _, a := range u.Assignments {
		if a.IsActive && a.Role == role {
			return true
		}
	}
	return false
}

// RoleAt returns the user's active role at a plantel, if any.
func (u *User) RoleAt(plantelID string) (Role, bool) {
	for _, a := range u.Assignments {
		if a.IsActive && a.PlantelID == plantelID {
			return a.Role, true
		}
	}
	return "", false
}

// IsAdministrator reports whether the user administers any plantel.
func (u *User) IsAdministrator() bool {
	return u.HasRole(RoleAdministrator)
}
