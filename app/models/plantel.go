package models

import "time"

// Plantel represents a tenant school site. Capacity ceilings are nullable:
// a nil ceiling means unlimited.
type Plantel struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	CCT           string    `json:"cct,omitempty"`
	Address       string    `json:"address,omitempty"`
	CicloEscolar  string    `json:"ciclo_escolar,omitempty"`
	MaxUsuarios   *int      `json:"max_usuarios,omitempty"`
	MaxProfesores *int      `json:"max_profesores,omitempty"`
	MaxDirectores *int      `json:"max_directores,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Limits is the subset of Plantel the capacity guard decides over.
func (p *Plantel) Limits() PlantelLimits {
	return PlantelLimits{
		MaxUsuarios:   p.MaxUsuarios,
		MaxProfesores: p.MaxProfesores,
		MaxDirectores: p.MaxDirectores,
	}
}

// PlantelLimits holds the configured capacity ceilings for a plantel.
type PlantelLimits struct {
	MaxUsuarios   *int `json:"max_usuarios"`
	MaxProfesores *int `json:"max_profesores"`
	MaxDirectores *int `json:"max_directores"`
}

// Occupancy is a point-in-time count of active assignments at a plantel,
// computed at query time and never cached.
type Occupancy struct {
	Users          int `json:"users"`
	Teachers       int `json:"teachers"`
	Directors      int `json:"directors"`
	Administrators int `json:"administrators"`
}

// PlantelAssignment links a user to a plantel under a role. Deactivation
// toggles IsActive; rows are never deleted.
type PlantelAssignment struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	PlantelID  string    `json:"plantel_id"`
	Role       Role      `json:"role"`
	IsActive   bool      `json:"is_active"`
	AssignedAt time.Time `json:"assigned_at"`

	User    *User    `json:"user,omitempty"`
	Plantel *Plantel `json:"plantel,omitempty"`
}
