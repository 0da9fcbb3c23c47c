package models

import "time"

// Grupo represents a class group owned by a teacher within a plantel.
type Grupo struct {
	ID           string    `json:"id"`
	PlantelID    string    `json:"plantel_id"`
	TeacherID    *string   `json:"teacher_id,omitempty"`
	Name         string    `json:"name"`
	GradeLevel   string    `json:"grade_level,omitempty"`
	CicloEscolar string    `json:"ciclo_escolar,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Teacher      *User `json:"teacher,omitempty"`
	StudentCount int   `json:"student_count,omitempty"`
}
