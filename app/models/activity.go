package models

import "time"

// Activity is a gradable unit of work (actividad evaluable) within a grupo.
// Retired activities are tombstoned via DeletedAt, never removed.
type Activity struct {
	ID           string       `json:"id"`
	GrupoID      string       `json:"grupo_id"`
	Name         string       `json:"name"`
	Kind         ActivityKind `json:"kind"`
	DueDate      *time.Time   `json:"due_date,omitempty"`
	Weight       int          `json:"weight"`
	ExamID       *string      `json:"exam_id,omitempty"`
	LessonPlanID *string      `json:"lesson_plan_id,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	DeletedAt    *time.Time   `json:"deleted_at,omitempty"`
}
