package models

import (
	"encoding/json"
	"time"
)

// LessonPlan is a planeación didáctica authored by a teacher for a grupo.
type LessonPlan struct {
	ID        string    `json:"id"`
	GrupoID   string    `json:"grupo_id"`
	TeacherID string    `json:"teacher_id"`
	Title     string    `json:"title"`
	Subject   string    `json:"subject,omitempty"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Exam is a generated exam record, optionally derived from a lesson plan.
// Questions is stored as a JSON document.
type Exam struct {
	ID           string          `json:"id"`
	GrupoID      string          `json:"grupo_id"`
	LessonPlanID *string         `json:"lesson_plan_id,omitempty"`
	Title        string          `json:"title"`
	Questions    json.RawMessage `json:"questions"`
	CreatedAt    time.Time       `json:"created_at"`
}
