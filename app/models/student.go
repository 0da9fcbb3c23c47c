package models

import "time"

type Student struct {
	ID           string    `json:"id"`
	PlantelID    string    `json:"plantel_id"`
	GrupoID      *string   `json:"grupo_id,omitempty"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	ListNumber   *int      `json:"list_number,omitempty"`
	TutorName    string    `json:"tutor_name,omitempty"`
	TutorContact string    `json:"tutor_contact,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Grupo *Grupo `json:"grupo,omitempty"`
}
