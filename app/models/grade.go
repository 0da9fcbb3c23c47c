package models

import "time"

// Grade is one student's score for an activity. A nil Score means "not yet
// graded", which is distinct from a zero score. Historical duplicates per
// (activity, student) are tolerated; consumers resolve the latest UpdatedAt.
type Grade struct {
	ID         string    `json:"id"`
	ActivityID string    `json:"activity_id"`
	StudentID  string    `json:"student_id"`
	Score      *float64  `json:"score"`
	Feedback   string    `json:"feedback,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
