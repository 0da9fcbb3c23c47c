package models

import "time"

// AttendanceRecord is one student's attendance for one calendar date. A
// status may be revised intraday; the record with the latest RecordedAt wins.
type AttendanceRecord struct {
	ID         string           `json:"id"`
	StudentID  string           `json:"student_id"`
	GrupoID    string           `json:"grupo_id"`
	Date       time.Time        `json:"date"`
	Status     AttendanceStatus `json:"status"`
	Note       string           `json:"note,omitempty"`
	RecordedBy *string          `json:"recorded_by,omitempty"`
	RecordedAt time.Time        `json:"recorded_at"`

	Student *Student `json:"student,omitempty"`
}
