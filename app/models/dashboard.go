package models

// AdminDashboardStats summarizes the whole platform for administrators.
type AdminDashboardStats struct {
	TotalPlanteles int `json:"total_planteles"`
	TotalUsers     int `json:"total_users"`
	TotalGrupos    int `json:"total_grupos"`
	TotalStudents  int `json:"total_students"`
}

// DirectorDashboardStats summarizes one plantel for its director.
type DirectorDashboardStats struct {
	PlantelID     string    `json:"plantel_id"`
	TotalGrupos   int       `json:"total_grupos"`
	TotalStudents int       `json:"total_students"`
	TotalTeachers int       `json:"total_teachers"`
	Occupancy     Occupancy `json:"occupancy"`
}

// TeacherDashboardStats summarizes a teacher's own groups.
type TeacherDashboardStats struct {
	TotalGrupos     int `json:"total_grupos"`
	TotalStudents   int `json:"total_students"`
	TotalActivities int `json:"total_activities"`
	PendingGrades   int `json:"pending_grades"`
	UnreadMessages  int `json:"unread_messages"`
}
