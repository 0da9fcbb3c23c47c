package database

import (
	"database/sql"

	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
)

// GetAdminDashboardStats returns platform-wide counts for the admin dashboard.
func GetAdminDashboardStats(db *sql.DB) (*models.AdminDashboardStats, error) {
	stats := &models.AdminDashboardStats{}

	err := db.QueryRow(`SELECT COUNT(*) FROM planteles WHERE is_active = true`).Scan(&stats.TotalPlanteles)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM users WHERE is_active = true`).Scan(&stats.TotalUsers)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM grupos WHERE is_active = true`).Scan(&stats.TotalGrupos)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM students WHERE is_active = true`).Scan(&stats.TotalStudents)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// GetDirectorDashboardStats returns counts scoped to one plantel.
func GetDirectorDashboardStats(db *sql.DB, plantelID string) (*models.DirectorDashboardStats, error) {
	stats := &models.DirectorDashboardStats{PlantelID: plantelID}

	err := db.QueryRow(`SELECT COUNT(*) FROM grupos WHERE plantel_id = $1 AND is_active = true`, plantelID).
		Scan(&stats.TotalGrupos)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM students WHERE plantel_id = $1 AND is_active = true`, plantelID).
		Scan(&stats.TotalStudents)
	if err != nil {
		return nil, err
	}

	occ, err := GetOccupancy(db, plantelID)
	if err != nil {
		return nil, err
	}
	stats.Occupancy = occ
	stats.TotalTeachers = occ.Teachers

	return stats, nil
}

// GetTeacherDashboardStats returns counts scoped to one teacher's grupos.
func GetTeacherDashboardStats(db *sql.DB, teacherID string) (*models.TeacherDashboardStats, error) {
	stats := &models.TeacherDashboardStats{}

	err := db.QueryRow(`SELECT COUNT(*) FROM grupos WHERE teacher_id = $1 AND is_active = true`, teacherID).
		Scan(&stats.TotalGrupos)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`
		SELECT COUNT(*) FROM students s
		JOIN grupos g ON g.id = s.grupo_id
		WHERE g.teacher_id = $1 AND s.is_active = true AND g.is_active = true
	`, teacherID).Scan(&stats.TotalStudents)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`
		SELECT COUNT(*) FROM activities a
		JOIN grupos g ON g.id = a.grupo_id
		WHERE g.teacher_id = $1 AND a.deleted_at IS NULL AND g.is_active = true
	`, teacherID).Scan(&stats.TotalActivities)
	if err != nil {
		return nil, err
	}

	// Activities with at least one student missing a current score.
	err = db.QueryRow(`
		SELECT COUNT(*) FROM activities a
		JOIN grupos g ON g.id = a.grupo_id
		WHERE g.teacher_id = $1 AND a.deleted_at IS NULL AND g.is_active = true
		AND EXISTS (
			SELECT 1 FROM students s
			WHERE s.grupo_id = g.id AND s.is_active = true
			AND NOT EXISTS (
				SELECT 1 FROM grades gr
				WHERE gr.activity_id = a.id AND gr.student_id = s.id AND gr.score IS NOT NULL
			)
		)
	`, teacherID).Scan(&stats.PendingGrades)
	if err != nil {
		return nil, err
	}

	unread, err := CountUnreadMessages(db, teacherID)
	if err != nil {
		return nil, err
	}
	stats.UnreadMessages = unread

	return stats, nil
}
