package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
)

// UpsertAttendance records a student's status for a date. A revision on the
// same (student, date) replaces the earlier one and advances recorded_at, so
// the latest write wins.
func UpsertAttendance(db *sql.DB, rec *models.AttendanceRecord) error {
	query := `
		INSERT INTO attendance (student_id, grupo_id, date, status, note, recorded_by, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (student_id, date) DO UPDATE
		SET status = EXCLUDED.status,
		    note = EXCLUDED.note,
		    recorded_by = EXCLUDED.recorded_by,
		    recorded_at = NOW()
		RETURNING id, recorded_at
	`
	err := db.QueryRow(query, rec.StudentID, rec.GrupoID, rec.Date, rec.Status,
		rec.Note, rec.RecordedBy,
	).Scan(&rec.ID, &rec.RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to save attendance record: %w", err)
	}
	return nil
}

// GetAttendanceByGrupoAndDate returns the grupo roster merged with that
// day's records, so students without a record stay distinguishable from
// students marked absent.
func GetAttendanceByGrupoAndDate(db *sql.DB, grupoID string, date time.Time) ([]*models.AttendanceRecord, []*models.Student, error) {
	students, err := GetStudentsByGrupo(db, grupoID)
	if err != nil {
		return nil, nil, err
	}

	query := `
		SELECT a.id, a.student_id, a.grupo_id, a.date, a.status, COALESCE(a.note, ''),
		       a.recorded_by, a.recorded_at
		FROM attendance a
		WHERE a.grupo_id = $1 AND a.date = $2
		ORDER BY a.recorded_at
	`
	records, err := queryAttendance(db, query, grupoID, date)
	if err != nil {
		return nil, nil, err
	}
	return records, students, nil
}

// GetAttendanceByGrupo returns the full historical record set for a grupo.
func GetAttendanceByGrupo(db *sql.DB, grupoID string) ([]*models.AttendanceRecord, error) {
	query := `
		SELECT a.id, a.student_id, a.grupo_id, a.date, a.status, COALESCE(a.note, ''),
		       a.recorded_by, a.recorded_at
		FROM attendance a
		WHERE a.grupo_id = $1
		ORDER BY a.date DESC, a.recorded_at
	`
	return queryAttendance(db, query, grupoID)
}

// GetAttendanceByStudent returns all records for one student.
func GetAttendanceByStudent(db *sql.DB, studentID string) ([]*models.AttendanceRecord, error) {
	query := `
		SELECT a.id, a.student_id, a.grupo_id, a.date, a.status, COALESCE(a.note, ''),
		       a.recorded_by, a.recorded_at
		FROM attendance a
		WHERE a.student_id = $1
		ORDER BY a.date DESC
	`
	return queryAttendance(db, query, studentID)
}

// GetAttendanceDates returns the distinct dates on which any record exists
// for a grupo, most recent first.
func GetAttendanceDates(db *sql.DB, grupoID string) ([]time.Time, error) {
	query := `SELECT DISTINCT date FROM attendance WHERE grupo_id = $1 ORDER BY date DESC`
	rows, err := db.Query(query, grupoID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// SaveAttendanceDigest stores a precomputed daily summary for a grupo.
func SaveAttendanceDigest(db *sql.DB, grupoID string, date time.Time, total, present, absent, late, excused int) error {
	query := `
		INSERT INTO attendance_digests (grupo_id, date, total, present, absent, late, excused, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (grupo_id, date) DO UPDATE
		SET total = EXCLUDED.total, present = EXCLUDED.present, absent = EXCLUDED.absent,
		    late = EXCLUDED.late, excused = EXCLUDED.excused, generated_at = NOW()
	`
	_, err := db.Exec(query, grupoID, date, total, present, absent, late, excused)
	return err
}

// GetActiveGrupoIDs returns ids of all active grupos, used by the digest job.
func GetActiveGrupoIDs(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT id FROM grupos WHERE is_active = true`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func queryAttendance(db *sql.DB, query string, args ...interface{}) ([]*models.AttendanceRecord, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance records: %w", err)
	}
	defer rows.Close()

	var records []*models.AttendanceRecord
	for rows.Next() {
		rec := &models.AttendanceRecord{}
		var recordedBy sql.NullString
		err := rows.Scan(&rec.ID, &rec.StudentID, &rec.GrupoID, &rec.Date, &rec.Status,
			&rec.Note, &recordedBy, &rec.RecordedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		if recordedBy.Valid {
			rec.RecordedBy = &recordedBy.String
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
