package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := ensureActiveAssignmentIndex(db); err != nil {
		return err
	}
	if err := ensureAttendanceUniqueIndex(db); err != nil {
		return err
	}
	if err := ensureAttendanceNoteColumn(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// ensureActiveAssignmentIndex guarantees at most one active assignment per
// (user, plantel).
func ensureActiveAssignmentIndex(db *sql.DB) error {
	query := `
		CREATE UNIQUE INDEX IF NOT EXISTS uq_active_assignment
		ON plantel_assignments (user_id, plantel_id) WHERE is_active
	`
	_, err := db.Exec(query)
	return err
}

// ensureAttendanceUniqueIndex backs the latest-write-wins upsert on
// (student, date).
func ensureAttendanceUniqueIndex(db *sql.DB) error {
	query := `
		CREATE UNIQUE INDEX IF NOT EXISTS uq_attendance_student_date
		ON attendance (student_id, date)
	`
	_, err := db.Exec(query)
	return err
}

func ensureAttendanceNoteColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'attendance'
				AND column_name = 'note'
			) THEN
				ALTER TABLE attendance ADD COLUMN note TEXT;
				RAISE NOTICE 'Added note column to attendance';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to ensure attendance.note column: %v", err)
	}
	return err
}
