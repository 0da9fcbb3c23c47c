package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/EduplannerDev/Eduplanner-sub001/app/database"
	"github.com/EduplannerDev/Eduplanner-sub001/app/routes/attendance"
)

// GenerateAttendanceDigests precomputes today's attendance summary for every
// active grupo. Re-running on the same date overwrites the earlier digest, so
// late corrections are picked up.
func GenerateAttendanceDigests(db *sql.DB) error {
	log.Println("Starting attendance digest generation...")

	today := time.Now().Truncate(24 * time.Hour)

	grupoIDs, err := database.GetActiveGrupoIDs(db)
	if err != nil {
		return err
	}

	count := 0
	for _, grupoID := range grupoIDs {
		records, _, err := database.GetAttendanceByGrupoAndDate(db, grupoID, today)
		if err != nil {
			log.Printf("Failed to load attendance for grupo %s: %v", grupoID, err)
			continue
		}

		summary := attendance.GroupDailySummary(records, today)
		if summary.Total == 0 {
			// Nothing recorded today; no digest row.
			continue
		}

		err = database.SaveAttendanceDigest(db, grupoID, today,
			summary.Total, summary.Present, summary.Absent, summary.Late, summary.Excused)
		if err != nil {
			log.Printf("Failed to save digest for grupo %s: %v", grupoID, err)
			continue
		}
		count++
	}

	log.Printf("Attendance digest generation completed. Saved %d digests.", count)
	return nil
}
