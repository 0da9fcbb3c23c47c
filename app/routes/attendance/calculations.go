package attendance

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
)

// ErrNoAttendance is returned when a student has no attendance records at
// all. Callers render it as "undefined", never as 0%.
var ErrNoAttendance = errors.New("no attendance records")

// dateKey normalizes a record date to its calendar day so intraday revisions
// of the same date collapse together regardless of timestamp precision.
func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// CollapseLatest reduces a record set to the effective record per
// (student, date): the one with the latest RecordedAt. Earlier intraday
// writes are superseded, so a correction from absent to present counts as
// present no matter the input order.
func CollapseLatest(records []*models.AttendanceRecord) []*models.AttendanceRecord {
	type key struct {
		studentID string
		date      string
	}

	latest := make(map[key]*models.AttendanceRecord)
	var order []key
	for _, rec := range records {
		k := key{rec.StudentID, dateKey(rec.Date)}
		prev, ok := latest[k]
		if !ok {
			order = append(order, k)
		}
		if !ok || rec.RecordedAt.After(prev.RecordedAt) {
			latest[k] = rec
		}
	}

	collapsed := make([]*models.AttendanceRecord, 0, len(order))
	for _, k := range order {
		collapsed = append(collapsed, latest[k])
	}
	return collapsed
}

// StudentPercentage computes a student's attendance rate over their effective
// records: present / total recorded dates, as a percentage. Late and excused
// do not count as present. Returns ErrNoAttendance when the student has no
// records, which is a distinct outcome from 0%.
func StudentPercentage(records []*models.AttendanceRecord, studentID string) (float64, error) {
	var present, total int
	for _, rec := range CollapseLatest(records) {
		if rec.StudentID != studentID {
			continue
		}
		total++
		if rec.Status == models.Present {
			present++
		}
	}

	if total == 0 {
		return 0, ErrNoAttendance
	}
	return float64(present) / float64(total) * 100, nil
}

// RoundPercent rounds to the nearest whole point for display. Threshold
// comparisons upstream use the unrounded value.
func RoundPercent(pct float64) float64 {
	return math.Round(pct)
}

// DailySummary is the status breakdown for one grupo on one date. Total
// counts students with an effective record that day, not the roster size;
// Present+Absent+Late+Excused always equals Total.
type DailySummary struct {
	Date    time.Time `json:"date"`
	Total   int       `json:"total"`
	Present int       `json:"present"`
	Absent  int       `json:"absent"`
	Late    int       `json:"late"`
	Excused int       `json:"excused"`
}

// Rate returns the present share of recorded students for the day. Zero when
// nothing was recorded.
func (s *DailySummary) Rate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Present) / float64(s.Total) * 100
}

// GroupDailySummary tallies one date's effective records for a grupo.
func GroupDailySummary(records []*models.AttendanceRecord, date time.Time) *DailySummary {
	day := dateKey(date)
	summary := &DailySummary{Date: date}
	for _, rec := range CollapseLatest(records) {
		if dateKey(rec.Date) != day {
			continue
		}
		summary.Total++
		switch rec.Status {
		case models.Present:
			summary.Present++
		case models.Absent:
			summary.Absent++
		case models.Late:
			summary.Late++
		case models.Excused:
			summary.Excused++
		}
	}
	return summary
}

// HistoricalSummary produces a per-date breakdown for every date that has at
// least one record, most recent date first.
func HistoricalSummary(records []*models.AttendanceRecord) []*DailySummary {
	collapsed := CollapseLatest(records)

	byDay := make(map[string]*DailySummary)
	var days []string
	for _, rec := range collapsed {
		day := dateKey(rec.Date)
		summary, ok := byDay[day]
		if !ok {
			summary = &DailySummary{Date: rec.Date}
			byDay[day] = summary
			days = append(days, day)
		}
		summary.Total++
		switch rec.Status {
		case models.Present:
			summary.Present++
		case models.Absent:
			summary.Absent++
		case models.Late:
			summary.Late++
		case models.Excused:
			summary.Excused++
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	summaries := make([]*DailySummary, 0, len(days))
	for _, day := range days {
		summaries = append(summaries, byDay[day])
	}
	return summaries
}
