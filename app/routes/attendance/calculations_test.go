package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
)

var day1 = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
var day2 = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func record(studentID string, date time.Time, status models.AttendanceStatus, recordedAt time.Time) *models.AttendanceRecord {
	return &models.AttendanceRecord{
		ID:         studentID + "@" + date.Format("2006-01-02"),
		StudentID:  studentID,
		GrupoID:    "grupo-1",
		Date:       date,
		Status:     status,
		RecordedAt: recordedAt,
	}
}

func TestStudentPercentage(t *testing.T) {
	at := day1.Add(9 * time.Hour)
	records := []*models.AttendanceRecord{
		record("s1", day1, models.Present, at),
		record("s1", day1.AddDate(0, 0, 1), models.Present, at),
		record("s1", day1.AddDate(0, 0, 2), models.Absent, at),
		record("s1", day1.AddDate(0, 0, 3), models.Present, at),
		record("s1", day1.AddDate(0, 0, 4), models.Present, at),
	}

	pct, err := StudentPercentage(records, "s1")
	require.NoError(t, err)
	assert.InDelta(t, 80.0, pct, 0.0001)
}

func TestStudentPercentageCountsPresentOnly(t *testing.T) {
	// Late and excused still count toward recorded dates but not as present.
	at := day1.Add(9 * time.Hour)
	records := []*models.AttendanceRecord{
		record("s1", day1, models.Present, at),
		record("s1", day1.AddDate(0, 0, 1), models.Late, at),
		record("s1", day1.AddDate(0, 0, 2), models.Excused, at),
		record("s1", day1.AddDate(0, 0, 3), models.Absent, at),
	}

	pct, err := StudentPercentage(records, "s1")
	require.NoError(t, err)
	assert.InDelta(t, 25.0, pct, 0.0001)
}

func TestStudentPercentageNoRecords(t *testing.T) {
	// No records is undefined, not zero percent.
	_, err := StudentPercentage(nil, "s1")
	assert.ErrorIs(t, err, ErrNoAttendance)

	at := day1.Add(9 * time.Hour)
	others := []*models.AttendanceRecord{record("s2", day1, models.Absent, at)}
	_, err = StudentPercentage(others, "s1")
	assert.ErrorIs(t, err, ErrNoAttendance)
}

func TestCollapseLatestRevisionWins(t *testing.T) {
	morning := day1.Add(9 * time.Hour)
	corrected := day1.Add(9*time.Hour + 5*time.Minute)

	first := record("s1", day1, models.Absent, morning)
	revision := record("s1", day1, models.Present, corrected)

	// Effective status must not depend on input order.
	for _, records := range [][]*models.AttendanceRecord{
		{first, revision},
		{revision, first},
	} {
		collapsed := CollapseLatest(records)
		require.Len(t, collapsed, 1)
		assert.Equal(t, models.Present, collapsed[0].Status)
	}
}

func TestCollapseLatestKeepsDistinctKeys(t *testing.T) {
	at := day1.Add(9 * time.Hour)
	records := []*models.AttendanceRecord{
		record("s1", day1, models.Present, at),
		record("s2", day1, models.Absent, at),
		record("s1", day2, models.Late, at.AddDate(0, 0, 1)),
	}

	collapsed := CollapseLatest(records)
	assert.Len(t, collapsed, 3)
}

func TestGroupDailySummary(t *testing.T) {
	at := day1.Add(8 * time.Hour)
	records := []*models.AttendanceRecord{
		record("s1", day1, models.Present, at),
		record("s2", day1, models.Present, at),
		record("s3", day1, models.Absent, at),
		record("s4", day1, models.Late, at),
		record("s5", day1, models.Excused, at),
		// different day, must not leak into day1's tally
		record("s1", day2, models.Absent, at.AddDate(0, 0, 1)),
	}

	summary := GroupDailySummary(records, day1)

	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 2, summary.Present)
	assert.Equal(t, 1, summary.Absent)
	assert.Equal(t, 1, summary.Late)
	assert.Equal(t, 1, summary.Excused)
	assert.Equal(t, summary.Total, summary.Present+summary.Absent+summary.Late+summary.Excused)
	assert.InDelta(t, 40.0, summary.Rate(), 0.0001)
}

func TestGroupDailySummaryCountsRecordedOnly(t *testing.T) {
	// Total reflects students with a record, not the roster. An empty day
	// tallies to zero everywhere.
	summary := GroupDailySummary(nil, day1)
	assert.Equal(t, 0, summary.Total)
	assert.Zero(t, summary.Rate())
}

func TestGroupDailySummaryUsesEffectiveRecords(t *testing.T) {
	morning := day1.Add(9 * time.Hour)
	records := []*models.AttendanceRecord{
		record("s1", day1, models.Absent, morning),
		record("s1", day1, models.Present, morning.Add(5*time.Minute)),
	}

	summary := GroupDailySummary(records, day1)
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 1, summary.Present)
	assert.Equal(t, 0, summary.Absent)
}

func TestHistoricalSummaryDescending(t *testing.T) {
	at := day1.Add(8 * time.Hour)
	records := []*models.AttendanceRecord{
		record("s1", day1, models.Present, at),
		record("s2", day1, models.Absent, at),
		record("s1", day2, models.Present, at.AddDate(0, 0, 1)),
	}

	summaries := HistoricalSummary(records)
	require.Len(t, summaries, 2)

	assert.Equal(t, day2, summaries[0].Date)
	assert.Equal(t, 1, summaries[0].Total)
	assert.Equal(t, day1, summaries[1].Date)
	assert.Equal(t, 2, summaries[1].Total)
}

func TestHistoricalSummaryEmpty(t *testing.T) {
	assert.Empty(t, HistoricalSummary(nil))
}

func TestRoundPercent(t *testing.T) {
	assert.Equal(t, 67.0, RoundPercent(200.0/3.0))
	assert.Equal(t, 80.0, RoundPercent(80.0))
	assert.Equal(t, 33.0, RoundPercent(100.0/3.0))
}
