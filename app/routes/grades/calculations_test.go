package grades

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
)

var testBase = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func activity(id string, weight int) *models.Activity {
	return &models.Activity{
		ID:        id,
		GrupoID:   "grupo-1",
		Name:      "Activity " + id,
		Kind:      models.KindExam,
		Weight:    weight,
		CreatedAt: testBase,
		UpdatedAt: testBase,
	}
}

func grade(activityID, studentID string, score *float64, updatedAt time.Time) *models.Grade {
	return &models.Grade{
		ID:         activityID + "/" + studentID,
		ActivityID: activityID,
		StudentID:  studentID,
		Score:      score,
		UpdatedAt:  updatedAt,
	}
}

func score(v float64) *float64 { return &v }

func TestStudentAverageSimpleMean(t *testing.T) {
	activities := []*models.Activity{activity("a1", 50), activity("a2", 50)}
	grades := []*models.Grade{
		grade("a1", "s1", score(10), testBase),
		grade("a2", "s1", score(8), testBase),
	}

	avg, err := StudentAverage(activities, grades, "s1")
	require.NoError(t, err)
	assert.InDelta(t, 9.0, avg, 0.0001)
}

func TestStudentAverageSkipsUngradedActivities(t *testing.T) {
	// Ungraded activities drop out of numerator and denominator both; a
	// missing score never drags the mean toward zero.
	activities := []*models.Activity{activity("a1", 40), activity("a2", 30), activity("a3", 30)}
	grades := []*models.Grade{
		grade("a1", "s1", score(10), testBase),
		grade("a2", "s1", nil, testBase),
	}

	avg, err := StudentAverage(activities, grades, "s1")
	require.NoError(t, err)
	assert.InDelta(t, 10.0, avg, 0.0001)
}

func TestStudentAverageNoGrades(t *testing.T) {
	activities := []*models.Activity{activity("a1", 50), activity("a2", 50)}
	grades := []*models.Grade{
		grade("a1", "s1", nil, testBase),
		grade("a2", "s1", nil, testBase),
	}

	_, err := StudentAverage(activities, grades, "s1")
	assert.ErrorIs(t, err, ErrNoGrades)
}

func TestStudentAverageNoActivities(t *testing.T) {
	_, err := StudentAverage(nil, nil, "s1")
	assert.ErrorIs(t, err, ErrNoGrades)
}

func TestStudentAverageLatestDuplicateWins(t *testing.T) {
	activities := []*models.Activity{activity("a1", 100)}
	older := grade("a1", "s1", score(6), testBase)
	newer := grade("a1", "s1", score(9), testBase.Add(5*time.Minute))

	// Result must not depend on slice order.
	for _, grades := range [][]*models.Grade{
		{older, newer},
		{newer, older},
	} {
		avg, err := StudentAverage(activities, grades, "s1")
		require.NoError(t, err)
		assert.InDelta(t, 9.0, avg, 0.0001)
	}
}

func TestStudentAverageIgnoresDeletedActivities(t *testing.T) {
	deleted := activity("a2", 50)
	deletedAt := testBase.Add(time.Hour)
	deleted.DeletedAt = &deletedAt

	activities := []*models.Activity{activity("a1", 50), deleted}
	grades := []*models.Grade{
		grade("a1", "s1", score(8), testBase),
		grade("a2", "s1", score(2), testBase),
	}

	avg, err := StudentAverage(activities, grades, "s1")
	require.NoError(t, err)
	assert.InDelta(t, 8.0, avg, 0.0001)
}

func TestStudentAverageRejectsMalformedScores(t *testing.T) {
	activities := []*models.Activity{activity("a1", 100)}

	for name, bad := range map[string]float64{
		"negative":  -1,
		"too large": maxSaneScore + 1,
	} {
		t.Run(name, func(t *testing.T) {
			grades := []*models.Grade{grade("a1", "s1", score(bad), testBase)}
			_, err := StudentAverage(activities, grades, "s1")

			var validationErr *models.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "score", validationErr.Field)
		})
	}
}

func TestStudentAverageStrayGradeIsNotFound(t *testing.T) {
	activities := []*models.Activity{activity("a1", 100)}
	grades := []*models.Grade{
		grade("a1", "s1", score(7), testBase),
		grade("ghost", "s1", score(9), testBase),
	}

	_, err := StudentAverage(activities, grades, "s1")

	var notFound *models.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "ghost", notFound.ID)
}

func TestStudentWeightedAverage(t *testing.T) {
	activities := []*models.Activity{activity("a1", 60), activity("a2", 40)}
	grades := []*models.Grade{
		grade("a1", "s1", score(10), testBase),
		grade("a2", "s1", score(5), testBase),
	}

	avg, err := StudentWeightedAverage(activities, grades, "s1")
	require.NoError(t, err)
	// (10*60 + 5*40) / 100 = 8
	assert.InDelta(t, 8.0, avg, 0.0001)
}

func TestStudentWeightedAverageRenormalizesOverGraded(t *testing.T) {
	// Only a1 is graded, so its weight alone forms the denominator.
	activities := []*models.Activity{activity("a1", 60), activity("a2", 40)}
	grades := []*models.Grade{grade("a1", "s1", score(7), testBase)}

	avg, err := StudentWeightedAverage(activities, grades, "s1")
	require.NoError(t, err)
	assert.InDelta(t, 7.0, avg, 0.0001)
}

func TestStudentWeightedAverageZeroTotalWeight(t *testing.T) {
	activities := []*models.Activity{activity("a1", 0)}
	grades := []*models.Grade{grade("a1", "s1", score(7), testBase)}

	_, err := StudentWeightedAverage(activities, grades, "s1")

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "weight", validationErr.Field)
}

func TestActivityStats(t *testing.T) {
	grades := []*models.Grade{
		grade("a1", "s1", score(6), testBase),
		grade("a1", "s2", score(8), testBase),
		grade("a1", "s3", score(10), testBase),
		grade("a1", "s4", nil, testBase),
	}

	result, err := ActivityStats(grades)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Count)
	assert.Equal(t, 3, result.Graded)
	require.NotNil(t, result.Mean)
	assert.InDelta(t, 8.0, *result.Mean, 0.0001)
	require.NotNil(t, result.Median)
	assert.InDelta(t, 8.0, *result.Median, 0.0001)
	require.NotNil(t, result.Min)
	assert.InDelta(t, 6.0, *result.Min, 0.0001)
	require.NotNil(t, result.Max)
	assert.InDelta(t, 10.0, *result.Max, 0.0001)
}

func TestActivityStatsNoScores(t *testing.T) {
	grades := []*models.Grade{
		grade("a1", "s1", nil, testBase),
		grade("a1", "s2", nil, testBase),
	}

	result, err := ActivityStats(grades)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Count)
	assert.Equal(t, 0, result.Graded)
	assert.Nil(t, result.Mean)
	assert.Nil(t, result.Median)
	assert.Nil(t, result.Min)
	assert.Nil(t, result.Max)
}

func TestActivityStatsCollapsesDuplicates(t *testing.T) {
	grades := []*models.Grade{
		grade("a1", "s1", score(4), testBase),
		grade("a1", "s1", score(9), testBase.Add(time.Minute)),
	}

	result, err := ActivityStats(grades)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Count)
	require.NotNil(t, result.Mean)
	assert.InDelta(t, 9.0, *result.Mean, 0.0001)
}

func TestGroupAveragesIsolatesFailures(t *testing.T) {
	activities := []*models.Activity{activity("a1", 100)}
	grades := []*models.Grade{
		grade("a1", "s1", score(8), testBase),
		grade("a1", "s2", score(-3), testBase), // malformed
		// s3 has nothing recorded
	}

	summaries := GroupAverages(activities, grades, []string{"s1", "s2", "s3"}, false)
	require.Len(t, summaries, 3)

	require.NotNil(t, summaries[0].Average)
	assert.InDelta(t, 8.0, *summaries[0].Average, 0.0001)
	assert.Empty(t, summaries[0].Error)

	assert.Nil(t, summaries[1].Average)
	assert.NotEmpty(t, summaries[1].Error)

	assert.Nil(t, summaries[2].Average)
	assert.Empty(t, summaries[2].Error)
}

func TestGroupAveragesWeightedVariant(t *testing.T) {
	activities := []*models.Activity{activity("a1", 75), activity("a2", 25)}
	grades := []*models.Grade{
		grade("a1", "s1", score(8), testBase),
		grade("a2", "s1", score(4), testBase),
	}

	summaries := GroupAverages(activities, grades, []string{"s1"}, true)
	require.Len(t, summaries, 1)
	require.NotNil(t, summaries[0].Average)
	// (8*75 + 4*25) / 100 = 7
	assert.InDelta(t, 7.0, *summaries[0].Average, 0.0001)
}

func TestValidateScoreBoundaries(t *testing.T) {
	assert.NoError(t, validateScore(0))
	assert.NoError(t, validateScore(maxSaneScore))
	assert.Error(t, validateScore(-0.01))

	err := validateScore(maxSaneScore + 0.01)
	require.Error(t, err)
	assert.True(t, errors.As(err, new(*models.ValidationError)))
}
