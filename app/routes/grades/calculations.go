package grades

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
)

// ErrNoGrades is returned when zero activities have a recorded score. It is a
// defined "no data" outcome, distinct from an average of zero.
var ErrNoGrades = errors.New("no grades recorded")

// maxSaneScore bounds what the aggregator will accept as a score. The grading
// scale itself is institution-configured; anything negative or past this
// bound is malformed input, reported rather than clamped.
const maxSaneScore = 1000.0

// currentGrades resolves the logically-current grade per activity for one
// student: the row with the latest updated_at wins when historical duplicates
// exist. A grade referencing an activity outside the supplied set is a
// NotFoundError, not a silent skip.
func currentGrades(activities []*models.Activity, grades []*models.Grade, studentID string) (map[string]*models.Grade, error) {
	byActivity := make(map[string]*models.Activity, len(activities))
	for _, a := range activities {
		byActivity[a.ID] = a
	}

	current := make(map[string]*models.Grade)
	for _, g := range grades {
		if g.StudentID != studentID {
			continue
		}
		if _, ok := byActivity[g.ActivityID]; !ok {
			return nil, &models.NotFoundError{Entity: "activity", ID: g.ActivityID}
		}
		if prev, ok := current[g.ActivityID]; !ok || g.UpdatedAt.After(prev.UpdatedAt) {
			current[g.ActivityID] = g
		}
	}
	return current, nil
}

func validateScore(score float64) error {
	if score < 0 {
		return &models.ValidationError{Field: "score", Msg: fmt.Sprintf("negative score %.2f", score)}
	}
	if score > maxSaneScore {
		return &models.ValidationError{Field: "score", Msg: fmt.Sprintf("score %.2f exceeds %.0f", score, maxSaneScore)}
	}
	return nil
}

// StudentAverage computes the arithmetic mean of the student's available
// scores across the grupo's activities. Activities with no recorded score are
// excluded from both numerator and denominator; a missing grade is not a
// zero. Returns ErrNoGrades when nothing has been scored.
func StudentAverage(activities []*models.Activity, grades []*models.Grade, studentID string) (float64, error) {
	current, err := currentGrades(activities, grades, studentID)
	if err != nil {
		return 0, err
	}

	var sum float64
	var count int
	for _, a := range activities {
		if a.DeletedAt != nil {
			continue
		}
		g, ok := current[a.ID]
		if !ok || g.Score == nil {
			continue
		}
		if err := validateScore(*g.Score); err != nil {
			return 0, err
		}
		sum += *g.Score
		count++
	}

	if count == 0 {
		return 0, ErrNoGrades
	}
	return sum / float64(count), nil
}

// StudentWeightedAverage applies each activity's configured weight:
// sum(score*weight) / sum(weight) over graded activities. Weights are not
// required to sum to 100 across the grupo. Callers choose this variant
// explicitly; StudentAverage is the default rollup.
func StudentWeightedAverage(activities []*models.Activity, grades []*models.Grade, studentID string) (float64, error) {
	current, err := currentGrades(activities, grades, studentID)
	if err != nil {
		return 0, err
	}

	var weightedSum float64
	var totalWeight int
	var count int
	for _, a := range activities {
		if a.DeletedAt != nil {
			continue
		}
		g, ok := current[a.ID]
		if !ok || g.Score == nil {
			continue
		}
		if err := validateScore(*g.Score); err != nil {
			return 0, err
		}
		weightedSum += *g.Score * float64(a.Weight)
		totalWeight += a.Weight
		count++
	}

	if count == 0 {
		return 0, ErrNoGrades
	}
	if totalWeight == 0 {
		return 0, &models.ValidationError{Field: "weight", Msg: "graded activities have zero total weight"}
	}
	return weightedSum / float64(totalWeight), nil
}

// ActivityStatsResult summarizes one activity's scores across students.
// Stat fields are nil when no student has a recorded score.
type ActivityStatsResult struct {
	Count  int      `json:"count"`
	Graded int      `json:"graded"`
	Mean   *float64 `json:"mean"`
	Median *float64 `json:"median"`
	Min    *float64 `json:"min"`
	Max    *float64 `json:"max"`
}

// ActivityStats computes per-activity statistics over the current grade per
// student. Ungraded rows count toward Count but not toward the stats.
func ActivityStats(grades []*models.Grade) (*ActivityStatsResult, error) {
	// Collapse duplicates to the latest row per student.
	current := make(map[string]*models.Grade)
	for _, g := range grades {
		if prev, ok := current[g.StudentID]; !ok || g.UpdatedAt.After(prev.UpdatedAt) {
			current[g.StudentID] = g
		}
	}

	result := &ActivityStatsResult{Count: len(current)}

	var scores []float64
	for _, g := range current {
		if g.Score == nil {
			continue
		}
		if err := validateScore(*g.Score); err != nil {
			return nil, err
		}
		scores = append(scores, *g.Score)
	}
	result.Graded = len(scores)

	if len(scores) == 0 {
		return result, nil
	}

	mean, err := stats.Mean(scores)
	if err != nil {
		return nil, err
	}
	median, err := stats.Median(scores)
	if err != nil {
		return nil, err
	}
	min, err := stats.Min(scores)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(scores)
	if err != nil {
		return nil, err
	}

	result.Mean = &mean
	result.Median = &median
	result.Min = &min
	result.Max = &max
	return result, nil
}

// StudentSummary is one student's row in a grupo grade-book rollup. Average
// is nil when the student has no recorded scores; Error carries a per-student
// failure without aborting the rest of the batch.
type StudentSummary struct {
	StudentID string   `json:"student_id"`
	Average   *float64 `json:"average"`
	Error     string   `json:"error,omitempty"`
}

// GroupAverages computes every student's rollup independently. One student's
// malformed grade must not abort another student's valid average.
func GroupAverages(activities []*models.Activity, grades []*models.Grade, studentIDs []string, weighted bool) []StudentSummary {
	summaries := make([]StudentSummary, 0, len(studentIDs))
	for _, studentID := range studentIDs {
		summary := StudentSummary{StudentID: studentID}

		var avg float64
		var err error
		if weighted {
			avg, err = StudentWeightedAverage(activities, grades, studentID)
		} else {
			avg, err = StudentAverage(activities, grades, studentID)
		}

		switch {
		case err == nil:
			summary.Average = &avg
		case errors.Is(err, ErrNoGrades):
			// no data; Average stays nil
		default:
			summary.Error = err.Error()
		}

		summaries = append(summaries, summary)
	}
	return summaries
}
