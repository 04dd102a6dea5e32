package conditioning

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"
)

// CleanSurveyAnswers checks answers against the active questions.
// Answers to unknown or inactive questions are dropped. Number and range
// answers must be numeric and range answers must lie in [RangeMin, RangeMax];
// empty textarea answers are dropped.
func CleanSurveyAnswers(questions []SurveyQuestion, answers map[string]Value) (map[string]Value, error) {
	byKey := make(map[string]SurveyQuestion, len(questions))
	for _, q := range questions {
		if q.IsActive {
			byKey[q.Key] = q
		}
	}

	var err error
	cleaned := make(map[string]Value, len(answers))
	for key, answer := range answers {
		q, ok := byKey[key]
		if !ok || answer.IsZero() {
			continue
		}

		switch q.Type {
		case QuestionNumber, QuestionRange:
			n, isNum := answer.Float()
			if !isNum {
				err = multierr.Append(err, fmt.Errorf("answer to [%s] must be a number", key))
				continue
			}
			if q.Type == QuestionRange && (n < RangeMin || n > RangeMax) {
				err = multierr.Append(err, fmt.Errorf("answer to [%s] must be between %d and %d", key, RangeMin, RangeMax))
				continue
			}
			cleaned[key] = answer
		case QuestionTextarea:
			text := strings.TrimSpace(answer.String())
			if text == "" {
				continue
			}
			cleaned[key] = TextValue(text)
		}
	}

	if err != nil {
		return nil, err
	}
	return cleaned, nil
}

// SurveyCompletedOn tells whether the player already submitted a survey for
// the calendar day of t (as seen in loc).
func SurveyCompletedOn(player Player, t time.Time, loc *time.Location) bool {
	day := CalendarDate(t, loc)
	for _, s := range player.DailySurveys {
		if CalendarDate(s.Date, time.UTC).Equal(day) {
			return true
		}
	}
	return false
}

type DashboardSummary struct {
	TotalPlayers   int `json:"totalPlayers"`
	InjuredPlayers int `json:"injuredPlayers"`
	SurveysToday   int `json:"surveysToday"`
}

func Summarize(players []Player, now time.Time, loc *time.Location) DashboardSummary {
	summary := DashboardSummary{
		TotalPlayers: len(players),
	}
	for _, p := range players {
		if p.Injury != nil || CurrentInjury(p.InjuryHistory) != nil {
			summary.InjuredPlayers++
		}
		if SurveyCompletedOn(p, now, loc) {
			summary.SurveysToday++
		}
	}
	return summary
}
