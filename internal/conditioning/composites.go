package conditioning

import (
	"sort"
	"time"
)

// CompositeDataPoint aggregates every metric value a player has for one
// calendar day. Values are keyed by metric ID.
type CompositeDataPoint struct {
	Date   time.Time        `json:"date"`
	Values map[string]Value `json:"values"`
}

func (dp CompositeDataPoint) Number(metricID string) (float64, bool) {
	v, ok := dp.Values[metricID]
	if !ok {
		return 0, false
	}
	return v.Float()
}

// Named returns the values keyed by metric display name, for clients that
// still want the name-keyed shape. Values of unknown metrics are dropped.
func (dp CompositeDataPoint) Named(reg *Registry) map[string]Value {
	named := make(map[string]Value, len(dp.Values))
	for id, v := range dp.Values {
		if m, ok := reg.ByID(id); ok {
			named[m.Name] = v
		}
	}
	return named
}

// BuildComposites merges a player's measurements and daily surveys into one
// record per calendar date (as seen in loc), then fills in the calculated
// metrics. Records are sorted by date ascending.
//
// Measurements for the same metric on the same date overwrite each other in
// slice order, so the last one wins. Calculated metrics only see manual and
// survey values: a formula referencing another calculated metric yields no value.
func BuildComposites(player Player, reg *Registry, loc *time.Location) []CompositeDataPoint {
	return defaultEvaluator.BuildComposites(player, reg, loc)
}

func (e *Evaluator) BuildComposites(player Player, reg *Registry, loc *time.Location) []CompositeDataPoint {
	if reg == nil {
		return []CompositeDataPoint{}
	}

	manual := make(map[string]MetricDefinition)
	for _, m := range reg.ActiveOfType(InputManual) {
		manual[m.ID] = m
	}
	surveyLinked := reg.ActiveOfType(InputSurvey)
	calculated := reg.ActiveOfType(InputCalculated)

	byDate := make(map[time.Time]*CompositeDataPoint)
	record := func(day time.Time) *CompositeDataPoint {
		dp, ok := byDate[day]
		if !ok {
			dp = &CompositeDataPoint{
				Date:   day,
				Values: make(map[string]Value),
			}
			byDate[day] = dp
		}
		return dp
	}

	for _, ms := range player.Measurements {
		m, ok := manual[ms.MetricID]
		if !ok {
			continue
		}
		record(CalendarDate(ms.Date, loc)).Values[m.ID] = NumberValue(ms.Value)
	}

	for _, survey := range player.DailySurveys {
		// survey dates are calendar dates already
		dp := record(CalendarDate(survey.Date, time.UTC))
		for _, m := range surveyLinked {
			answer, ok := survey.Answers[m.SurveyQuestionKey]
			if !ok || answer.IsZero() {
				continue
			}
			dp.Values[m.ID] = answer
		}
	}

	for _, dp := range byDate {
		// formulas are evaluated against the manual and survey values only
		base := CompositeDataPoint{
			Date:   dp.Date,
			Values: make(map[string]Value, len(dp.Values)),
		}
		for id, v := range dp.Values {
			base.Values[id] = v
		}
		for _, m := range calculated {
			if m.Formula == "" {
				continue
			}
			if res, ok := e.Evaluate(m.Formula, base, reg); ok {
				dp.Values[m.ID] = NumberValue(res)
			}
		}
	}

	composites := make([]CompositeDataPoint, 0, len(byDate))
	for _, dp := range byDate {
		composites = append(composites, *dp)
	}
	sort.Slice(composites, func(i, j int) bool {
		return composites[i].Date.Before(composites[j].Date)
	})

	return composites
}
