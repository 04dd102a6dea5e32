package conditioning

import (
	"math"
)

type RadarPoint struct {
	Subject  string  `json:"subject"`
	MetricID string  `json:"metricId"`
	Value    float64 `json:"value"`
	RawValue float64 `json:"rawValue"`
	FullMark float64 `json:"fullMark"`
}

// LatestDataPoint builds a synthetic data point from the most recent
// measurement of every manual metric, regardless of the date it was taken on.
// Its date is the newest of those dates.
func LatestDataPoint(player Player, reg *Registry) CompositeDataPoint {
	latest := CompositeDataPoint{
		Values: make(map[string]Value),
	}
	if reg == nil {
		return latest
	}

	for _, m := range reg.OfType(InputManual) {
		if ms, ok := LatestMeasurement(player.Measurements, m.ID); ok {
			latest.Values[m.ID] = NumberValue(ms.Value)
			if ms.Date.After(latest.Date) {
				latest.Date = ms.Date
			}
		}
	}
	return latest
}

// LatestMeasurement returns the measurement with the latest date for the metric.
// On equal dates the one appearing first in the slice is kept.
func LatestMeasurement(measurements []Measurement, metricID string) (Measurement, bool) {
	var latest Measurement
	found := false
	for _, ms := range measurements {
		if ms.MetricID != metricID {
			continue
		}
		if !found || ms.Date.After(latest.Date) {
			latest = ms
			found = true
		}
	}
	return latest, found
}

// BuildRadarSnapshot produces one radar axis per active metric shown in radar.
// The axis maximum adapts to the player's own history so that every axis has
// a usable scale.
func BuildRadarSnapshot(player Player, reg *Registry, composites []CompositeDataPoint) []RadarPoint {
	return defaultEvaluator.BuildRadarSnapshot(player, reg, composites)
}

func (e *Evaluator) BuildRadarSnapshot(player Player, reg *Registry, composites []CompositeDataPoint) []RadarPoint {
	points := make([]RadarPoint, 0)
	if reg == nil {
		return points
	}

	latestPoint := LatestDataPoint(player, reg)
	for _, m := range reg.RadarMetrics() {
		latest, ok := e.latestValue(m, latestPoint, composites, reg)
		if !ok {
			points = append(points, RadarPoint{
				Subject:  m.Name,
				MetricID: m.ID,
				Value:    0,
				RawValue: 0,
				FullMark: 1,
			})
			continue
		}

		points = append(points, RadarPoint{
			Subject:  m.Name,
			MetricID: m.ID,
			Value:    latest,
			RawValue: latest,
			FullMark: FullMark(m.ID, latest, composites),
		})
	}

	return points
}

func (e *Evaluator) latestValue(
	m MetricDefinition,
	latestPoint CompositeDataPoint,
	composites []CompositeDataPoint,
	reg *Registry,
) (float64, bool) {
	switch m.InputType {
	case InputManual:
		return latestPoint.Number(m.ID)
	case InputCalculated:
		if m.Formula == "" {
			return 0, false
		}
		return e.Evaluate(m.Formula, latestPoint, reg)
	case InputSurvey:
		for i := len(composites) - 1; i >= 0; i-- {
			if v, ok := composites[i].Number(m.ID); ok {
				return v, true
			}
		}
		return 0, false
	default:
		return 0, false
	}
}

// FullMark is the radar axis maximum: the largest of the historical values
// and the latest one. With no history it is latest*1.2 (or 1 when latest <= 0).
func FullMark(metricID string, latest float64, composites []CompositeDataPoint) float64 {
	maxValue := math.Inf(-1)
	hasHistory := false
	for _, dp := range composites {
		v, ok := dp.Number(metricID)
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		hasHistory = true
		if v > maxValue {
			maxValue = v
		}
	}

	if !hasHistory {
		if latest > 0 {
			return latest * 1.2
		}
		return 1
	}
	return math.Max(maxValue, latest)
}
