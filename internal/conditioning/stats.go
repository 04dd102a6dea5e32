package conditioning

import "time"

// ProfileMetricIDs points at the metrics shown in a player's profile header.
// Any of them may be empty when the team does not track that metric.
type ProfileMetricIDs struct {
	Height  string `toml:"height_metric_id"`
	Weight  string `toml:"weight_metric_id"`
	BodyFat string `toml:"body_fat_metric_id"`
}

type LatestStats struct {
	Height  *float64 `json:"height"`
	Weight  *float64 `json:"weight"`
	BodyFat *float64 `json:"bodyFat"`
	Age     *int     `json:"age"`
}

func PlayerLatestStats(player Player, ids ProfileMetricIDs, now time.Time) LatestStats {
	latest := func(metricID string) *float64 {
		if metricID == "" {
			return nil
		}
		ms, ok := LatestMeasurement(player.Measurements, metricID)
		if !ok {
			return nil
		}
		v := ms.Value
		return &v
	}

	stats := LatestStats{
		Height:  latest(ids.Height),
		Weight:  latest(ids.Weight),
		BodyFat: latest(ids.BodyFat),
	}
	if player.BirthDate != nil {
		age := Age(*player.BirthDate, now)
		stats.Age = &age
	}
	return stats
}

// Age in full years at now.
func Age(birthDate, now time.Time) int {
	age := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}
	return age
}
