package conditioning

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
)

const LeaderboardSize = 5

// ChangeType selects what the leaderboard is ranked by.
type ChangeType string

const (
	ChangePercent ChangeType = "percent"
	ChangeUnit    ChangeType = "unit"
	ChangeLatest  ChangeType = "latest"
)

func ParseChangeType(s string) (ChangeType, error) {
	switch ct := ChangeType(strings.ToLower(strings.TrimSpace(s))); ct {
	case ChangePercent, ChangeUnit, ChangeLatest:
		return ct, nil
	case "":
		return ChangePercent, nil
	default:
		return "", fmt.Errorf("unknown change type [%s]", s)
	}
}

type SortOrder string

const (
	SortDesc SortOrder = "desc"
	SortAsc  SortOrder = "asc"
)

func ParseSortOrder(s string) (SortOrder, error) {
	switch so := SortOrder(strings.ToLower(strings.TrimSpace(s))); so {
	case SortDesc, SortAsc:
		return so, nil
	case "":
		return SortDesc, nil
	default:
		return "", fmt.Errorf("unknown sort order [%s]", s)
	}
}

// Percent is an improvement percentage. It can be +Inf when the first
// measurement was 0; JSON has no infinity, so it is written as "Infinity".
type Percent float64

func (p Percent) MarshalJSON() ([]byte, error) {
	f := float64(p)
	switch {
	case math.IsInf(f, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Infinity"`), nil
	case math.IsNaN(f):
		return []byte("null"), nil
	default:
		return json.Marshal(f)
	}
}

func (p *Percent) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"Infinity"`:
		*p = Percent(math.Inf(1))
		return nil
	case `"-Infinity"`:
		*p = Percent(math.Inf(-1))
		return nil
	case "null":
		*p = 0
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*p = Percent(f)
	return nil
}

type LeaderboardPlayer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Position  string `json:"position"`
	AvatarURL string `json:"avatarUrl"`
}

type LeaderboardEntry struct {
	Player              LeaderboardPlayer `json:"player"`
	LatestValue         float64           `json:"latestValue"`
	ImprovementAbsolute float64           `json:"improvementAbsolute"`
	ImprovementPercent  Percent           `json:"improvementPercent"`
	Measurements        int               `json:"measurements"`
}

// PlayerProgress computes the trend of a player's measurements for one metric.
// It reports false when the player has no measurement for the metric.
func PlayerProgress(player Player, metricID string) (LeaderboardEntry, bool) {
	var relevant []Measurement
	for _, ms := range player.Measurements {
		if ms.MetricID == metricID {
			relevant = append(relevant, ms)
		}
	}
	if len(relevant) == 0 {
		return LeaderboardEntry{}, false
	}

	sort.SliceStable(relevant, func(i, j int) bool {
		return relevant[i].Date.Before(relevant[j].Date)
	})

	entry := LeaderboardEntry{
		Player: LeaderboardPlayer{
			ID:        player.ID,
			Name:      player.Name,
			Position:  player.Position,
			AvatarURL: player.AvatarURL,
		},
		LatestValue:  relevant[len(relevant)-1].Value,
		Measurements: len(relevant),
	}
	if len(relevant) < 2 {
		// no trend from a single point
		return entry, true
	}

	first := relevant[0].Value
	last := entry.LatestValue
	entry.ImprovementAbsolute = Round2(last - first)
	switch {
	case first == 0 && last > 0:
		entry.ImprovementPercent = Percent(math.Inf(1))
	case first == 0:
		entry.ImprovementPercent = 0
	default:
		entry.ImprovementPercent = Percent(Round2((last - first) / first * 100))
	}

	return entry, true
}

// RankPlayers ranks players by the change (or the latest value) of one metric
// and returns the top LeaderboardSize entries. Players without any measurement
// of the metric are left out. Ties keep the input order.
func RankPlayers(players []Player, metricID string, change ChangeType, order SortOrder) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(players))
	for _, p := range players {
		if entry, ok := PlayerProgress(p, metricID); ok {
			entries = append(entries, entry)
		}
	}

	key := func(e LeaderboardEntry) float64 {
		switch change {
		case ChangeLatest:
			return e.LatestValue
		case ChangeUnit:
			return e.ImprovementAbsolute
		default:
			return float64(e.ImprovementPercent)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := key(entries[i]), key(entries[j])
		if order == SortAsc {
			return a < b
		}
		return a > b
	})

	if len(entries) > LeaderboardSize {
		entries = entries[:LeaderboardSize]
	}
	return entries
}
