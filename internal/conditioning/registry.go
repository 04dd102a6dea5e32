package conditioning

import (
	"github.com/2beens/kondisca/internal/conditioning/formula"
)

// Registry is an immutable snapshot of metric definitions, built once per
// request from whatever the record store returned.
type Registry struct {
	metrics []MetricDefinition
	byID    map[string]int
	byName  map[string]int
}

func NewRegistry(metrics []MetricDefinition) *Registry {
	r := &Registry{
		metrics: make([]MetricDefinition, 0, len(metrics)),
		byID:    make(map[string]int, len(metrics)),
		byName:  make(map[string]int, len(metrics)),
	}
	for _, m := range metrics {
		if _, ok := r.byID[m.ID]; ok {
			continue
		}
		r.metrics = append(r.metrics, m)
		idx := len(r.metrics) - 1
		r.byID[m.ID] = idx
		// names are unique in the store; if not, the first one wins
		if _, ok := r.byName[m.Name]; !ok {
			r.byName[m.Name] = idx
		}
	}
	return r
}

func (r *Registry) All() []MetricDefinition {
	return r.filter(func(MetricDefinition) bool { return true })
}

func (r *Registry) Len() int {
	return len(r.metrics)
}

func (r *Registry) ByID(id string) (MetricDefinition, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return MetricDefinition{}, false
	}
	return r.metrics[idx], true
}

func (r *Registry) ByName(name string) (MetricDefinition, bool) {
	idx, ok := r.byName[name]
	if !ok {
		return MetricDefinition{}, false
	}
	return r.metrics[idx], true
}

func (r *Registry) Active() []MetricDefinition {
	return r.filter(func(m MetricDefinition) bool { return m.IsActive })
}

func (r *Registry) ActiveOfType(inputType InputType) []MetricDefinition {
	return r.filter(func(m MetricDefinition) bool {
		return m.IsActive && m.InputType == inputType
	})
}

// OfType includes inactive metrics too.
func (r *Registry) OfType(inputType InputType) []MetricDefinition {
	return r.filter(func(m MetricDefinition) bool { return m.InputType == inputType })
}

func (r *Registry) RadarMetrics() []MetricDefinition {
	return r.filter(func(m MetricDefinition) bool { return m.IsActive && m.ShowInRadar })
}

// LeaderboardMetrics are the metrics a leaderboard can be ranked by:
// active manual metrics that are not excluded from ranking (e.g. height).
func (r *Registry) LeaderboardMetrics() []MetricDefinition {
	return r.filter(func(m MetricDefinition) bool {
		return m.IsActive && m.InputType == InputManual && !m.ExcludeFromLeaderboard
	})
}

func (r *Registry) ChartableMetrics() []MetricDefinition {
	return r.filter(func(m MetricDefinition) bool {
		return m.IsActive && !m.ExcludeFromLeaderboard
	})
}

// UnresolvedReferences lists the names used in a formula that will never
// resolve during composite building: unknown names and names of other
// calculated metrics (calculated metrics are not chained).
func (r *Registry) UnresolvedReferences(src string) ([]string, error) {
	expr, err := formula.Parse(src)
	if err != nil {
		return nil, err
	}
	var unresolved []string
	for _, name := range expr.Refs() {
		m, ok := r.ByName(name)
		if !ok || m.InputType == InputCalculated {
			unresolved = append(unresolved, name)
		}
	}
	return unresolved, nil
}

func (r *Registry) filter(keep func(MetricDefinition) bool) []MetricDefinition {
	var res []MetricDefinition
	for _, m := range r.metrics {
		if keep(m) {
			res = append(res, m)
		}
	}
	return res
}
