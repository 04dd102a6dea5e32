// Package memstore is an in-memory conditioning.RecordStore, used for local
// development and in tests of the layers above the store.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/2beens/kondisca/internal/conditioning"

	"github.com/google/uuid"
)

var _ conditioning.RecordStore = (*Store)(nil)

type Store struct {
	mu sync.RWMutex

	metrics      []conditioning.MetricDefinition
	players      []conditioning.Player
	measurements []conditioning.Measurement
	surveys      []conditioning.DailySurvey
	questions    []conditioning.SurveyQuestion
	injuries     []conditioning.Injury

	newID func() string
}

func New() *Store {
	return &Store{
		newID: func() string {
			return uuid.NewString()
		},
	}
}

// Seed preloads the store. Players' nested measurements, surveys and
// injuries are moved into the store's own collections.
func (s *Store) Seed(metrics []conditioning.MetricDefinition, questions []conditioning.SurveyQuestion, players []conditioning.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics = append(s.metrics, metrics...)
	s.questions = append(s.questions, questions...)
	for _, p := range players {
		for _, ms := range p.Measurements {
			ms.PlayerID = p.ID
			if ms.ID == "" {
				ms.ID = s.newID()
			}
			s.measurements = append(s.measurements, ms)
		}
		for _, survey := range p.DailySurveys {
			survey.PlayerID = p.ID
			s.surveys = append(s.surveys, survey)
		}
		for _, inj := range p.InjuryHistory {
			inj.PlayerID = p.ID
			s.injuries = append(s.injuries, inj)
		}
		s.players = append(s.players, bare(p))
	}
}

func bare(p conditioning.Player) conditioning.Player {
	p.Measurements = nil
	p.DailySurveys = nil
	p.InjuryHistory = nil
	p.Injury = nil
	return p
}

func (s *Store) ListMetrics(_ context.Context) ([]conditioning.MetricDefinition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]conditioning.MetricDefinition{}, s.metrics...), nil
}

func (s *Store) GetMetric(_ context.Context, id string) (*conditioning.MetricDefinition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.metricIndex(id)
	if idx < 0 {
		return nil, conditioning.ErrMetricNotFound
	}
	m := s.metrics[idx]
	return &m, nil
}

func (s *Store) AddMetric(_ context.Context, metric conditioning.MetricDefinition) (*conditioning.MetricDefinition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nameTaken(metric.Name, "") {
		return nil, conditioning.ErrMetricNameTaken
	}
	metric.ID = s.newID()
	s.metrics = append(s.metrics, metric)
	return &metric, nil
}

func (s *Store) UpdateMetric(_ context.Context, metric conditioning.MetricDefinition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.metricIndex(metric.ID)
	if idx < 0 {
		return conditioning.ErrMetricNotFound
	}
	if s.nameTaken(metric.Name, metric.ID) {
		return conditioning.ErrMetricNameTaken
	}
	s.metrics[idx] = metric
	return nil
}

func (s *Store) DeleteMetric(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.metricIndex(id)
	if idx < 0 {
		return conditioning.ErrMetricNotFound
	}
	s.metrics = append(s.metrics[:idx], s.metrics[idx+1:]...)
	// measurements of a deleted metric go with it
	s.measurements = filter(s.measurements, func(ms conditioning.Measurement) bool {
		return ms.MetricID != id
	})
	return nil
}

func (s *Store) metricIndex(id string) int {
	for i, m := range s.metrics {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) nameTaken(name, exceptID string) bool {
	for _, m := range s.metrics {
		if m.Name == name && m.ID != exceptID {
			return true
		}
	}
	return false
}

func (s *Store) ListPlayers(_ context.Context) ([]conditioning.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]conditioning.Player, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, s.loaded(p))
	}
	return players, nil
}

func (s *Store) GetPlayer(_ context.Context, id string) (*conditioning.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.playerIndex(id)
	if idx < 0 {
		return nil, conditioning.ErrPlayerNotFound
	}
	p := s.loaded(s.players[idx])
	return &p, nil
}

func (s *Store) AddPlayer(_ context.Context, player conditioning.Player) (*conditioning.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	player = bare(player)
	player.ID = s.newID()
	s.players = append(s.players, player)
	return &player, nil
}

func (s *Store) UpdatePlayer(_ context.Context, player conditioning.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.playerIndex(player.ID)
	if idx < 0 {
		return conditioning.ErrPlayerNotFound
	}
	s.players[idx] = bare(player)
	return nil
}

func (s *Store) DeletePlayer(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.playerIndex(id)
	if idx < 0 {
		return conditioning.ErrPlayerNotFound
	}
	s.players = append(s.players[:idx], s.players[idx+1:]...)
	s.measurements = filter(s.measurements, func(ms conditioning.Measurement) bool { return ms.PlayerID != id })
	s.surveys = filter(s.surveys, func(ds conditioning.DailySurvey) bool { return ds.PlayerID != id })
	s.injuries = filter(s.injuries, func(inj conditioning.Injury) bool { return inj.PlayerID != id })
	return nil
}

func (s *Store) playerIndex(id string) int {
	for i, p := range s.players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// loaded attaches copies of the player's records. Callers hold the lock.
func (s *Store) loaded(p conditioning.Player) conditioning.Player {
	p.Measurements = filter(s.measurements, func(ms conditioning.Measurement) bool { return ms.PlayerID == p.ID })
	p.DailySurveys = nil
	for _, ds := range s.surveys {
		if ds.PlayerID == p.ID {
			p.DailySurveys = append(p.DailySurveys, copySurvey(ds))
		}
	}
	p.InjuryHistory = s.injuriesOf(p.ID)
	p.Injury = conditioning.CurrentInjury(p.InjuryHistory)
	return p
}

func (s *Store) ListMeasurements(_ context.Context, playerID string) ([]conditioning.Measurement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.playerIndex(playerID) < 0 {
		return nil, conditioning.ErrPlayerNotFound
	}
	return filter(s.measurements, func(ms conditioning.Measurement) bool { return ms.PlayerID == playerID }), nil
}

func (s *Store) AddMeasurements(_ context.Context, playerID string, measurements []conditioning.Measurement) ([]conditioning.Measurement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playerIndex(playerID) < 0 {
		return nil, conditioning.ErrPlayerNotFound
	}
	for _, ms := range measurements {
		if s.metricIndex(ms.MetricID) < 0 {
			return nil, conditioning.ErrMetricNotFound
		}
	}

	added := make([]conditioning.Measurement, 0, len(measurements))
	for _, ms := range measurements {
		ms.ID = s.newID()
		ms.PlayerID = playerID
		added = append(added, ms)
	}
	s.measurements = append(s.measurements, added...)
	return added, nil
}

func (s *Store) UpdateMeasurement(_ context.Context, measurement conditioning.Measurement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, ms := range s.measurements {
		if ms.ID == measurement.ID && ms.PlayerID == measurement.PlayerID {
			ms.Value = measurement.Value
			ms.Date = measurement.Date
			s.measurements[i] = ms
			return nil
		}
	}
	return conditioning.ErrMeasurementNotFound
}

func (s *Store) DeleteMeasurement(_ context.Context, playerID, measurementID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, ms := range s.measurements {
		if ms.ID == measurementID && ms.PlayerID == playerID {
			s.measurements = append(s.measurements[:i], s.measurements[i+1:]...)
			return nil
		}
	}
	return conditioning.ErrMeasurementNotFound
}

func (s *Store) ListDailySurveys(_ context.Context, playerID string) ([]conditioning.DailySurvey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.playerIndex(playerID) < 0 {
		return nil, conditioning.ErrPlayerNotFound
	}
	var surveys []conditioning.DailySurvey
	for _, ds := range s.surveys {
		if ds.PlayerID == playerID {
			surveys = append(surveys, copySurvey(ds))
		}
	}
	return surveys, nil
}

func (s *Store) UpsertDailySurvey(_ context.Context, survey conditioning.DailySurvey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playerIndex(survey.PlayerID) < 0 {
		return conditioning.ErrPlayerNotFound
	}
	survey = copySurvey(survey)
	survey.Date = conditioning.CalendarDate(survey.Date, time.UTC)
	for i, ds := range s.surveys {
		if ds.PlayerID == survey.PlayerID && conditioning.CalendarDate(ds.Date, time.UTC).Equal(survey.Date) {
			s.surveys[i] = survey
			return nil
		}
	}
	s.surveys = append(s.surveys, survey)
	return nil
}

func (s *Store) CountSurveysOn(_ context.Context, day time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	day = conditioning.CalendarDate(day, time.UTC)
	count := 0
	for _, ds := range s.surveys {
		if conditioning.CalendarDate(ds.Date, time.UTC).Equal(day) {
			count++
		}
	}
	return count, nil
}

func copySurvey(ds conditioning.DailySurvey) conditioning.DailySurvey {
	answers := make(map[string]conditioning.Value, len(ds.Answers))
	for k, v := range ds.Answers {
		answers[k] = v
	}
	ds.Answers = answers
	return ds
}

func (s *Store) ListSurveyQuestions(_ context.Context) ([]conditioning.SurveyQuestion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]conditioning.SurveyQuestion{}, s.questions...), nil
}

func (s *Store) AddSurveyQuestion(_ context.Context, question conditioning.SurveyQuestion) (*conditioning.SurveyQuestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.questionKeyTaken(question.Key, "") {
		return nil, conditioning.ErrQuestionKeyTaken
	}
	question.ID = s.newID()
	s.questions = append(s.questions, question)
	return &question, nil
}

func (s *Store) UpdateSurveyQuestion(_ context.Context, question conditioning.SurveyQuestion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.questionKeyTaken(question.Key, question.ID) {
		return conditioning.ErrQuestionKeyTaken
	}
	for i, q := range s.questions {
		if q.ID == question.ID {
			s.questions[i] = question
			return nil
		}
	}
	return conditioning.ErrQuestionNotFound
}

func (s *Store) questionKeyTaken(key, exceptID string) bool {
	for _, q := range s.questions {
		if q.Key == key && q.ID != exceptID {
			return true
		}
	}
	return false
}

func (s *Store) DeleteSurveyQuestion(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, q := range s.questions {
		if q.ID == id {
			s.questions = append(s.questions[:i], s.questions[i+1:]...)
			return nil
		}
	}
	return conditioning.ErrQuestionNotFound
}

func (s *Store) ListInjuries(_ context.Context, playerID string) ([]conditioning.Injury, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.playerIndex(playerID) < 0 {
		return nil, conditioning.ErrPlayerNotFound
	}
	return s.injuriesOf(playerID), nil
}

// injuriesOf returns the player's injuries, newest first.
func (s *Store) injuriesOf(playerID string) []conditioning.Injury {
	injuries := filter(s.injuries, func(inj conditioning.Injury) bool { return inj.PlayerID == playerID })
	sort.SliceStable(injuries, func(i, j int) bool {
		return injuries[i].Date.After(injuries[j].Date)
	})
	return injuries
}

func (s *Store) AddInjury(_ context.Context, injury conditioning.Injury) (*conditioning.Injury, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playerIndex(injury.PlayerID) < 0 {
		return nil, conditioning.ErrPlayerNotFound
	}
	injury.ID = s.newID()
	injury.RecoveryDate = nil
	s.injuries = append(s.injuries, injury)
	return &injury, nil
}

func (s *Store) MarkRecovered(_ context.Context, playerID, injuryID string, recoveredAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, inj := range s.injuries {
		if inj.ID == injuryID && inj.PlayerID == playerID {
			s.injuries[i].RecoveryDate = &recoveredAt
			return nil
		}
	}
	return conditioning.ErrInjuryNotFound
}

// filter returns a new slice, never aliasing the input.
func filter[T any](items []T, keep func(T) bool) []T {
	var res []T
	for _, it := range items {
		if keep(it) {
			res = append(res, it)
		}
	}
	return res
}
