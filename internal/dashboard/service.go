// Package dashboard serves the conditioning data over HTTP: metric and
// player management, measurements, daily surveys and the computed views
// (composites, radar, leaderboard, summary).
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/kondisca/internal/conditioning"
	"github.com/2beens/kondisca/internal/telemetry/metrics"
	"github.com/2beens/kondisca/internal/telemetry/tracing"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrUnknownToggle = errors.New("unknown toggle field")

// ValidationError marks input the client has to fix.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(err error) error {
	return &ValidationError{Err: err}
}

func invalidf(format string, args ...any) error {
	return invalid(fmt.Errorf(format, args...))
}

type ServiceParams struct {
	Store            conditioning.RecordStore
	MetricsManager   *metrics.Manager
	Location         *time.Location
	FormulaCacheSize int
	ProfileMetricIDs conditioning.ProfileMetricIDs
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Service loads records from the store and runs the conditioning
// computations over them. It holds no data itself.
type Service struct {
	store      conditioning.RecordStore
	metrics    *metrics.Manager
	evaluator  *conditioning.Evaluator
	loc        *time.Location
	profileIDs conditioning.ProfileMetricIDs

	now func() time.Time
}

func NewService(params ServiceParams) *Service {
	loc := params.Location
	if loc == nil {
		loc = time.UTC
	}
	clock := params.Clock
	if clock == nil {
		clock = time.Now
	}
	metricsManager := params.MetricsManager
	if metricsManager == nil {
		// counted, but never exposed
		metricsManager = metrics.NewManager("kondisca", "dashboard", prometheus.NewRegistry())
	}
	s := &Service{
		store:      params.Store,
		metrics:    metricsManager,
		loc:        loc,
		profileIDs: params.ProfileMetricIDs,
		now:        clock,
	}
	s.evaluator = conditioning.NewEvaluator(params.FormulaCacheSize, func(src string, err error) {
		log.Warnf("formula [%s] failed to parse: %s", src, err)
		s.metrics.CounterFormulaFailures.Inc()
	})
	return s
}

func (s *Service) registry(ctx context.Context) (*conditioning.Registry, error) {
	defs, err := s.store.ListMetrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}
	return conditioning.NewRegistry(defs), nil
}

func (s *Service) ListMetrics(ctx context.Context) ([]conditioning.MetricDefinition, error) {
	reg, err := s.registry(ctx)
	if err != nil {
		return nil, err
	}
	return reg.All(), nil
}

func (s *Service) LeaderboardMetrics(ctx context.Context) ([]conditioning.MetricDefinition, error) {
	reg, err := s.registry(ctx)
	if err != nil {
		return nil, err
	}
	return reg.LeaderboardMetrics(), nil
}

// AddMetric stores a new definition. The returned warnings name metrics
// the formula references that will never resolve to a value.
func (s *Service) AddMetric(ctx context.Context, metric conditioning.MetricDefinition) (_ *conditioning.MetricDefinition, warnings []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.metrics.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	metric.Normalize()
	if err := metric.Validate(); err != nil {
		return nil, nil, invalid(err)
	}

	added, err := s.store.AddMetric(ctx, metric)
	if err != nil {
		return nil, nil, err
	}
	span.SetAttributes(attribute.String("metric.id", added.ID))

	warnings, err = s.unresolvedReferences(ctx, *added)
	if err != nil {
		log.Errorf("check formula references of metric %s: %s", added.ID, err)
	}
	return added, warnings, nil
}

func (s *Service) UpdateMetric(ctx context.Context, metric conditioning.MetricDefinition) (warnings []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.metrics.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("metric.id", metric.ID))

	metric.Normalize()
	if err := metric.Validate(); err != nil {
		return nil, invalid(err)
	}
	if err := s.store.UpdateMetric(ctx, metric); err != nil {
		return nil, err
	}

	warnings, err = s.unresolvedReferences(ctx, metric)
	if err != nil {
		log.Errorf("check formula references of metric %s: %s", metric.ID, err)
	}
	return warnings, nil
}

func (s *Service) unresolvedReferences(ctx context.Context, metric conditioning.MetricDefinition) ([]string, error) {
	if metric.InputType != conditioning.InputCalculated {
		return nil, nil
	}
	reg, err := s.registry(ctx)
	if err != nil {
		return nil, err
	}
	unresolved, err := reg.UnresolvedReferences(metric.Formula)
	if err != nil {
		return nil, err
	}
	if len(unresolved) > 0 {
		s.metrics.CounterUnresolvedReferences.Inc()
		log.Warnf("metric [%s] formula references metrics without values: %v", metric.Name, unresolved)
	}
	return unresolved, nil
}

func (s *Service) DeleteMetric(ctx context.Context, id string) error {
	return s.store.DeleteMetric(ctx, id)
}

// ToggleMetric flips one boolean flag of the definition: "active" or "radar".
func (s *Service) ToggleMetric(ctx context.Context, id, field string) (*conditioning.MetricDefinition, error) {
	metric, err := s.store.GetMetric(ctx, id)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(field) {
	case "active":
		metric.IsActive = !metric.IsActive
	case "radar":
		metric.ShowInRadar = !metric.ShowInRadar
	default:
		return nil, invalid(fmt.Errorf("%w: %s", ErrUnknownToggle, field))
	}

	if err := s.store.UpdateMetric(ctx, *metric); err != nil {
		return nil, err
	}
	return metric, nil
}

func (s *Service) ListPlayers(ctx context.Context) ([]conditioning.Player, error) {
	return s.store.ListPlayers(ctx)
}

func (s *Service) GetPlayer(ctx context.Context, id string) (*conditioning.Player, error) {
	return s.store.GetPlayer(ctx, id)
}

func validatePlayer(player conditioning.Player) error {
	if strings.TrimSpace(player.Name) == "" {
		return invalidf("player name empty")
	}
	return nil
}

func (s *Service) AddPlayer(ctx context.Context, player conditioning.Player) (*conditioning.Player, error) {
	player.Name = strings.TrimSpace(player.Name)
	if err := validatePlayer(player); err != nil {
		return nil, err
	}
	return s.store.AddPlayer(ctx, player)
}

// UpdatePlayer changes the player's info; records are left as they are.
func (s *Service) UpdatePlayer(ctx context.Context, player conditioning.Player) error {
	player.Name = strings.TrimSpace(player.Name)
	if err := validatePlayer(player); err != nil {
		return err
	}
	return s.store.UpdatePlayer(ctx, player)
}

func (s *Service) DeletePlayer(ctx context.Context, id string) error {
	return s.store.DeletePlayer(ctx, id)
}

// playerAndRegistry fetches what every computed view needs.
func (s *Service) playerAndRegistry(ctx context.Context, playerID string) (*conditioning.Player, *conditioning.Registry, error) {
	player, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, nil, err
	}
	reg, err := s.registry(ctx)
	if err != nil {
		return nil, nil, err
	}
	return player, reg, nil
}

type CompositesResponse struct {
	Metrics []conditioning.MetricDefinition   `json:"metrics"`
	Points  []conditioning.CompositeDataPoint `json:"points"`
}

func (s *Service) Composites(ctx context.Context, playerID string) (_ *CompositesResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.composites")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("player.id", playerID))

	player, reg, err := s.playerAndRegistry(ctx, playerID)
	if err != nil {
		return nil, err
	}

	points := s.evaluator.BuildComposites(*player, reg, s.loc)
	s.metrics.CounterCompositesBuilt.Add(float64(len(points)))
	span.SetAttributes(attribute.Int("composites.count", len(points)))

	return &CompositesResponse{
		Metrics: reg.ChartableMetrics(),
		Points:  points,
	}, nil
}

func (s *Service) Radar(ctx context.Context, playerID string) (_ []conditioning.RadarPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.radar")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("player.id", playerID))

	player, reg, err := s.playerAndRegistry(ctx, playerID)
	if err != nil {
		return nil, err
	}

	composites := s.evaluator.BuildComposites(*player, reg, s.loc)
	s.metrics.CounterCompositesBuilt.Add(float64(len(composites)))
	return s.evaluator.BuildRadarSnapshot(*player, reg, composites), nil
}

func (s *Service) LatestStats(ctx context.Context, playerID string) (*conditioning.LatestStats, error) {
	player, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	stats := conditioning.PlayerLatestStats(*player, s.profileIDs, s.now())
	return &stats, nil
}

// AddMeasurements stores a batch of manual metric values for one player.
// Measurements without a date are taken now.
func (s *Service) AddMeasurements(ctx context.Context, playerID string, measurements []conditioning.Measurement) (_ []conditioning.Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.measurements.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("player.id", playerID))

	if len(measurements) == 0 {
		return nil, invalidf("no measurements")
	}

	reg, err := s.registry(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	for i := range measurements {
		m, ok := reg.ByID(measurements[i].MetricID)
		if !ok {
			return nil, invalidf("unknown metric [%s]", measurements[i].MetricID)
		}
		if m.InputType != conditioning.InputManual {
			return nil, invalidf("metric [%s] is %s, values are not entered by hand", m.Name, m.InputType)
		}
		if measurements[i].Date.IsZero() {
			measurements[i].Date = now
		}
	}

	added, err := s.store.AddMeasurements(ctx, playerID, measurements)
	if err != nil {
		return nil, err
	}
	s.metrics.CounterMeasurementsAdded.Add(float64(len(added)))
	return added, nil
}

func (s *Service) UpdateMeasurement(ctx context.Context, measurement conditioning.Measurement) error {
	if measurement.Date.IsZero() {
		return invalidf("measurement date empty")
	}
	return s.store.UpdateMeasurement(ctx, measurement)
}

func (s *Service) DeleteMeasurement(ctx context.Context, playerID, measurementID string) error {
	return s.store.DeleteMeasurement(ctx, playerID, measurementID)
}

// SubmitSurvey stores today's survey of the player, replacing an earlier
// submission of the same day. Answers are checked against active questions.
func (s *Service) SubmitSurvey(ctx context.Context, playerID string, answers map[string]conditioning.Value) (_ *conditioning.DailySurvey, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.surveys.submit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("player.id", playerID))

	questions, err := s.store.ListSurveyQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list survey questions: %w", err)
	}

	cleaned, err := conditioning.CleanSurveyAnswers(questions, answers)
	if err != nil {
		return nil, invalid(err)
	}
	if len(cleaned) == 0 {
		return nil, invalidf("no answers")
	}

	survey := conditioning.DailySurvey{
		PlayerID: playerID,
		Date:     conditioning.CalendarDate(s.now(), s.loc),
		Answers:  cleaned,
	}
	if err := s.store.UpsertDailySurvey(ctx, survey); err != nil {
		return nil, err
	}

	s.metrics.CounterSurveysSubmitted.Inc()
	return &survey, nil
}

func (s *Service) SurveyCompletedToday(ctx context.Context, playerID string) (bool, error) {
	player, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return false, err
	}
	return conditioning.SurveyCompletedOn(*player, s.now(), s.loc), nil
}

func (s *Service) ListSurveyQuestions(ctx context.Context) ([]conditioning.SurveyQuestion, error) {
	return s.store.ListSurveyQuestions(ctx)
}

func validateQuestion(q *conditioning.SurveyQuestion) error {
	q.Label = strings.TrimSpace(q.Label)
	q.Key = strings.TrimSpace(q.Key)
	switch {
	case q.Label == "":
		return invalidf("question label empty")
	case q.Key == "":
		return invalidf("question key empty")
	case !q.Type.IsValid():
		return invalidf("unknown question type [%s]", q.Type)
	}
	return nil
}

func (s *Service) AddSurveyQuestion(ctx context.Context, question conditioning.SurveyQuestion) (*conditioning.SurveyQuestion, error) {
	if err := validateQuestion(&question); err != nil {
		return nil, err
	}
	return s.store.AddSurveyQuestion(ctx, question)
}

func (s *Service) UpdateSurveyQuestion(ctx context.Context, question conditioning.SurveyQuestion) error {
	if err := validateQuestion(&question); err != nil {
		return err
	}
	return s.store.UpdateSurveyQuestion(ctx, question)
}

func (s *Service) DeleteSurveyQuestion(ctx context.Context, id string) error {
	return s.store.DeleteSurveyQuestion(ctx, id)
}

func (s *Service) AddInjury(ctx context.Context, injury conditioning.Injury) (*conditioning.Injury, error) {
	injury.Description = strings.TrimSpace(injury.Description)
	if injury.Description == "" {
		return nil, invalidf("injury description empty")
	}
	if injury.Date.IsZero() {
		injury.Date = s.now()
	}
	return s.store.AddInjury(ctx, injury)
}

func (s *Service) MarkRecovered(ctx context.Context, playerID, injuryID string) error {
	return s.store.MarkRecovered(ctx, playerID, injuryID, s.now())
}

type LeaderboardParams struct {
	MetricID string
	Change   conditioning.ChangeType
	Order    conditioning.SortOrder
}

func (s *Service) Leaderboard(ctx context.Context, params LeaderboardParams) (_ []conditioning.LeaderboardEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.leaderboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("metric.id", params.MetricID),
		attribute.String("change", string(params.Change)),
		attribute.String("order", string(params.Order)),
	)

	metric, err := s.store.GetMetric(ctx, params.MetricID)
	if err != nil {
		return nil, err
	}
	if metric.ExcludeFromLeaderboard || metric.InputType != conditioning.InputManual {
		return nil, invalidf("metric [%s] is not ranked", metric.Name)
	}

	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	s.metrics.CounterLeaderboardRequests.WithLabelValues(string(params.Change)).Inc()
	return conditioning.RankPlayers(players, params.MetricID, params.Change, params.Order), nil
}

func (s *Service) Summary(ctx context.Context) (*conditioning.DashboardSummary, error) {
	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	now := s.now()
	summary := conditioning.Summarize(players, now, s.loc)

	// counted by the stored calendar date
	count, err := s.store.CountSurveysOn(ctx, conditioning.CalendarDate(now, s.loc))
	if err != nil {
		return nil, fmt.Errorf("count surveys: %w", err)
	}
	summary.SurveysToday = count

	return &summary, nil
}
