package conditioning

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=../dashboard/store_mocks_test.go -package=dashboard_test

// MetricsStore keeps metric definitions.
type MetricsStore interface {
	ListMetrics(ctx context.Context) ([]MetricDefinition, error)
	GetMetric(ctx context.Context, id string) (*MetricDefinition, error)
	AddMetric(ctx context.Context, metric MetricDefinition) (*MetricDefinition, error)
	UpdateMetric(ctx context.Context, metric MetricDefinition) error
	DeleteMetric(ctx context.Context, id string) error
}

// PlayersStore keeps players. ListPlayers and GetPlayer return players with
// their measurements, daily surveys and injuries loaded.
type PlayersStore interface {
	ListPlayers(ctx context.Context) ([]Player, error)
	GetPlayer(ctx context.Context, id string) (*Player, error)
	AddPlayer(ctx context.Context, player Player) (*Player, error)
	UpdatePlayer(ctx context.Context, player Player) error
	DeletePlayer(ctx context.Context, id string) error
}

type MeasurementsStore interface {
	ListMeasurements(ctx context.Context, playerID string) ([]Measurement, error)
	AddMeasurements(ctx context.Context, playerID string, measurements []Measurement) ([]Measurement, error)
	UpdateMeasurement(ctx context.Context, measurement Measurement) error
	DeleteMeasurement(ctx context.Context, playerID, measurementID string) error
}

type SurveysStore interface {
	ListDailySurveys(ctx context.Context, playerID string) ([]DailySurvey, error)
	// UpsertDailySurvey replaces the player's survey for the same calendar date, if any.
	UpsertDailySurvey(ctx context.Context, survey DailySurvey) error
	CountSurveysOn(ctx context.Context, day time.Time) (int, error)

	ListSurveyQuestions(ctx context.Context) ([]SurveyQuestion, error)
	AddSurveyQuestion(ctx context.Context, question SurveyQuestion) (*SurveyQuestion, error)
	UpdateSurveyQuestion(ctx context.Context, question SurveyQuestion) error
	DeleteSurveyQuestion(ctx context.Context, id string) error
}

type InjuriesStore interface {
	ListInjuries(ctx context.Context, playerID string) ([]Injury, error)
	AddInjury(ctx context.Context, injury Injury) (*Injury, error)
	MarkRecovered(ctx context.Context, playerID, injuryID string, recoveredAt time.Time) error
}

// RecordStore is everything the dashboard reads from and writes to.
type RecordStore interface {
	MetricsStore
	PlayersStore
	MeasurementsStore
	SurveysStore
	InjuriesStore
}
