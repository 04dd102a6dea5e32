package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests             *prometheus.CounterVec
	CounterHandleRequestPanic   prometheus.Counter
	CounterRateLimitedRequests  prometheus.Counter
	CounterLeaderboardRequests  *prometheus.CounterVec
	CounterCompositesBuilt      prometheus.Counter
	CounterFormulaFailures      prometheus.Counter
	CounterMeasurementsAdded    prometheus.Counter
	CounterSurveysSubmitted     prometheus.Counter
	CounterUnresolvedReferences prometheus.Counter
	CounterNotes                prometheus.Counter
	CounterScheduleEvents       prometheus.Counter

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistogramRequestDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("kondisca", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("kondisca", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		})
	}

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterLeaderboardRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "leaderboard_requests",
		Help:      "The total number of computed leaderboards",
	}, []string{"change_type"})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})

	return &Manager{
		CounterRequests:             counterRequests,
		CounterHandleRequestPanic:   counter("handle_request_panic", "The total number of serve request panics"),
		CounterRateLimitedRequests:  counter("rate_limited_requests", "The total number of rate limited requests"),
		CounterLeaderboardRequests:  counterLeaderboardRequests,
		CounterCompositesBuilt:      counter("composites_built", "The total number of composite records built"),
		CounterFormulaFailures:      counter("formula_failures", "The total number of formulas that failed to parse"),
		CounterMeasurementsAdded:    counter("measurements_added", "The total number of added measurements"),
		CounterSurveysSubmitted:     counter("surveys_submitted", "The total number of submitted daily surveys"),
		CounterUnresolvedReferences: counter("unresolved_references", "Saved formulas referencing metrics that never resolve"),
		CounterNotes:                counter("notes", "The total number of added player notes"),
		CounterScheduleEvents:       counter("schedule_events", "The total number of added schedule events"),
		GaugeRequests:               gaugeRequests,
		GaugeLifeSignal:             gaugeLifeSignal,
		HistogramRequestDuration:    histogramRequestDuration,
	}
}
