package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/kondisca/internal/auth"
	"github.com/2beens/kondisca/internal/conditioning"
	"github.com/2beens/kondisca/internal/middleware"
	"github.com/2beens/kondisca/internal/telemetry/metrics"
	"github.com/2beens/kondisca/internal/telemetry/tracing"
	"github.com/2beens/kondisca/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type MetricResponse struct {
	Metric conditioning.MetricDefinition `json:"metric"`
	// Warnings lists formula references that never resolve to a value.
	Warnings []string `json:"warnings,omitempty"`
}

type DeletedResponse struct {
	DeletedID string `json:"deletedId"`
}

type UpdatedResponse struct {
	UpdatedID string `json:"updatedId"`
}

type AddMeasurementsRequest struct {
	Measurements []conditioning.Measurement `json:"measurements"`
}

type UpdateMeasurementRequest struct {
	Value float64   `json:"value"`
	Date  time.Time `json:"date"`
}

type SubmitSurveyRequest struct {
	Answers map[string]conditioning.Value `json:"answers"`
}

type SurveyStatusResponse struct {
	Completed bool `json:"completed"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(
	r *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	surveyRateLimitPerMin int,
) {
	conditioner := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireRole(auth.RoleConditioner)(h)
	}

	r.HandleFunc("/metrics/definitions", handler.HandleListMetrics).Methods("GET", "OPTIONS").Name("list-metrics")
	r.Handle("/metrics/definitions", conditioner(handler.HandleAddMetric)).Methods("POST", "OPTIONS").Name("add-metric")
	r.Handle("/metrics/definitions/{id}", conditioner(handler.HandleUpdateMetric)).Methods("PUT", "OPTIONS").Name("update-metric")
	r.Handle("/metrics/definitions/{id}", conditioner(handler.HandleDeleteMetric)).Methods("DELETE", "OPTIONS").Name("delete-metric")
	r.Handle("/metrics/definitions/{id}/toggle/{field}", conditioner(handler.HandleToggleMetric)).Methods("POST", "OPTIONS").Name("toggle-metric")
	r.HandleFunc("/metrics/leaderboard-choices", handler.HandleLeaderboardChoices).Methods("GET", "OPTIONS").Name("leaderboard-choices")

	r.Handle("/players", conditioner(handler.HandleListPlayers)).Methods("GET", "OPTIONS").Name("list-players")
	r.Handle("/players", conditioner(handler.HandleAddPlayer)).Methods("POST", "OPTIONS").Name("add-player")
	r.HandleFunc("/players/{id}", handler.HandleGetPlayer).Methods("GET", "OPTIONS").Name("get-player")
	r.Handle("/players/{id}", conditioner(handler.HandleUpdatePlayer)).Methods("PUT", "OPTIONS").Name("update-player")
	r.Handle("/players/{id}", conditioner(handler.HandleDeletePlayer)).Methods("DELETE", "OPTIONS").Name("delete-player")
	r.HandleFunc("/players/{id}/composites", handler.HandleComposites).Methods("GET", "OPTIONS").Name("player-composites")
	r.HandleFunc("/players/{id}/radar", handler.HandleRadar).Methods("GET", "OPTIONS").Name("player-radar")
	r.HandleFunc("/players/{id}/stats", handler.HandleStats).Methods("GET", "OPTIONS").Name("player-stats")

	r.HandleFunc("/players/{id}/measurements", handler.HandleAddMeasurements).Methods("POST", "OPTIONS").Name("add-measurements")
	r.Handle("/players/{id}/measurements/{mid}", conditioner(handler.HandleUpdateMeasurement)).Methods("PUT", "OPTIONS").Name("update-measurement")
	r.Handle("/players/{id}/measurements/{mid}", conditioner(handler.HandleDeleteMeasurement)).Methods("DELETE", "OPTIONS").Name("delete-measurement")

	surveyLimit := middleware.RateLimit(rateLimiter, "surveys", surveyRateLimitPerMin, metricsManager)
	r.Handle("/players/{id}/surveys", surveyLimit(http.HandlerFunc(handler.HandleSubmitSurvey))).Methods("POST", "OPTIONS").Name("submit-survey")
	r.HandleFunc("/players/{id}/surveys/today", handler.HandleSurveyStatus).Methods("GET", "OPTIONS").Name("survey-status")

	r.Handle("/players/{id}/injuries", conditioner(handler.HandleAddInjury)).Methods("POST", "OPTIONS").Name("add-injury")
	r.Handle("/players/{id}/injuries/{iid}/recover", conditioner(handler.HandleMarkRecovered)).Methods("POST", "OPTIONS").Name("recover-injury")

	r.HandleFunc("/survey/questions", handler.HandleListQuestions).Methods("GET", "OPTIONS").Name("list-questions")
	r.Handle("/survey/questions", conditioner(handler.HandleAddQuestion)).Methods("POST", "OPTIONS").Name("add-question")
	r.Handle("/survey/questions/{id}", conditioner(handler.HandleUpdateQuestion)).Methods("PUT", "OPTIONS").Name("update-question")
	r.Handle("/survey/questions/{id}", conditioner(handler.HandleDeleteQuestion)).Methods("DELETE", "OPTIONS").Name("delete-question")

	r.HandleFunc("/leaderboard", handler.HandleLeaderboard).Methods("GET", "OPTIONS").Name("leaderboard")
	r.Handle("/dashboard/summary", conditioner(handler.HandleSummary)).Methods("GET", "OPTIONS").Name("summary")
}

// writeError maps service and store errors to response codes.
func writeError(w http.ResponseWriter, err error, what string) {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
	case errors.Is(err, conditioning.ErrMetricNotFound),
		errors.Is(err, conditioning.ErrPlayerNotFound),
		errors.Is(err, conditioning.ErrMeasurementNotFound),
		errors.Is(err, conditioning.ErrQuestionNotFound),
		errors.Is(err, conditioning.ErrInjuryNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, conditioning.ErrMetricNameTaken),
		errors.Is(err, conditioning.ErrQuestionKeyTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Errorf("%s: %s", what, err)
		http.Error(w, "error, "+what, http.StatusInternalServerError)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Tracef("unmarshal json body [%s]: %s", r.URL.Path, err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// playerID returns the {id} of the path, once the session is allowed to
// see that player: conditioners see everyone, players only themselves.
func playerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, player id empty", http.StatusBadRequest)
		return "", false
	}

	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return "", false
	}
	if !session.IsConditioner() && session.UserID != id {
		http.Error(w, "forbidden", http.StatusForbidden)
		return "", false
	}
	return id, true
}

func (handler *Handler) HandleListMetrics(w http.ResponseWriter, r *http.Request) {
	defs, err := handler.service.ListMetrics(r.Context())
	if err != nil {
		writeError(w, err, "list metrics")
		return
	}
	pkg.WriteJSON(w, defs, http.StatusOK)
}

func (handler *Handler) HandleLeaderboardChoices(w http.ResponseWriter, r *http.Request) {
	defs, err := handler.service.LeaderboardMetrics(r.Context())
	if err != nil {
		writeError(w, err, "list leaderboard metrics")
		return
	}
	pkg.WriteJSON(w, defs, http.StatusOK)
}

func (handler *Handler) HandleAddMetric(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.metrics.add")
	defer span.End()

	var metric conditioning.MetricDefinition
	if !decodeJSON(w, r, &metric) {
		return
	}

	added, warnings, err := handler.service.AddMetric(ctx, metric)
	if err != nil {
		writeError(w, err, "add metric")
		return
	}

	log.Debugf("new metric added: [%s] %s", added.ID, added.Name)
	pkg.WriteJSON(w, MetricResponse{Metric: *added, Warnings: warnings}, http.StatusCreated)
}

func (handler *Handler) HandleUpdateMetric(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.metrics.update")
	defer span.End()

	var metric conditioning.MetricDefinition
	if !decodeJSON(w, r, &metric) {
		return
	}
	metric.ID = mux.Vars(r)["id"]

	warnings, err := handler.service.UpdateMetric(ctx, metric)
	if err != nil {
		writeError(w, err, "update metric")
		return
	}

	metric.Normalize()
	pkg.WriteJSON(w, MetricResponse{Metric: metric, Warnings: warnings}, http.StatusOK)
}

func (handler *Handler) HandleDeleteMetric(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := handler.service.DeleteMetric(r.Context(), id); err != nil {
		writeError(w, err, "delete metric")
		return
	}
	log.Debugf("metric deleted: %s", id)
	pkg.WriteJSON(w, DeletedResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleToggleMetric(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	metric, err := handler.service.ToggleMetric(r.Context(), vars["id"], vars["field"])
	if err != nil {
		writeError(w, err, "toggle metric")
		return
	}
	pkg.WriteJSON(w, metric, http.StatusOK)
}

func (handler *Handler) HandleListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := handler.service.ListPlayers(r.Context())
	if err != nil {
		writeError(w, err, "list players")
		return
	}
	pkg.WriteJSON(w, players, http.StatusOK)
}

func (handler *Handler) HandleAddPlayer(w http.ResponseWriter, r *http.Request) {
	var player conditioning.Player
	if !decodeJSON(w, r, &player) {
		return
	}

	added, err := handler.service.AddPlayer(r.Context(), player)
	if err != nil {
		writeError(w, err, "add player")
		return
	}

	log.Debugf("new player added: [%s] %s", added.ID, added.Name)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleGetPlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	player, err := handler.service.GetPlayer(r.Context(), id)
	if err != nil {
		writeError(w, err, "get player")
		return
	}
	pkg.WriteJSON(w, player, http.StatusOK)
}

func (handler *Handler) HandleUpdatePlayer(w http.ResponseWriter, r *http.Request) {
	var player conditioning.Player
	if !decodeJSON(w, r, &player) {
		return
	}
	player.ID = mux.Vars(r)["id"]

	if err := handler.service.UpdatePlayer(r.Context(), player); err != nil {
		writeError(w, err, "update player")
		return
	}
	pkg.WriteJSON(w, UpdatedResponse{UpdatedID: player.ID}, http.StatusOK)
}

func (handler *Handler) HandleDeletePlayer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := handler.service.DeletePlayer(r.Context(), id); err != nil {
		writeError(w, err, "delete player")
		return
	}
	log.Debugf("player deleted: %s", id)
	pkg.WriteJSON(w, DeletedResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleComposites(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.players.composites")
	defer span.End()

	id, ok := playerID(w, r)
	if !ok {
		return
	}
	composites, err := handler.service.Composites(ctx, id)
	if err != nil {
		writeError(w, err, "build composites")
		return
	}
	pkg.WriteJSON(w, composites, http.StatusOK)
}

func (handler *Handler) HandleRadar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.players.radar")
	defer span.End()

	id, ok := playerID(w, r)
	if !ok {
		return
	}
	radar, err := handler.service.Radar(ctx, id)
	if err != nil {
		writeError(w, err, "build radar")
		return
	}
	pkg.WriteJSON(w, radar, http.StatusOK)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	stats, err := handler.service.LatestStats(r.Context(), id)
	if err != nil {
		writeError(w, err, "latest stats")
		return
	}
	pkg.WriteJSON(w, stats, http.StatusOK)
}

func (handler *Handler) HandleAddMeasurements(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.add")
	defer span.End()

	id, ok := playerID(w, r)
	if !ok {
		return
	}
	var req AddMeasurementsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	added, err := handler.service.AddMeasurements(ctx, id, req.Measurements)
	if err != nil {
		writeError(w, err, "add measurements")
		return
	}

	log.Debugf("%d measurements added for player %s", len(added), id)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleUpdateMeasurement(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	var req UpdateMeasurementRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	measurementID := mux.Vars(r)["mid"]
	err := handler.service.UpdateMeasurement(r.Context(), conditioning.Measurement{
		ID:       measurementID,
		PlayerID: id,
		Value:    req.Value,
		Date:     req.Date,
	})
	if err != nil {
		writeError(w, err, "update measurement")
		return
	}
	pkg.WriteJSON(w, UpdatedResponse{UpdatedID: measurementID}, http.StatusOK)
}

func (handler *Handler) HandleDeleteMeasurement(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	measurementID := mux.Vars(r)["mid"]
	if err := handler.service.DeleteMeasurement(r.Context(), id, measurementID); err != nil {
		writeError(w, err, "delete measurement")
		return
	}
	pkg.WriteJSON(w, DeletedResponse{DeletedID: measurementID}, http.StatusOK)
}

func (handler *Handler) HandleSubmitSurvey(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.surveys.submit")
	defer span.End()

	id, ok := playerID(w, r)
	if !ok {
		return
	}
	var req SubmitSurveyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	survey, err := handler.service.SubmitSurvey(ctx, id, req.Answers)
	if err != nil {
		writeError(w, err, "submit survey")
		return
	}
	pkg.WriteJSON(w, survey, http.StatusCreated)
}

func (handler *Handler) HandleSurveyStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	completed, err := handler.service.SurveyCompletedToday(r.Context(), id)
	if err != nil {
		writeError(w, err, "survey status")
		return
	}
	pkg.WriteJSON(w, SurveyStatusResponse{Completed: completed}, http.StatusOK)
}

func (handler *Handler) HandleAddInjury(w http.ResponseWriter, r *http.Request) {
	var injury conditioning.Injury
	if !decodeJSON(w, r, &injury) {
		return
	}
	injury.PlayerID = mux.Vars(r)["id"]

	added, err := handler.service.AddInjury(r.Context(), injury)
	if err != nil {
		writeError(w, err, "add injury")
		return
	}
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleMarkRecovered(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := handler.service.MarkRecovered(r.Context(), vars["id"], vars["iid"]); err != nil {
		writeError(w, err, "mark injury recovered")
		return
	}
	pkg.WriteJSON(w, UpdatedResponse{UpdatedID: vars["iid"]}, http.StatusOK)
}

func (handler *Handler) HandleListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := handler.service.ListSurveyQuestions(r.Context())
	if err != nil {
		writeError(w, err, "list survey questions")
		return
	}
	pkg.WriteJSON(w, questions, http.StatusOK)
}

func (handler *Handler) HandleAddQuestion(w http.ResponseWriter, r *http.Request) {
	var question conditioning.SurveyQuestion
	if !decodeJSON(w, r, &question) {
		return
	}
	added, err := handler.service.AddSurveyQuestion(r.Context(), question)
	if err != nil {
		writeError(w, err, "add survey question")
		return
	}
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleUpdateQuestion(w http.ResponseWriter, r *http.Request) {
	var question conditioning.SurveyQuestion
	if !decodeJSON(w, r, &question) {
		return
	}
	question.ID = mux.Vars(r)["id"]

	if err := handler.service.UpdateSurveyQuestion(r.Context(), question); err != nil {
		writeError(w, err, "update survey question")
		return
	}
	pkg.WriteJSON(w, UpdatedResponse{UpdatedID: question.ID}, http.StatusOK)
}

func (handler *Handler) HandleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := handler.service.DeleteSurveyQuestion(r.Context(), id); err != nil {
		writeError(w, err, "delete survey question")
		return
	}
	pkg.WriteJSON(w, DeletedResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.leaderboard")
	defer span.End()

	query := r.URL.Query()
	metricID := query.Get("metric")
	if metricID == "" {
		http.Error(w, "error, metric empty", http.StatusBadRequest)
		return
	}
	change, err := conditioning.ParseChangeType(query.Get("change"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	order, err := conditioning.ParseSortOrder(query.Get("order"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := handler.service.Leaderboard(ctx, LeaderboardParams{
		MetricID: metricID,
		Change:   change,
		Order:    order,
	})
	if err != nil {
		writeError(w, err, "leaderboard")
		return
	}
	pkg.WriteJSON(w, entries, http.StatusOK)
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := handler.service.Summary(r.Context())
	if err != nil {
		writeError(w, err, "dashboard summary")
		return
	}
	pkg.WriteJSON(w, summary, http.StatusOK)
}
