package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/kondisca/internal/auth"
	"github.com/2beens/kondisca/internal/conditioning"
	"github.com/2beens/kondisca/internal/middleware"
	"github.com/2beens/kondisca/internal/telemetry/metrics"
	"github.com/2beens/kondisca/internal/telemetry/tracing"
	"github.com/2beens/kondisca/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type PlayerFinder interface {
	GetPlayer(ctx context.Context, id string) (*conditioning.Player, error)
}

type EventsResponse struct {
	Events []Event `json:"events"`
	Total  int     `json:"total"`
}

type Handler struct {
	api     Api
	players PlayerFinder
	metrics *metrics.Manager
}

func NewHandler(api Api, players PlayerFinder, metrics *metrics.Manager) *Handler {
	return &Handler{
		api:     api,
		players: players,
		metrics: metrics,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	conditioner := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireRole(auth.RoleConditioner)(h)
	}

	r.HandleFunc("/schedule", handler.HandleList).Methods("GET", "OPTIONS").Name("list-schedule")
	r.Handle("/schedule", conditioner(handler.HandleAdd)).Methods("POST", "OPTIONS").Name("add-schedule-event")
	r.Handle("/schedule/{id}", conditioner(handler.HandleUpdate)).Methods("PUT", "OPTIONS").Name("update-schedule-event")
	r.Handle("/schedule/{id}", conditioner(handler.HandleDelete)).Methods("DELETE", "OPTIONS").Name("delete-schedule-event")
}

func writeError(w http.ResponseWriter, err error, what string) {
	switch {
	case errors.Is(err, ErrInvalidEvent):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrEventNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Errorf("%s: %s", what, err)
		http.Error(w, "error, "+what, http.StatusInternalServerError)
	}
}

// decodeEvent reads and normalizes the event of the request body, and
// checks that all of its players exist.
func (handler *Handler) decodeEvent(w http.ResponseWriter, r *http.Request) (Event, bool) {
	var event Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		log.Tracef("unmarshal schedule event [%s]: %s", r.URL.Path, err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return event, false
	}
	if err := event.Normalize(); err != nil {
		writeError(w, err, "check event")
		return event, false
	}

	for _, id := range event.PlayerIDs {
		_, err := handler.players.GetPlayer(r.Context(), id)
		if errors.Is(err, conditioning.ErrPlayerNotFound) {
			writeError(w, invalidf("unknown player [%s]", id), "check event")
			return event, false
		}
		if err != nil {
			writeError(w, err, "check event players")
			return event, false
		}
	}
	return event, true
}

// HandleList serves the events between the optional from and to query dates.
// Players only see the team events and their own.
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.list")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()
	rng, err := ParseRange(query.Get("from"), query.Get("to"))
	if err != nil {
		writeError(w, err, "list schedule")
		return
	}
	span.SetAttributes(attribute.String("from", rng.From), attribute.String("to", rng.To))

	events, err := handler.api.List(ctx, rng)
	if err != nil {
		writeError(w, err, "list schedule")
		return
	}
	if !session.IsConditioner() {
		events = ForPlayer(events, session.UserID)
	}
	if events == nil {
		events = []Event{}
	}

	pkg.WriteJSON(w, EventsResponse{Events: events, Total: len(events)}, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	event, ok := handler.decodeEvent(w, r)
	if !ok {
		return
	}

	added, err := handler.api.Add(r.Context(), event)
	if err != nil {
		writeError(w, err, "add schedule event")
		return
	}

	handler.metrics.CounterScheduleEvents.Inc()

	log.Debugf("new schedule event added: [%s] [%s]: %s", added.Date, added.Title, added.ID)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	event, ok := handler.decodeEvent(w, r)
	if !ok {
		return
	}
	event.ID = mux.Vars(r)["id"]

	if err := handler.api.Update(r.Context(), event); err != nil {
		writeError(w, err, "update schedule event")
		return
	}
	pkg.WriteJSON(w, event, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := handler.api.Delete(r.Context(), id); err != nil {
		writeError(w, err, "delete schedule event")
		return
	}

	log.Debugf("schedule event %s deleted", id)
	pkg.WriteJSON(w, map[string]string{"deletedId": id}, http.StatusOK)
}
