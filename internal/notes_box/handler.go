package notes_box

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/kondisca/internal/auth"
	"github.com/2beens/kondisca/internal/conditioning"
	"github.com/2beens/kondisca/internal/middleware"
	"github.com/2beens/kondisca/internal/telemetry/metrics"
	"github.com/2beens/kondisca/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type PlayerFinder interface {
	GetPlayer(ctx context.Context, id string) (*conditioning.Player, error)
}

type NoteRequest struct {
	Text     string `json:"text"`
	IsPublic bool   `json:"isPublic"`
}

type NotesResponse struct {
	Notes []Note `json:"notes"`
	Total int    `json:"total"`
}

type Handler struct {
	api     Api
	players PlayerFinder
	metrics *metrics.Manager
	now     func() time.Time
}

func NewHandler(
	api Api,
	players PlayerFinder,
	metrics *metrics.Manager,
) *Handler {
	return &Handler{
		api:     api,
		players: players,
		metrics: metrics,
		now:     time.Now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	conditioner := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireRole(auth.RoleConditioner)(h)
	}

	r.HandleFunc("/players/{id}/notes", handler.HandleList).Methods("GET", "OPTIONS").Name("list-notes")
	r.Handle("/players/{id}/notes", conditioner(handler.HandleAdd)).Methods("POST", "OPTIONS").Name("add-note")
	r.Handle("/players/{id}/notes/{nid}", conditioner(handler.HandleUpdate)).Methods("PUT", "OPTIONS").Name("update-note")
	r.Handle("/players/{id}/notes/{nid}", conditioner(handler.HandleDelete)).Methods("DELETE", "OPTIONS").Name("delete-note")
}

func writeError(w http.ResponseWriter, err error, what string) {
	switch {
	case errors.Is(err, conditioning.ErrPlayerNotFound),
		errors.Is(err, ErrNoteNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Errorf("%s: %s", what, err)
		http.Error(w, "error, "+what, http.StatusInternalServerError)
	}
}

// decodeNote reads the request body, the note text must not be blank.
func decodeNote(w http.ResponseWriter, r *http.Request) (NoteRequest, bool) {
	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("unmarshal note [%s]: %s", r.URL.Path, err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return req, false
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		http.Error(w, "error, note text empty", http.StatusBadRequest)
		return req, false
	}
	return req, true
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	playerID := mux.Vars(r)["id"]
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if !session.IsConditioner() && session.UserID != playerID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	if _, err := handler.players.GetPlayer(r.Context(), playerID); err != nil {
		writeError(w, err, "list notes")
		return
	}
	notes, err := handler.api.List(r.Context(), playerID)
	if err != nil {
		writeError(w, err, "list notes")
		return
	}
	if !session.IsConditioner() {
		notes = PublicOnly(notes)
	}
	if notes == nil {
		notes = []Note{}
	}

	pkg.WriteJSON(w, NotesResponse{Notes: notes, Total: len(notes)}, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	playerID := mux.Vars(r)["id"]
	req, ok := decodeNote(w, r)
	if !ok {
		return
	}

	if _, err := handler.players.GetPlayer(r.Context(), playerID); err != nil {
		writeError(w, err, "add note")
		return
	}

	note := Note{
		PlayerID: playerID,
		Text:     req.Text,
		Date:     handler.now().UTC(),
		IsPublic: req.IsPublic,
	}
	if session, ok := auth.SessionFromContext(r.Context()); ok {
		note.AuthorID = session.UserID
	}

	added, err := handler.api.Add(r.Context(), note)
	if err != nil {
		writeError(w, err, "add note")
		return
	}

	handler.metrics.CounterNotes.Inc()

	log.Debugf("new note added for player %s: %s", playerID, added.ID)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	req, ok := decodeNote(w, r)
	if !ok {
		return
	}

	note := Note{
		ID:       vars["nid"],
		PlayerID: vars["id"],
		Text:     req.Text,
		IsPublic: req.IsPublic,
	}
	if err := handler.api.Update(r.Context(), note); err != nil {
		writeError(w, err, "update note")
		return
	}

	updated, err := handler.api.Get(r.Context(), note.PlayerID, note.ID)
	if err != nil {
		writeError(w, err, "update note")
		return
	}
	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := handler.api.Delete(r.Context(), vars["id"], vars["nid"]); err != nil {
		writeError(w, err, "delete note")
		return
	}

	log.Debugf("note %s of player %s deleted", vars["nid"], vars["id"])
	pkg.WriteJSON(w, map[string]string{"deletedId": vars["nid"]}, http.StatusOK)
}
