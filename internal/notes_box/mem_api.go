package notes_box

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemApi keeps notes in memory, next to the in-memory record store.
// It does not know the players, so any player id is accepted.
type MemApi struct {
	mu    sync.RWMutex
	notes map[string]Note

	newID func() string
}

func NewMemApi() *MemApi {
	return &MemApi{
		notes: make(map[string]Note),
		newID: uuid.NewString,
	}
}

func (api *MemApi) Add(_ context.Context, note Note) (*Note, error) {
	if note.Text == "" || note.Date.IsZero() {
		return nil, errors.New("note text or timestamp empty")
	}

	api.mu.Lock()
	defer api.mu.Unlock()

	note.ID = api.newID()
	api.notes[note.ID] = note
	return &note, nil
}

func (api *MemApi) Get(_ context.Context, playerID, id string) (*Note, error) {
	api.mu.RLock()
	defer api.mu.RUnlock()

	note, ok := api.notes[id]
	if !ok || note.PlayerID != playerID {
		return nil, ErrNoteNotFound
	}
	return &note, nil
}

func (api *MemApi) Update(_ context.Context, note Note) error {
	if note.Text == "" {
		return errors.New("note text empty")
	}

	api.mu.Lock()
	defer api.mu.Unlock()

	stored, ok := api.notes[note.ID]
	if !ok || stored.PlayerID != note.PlayerID {
		return ErrNoteNotFound
	}
	stored.Text = note.Text
	stored.IsPublic = note.IsPublic
	api.notes[note.ID] = stored
	return nil
}

func (api *MemApi) Delete(_ context.Context, playerID, id string) error {
	api.mu.Lock()
	defer api.mu.Unlock()

	note, ok := api.notes[id]
	if !ok || note.PlayerID != playerID {
		return ErrNoteNotFound
	}
	delete(api.notes, id)
	return nil
}

func (api *MemApi) List(_ context.Context, playerID string) ([]Note, error) {
	api.mu.RLock()
	defer api.mu.RUnlock()

	notes := []Note{}
	for _, n := range api.notes {
		if n.PlayerID == playerID {
			notes = append(notes, n)
		}
	}
	sort.Slice(notes, func(i, j int) bool {
		if !notes[i].Date.Equal(notes[j].Date) {
			return notes[i].Date.After(notes[j].Date)
		}
		return notes[i].ID < notes[j].ID
	})
	return notes, nil
}
