package schedule

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type MemApi struct {
	mu     sync.RWMutex
	events []Event

	newID func() string
}

func NewMemApi() *MemApi {
	return &MemApi{
		newID: uuid.NewString,
	}
}

func (api *MemApi) Add(_ context.Context, event Event) (*Event, error) {
	if err := event.Normalize(); err != nil {
		return nil, err
	}

	api.mu.Lock()
	defer api.mu.Unlock()

	event.ID = api.newID()
	api.events = append(api.events, copyEvent(event))
	return &event, nil
}

func (api *MemApi) Get(_ context.Context, id string) (*Event, error) {
	api.mu.RLock()
	defer api.mu.RUnlock()

	idx := api.index(id)
	if idx < 0 {
		return nil, ErrEventNotFound
	}
	e := copyEvent(api.events[idx])
	return &e, nil
}

func (api *MemApi) Update(_ context.Context, event Event) error {
	if err := event.Normalize(); err != nil {
		return err
	}

	api.mu.Lock()
	defer api.mu.Unlock()

	idx := api.index(event.ID)
	if idx < 0 {
		return ErrEventNotFound
	}
	api.events[idx] = copyEvent(event)
	return nil
}

func (api *MemApi) Delete(_ context.Context, id string) error {
	api.mu.Lock()
	defer api.mu.Unlock()

	idx := api.index(id)
	if idx < 0 {
		return ErrEventNotFound
	}
	api.events = append(api.events[:idx], api.events[idx+1:]...)
	return nil
}

func (api *MemApi) List(_ context.Context, r Range) ([]Event, error) {
	api.mu.RLock()
	defer api.mu.RUnlock()

	events := []Event{}
	for _, e := range api.events {
		if r.Contains(e.Date) {
			events = append(events, copyEvent(e))
		}
	}
	SortEvents(events)
	return events, nil
}

func (api *MemApi) index(id string) int {
	for i := range api.events {
		if api.events[i].ID == id {
			return i
		}
	}
	return -1
}

func copyEvent(e Event) Event {
	e.PlayerIDs = append([]string{}, e.PlayerIDs...)
	return e
}
