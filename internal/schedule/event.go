// Package schedule holds the team calendar: practices, games and other
// events, either for the whole team or for a few players.
package schedule

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	ErrEventNotFound = errors.New("schedule event not found")
	ErrInvalidEvent  = errors.New("invalid schedule event")
)

type Event struct {
	ID string `json:"id"`
	// Date is a calendar date, YYYY-MM-DD.
	Date string `json:"date"`
	// Time is optional, HH:MM.
	Time        string `json:"time,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	IsTeamEvent bool   `json:"isTeamEvent"`
	// PlayerIDs is empty for team events.
	PlayerIDs []string `json:"playerIds"`
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidEvent, fmt.Sprintf(format, args...))
}

// Normalize trims the text fields, checks the date and time formats and the
// audience of the event. Team events drop their player list, other events
// need at least one player. Duplicate player ids are removed.
func (e *Event) Normalize() error {
	e.Title = strings.TrimSpace(e.Title)
	e.Description = strings.TrimSpace(e.Description)
	e.Date = strings.TrimSpace(e.Date)
	e.Time = strings.TrimSpace(e.Time)

	if e.Title == "" {
		return invalidf("title empty")
	}
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return invalidf("date [%s] is not YYYY-MM-DD", e.Date)
	}
	if e.Time != "" {
		if _, err := time.Parse(TimeLayout, e.Time); err != nil {
			return invalidf("time [%s] is not HH:MM", e.Time)
		}
	}

	if e.IsTeamEvent {
		e.PlayerIDs = []string{}
		return nil
	}

	seen := make(map[string]bool, len(e.PlayerIDs))
	playerIDs := make([]string, 0, len(e.PlayerIDs))
	for _, id := range e.PlayerIDs {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		playerIDs = append(playerIDs, id)
	}
	if len(playerIDs) == 0 {
		return invalidf("event is neither for the team nor for any player")
	}
	e.PlayerIDs = playerIDs
	return nil
}

// Involves reports whether the player takes part in the event.
func (e Event) Involves(playerID string) bool {
	if e.IsTeamEvent {
		return true
	}
	for _, id := range e.PlayerIDs {
		if id == playerID {
			return true
		}
	}
	return false
}

// ForPlayer keeps the team events and the events of the given player.
func ForPlayer(events []Event, playerID string) []Event {
	own := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Involves(playerID) {
			own = append(own, e)
		}
	}
	return own
}

// Range is an inclusive span of calendar dates, an empty bound is open.
type Range struct {
	From string
	To   string
}

func ParseRange(from, to string) (Range, error) {
	for _, d := range []string{from, to} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(DateLayout, d); err != nil {
			return Range{}, invalidf("date [%s] is not YYYY-MM-DD", d)
		}
	}
	if from != "" && to != "" && from > to {
		return Range{}, invalidf("range [%s, %s] is reversed", from, to)
	}
	return Range{From: from, To: to}, nil
}

// Contains compares the dates as strings, which sorts right for YYYY-MM-DD.
func (r Range) Contains(date string) bool {
	if r.From != "" && date < r.From {
		return false
	}
	if r.To != "" && date > r.To {
		return false
	}
	return true
}

// SortEvents orders events by date, then time. Events without a time come
// first on their day.
func SortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].Time < events[j].Time
	})
}
