package conditioning

import (
	"errors"
	"time"
)

var (
	ErrPlayerNotFound      = errors.New("player not found")
	ErrMeasurementNotFound = errors.New("measurement not found")
	ErrQuestionNotFound    = errors.New("survey question not found")
	ErrQuestionKeyTaken    = errors.New("survey question key already taken")
	ErrInjuryNotFound      = errors.New("injury not found")
)

type Measurement struct {
	ID       string    `json:"id"`
	PlayerID string    `json:"playerId"`
	MetricID string    `json:"metricId"`
	Value    float64   `json:"value"`
	Date     time.Time `json:"date"`
}

// DailySurvey holds one player's answers for one calendar day,
// keyed by survey question key. Date is that day at midnight UTC
// (see CalendarDate), already in the team's timezone.
type DailySurvey struct {
	PlayerID string           `json:"playerId"`
	Date     time.Time        `json:"date"`
	Answers  map[string]Value `json:"answers"`
}

type Injury struct {
	ID                string     `json:"id"`
	PlayerID          string     `json:"playerId"`
	Description       string     `json:"description"`
	EstimatedRecovery string     `json:"estimatedRecovery"`
	Date              time.Time  `json:"date"`
	RecoveryDate      *time.Time `json:"recoveryDate,omitempty"`
}

func (i Injury) IsActive() bool {
	return i.RecoveryDate == nil
}

type Player struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Position  string     `json:"position"`
	AvatarURL string     `json:"avatarUrl"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	BirthDate *time.Time `json:"birthDate,omitempty"`

	Measurements  []Measurement `json:"measurements"`
	DailySurveys  []DailySurvey `json:"dailySurveys"`
	Injury        *Injury       `json:"injury"`
	InjuryHistory []Injury      `json:"injuryHistory"`
}

// CurrentInjury returns the most recent unrecovered injury from the history.
func CurrentInjury(history []Injury) *Injury {
	var current *Injury
	for i := range history {
		inj := history[i]
		if !inj.IsActive() {
			continue
		}
		if current == nil || inj.Date.After(current.Date) {
			current = &inj
		}
	}
	return current
}

type QuestionType string

const (
	QuestionNumber   QuestionType = "number"
	QuestionRange    QuestionType = "range"
	QuestionTextarea QuestionType = "textarea"
)

func (qt QuestionType) IsValid() bool {
	switch qt {
	case QuestionNumber, QuestionRange, QuestionTextarea:
		return true
	default:
		return false
	}
}

const (
	RangeMin = 1
	RangeMax = 9
)

type SurveyQuestion struct {
	ID       string       `json:"id"`
	Label    string       `json:"label"`
	Key      string       `json:"key"`
	Type     QuestionType `json:"type"`
	IsActive bool         `json:"isActive"`
}

// CalendarDate drops the time of day of t, as seen in loc, and returns
// that date at midnight UTC. A nil loc means UTC.
func CalendarDate(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
