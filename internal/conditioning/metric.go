package conditioning

import (
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/kondisca/internal/conditioning/formula"

	"go.uber.org/multierr"
)

// InputType tells where the values of a metric come from:
//   - manual: entered by a conditioner as measurements
//   - calculated: derived from other metrics by a formula
//   - survey: taken from a daily survey answer
type InputType string

const (
	InputManual     InputType = "manual"
	InputCalculated InputType = "calculated"
	InputSurvey     InputType = "survey"
)

func (it InputType) IsValid() bool {
	switch it {
	case InputManual, InputCalculated, InputSurvey:
		return true
	default:
		return false
	}
}

func (it InputType) String() string {
	return string(it)
}

var (
	ErrMetricNotFound  = errors.New("metric not found")
	ErrMetricNameTaken = errors.New("metric name already taken")
)

type MetricDefinition struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	Unit                   string    `json:"unit"`
	InputType              InputType `json:"inputType"`
	Formula                string    `json:"formula,omitempty"`
	SurveyQuestionKey      string    `json:"surveyQuestionKey,omitempty"`
	IsActive               bool      `json:"isActive"`
	ShowInRadar            bool      `json:"showInRadar"`
	ExcludeFromLeaderboard bool      `json:"excludeFromLeaderboard"`
}

// Normalize trims the name and clears the source field that does not
// belong to the metric's input type.
func (m *MetricDefinition) Normalize() {
	m.Name = strings.TrimSpace(m.Name)
	m.Formula = strings.TrimSpace(m.Formula)
	m.SurveyQuestionKey = strings.TrimSpace(m.SurveyQuestionKey)
	switch m.InputType {
	case InputManual:
		m.Formula = ""
		m.SurveyQuestionKey = ""
	case InputCalculated:
		m.SurveyQuestionKey = ""
	case InputSurvey:
		m.Formula = ""
	}
}

func (m *MetricDefinition) Validate() error {
	var err error
	if strings.TrimSpace(m.Name) == "" {
		err = multierr.Append(err, errors.New("metric name empty"))
	}
	if strings.ContainsAny(m.Name, "[]") {
		err = multierr.Append(err, errors.New("metric name must not contain brackets"))
	}
	switch m.InputType {
	case InputManual:
	case InputCalculated:
		if m.Formula == "" {
			err = multierr.Append(err, errors.New("calculated metric requires a formula"))
		} else if _, parseErr := formula.Parse(m.Formula); parseErr != nil {
			err = multierr.Append(err, fmt.Errorf("invalid formula: %w", parseErr))
		}
	case InputSurvey:
		if m.SurveyQuestionKey == "" {
			err = multierr.Append(err, errors.New("survey metric requires a survey question key"))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("unknown input type [%s]", m.InputType))
	}
	return err
}
