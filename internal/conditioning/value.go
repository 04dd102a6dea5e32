package conditioning

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type ValueKind int

const (
	KindNumber ValueKind = iota + 1
	KindText
)

// Value is either a number or a free text answer (e.g. pain details from a survey).
// The zero Value is empty and marshals to null.
type Value struct {
	Kind ValueKind
	Num  float64
	Text string
}

func NumberValue(n float64) Value {
	return Value{Kind: KindNumber, Num: n}
}

func TextValue(s string) Value {
	return Value{Kind: KindText, Text: s}
}

func (v Value) IsZero() bool {
	return v.Kind == 0
}

// Float returns the numeric value, false for text and empty values.
func (v Value) Float() (float64, bool) {
	if v.Kind != KindNumber {
		return 0, false
	}
	return v.Num, true
}

func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindText:
		return v.Text
	default:
		return ""
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNumber:
		return json.Marshal(v.Num)
	case KindText:
		return json.Marshal(v.Text)
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = Value{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = TextValue(s)
		return nil
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("value must be a number or a string: %w", err)
		}
		*v = NumberValue(n)
		return nil
	}
}
