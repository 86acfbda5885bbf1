package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Numeric is a nullable number that tolerates the payload variants the UI
// layer produces: a JSON number, a quoted number, an empty string, or null.
// Anything unparseable decodes to nil rather than an error, so "unknown"
// never turns into 0.
type Numeric struct {
	Value *float64
}

func NumericFrom(v float64) Numeric {
	return Numeric{Value: &v}
}

func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		n.Value = nil
		return nil
	}

	s := string(data)
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			n.Value = nil
			return nil
		}
	}

	s = strings.TrimSpace(s)
	if s == "" {
		n.Value = nil
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		n.Value = nil
		return nil
	}

	n.Value = &f
	return nil
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}
