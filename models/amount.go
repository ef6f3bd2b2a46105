package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount is a numeric field the backend sends either as a JSON number or as a
// numeric string. The raw text is kept as-is; decoding never fails.
type Amount struct {
	Raw   string
	Valid bool
}

// NewAmount builds a present Amount from a float.
func NewAmount(v float64) Amount {
	return Amount{Raw: strconv.FormatFloat(v, 'f', -1, 64), Valid: true}
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	raw := bytes.TrimSpace(b)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		*a = Amount{}
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			*a = Amount{}
			return nil
		}
		s = strings.TrimSpace(s)
		*a = Amount{Raw: s, Valid: s != ""}
		return nil
	}
	*a = Amount{Raw: string(raw), Valid: true}
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	if v, ok := a.Float(); ok {
		return []byte(strconv.FormatFloat(v, 'f', -1, 64)), nil
	}
	return json.Marshal(a.Raw)
}

// Float parses the raw value. NaN and infinities are rejected.
func (a Amount) Float() (float64, bool) {
	if !a.Valid {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(a.Raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
