// internal/domain/models/number.go
package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a lenient numeric field. The analytics API returns counts as
// JSON numbers but money as strings ("120.50"), and older deployments send
// null or omit fields entirely. Anything that does not parse as a finite
// number decodes to 0.
type Number float64

// Float returns the value as a float64.
func (n Number) Float() float64 { return float64(n) }

// UnmarshalJSON implements json.Unmarshaler. It never returns an error.
func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number(ParseNumber(b))
	return nil
}

// MarshalJSON writes the value as a plain JSON number.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(n), 'f', -1, 64)), nil
}

// ParseNumber coerces a raw JSON value to a float64, returning 0 for
// anything absent, null, empty or non-numeric.
func ParseNumber(raw []byte) float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}

	switch raw[0] {
	case 'n': // null
		return 0
	case 't':
		if string(raw) == "true" {
			return 1
		}
		return 0
	case 'f':
		return 0
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
		return finite(parseNumericString(s))
	case '{', '[':
		return 0
	}

	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return 0
	}
	return finite(f)
}

func parseNumericString(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
