package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a lenient float. Form inputs arrive as numbers, numeric strings,
// empty strings or null; anything that is not a finite number decodes to 0.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = 0
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return nil
	}
	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return nil
		}
		s = strings.TrimSpace(str)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	*n = Number(f)
	return nil
}

func (n Number) Float64() float64 {
	return float64(n)
}

// DefaultPriority is the rank of an option with no priority set.
const DefaultPriority float64 = 999

// Priority ranks candidate options; 1 is the most preferred. Fractions are
// kept, so 1.5 ranks between 1 and 2.
type Priority float64

func (p *Priority) UnmarshalJSON(data []byte) error {
	var n Number
	_ = n.UnmarshalJSON(data)
	*p = Priority(n)
	return nil
}

// Rank returns the priority used for selection. Unset and non-positive values
// rank last.
func (p Priority) Rank() float64 {
	if p <= 0 {
		return DefaultPriority
	}
	return float64(p)
}
