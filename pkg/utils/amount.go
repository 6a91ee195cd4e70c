package utils

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ParseAmount coerces a decoded JSON value into a non-negative currency
// amount. Missing, unparsable, or negative input yields 0; nothing is
// ever rejected.
func ParseAmount(v any) float64 {
	var amount float64

	switch val := v.(type) {
	case float64:
		amount = val
	case int:
		amount = float64(val)
	case int64:
		amount = float64(val)
	case json.Number:
		amount, _ = val.Float64()
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		amount = parsed
	default:
		return 0
	}

	if amount < 0 {
		return 0
	}
	return amount
}
