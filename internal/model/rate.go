package model

import (
	"errors"
	"fmt"
	"strings"
)

// RateType selects which of a lender's rates applies to a quote.
// Keep these values stable; they appear in requests, config and CSV output.
type RateType string

const (
	RateVariable RateType = "variable"
	RateFixed    RateType = "fixed"
)

var ErrUnknownRateType = errors.New("unknown rate type")

// ParseRateType accepts "variable" or "fixed" in any case.
// An empty string yields def.
func ParseRateType(s string, def RateType) (RateType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return def, nil
	case string(RateVariable):
		return RateVariable, nil
	case string(RateFixed):
		return RateFixed, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRateType, s)
	}
}
