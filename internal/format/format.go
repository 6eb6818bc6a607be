// Package format renders amounts the way the listing UI shows them.
package format

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Currency renders a euro amount rounded to the nearest euro with thousands separators, e.g. €231,450.
func Currency(amount float64) string {
	r := math.Round(amount)
	switch {
	case math.IsNaN(r) || math.IsInf(r, 0):
		return "€" + fmt.Sprint(r)
	case math.Abs(r) >= math.MaxInt64:
		return "€" + humanize.Commaf(r)
	}
	return "€" + humanize.Comma(int64(r))
}

// Percent renders a percentage with two decimals, e.g. 4.75%.
func Percent(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}
