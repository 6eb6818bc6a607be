package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	cases := map[float64]string{
		231450:      "€231,450",
		1368.28:     "€1,368",
		1368.5:      "€1,369",
		410484.5002: "€410,485",
		999:         "€999",
		0:           "€0",
		1234567.4:   "€1,234,567",
	}
	for in, want := range cases {
		assert.Equal(t, want, Currency(in), "Currency(%v)", in)
	}
}

func TestCurrency_OutOfInt64Range(t *testing.T) {
	assert.Equal(t, "€10,000,000,000,000,000,000", Currency(1e19))
	assert.Equal(t, "€-10,000,000,000,000,000,000", Currency(-1e19))
	assert.Equal(t, "€+Inf", Currency(math.Inf(1)))
	assert.Equal(t, "€NaN", Currency(math.NaN()))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "4.75%", Percent(4.75))
	assert.Equal(t, "4.90%", Percent(4.9))
	assert.Equal(t, "5.00%", Percent(5))
	assert.Equal(t, "0.00%", Percent(0))
}
