package model

import (
	"errors"
	"fmt"
	"math"
)

// Rates are annual percentage rates, e.g. 4.75 means 4.75%/yr.
type Rates struct {
	Variable float64 `json:"variable" yaml:"variable"`
	Fixed    float64 `json:"fixed" yaml:"fixed"`
}

// For returns the rate for the given rate type.
func (r Rates) For(t RateType) (float64, error) {
	switch t {
	case RateVariable:
		return r.Variable, nil
	case RateFixed:
		return r.Fixed, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRateType, string(t))
	}
}

// Fees are flat one-time costs charged by a lender, in euro.
type Fees struct {
	Arrangement float64 `json:"arrangement" yaml:"arrangement"`
	Valuation   float64 `json:"valuation" yaml:"valuation"`
	Legal       float64 `json:"legal" yaml:"legal"`
}

// Total is the sum of all one-time fees.
func (f Fees) Total() float64 {
	return f.Arrangement + f.Valuation + f.Legal
}

// Lender describes one bank's mortgage terms.
// Lender values are configuration: loaded once, never mutated at runtime.
// Units:
// - MinDepositPercent: percent of property price, (0, 100]
// - MaxTermYears: years, > 0
type Lender struct {
	ID                string   `json:"id" yaml:"id"`
	Name              string   `json:"name" yaml:"name"`
	ShortName         string   `json:"short_name,omitempty" yaml:"short_name"`
	MinDepositPercent float64  `json:"min_deposit_percent" yaml:"min_deposit_percent"`
	MaxTermYears      int      `json:"max_term_years" yaml:"max_term_years"`
	Rates             Rates    `json:"rates" yaml:"rates"`
	Fees              Fees     `json:"fees" yaml:"fees"`
	Features          []string `json:"features,omitempty" yaml:"features"`
}

func (l Lender) Validate() error {
	if l.ID == "" {
		return errors.New("lender id is required")
	}
	if l.MinDepositPercent <= 0 || l.MinDepositPercent > 100 {
		return fmt.Errorf("lender %s: MinDepositPercent must be in (0, 100]", l.ID)
	}
	if l.MaxTermYears <= 0 {
		return fmt.Errorf("lender %s: MaxTermYears must be > 0", l.ID)
	}
	if !nonNegative(l.Rates.Variable) || !nonNegative(l.Rates.Fixed) {
		return fmt.Errorf("lender %s: rates must be finite and >= 0", l.ID)
	}
	if !nonNegative(l.Fees.Arrangement) || !nonNegative(l.Fees.Valuation) || !nonNegative(l.Fees.Legal) {
		return fmt.Errorf("lender %s: fees must be finite and >= 0", l.ID)
	}
	return nil
}

// DisplayName prefers the full name and falls back to the id.
func (l Lender) DisplayName() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// ValidateLenders checks every lender and rejects duplicate ids.
func ValidateLenders(lenders []Lender) error {
	if len(lenders) == 0 {
		return errors.New("at least one lender is required")
	}
	seen := make(map[string]bool, len(lenders))
	for _, l := range lenders {
		if err := l.Validate(); err != nil {
			return err
		}
		if seen[l.ID] {
			return fmt.Errorf("duplicate lender id %q", l.ID)
		}
		seen[l.ID] = true
	}
	return nil
}

func nonNegative(x float64) bool {
	return x >= 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}
