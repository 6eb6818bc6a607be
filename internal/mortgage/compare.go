package mortgage

import (
	"fmt"

	"mortgage-compare/internal/model"
)

// Terms are the parameters actually fed to Calculate after clamping to a lender's bounds.
type Terms struct {
	DepositPercent    float64        `json:"deposit_percent"`
	TermYears         int            `json:"term_years"`
	RateType          model.RateType `json:"rate_type"`
	AnnualRatePercent float64        `json:"annual_rate_percent"`
}

// LenderQuote pairs a lender with the quote it produces.
type LenderQuote struct {
	Lender model.Lender
	Terms  Terms
	Result model.QuoteResult
}

// Comparison is the outcome of quoting the same request against several lenders.
// Results keep the order lenders were given in.
type Comparison struct {
	Results  []LenderQuote
	BestDeal LenderQuote
}

// EffectiveTerms clamps the request to the lender's bounds:
// deposit to [MinDepositPercent, 100] and term to [1, MaxTermYears].
func EffectiveTerms(req model.QuoteRequest, lender model.Lender) (Terms, error) {
	rate, err := lender.Rates.For(req.RateType)
	if err != nil {
		return Terms{}, err
	}
	deposit := min(max(req.DepositPercent, lender.MinDepositPercent), 100)
	term := max(min(req.TermYears, lender.MaxTermYears), 1)
	return Terms{
		DepositPercent:    deposit,
		TermYears:         term,
		RateType:          req.RateType,
		AnnualRatePercent: rate,
	}, nil
}

// Quote prices the request with a single lender.
func Quote(req model.QuoteRequest, lender model.Lender) (LenderQuote, error) {
	if err := ValidateRequest(req); err != nil {
		return LenderQuote{}, err
	}
	terms, err := EffectiveTerms(req, lender)
	if err != nil {
		return LenderQuote{}, err
	}
	res, err := Calculate(req.PropertyPrice, terms.DepositPercent, terms.TermYears, terms.AnnualRatePercent, lender.Fees)
	if err != nil {
		return LenderQuote{}, fmt.Errorf("lender %s: %w", lender.ID, err)
	}
	return LenderQuote{Lender: lender, Terms: terms, Result: res}, nil
}

// Compare quotes every lender and picks the one with the lowest total cost.
// Ties go to the lender listed first.
func Compare(req model.QuoteRequest, lenders []model.Lender) (Comparison, error) {
	if len(lenders) == 0 {
		return Comparison{}, ErrNoLenders
	}

	results := make([]LenderQuote, 0, len(lenders))
	best := 0
	for i, l := range lenders {
		q, err := Quote(req, l)
		if err != nil {
			return Comparison{}, err
		}
		results = append(results, q)
		if q.Result.TotalCost < results[best].Result.TotalCost {
			best = i
		}
	}

	return Comparison{Results: results, BestDeal: results[best]}, nil
}

// FindLender looks a lender up by id.
func FindLender(lenders []model.Lender, id string) (model.Lender, error) {
	for _, l := range lenders {
		if l.ID == id {
			return l, nil
		}
	}
	return model.Lender{}, fmt.Errorf("%w: %q", ErrUnknownLender, id)
}
