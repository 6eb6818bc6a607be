package analysis

import (
	"mortgage-compare/internal/mortgage"
)

// Summary is a lender-independent view of a comparison, handy for headlines like
// "save €12,345 by picking APS".
type Summary struct {
	Count int

	BestLenderID  string
	WorstLenderID string

	MinTotalCost float64
	MaxTotalCost float64
	// Spread is MaxTotalCost - MinTotalCost.
	Spread float64

	MinMonthlyPayment float64
	MaxMonthlyPayment float64
}

func Summarize(ranked []RankedQuote) Summary {
	s := Summary{}
	if len(ranked) == 0 {
		return s
	}
	best, worst := ranked[0], ranked[len(ranked)-1]
	s.Count = len(ranked)
	s.BestLenderID = best.Lender.ID
	s.WorstLenderID = worst.Lender.ID
	s.MinTotalCost = best.Result.TotalCost
	s.MaxTotalCost = worst.Result.TotalCost
	s.Spread = s.MaxTotalCost - s.MinTotalCost

	s.MinMonthlyPayment = best.Result.MonthlyPayment
	s.MaxMonthlyPayment = best.Result.MonthlyPayment
	for _, r := range ranked[1:] {
		s.MinMonthlyPayment = min(s.MinMonthlyPayment, r.Result.MonthlyPayment)
		s.MaxMonthlyPayment = max(s.MaxMonthlyPayment, r.Result.MonthlyPayment)
	}
	return s
}

// RankComparison is the usual entry point: rank a comparison and summarize it.
func RankComparison(c mortgage.Comparison) ([]RankedQuote, Summary) {
	ranked := RankByTotalCost(c.Results)
	return ranked, Summarize(ranked)
}
