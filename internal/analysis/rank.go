package analysis

import (
	"sort"

	"mortgage-compare/internal/mortgage"
)

type RankedQuote struct {
	mortgage.LenderQuote
	Rank int
	// ExtraCost is how much more this lender costs than the best deal over the whole loan.
	ExtraCost float64
}

// RankByTotalCost sorts quotes ascending by TotalCost. Equal costs keep their input order,
// so the first entry is always the comparison's best deal.
func RankByTotalCost(quotes []mortgage.LenderQuote) []RankedQuote {
	out := make([]RankedQuote, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, RankedQuote{LenderQuote: q})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Result.TotalCost < out[j].Result.TotalCost
	})
	for i := range out {
		out[i].Rank = i + 1
		out[i].ExtraCost = out[i].Result.TotalCost - out[0].Result.TotalCost
	}
	return out
}
