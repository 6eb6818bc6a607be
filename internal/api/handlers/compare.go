package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mortgage-compare/internal/analysis"
	"mortgage-compare/internal/api/models"
	"mortgage-compare/internal/model"
	"mortgage-compare/internal/mortgage"
)

// Compare handles POST /api/v1/compare
func (h *MortgageHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	lenders := h.lenders
	if len(req.LenderIDs) > 0 {
		lenders = make([]model.Lender, 0, len(req.LenderIDs))
		for _, id := range req.LenderIDs {
			l, err := mortgage.FindLender(h.lenders, id)
			if err != nil {
				h.writeError(c, err)
				return
			}
			lenders = append(lenders, l)
		}
	}

	qr, err := h.buildRequest(req.PropertyPrice, req.DepositPercent, req.TermYears, req.RateType)
	if err != nil {
		h.writeError(c, err)
		return
	}

	comparison, err := mortgage.Compare(qr, lenders)
	if err != nil {
		h.writeError(c, err)
		return
	}
	ranked, summary := analysis.RankComparison(comparison)

	rankings := make([]models.Ranking, len(ranked))
	for i, r := range ranked {
		rankings[i] = models.Ranking{
			Rank:      r.Rank,
			Lender:    toLenderInfo(r.Lender),
			Terms:     toTerms(r.Terms),
			Result:    toSummary(r.Result),
			ExtraCost: r.ExtraCost,
			BestDeal:  r.Rank == 1,
			Display:   toDisplay(r.LenderQuote),
		}
	}

	h.logger.Debug("Comparison computed",
		zap.Float64("property_price", qr.PropertyPrice),
		zap.String("rate_type", string(qr.RateType)),
		zap.Int("lenders", len(lenders)),
		zap.String("best_deal", comparison.BestDeal.Lender.ID),
	)

	c.JSON(http.StatusOK, models.CompareResponse{
		PropertyPrice: qr.PropertyPrice,
		BestDeal:      comparison.BestDeal.Lender.ID,
		Rankings:      rankings,
		Summary: models.ComparisonSummary{
			Count:             summary.Count,
			BestLenderID:      summary.BestLenderID,
			WorstLenderID:     summary.WorstLenderID,
			MinTotalCost:      summary.MinTotalCost,
			MaxTotalCost:      summary.MaxTotalCost,
			Spread:            summary.Spread,
			MinMonthlyPayment: summary.MinMonthlyPayment,
			MaxMonthlyPayment: summary.MaxMonthlyPayment,
		},
	})
}
