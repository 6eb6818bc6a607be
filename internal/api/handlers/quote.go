package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mortgage-compare/internal/api/models"
	"mortgage-compare/internal/mortgage"
)

// Quote handles POST /api/v1/quote
func (h *MortgageHandler) Quote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	lender, err := mortgage.FindLender(h.lenders, req.LenderID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	qr, err := h.buildRequest(req.PropertyPrice, req.DepositPercent, req.TermYears, req.RateType)
	if err != nil {
		h.writeError(c, err)
		return
	}

	q, err := mortgage.Quote(qr, lender)
	if err != nil {
		h.writeError(c, err)
		return
	}

	schedule := q.Result.Schedule
	if req.IncludeFullSchedule {
		schedule, err = mortgage.FullSchedule(q.Result.LoanAmount, q.Terms.AnnualRatePercent, q.Terms.TermYears)
		if err != nil {
			h.writeError(c, err)
			return
		}
	}

	h.logger.Debug("Quote computed",
		zap.String("lender", lender.ID),
		zap.Float64("property_price", qr.PropertyPrice),
		zap.Float64("deposit_percent", q.Terms.DepositPercent),
		zap.Int("term_years", q.Terms.TermYears),
		zap.Float64("monthly_payment", q.Result.MonthlyPayment),
	)

	c.JSON(http.StatusOK, models.QuoteResponse{
		Lender:   toLenderInfo(lender),
		Terms:    toTerms(q.Terms),
		Result:   toSummary(q.Result),
		Schedule: schedule,
		Display:  toDisplay(q),
	})
}
