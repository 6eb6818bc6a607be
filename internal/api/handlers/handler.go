package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mortgage-compare/internal/api/models"
	"mortgage-compare/internal/config"
	"mortgage-compare/internal/format"
	"mortgage-compare/internal/model"
	"mortgage-compare/internal/mortgage"
)

// MortgageHandler serves lender listings, quotes and comparisons from a fixed lender table.
type MortgageHandler struct {
	lenders  []model.Lender
	defaults config.QuoteDefaults
	logger   *zap.Logger
}

// NewMortgageHandler creates a new mortgage handler. The lender slice is copied and never modified.
func NewMortgageHandler(lenders []model.Lender, defaults config.QuoteDefaults, logger *zap.Logger) *MortgageHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MortgageHandler{
		lenders:  append([]model.Lender(nil), lenders...),
		defaults: defaults,
		logger:   logger,
	}
}

// ListLenders handles GET /api/v1/lenders
func (h *MortgageHandler) ListLenders(c *gin.Context) {
	out := make([]models.LenderInfo, len(h.lenders))
	for i, l := range h.lenders {
		out[i] = toLenderInfo(l)
	}
	c.JSON(http.StatusOK, gin.H{"lenders": out, "count": len(out)})
}

func (h *MortgageHandler) buildRequest(price float64, deposit *float64, term *int, rateType string) (model.QuoteRequest, error) {
	req := model.QuoteRequest{
		PropertyPrice:  price,
		DepositPercent: h.defaults.DepositPercent,
		TermYears:      h.defaults.TermYears,
	}
	if deposit != nil {
		req.DepositPercent = *deposit
	}
	if term != nil {
		req.TermYears = *term
	}
	rt, err := model.ParseRateType(rateType, h.defaults.RateType)
	if err != nil {
		return model.QuoteRequest{}, err
	}
	req.RateType = rt
	return req, nil
}

// writeError maps engine errors onto the error envelope.
func (h *MortgageHandler) writeError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "INTERNAL_ERROR"
	switch {
	case errors.Is(err, mortgage.ErrInvalidInput), errors.Is(err, model.ErrUnknownRateType):
		status, code = http.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, mortgage.ErrUnknownLender):
		status, code = http.StatusNotFound, "UNKNOWN_LENDER"
	case errors.Is(err, mortgage.ErrNoLenders):
		status, code = http.StatusBadRequest, "NO_LENDERS"
	}
	if status >= 500 {
		h.logger.Error("Mortgage calculation failed", zap.Error(err))
	}
	_ = c.Error(err)
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

func invalidRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}

func toLenderInfo(l model.Lender) models.LenderInfo {
	return models.LenderInfo{
		ID:                l.ID,
		Name:              l.DisplayName(),
		ShortName:         l.ShortName,
		MinDepositPercent: l.MinDepositPercent,
		MaxTermYears:      l.MaxTermYears,
		Rates:             l.Rates,
		Fees:              l.Fees,
		Features:          l.Features,
	}
}

func toTerms(t mortgage.Terms) models.EffectiveTerms {
	return models.EffectiveTerms{
		DepositPercent:    t.DepositPercent,
		TermYears:         t.TermYears,
		RateType:          string(t.RateType),
		AnnualRatePercent: t.AnnualRatePercent,
	}
}

func toSummary(r model.QuoteResult) models.QuoteSummary {
	return models.QuoteSummary{
		Deposit:        r.Deposit,
		LoanAmount:     r.LoanAmount,
		MonthlyPayment: r.MonthlyPayment,
		TotalPayment:   r.TotalPayment,
		TotalInterest:  r.TotalInterest,
		TotalFees:      r.TotalFees,
		TotalCost:      r.TotalCost,
	}
}

func toDisplay(q mortgage.LenderQuote) models.DisplayStrings {
	return models.DisplayStrings{
		Deposit:        format.Currency(q.Result.Deposit),
		LoanAmount:     format.Currency(q.Result.LoanAmount),
		MonthlyPayment: format.Currency(q.Result.MonthlyPayment),
		TotalInterest:  format.Currency(q.Result.TotalInterest),
		TotalFees:      format.Currency(q.Result.TotalFees),
		TotalCost:      format.Currency(q.Result.TotalCost),
		Rate:           format.Percent(q.Terms.AnnualRatePercent),
	}
}
