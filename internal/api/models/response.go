package models

import "mortgage-compare/internal/model"

// LenderInfo represents one lender in listings and quotes.
type LenderInfo struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	ShortName         string      `json:"short_name,omitempty"`
	MinDepositPercent float64     `json:"min_deposit_percent"`
	MaxTermYears      int         `json:"max_term_years"`
	Rates             model.Rates `json:"rates"`
	Fees              model.Fees  `json:"fees"`
	Features          []string    `json:"features,omitempty"`
}

// EffectiveTerms are the request parameters after clamping to the lender's bounds.
type EffectiveTerms struct {
	DepositPercent    float64 `json:"deposit_percent"`
	TermYears         int     `json:"term_years"`
	RateType          string  `json:"rate_type"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
}

// QuoteSummary is the quote result without its schedule.
type QuoteSummary struct {
	Deposit        float64 `json:"deposit"`
	LoanAmount     float64 `json:"loan_amount"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
	TotalFees      float64 `json:"total_fees"`
	TotalCost      float64 `json:"total_cost"`
}

// DisplayStrings mirror the UI formatting contract: €1,368 and 4.75%.
type DisplayStrings struct {
	Deposit        string `json:"deposit"`
	LoanAmount     string `json:"loan_amount"`
	MonthlyPayment string `json:"monthly_payment"`
	TotalInterest  string `json:"total_interest"`
	TotalFees      string `json:"total_fees"`
	TotalCost      string `json:"total_cost"`
	Rate           string `json:"rate"`
}

// QuoteResponse represents the response of POST /api/v1/quote.
type QuoteResponse struct {
	Lender   LenderInfo              `json:"lender"`
	Terms    EffectiveTerms          `json:"terms"`
	Result   QuoteSummary            `json:"result"`
	Schedule []model.AmortizationRow `json:"schedule"`
	Display  DisplayStrings          `json:"display"`
}

// Ranking represents one lender in a comparison, best first.
type Ranking struct {
	Rank      int            `json:"rank"`
	Lender    LenderInfo     `json:"lender"`
	Terms     EffectiveTerms `json:"terms"`
	Result    QuoteSummary   `json:"result"`
	ExtraCost float64        `json:"extra_cost"`
	BestDeal  bool           `json:"best_deal"`
	Display   DisplayStrings `json:"display"`
}

// ComparisonSummary contains aggregated comparison figures.
type ComparisonSummary struct {
	Count             int     `json:"count"`
	BestLenderID      string  `json:"best_lender_id"`
	WorstLenderID     string  `json:"worst_lender_id"`
	MinTotalCost      float64 `json:"min_total_cost"`
	MaxTotalCost      float64 `json:"max_total_cost"`
	Spread            float64 `json:"spread"`
	MinMonthlyPayment float64 `json:"min_monthly_payment"`
	MaxMonthlyPayment float64 `json:"max_monthly_payment"`
}

// CompareResponse represents the response of POST /api/v1/compare.
type CompareResponse struct {
	PropertyPrice float64           `json:"property_price"`
	BestDeal      string            `json:"best_deal"`
	Rankings      []Ranking         `json:"rankings"`
	Summary       ComparisonSummary `json:"summary"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
