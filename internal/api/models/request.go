package models

// QuoteRequest is the body of POST /api/v1/quote.
// Omitted deposit, term and rate type fall back to the configured defaults.
type QuoteRequest struct {
	PropertyPrice       float64  `json:"property_price" binding:"required,gt=0"`
	DepositPercent      *float64 `json:"deposit_percent,omitempty" binding:"omitempty,gte=0,lte=100"`
	TermYears           *int     `json:"term_years,omitempty" binding:"omitempty,gt=0"`
	RateType            string   `json:"rate_type,omitempty" binding:"omitempty,oneof=variable fixed"`
	LenderID            string   `json:"lender_id" binding:"required"`
	IncludeFullSchedule bool     `json:"include_full_schedule,omitempty"`
}

// CompareRequest is the body of POST /api/v1/compare.
type CompareRequest struct {
	PropertyPrice  float64  `json:"property_price" binding:"required,gt=0"`
	DepositPercent *float64 `json:"deposit_percent,omitempty" binding:"omitempty,gte=0,lte=100"`
	TermYears      *int     `json:"term_years,omitempty" binding:"omitempty,gt=0"`
	RateType       string   `json:"rate_type,omitempty" binding:"omitempty,oneof=variable fixed"`
	// Optional subset of lenders; all configured lenders when empty.
	LenderIDs []string `json:"lender_ids,omitempty"`
}
