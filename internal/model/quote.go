package model

// QuoteRequest is built from user input for every recalculation.
//
// DepositPercent and TermYears are the values the user asked for; the engine
// clamps them to a lender's bounds before applying the formula.
type QuoteRequest struct {
	PropertyPrice  float64
	DepositPercent float64
	TermYears      int
	RateType       RateType
}

// AmortizationRow is one month of the repayment schedule.
type AmortizationRow struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

// QuoteResult is the computed cost breakdown of one mortgage. Amounts are euro.
type QuoteResult struct {
	Deposit        float64           `json:"deposit"`
	LoanAmount     float64           `json:"loan_amount"`
	MonthlyPayment float64           `json:"monthly_payment"`
	TotalPayment   float64           `json:"total_payment"`
	TotalInterest  float64           `json:"total_interest"`
	TotalFees      float64           `json:"total_fees"`
	TotalCost      float64           `json:"total_cost"`
	Schedule       []AmortizationRow `json:"schedule"`
}
