package mortgage

import (
	"errors"
	"fmt"
	"math"

	"mortgage-compare/internal/model"
)

// ScheduleMonths is how many schedule rows a quote carries.
const ScheduleMonths = 12

var (
	ErrInvalidInput  = errors.New("invalid mortgage input")
	ErrNoLenders     = errors.New("no lenders to compare")
	ErrUnknownLender = errors.New("unknown lender")
)

// Calculate computes a fixed-payment amortized loan.
//
// depositPercent is in [0, 100], annualRatePercent is a percentage (4.75 = 4.75%/yr).
// A zero rate is an interest-free loan repaid in equal instalments.
func Calculate(propertyPrice, depositPercent float64, termYears int, annualRatePercent float64, fees model.Fees) (model.QuoteResult, error) {
	if err := validate(propertyPrice, depositPercent, termYears, annualRatePercent, fees); err != nil {
		return model.QuoteResult{}, err
	}

	deposit := propertyPrice * depositPercent / 100
	loanAmount := propertyPrice - deposit
	monthlyRate := annualRatePercent / 100 / 12
	numPayments := termYears * 12

	monthlyPayment := payment(loanAmount, monthlyRate, numPayments)
	totalPayment := monthlyPayment * float64(numPayments)
	totalFees := fees.Total()

	res := model.QuoteResult{
		Deposit:        deposit,
		LoanAmount:     loanAmount,
		MonthlyPayment: monthlyPayment,
		TotalPayment:   totalPayment,
		TotalInterest:  totalPayment - loanAmount,
		TotalFees:      totalFees,
		TotalCost:      totalPayment + totalFees + deposit,
		Schedule:       amortize(loanAmount, monthlyRate, monthlyPayment, min(ScheduleMonths, numPayments)),
	}
	if !finiteResult(res) {
		return model.QuoteResult{}, fmt.Errorf("%w: amounts overflow for price %v at %v%%", ErrInvalidInput, propertyPrice, annualRatePercent)
	}
	return res, nil
}

// FullSchedule returns every month of the loan, not just the first year.
func FullSchedule(loanAmount, annualRatePercent float64, termYears int) ([]model.AmortizationRow, error) {
	if !finite(loanAmount) || loanAmount < 0 {
		return nil, fmt.Errorf("%w: loan amount must be >= 0", ErrInvalidInput)
	}
	if termYears <= 0 {
		return nil, fmt.Errorf("%w: term must be > 0 years", ErrInvalidInput)
	}
	if !finite(annualRatePercent) || annualRatePercent < 0 {
		return nil, fmt.Errorf("%w: rate must be >= 0", ErrInvalidInput)
	}
	monthlyRate := annualRatePercent / 100 / 12
	n := termYears * 12
	monthly := payment(loanAmount, monthlyRate, n)
	if !finite(monthly) {
		return nil, fmt.Errorf("%w: monthly payment overflows for loan amount %v", ErrInvalidInput, loanAmount)
	}
	return amortize(loanAmount, monthlyRate, monthly, n), nil
}

// payment is M = P*i*(1+i)^n / ((1+i)^n - 1), or P/n when i == 0.
// (1+i)^n - 1 is taken with Expm1/Log1p; rates too small to change 1+i still
// yield a finite payment.
func payment(loanAmount, monthlyRate float64, numPayments int) float64 {
	n := float64(numPayments)
	if monthlyRate == 0 {
		return loanAmount / n
	}
	growthLessOne := math.Expm1(n * math.Log1p(monthlyRate))
	if growthLessOne == 0 {
		return loanAmount / n
	}
	return loanAmount * (monthlyRate / growthLessOne) * (growthLessOne + 1)
}

func amortize(loanAmount, monthlyRate, monthlyPayment float64, months int) []model.AmortizationRow {
	rows := make([]model.AmortizationRow, 0, months)
	balance := loanAmount
	for m := 1; m <= months; m++ {
		interest := balance * monthlyRate
		principal := monthlyPayment - interest
		balance -= principal
		rows = append(rows, model.AmortizationRow{
			Month:     m,
			Payment:   monthlyPayment,
			Principal: principal,
			Interest:  interest,
			Balance:   balance,
		})
	}
	return rows
}

func validate(propertyPrice, depositPercent float64, termYears int, annualRatePercent float64, fees model.Fees) error {
	switch {
	case !finite(propertyPrice) || propertyPrice <= 0:
		return fmt.Errorf("%w: property price must be > 0, got %v", ErrInvalidInput, propertyPrice)
	case !finite(depositPercent) || depositPercent < 0 || depositPercent > 100:
		return fmt.Errorf("%w: deposit percent must be in [0, 100], got %v", ErrInvalidInput, depositPercent)
	case termYears <= 0:
		return fmt.Errorf("%w: term must be > 0 years, got %d", ErrInvalidInput, termYears)
	case !finite(annualRatePercent) || annualRatePercent < 0:
		return fmt.Errorf("%w: annual rate must be >= 0, got %v", ErrInvalidInput, annualRatePercent)
	case !finite(fees.Arrangement) || fees.Arrangement < 0,
		!finite(fees.Valuation) || fees.Valuation < 0,
		!finite(fees.Legal) || fees.Legal < 0:
		return fmt.Errorf("%w: fees must be >= 0", ErrInvalidInput)
	}
	return nil
}

// ValidateRequest rejects a requested deposit or term that no lender bound can
// turn into a real loan. In-range values are clamped later, not rejected.
func ValidateRequest(req model.QuoteRequest) error {
	switch {
	case !finite(req.PropertyPrice) || req.PropertyPrice <= 0:
		return fmt.Errorf("%w: property price must be > 0, got %v", ErrInvalidInput, req.PropertyPrice)
	case !finite(req.DepositPercent) || req.DepositPercent < 0 || req.DepositPercent > 100:
		return fmt.Errorf("%w: deposit percent must be in [0, 100], got %v", ErrInvalidInput, req.DepositPercent)
	case req.TermYears <= 0:
		return fmt.Errorf("%w: term must be > 0 years, got %d", ErrInvalidInput, req.TermYears)
	}
	return nil
}

func finiteResult(r model.QuoteResult) bool {
	for _, x := range []float64{r.Deposit, r.LoanAmount, r.MonthlyPayment, r.TotalPayment, r.TotalInterest, r.TotalFees, r.TotalCost} {
		if !finite(x) {
			return false
		}
	}
	for _, row := range r.Schedule {
		if !finite(row.Principal) || !finite(row.Interest) || !finite(row.Balance) {
			return false
		}
	}
	return true
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
