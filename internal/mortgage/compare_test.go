package mortgage

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-compare/internal/model"
)

func maltaLenders() []model.Lender {
	return []model.Lender{
		{
			ID: "bov", Name: "Bank of Valletta", MinDepositPercent: 10, MaxTermYears: 40,
			Rates: model.Rates{Variable: 4.75, Fixed: 5.25},
			Fees:  model.Fees{Arrangement: 500, Valuation: 150, Legal: 800},
		},
		{
			ID: "aps", Name: "APS Bank", MinDepositPercent: 10, MaxTermYears: 35,
			Rates: model.Rates{Variable: 4.65, Fixed: 5.15},
			Fees:  model.Fees{Arrangement: 450, Valuation: 150, Legal: 750},
		},
		{
			ID: "hsbc", Name: "HSBC Malta", MinDepositPercent: 15, MaxTermYears: 35,
			Rates: model.Rates{Variable: 4.90, Fixed: 5.40},
			Fees:  model.Fees{Arrangement: 600, Valuation: 200, Legal: 900},
		},
	}
}

func TestEffectiveTerms_Clamping(t *testing.T) {
	hsbc := maltaLenders()[2]

	got, err := EffectiveTerms(model.QuoteRequest{PropertyPrice: 1, DepositPercent: 5, TermYears: 50, RateType: model.RateFixed}, hsbc)
	require.NoError(t, err)
	want := Terms{DepositPercent: 15, TermYears: 35, RateType: model.RateFixed, AnnualRatePercent: 5.40}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("EffectiveTerms mismatch (-want +got):\n%s", diff)
	}

	got, err = EffectiveTerms(model.QuoteRequest{DepositPercent: 140, TermYears: 0, RateType: model.RateVariable}, hsbc)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got.DepositPercent)
	assert.Equal(t, 1, got.TermYears)
}

func TestQuote_UsesClampedDeposit(t *testing.T) {
	bov := maltaLenders()[0]
	req := model.QuoteRequest{PropertyPrice: 300000, DepositPercent: 5, TermYears: 25, RateType: model.RateVariable}

	q, err := Quote(req, bov)
	require.NoError(t, err)
	assert.Equal(t, 10.0, q.Terms.DepositPercent)
	assert.InDelta(t, 30000, q.Result.Deposit, eps)

	direct, err := Calculate(300000, 10, 25, 4.75, bov.Fees)
	require.NoError(t, err)
	assert.Equal(t, direct, q.Result)
}

func TestQuote_UnknownRateType(t *testing.T) {
	_, err := Quote(model.QuoteRequest{PropertyPrice: 1000, TermYears: 1, RateType: "tracker"}, maltaLenders()[0])
	assert.ErrorIs(t, err, model.ErrUnknownRateType)
}

func TestCompare_BestDealIsCheapest(t *testing.T) {
	for _, rt := range []model.RateType{model.RateVariable, model.RateFixed} {
		cmpRes, err := Compare(model.QuoteRequest{
			PropertyPrice: 300000, DepositPercent: 20, TermYears: 25, RateType: rt,
		}, maltaLenders())
		require.NoError(t, err)
		require.Len(t, cmpRes.Results, 3)

		for _, r := range cmpRes.Results {
			assert.LessOrEqual(t, cmpRes.BestDeal.Result.TotalCost, r.Result.TotalCost)
		}
		assert.Equal(t, "aps", cmpRes.BestDeal.Lender.ID)
		assert.Equal(t, []string{"bov", "aps", "hsbc"}, lenderIDs(cmpRes.Results))
	}
}

func TestCompare_TieKeepsFirst(t *testing.T) {
	a := maltaLenders()[0]
	b := a
	b.ID = "twin"

	cmpRes, err := Compare(model.QuoteRequest{PropertyPrice: 200000, DepositPercent: 20, TermYears: 20, RateType: model.RateVariable}, []model.Lender{a, b})
	require.NoError(t, err)
	assert.Equal(t, "bov", cmpRes.BestDeal.Lender.ID)
}

func TestCompare_PerLenderClamping(t *testing.T) {
	cmpRes, err := Compare(model.QuoteRequest{PropertyPrice: 300000, DepositPercent: 5, TermYears: 40, RateType: model.RateVariable}, maltaLenders())
	require.NoError(t, err)

	byID := map[string]LenderQuote{}
	for _, r := range cmpRes.Results {
		byID[r.Lender.ID] = r
	}
	assert.Equal(t, Terms{DepositPercent: 10, TermYears: 40, RateType: model.RateVariable, AnnualRatePercent: 4.75}, byID["bov"].Terms)
	assert.Equal(t, Terms{DepositPercent: 10, TermYears: 35, RateType: model.RateVariable, AnnualRatePercent: 4.65}, byID["aps"].Terms)
	assert.Equal(t, Terms{DepositPercent: 15, TermYears: 35, RateType: model.RateVariable, AnnualRatePercent: 4.90}, byID["hsbc"].Terms)
}

func TestCompare_Errors(t *testing.T) {
	_, err := Compare(model.QuoteRequest{PropertyPrice: 1000, TermYears: 1, RateType: model.RateFixed}, nil)
	assert.ErrorIs(t, err, ErrNoLenders)

	_, err = Compare(model.QuoteRequest{PropertyPrice: 0, TermYears: 25, RateType: model.RateFixed}, maltaLenders())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFindLender(t *testing.T) {
	l, err := FindLender(maltaLenders(), "hsbc")
	require.NoError(t, err)
	assert.Equal(t, "HSBC Malta", l.Name)

	_, err = FindLender(maltaLenders(), "nope")
	assert.ErrorIs(t, err, ErrUnknownLender)
}

func TestWriteScheduleCSV(t *testing.T) {
	rows := []model.AmortizationRow{
		{Month: 1, Payment: 1368.2817, Principal: 418.2817, Interest: 950, Balance: 239581.7183},
		{Month: 2, Payment: 1368.2817, Principal: 419.94, Interest: 948.34, Balance: 239161.78},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteScheduleCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	want := [][]string{
		{"month", "payment", "principal", "interest", "balance"},
		{"1", "1368.28", "418.28", "950.00", "239581.72"},
		{"2", "1368.28", "419.94", "948.34", "239161.78"},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("csv mismatch (-want +got):\n%s", diff)
	}
}

func lenderIDs(qs []LenderQuote) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.Lender.ID
	}
	return out
}
