package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-compare/internal/config"
	"mortgage-compare/internal/model"
	"mortgage-compare/internal/mortgage"
)

func resetFlags(t *testing.T, cmd *cobra.Command) {
	t.Helper()
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	})
}

func parseQuoteFlags(t *testing.T, args ...string) {
	t.Helper()
	resetFlags(t, quoteCmd)
	require.NoError(t, quoteCmd.ParseFlags(args))
}

func TestBuildRequest_UnsetFlagsUseDefaults(t *testing.T) {
	parseQuoteFlags(t, "--price", "300000", "--lender", "bov")

	req, err := buildRequest(quoteCmd, config.DefaultQuoteDefaults())
	require.NoError(t, err)
	assert.Equal(t, model.QuoteRequest{PropertyPrice: 300000, DepositPercent: 20, TermYears: 25, RateType: model.RateVariable}, req)
}

func TestBuildRequest_ExplicitZeroDeposit(t *testing.T) {
	parseQuoteFlags(t, "--price", "300000", "--lender", "bov", "--deposit", "0", "--term", "30", "--rate-type", "fixed")

	req, err := buildRequest(quoteCmd, config.DefaultQuoteDefaults())
	require.NoError(t, err)
	assert.Equal(t, 0.0, req.DepositPercent)
	assert.Equal(t, 30, req.TermYears)
	assert.Equal(t, model.RateFixed, req.RateType)
}

func TestBuildRequest_RejectsOutOfRangeFlags(t *testing.T) {
	cases := map[string][]string{
		"negative deposit": {"--deposit", "-5"},
		"deposit over 100": {"--deposit", "120"},
		"zero term":        {"--term", "0"},
		"negative term":    {"--term", "-2"},
	}
	for name, extra := range cases {
		t.Run(name, func(t *testing.T) {
			parseQuoteFlags(t, append([]string{"--price", "300000", "--lender", "bov"}, extra...)...)
			_, err := buildRequest(quoteCmd, config.DefaultQuoteDefaults())
			assert.ErrorIs(t, err, mortgage.ErrInvalidInput)
		})
	}
}

func TestQuoteCommand_NegativeDepositFails(t *testing.T) {
	resetFlags(t, quoteCmd)
	rootCmd.SetArgs([]string{"quote", "--lenders", "../../examples/lenders/malta.yaml", "--price", "300000", "--lender", "bov", "--deposit", "-5"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	assert.ErrorIs(t, err, mortgage.ErrInvalidInput)
}
