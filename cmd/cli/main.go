package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mortgage-compare/internal/analysis"
	"mortgage-compare/internal/config"
	"mortgage-compare/internal/format"
	"mortgage-compare/internal/logging"
	"mortgage-compare/internal/model"
	"mortgage-compare/internal/mortgage"
	"mortgage-compare/internal/storage"
)

var (
	// Global flags
	verbose      bool
	lendersFile  string
	configFile   string
	lenderSource string
	dbPath       string

	// Quote flags
	price       float64
	deposit     float64
	term        int
	rateType    string
	lenderID    string
	scheduleOut string
	fullSched   bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mortgage",
	Short: "Mortgage quotes and lender comparison",
	Long: `Computes amortized mortgage quotes against a lender table and ranks
lenders by the total cost of the loan (repayments + fees + deposit).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "warn"
		if verbose {
			level = "debug"
		}
		var err error
		logger, err = logging.New(level, true)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var lendersCmd = &cobra.Command{
	Use:   "lenders",
	Short: "List the lender table",
	RunE:  listLenders,
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the SQLite lender table with the contents of --lenders",
	Example: `  mortgage lenders import --lenders examples/lenders/malta.yaml --db data/lenders.db`,
	RunE:  importLenders,
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Quote a mortgage with a single lender",
	Example: `  mortgage quote --price 300000 --lender bov
  mortgage quote --price 300000 --lender hsbc --deposit 25 --term 30 --rate-type fixed --schedule-out results/schedule.csv --full`,
	RunE: runQuote,
}

var compareCmd = &cobra.Command{
	Use:     "compare",
	Short:   "Compare all lenders for a property price",
	Example: `  mortgage compare --price 300000 --deposit 20 --term 25 --rate-type variable`,
	RunE:    runCompare,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
	pf.StringVar(&lendersFile, "lenders", "examples/lenders/malta.yaml", "Path to lender table YAML")
	pf.StringVar(&configFile, "config", "", "Path to full YAML config (overrides --lenders)")
	pf.StringVar(&lenderSource, "source", config.LenderSourceFile, "Lender source: file or sqlite")
	pf.StringVar(&dbPath, "db", "data/lenders.db", "SQLite database path (with --source sqlite)")

	for _, c := range []*cobra.Command{quoteCmd, compareCmd} {
		f := c.Flags()
		f.Float64Var(&price, "price", 0, "Property price in euro")
		f.Float64Var(&deposit, "deposit", 0, "Deposit percent (default from config)")
		f.IntVar(&term, "term", 0, "Term in years (default from config)")
		f.StringVar(&rateType, "rate-type", "", "variable or fixed (default from config)")
		_ = c.MarkFlagRequired("price")
	}
	quoteCmd.Flags().StringVar(&lenderID, "lender", "", "Lender id")
	quoteCmd.Flags().StringVar(&scheduleOut, "schedule-out", "", "Optional CSV path for the amortization schedule")
	quoteCmd.Flags().BoolVar(&fullSched, "full", false, "Write every month of the loan, not just the first year")
	_ = quoteCmd.MarkFlagRequired("lender")

	lendersCmd.AddCommand(importCmd)
	rootCmd.AddCommand(lendersCmd, quoteCmd, compareCmd)
}

func main() {
	config.LoadDotEnv()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadLenders(ctx context.Context) ([]model.Lender, config.QuoteDefaults, error) {
	return storage.LoadLenderTable(ctx, &config.ServerConfig{
		LenderSource: lenderSource,
		ConfigFile:   configFile,
		LendersFile:  lendersFile,
		SQLiteDBPath: dbPath,
	}, logger)
}

// buildRequest fills unset flags from the config defaults. Explicit values are
// passed through as given so out-of-range input is rejected, not replaced.
func buildRequest(cmd *cobra.Command, def config.QuoteDefaults) (model.QuoteRequest, error) {
	req := model.QuoteRequest{
		PropertyPrice:  price,
		DepositPercent: def.DepositPercent,
		TermYears:      def.TermYears,
	}
	if cmd.Flags().Changed("deposit") {
		req.DepositPercent = deposit
	}
	if cmd.Flags().Changed("term") {
		req.TermYears = term
	}
	rt, err := model.ParseRateType(rateType, def.RateType)
	if err != nil {
		return req, err
	}
	req.RateType = rt
	return req, mortgage.ValidateRequest(req)
}

func listLenders(cmd *cobra.Command, args []string) error {
	lenders, _, err := loadLenders(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Printf("%-6s %-20s %-8s %-6s %-9s %-9s %-8s\n", "id", "name", "min dep", "max", "variable", "fixed", "fees")
	for _, l := range lenders {
		fmt.Printf("%-6s %-20s %-8s %-6s %-9s %-9s %-8s\n",
			l.ID,
			l.DisplayName(),
			format.Percent(l.MinDepositPercent),
			fmt.Sprintf("%dy", l.MaxTermYears),
			format.Percent(l.Rates.Variable),
			format.Percent(l.Rates.Fixed),
			format.Currency(l.Fees.Total()),
		)
		if len(l.Features) > 0 {
			fmt.Printf("       %s\n", strings.Join(l.Features, " · "))
		}
	}
	return nil
}

func importLenders(cmd *cobra.Command, args []string) error {
	lenders, err := config.LoadLenders(lendersFile)
	if err != nil {
		return err
	}
	store, err := storage.OpenLenderStore(dbPath, logger)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.ReplaceLenders(cmd.Context(), lenders); err != nil {
		return err
	}
	fmt.Printf("Imported %d lenders into %s\n", len(lenders), dbPath)
	return nil
}

func runQuote(cmd *cobra.Command, args []string) error {
	lenders, def, err := loadLenders(cmd.Context())
	if err != nil {
		return err
	}
	lender, err := mortgage.FindLender(lenders, lenderID)
	if err != nil {
		return err
	}
	req, err := buildRequest(cmd, def)
	if err != nil {
		return err
	}
	q, err := mortgage.Quote(req, lender)
	if err != nil {
		return err
	}
	logger.Debug("Quote computed", zap.String("lender", lender.ID), zap.Float64("monthly_payment", q.Result.MonthlyPayment))

	r := q.Result
	fmt.Printf("%s: %s %s over %d years, %s deposit\n",
		lender.DisplayName(), format.Percent(q.Terms.AnnualRatePercent), q.Terms.RateType, q.Terms.TermYears, format.Percent(q.Terms.DepositPercent))
	fmt.Printf("  Property price   %s\n", format.Currency(req.PropertyPrice))
	fmt.Printf("  Deposit          %s\n", format.Currency(r.Deposit))
	fmt.Printf("  Loan amount      %s\n", format.Currency(r.LoanAmount))
	fmt.Printf("  Monthly payment  %s\n", format.Currency(r.MonthlyPayment))
	fmt.Printf("  Total interest   %s\n", format.Currency(r.TotalInterest))
	fmt.Printf("  Fees             %s\n", format.Currency(r.TotalFees))
	fmt.Printf("  Total cost       %s\n", format.Currency(r.TotalCost))
	fmt.Println()
	fmt.Printf("%-6s %-10s %-10s %-10s %-12s\n", "month", "payment", "principal", "interest", "balance")
	for _, row := range r.Schedule {
		fmt.Printf("%-6d %-10.2f %-10.2f %-10.2f %-12.2f\n", row.Month, row.Payment, row.Principal, row.Interest, row.Balance)
	}

	if scheduleOut == "" {
		return nil
	}
	rows := r.Schedule
	if fullSched {
		rows, err = mortgage.FullSchedule(r.LoanAmount, q.Terms.AnnualRatePercent, q.Terms.TermYears)
		if err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(scheduleOut), 0o755); err != nil {
		return err
	}
	if err := mortgage.WriteScheduleCSVFile(scheduleOut, rows); err != nil {
		return err
	}
	fmt.Printf("\nWrote %d rows to %s\n", len(rows), scheduleOut)
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	lenders, def, err := loadLenders(cmd.Context())
	if err != nil {
		return err
	}
	req, err := buildRequest(cmd, def)
	if err != nil {
		return err
	}
	c, err := mortgage.Compare(req, lenders)
	if err != nil {
		return err
	}
	ranked, summary := analysis.RankComparison(c)

	fmt.Printf("Property price %s, %s rate\n\n", format.Currency(req.PropertyPrice), req.RateType)
	fmt.Printf("%-4s %-20s %-8s %-6s %-8s %-10s %-12s %-10s\n", "rank", "lender", "deposit", "term", "rate", "monthly", "total cost", "extra")
	for _, r := range ranked {
		marker := ""
		if r.Rank == 1 {
			marker = "  ← best deal"
		}
		fmt.Printf("%-4d %-20s %-8s %-6s %-8s %-10s %-12s %-10s%s\n",
			r.Rank,
			r.Lender.DisplayName(),
			format.Percent(r.Terms.DepositPercent),
			fmt.Sprintf("%dy", r.Terms.TermYears),
			format.Percent(r.Terms.AnnualRatePercent),
			format.Currency(r.Result.MonthlyPayment),
			format.Currency(r.Result.TotalCost),
			format.Currency(r.ExtraCost),
			marker,
		)
	}
	if summary.Count > 1 {
		fmt.Printf("\nChoosing %s over %s saves %s over the life of the loan.\n",
			summary.BestLenderID, summary.WorstLenderID, format.Currency(summary.Spread))
	}
	return nil
}
