package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"mortgage-compare/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load the lender table from a separate YAML (e.g. examples/lenders/malta.yaml).
	// Inline Lenders are merged onto it by id; unknown ids are appended.
	LendersFile string         `yaml:"lenders_file"`
	Lenders     []model.Lender `yaml:"lenders"`
	Defaults    QuoteDefaults  `yaml:"defaults"`
}

// QuoteDefaults fill in whatever the caller leaves out of a quote request.
type QuoteDefaults struct {
	DepositPercent float64        `yaml:"deposit_percent"`
	TermYears      int            `yaml:"term_years"`
	RateType       model.RateType `yaml:"rate_type"`
}

// DefaultQuoteDefaults match the listing page's initial slider positions.
func DefaultQuoteDefaults() QuoteDefaults {
	return QuoteDefaults{
		DepositPercent: 20,
		TermYears:      25,
		RateType:       model.RateVariable,
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.LendersFile != "" {
		lendersPath := c.LendersFile
		if !filepath.IsAbs(lendersPath) {
			// Relative to the config file first, then relative to cwd.
			cand := filepath.Join(filepath.Dir(path), lendersPath)
			if _, err := os.Stat(cand); err == nil {
				lendersPath = cand
			}
		}
		loaded, err := LoadLendersFile(lendersPath)
		if err != nil {
			return nil, err
		}
		c.Lenders = MergeLenders(loaded, c.Lenders)
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	def := DefaultQuoteDefaults()
	if c.Defaults.DepositPercent == 0 {
		c.Defaults.DepositPercent = def.DepositPercent
	}
	if c.Defaults.TermYears == 0 {
		c.Defaults.TermYears = def.TermYears
	}
	if c.Defaults.RateType == "" {
		c.Defaults.RateType = def.RateType
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := model.ValidateLenders(c.Lenders); err != nil {
		return fmt.Errorf("lenders invalid: %w", err)
	}
	return c.Defaults.Validate()
}

func (d QuoteDefaults) Validate() error {
	if d.DepositPercent < 0 || d.DepositPercent > 100 {
		return errors.New("defaults.deposit_percent must be in [0, 100]")
	}
	if d.TermYears <= 0 {
		return errors.New("defaults.term_years must be > 0")
	}
	if _, err := model.ParseRateType(string(d.RateType), ""); err != nil || d.RateType == "" {
		return fmt.Errorf("defaults.rate_type must be %q or %q", model.RateVariable, model.RateFixed)
	}
	return nil
}

type lendersFileWrapper struct {
	Lenders []model.Lender `yaml:"lenders"`
}

// LoadLendersFile reads a lender table YAML of the form `lenders: [...]`.
func LoadLendersFile(path string) ([]model.Lender, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var w lendersFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return w.Lenders, nil
}

// LoadLenders reads and validates a standalone lender table.
func LoadLenders(path string) ([]model.Lender, error) {
	lenders, err := LoadLendersFile(path)
	if err != nil {
		return nil, err
	}
	if err := model.ValidateLenders(lenders); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lenders, nil
}

// MergeLenders overlays overrides onto base by id, keeping base order.
// Overrides with an id not present in base are appended.
func MergeLenders(base, overrides []model.Lender) []model.Lender {
	out := make([]model.Lender, len(base))
	copy(out, base)
	index := make(map[string]int, len(out))
	for i, l := range out {
		index[l.ID] = i
	}
	for _, o := range overrides {
		if i, ok := index[o.ID]; ok {
			out[i] = MergeLender(out[i], o)
			continue
		}
		index[o.ID] = len(out)
		out = append(out, o)
	}
	return out
}

// MergeLender overlays non-zero fields from override onto base.
func MergeLender(base, override model.Lender) model.Lender {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.ShortName != "" {
		out.ShortName = override.ShortName
	}
	if override.MinDepositPercent != 0 {
		out.MinDepositPercent = override.MinDepositPercent
	}
	if override.MaxTermYears != 0 {
		out.MaxTermYears = override.MaxTermYears
	}
	// Note: a zero rate or fee cannot be expressed as an override; set it in the lenders file.
	if override.Rates.Variable != 0 {
		out.Rates.Variable = override.Rates.Variable
	}
	if override.Rates.Fixed != 0 {
		out.Rates.Fixed = override.Rates.Fixed
	}
	if override.Fees.Arrangement != 0 {
		out.Fees.Arrangement = override.Fees.Arrangement
	}
	if override.Fees.Valuation != 0 {
		out.Fees.Valuation = override.Fees.Valuation
	}
	if override.Fees.Legal != 0 {
		out.Fees.Legal = override.Fees.Legal
	}
	if len(override.Features) > 0 {
		out.Features = override.Features
	}
	return out
}
