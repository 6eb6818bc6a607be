package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"mortgage-compare/internal/config"
	"mortgage-compare/internal/model"
)

// LoadLenderTable reads the lender table from the configured source, validates it,
// and returns it together with the quote defaults.
func LoadLenderTable(ctx context.Context, cfg *config.ServerConfig, logger *zap.Logger) ([]model.Lender, config.QuoteDefaults, error) {
	defaults := config.DefaultQuoteDefaults()

	switch cfg.LenderSource {
	case config.LenderSourceSQLite:
		store, err := OpenLenderStore(cfg.SQLiteDBPath, logger)
		if err != nil {
			return nil, defaults, err
		}
		defer store.Close()
		lenders, err := store.Lenders(ctx)
		if err != nil {
			return nil, defaults, err
		}
		if err := model.ValidateLenders(lenders); err != nil {
			return nil, defaults, fmt.Errorf("lenders in %s: %w", cfg.SQLiteDBPath, err)
		}
		logger.Info("Lender table loaded", zap.String("source", "sqlite"), zap.String("path", cfg.SQLiteDBPath), zap.Int("count", len(lenders)))
		return lenders, defaults, nil

	case config.LenderSourceFile:
		if cfg.ConfigFile != "" {
			c, err := config.Load(cfg.ConfigFile)
			if err != nil {
				return nil, defaults, err
			}
			logger.Info("Lender table loaded", zap.String("source", "config"), zap.String("path", cfg.ConfigFile), zap.Int("count", len(c.Lenders)))
			return c.Lenders, c.Defaults, nil
		}
		lenders, err := config.LoadLenders(cfg.LendersFile)
		if err != nil {
			return nil, defaults, err
		}
		logger.Info("Lender table loaded", zap.String("source", "file"), zap.String("path", cfg.LendersFile), zap.Int("count", len(lenders)))
		return lenders, defaults, nil

	default:
		return nil, defaults, fmt.Errorf("unsupported lender source: %q", cfg.LenderSource)
	}
}
