package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"mortgage-compare/internal/model"

	_ "modernc.org/sqlite"
)

// LenderStore keeps the lender table in SQLite. The API reads it once at startup;
// ReplaceLenders is for the admin CLI.
type LenderStore struct {
	db     *sql.DB
	logger *zap.Logger
}

func OpenLenderStore(dbPath string, logger *zap.Logger) (*LenderStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &LenderStore{db: db, logger: logger}, nil
}

func (s *LenderStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Lenders returns the lender table in display order.
func (s *LenderStore) Lenders(ctx context.Context) ([]model.Lender, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, short_name, min_deposit_percent, max_term_years,
		       rate_variable, rate_fixed, fee_arrangement, fee_valuation, fee_legal
		FROM lenders
		ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("query lenders: %w", err)
	}
	defer rows.Close()

	var lenders []model.Lender
	index := map[string]int{}
	for rows.Next() {
		var l model.Lender
		if err := rows.Scan(
			&l.ID, &l.Name, &l.ShortName, &l.MinDepositPercent, &l.MaxTermYears,
			&l.Rates.Variable, &l.Rates.Fixed,
			&l.Fees.Arrangement, &l.Fees.Valuation, &l.Fees.Legal,
		); err != nil {
			return nil, fmt.Errorf("scan lender: %w", err)
		}
		index[l.ID] = len(lenders)
		lenders = append(lenders, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lenders: %w", err)
	}

	frows, err := s.db.QueryContext(ctx, `SELECT lender_id, feature FROM lender_features ORDER BY lender_id, position`)
	if err != nil {
		return nil, fmt.Errorf("query lender features: %w", err)
	}
	defer frows.Close()
	for frows.Next() {
		var id, feature string
		if err := frows.Scan(&id, &feature); err != nil {
			return nil, fmt.Errorf("scan lender feature: %w", err)
		}
		if i, ok := index[id]; ok {
			lenders[i].Features = append(lenders[i].Features, feature)
		}
	}
	if err := frows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lender features: %w", err)
	}

	s.logger.Debug("Loaded lenders from SQLite", zap.Int("count", len(lenders)))
	return lenders, nil
}

// ReplaceLenders swaps the whole lender table in one transaction.
func (s *LenderStore) ReplaceLenders(ctx context.Context, lenders []model.Lender) error {
	if err := model.ValidateLenders(lenders); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM lender_features`); err != nil {
		return fmt.Errorf("clear lender features: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM lenders`); err != nil {
		return fmt.Errorf("clear lenders: %w", err)
	}

	for pos, l := range lenders {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO lenders (id, position, name, short_name, min_deposit_percent, max_term_years,
			                     rate_variable, rate_fixed, fee_arrangement, fee_valuation, fee_legal)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			l.ID, pos+1, l.Name, l.ShortName, l.MinDepositPercent, l.MaxTermYears,
			l.Rates.Variable, l.Rates.Fixed, l.Fees.Arrangement, l.Fees.Valuation, l.Fees.Legal,
		); err != nil {
			return fmt.Errorf("insert lender %s: %w", l.ID, err)
		}
		for fpos, f := range l.Features {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO lender_features (lender_id, position, feature) VALUES (?, ?, ?)`,
				l.ID, fpos+1, f,
			); err != nil {
				return fmt.Errorf("insert feature for lender %s: %w", l.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit lenders: %w", err)
	}
	s.logger.Info("Replaced lender table", zap.Int("count", len(lenders)))
	return nil
}
