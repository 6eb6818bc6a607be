package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mortgage-compare/internal/config"
	"mortgage-compare/internal/model"
)

func TestLoadLenderTable_Sources(t *testing.T) {
	ctx := context.Background()
	seed := filepath.Join("..", "..", "examples", "lenders", "malta.yaml")

	fromFile, def, err := LoadLenderTable(ctx, &config.ServerConfig{LenderSource: config.LenderSourceFile, LendersFile: seed}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, config.DefaultQuoteDefaults(), def)

	fromDB, _, err := LoadLenderTable(ctx, &config.ServerConfig{
		LenderSource: config.LenderSourceSQLite,
		SQLiteDBPath: filepath.Join(t.TempDir(), "lenders.db"),
	}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, fromFile, fromDB)

	fromConfig, def, err := LoadLenderTable(ctx, &config.ServerConfig{
		LenderSource: config.LenderSourceFile,
		ConfigFile:   filepath.Join("..", "..", "examples", "config.yaml"),
	}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, fromFile, fromConfig)
	assert.Equal(t, model.RateVariable, def.RateType)

	_, _, err = LoadLenderTable(ctx, &config.ServerConfig{LenderSource: "redis"}, zap.NewNop())
	assert.Error(t, err)
}
