package config_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manyboliot2022/eynpro/pkg/config"
)

func TestLoad_ValeursParDefaut(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr())
	assert.Equal(t, "eynpro.db", cfg.Store.Path)
	assert.Len(t, cfg.Costing.MarkupTiers, 5)
	assert.True(t, cfg.Costing.CatalogMarkup.Equal(decimal.NewFromFloat(0.3)))
}

func TestLoad_SurchargesEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATA_PATH", "/tmp/boutique.db")
	t.Setenv("COSTING_MARKUP_TIERS", "0,0.25")
	t.Setenv("COSTING_DEFAULT_MARKUP", "0.25")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "/tmp/boutique.db", cfg.Store.Path)
	require.Len(t, cfg.Costing.MarkupTiers, 2)
	assert.True(t, cfg.Costing.MarkupTiers[1].Equal(decimal.NewFromFloat(0.25)))
	assert.True(t, cfg.Costing.CatalogMarkup.Equal(decimal.NewFromFloat(0.25)))
}

// Un port illisible doit faire échouer le chargement, pas retomber sur 0.
func TestLoad_PortInvalide(t *testing.T) {
	t.Setenv("HTTP_PORT", "quatre-vingts")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_PORT")
}

func TestLoad_PalierInvalide(t *testing.T) {
	t.Setenv("COSTING_MARKUP_TIERS", "0,abc,0.5")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COSTING_MARKUP_TIERS")
}
