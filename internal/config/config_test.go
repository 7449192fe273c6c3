package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abc-elearning/aso-audit/pkg/aso"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "./asoaudit.db", cfg.Database.Path)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "default", cfg.Scoring.Platform)
	assert.Nil(t, cfg.Scoring.Weights)
}

func TestLoadMissingPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Database.Path, cfg.Database.Path)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  path: /tmp/test.db
server:
  port: 9090
scoring:
  platform: apple
  weights:
    metadata_quality: 30
    ratings_reviews: 20
    keyword_performance: 20
    conversion_metrics: 10
    technical_performance: 10
    visual_optimization: 10
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "apple", cfg.Scoring.Platform)
	require.NotNil(t, cfg.Scoring.Weights)
	assert.Equal(t, 30, cfg.Scoring.Weights.MetadataQuality)
	assert.Equal(t, 100, cfg.Scoring.Weights.Sum())
}

func TestLoadRejectsBadWeightSum(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
scoring:
  weights:
    metadata_quality: 50
    ratings_reviews: 20
`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must sum to 100")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ASOAUDIT_DB_PATH", "/tmp/override.db")
	t.Setenv("ASOAUDIT_PORT", "7070")
	t.Setenv("ASOAUDIT_PLATFORM", "google")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override.db", cfg.Database.Path)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "google", cfg.Scoring.Platform)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.Scoring.Weights = &aso.WeightProfile{
		MetadataQuality: 20, RatingsReviews: 20, KeywordPerformance: 20,
		ConversionMetrics: 20, TechnicalPerformance: 15, VisualOptimization: 5,
	}
	assert.NoError(t, cfg.Validate())

	cfg.Scoring.Weights.VisualOptimization = 10
	assert.Error(t, cfg.Validate())
}
