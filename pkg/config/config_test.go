package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "rule-engine/2.1.0", cfg.EngineVersion)
	assert.Equal(t, 4, cfg.Rules.Numeric.MinGroupingDigits)
	assert.Equal(t, 64, cfg.Merge.EvidencePrefixLen)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout())
	assert.Contains(t, cfg.Rules.Image.AllowedFormats, "webp")
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesSelectively(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proofgate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
rules:
  extra_slang: ["蚌埠住了"]
  numeric:
    min_grouping_digits: 5
ai:
  enabled: true
  timeout_seconds: 5
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Rules.Numeric.MinGroupingDigits)
	assert.Equal(t, []string{"蚌埠住了"}, cfg.Rules.ExtraSlang)
	assert.True(t, cfg.AI.Enabled)
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout())
	// Untouched fields keep their defaults.
	assert.Equal(t, "rule-engine/2.1.0", cfg.EngineVersion)
	assert.Equal(t, 64, cfg.Merge.EvidencePrefixLen)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestAIConfig_TimeoutFloor(t *testing.T) {
	assert.Equal(t, 30*time.Second, AIConfig{TimeoutSeconds: 0}.Timeout())
	assert.Equal(t, 30*time.Second, AIConfig{TimeoutSeconds: -1}.Timeout())
}
