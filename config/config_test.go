package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, DefaultPromptsDir, cfg.PromptsDir)
	assert.Equal(t, DefaultEnvFile, cfg.EnvFile)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "promptrun.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: claude-sonnet-4\noutput_dir: results\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "claude-sonnet-4", cfg.Model)
	assert.Equal(t, "results", cfg.OutputDir)
	assert.Equal(t, DefaultPromptsDir, cfg.PromptsDir)
	assert.Equal(t, DefaultEnvFile, cfg.EnvFile)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "promptrun.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: [unclosed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
