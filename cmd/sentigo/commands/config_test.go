package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
test: data/test.json
provider: anthropic
input_field: text
few_shot: 3
rps: 2.5
anthropic:
  model: claude-3-5-haiku-latest
  timeout_seconds: 45
  max_tokens: 256
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "data/test.json", cfg.Test)
	require.Equal(t, "anthropic", cfg.Provider)
	require.Equal(t, "text", cfg.InputField)
	require.Equal(t, 3, cfg.FewShot)
	require.InDelta(t, 2.5, cfg.RPS, 1e-9)
	require.Equal(t, "claude-3-5-haiku-latest", cfg.Anthropic.Model)
	require.Equal(t, 45, cfg.Anthropic.TimeoutSeconds)
	require.Equal(t, 256, cfg.Anthropic.MaxTokens)
}

func TestLoadConfigMissingFileIsZero(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, Config{}, cfg)
}

func TestBuildReporterRejectsUnknownFormat(t *testing.T) {
	_, err := buildReporter("yaml", os.Stdout, 0)
	require.Error(t, err)
}

func TestResolveHelpersPreferFlags(t *testing.T) {
	require.Equal(t, "flag", resolveString("flag", "config"))
	require.Equal(t, "config", resolveString("", "config"))
	require.Equal(t, 5, resolveInt(5, 9))
	require.Equal(t, 9, resolveInt(0, 9))
	require.InDelta(t, 1.5, resolveFloat(1.5, 3.0), 1e-9)
	require.InDelta(t, 3.0, resolveFloat(0, 3.0), 1e-9)
}
