package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PositionalManifestsPath(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"manifests"}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "manifests", cfg.ManifestsPath)
	assert.Equal(t, 4000, cfg.ListenPort)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Dev)
}

func TestParse_Flags(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{
		"--manifests", "manifests",
		"--port", "9090",
		"--catalog-url", "https://catalog.internal",
		"--log-format", "text",
		"--log-level", "debug",
		"--dev",
	}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "manifests", cfg.ManifestsPath)
	assert.Equal(t, 9090, cfg.ListenPort)
	assert.Equal(t, "https://catalog.internal", cfg.CatalogURL)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Dev)
}

func TestParse_ShorthandManifestsFlag(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"-m", "manifests"}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "manifests", cfg.ManifestsPath)
}

func TestParse_NoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse(nil, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_HelpFlag(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
}

func TestParse_UnknownFlag(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, _, err := Parse([]string{"--bogus"}, out)
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestParse_InvalidLogFormat(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, _, err := Parse([]string{"--log-format", "xml", "manifests"}, out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log-format")
}

func TestParse_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, _, err := Parse([]string{"--log-level", "loud", "manifests"}, out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log-level")
}

func TestParse_ConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "crmdeck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
manifests_path: manifests
listen_port: 9000
log_level: warn
dev: true
`), 0o600))

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"--config", path}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "manifests", cfg.ManifestsPath)
	assert.Equal(t, 9000, cfg.ListenPort)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.Dev)
}

func TestParse_FlagsOverrideConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "crmdeck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
manifests_path: from-file
listen_port: 9000
`), 0o600))

	out := &bytes.Buffer{}
	cfg, _, err := Parse([]string{"--config", path, "--port", "8080", "--manifests", "from-flag"}, out)
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.ManifestsPath)
	assert.Equal(t, 8080, cfg.ListenPort)
}

func TestParse_MissingConfigFile(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, _, err := Parse([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml"), "manifests"}, out)
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}
