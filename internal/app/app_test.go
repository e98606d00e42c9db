package app

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/crmdeck/internal/hcl"
)

func TestNewApp_PanicsOnBrokenManifest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.hcl"), []byte(`component "x" {`), 0o600))

	cfg, err := NewConfig(Config{ManifestsPath: dir, LogLevel: "error"})
	require.NoError(t, err)

	require.Panics(t, func() {
		NewApp(io.Discard, cfg, hcl.NewLoader())
	})
}

func TestNewApp_PanicsOnManifestParityViolation(t *testing.T) {
	t.Parallel()

	// The manifest disagrees with the compiled-in org_table columns.
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "org_table.hcl"), []byte(`
component "org_table" {
  kind = "table"

  column "name" {
    type = number
  }
}
`), 0o600))

	cfg, err := NewConfig(Config{ManifestsPath: dir, LogLevel: "error"})
	require.NoError(t, err)

	require.Panics(t, func() {
		NewApp(io.Discard, cfg, hcl.NewLoader())
	})
}

func TestNewApp_RegistersCoreComponents(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, nil, nil)
	for _, name := range []string{"org_table", "contacts_table", "contact_card", "activity_feed"} {
		_, err := a.Registry().Get(name)
		require.NoError(t, err, "core component %q should be registered", name)
	}
}
