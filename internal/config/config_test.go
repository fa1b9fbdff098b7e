/*
File    : pixelscript/internal/config/config_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}

func TestLoadOverridesOnlySetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9000\"\nstep_budget: 50000\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.Addr)
	require.Equal(t, 50000, cfg.StepBudget)
	require.Equal(t, Defaults().StaticDir, cfg.StaticDir)
	require.Equal(t, Defaults().MaxUploadBytes, cfg.MaxUploadBytes)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: [unterminated\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
