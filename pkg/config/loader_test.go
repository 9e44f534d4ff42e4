package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/electron-kit/pkg/config"
	"github.com/arthur-debert/electron-kit/pkg/errors"
	"github.com/arthur-debert/electron-kit/pkg/types"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.Load(config.LoadOptions{WorkDir: dir, Environ: []string{}})
	require.NoError(t, err)

	assert.Equal(t, types.DefaultOutput, cfg.Output)
	assert.Equal(t, types.DefaultInput, cfg.Input)
	assert.Equal(t, types.DefaultRuntime, cfg.Runtime)
	assert.True(t, cfg.Archive)
	assert.Empty(t, cfg.ProductName)
	assert.Empty(t, cfg.Platform)
	assert.Empty(t, cfg.Tools.RCEdit)
	assert.Equal(t, dir, cfg.WorkDir)
	assert.Empty(t, cfg.Source)
}

func TestLoadTOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "electron-kit.toml", `
product_name = "Demo"
company = "Acme"
asar = false
permission = "requireAdministrator"

[tools]
rcedit = "/opt/rcedit.exe"
`)

	cfg, err := config.Load(config.LoadOptions{WorkDir: dir, Environ: []string{}})
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, "Demo", cfg.ProductName)
	assert.Equal(t, "Acme", cfg.Company)
	assert.False(t, cfg.Archive)
	assert.Equal(t, types.PermissionRequireAdministrator, cfg.Permission)
	assert.Equal(t, "/opt/rcedit.exe", cfg.Tools.RCEdit)
	// untouched keys keep their defaults
	assert.Equal(t, types.DefaultOutput, cfg.Output)
}

func TestLoadYAMLFileWithAliases(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "electron-kit.yaml", `
product_name: Demo
archive: false
platform: mac
tools:
  hdiutil: /usr/bin/hdiutil
`)

	cfg, err := config.Load(config.LoadOptions{WorkDir: dir, Environ: []string{}})
	require.NoError(t, err)

	assert.False(t, cfg.Archive)
	assert.Equal(t, types.PlatformDarwin, cfg.Platform)
	assert.Equal(t, "/usr/bin/hdiutil", cfg.Tools.Hdiutil)
}

func TestLoadFileSearchOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".electron-kit.toml", `product_name = "Hidden"`)
	writeFile(t, dir, "electron-kit.toml", `product_name = "Visible"`)

	cfg, err := config.Load(config.LoadOptions{WorkDir: dir, Environ: []string{}})
	require.NoError(t, err)
	assert.Equal(t, "Visible", cfg.ProductName)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "electron-kit.toml", `
product_name = "File"
company = "File Co"
version = "1.0.0"
`)
	environ := []string{
		"EKIT_PRODUCT_NAME=Env",
		"EKIT_COMPANY=Env Co",
		"EKIT_ASAR=false",
		"EKIT_TOOLS_MAKENSIS=/opt/nsis/makensis",
		"HOME=/home/someone",
	}

	cfg, err := config.Load(config.LoadOptions{
		WorkDir: dir,
		Environ: environ,
		Overrides: map[string]interface{}{
			"product_name": "Flag",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Flag", cfg.ProductName)
	assert.Equal(t, "Env Co", cfg.Company)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.False(t, cfg.Archive)
	assert.Equal(t, "/opt/nsis/makensis", cfg.Tools.Makensis)
}

func TestLoadReadsProcessEnvironment(t *testing.T) {
	t.Setenv("EKIT_DESCRIPTION", "From the environment")

	cfg, err := config.Load(config.LoadOptions{WorkDir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, "From the environment", cfg.Description)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "electron-kit.toml", `product_name = "Searched"`)
	explicit := writeFile(t, t.TempDir(), "release.yml", `product_name: Explicit`)

	cfg, err := config.Load(config.LoadOptions{WorkDir: dir, File: explicit, Environ: []string{}})
	require.NoError(t, err)
	assert.Equal(t, "Explicit", cfg.ProductName)
	assert.Equal(t, explicit, cfg.Source)
}

func TestLoadExplicitWorkDirWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "electron-kit.toml", `work_dir = "/from/file"`)

	cfg, err := config.Load(config.LoadOptions{WorkDir: dir, Environ: []string{}})
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.WorkDir)

	cfg, err = config.Load(config.LoadOptions{WorkDir: dir, Environ: []string{"EKIT_WORK_DIR=/from/env"}})
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.WorkDir)
}

func TestLoadWorkDirRelativeToConfigFile(t *testing.T) {
	configDir := t.TempDir()
	explicit := writeFile(t, configDir, "release.toml", `work_dir = "project"`)

	cfg, err := config.Load(config.LoadOptions{File: explicit, Environ: []string{}})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(configDir, "project"), cfg.WorkDir)

	cfg, err = config.Load(config.LoadOptions{File: explicit, Environ: []string{"EKIT_WORK_DIR=elsewhere"}})
	require.NoError(t, err)
	assert.Equal(t, "elsewhere", cfg.WorkDir)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		opts    config.LoadOptions
		code    errors.ErrorCode
	}{
		{
			name: "missing explicit file",
			opts: config.LoadOptions{File: "/does/not/exist.toml"},
			code: errors.ErrConfigLoad,
		},
		{
			name:    "malformed toml",
			content: `product_name = `,
			code:    errors.ErrConfigParse,
		},
		{
			name:    "unknown platform",
			content: `platform = "amiga"`,
			code:    errors.ErrConfigParse,
		},
		{
			name:    "unknown permission",
			content: `permission = "root"`,
			code:    errors.ErrConfigParse,
		},
		{
			name:    "output equals input",
			content: "output = \"app\"\ninput = \"app\"",
			code:    errors.ErrConfigValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.content != "" {
				writeFile(t, dir, "electron-kit.toml", tt.content)
			}
			opts := tt.opts
			opts.WorkDir = dir
			opts.Environ = []string{}

			_, err := config.Load(opts)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}
