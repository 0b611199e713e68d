package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FreehandBoard/internal/tool"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEmptyPathGivesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
[defaults]
mode = "move"
color = "#ff0000"
width = 3

[drawing]
simplify_tolerance = 2.5
hit_tolerance = 8

[export]
directory = "/tmp/boards"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, tool.Defaults{Mode: tool.ModeMove, Color: "#ff0000", Width: 3}, cfg.ToolDefaults())
	opts := cfg.InputOptions()
	assert.Equal(t, 2.5, opts.SimplifyTolerance)
	assert.Equal(t, float32(8), opts.HitTolerance)
	assert.Equal(t, float32(6), opts.CornerRadius, "unset keys keep their defaults")
	assert.Equal(t, "/tmp/boards", cfg.Export.Directory)
	assert.Equal(t, float32(1024), cfg.Window.Width)
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "[defaults\nmode = ")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	cfg := Default()
	cfg.Defaults.Mode = "erase"
	cfg.Defaults.Color = "#zz"
	cfg.Defaults.Width = 0
	cfg.Drawing.HitTolerance = -1
	cfg.Window.Height = 0

	cfg.Normalize()

	def := Default()
	assert.Equal(t, def.Defaults, cfg.Defaults)
	assert.Equal(t, def.Drawing, cfg.Drawing)
	assert.Equal(t, def.Window, cfg.Window)
}

func TestExportPath(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "board.pdf", cfg.ExportPath("board.pdf"))

	dir := filepath.Join(t.TempDir(), "out")
	cfg.Export.Directory = dir
	assert.Equal(t, filepath.Join(dir, "board.pdf"), cfg.ExportPath("board.pdf"))
	assert.DirExists(t, dir)
}
