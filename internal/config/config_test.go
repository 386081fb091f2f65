package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/koji/internal/config"
	"github.com/hammamikhairi/koji/internal/domain"
	"github.com/hammamikhairi/koji/internal/logger"
)

// isolate points HOME and the working directory at empty temp dirs so the
// default search paths find nothing.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvLogLevel, "")
	t.Chdir(t.TempDir())
	return home
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	home := isolate(t)

	cfg, path, exists, err := config.Load("")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, filepath.Join(home, ".config", "koji", "config.toml"), path)
	assert.Equal(t, logger.LevelNormal, cfg.LogLevel())
	assert.Equal(t, domain.ViewRecipes, cfg.StartView())
	assert.Equal(t, "koji> ", cfg.UI.Prompt)
	assert.True(t, cfg.Recipes.Seed)
	assert.True(t, filepath.IsAbs(cfg.Logging.File))
}

func TestLoadExplicitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, path, `
[logging]
level = "Verbose"
file = "stderr"

[ui]
start_view = "meal-plan"
plain = true

[recipes]
seed = false
`)

	cfg, resolved, exists, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, path, resolved)
	assert.Equal(t, logger.LevelVerbose, cfg.LogLevel())
	assert.True(t, cfg.LogsToStderr())
	assert.Equal(t, domain.ViewMealPlan, cfg.StartView())
	assert.True(t, cfg.UI.Plain)
	assert.False(t, cfg.Recipes.Seed)
	assert.Equal(t, "koji> ", cfg.UI.Prompt, "unset prompt keeps the default")
}

func TestLoadProjectFile(t *testing.T) {
	isolate(t)
	writeFile(t, "koji.toml", "[ui]\nstart_view = \"dashboard\"\n")

	cfg, path, exists, err := config.Load("")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "koji.toml", filepath.Base(path))
	assert.Equal(t, domain.ViewDashboard, cfg.StartView())
}

func TestHomeConfigWinsOverProject(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".config", "koji", "config.toml"), "[ui]\nstart_view = \"ingredients\"\n")
	writeFile(t, "koji.toml", "[ui]\nstart_view = \"dashboard\"\n")

	cfg, _, _, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, domain.ViewIngredients, cfg.StartView())
}

func TestEnvOverridesLogLevel(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvLogLevel, "off")

	cfg, _, _, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, logger.LevelOff, cfg.LogLevel())
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{"bad level", "[logging]\nlevel = \"loud\"\n", "logging.level"},
		{"bad view", "[ui]\nstart_view = \"pantry\"\n", "ui.start_view"},
		{"unknown key", "[ui]\ncolour = \"red\"\n", "parse config"},
		{"bad toml", "[ui\n", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := filepath.Join(t.TempDir(), "config.toml")
			writeFile(t, path, tt.contents)

			_, _, _, err := config.Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateSampleLoads(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, config.CreateSample(path))

	cfg, _, exists, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, config.Default().UI, cfg.UI)
	assert.Equal(t, config.Default().Recipes, cfg.Recipes)
}

func TestEncode(t *testing.T) {
	cfg := config.Default()
	out, err := cfg.Encode()
	require.NoError(t, err)
	assert.Contains(t, string(out), "[logging]")
	assert.Contains(t, string(out), "start_view")

	var back config.Config
	require.NoError(t, toml.Unmarshal(out, &back))
	assert.Equal(t, cfg, back)
}
