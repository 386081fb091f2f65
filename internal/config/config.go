package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// EnvLogLevel overrides logging.level when set.
const EnvLogLevel = "KOJI_LOG_LEVEL"

// LogToStderr is the logging.file value that sends logs to the console.
const LogToStderr = "stderr"

const (
	defaultConfigPath  = "~/.config/koji/config.toml"
	projectConfigFile  = "koji.toml"
	defaultLogLevel    = "normal"
	defaultLogFile     = ".koji-logs/koji.log"
	defaultStartView   = "recipes"
	defaultPrompt      = "koji> "
	defaultSeedRecipes = true
)

// Logging contains configuration for log output.
type Logging struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// UI contains configuration for the interactive shell.
type UI struct {
	StartView string `toml:"start_view"`
	Prompt    string `toml:"prompt"`
	Plain     bool   `toml:"plain"`
}

// Recipes contains configuration for the recipe collection.
type Recipes struct {
	Seed bool `toml:"seed"`
}

// Config encapsulates all configuration values for koji.
type Config struct {
	Logging Logging `toml:"logging"`
	UI      UI      `toml:"ui"`
	Recipes Recipes `toml:"recipes"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: Logging{
			Level: defaultLogLevel,
			File:  defaultLogFile,
		},
		UI: UI{
			StartView: defaultStartView,
			Prompt:    defaultPrompt,
		},
		Recipes: Recipes{
			Seed: defaultSeedRecipes,
		},
	}
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. It returns
// the config, the path it resolved, and whether that file existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file).DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			var strict *toml.StrictMissingError
			if errors.As(err, &strict) {
				return nil, "", false, fmt.Errorf("parse config %s: %s", resolvedPath, strict.String())
			}
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigFile)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// Encode writes the configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

// LogsToStderr reports whether logs go to the console instead of a file.
func (c *Config) LogsToStderr() bool {
	return c.Logging.File == "" || c.Logging.File == LogToStderr
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
