package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hammamikhairi/koji/internal/domain"
	"github.com/hammamikhairi/koji/internal/logger"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateUI(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

func (c *Config) validateUI() error {
	if _, err := domain.ParseView(c.UI.StartView); err != nil {
		return fmt.Errorf("ui.start_view: %w", err)
	}
	if strings.ContainsAny(c.UI.Prompt, "\n\r\x1b") {
		return errors.New("ui.prompt must be a single line without escape codes")
	}
	return nil
}

// LogLevel returns the parsed logging level. Call after Validate.
func (c *Config) LogLevel() logger.Level {
	level, err := logger.ParseLevel(c.Logging.Level)
	if err != nil {
		return logger.LevelNormal
	}
	return level
}

// StartView returns the parsed start view. Call after Validate.
func (c *Config) StartView() domain.ViewID {
	v, err := domain.ParseView(c.UI.StartView)
	if err != nil {
		return domain.ViewRecipes
	}
	return v
}
