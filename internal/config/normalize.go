package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeLogging()
	if err := c.normalizeLogFile(); err != nil {
		return err
	}
	c.normalizeUI()
	return nil
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv(EnvLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeLogFile() error {
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	if c.Logging.File == "" || strings.EqualFold(c.Logging.File, LogToStderr) {
		c.Logging.File = LogToStderr
		return nil
	}
	var err error
	if c.Logging.File, err = expandPath(c.Logging.File); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}

func (c *Config) normalizeUI() {
	c.UI.StartView = strings.TrimSpace(c.UI.StartView)
	if c.UI.StartView == "" {
		c.UI.StartView = defaultStartView
	}
	if strings.TrimSpace(c.UI.Prompt) == "" {
		c.UI.Prompt = defaultPrompt
	}
}
