package main

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/hammamikhairi/koji/internal/config"
	"github.com/hammamikhairi/koji/internal/logger"
	"github.com/hammamikhairi/koji/internal/recipe"
)

// rootFlags are the persistent flags shared by every command.
type rootFlags struct {
	config  string
	logFile string
	verbose bool
	quiet   bool
	plain   bool
}

type commandContext struct {
	flags *rootFlags

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(flags *rootFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
	})
	return c.config, c.configErr
}

// openLogger builds the logger from config and flags. Logs go to a file
// unless the file is "stderr", so the prompt stays clean. The returned
// func closes the log file.
func (c *commandContext) openLogger(stderr io.Writer) (*logger.Logger, func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}

	level := cfg.LogLevel()
	if c.flags.verbose {
		level = logger.LevelVerbose
	}
	if c.flags.quiet {
		level = logger.LevelOff
	}

	target := cfg.Logging.File
	if f := strings.TrimSpace(c.flags.logFile); f != "" {
		target = f
	}

	var logOut io.Writer = stderr
	closeFn := func() {}
	if target != "" && target != config.LogToStderr && level != logger.LevelOff {
		if dir := filepath.Dir(target); dir != "" && dir != "." {
			_ = os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", target, err)
		} else {
			logOut = f
			closeFn = func() { f.Close() }
		}
	}

	// Third-party libraries that use the standard logger write to the
	// same place.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	return logger.New(level, logOut), closeFn, nil
}

func (c *commandContext) newStore(log *logger.Logger) *recipe.MemoryStore {
	if c.config != nil && !c.config.Recipes.Seed {
		return recipe.NewMemoryStore(log, recipe.WithRecipes())
	}
	return recipe.NewMemoryStore(log)
}

// plainMode reports whether the shell should skip the Bubble Tea UI.
func (c *commandContext) plainMode(out io.Writer) bool {
	if c.flags.plain {
		return true
	}
	if c.config != nil && c.config.UI.Plain {
		return true
	}
	return !isTerminal(out)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
