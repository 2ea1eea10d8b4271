// Package config loads the engine's TOML-backed tunables: log levels
// and the search knobs that govern null-move pruning, the
// transposition table and the iterative-deepening time budget.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

var (
	// LogLevel is the general log level, set by default or overridden
	// by the config file or command line.
	LogLevel = LogLevels["info"]

	// SearchLogLevel is the log level used by the search's own logger.
	SearchLogLevel = LogLevels["info"]

	// Settings is the global configuration, read in from file by Setup.
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
}

// Setup reads the config file at path, falling back to the defaults set
// by each sub-config's init() when the file is missing or incomplete.
// Idempotent: a second call is a no-op.
func Setup(path string) {
	if initialized {
		return
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &Settings); err != nil {
			fmt.Println("config: using defaults:", err)
		}
	}

	setupLogLvl()
	initialized = true
}
