package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/gamebook/internal/editor"
	"github.com/specialistvlad/gamebook/internal/nodeid"
)

// MaxBranchesLimit is the largest value MaxBranches may be configured to.
const MaxBranchesLimit = 99

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	AdventurePath string // loaded at startup when set
	AdventureDir  string // listed by the open command

	EntryID     nodeid.ID
	MaxBranches int

	LogFormat string
	LogLevel  string
	LogFile   string
}

// NewConfig fills in defaults and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.EntryID.IsZero() {
		cfg.EntryID = nodeid.Entry
	}
	if cfg.AdventureDir == "" {
		cfg.AdventureDir = "."
	}
	if cfg.MaxBranches == 0 {
		cfg.MaxBranches = editor.DefaultMaxBranches
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	var errs []error
	if cfg.MaxBranches < 1 || cfg.MaxBranches > MaxBranchesLimit {
		errs = append(errs, fmt.Errorf("max-branches must be between 1 and %d, got %d", MaxBranchesLimit, cfg.MaxBranches))
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		errs = append(errs, errors.New("invalid log-format: must be 'text' or 'json'"))
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'"))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &cfg, nil
}
