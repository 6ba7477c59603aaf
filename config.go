package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// MigrationConfig holds the full TOML-driven migration configuration.
type MigrationConfig struct {
	Source EndpointConfig `toml:"source"`
	Target EndpointConfig `toml:"target"`

	// OnTableExists decides what happens when a target table already
	// exists: never|ask|skip|if_empty|overwrite|overwrite_all.
	OnTableExists string `toml:"on_table_exists"`

	// SkipTablePrefix filters out system tables by name prefix.
	SkipTablePrefix string `toml:"skip_table_prefix"`

	// PlanOnly compiles DDL and writes the plan log without importing rows.
	PlanOnly bool `toml:"plan_only"`

	Progress bool   `toml:"progress"`
	LogFile  string `toml:"log_file"`

	// ConsoleVerbosity and LogFileVerbosity are independent level
	// bitmasks: error=1 warn=2 info=4 debug=8 fixme=16.
	ConsoleVerbosity uint `toml:"console_verbosity"`
	LogFileVerbosity uint `toml:"log_file_verbosity"`

	// parsed fields, resolved by loadConfig
	sourceDialect Dialect
	targetDialect Dialect
	policy        OverwritePolicy
}

// EndpointConfig identifies one side of the migration.
type EndpointConfig struct {
	Dialect string `toml:"dialect"`
	DSN     string `toml:"dsn"`

	// Database optionally names the workarea to create on the target
	// (dialects that support CREATE DATABASE IF NOT EXISTS).
	Database string `toml:"database"`
}

// loadConfig reads a TOML config file and returns a MigrationConfig
// with defaults applied and every enum validated.
func loadConfig(path string) (*MigrationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := MigrationConfig{
		OnTableExists:    "never",
		SkipTablePrefix:  "sys",
		Progress:         true,
		ConsoleVerbosity: logMaskDefault,
		LogFileVerbosity: logMaskAll,
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if unknown := md.Undecoded(); len(unknown) > 0 {
		keys := make([]string, len(unknown))
		for i, k := range unknown {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	if cfg.Source.Dialect == "" {
		return nil, fmt.Errorf("source.dialect is required")
	}
	if cfg.Source.DSN == "" {
		return nil, fmt.Errorf("source.dsn is required")
	}
	if cfg.Target.Dialect == "" {
		return nil, fmt.Errorf("target.dialect is required")
	}
	if cfg.Target.DSN == "" {
		return nil, fmt.Errorf("target.dsn is required")
	}

	if cfg.sourceDialect, err = parseDialect(cfg.Source.Dialect); err != nil {
		return nil, err
	}
	if cfg.targetDialect, err = parseDialect(cfg.Target.Dialect); err != nil {
		return nil, err
	}
	if cfg.policy, err = parseOverwritePolicy(cfg.OnTableExists); err != nil {
		return nil, err
	}

	return &cfg, nil
}
