package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// sxConfig is the optional sx.toml, discovered by walking up from the
// working directory. Every section and key is optional; flags win over
// the file.
type sxConfig struct {
	Output outputConfig `toml:"output"`
	Lexer  lexerConfig  `toml:"lexer"`
}

type outputConfig struct {
	Color     string `toml:"color"`     // auto|on|off
	Precision int    `toml:"precision"` // -1 => %g, otherwise %.Nf
}

type lexerConfig struct {
	NewlineDelimits bool `toml:"newline_delimits"`
}

func defaultConfig() sxConfig {
	return sxConfig{
		Output: outputConfig{Color: "auto", Precision: -1},
	}
}

func findSxToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "sx.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig returns the effective configuration: defaults overlaid with
// the nearest sx.toml, if any. A malformed file is a hard error naming it.
func loadConfig(startDir string) (sxConfig, error) {
	cfg := defaultConfig()

	path, ok, err := findSxToml(startDir)
	if err != nil || !ok {
		return cfg, err
	}

	// Absent keys leave the defaults untouched.
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	switch cfg.Output.Color {
	case "auto", "on", "off":
	default:
		return cfg, fmt.Errorf("%s: invalid [output].color %q (expected auto|on|off)", path, cfg.Output.Color)
	}
	return cfg, nil
}
