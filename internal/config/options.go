// Options loading for the checker.
//
// A project may carry a tova.yaml next to its sources controlling
// advisory behavior (warning toggles, diagnostic color). The static
// analysis itself is never configurable: type errors are always hard
// and fail-fast.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options represents the parsed tova.yaml configuration.
type Options struct {
	// Warnings toggles advisory diagnostics.
	Warnings WarningOptions `yaml:"warnings"`

	// Color controls diagnostic coloring: "auto" (default, on when the
	// output is a terminal), "always", or "never".
	Color string `yaml:"color"`
}

// WarningOptions toggles individual warning families.
type WarningOptions struct {
	// Exhaustiveness enables pattern-match coverage warnings.
	Exhaustiveness bool `yaml:"exhaustiveness"`
}

// Default returns the options used when no tova.yaml exists.
func Default() Options {
	return Options{
		Warnings: WarningOptions{Exhaustiveness: true},
		Color:    "auto",
	}
}

// Load reads options from path. A missing file is not an error and
// yields the defaults; malformed YAML or an unknown color mode is.
func Load(path string) (Options, error) {
	opts := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Default(), fmt.Errorf("parsing %s: %w", path, err)
	}

	switch opts.Color {
	case "auto", "always", "never":
	default:
		return Default(), fmt.Errorf("%s: unknown color mode %q", path, opts.Color)
	}

	return opts, nil
}
