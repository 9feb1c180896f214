// Package config loads syntactic.yaml, the configuration of the syntactic
// command, and holds the names shared by the command and its configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level syntactic.yaml configuration.
type Config struct {
	// Render controls how programs are printed.
	Render Render `yaml:"render"`

	// Samples is the default selection for the show command. Empty means
	// every sample.
	Samples []string `yaml:"samples,omitempty"`
}

// Render holds the printing options.
type Render struct {
	// Style is "inline" (one line per program) or "tree". Defaults to "inline".
	Style string `yaml:"style,omitempty"`

	// Color is "auto", "always" or "never". With "auto" colour is used only
	// when standard output is a terminal. Defaults to "auto".
	Color string `yaml:"color,omitempty"`

	// Unicode selects box drawing characters for trees. Defaults to true.
	Unicode *bool `yaml:"unicode,omitempty"`

	// Types appends the signature of every subtree when drawing.
	Types bool `yaml:"types,omitempty"`
}

// Default is the configuration used when no file is found.
func Default() *Config {
	var cfg Config
	cfg.setDefaults()
	return &cfg
}

// LoadConfig reads and parses a syntactic.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses syntactic.yaml content from bytes.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

// FindConfig searches for syntactic.yaml starting from dir and walking up
// to parent directories.
// Returns the path to the config file and nil error if found,
// or empty string and nil error if not found.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// validate checks the configuration for semantic errors.
func (c *Config) validate(path string) error {
	if s := c.Render.Style; s != "" && !slices.Contains(Styles, s) {
		return fmt.Errorf("%s: render.style: unknown style %q (want %s)", path, s, strings.Join(Styles, ", "))
	}
	if m := c.Render.Color; m != "" && !slices.Contains(ColorModes, m) {
		return fmt.Errorf("%s: render.color: unknown mode %q (want %s)", path, m, strings.Join(ColorModes, ", "))
	}

	seen := make(map[string]int)
	for i, name := range c.Samples {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%s: samples[%d]: name is empty", path, i)
		}
		if j, ok := seen[name]; ok {
			return fmt.Errorf("%s: samples[%d]: %q already listed at samples[%d]", path, i, name, j)
		}
		seen[name] = i
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Render.Style == "" {
		c.Render.Style = StyleInline
	}
	if c.Render.Color == "" {
		c.Render.Color = ColorAuto
	}
	if c.Render.Unicode == nil {
		on := true
		c.Render.Unicode = &on
	}
}

// UseUnicode reports whether trees are drawn with box drawing characters.
func (r Render) UseUnicode() bool {
	return r.Unicode == nil || *r.Unicode
}

// UseColor resolves the colour mode; terminal reports whether the output
// is a terminal.
func (r Render) UseColor(terminal bool) bool {
	switch r.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return terminal
}
