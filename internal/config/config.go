// Package config loads the optional .namecheck.toml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/gobwas/glob"

	m "github.com/mouse-blink/namecheck/internal/model"
)

// DefaultPath is looked up in the working directory when no --config is given.
const DefaultPath = ".namecheck.toml"

// Config is the decoded contents of a .namecheck.toml file. Zero values are
// replaced by defaults before validation.
type Config struct {
	Extensions []string `toml:"extensions"`
	Reports    string   `toml:"reports"`
	Parallel   int      `toml:"parallel"`
	Naming     Naming   `toml:"naming"`
	Exclude    Exclude  `toml:"exclude"`
	Watch      Watch    `toml:"watch"`
}

// Naming is the [naming] table and maps onto model.NamingPolicy.
type Naming struct {
	ClassPrefixes      []string `toml:"class_prefixes"`
	BoolPrefix         string   `toml:"bool_prefix"`
	CheckFreeFunctions bool     `toml:"check_free_functions"`
}

// Exclude is the [exclude] table: glob patterns matched against the base name
// of directories and files skipped during discovery.
type Exclude struct {
	Dirs  []string `toml:"dirs"`
	Files []string `toml:"files"`
}

// Watch is the [watch] table.
type Watch struct {
	// Debounce is the quiet period before a batch of changes is re-checked.
	Debounce time.Duration `toml:"debounce"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// Load reads and validates the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// Resolve loads path when given. Without an explicit path the default file is
// used if it exists, and built-in defaults otherwise.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}

	cfg, err := Load(DefaultPath)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	return cfg, err
}

func (c *Config) applyDefaults() {
	if len(c.Extensions) == 0 {
		c.Extensions = append([]string(nil), m.DefaultExtensions...)
	}

	defaults := m.DefaultNamingPolicy()
	if len(c.Naming.ClassPrefixes) == 0 {
		c.Naming.ClassPrefixes = defaults.ClassPrefixes
	}

	if c.Naming.BoolPrefix == "" {
		c.Naming.BoolPrefix = defaults.BoolPrefix
	}

	if c.Exclude.Dirs == nil {
		c.Exclude.Dirs = []string{".git", "Binaries", "Intermediate", "DerivedDataCache", "Saved"}
	}

	if c.Parallel <= 0 {
		c.Parallel = 1
	}

	if c.Watch.Debounce <= 0 {
		c.Watch.Debounce = 500 * time.Millisecond
	}
}

// Validate checks values the defaults cannot repair.
func (c *Config) Validate() error {
	var errs []error

	for _, p := range c.Naming.ClassPrefixes {
		if utf8.RuneCountInString(p) != 1 {
			errs = append(errs, fmt.Errorf("class prefix %q must be a single character", p))
		}
	}

	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			errs = append(errs, fmt.Errorf("extension %q must start with a dot", ext))
		}
	}

	for _, p := range append(append([]string(nil), c.Exclude.Dirs...), c.Exclude.Files...) {
		if _, err := glob.Compile(p); err != nil {
			errs = append(errs, fmt.Errorf("exclude pattern %q: %w", p, err))
		}
	}

	return errors.Join(errs...)
}

// Policy returns the naming policy described by the config.
func (c *Config) Policy() m.NamingPolicy {
	return m.NamingPolicy{
		ClassPrefixes:      append([]string(nil), c.Naming.ClassPrefixes...),
		BoolPrefix:         c.Naming.BoolPrefix,
		CheckFreeFunctions: c.Naming.CheckFreeFunctions,
	}
}
