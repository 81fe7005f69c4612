// Package config loads rendering defaults from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/asciisketch/config.toml, falling back
// to ~/.config/asciisketch/config.toml:
//
//	ascii = false
//	mode = "auto"        # auto | wireframe | mermaid
//	overflow = "wrap"    # wrap | error
//	compact = false
//
// Values from the file are applied on top of the pipeline defaults. Command
// line flags are applied on top of both by the caller.
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/asciisketch/pkg/errors"
	"github.com/matzehuels/asciisketch/pkg/pipeline"
)

const (
	appName  = "asciisketch"
	fileName = "config.toml"
)

// Config holds the rendering defaults read from a config file.
type Config struct {
	ASCII    bool   `toml:"ascii"`
	Mode     string `toml:"mode"`
	Overflow string `toml:"overflow"`
	Compact  bool   `toml:"compact"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Mode:     pipeline.DefaultForceMode,
		Overflow: pipeline.DefaultOverflow,
	}
}

// DefaultPath returns the config file location using the XDG standard.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the config file at path. An empty path means DefaultPath, and
// a missing default file yields Default. A missing file that was named
// explicitly is an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeIO, err, "read config %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML config data over Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the enumerated fields.
func (c Config) Validate() error {
	if err := pipeline.ValidateForceMode(c.Mode); err != nil {
		return err
	}
	return pipeline.ValidateOverflow(c.Overflow)
}

// Apply copies the configured defaults into opts.
func (c Config) Apply(opts *pipeline.Options) {
	opts.ASCIIOnly = c.ASCII
	opts.ForceMode = c.Mode
	opts.Overflow = c.Overflow
	opts.Compact = c.Compact
}
