// Package config loads the huekit settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/huekit"
	"github.com/jsvensson/huekit/internal/naming"
)

// Config is the resolved configuration, defaults applied.
type Config struct {
	Precision      int
	LightThreshold float64
	Swatches       bool
	Naming         Naming
}

// Naming configures color name lookups.
type Naming struct {
	Online   bool
	Endpoint string
	Timeout  time.Duration
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Precision:      huekit.DefaultPrecision,
		LightThreshold: huekit.DefaultLightThreshold,
		Swatches:       true,
		Naming: Naming{
			Endpoint: naming.DefaultEndpoint,
			Timeout:  naming.DefaultTimeout,
		},
	}
}

// fileConfig mirrors the HCL file. Pointers tell unset from zero.
type fileConfig struct {
	Precision      *int         `hcl:"precision,optional"`
	LightThreshold *float64     `hcl:"light_threshold,optional"`
	Swatches       *bool        `hcl:"swatches,optional"`
	Naming         *namingBlock `hcl:"naming,block"`
}

type namingBlock struct {
	Online   *bool   `hcl:"online,optional"`
	Endpoint *string `hcl:"endpoint,optional"`
	Timeout  *string `hcl:"timeout,optional"`
}

// DefaultPath returns $XDG_CONFIG_HOME/huekit/config.hcl or the platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "huekit", "config.hcl"), nil
}

// Load reads the configuration at path. With an empty path the default
// location is tried, and a missing file there yields Default().
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	src, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(path, src)
}

// Parse decodes configuration source on top of Default().
func Parse(filename string, src []byte) (Config, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	var raw fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return Config{}, fmt.Errorf("decoding config: %s", diags.Error())
	}

	cfg := Default()
	if raw.Precision != nil {
		if *raw.Precision < 0 {
			return Config{}, fmt.Errorf("precision must not be negative, got %d", *raw.Precision)
		}
		cfg.Precision = *raw.Precision
	}
	if raw.LightThreshold != nil {
		t := *raw.LightThreshold
		if t < 0 || t > 255 {
			return Config{}, fmt.Errorf("light_threshold must be between 0 and 255, got %v", t)
		}
		cfg.LightThreshold = t
	}
	if raw.Swatches != nil {
		cfg.Swatches = *raw.Swatches
	}

	if n := raw.Naming; n != nil {
		if n.Online != nil {
			cfg.Naming.Online = *n.Online
		}
		if n.Endpoint != nil {
			cfg.Naming.Endpoint = *n.Endpoint
		}
		if n.Timeout != nil {
			d, err := time.ParseDuration(*n.Timeout)
			if err != nil {
				return Config{}, fmt.Errorf("naming.timeout: %w", err)
			}
			if d <= 0 {
				return Config{}, fmt.Errorf("naming.timeout must be positive, got %s", d)
			}
			cfg.Naming.Timeout = d
		}
	}

	return cfg, nil
}

// Namer returns the naming collaborator the configuration selects.
func (c Config) Namer() huekit.Namer {
	if c.Naming.Online {
		return huekit.NewClientNamer(c.Naming.Endpoint, c.Naming.Timeout)
	}
	return huekit.OfflineNamer()
}
