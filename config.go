package spineexport

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds export defaults loaded from a TOML file. Pointer fields
// distinguish "not set" from a zero value so a file can override only the
// settings it names.
//
//	out_dir = "assets"
//	compression = 9
//	autocrop = true
type Config struct {
	OutputDir        string `toml:"out_dir"`
	Name             string `toml:"json_filename"`
	Compression      *int   `toml:"compression"`
	ExportHidden     *bool  `toml:"include_hidden"`
	ReverseDrawOrder *bool  `toml:"reverse"`
	Autocrop         *bool  `toml:"autocrop"`
}

// LoadConfig reads a TOML defaults file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}

	if cfg.Compression != nil && (*cfg.Compression < 0 || *cfg.Compression > 9) {
		return nil, fmt.Errorf("config %q: compression level %d out of range 0-9", path, *cfg.Compression)
	}
	return &cfg, nil
}

// Apply copies every value the config sets onto opts.
func (c *Config) Apply(opts *Options) {
	if c.OutputDir != "" {
		opts.OutputDir = c.OutputDir
	}
	if c.Name != "" {
		opts.Name = c.Name
	}
	if c.Compression != nil {
		opts.Compression = *c.Compression
	}
	if c.ExportHidden != nil {
		opts.ExportHidden = *c.ExportHidden
	}
	if c.ReverseDrawOrder != nil {
		opts.ReverseDrawOrder = *c.ReverseDrawOrder
	}
	if c.Autocrop != nil {
		opts.Autocrop = *c.Autocrop
	}
}
