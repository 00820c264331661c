// Package config handles dicegen configuration loading and management.
package config

import (
	"fmt"

	"github.com/GeheimCoding/Dice/internal/die"
)

// Config holds all generator settings.
type Config struct {
	Die     die.Options   `yaml:"die"`
	Atlas   AtlasConfig   `yaml:"atlas"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// AtlasConfig holds UV atlas template settings.
type AtlasConfig struct {
	TileSize    int    `yaml:"tile_size"`   // Pixels per face tile (square)
	Supersample int    `yaml:"supersample"` // Render scale before downsampling
	Background  string `yaml:"background"`  // #RRGGBB outside the caps
	Face        string `yaml:"face"`        // #RRGGBB cap fill
	Pip         string `yaml:"pip"`         // #RRGGBB pip colour
	Labels      bool   `yaml:"labels"`      // Print the face number in each tile
}

// OutputConfig holds where and how generated files are written.
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Name   string `yaml:"name"`   // Base file name without extension
	Format string `yaml:"format"` // obj or stl
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Supported mesh output formats.
const (
	FormatOBJ = "obj"
	FormatSTL = "stl"
)

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Die: die.DefaultOptions(),
		Atlas: AtlasConfig{
			TileSize:    256,
			Supersample: 4,
			Background:  "#202020",
			Face:        "#F4F1E8",
			Pip:         "#1A1A1A",
			Labels:      true,
		},
		Output: OutputConfig{
			Dir:    ".",
			Name:   "d6",
			Format: FormatOBJ,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks that all settings are usable.
func (c *Config) Validate() error {
	if err := c.Die.Validate(); err != nil {
		return fmt.Errorf("die: %w", err)
	}
	if c.Atlas.TileSize < 16 {
		return fmt.Errorf("atlas: tile_size %d too small (min 16)", c.Atlas.TileSize)
	}
	if c.Atlas.Supersample < 1 || c.Atlas.Supersample > 8 {
		return fmt.Errorf("atlas: supersample %d out of range 1..8", c.Atlas.Supersample)
	}
	switch c.Output.Format {
	case FormatOBJ, FormatSTL:
	default:
		return fmt.Errorf("output: unknown format %q", c.Output.Format)
	}
	if c.Output.Name == "" {
		return fmt.Errorf("output: empty name")
	}
	return nil
}
