// Package config loads the game's optional TOML settings file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/example/paperio/internal/geom"
	"github.com/example/paperio/internal/gesture"
	"github.com/example/paperio/internal/palette"
)

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type Stroke struct {
	Width float64 `toml:"width"`
}

type Score struct {
	Divisor float64 `toml:"divisor"`
}

type Gesture struct {
	StartSlop float64 `toml:"start_slop"`
	Slop      float64 `toml:"slop"`
}

type Config struct {
	Window  Window   `toml:"window"`
	Stroke  Stroke   `toml:"stroke"`
	Score   Score    `toml:"score"`
	Gesture Gesture  `toml:"gesture"`
	Palette []string `toml:"palette"`
	Debug   bool     `toml:"debug"`
}

func Default() Config {
	return Config{
		Window:  Window{Width: 480, Height: 800, Title: "paperio"},
		Stroke:  Stroke{Width: 6},
		Score:   Score{Divisor: geom.DefaultDivisor},
		Gesture: Gesture{StartSlop: gesture.DefaultStartSlop},
		Palette: append([]string(nil), palette.DefaultNames...),
	}
}

// Load reads the file at path over the defaults. An empty path yields the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals TOML data into cfg and validates the result.
func Decode(data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("line %d column %d: %w", row, col, err)
		}
		return err
	}
	return cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Stroke.Width <= 0 {
		errs = append(errs, fmt.Errorf("stroke width %v must be positive", c.Stroke.Width))
	}
	if c.Score.Divisor <= 0 {
		errs = append(errs, fmt.Errorf("score divisor %v must be positive", c.Score.Divisor))
	}
	if c.Gesture.Slop < 0 || c.Gesture.StartSlop < 0 {
		errs = append(errs, fmt.Errorf("gesture slop %v / start slop %v must not be negative", c.Gesture.Slop, c.Gesture.StartSlop))
	}
	if _, err := palette.Parse(c.Palette); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c Config) Scorer() geom.Scorer {
	return geom.Scorer{Divisor: c.Score.Divisor}
}

func (c Config) NewPalette() (*palette.Palette, error) {
	return palette.Parse(c.Palette)
}
