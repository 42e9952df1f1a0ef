// Package palette provides the fixed set of colours a trace can be drawn
// in, along with the current selection.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var (
	ErrEmpty        = errors.New("palette: no colours")
	ErrOutOfRange   = errors.New("palette: index out of range")
	ErrUnknownColor = errors.New("palette: unknown colour")
)

// DefaultNames lists the colours offered when none are configured.
var DefaultNames = []string{
	"red", "lime", "blue", "yellow", "magenta", "cyan", "black", "gray",
}

type Palette struct {
	colors   []color.Color
	selected int
}

// New returns a palette over colors with the first one selected.
func New(colors ...color.Color) (*Palette, error) {
	if len(colors) == 0 {
		return nil, ErrEmpty
	}
	cs := make([]color.Color, len(colors))
	copy(cs, colors)
	return &Palette{colors: cs}, nil
}

// Parse builds a palette from SVG colour names or #rrggbb / #rrggbbaa
// hex strings.
func Parse(names []string) (*Palette, error) {
	colors := make([]color.Color, 0, len(names))
	for _, name := range names {
		c, err := ParseColor(name)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return New(colors...)
}

func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	if !strings.HasPrefix(name, "#") {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	hex := name[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	// NRGBA keeps the alpha straight, as written.
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func (p *Palette) Len() int { return len(p.colors) }

func (p *Palette) At(i int) color.Color { return p.colors[i] }

func (p *Palette) Selected() color.Color { return p.colors[p.selected] }

func (p *Palette) SelectedIndex() int { return p.selected }

func (p *Palette) Select(i int) error {
	if i < 0 || i >= len(p.colors) {
		return fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, len(p.colors))
	}
	p.selected = i
	return nil
}
