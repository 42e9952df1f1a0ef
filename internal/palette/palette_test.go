package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func defaults(t *testing.T) *Palette {
	t.Helper()
	p, err := Parse(DefaultNames)
	require.NoError(t, err)
	return p
}

func TestDefaultNames(t *testing.T) {
	p := defaults(t)
	require.Equal(t, 8, p.Len())
	assert.Equal(t, 0, p.SelectedIndex())
	assert.Equal(t, colornames.Red, p.Selected())
	assert.Equal(t, color.RGBA{0, 0xff, 0, 0xff}, p.At(1))
	assert.Equal(t, colornames.Gray, p.At(7))
}

func TestNewEmpty(t *testing.T) {
	_, err := New()
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = Parse(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestSelect(t *testing.T) {
	p := defaults(t)
	require.NoError(t, p.Select(2))
	assert.Equal(t, 2, p.SelectedIndex())
	assert.Equal(t, colornames.Blue, p.Selected())

	assert.ErrorIs(t, p.Select(-1), ErrOutOfRange)
	assert.ErrorIs(t, p.Select(8), ErrOutOfRange)
	assert.Equal(t, 2, p.SelectedIndex())
}

func TestNewCopiesInput(t *testing.T) {
	in := []color.Color{color.Black, color.White}
	p, err := New(in...)
	require.NoError(t, err)
	in[0] = colornames.Red
	assert.Equal(t, color.Black, p.At(0))
}

func TestParseColor(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want color.Color
	}{
		{"red", colornames.Red},
		{"  DarkOrange ", colornames.Darkorange},
		{"#ff8000", color.NRGBA{0xff, 0x80, 0x00, 0xff}},
		{"#10203040", color.NRGBA{0x10, 0x20, 0x30, 0x40}},
		{"#ABCDEF", color.NRGBA{0xab, 0xcd, 0xef, 0xff}},
	} {
		got, err := ParseColor(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "notacolour", "#fff", "#gg0000", "#1234567"} {
		_, err := ParseColor(in)
		assert.ErrorIs(t, err, ErrUnknownColor, in)
	}
	_, err := Parse([]string{"red", "mauve-ish"})
	assert.ErrorIs(t, err, ErrUnknownColor)
	assert.ErrorContains(t, err, "mauve-ish")
}
