package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	s := Compute(8, 480, 800)
	require.Len(t, s.Swatches, 8)

	// (464 - 320) / 9 = 16
	assert.Equal(t, image.Rect(24, 8, 64, 48), s.Swatches[0])
	assert.Equal(t, image.Rect(80, 8, 120, 48), s.Swatches[1])
	assert.Equal(t, image.Rect(416, 8, 456, 48), s.Swatches[7])

	assert.Equal(t, image.Rect(0, 56, 480, 96), s.Score)
	assert.Equal(t, image.Rect(0, 96, 480, 800), s.Canvas)
	assert.Equal(t, image.Rect(0, 0, 480, 96), s.Header())
}

func TestComputeNarrow(t *testing.T) {
	s := Compute(8, 176, 300)
	for i, r := range s.Swatches {
		assert.Equal(t, 20, r.Dx(), "swatch %d", i)
		assert.True(t, r.In(s.Bounds))
		if i > 0 {
			assert.False(t, r.Overlaps(s.Swatches[i-1]))
		}
	}
}

func TestComputeTiny(t *testing.T) {
	s := Compute(3, 10, 20)
	assert.True(t, s.Canvas.Empty())
	assert.Len(t, s.Swatches, 3)
	assert.Empty(t, Compute(0, 100, 100).Swatches)
}

func TestSwatchAt(t *testing.T) {
	s := Compute(8, 480, 800)
	assert.Equal(t, 0, s.SwatchAt(image.Pt(30, 20)))
	assert.Equal(t, 7, s.SwatchAt(image.Pt(455, 47)))
	assert.Equal(t, -1, s.SwatchAt(image.Pt(70, 20)), "gap between swatches")
	assert.Equal(t, -1, s.SwatchAt(image.Pt(200, 400)))
}

func TestInCanvas(t *testing.T) {
	s := Compute(8, 480, 800)
	assert.True(t, s.InCanvas(image.Pt(10, 96)))
	assert.True(t, s.InCanvas(image.Pt(479, 799)))
	assert.False(t, s.InCanvas(image.Pt(10, 95)))
	assert.False(t, s.InCanvas(image.Pt(480, 500)))
}
