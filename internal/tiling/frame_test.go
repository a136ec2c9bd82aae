package tiling

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"coxtile/internal/conformal"
)

func TestRenderDeterministic(t *testing.T) {
	_, params := heptagonalParams(t)

	a := NewFrame(48, 32)
	b := NewFrame(48, 32)
	a.Render(params)
	b.Render(params)
	require.True(t, bytes.Equal(a.Pix(), b.Pix()))
}

func TestRenderOpaque(t *testing.T) {
	_, params := heptagonalParams(t)

	f := NewFrame(16, 16)
	f.Render(params)
	pix := f.Pix()
	for i := 3; i < len(pix); i += 4 {
		require.Equal(t, uint8(255), pix[i])
	}
}

func TestRenderMatchesDirectShade(t *testing.T) {
	_, params := heptagonalParams(t)

	const w, h = 32, 24
	f := NewFrame(w, h)
	f.Render(params)
	pix := f.Pix()

	for _, px := range [][2]int{{0, 0}, {w - 1, h - 1}, {w / 2, h / 2}, {5, 17}} {
		x, y := px[0], px[1]
		mx, my := params.PixelToModel(x, y, w, h)
		col := Shade(Reduce(conformal.Lift(mx, my), params), params)

		i := (y*w + x) * 4
		require.Equal(t, channelByte(col.R), pix[i+0], "pixel (%d,%d)", x, y)
		require.Equal(t, channelByte(col.G), pix[i+1], "pixel (%d,%d)", x, y)
		require.Equal(t, channelByte(col.B), pix[i+2], "pixel (%d,%d)", x, y)
		require.Equal(t, channelByte(col.A), pix[i+3], "pixel (%d,%d)", x, y)
	}
}

func TestImageCopiesPixels(t *testing.T) {
	_, params := heptagonalParams(t)

	f := NewFrame(8, 8)
	f.Render(params)
	img := f.Image()
	require.True(t, bytes.Equal(f.Pix(), img.Pix))

	// The image owns its pixels.
	img.Pix[0] ^= 0xff
	require.NotEqual(t, img.Pix[0], f.Pix()[0])
}

func TestChannelByte(t *testing.T) {
	require.Equal(t, uint8(0), channelByte(-0.5))
	require.Equal(t, uint8(0), channelByte(0))
	require.Equal(t, uint8(128), channelByte(0.5))
	require.Equal(t, uint8(255), channelByte(1))
	require.Equal(t, uint8(255), channelByte(2))
}
