package tiling

import (
	"image"
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	"coxtile/internal/conformal"
)

// Frame is an RGBA pixel buffer rendered by the classification kernel.
type Frame struct {
	w, h int
	pix  []uint8
}

// NewFrame allocates a frame buffer with the given dimensions.
func NewFrame(w, h int) *Frame {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Frame{w: w, h: h, pix: make([]uint8, 4*w*h)}
}

// Size returns the frame dimensions.
func (f *Frame) Size() (int, int) { return f.w, f.h }

// Pix exposes the backing RGBA buffer.
func (f *Frame) Pix() []uint8 { return f.pix }

// Render classifies every pixel of the frame against params. Rows are fanned
// out over all CPUs; each pixel is a pure function of its coordinate and the
// frame's read-only tables, so the workers share nothing mutable.
func (f *Frame) Render(params *Params) {
	workers := runtime.NumCPU()
	if workers > f.h {
		workers = f.h
	}
	if workers < 1 {
		workers = 1
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for {
				y := int(next.Add(1)) - 1
				if y >= f.h {
					return
				}
				f.renderRow(y, params)
			}
		}()
	}
	wg.Wait()
}

func (f *Frame) renderRow(y int, params *Params) {
	base := y * f.w * 4
	for x := 0; x < f.w; x++ {
		mx, my := params.PixelToModel(x, y, f.w, f.h)
		res := Reduce(conformal.Lift(mx, my), params)
		col := Shade(res, params)

		i := base + x*4
		f.pix[i+0] = channelByte(col.R)
		f.pix[i+1] = channelByte(col.G)
		f.pix[i+2] = channelByte(col.B)
		f.pix[i+3] = channelByte(col.A)
	}
}

// Image copies the frame into a stdlib RGBA image for encoding.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.w, f.h))
	copy(img.Pix, f.pix)
	return img
}

func channelByte(v float64) uint8 {
	s := math.Round(v * 255)
	if s < 0 {
		return 0
	}
	if s > 255 {
		return 255
	}
	return uint8(s)
}
