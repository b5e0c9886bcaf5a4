// Package render turns frames into renderable form: RGBA bitmaps for
// preview and export, animated GIFs, and text thumbnails for the TUI
// frame strip. Off cells render white, on cells black, scaled by a
// fixed per-cell magnification.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"

	"github.com/san-kum/spritelab/internal/anim"
)

// DefaultScale is the per-cell magnification used when a caller does
// not specify one.
const DefaultScale = 16

// FrameImage renders f with scale pixels per cell.
func FrameImage(f *anim.Frame, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, f.Cols*scale, f.Rows*scale))
	for r := 0; r < f.Rows; r++ {
		for c := 0; c < f.Cols; c++ {
			col := color.RGBA{255, 255, 255, 255}
			if f.At(r, c) != 0 {
				col = color.RGBA{0, 0, 0, 255}
			}
			for y := r * scale; y < (r+1)*scale; y++ {
				for x := c * scale; x < (c+1)*scale; x++ {
					img.Set(x, y, col)
				}
			}
		}
	}
	return img
}

// palette index 0 is the white background, 1 is ink.
var framePalette = color.Palette{
	color.RGBA{255, 255, 255, 255},
	color.RGBA{0, 0, 0, 255},
}

func paletted(f *anim.Frame, scale int) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, f.Cols*scale, f.Rows*scale), framePalette)
	for r := 0; r < f.Rows; r++ {
		for c := 0; c < f.Cols; c++ {
			if f.At(r, c) == 0 {
				continue
			}
			for y := r * scale; y < (r+1)*scale; y++ {
				for x := c * scale; x < (c+1)*scale; x++ {
					img.SetColorIndex(x, y, 1)
				}
			}
		}
	}
	return img
}

// EncodeGIF writes frames as a looping animated GIF. delayMS is the
// per-frame delay in milliseconds; GIF timing has 10ms granularity.
func EncodeGIF(w io.Writer, frames []*anim.Frame, scale, delayMS int) error {
	if len(frames) == 0 {
		return anim.ErrNoFrames
	}
	if scale < 1 {
		scale = 1
	}
	delay := delayMS / 10
	if delay < 1 {
		delay = 1
	}
	out := gif.GIF{LoopCount: 0}
	for _, f := range frames {
		out.Image = append(out.Image, paletted(f, scale))
		out.Delay = append(out.Delay, delay)
	}
	if err := gif.EncodeAll(w, &out); err != nil {
		return fmt.Errorf("render: gif encode: %w", err)
	}
	return nil
}
