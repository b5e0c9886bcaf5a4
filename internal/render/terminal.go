package render

import (
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/BourgeoisBear/rasterm"
	"github.com/andybons/gogif"

	"github.com/san-kum/spritelab/internal/anim"
)

// WriteTerminal draws img inline using whichever graphics protocol the
// terminal speaks: Kitty, then iTerm/WezTerm, then sixel. Sixel output
// goes through a median-cut quantize first since the protocol wants a
// paletted image.
func WriteTerminal(w io.Writer, img image.Image) error {
	if rasterm.IsTermKitty() {
		if err := (rasterm.Settings{}).KittyWriteImage(w, img); err != nil {
			return err
		}
		fmt.Fprintln(w)
		return nil
	}
	if rasterm.IsTermItermWez() {
		if err := (rasterm.Settings{}).ItermWriteImage(w, img); err != nil {
			return err
		}
		fmt.Fprintln(w)
		return nil
	}
	if capable, err := rasterm.IsSixelCapable(); capable && err == nil {
		pal := image.NewPaletted(img.Bounds(), nil)
		q := gogif.MedianCutQuantizer{NumColor: 4}
		q.Quantize(pal, img.Bounds(), img, image.Point{})
		if err := (rasterm.Settings{}).SixelWriteImage(w, pal); err != nil {
			return err
		}
		fmt.Fprintln(w)
		return nil
	}
	return fmt.Errorf("render: terminal has no inline graphics support")
}

// PrintFrame renders f at scale and draws it to stdout, falling back to
// a character grid when the terminal has no graphics protocol. The
// error reports a failed fallback write only; graphics-protocol
// failures select the fallback instead of surfacing.
func PrintFrame(f *anim.Frame, scale int) error {
	return printFrame(os.Stdout, f, scale)
}

func printFrame(w io.Writer, f *anim.Frame, scale int) error {
	if err := WriteTerminal(w, FrameImage(f, scale)); err == nil {
		return nil
	}
	_, err := io.WriteString(w, FrameText(f))
	return err
}

// FrameText renders f as a character grid, two columns per cell so the
// aspect ratio survives terminal fonts.
func FrameText(f *anim.Frame) string {
	var b strings.Builder
	for r := 0; r < f.Rows; r++ {
		for c := 0; c < f.Cols; c++ {
			if f.At(r, c) != 0 {
				b.WriteString("██")
			} else {
				b.WriteString("··")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
