package render

import (
	"strings"

	"github.com/san-kum/spritelab/internal/anim"
)

// Thumbnail renders f as half-block text, two pixel rows per character
// row, for the TUI frame strip. The result is a slice of lines so the
// caller can style and join them.
func Thumbnail(f *anim.Frame) []string {
	lines := make([]string, 0, (f.Rows+1)/2)
	for r := 0; r < f.Rows; r += 2 {
		var b strings.Builder
		for c := 0; c < f.Cols; c++ {
			top := f.At(r, c) != 0
			bot := r+1 < f.Rows && f.At(r+1, c) != 0
			switch {
			case top && bot:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bot:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}
