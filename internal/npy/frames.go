package npy

import (
	"fmt"
	"io"
	"os"

	"github.com/san-kum/spritelab/internal/anim"
)

// WriteAnimation serializes frames as a rank-3 array of shape
// (frames, rows, cols). The frames are assumed to share one shape.
func WriteAnimation(w io.Writer, frames []*anim.Frame) error {
	if len(frames) == 0 {
		return anim.ErrNoFrames
	}
	rows, cols := frames[0].Rows, frames[0].Cols
	a := &Array{
		Shape: []int{len(frames), rows, cols},
		Data:  make([]uint8, 0, len(frames)*rows*cols),
	}
	for _, f := range frames {
		a.Data = append(a.Data, f.Pix...)
	}
	return Write(w, a)
}

// WriteFrame serializes a single frame as a rank-2 array of shape
// (rows, cols).
func WriteFrame(w io.Writer, f *anim.Frame) error {
	a := &Array{Shape: []int{f.Rows, f.Cols}, Data: f.Pix}
	return Write(w, a)
}

// ReadAnimation decodes an array into a frame stack. A rank-2 array
// becomes a one-frame animation; rank 3 is one frame per outermost
// index; any other rank is a format error. Nonzero cell values
// normalize to 1. The whole array decodes before anything is returned,
// so a failed read leaves the caller's animation untouched.
func ReadAnimation(r io.Reader) ([]*anim.Frame, error) {
	a, err := Read(r)
	if err != nil {
		return nil, err
	}
	switch a.Rank() {
	case 2:
		a.Shape = []int{1, a.Shape[0], a.Shape[1]}
	case 3:
	default:
		return nil, fmt.Errorf("%w, got rank %d", ErrRank, a.Rank())
	}

	count, rows, cols := a.Shape[0], a.Shape[1], a.Shape[2]
	frames := make([]*anim.Frame, count)
	for i := 0; i < count; i++ {
		f := anim.NewFrame(rows, cols)
		copy(f.Pix, a.Data[i*rows*cols:(i+1)*rows*cols])
		for j, v := range f.Pix {
			if v != 0 {
				f.Pix[j] = 1
			}
		}
		frames[i] = f
	}
	return frames, nil
}

// SaveAnimation writes frames to path as rank-3 .npy.
func SaveAnimation(path string, frames []*anim.Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteAnimation(file, frames)
}

// SaveFrame writes a single frame to path as rank-2 .npy.
func SaveFrame(path string, f *anim.Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteFrame(file, f)
}

// LoadAnimation reads a frame stack from path.
func LoadAnimation(path string) ([]*anim.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadAnimation(file)
}
