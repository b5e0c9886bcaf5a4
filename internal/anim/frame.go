package anim

// Grid shape limits shared by every surface that prompts for dimensions.
const (
	MinDim = 1
	MaxDim = 64

	DefaultRows = 8
	DefaultCols = 8
)

// Frame is one 2-D binary pixel grid. Cells are stored row-major as
// uint8 values restricted to {0, 1}.
type Frame struct {
	Rows, Cols int
	Pix        []uint8
}

// NewFrame returns a zeroed rows x cols frame. Dimensions are assumed
// valid; callers prompting for user input validate via ValidDim first.
func NewFrame(rows, cols int) *Frame {
	return &Frame{
		Rows: rows,
		Cols: cols,
		Pix:  make([]uint8, rows*cols),
	}
}

// ValidDim reports whether a grid dimension is inside [MinDim, MaxDim].
func ValidDim(n int) bool {
	return n >= MinDim && n <= MaxDim
}

// In reports whether (row, col) lies inside the frame.
func (f *Frame) In(row, col int) bool {
	return row >= 0 && row < f.Rows && col >= 0 && col < f.Cols
}

// At returns the cell value at (row, col).
func (f *Frame) At(row, col int) uint8 {
	return f.Pix[row*f.Cols+col]
}

// Set writes v (0 or 1) at (row, col).
func (f *Frame) Set(row, col int, v uint8) {
	f.Pix[row*f.Cols+col] = v
}

// Toggle flips the cell at (row, col).
func (f *Frame) Toggle(row, col int) {
	f.Pix[row*f.Cols+col] ^= 1
}

// Clone returns a deep, independent copy of the frame.
func (f *Frame) Clone() *Frame {
	c := &Frame{Rows: f.Rows, Cols: f.Cols, Pix: make([]uint8, len(f.Pix))}
	copy(c.Pix, f.Pix)
	return c
}

// Resize returns a new rows x cols frame holding the top-left overlap of
// f. Cells outside the overlap are zero: cropped regions are discarded,
// grown regions are blank.
func (f *Frame) Resize(rows, cols int) *Frame {
	n := NewFrame(rows, cols)
	minR := min(f.Rows, rows)
	minC := min(f.Cols, cols)
	for r := 0; r < minR; r++ {
		copy(n.Pix[r*cols:r*cols+minC], f.Pix[r*f.Cols:r*f.Cols+minC])
	}
	return n
}

// Equal reports whether two frames have the same shape and contents.
func (f *Frame) Equal(o *Frame) bool {
	if f.Rows != o.Rows || f.Cols != o.Cols {
		return false
	}
	for i := range f.Pix {
		if f.Pix[i] != o.Pix[i] {
			return false
		}
	}
	return true
}

// Ink returns the number of lit cells.
func (f *Frame) Ink() int {
	n := 0
	for _, v := range f.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}
