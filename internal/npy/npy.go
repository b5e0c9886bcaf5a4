// Package npy reads and writes the NumPy .npy array format for the
// subset this application persists: C-order uint8 arrays of rank 2
// (a single frame) or rank 3 (a frame stack). There is no header,
// metadata, or versioning beyond the array's own shape and dtype.
package npy

import (
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Format errors.
var (
	ErrBadMagic   = fmt.Errorf("npy: not a .npy file")
	ErrBadHeader  = fmt.Errorf("npy: malformed header")
	ErrDtype      = fmt.Errorf("npy: unsupported dtype (want uint8)")
	ErrFortran    = fmt.Errorf("npy: fortran-order arrays not supported")
	ErrRank       = fmt.Errorf("npy: expected a 2-D or 3-D array")
	ErrShortData  = fmt.Errorf("npy: truncated data section")
	ErrEmptyShape = fmt.Errorf("npy: zero-sized dimension")
)

var magic = []byte("\x93NUMPY")

// headerAlign pads the v1 header so the data section starts on a
// 64-byte boundary, matching what numpy itself writes.
const headerAlign = 64

// maxHeaderLen bounds the declared header length before it is
// allocated. Real numpy headers are a few hundred bytes; a v2 file
// claiming more than this is malformed or hostile.
const maxHeaderLen = 1 << 16

// maxElems bounds the total element count a shape may declare. Grids
// cap at 64x64 cells, so even a very long animation stays far below
// this; it exists so a crafted shape cannot wrap the size product or
// drive an enormous allocation.
const maxElems = 1 << 26

// Array is a dense C-order uint8 array.
type Array struct {
	Shape []int
	Data  []uint8
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int { return len(a.Shape) }

func (a *Array) size() int {
	n := 1
	for _, d := range a.Shape {
		n *= d
	}
	return n
}

// Write serializes a as a version 1.0 .npy stream.
func Write(w io.Writer, a *Array) error {
	dims := make([]string, len(a.Shape))
	for i, d := range a.Shape {
		dims[i] = strconv.Itoa(d)
	}
	// numpy writes 1-tuples as "(n,)"; rank >= 2 joins plainly.
	shape := strings.Join(dims, ", ")
	if len(a.Shape) == 1 {
		shape += ","
	}
	dict := fmt.Sprintf("{'descr': '|u1', 'fortran_order': False, 'shape': (%s), }", shape)

	total := len(magic) + 2 + 2 + len(dict) + 1 // magic, version, hlen, dict, newline
	pad := (headerAlign - total%headerAlign) % headerAlign
	header := dict + strings.Repeat(" ", pad) + "\n"

	if _, err := w.Write(magic); err != nil {
		return err
	}
	if _, err := w.Write([]byte{1, 0}); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(len(header))); err != nil {
		return err
	}
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	if _, err := w.Write(a.Data); err != nil {
		return err
	}
	return nil
}

// Read parses a .npy stream. Version 1.0 and 2.0 headers are accepted;
// the dtype must be unsigned 8-bit and the layout C order.
func Read(r io.Reader) (*Array, error) {
	buf := make([]byte, len(magic)+2)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadMagic, err)
	}
	if string(buf[:len(magic)]) != string(magic) {
		return nil, ErrBadMagic
	}
	major := buf[len(magic)]

	var hlen int
	switch major {
	case 1:
		var n uint16
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
		}
		hlen = int(n)
	case 2, 3:
		var n uint32
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
		}
		hlen = int(n)
	default:
		return nil, fmt.Errorf("%w: version %d", ErrBadHeader, major)
	}
	if hlen > maxHeaderLen {
		return nil, fmt.Errorf("%w: header length %d", ErrBadHeader, hlen)
	}

	header := make([]byte, hlen)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}

	shape, err := parseHeader(string(header))
	if err != nil {
		return nil, err
	}

	a := &Array{Shape: shape}
	n := a.size()
	a.Data = make([]uint8, n)
	if _, err := io.ReadFull(r, a.Data); err != nil {
		return nil, fmt.Errorf("%w: want %d bytes: %v", ErrShortData, n, err)
	}
	return a, nil
}

// parseHeader pulls descr, fortran_order, and shape out of the python
// dict literal. The three keys may appear in any order.
func parseHeader(h string) ([]int, error) {
	descr, err := dictValue(h, "'descr'")
	if err != nil {
		return nil, err
	}
	descr = strings.Trim(descr, "' ")
	switch descr {
	case "|u1", "<u1", ">u1", "u1":
	default:
		return nil, fmt.Errorf("%w: %q", ErrDtype, descr)
	}

	order, err := dictValue(h, "'fortran_order'")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(order) != "False" {
		return nil, ErrFortran
	}

	open := strings.Index(h, "(")
	end := strings.Index(h, ")")
	if open < 0 || end < open {
		return nil, fmt.Errorf("%w: missing shape tuple", ErrBadHeader)
	}
	var shape []int
	elems := 1
	for _, part := range strings.Split(h[open+1:end], ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: shape element %q", ErrBadHeader, part)
		}
		if d <= 0 {
			return nil, ErrEmptyShape
		}
		// Checked before multiplying so the product cannot wrap.
		if d > maxElems || elems > maxElems/d {
			return nil, fmt.Errorf("%w: shape too large", ErrBadHeader)
		}
		elems *= d
		shape = append(shape, d)
	}
	if len(shape) == 0 {
		return nil, fmt.Errorf("%w: empty shape", ErrBadHeader)
	}
	return shape, nil
}

// dictValue returns the raw text between "key:" and the next comma.
func dictValue(h, key string) (string, error) {
	i := strings.Index(h, key)
	if i < 0 {
		return "", fmt.Errorf("%w: missing %s", ErrBadHeader, key)
	}
	rest := h[i+len(key):]
	colon := strings.Index(rest, ":")
	if colon < 0 {
		return "", fmt.Errorf("%w: missing %s value", ErrBadHeader, key)
	}
	rest = rest[colon+1:]
	if end := strings.Index(rest, ","); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest), nil
}
