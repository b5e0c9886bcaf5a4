package anim

import (
	"fmt"
	"time"
)

// Playback tick interval bounds. The default matches a 5 fps preview.
const (
	DefaultInterval = 200 * time.Millisecond
	minInterval     = 20 * time.Millisecond
	maxInterval     = 5 * time.Second
)

// Store owns an animation: an ordered, never-empty stack of
// equally-shaped frames, the cursor selecting the current frame, and the
// Stopped/Playing state machine. While playing, editing and structural
// operations are no-ops so a frame is never mutated out from under the
// render loop; Advance remains allowed because it is the playback step.
type Store struct {
	rows, cols int
	frames     []*Frame
	cursor     int

	playing  bool
	interval time.Duration

	// gen counts mutations per frame so thumbnail caches can detect
	// stale previews without comparing pixels.
	gen []uint64
}

// New returns a store holding a single zeroed rows x cols frame with the
// cursor on it, stopped.
func New(rows, cols int) (*Store, error) {
	if !ValidDim(rows) || !ValidDim(cols) {
		return nil, fmt.Errorf("%w: %dx%d", ErrShapeBounds, rows, cols)
	}
	return &Store{
		rows:     rows,
		cols:     cols,
		frames:   []*Frame{NewFrame(rows, cols)},
		gen:      []uint64{0},
		interval: DefaultInterval,
	}, nil
}

func (s *Store) Rows() int   { return s.rows }
func (s *Store) Cols() int   { return s.cols }
func (s *Store) Len() int    { return len(s.frames) }
func (s *Store) Cursor() int { return s.cursor }

// Current returns the frame under the cursor.
func (s *Store) Current() *Frame { return s.frames[s.cursor] }

// Frame returns the frame at idx.
func (s *Store) Frame(idx int) (*Frame, error) {
	if idx < 0 || idx >= len(s.frames) {
		return nil, fmt.Errorf("%w: %d of %d", ErrFrameIndex, idx, len(s.frames))
	}
	return s.frames[idx], nil
}

// Generation returns the mutation counter for the frame at idx. A cached
// preview rendered at an older generation is stale.
func (s *Store) Generation(idx int) uint64 { return s.gen[idx] }

func (s *Store) touch(idx int) { s.gen[idx]++ }

// ToggleCell flips the cell at (row, col) in the current frame.
func (s *Store) ToggleCell(row, col int) error {
	if s.playing {
		return nil
	}
	if !s.Current().In(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrCellBounds, row, col)
	}
	s.Current().Toggle(row, col)
	s.touch(s.cursor)
	return nil
}

// SetCell writes v at (row, col) in the current frame. Writing the value
// already present skips the mutation and the stale-marking.
func (s *Store) SetCell(row, col int, v uint8) error {
	if s.playing {
		return nil
	}
	if !s.Current().In(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrCellBounds, row, col)
	}
	if v != 0 {
		v = 1
	}
	if s.Current().At(row, col) == v {
		return nil
	}
	s.Current().Set(row, col, v)
	s.touch(s.cursor)
	return nil
}

// Resize reshapes every frame to rows x cols, keeping the top-left
// overlap and zero-filling the rest. The change is uniform and atomic:
// validation happens before any frame is touched, and the frame count
// (hence the cursor invariant) is unaffected.
func (s *Store) Resize(rows, cols int) error {
	if s.playing {
		return nil
	}
	if !ValidDim(rows) || !ValidDim(cols) {
		return fmt.Errorf("%w: %dx%d", ErrShapeBounds, rows, cols)
	}
	s.resize(rows, cols)
	return nil
}

func (s *Store) resize(rows, cols int) {
	for i, f := range s.frames {
		s.frames[i] = f.Resize(rows, cols)
		s.touch(i)
	}
	s.rows, s.cols = rows, cols
}

// AddFrame inserts a zeroed frame after the cursor and moves the cursor
// onto it.
func (s *Store) AddFrame() {
	if s.playing {
		return
	}
	s.insert(NewFrame(s.rows, s.cols))
}

// CopyFrame inserts a deep copy of the current frame after the cursor
// and moves the cursor onto the copy.
func (s *Store) CopyFrame() {
	if s.playing {
		return
	}
	s.insert(s.Current().Clone())
}

func (s *Store) insert(f *Frame) {
	at := s.cursor + 1
	s.frames = append(s.frames, nil)
	copy(s.frames[at+1:], s.frames[at:])
	s.frames[at] = f
	s.gen = append(s.gen, 0)
	copy(s.gen[at+1:], s.gen[at:])
	s.gen[at] = 0
	s.cursor = at
}

// DeleteFrame removes the frame under the cursor. Deleting the only
// frame is refused with ErrLastFrame and leaves the store unchanged.
// After deletion the cursor becomes max(0, cursor-1).
func (s *Store) DeleteFrame() error {
	if s.playing {
		return nil
	}
	if len(s.frames) == 1 {
		return ErrLastFrame
	}
	s.frames = append(s.frames[:s.cursor], s.frames[s.cursor+1:]...)
	s.gen = append(s.gen[:s.cursor], s.gen[s.cursor+1:]...)
	s.cursor = max(0, s.cursor-1)
	return nil
}

// SelectFrame moves the cursor to idx.
func (s *Store) SelectFrame(idx int) error {
	if s.playing {
		return nil
	}
	if idx < 0 || idx >= len(s.frames) {
		return fmt.Errorf("%w: %d of %d", ErrFrameIndex, idx, len(s.frames))
	}
	s.cursor = idx
	return nil
}

// Advance moves the cursor to the next frame, wrapping to 0 after the
// last. Allowed in both states: it is the playback step itself.
func (s *Store) Advance() {
	s.cursor = (s.cursor + 1) % len(s.frames)
}

// Play transitions Stopped -> Playing. No-op when already playing.
func (s *Store) Play() { s.playing = true }

// Stop transitions Playing -> Stopped. No-op when already stopped.
func (s *Store) Stop() { s.playing = false }

// Playing reports the playback state.
func (s *Store) Playing() bool { return s.playing }

// Interval returns the playback tick interval.
func (s *Store) Interval() time.Duration { return s.interval }

// SetInterval sets the playback tick interval, clamped to sane bounds.
func (s *Store) SetInterval(d time.Duration) {
	if d < minInterval {
		d = minInterval
	}
	if d > maxInterval {
		d = maxInterval
	}
	s.interval = d
}

// Snapshot returns deep copies of all frames in order. Export paths use
// it so serialization never aliases live editing state.
func (s *Store) Snapshot() []*Frame {
	out := make([]*Frame, len(s.frames))
	for i, f := range s.frames {
		out[i] = f.Clone()
	}
	return out
}

// Replace installs a loaded animation, all-or-nothing. The frames must
// be non-empty and share one valid shape; on any failure the store is
// left untouched. On success the cursor resets to 0 and the frames run
// through the same resize path as an interactive reshape. With the
// target shape equal to the loaded shape that copy is a no-op, but it
// keeps import and resize on one code path.
func (s *Store) Replace(frames []*Frame) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	rows, cols := frames[0].Rows, frames[0].Cols
	if !ValidDim(rows) || !ValidDim(cols) {
		return fmt.Errorf("%w: %dx%d", ErrShapeBounds, rows, cols)
	}
	for _, f := range frames {
		if f.Rows != rows || f.Cols != cols {
			return fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, f.Rows, f.Cols, rows, cols)
		}
	}
	s.frames = frames
	s.gen = make([]uint64, len(frames))
	s.cursor = 0
	s.resize(rows, cols)
	return nil
}

// Status renders the display contract queried after every mutation:
// current frame, frame count, and grid shape.
func (s *Store) Status() string {
	return fmt.Sprintf("frame %d/%d | grid %dx%d", s.cursor+1, len(s.frames), s.rows, s.cols)
}
