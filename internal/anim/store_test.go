package anim

import (
	"errors"
	"testing"
	"time"
)

func TestNewStore(t *testing.T) {
	s, err := New(DefaultRows, DefaultCols)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 frame, got %d", s.Len())
	}
	if s.Cursor() != 0 {
		t.Errorf("expected cursor 0, got %d", s.Cursor())
	}
	if s.Playing() {
		t.Error("expected initial state stopped")
	}
	if s.Current().Ink() != 0 {
		t.Error("initial frame should be blank")
	}
	if s.Interval() != DefaultInterval {
		t.Errorf("expected interval %v, got %v", DefaultInterval, s.Interval())
	}
}

func TestNewStoreBounds(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 8},
		{"zero cols", 8, 0},
		{"negative", -1, 8},
		{"too large", 8, 65},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.rows, tt.cols); !errors.Is(err, ErrShapeBounds) {
				t.Errorf("expected ErrShapeBounds, got %v", err)
			}
		})
	}
}

func TestToggleCellInvolution(t *testing.T) {
	s, _ := New(8, 8)
	for _, cell := range [][2]int{{0, 0}, {3, 5}, {7, 7}} {
		before := s.Current().At(cell[0], cell[1])
		if err := s.ToggleCell(cell[0], cell[1]); err != nil {
			t.Fatalf("toggle failed: %v", err)
		}
		if got := s.Current().At(cell[0], cell[1]); got == before {
			t.Errorf("cell (%d,%d) did not flip", cell[0], cell[1])
		}
		if err := s.ToggleCell(cell[0], cell[1]); err != nil {
			t.Fatalf("toggle failed: %v", err)
		}
		if got := s.Current().At(cell[0], cell[1]); got != before {
			t.Errorf("double toggle of (%d,%d) changed value", cell[0], cell[1])
		}
	}
}

func TestToggleCellOutOfBounds(t *testing.T) {
	s, _ := New(4, 4)
	for _, cell := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		if err := s.ToggleCell(cell[0], cell[1]); !errors.Is(err, ErrCellBounds) {
			t.Errorf("cell (%d,%d): expected ErrCellBounds, got %v", cell[0], cell[1], err)
		}
	}
}

func TestSetCellSkipsRedundantWrite(t *testing.T) {
	s, _ := New(4, 4)
	if err := s.SetCell(1, 1, 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if s.Generation(0) != 0 {
		t.Error("writing the existing value should not mark the frame stale")
	}
	if err := s.SetCell(1, 1, 1); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if s.Current().At(1, 1) != 1 {
		t.Error("expected cell set to 1")
	}
	if s.Generation(0) == 0 {
		t.Error("mutation should bump the frame generation")
	}
}

func TestResizeOverlapAndLoss(t *testing.T) {
	s, _ := New(4, 4)
	s.ToggleCell(1, 1) // inside the 2x2 overlap
	s.ToggleCell(3, 3) // cropped away below

	if err := s.Resize(2, 2); err != nil {
		t.Fatalf("resize failed: %v", err)
	}
	if s.Rows() != 2 || s.Cols() != 2 {
		t.Fatalf("expected 2x2, got %dx%d", s.Rows(), s.Cols())
	}
	if s.Current().At(1, 1) != 1 {
		t.Error("overlap cell lost by shrink")
	}

	if err := s.Resize(4, 4); err != nil {
		t.Fatalf("resize failed: %v", err)
	}
	if s.Current().At(1, 1) != 1 {
		t.Error("overlap cell lost by round-trip")
	}
	if s.Current().At(3, 3) != 0 {
		t.Error("cropped cell should not survive the round-trip")
	}
}

func TestResizeUniform(t *testing.T) {
	s, _ := New(3, 3)
	s.AddFrame()
	s.AddFrame()
	if err := s.Resize(5, 7); err != nil {
		t.Fatalf("resize failed: %v", err)
	}
	for i := 0; i < s.Len(); i++ {
		f, err := s.Frame(i)
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if f.Rows != 5 || f.Cols != 7 {
			t.Errorf("frame %d: expected 5x7, got %dx%d", i, f.Rows, f.Cols)
		}
	}
}

func TestResizeBounds(t *testing.T) {
	s, _ := New(4, 4)
	if err := s.Resize(0, 4); !errors.Is(err, ErrShapeBounds) {
		t.Errorf("expected ErrShapeBounds, got %v", err)
	}
	if err := s.Resize(4, 100); !errors.Is(err, ErrShapeBounds) {
		t.Errorf("expected ErrShapeBounds, got %v", err)
	}
	if s.Rows() != 4 || s.Cols() != 4 {
		t.Error("failed resize must not change the shape")
	}
}

func TestAddFrameInsertsAfterCursor(t *testing.T) {
	s, _ := New(4, 4)
	s.ToggleCell(0, 0)
	s.AddFrame()
	if s.Len() != 2 {
		t.Fatalf("expected 2 frames, got %d", s.Len())
	}
	if s.Cursor() != 1 {
		t.Errorf("expected cursor 1, got %d", s.Cursor())
	}
	if s.Current().Ink() != 0 {
		t.Error("new frame should be blank")
	}
}

func TestCopyFrameIndependence(t *testing.T) {
	s, _ := New(4, 4)
	s.ToggleCell(2, 2)
	s.CopyFrame()

	orig, _ := s.Frame(0)
	dup, _ := s.Frame(1)
	if !orig.Equal(dup) {
		t.Fatal("copy should match the source at the moment of copy")
	}

	// Cursor sits on the duplicate; editing it must not leak back.
	s.ToggleCell(0, 0)
	if orig.At(0, 0) != 0 {
		t.Error("editing the copy mutated the source")
	}
	s.SelectFrame(0)
	s.ToggleCell(1, 1)
	if dup.At(1, 1) != 0 {
		t.Error("editing the source mutated the copy")
	}
}

func TestDeleteFrame(t *testing.T) {
	s, _ := New(4, 4)
	s.AddFrame()
	s.AddFrame()
	s.SelectFrame(1)
	if err := s.DeleteFrame(); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("expected 2 frames, got %d", s.Len())
	}
	if s.Cursor() != 0 {
		t.Errorf("expected cursor 0, got %d", s.Cursor())
	}
}

func TestDeleteLastFrameRefused(t *testing.T) {
	s, _ := New(4, 4)
	s.ToggleCell(1, 1)
	err := s.DeleteFrame()
	if !errors.Is(err, ErrLastFrame) {
		t.Fatalf("expected ErrLastFrame, got %v", err)
	}
	if s.Len() != 1 {
		t.Error("refused delete must not change the frame count")
	}
	if s.Current().At(1, 1) != 1 {
		t.Error("refused delete must not change frame contents")
	}
}

func TestSelectFrameBounds(t *testing.T) {
	s, _ := New(4, 4)
	s.AddFrame()
	if err := s.SelectFrame(2); !errors.Is(err, ErrFrameIndex) {
		t.Errorf("expected ErrFrameIndex, got %v", err)
	}
	if err := s.SelectFrame(-1); !errors.Is(err, ErrFrameIndex) {
		t.Errorf("expected ErrFrameIndex, got %v", err)
	}
	if err := s.SelectFrame(0); err != nil {
		t.Errorf("valid select failed: %v", err)
	}
}

func TestAdvanceWraps(t *testing.T) {
	s, _ := New(4, 4)
	s.AddFrame()
	s.AddFrame()
	s.SelectFrame(2)
	s.Advance()
	if s.Cursor() != 0 {
		t.Errorf("expected wraparound to 0, got %d", s.Cursor())
	}
}

func TestPlayingDisablesEditing(t *testing.T) {
	s, _ := New(4, 4)
	s.AddFrame()
	s.Play()
	if !s.Playing() {
		t.Fatal("expected playing")
	}

	s.ToggleCell(0, 0)
	s.SetCell(0, 1, 1)
	s.AddFrame()
	s.CopyFrame()
	s.DeleteFrame()
	s.Resize(2, 2)
	s.SelectFrame(0)

	if s.Len() != 2 {
		t.Errorf("structural op ran while playing: %d frames", s.Len())
	}
	if s.Rows() != 4 || s.Cols() != 4 {
		t.Error("resize ran while playing")
	}
	if s.Cursor() != 1 {
		t.Errorf("select ran while playing: cursor %d", s.Cursor())
	}
	f, _ := s.Frame(1)
	if f.Ink() != 0 {
		t.Error("edit ran while playing")
	}

	// Advance is the playback step and stays allowed.
	s.Advance()
	if s.Cursor() != 0 {
		t.Errorf("advance blocked while playing: cursor %d", s.Cursor())
	}

	s.Stop()
	s.Stop() // idempotent
	if s.Playing() {
		t.Error("expected stopped")
	}
}

func TestSetIntervalClamped(t *testing.T) {
	s, _ := New(4, 4)
	s.SetInterval(time.Millisecond)
	if s.Interval() < 20*time.Millisecond {
		t.Errorf("interval not clamped up: %v", s.Interval())
	}
	s.SetInterval(time.Minute)
	if s.Interval() > 5*time.Second {
		t.Errorf("interval not clamped down: %v", s.Interval())
	}
}

func TestReplace(t *testing.T) {
	s, _ := New(8, 8)
	s.ToggleCell(0, 0)
	s.AddFrame()
	s.SelectFrame(1)

	f0 := NewFrame(3, 3)
	f1 := NewFrame(3, 3)
	f1.Set(1, 1, 1)
	if err := s.Replace([]*Frame{f0, f1}); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if s.Len() != 2 || s.Rows() != 3 || s.Cols() != 3 {
		t.Errorf("expected 2 frames of 3x3, got %d of %dx%d", s.Len(), s.Rows(), s.Cols())
	}
	if s.Cursor() != 0 {
		t.Errorf("expected cursor reset to 0, got %d", s.Cursor())
	}
	got, _ := s.Frame(1)
	if got.At(1, 1) != 1 {
		t.Error("loaded frame contents lost")
	}
}

func TestReplaceRejectsBadInput(t *testing.T) {
	s, _ := New(4, 4)
	s.ToggleCell(2, 2)

	tests := []struct {
		name   string
		frames []*Frame
		want   error
	}{
		{"empty", nil, ErrNoFrames},
		{"mixed shapes", []*Frame{NewFrame(3, 3), NewFrame(4, 4)}, ErrShapeMismatch},
		{"oversized", []*Frame{NewFrame(65, 3)}, ErrShapeBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.Replace(tt.frames); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	// All-or-nothing: the previous animation survives every failure.
	if s.Len() != 1 || s.Rows() != 4 || s.Cols() != 4 {
		t.Error("failed replace altered the store")
	}
	if s.Current().At(2, 2) != 1 {
		t.Error("failed replace altered frame contents")
	}
}

func TestStatus(t *testing.T) {
	s, _ := New(8, 8)
	s.AddFrame()
	if got, want := s.Status(), "frame 2/2 | grid 8x8"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSnapshotDoesNotAlias(t *testing.T) {
	s, _ := New(4, 4)
	snap := s.Snapshot()
	s.ToggleCell(0, 0)
	if snap[0].At(0, 0) != 0 {
		t.Error("snapshot aliases live frame data")
	}
}
