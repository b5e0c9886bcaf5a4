package storage

import (
	"testing"

	"github.com/san-kum/spritelab/internal/anim"
)

func testFrames(t *testing.T) []*anim.Frame {
	t.Helper()
	f0 := anim.NewFrame(4, 4)
	f1 := anim.NewFrame(4, 4)
	f1.Set(2, 3, 1)
	return []*anim.Frame{f0, f1}
}

func TestSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if err := st.Save("walker", testFrames(t), 150); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	frames, meta, err := st.Load("walker")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Name != "walker" || meta.Frames != 2 || meta.Rows != 4 || meta.Cols != 4 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.IntervalMS != 150 {
		t.Errorf("expected interval 150, got %d", meta.IntervalMS)
	}
	if len(frames) != 2 || frames[1].At(2, 3) != 1 {
		t.Error("frame contents lost")
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty library, got %d entries", len(runs))
	}

	st.Save("a", testFrames(t), 200)
	st.Save("b", testFrames(t), 200)

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 entries, got %d", len(runs))
	}
}

func TestListMissingDir(t *testing.T) {
	st := New("/nonexistent/spritelab-test")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list of missing dir should not error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no entries, got %d", len(runs))
	}
}

func TestSaveRejectsBadNames(t *testing.T) {
	st := New(t.TempDir())
	st.Init()

	for _, name := range []string{"", "a/b", "../escape"} {
		if err := st.Save(name, testFrames(t), 200); err == nil {
			t.Errorf("expected error for name %q", name)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	st := New(t.TempDir())
	st.Init()
	if _, _, err := st.Load("nope"); err == nil {
		t.Error("expected error for missing entry")
	}
}
