// Package tui implements the interactive sprite editor as a Bubble Tea
// program. It is a thin shell over the animation store: every user
// intent (paint, frame ops, playback, resize, export, load) becomes a
// store call, and the view only reads store state back.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/spritelab/internal/anim"
	"github.com/san-kum/spritelab/internal/config"
	"github.com/san-kum/spritelab/internal/npy"
	"github.com/san-kum/spritelab/internal/paint"
	"github.com/san-kum/spritelab/internal/render"
	"github.com/san-kum/spritelab/internal/storage"
)

// TickMsg drives playback; seq guards against stale ticks from a
// previous play/stop cycle.
type TickMsg struct {
	seq int
	at  time.Time
}

type promptKind int

const (
	promptNone promptKind = iota
	promptResize
	promptExportAll
	promptExportFrame
	promptLoad
	promptSave
)

var promptLabels = map[promptKind]string{
	promptResize:      "resize (rows cols)",
	promptExportAll:   "export animation to",
	promptExportFrame: "export frame to",
	promptLoad:        "load .npy from",
	promptSave:        "save to library as",
}

type thumbEntry struct {
	gen   uint64
	lines []string
}

// Model is the editor application state.
type Model struct {
	store   *anim.Store
	painter *paint.Machine
	cfg     *config.Config

	theme Theme
	st    styles

	prompt  promptKind
	editBuf string

	status    string
	statusErr bool

	thumbs  map[int]thumbEntry
	tickSeq int

	width, height int
}

// NewModel builds an editor over store. The store may come fresh from
// config or pre-loaded from a file.
func NewModel(store *anim.Store, cfg *config.Config) Model {
	theme := ThemeByName(cfg.Theme)
	return Model{
		store:   store,
		painter: paint.NewMachine(store),
		cfg:     cfg,
		theme:   theme,
		st:      newStyles(theme),
		thumbs:  make(map[int]thumbEntry),
		width:   80,
		height:  24,
	}
}

func (m Model) Init() tea.Cmd {
	if m.store.Playing() {
		return m.tick()
	}
	return nil
}

func (m Model) tick() tea.Cmd {
	seq := m.tickSeq
	return tea.Tick(m.store.Interval(), func(t time.Time) tea.Msg {
		return TickMsg{seq: seq, at: t}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case TickMsg:
		if msg.seq != m.tickSeq || !m.store.Playing() {
			return m, nil
		}
		m.store.Advance()
		return m, m.tick()
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompt != promptNone {
		return m.promptKey(msg), nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		if m.store.Playing() {
			m.store.Stop()
			m.setInfo("stopped")
			return m, nil
		}
		m.painter.Release()
		m.store.Play()
		m.tickSeq++
		m.setInfo("playing")
		return m, m.tick()
	case "t":
		m.theme = NextTheme(m.theme)
		m.st = newStyles(m.theme)
		return m, nil
	}

	// Everything below edits or restructures; the store refuses these
	// while playing, so don't pretend they did anything.
	if m.store.Playing() {
		return m, nil
	}

	switch msg.String() {
	case "a":
		m.store.AddFrame()
		m.invalidateThumbs()
		m.setInfo("added frame")
	case "c":
		m.store.CopyFrame()
		m.invalidateThumbs()
		m.setInfo("copied frame")
	case "d":
		if err := m.store.DeleteFrame(); err != nil {
			m.setInfo(err.Error())
		} else {
			m.invalidateThumbs()
			m.setInfo("deleted frame")
		}
	case "left", "h":
		if m.store.Cursor() > 0 {
			m.store.SelectFrame(m.store.Cursor() - 1)
		}
	case "right", "l":
		if m.store.Cursor() < m.store.Len()-1 {
			m.store.SelectFrame(m.store.Cursor() + 1)
		}
	case "+", "=":
		m.store.SetInterval(m.store.Interval() - 20*time.Millisecond)
		m.setInfo(fmt.Sprintf("interval %v", m.store.Interval()))
	case "-", "_":
		m.store.SetInterval(m.store.Interval() + 20*time.Millisecond)
		m.setInfo(fmt.Sprintf("interval %v", m.store.Interval()))
	case "r":
		m.openPrompt(promptResize, fmt.Sprintf("%d %d", m.store.Rows(), m.store.Cols()))
	case "e":
		m.openPrompt(promptExportAll, "animation.npy")
	case "f":
		m.openPrompt(promptExportFrame, "frame.npy")
	case "o":
		m.openPrompt(promptLoad, "")
	case "s":
		m.openPrompt(promptSave, "")
	}
	return m, nil
}

func (m *Model) openPrompt(kind promptKind, initial string) {
	m.prompt = kind
	m.editBuf = initial
}

func (m Model) promptKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.prompt, m.editBuf = promptNone, ""
	case "enter":
		m.confirmPrompt()
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		s := msg.String()
		if len(s) == 1 && s[0] >= ' ' && s[0] < 0x7f {
			m.editBuf += s
		}
	}
	return m
}

func (m *Model) confirmPrompt() {
	kind, input := m.prompt, strings.TrimSpace(m.editBuf)
	m.prompt, m.editBuf = promptNone, ""

	switch kind {
	case promptResize:
		fields := strings.Fields(input)
		if len(fields) != 2 {
			m.setError("resize wants two numbers: rows cols")
			return
		}
		rows, err1 := strconv.Atoi(fields[0])
		cols, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			m.setError("resize wants two numbers: rows cols")
			return
		}
		if err := m.store.Resize(rows, cols); err != nil {
			m.setError(err.Error())
			return
		}
		m.setInfo(fmt.Sprintf("resized to %dx%d", rows, cols))

	case promptExportAll:
		if input == "" {
			return
		}
		if err := npy.SaveAnimation(input, m.store.Snapshot()); err != nil {
			m.setError(err.Error())
			return
		}
		m.setInfo("saved animation to " + input)

	case promptExportFrame:
		if input == "" {
			return
		}
		if err := npy.SaveFrame(input, m.store.Current().Clone()); err != nil {
			m.setError(err.Error())
			return
		}
		m.setInfo("saved frame to " + input)

	case promptLoad:
		if input == "" {
			return
		}
		frames, err := npy.LoadAnimation(input)
		if err != nil {
			m.setError(err.Error())
			return
		}
		if err := m.store.Replace(frames); err != nil {
			m.setError(err.Error())
			return
		}
		m.invalidateThumbs()
		m.setInfo(fmt.Sprintf("loaded %d frame(s) from %s", len(frames), input))

	case promptSave:
		if input == "" {
			return
		}
		lib := storage.New(m.cfg.DataDir)
		if err := lib.Init(); err != nil {
			m.setError(err.Error())
			return
		}
		interval := int(m.store.Interval() / time.Millisecond)
		if err := lib.Save(input, m.store.Snapshot(), interval); err != nil {
			m.setError(err.Error())
			return
		}
		m.setInfo("saved to library as " + input)
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	switch msg.Action {
	case tea.MouseActionRelease:
		m.painter.Release()
		return m
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		if idx, ok := m.thumbAt(msg.X, msg.Y); ok {
			if err := m.store.SelectFrame(idx); err == nil {
				m.setInfo(m.store.Status())
			}
			return m
		}
		if row, col, ok := m.cellAt(msg.X, msg.Y); ok {
			m.painter.Press(row, col)
		}
		return m
	case tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		if row, col, ok := m.cellAt(msg.X, msg.Y); ok {
			m.painter.Enter(row, col)
		}
		return m
	}
	return m
}

func (m *Model) setInfo(s string)  { m.status, m.statusErr = s, false }
func (m *Model) setError(s string) { m.status, m.statusErr = s, true }

// invalidateThumbs drops the whole preview cache. Needed after
// structural operations, where frame indices shift under the cache keys.
func (m *Model) invalidateThumbs() {
	for k := range m.thumbs {
		delete(m.thumbs, k)
	}
}

// thumbnail returns the cached half-block preview for frame idx,
// re-rendering when the frame's generation moved past the cache.
func (m Model) thumbnail(idx int) []string {
	gen := m.store.Generation(idx)
	if e, ok := m.thumbs[idx]; ok && e.gen == gen {
		return e.lines
	}
	f, err := m.store.Frame(idx)
	if err != nil {
		return nil
	}
	lines := render.Thumbnail(f)
	m.thumbs[idx] = thumbEntry{gen: gen, lines: lines}
	return lines
}

// Run starts the editor over store with the given config.
func Run(store *anim.Store, cfg *config.Config) error {
	p := tea.NewProgram(NewModel(store, cfg), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
