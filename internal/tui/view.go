package tui

import (
	"fmt"
	"strings"
)

// Fixed layout offsets. The grid has to sit at a knowable position so
// mouse coordinates map back to cells without measuring rendered text.
const (
	thumbTop  = 2
	gridLeft  = 2
	cellWidth = 2
	thumbGap  = 1
)

// thumbRows is the height of one thumbnail in text lines.
func (m Model) thumbRows() int {
	return (m.store.Rows() + 1) / 2
}

// gridTop is the screen line of grid row 0: header, blank, thumbnails,
// label line, blank.
func (m Model) gridTop() int {
	return thumbTop + m.thumbRows() + 2
}

// cellAt maps screen coordinates to a grid cell.
func (m Model) cellAt(x, y int) (row, col int, ok bool) {
	row = y - m.gridTop()
	col = (x - gridLeft) / cellWidth
	if x < gridLeft || row < 0 || row >= m.store.Rows() || col < 0 || col >= m.store.Cols() {
		return 0, 0, false
	}
	return row, col, true
}

// thumbAt maps screen coordinates to a frame index in the thumbnail
// strip.
func (m Model) thumbAt(x, y int) (int, bool) {
	if y < thumbTop || y >= thumbTop+m.thumbRows() {
		return 0, false
	}
	x -= gridLeft
	if x < 0 {
		return 0, false
	}
	stride := m.store.Cols() + thumbGap
	idx := x / stride
	if x%stride >= m.store.Cols() {
		return 0, false // in the gap between thumbnails
	}
	if idx >= m.store.Len() {
		return 0, false
	}
	return idx, true
}

func (m Model) View() string {
	var b strings.Builder

	mode := "editing"
	if m.store.Playing() {
		mode = "playing"
	}
	b.WriteString(m.st.header.Render("SPRITELAB"))
	b.WriteString(m.st.help.Render("  " + mode))
	b.WriteString("\n\n")

	m.renderThumbStrip(&b)
	b.WriteByte('\n')

	m.renderGrid(&b)
	b.WriteByte('\n')

	status := m.st.status.Render(m.store.Status())
	if m.status != "" {
		sty := m.st.info
		if m.statusErr {
			sty = m.st.errMsg
		}
		status += m.st.help.Render("  |  ") + sty.Render(m.status)
	}
	b.WriteString("  " + status + "\n")

	if m.prompt != promptNone {
		b.WriteString("  " + m.st.prompt.Render(promptLabels[m.prompt]+": "+m.editBuf+"_") + "\n")
	} else {
		b.WriteString("  " + m.st.help.Render("paint: click/drag  a add  c copy  d del  h/l frame  space play  r resize  e/f export  o load  s save  t theme  q quit") + "\n")
	}
	return b.String()
}

// renderThumbStrip draws every frame's preview side by side, then a
// line of frame numbers with the current frame highlighted.
func (m Model) renderThumbStrip(b *strings.Builder) {
	rows := m.thumbRows()
	cols := m.store.Cols()

	for line := 0; line < rows; line++ {
		b.WriteString(strings.Repeat(" ", gridLeft))
		for i := 0; i < m.store.Len(); i++ {
			lines := m.thumbnail(i)
			text := ""
			if line < len(lines) {
				text = lines[line]
			}
			// Pad with real spaces so every thumbnail keeps a fixed
			// width and the strip stays mouse-addressable.
			if pad := cols - len([]rune(text)); pad > 0 {
				text += strings.Repeat(" ", pad)
			}
			sty := m.st.thumb
			if i == m.store.Cursor() {
				sty = m.st.thumbSel
			}
			b.WriteString(sty.Render(text))
			b.WriteString(strings.Repeat(" ", thumbGap))
		}
		b.WriteByte('\n')
	}

	b.WriteString(strings.Repeat(" ", gridLeft))
	for i := 0; i < m.store.Len(); i++ {
		label := fmt.Sprintf("%-*d", m.store.Cols()+thumbGap, i+1)
		sty := m.st.label
		if i == m.store.Cursor() {
			sty = m.st.labelSel
		}
		b.WriteString(sty.Render(label))
	}
	b.WriteByte('\n')
}

// renderGrid draws the current frame at two terminal columns per cell.
func (m Model) renderGrid(b *strings.Builder) {
	f := m.store.Current()
	for r := 0; r < f.Rows; r++ {
		b.WriteString(strings.Repeat(" ", gridLeft))
		for c := 0; c < f.Cols; c++ {
			if f.At(r, c) != 0 {
				b.WriteString(m.st.ink.Render("██"))
			} else {
				b.WriteString(m.st.paper.Render("··"))
			}
		}
		b.WriteByte('\n')
	}
}
