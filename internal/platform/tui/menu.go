package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-runner/internal/modes"
)

// PickerModel is the embedded mode-selection overlay. It is not a standalone
// Bubble Tea program; the session model routes keys to it while it is open.
type PickerModel struct {
	items  []modes.Mode
	best   map[string]int
	cursor int
	width  int
	height int
}

// NewPicker creates a picker over the registered mode catalog, with the
// cursor on the currently active mode.
func NewPicker(activeID string, best map[string]int, width, height int) PickerModel {
	items := modes.List()

	cursor := 0
	for i, m := range items {
		if m.ID == activeID {
			cursor = i
			break
		}
	}

	return PickerModel{
		items:  items,
		best:   best,
		cursor: cursor,
		width:  width,
		height: height,
	}
}

// MoveUp moves the cursor one row up, stopping at the top.
func (p *PickerModel) MoveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// MoveDown moves the cursor one row down, stopping at the bottom.
func (p *PickerModel) MoveDown() {
	if p.cursor < len(p.items)-1 {
		p.cursor++
	}
}

// Resize updates the picker layout bounds.
func (p *PickerModel) Resize(width, height int) {
	p.width = width
	p.height = height
}

// Selected returns the mode id under the cursor.
func (p PickerModel) Selected() string {
	if len(p.items) == 0 {
		return ""
	}
	return p.items[p.cursor].ID
}

// View renders the picker.
func (p PickerModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  M O D E S  ", p.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick your run", p.width))
	b.WriteString("\n\n")

	for i, m := range p.items {
		cursor := "  "
		if i == p.cursor {
			cursor = "> "
		}

		bestStr := ""
		if best := p.best[m.ID]; best > 0 {
			bestStr = fmt.Sprintf("  [best %d]", best)
		}

		line := fmt.Sprintf("%s%-8s %c  %s%s", cursor, m.Name, m.Glyph, m.Hint, bestStr)
		b.WriteString(centerText(line, p.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit"
	b.WriteString(centerText(controls, p.width))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
