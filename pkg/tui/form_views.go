package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/otdb/otdb-terminal/pkg/form"
)

const helpText = "tab/shift+tab move • ↑/↓ highlight • enter pick/next • backspace remove chip • ctrl+y copy • esc cancel"

// chromeHeight is the number of lines taken by the title and footer.
func (m *FormModel) chromeHeight() int {
	h := 4 // title, blank line, button row, status
	if m.showHelp {
		h++
	}
	return h
}

func (m *FormModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	body, focusLine := m.renderGroup(m.manager.Root(), 0)
	m.viewport.SetContent(body)
	if focusLine >= 0 {
		if focusLine < m.viewport.YOffset {
			m.viewport.SetYOffset(focusLine)
		} else if focusLine >= m.viewport.YOffset+m.viewport.Height {
			m.viewport.SetYOffset(focusLine - m.viewport.Height + 1)
		}
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderGroup lays out g and returns the line where the focused field
// starts, or -1 when it is not inside g.
func (m *FormModel) renderGroup(g *form.Group, depth int) (string, int) {
	var blocks []string
	focusLine := -1
	line := 0

	if depth > 0 && !g.Horizontal && g.Name != "" {
		header := SectionHeaderStyle.Render(g.Name)
		blocks = append(blocks, header)
		line += lipgloss.Height(header)
	}

	for _, node := range g.Nodes() {
		var block string
		at := -1
		switch {
		case node.Group != nil:
			block, at = m.renderGroup(node.Group, depth+1)
		case node.Input == form.Input(m.manager.Submit()):
			continue
		default:
			f := m.fieldFor(node.Input)
			if f == nil {
				continue
			}
			block = m.renderField(f)
			if f == m.focused() {
				at = 0
			}
		}

		if g.Horizontal {
			blocks = append(blocks, block)
			if at >= 0 {
				focusLine = at
			}
			continue
		}

		if at >= 0 {
			focusLine = line + at
		}
		blocks = append(blocks, block)
		line += lipgloss.Height(block)
	}

	if g.Horizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, blocks...), focusLine
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...), focusLine
}

func (m *FormModel) fieldFor(in form.Input) *field {
	for _, f := range m.fields {
		if f.input == in {
			return f
		}
	}
	return nil
}

func (m *FormModel) renderField(f *field) string {
	if f.button != nil {
		return m.renderButton(f)
	}

	var b strings.Builder
	b.WriteString(m.renderLabel(f))
	b.WriteString("\n")

	var editor strings.Builder
	if f.dropdown != nil && f.dropdown.Multi() {
		for _, chip := range f.dropdown.Chips() {
			editor.WriteString(ChipStyle.Render(chip.Label() + " ×"))
		}
	}
	if f.multiline {
		editor.WriteString(f.area.View())
	} else {
		editor.WriteString(f.line.View())
	}

	border := InactiveBorderStyle
	switch {
	case f.text.Invalid():
		border = InvalidBorderStyle
	case f.text.Focused():
		border = ActiveBorderStyle
	}
	width := max(f.text.Width(), 20)
	b.WriteString(border.Width(width).Render(editor.String()))

	if f.dropdown != nil {
		if list := m.renderItems(f); list != "" {
			b.WriteString("\n")
			b.WriteString(list)
		}
	}
	if f.search != nil {
		if status := m.renderSearchStatus(f, width); status != "" {
			b.WriteString("\n")
			b.WriteString(status)
		}
	}

	return FieldPaddingStyle.Render(b.String())
}

func (m *FormModel) renderLabel(f *field) string {
	style := LabelStyle
	if f.text.LabelActive() {
		style = ActiveLabelStyle
	}
	label := style.Render(f.text.Label())
	if f.text.Required() {
		label += RequiredMarkStyle.Render(" *")
	}
	if n := f.text.MaxLength(); n > 0 {
		label += LabelStyle.Render(fmt.Sprintf(" (%d/%d)", len([]rune(f.text.Value())), n))
	}
	return label
}

// renderItems lists the visible items of an open dropdown, keeping the
// highlighted one in view.
func (m *FormModel) renderItems(f *field) string {
	if !f.dropdown.Open() {
		return ""
	}
	items := f.dropdown.VisibleItems()
	if len(items) == 0 {
		return ""
	}

	offset := f.dropdown.ScrollOffset(m.rows)
	end := min(offset+m.rows, len(items))
	highlight := f.dropdown.HighlightIndex()

	var lines []string
	for i := offset; i < end; i++ {
		label := items[i].Label()
		if i == highlight {
			lines = append(lines, SelectedStyle.Render("▸ "+label))
		} else {
			lines = append(lines, NormalStyle.Render("  "+label))
		}
	}
	if end < len(items) {
		lines = append(lines, LabelStyle.Render(fmt.Sprintf("  … %d more", len(items)-end)))
	}
	return strings.Join(lines, "\n")
}

func (m *FormModel) renderSearchStatus(f *field, width int) string {
	switch {
	case f.search.Searching():
		return m.spinner.View() + LabelStyle.Render(" searching "+strings.TrimSpace(f.text.Value()))
	case f.search.Notice() != "":
		return NoticeStyle.Render(wordwrap.String(f.search.Notice(), width))
	}
	return ""
}

func (m *FormModel) renderButton(f *field) string {
	label := f.button.Label()
	if f.button.Square() {
		label = "[" + label + "]"
	}

	style := ButtonStyle
	switch {
	case !f.button.Enabled():
		style = DisabledButtonStyle
	case f.button.Danger():
		style = DangerButtonStyle
	}
	if f == m.focused() {
		style = style.Bold(true).Underline(true)
	}
	return FieldPaddingStyle.Render(style.Render(label))
}

func (m *FormModel) renderFooter() string {
	var lines []string

	if submit := m.manager.Submit(); submit != nil {
		if f := m.fieldFor(submit); f != nil {
			lines = append(lines, m.renderButton(f))
		}
	} else {
		lines = append(lines, "")
	}

	if m.statusMsg != "" {
		lines = append(lines, StatusStyle.Render(m.statusMsg))
	} else {
		lines = append(lines, "")
	}

	if m.showHelp {
		lines = append(lines, HelpStyle.Render(wordwrap.String(helpText, max(m.width-2, 20))))
	}
	return strings.Join(lines, "\n")
}
