package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/otdb/otdb-terminal/pkg/form"
)

// field pairs a form input with the bubbles editor that holds its text.
// Buttons have no editor.
type field struct {
	input    form.Input
	text     *form.TextInput
	dropdown *form.TextDropdown
	search   *form.TextSearch
	button   *form.TextButton

	line      textinput.Model
	area      textarea.Model
	multiline bool
}

type focusable interface {
	Focus()
	Blur()
}

func newField(in form.Input) *field {
	f := &field{input: in}

	switch v := in.(type) {
	case *form.TextButton:
		f.button = v
		return f
	case *form.TextSearch:
		f.search = v
		f.dropdown = v.TextDropdown
		f.text = v.TextInput
	case *form.TextDropdown:
		f.dropdown = v
		f.text = v.TextInput
	case *form.TextInput:
		f.text = v
	}

	if f.text == nil {
		return f
	}

	if multi, rows := f.text.Textarea(); multi {
		f.multiline = true
		f.area = newArea(rows)
	} else {
		f.line = newLine()
	}
	f.syncEditor()
	return f
}

func newLine() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0 // over-long text is flagged invalid, not truncated
	ti.Width = 40
	return ti
}

func newArea(rows int) textarea.Model {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.SetWidth(40)
	ta.SetHeight(rows)
	return ta
}

func (f *field) editorValue() string {
	if f.multiline {
		return f.area.Value()
	}
	return f.line.Value()
}

// syncEditor copies the input's value into the editor when the form
// changed it, e.g. after a pick.
func (f *field) syncEditor() {
	if f.text == nil || f.editorValue() == f.text.Value() {
		return
	}
	if f.multiline {
		f.area.SetValue(f.text.Value())
		f.area.CursorEnd()
		return
	}
	f.line.SetValue(f.text.Value())
	f.line.CursorEnd()
}

func (f *field) focus() tea.Cmd {
	if in, ok := f.input.(focusable); ok {
		in.Focus()
	}
	if f.text == nil {
		return nil
	}
	if f.multiline {
		return f.area.Focus()
	}
	return f.line.Focus()
}

func (f *field) blur() {
	if in, ok := f.input.(focusable); ok {
		in.Blur()
	}
	if f.text == nil {
		return
	}
	if f.multiline {
		f.area.Blur()
		return
	}
	f.line.Blur()
}

// reopen gives form focus back to a dropdown that closed itself on pick.
func (f *field) reopen() {
	if f.text != nil && !f.text.Focused() {
		if in, ok := f.input.(focusable); ok {
			in.Focus()
		}
	}
}

// update feeds a key to the editor and reports the new text as an edit.
func (f *field) update(msg tea.KeyMsg) tea.Cmd {
	if f.text == nil {
		return nil
	}
	f.reopen()

	var cmd tea.Cmd
	if f.multiline {
		f.area, cmd = f.area.Update(msg)
	} else {
		f.line, cmd = f.line.Update(msg)
	}

	if v := f.editorValue(); v != f.text.Value() {
		f.text.Edit(v)
	}
	f.syncEditor()
	return cmd
}

func (f *field) resize(width int) {
	if r, ok := f.input.(interface{ Resize(int) }); ok {
		r.Resize(width)
	}
	if f.text == nil {
		return
	}
	inner := width - 4
	if inner < 10 {
		inner = 10
	}
	if f.multiline {
		f.area.SetWidth(inner)
		return
	}
	f.line.Width = inner
}

// unpickLast removes the newest chip; it is what backspace does on an
// empty multi dropdown.
func (f *field) unpickLast() bool {
	if f.dropdown == nil || !f.dropdown.Multi() || f.text.Value() != "" {
		return false
	}
	chips := f.dropdown.Chips()
	if len(chips) == 0 {
		return false
	}
	f.dropdown.Unpick(chips[len(chips)-1])
	return true
}
