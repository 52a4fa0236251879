package form

import (
	"strings"
	"unicode/utf8"
)

// textHooks let the dropdown kinds extend the edit path of TextInput.
type textHooks struct {
	// before runs after the text changed and before validity is computed.
	before func()
	// after runs once the manager has been notified, on edits only.
	after func()
	// empty overrides the "nothing entered" test used for the label.
	empty func() bool
}

// TextInput is a free-text field with inline validation.
type TextInput struct {
	base

	value       string
	required    bool
	maxLength   int
	validate    ValidatorFunc
	lastValid   bool
	textarea    bool
	rows        int
	focused     bool
	labelActive bool

	hooks textHooks
}

func newTextInput(id string, kind Kind, attrs Attributes, validate ValidatorFunc) *TextInput {
	t := &TextInput{
		base: base{
			id:         id,
			kind:       kind,
			label:      attrs.Label,
			innerStyle: attrs.InnerStyle,
		},
		required:  attrs.Required,
		maxLength: attrs.MaxLength,
		validate:  validate,
		lastValid: true,
		textarea:  attrs.Textarea,
		rows:      attrs.Rows,
	}
	if t.textarea && t.rows == 0 {
		t.rows = DefaultTextareaRows
	}
	t.self = t
	return t
}

func buildTextInput(m Markup) (Input, error) {
	validate, err := ValidatorFor(m.Validation)
	if err != nil {
		return nil, constructionErr(m.ID, ErrUnknownValidation, m.Validation)
	}
	return newTextInput(m.ID, KindText, m.Attributes, validate), nil
}

// Value returns the current text.
func (t *TextInput) Value() string {
	return t.value
}

// SetValue replaces the text programmatically. It goes through the same
// path as an edit, so populating a form behaves exactly like typing.
func (t *TextInput) SetValue(value string) {
	t.value = value
	if !t.isEmpty() {
		t.labelActive = true
	}
	t.change()
}

// Edit applies text typed by the user.
func (t *TextInput) Edit(value string) {
	if value == t.value {
		return
	}
	t.value = value
	t.change()
}

func (t *TextInput) change() {
	t.recompute()
	if t.hooks.after != nil {
		t.hooks.after()
	}
}

// recompute refreshes inline validity and tells the manager.
func (t *TextInput) recompute() {
	if t.hooks.before != nil {
		t.hooks.before()
	}
	t.lastValid = t.inlineValid()
	t.notify()
}

// An empty value is always inline-valid so that an untouched required
// field is not flagged before the first edit.
func (t *TextInput) inlineValid() bool {
	if t.value == "" {
		return true
	}
	if t.maxLength > 0 && utf8.RuneCountInString(t.value) > t.maxLength {
		return false
	}
	return t.validate == nil || t.validate(t.value)
}

// Invalid reports whether the field should be marked as invalid.
func (t *TextInput) Invalid() bool {
	return !t.lastValid
}

// CheckValueValidity implements Input.
func (t *TextInput) CheckValueValidity() bool {
	return t.lastValid && (!t.required || strings.TrimSpace(t.value) != "")
}

func (t *TextInput) isEmpty() bool {
	if t.hooks.empty != nil {
		return t.hooks.empty()
	}
	return t.value == ""
}

// Required reports whether the field must be filled in.
func (t *TextInput) Required() bool { return t.required }

// MaxLength returns the character limit, 0 when unlimited.
func (t *TextInput) MaxLength() int { return t.maxLength }

// Textarea reports whether the field is multi-line, and its row count.
func (t *TextInput) Textarea() (bool, int) { return t.textarea, t.rows }

// Focused reports whether the field has focus.
func (t *TextInput) Focused() bool { return t.focused }

// LabelActive reports whether the label is raised above the text.
func (t *TextInput) LabelActive() bool { return t.labelActive }

// Focus puts focus on the field.
func (t *TextInput) Focus() {
	t.focused = true
	t.labelActive = true
}

// Blur removes focus from the field.
func (t *TextInput) Blur() {
	t.focused = false
	if t.isEmpty() {
		t.labelActive = false
	}
}
