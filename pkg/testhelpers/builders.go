package testhelpers

import (
	"testing"

	"github.com/otdb/otdb-terminal/pkg/form"
)

// FormBuilder assembles markup for tests.
type FormBuilder struct {
	t      *testing.T
	markup []form.Markup
	opts   []form.ManagerOption
}

// NewFormBuilder creates an empty builder.
func NewFormBuilder(t *testing.T) *FormBuilder {
	t.Helper()
	return &FormBuilder{t: t}
}

// Text adds a text input.
func (b *FormBuilder) Text(id string, required bool, validation string) *FormBuilder {
	return b.With(id, form.Attributes{Type: form.KindText, Label: id, Required: required, Validation: validation})
}

// Dropdown adds a static dropdown.
func (b *FormBuilder) Dropdown(id string, multi bool, options ...string) *FormBuilder {
	return b.With(id, form.Attributes{Type: form.KindDropdown, Label: id, Multi: multi, Options: options})
}

// Search adds a search input.
func (b *FormBuilder) Search(id string, multi bool) *FormBuilder {
	return b.With(id, form.Attributes{Type: form.KindSearch, Label: id, Multi: multi})
}

// Submit adds the submit button.
func (b *FormBuilder) Submit() *FormBuilder {
	return b.With(form.SubmitID, form.Attributes{Type: form.KindButton, Label: "Submit"})
}

// With adds an input with arbitrary attributes.
func (b *FormBuilder) With(id string, attrs form.Attributes) *FormBuilder {
	b.markup = append(b.markup, form.Markup{ID: id, Attributes: attrs})
	return b
}

// Options adds manager options.
func (b *FormBuilder) Options(opts ...form.ManagerOption) *FormBuilder {
	b.opts = append(b.opts, opts...)
	return b
}

// Markup returns the collected markup.
func (b *FormBuilder) Markup() []form.Markup {
	return b.markup
}

// Build sets the form up, failing the test on error.
func (b *FormBuilder) Build() *form.Manager {
	b.t.Helper()
	m, err := form.Setup(b.markup, b.opts...)
	if err != nil {
		b.t.Fatalf("form setup failed: %v", err)
	}
	return m
}
