package form_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/otdb/otdb-terminal/pkg/form"
)

func TestParseMarkup(t *testing.T) {
	m, err := form.ParseMarkup(map[string]string{
		"id":         "mods-input-1",
		"type":       "text-dropdown",
		"label":      "Mods",
		"options":    "NM,HD,HR",
		"multi":      "",
		"required":   "",
		"max-length": "10",
		"innerStyle": "width: 200px",
	})
	require.NoError(t, err)

	assert.Equal(t, "mods-input-1", m.ID)
	assert.Equal(t, form.KindDropdown, m.Type)
	assert.Equal(t, form.Options{"NM", "HD", "HR"}, m.Options)
	assert.True(t, m.Multi)
	assert.True(t, m.Required)
	assert.False(t, m.Textarea)
	assert.Equal(t, 10, m.MaxLength)
	assert.Equal(t, "width: 200px", m.InnerStyle)
}

func TestParseMarkup_Errors(t *testing.T) {
	tests := []struct {
		name  string
		attrs map[string]string
		want  error
	}{
		{"missing id", map[string]string{"type": "text"}, form.ErrMissingID},
		{"empty id", map[string]string{"id": "", "type": "text"}, form.ErrMissingID},
		{"bad max length", map[string]string{"id": "a", "max-length": "ten"}, form.ErrInvalidAttribute},
		{"negative rows", map[string]string{"id": "a", "rows": "-1"}, form.ErrInvalidAttribute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := form.ParseMarkup(tt.attrs)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))

			var cerr *form.ConstructionError
			assert.True(t, errors.As(err, &cerr))
		})
	}
}

func TestOptions_UnmarshalYAML(t *testing.T) {
	var fromString struct {
		Options form.Options `yaml:"options"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("options: NM,HD,HR\n"), &fromString))
	assert.Equal(t, form.Options{"NM", "HD", "HR"}, fromString.Options)

	var fromList struct {
		Options form.Options `yaml:"options"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("options:\n  - Referee\n  - Streamer\n"), &fromList))
	assert.Equal(t, form.Options{"Referee", "Streamer"}, fromList.Options)

	var bad struct {
		Options form.Options `yaml:"options"`
	}
	assert.Error(t, yaml.Unmarshal([]byte("options:\n  a: b\n"), &bad))
}

func TestMarkup_InlineYAML(t *testing.T) {
	src := `
- id: name-input
  type: text
  label: Name
  required: true
  max-length: 64
- id: submit
  type: button
  label: Submit
`
	var markup []form.Markup
	require.NoError(t, yaml.Unmarshal([]byte(src), &markup))
	require.Len(t, markup, 2)
	assert.Equal(t, "name-input", markup[0].ID)
	assert.Equal(t, form.KindText, markup[0].Type)
	assert.True(t, markup[0].Required)
	assert.Equal(t, 64, markup[0].MaxLength)
	assert.Equal(t, form.KindButton, markup[1].Type)
}
