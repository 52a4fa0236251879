package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otdb/otdb-terminal/pkg/form"
	"github.com/otdb/otdb-terminal/pkg/testhelpers"
)

func TestTable_RulesFollowWidestCell(t *testing.T) {
	table := NewTable("FIELD", "VALUE")
	table.Row("name-input", "Spring")
	table.Row("mods-input-1")

	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "FIELD         VALUE", strings.TrimRight(lines[0], " "))
	assert.Equal(t, "------------  ------", lines[1])
	assert.Equal(t, "mods-input-1", strings.TrimRight(lines[3], " "))
	assert.Equal(t, 2, table.Len())
}

func TestEncode(t *testing.T) {
	data := []map[string]any{{"id": "name-input", "value": "Spring"}}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, "json", data))
	assert.JSONEq(t, `[{"id": "name-input", "value": "Spring"}]`, buf.String())

	buf.Reset()
	require.NoError(t, Encode(&buf, "yaml", data))
	assert.Contains(t, buf.String(), "value: Spring")

	assert.Error(t, Encode(&buf, "text", data))
	assert.Error(t, Encode(&buf, "xml", data))
}

func newSubmission(t *testing.T) Submission {
	t.Helper()
	m := testhelpers.NewFormBuilder(t).
		With("name-input", form.Attributes{Type: form.KindText, Label: "Name"}).
		Dropdown("mods", true, "HD", "HR").
		Submit().
		Build()
	d, err := form.GetAs[*form.TextDropdown](m, "mods")
	require.NoError(t, err)
	d.Item("HD").Pick()
	d.Item("HR").Pick()

	return NewSubmission("mappool", m, []form.FieldValue{
		{ID: "name-input", Value: "Spring"},
		{ID: "mods", Value: d.Values()},
		{ID: "gone", Value: nil},
	})
}

func TestSubmission_Text(t *testing.T) {
	sub := newSubmission(t)

	var buf bytes.Buffer
	require.NoError(t, sub.Write(&buf, "text"))
	out := buf.String()

	assert.Contains(t, out, "LABEL")
	assert.Regexp(t, `name-input\s+Name\s+Spring`, out)
	assert.Regexp(t, `mods\s+mods\s+HD, HR`, out)
	assert.Regexp(t, `gone\s+-`, out)
}

func TestSubmission_Structured(t *testing.T) {
	sub := newSubmission(t)

	var buf bytes.Buffer
	require.NoError(t, sub.Write(&buf, "json"))
	assert.JSONEq(t, `{
		"form": "mappool",
		"fields": [
			{"id": "name-input", "label": "Name", "value": "Spring"},
			{"id": "mods", "label": "mods", "value": ["HD", "HR"]},
			{"id": "gone", "value": null}
		]
	}`, buf.String())

	out, err := sub.YAML()
	require.NoError(t, err)
	assert.Contains(t, out, "form: mappool")
	assert.Contains(t, out, "label: Name")
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "-", FormatValue(nil))
	assert.Equal(t, "HD, HR", FormatValue([]string{"HD", "HR"}))
	assert.Equal(t, "2, 3", FormatValue([]any{2, 3}))
	assert.Equal(t, "Spring", FormatValue("Spring"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "a very...", Truncate("a very long label", 9))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
	assert.Equal(t, "ほげ...", Truncate("ほげほげほげ", 5))
}
