package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/otdb/otdb-terminal/pkg/form"
)

// OutputFormat is the value of --output.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// Table collects rows and writes them aligned, each column ruled as wide
// as its widest cell.
type Table struct {
	columns []string
	rows    [][]string
}

// NewTable starts a table with the given headers.
func NewTable(columns ...string) *Table {
	return &Table{columns: columns}
}

// Row adds a row. Missing cells are left blank.
func (t *Table) Row(values ...string) {
	row := make([]string, len(t.columns))
	copy(row, values)
	t.rows = append(t.rows, row)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Write renders the table to w.
func (t *Table) Write(w io.Writer) error {
	rules := make([]string, len(t.columns))
	for i, col := range t.columns {
		width := lipgloss.Width(col)
		for _, row := range t.rows {
			width = max(width, lipgloss.Width(row[i]))
		}
		rules[i] = strings.Repeat("-", width)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.columns, "\t"))
	fmt.Fprintln(tw, strings.Join(rules, "\t"))
	for _, row := range t.rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// Encode writes data as json or yaml. Text output is built by the
// caller, usually as a Table.
func Encode(w io.Writer, format string, data any) error {
	switch OutputFormat(format) {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(data); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("cannot encode %s output", format)
	}
}

// Submission is a submitted form as otdb prints it.
type Submission struct {
	Form   string           `json:"form" yaml:"form"`
	Fields []SubmittedField `json:"fields" yaml:"fields"`
}

// SubmittedField is one submitted input.
type SubmittedField struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Value any    `json:"value" yaml:"value"`
}

// NewSubmission pairs values with the labels of their inputs in m.
func NewSubmission(name string, m *form.Manager, values []form.FieldValue) Submission {
	sub := Submission{Form: name, Fields: make([]SubmittedField, 0, len(values))}
	for _, v := range values {
		f := SubmittedField{ID: v.ID, Value: v.Value}
		if in, ok := m.Get(v.ID).(interface{ Label() string }); ok {
			f.Label = in.Label()
		}
		sub.Fields = append(sub.Fields, f)
	}
	return sub
}

// Write renders the submission in format.
func (s Submission) Write(w io.Writer, format string) error {
	if OutputFormat(format) != FormatText {
		return Encode(w, format, s)
	}

	table := NewTable("FIELD", "LABEL", "VALUE")
	for _, f := range s.Fields {
		table.Row(f.ID, f.Label, FormatValue(f.Value))
	}
	return table.Write(w)
}

// YAML returns the submission as yaml, as copied to the clipboard.
func (s Submission) YAML() (string, error) {
	var b strings.Builder
	if err := Encode(&b, string(FormatYAML), s); err != nil {
		return "", err
	}
	return b.String(), nil
}

// FormatValue renders a submitted value for text output. Multi picks
// are joined, an unset value is "-".
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case []string:
		return joinList(val)
	case []any:
		parts := make([]string, len(val))
		for i, p := range val {
			parts[i] = fmt.Sprint(p)
		}
		return joinList(parts)
	default:
		return fmt.Sprint(val)
	}
}

func joinList(items []string) string {
	return strings.Join(items, ", ")
}

// Truncate shortens s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
