package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/otdb/otdb-terminal/pkg/form"
)

// Messages go to their own writer so that stdout only carries form
// output and can be piped.
var (
	quiet    bool
	noColor  bool
	messages io.Writer = os.Stderr
)

var (
	successMark = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("✓")
	infoMark    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Render("ℹ")
	warnMark    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render("⚠")
	errorMark   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("✗")
	fieldStyle  = lipgloss.NewStyle().Bold(true)
)

// Configure applies the global flags and sets where messages are written.
func Configure(q, nc bool, w io.Writer) {
	quiet = q
	noColor = nc
	if w != nil {
		messages = w
	}
}

func message(mark, plain, format string, args ...any) {
	prefix := mark
	if noColor {
		prefix = plain + ":"
	}
	fmt.Fprintf(messages, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// Successf reports a finished step unless quiet.
func Successf(format string, args ...any) {
	if !quiet {
		message(successMark, "OK", format, args...)
	}
}

// Infof reports progress unless quiet.
func Infof(format string, args ...any) {
	if !quiet {
		message(infoMark, "INFO", format, args...)
	}
}

// Warnf reports a problem otdb worked around. It is shown even when quiet.
func Warnf(format string, args ...any) {
	message(warnMark, "WARNING", format, args...)
}

// ReportError prints err even when quiet. An incomplete form lists each
// invalid input on its own line, and a broken form definition names the
// input at fault.
func ReportError(err error) {
	var incomplete *IncompleteFormError
	if errors.As(err, &incomplete) {
		message(errorMark, "ERROR", "form %s is incomplete, %d input(s) need attention:", incomplete.Form, len(incomplete.Invalid))
		for _, id := range incomplete.Invalid {
			fmt.Fprintf(messages, "  - %s\n", field(id))
		}
		return
	}

	var construction *form.ConstructionError
	if errors.As(err, &construction) && construction.ID != "" {
		message(errorMark, "ERROR", "%v", err)
		fmt.Fprintf(messages, "  fix input %s in the form definition\n", field(construction.ID))
		return
	}

	message(errorMark, "ERROR", "%v", err)
}

func field(id string) string {
	if noColor {
		return id
	}
	return fieldStyle.Render(id)
}

// IncompleteFormError is returned when submit is pressed while some
// inputs are still invalid.
type IncompleteFormError struct {
	Form    string
	Invalid []string
}

func (e *IncompleteFormError) Error() string {
	return fmt.Sprintf("form is incomplete: %s", joinList(e.Invalid))
}
