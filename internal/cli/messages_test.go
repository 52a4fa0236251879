package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/otdb/otdb-terminal/pkg/form"
)

func captureMessages(t *testing.T, q bool) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	Configure(q, true, buf)
	t.Cleanup(func() { Configure(false, false, os.Stderr) })
	return buf
}

func TestMessages_QuietKeepsWarningsAndErrors(t *testing.T) {
	buf := captureMessages(t, true)

	Infof("Initializing %s", "project")
	Successf("done")
	Warnf("Using default settings")
	ReportError(errors.New("boom"))

	assert.Equal(t, "WARNING: Using default settings\nERROR: boom\n", buf.String())
}

func TestMessages_PlainPrefixes(t *testing.T) {
	buf := captureMessages(t, false)

	Infof("Form %s cancelled", "mappool")
	Successf("Copied")

	assert.Equal(t, "INFO: Form mappool cancelled\nOK: Copied\n", buf.String())
}

func TestReportError_IncompleteForm(t *testing.T) {
	buf := captureMessages(t, false)

	err := fmt.Errorf("submit: %w", &IncompleteFormError{
		Form:    "mappool",
		Invalid: []string{"beatmap-id-input-1", "slot-input-1"},
	})
	assert.EqualError(t, err, "submit: form is incomplete: beatmap-id-input-1, slot-input-1")

	ReportError(err)
	assert.Equal(t, "ERROR: form mappool is incomplete, 2 input(s) need attention:\n"+
		"  - beatmap-id-input-1\n"+
		"  - slot-input-1\n", buf.String())
}

func TestReportError_ConstructionNamesInput(t *testing.T) {
	buf := captureMessages(t, false)

	_, err := form.Setup([]form.Markup{{ID: "mods", Attributes: form.Attributes{Type: "slider"}}})
	assert.Error(t, err)

	ReportError(fmt.Errorf("failed to build form mappool: %w", err))
	assert.Contains(t, buf.String(), "ERROR: failed to build form mappool: input 'mods'")
	assert.Contains(t, buf.String(), "  fix input mods in the form definition\n")
}
