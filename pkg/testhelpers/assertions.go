package testhelpers

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/otdb/otdb-terminal/pkg/form"
)

// AssertValues fails the test when the submission of m differs from want.
func AssertValues(t *testing.T, m *form.Manager, want []form.FieldValue) {
	t.Helper()
	if diff := cmp.Diff(want, m.Values()); diff != "" {
		t.Errorf("form values mismatch (-want +got):\n%s", diff)
	}
}

// AssertLabels fails the test when the visible items of d, in order,
// differ from want.
func AssertLabels(t *testing.T, d *form.TextDropdown, want ...string) {
	t.Helper()
	got := []string{}
	for _, item := range d.VisibleItems() {
		got = append(got, item.Label())
	}
	if want == nil {
		want = []string{}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("visible items mismatch (-want +got):\n%s", diff)
	}
}
