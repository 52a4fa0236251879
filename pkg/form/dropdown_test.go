package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otdb/otdb-terminal/pkg/form"
	"github.com/otdb/otdb-terminal/pkg/testhelpers"
)

func newDropdown(t *testing.T, multi bool, options ...string) (*form.Manager, *form.TextDropdown) {
	t.Helper()
	m := testhelpers.NewFormBuilder(t).Dropdown("mods", multi, options...).Submit().Build()
	d, err := form.GetAs[*form.TextDropdown](m, "mods")
	require.NoError(t, err)
	return m, d
}

func labels(items []*form.TextDropdownItem) []string {
	var out []string
	for _, item := range items {
		out = append(out, item.Label())
	}
	return out
}

func TestTextDropdown_SinglePickScenario(t *testing.T) {
	_, d := newDropdown(t, false, "HD", "HR")

	d.Focus()
	d.Edit("H")
	assert.True(t, d.Open())
	assert.Equal(t, []string{"HD", "HR"}, labels(d.VisibleItems()))

	d.Item("HD").Pick()

	assert.Equal(t, "HD", d.Value())
	assert.False(t, d.Open())
	assert.Equal(t, []string{"HD"}, d.Values())
	assert.True(t, d.CheckValueValidity())
}

func TestTextDropdown_SinglePickReplacesPrevious(t *testing.T) {
	_, d := newDropdown(t, false, "A", "B", "C")

	d.Item("A").Pick()
	d.Item("B").Pick()

	assert.Equal(t, []string{"B"}, d.Values())
	assert.False(t, d.Item("A").Picked())
	assert.Equal(t, "B", d.Value())
}

func TestTextDropdown_EditRevokesSinglePick(t *testing.T) {
	_, d := newDropdown(t, false, "Host", "Referee")

	d.Item("Host").Pick()
	require.Equal(t, []string{"Host"}, d.Values())

	d.Edit("Hos")
	assert.Empty(t, d.Values())
	assert.True(t, d.Item("Host").Visible())
}

func TestTextDropdown_MultiPick(t *testing.T) {
	_, d := newDropdown(t, true, "NM", "HD", "HR", "DT")

	d.Focus()
	d.Edit("h")
	d.Item("HR").Pick()
	d.Item("HD").Pick()
	d.Item("DT").Pick()

	assert.Equal(t, "", d.Value())
	assert.True(t, d.Open())
	assert.Equal(t, []string{"HR", "HD", "DT"}, labels(d.Chips()))
	assert.Len(t, d.Values(), 3)
	assert.ElementsMatch(t, []string{"HD", "HR", "DT"}, d.Values())
	assert.Equal(t, []string{"NM"}, labels(d.VisibleItems()))

	d.Item("HD").Pick()
	assert.Len(t, d.Chips(), 3)
}

func TestTextDropdown_Unpick(t *testing.T) {
	_, d := newDropdown(t, true, "NM", "HD", "HR")

	d.Item("HD").Pick()
	d.Item("NM").Pick()
	d.Edit("h")
	assert.Equal(t, []string{"HR"}, labels(d.VisibleItems()))

	d.Unpick(d.Item("HD"))
	assert.Equal(t, []string{"NM"}, labels(d.Chips()))
	assert.Equal(t, []string{"HD", "HR"}, labels(d.VisibleItems()))

	d.Unpick(d.Item("NM"))
	assert.False(t, d.Item("NM").Visible())
}

func TestTextDropdown_Validity(t *testing.T) {
	m, d := newDropdown(t, true, "NM", "HD")

	d.Edit("zz")
	assert.False(t, d.CheckValueValidity())
	assert.True(t, d.Invalid())
	assert.False(t, m.Submit().Enabled())

	d.Edit("")
	assert.True(t, d.CheckValueValidity())
	assert.True(t, m.Submit().Enabled())

	d.Item("NM").Pick()
	d.Edit("zz")
	assert.True(t, d.CheckValueValidity(), "an existing pick keeps typed text valid")
}

func TestTextDropdown_RequiredCountsPicks(t *testing.T) {
	m := testhelpers.NewFormBuilder(t).
		With("mods", form.Attributes{Type: form.KindDropdown, Multi: true, Required: true, Options: form.Options{"NM", "HD"}}).
		Submit().
		Build()
	d, _ := form.GetAs[*form.TextDropdown](m, "mods")

	assert.False(t, m.Submit().Enabled())

	d.Item("HD").Pick()
	assert.True(t, m.Submit().Enabled())

	d.Unpick(d.Item("HD"))
	assert.False(t, m.Submit().Enabled())
}

func TestTextDropdown_KeyboardNavigation(t *testing.T) {
	_, d := newDropdown(t, true, "a1", "a2", "a3", "b1")
	d.Focus()
	d.Edit("a")

	assert.Equal(t, -1, d.HighlightIndex())
	assert.Nil(t, d.Highlighted())

	d.HighlightNext()
	assert.Equal(t, "a1", d.Highlighted().Label())
	d.HighlightNext()
	d.HighlightNext()
	d.HighlightNext()
	assert.Equal(t, 2, d.HighlightIndex(), "highlight clamps at the last item")
	assert.Equal(t, "a3", d.Highlighted().Label())
	assert.Equal(t, 1, d.ScrollOffset(2))

	d.HighlightPrev()
	d.HighlightPrev()
	d.HighlightPrev()
	assert.Equal(t, 0, d.HighlightIndex(), "highlight clamps at the first item")
	assert.Equal(t, 0, d.ScrollOffset(2))

	d.HighlightNext()
	require.True(t, d.CommitHighlight())
	assert.Equal(t, []string{"a2"}, d.Values())
	assert.Equal(t, []string{"a1", "a3", "b1"}, labels(d.VisibleItems()))

	d.HighlightNext()
	d.HighlightNext()
	d.HighlightNext()
	assert.Equal(t, 2, d.HighlightIndex())
	require.True(t, d.CommitHighlight())
	assert.Equal(t, 1, d.HighlightIndex(), "highlight stays within the shrunken list")
}

func TestTextDropdown_CommitWithoutHighlight(t *testing.T) {
	_, d := newDropdown(t, false, "HD")
	assert.False(t, d.CommitHighlight())

	d.Edit("zz")
	d.HighlightNext()
	assert.Equal(t, -1, d.HighlightIndex())
}

func TestTextDropdown_BlurResetsHighlight(t *testing.T) {
	_, d := newDropdown(t, false, "HD", "HR")
	d.Focus()
	d.HighlightNext()
	require.NotNil(t, d.Highlighted())

	d.Blur()
	assert.False(t, d.Open())
	assert.Nil(t, d.Highlighted())
}

func TestTextDropdown_ItemLookupAndValues(t *testing.T) {
	_, d := newDropdown(t, true)
	d.AddOption(form.Option{Label: "Mappool A", Value: 11})
	d.AddOption(form.Option{Label: "Mappool B", Value: 12})
	d.CreateItem("No id")

	assert.Nil(t, d.Item("Mappool C"))

	d.Item("Mappool B").Pick()
	d.Item("No id").Pick()

	assert.Equal(t, []string{"Mappool B", "No id"}, d.Values())
	assert.Equal(t, []any{12}, d.InnerValues())
}

func TestTextDropdown_AddingItemsRevalidates(t *testing.T) {
	m, d := newDropdown(t, false)

	d.Edit("HD")
	require.False(t, d.CheckValueValidity())
	require.False(t, m.Submit().Enabled())

	d.CreateItem("HD")

	testhelpers.AssertLabels(t, d, "HD")
	assert.True(t, d.CheckValueValidity())
	assert.True(t, m.Submit().Enabled())

	d.SetOptions([]form.Option{{Label: "DT"}, {Label: "NC"}})

	assert.Empty(t, d.VisibleItems())
	assert.False(t, d.CheckValueValidity())
	assert.False(t, m.Submit().Enabled())
}
