package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otdb/otdb-terminal/pkg/form"
	"github.com/otdb/otdb-terminal/pkg/testhelpers"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func newModel(t *testing.T, m *form.Manager) *FormModel {
	t.Helper()
	model := NewFormModel("Test form", m, WithDropdownRows(2))
	model.Init()
	model.SetSize(100, 40)
	return model
}

func send(model *FormModel, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = model.Update(msg)
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestFormModelFocusOrder(t *testing.T) {
	m := testhelpers.NewFormBuilder(t).
		Submit().
		Text("name", true, "").
		Text("acronym", false, "").
		Build()
	model := newModel(t, m)

	// Submit is declared first but always comes last.
	assert.Equal(t, "name", model.FocusedID())

	send(model, key(tea.KeyTab))
	assert.Equal(t, "acronym", model.FocusedID())

	send(model, key(tea.KeyTab))
	assert.Equal(t, form.SubmitID, model.FocusedID())

	send(model, key(tea.KeyTab))
	assert.Equal(t, "name", model.FocusedID(), "focus wraps around")

	send(model, key(tea.KeyShiftTab))
	assert.Equal(t, form.SubmitID, model.FocusedID())

	assert.True(t, model.FocusID("acronym"))
	assert.False(t, model.FocusID("missing"))
	assert.Equal(t, "acronym", model.FocusedID())
}

func TestFormModelTypingAndSubmit(t *testing.T) {
	m := testhelpers.NewFormBuilder(t).
		Text("name", true, "").
		Text("rank", false, form.ValidationUint).
		Submit().
		Build()
	model := newModel(t, m)

	name := mustGet[*form.TextInput](t, m, "name")
	assert.False(t, m.Submit().Enabled())

	send(model, keyRunes("Spring"))
	assert.Equal(t, "Spring", name.Value())
	assert.True(t, name.LabelActive())
	assert.True(t, m.Submit().Enabled())

	// enter on a single line field moves on
	send(model, key(tea.KeyEnter), keyRunes("-1"))
	assert.Equal(t, "rank", model.FocusedID())
	assert.False(t, m.Submit().Enabled())

	send(model, key(tea.KeyBackspace), key(tea.KeyBackspace), keyRunes("12"))
	assert.True(t, m.Submit().Enabled())

	send(model, key(tea.KeyTab))
	cmd := send(model, key(tea.KeyEnter))
	assert.True(t, isQuit(cmd))

	result := model.Result()
	require.True(t, result.Submitted)
	assert.Equal(t, []form.FieldValue{
		{ID: "name", Value: "Spring"},
		{ID: "rank", Value: "12"},
	}, result.Values)
}

func TestFormModelDisabledSubmit(t *testing.T) {
	m := testhelpers.NewFormBuilder(t).Text("name", true, "").Submit().Build()
	model := newModel(t, m)

	send(model, key(tea.KeyTab))
	cmd := send(model, key(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.False(t, model.Result().Submitted)
	assert.Equal(t, "Form is incomplete", model.statusMsg)
}

func TestFormModelCancel(t *testing.T) {
	m := testhelpers.NewFormBuilder(t).Text("name", false, "").Submit().Build()
	model := newModel(t, m)

	cmd := send(model, key(tea.KeyEsc))

	assert.True(t, isQuit(cmd))
	assert.True(t, model.Cancelled())
	assert.Equal(t, Result{}, model.Result())
}

func TestFormModelSingleDropdown(t *testing.T) {
	m := testhelpers.NewFormBuilder(t).
		Dropdown("mod", false, "HD1", "HR1", "DT1").
		Submit().
		Build()
	model := newModel(t, m)
	mod := mustGet[*form.TextDropdown](t, m, "mod")

	send(model, keyRunes("h"))
	testhelpers.AssertLabels(t, mod, "HD1", "HR1")

	send(model, key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyUp))
	assert.Equal(t, "HD1", mod.Highlighted().Label())

	send(model, key(tea.KeyEnter))
	assert.Equal(t, []string{"HD1"}, mod.Values())
	assert.Equal(t, "HD1", model.fields[0].line.Value())
	assert.False(t, mod.Open())
	assert.Equal(t, "mod", model.FocusedID(), "picking keeps the field focused")

	// Editing away from the label revokes the pick and reopens the list.
	send(model, key(tea.KeyBackspace))
	assert.Empty(t, mod.Values())
	assert.True(t, mod.Open())
	assert.Equal(t, "HD", mod.Value())
}

func TestFormModelMultiDropdown(t *testing.T) {
	m := testhelpers.NewFormBuilder(t).
		Dropdown("mods", true, "HD", "HR", "DT").
		Submit().
		Build()
	model := newModel(t, m)
	mods := mustGet[*form.TextDropdown](t, m, "mods")

	send(model, key(tea.KeyDown), key(tea.KeyEnter))
	assert.Equal(t, []string{"HD"}, mods.Values())
	assert.Equal(t, "", model.fields[0].line.Value())
	assert.True(t, mods.Open(), "multi dropdowns stay open")

	// the highlight stays on the first row, which is now HR
	send(model, key(tea.KeyEnter))
	assert.Equal(t, []string{"HD", "HR"}, mods.Values())

	send(model, key(tea.KeyBackspace))
	assert.Equal(t, []string{"HD"}, mods.Values())

	// leaving resets the highlight, so enter then moves on
	send(model, key(tea.KeyTab), key(tea.KeyShiftTab))
	assert.Equal(t, "mods", model.FocusedID())
	send(model, key(tea.KeyEnter))
	assert.Equal(t, form.SubmitID, model.FocusedID())
}

func TestFormModelSearch(t *testing.T) {
	loop := testhelpers.NewManualLoop()
	m := testhelpers.NewFormBuilder(t).
		Search("user", false).
		Submit().
		Options(form.WithLoop(loop)).
		Build()
	user := mustGet[*form.TextSearch](t, m, "user")
	recorder := testhelpers.NewSearchRecorder().On("pep", form.Option{Label: "peppy", Value: 2})
	user.BindSearch(recorder.Search)

	model := newModel(t, m)
	send(model, keyRunes("pep"))
	assert.True(t, user.Searching())
	model.SetSize(100, 40)
	assert.Contains(t, model.View(), "searching pep")

	loop.Settle()
	assert.Equal(t, []string{"pep"}, recorder.Queries())

	send(model, key(tea.KeyDown), key(tea.KeyEnter))
	assert.Equal(t, []any{2}, user.InnerValues())
	assert.Equal(t, "peppy", model.fields[0].line.Value())

	send(model, key(tea.KeyTab))
	assert.True(t, isQuit(send(model, key(tea.KeyEnter))))
	assert.Equal(t, []form.FieldValue{{ID: "user", Value: 2}}, model.Result().Values)
}

func TestFormModelLoopTask(t *testing.T) {
	m := testhelpers.NewFormBuilder(t).Text("name", false, "").Submit().Build()
	model := newModel(t, m)
	name := mustGet[*form.TextInput](t, m, "name")

	cmd := send(model, loopTaskMsg{task: func() { name.SetValue("from loop") }})

	assert.NotNil(t, cmd, "the model keeps listening to the loop")
	assert.Equal(t, "from loop", model.fields[0].line.Value())
}

func TestFormModelTextarea(t *testing.T) {
	m := testhelpers.NewFormBuilder(t).
		With("notes", form.Attributes{Type: form.KindText, Label: "Notes", Textarea: true}).
		Submit().
		Build()
	model := newModel(t, m)
	notes := mustGet[*form.TextInput](t, m, "notes")

	send(model, keyRunes("one"), key(tea.KeyEnter), keyRunes("two"))

	assert.Equal(t, "one\ntwo", notes.Value())
	assert.Equal(t, "notes", model.FocusedID())
}

func TestFormModelView(t *testing.T) {
	m := testhelpers.NewFormBuilder(t).
		With("name", form.Attributes{Type: form.KindText, Label: "Tournament name", Required: true, MaxLength: 10}).
		With("mods", form.Attributes{Type: form.KindDropdown, Label: "Mods", Multi: true, Options: form.Options{"HD", "HR", "DT"}}).
		Submit().
		Build()
	model := newModel(t, m)

	assert.Equal(t, "Loading...", NewFormModel("x", m).View())

	view := model.View()
	assert.Contains(t, view, "Test form")
	assert.Contains(t, view, "Tournament name")
	assert.Contains(t, view, "(0/10)")
	assert.Contains(t, view, "Submit")

	model.FocusID("mods")
	send(model, key(tea.KeyDown), key(tea.KeyEnter))
	view = model.View()
	assert.Contains(t, view, "HD ×")
	assert.Contains(t, view, "HR")
	assert.Contains(t, view, "DT")
	assert.NotContains(t, view, "more")
}

func TestFormModelStatusMsg(t *testing.T) {
	m := testhelpers.NewFormBuilder(t).Text("name", false, "").Submit().Build()
	model := newModel(t, m)

	send(model, StatusMsg("values → clipboard"))
	assert.Contains(t, model.View(), "values → clipboard")
}

func mustGet[T form.Input](t *testing.T, m *form.Manager, id string) T {
	t.Helper()
	in, err := form.GetAs[T](m, id)
	require.NoError(t, err)
	return in
}
