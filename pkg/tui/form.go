package tui

import (
	"io"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/otdb/otdb-terminal/pkg/form"
)

// DefaultDropdownRows is how many dropdown items are listed at once.
const DefaultDropdownRows = 5

// Result is what a finished FormModel hands back to its caller.
type Result struct {
	Submitted bool
	Values    []form.FieldValue
}

// StatusMsg sets the one-line status bar.
type StatusMsg string

// loopTaskMsg carries a timer or search callback that must run on the
// Update goroutine.
type loopTaskMsg struct {
	task func()
}

// waitForTask blocks on the form loop and turns its next task into a message.
func waitForTask(tasks <-chan func()) tea.Cmd {
	return func() tea.Msg {
		return loopTaskMsg{task: <-tasks}
	}
}

// FormModel is the bubbletea front end of a form.Manager.
type FormModel struct {
	title   string
	manager *form.Manager
	tasks   <-chan func()
	logger  *log.Logger

	fields []*field
	focus  int

	viewport viewport.Model
	spinner  spinner.Model
	width    int
	height   int
	rows     int
	showHelp bool

	statusMsg string
	submitted bool
	cancelled bool
}

// FormOption configures a FormModel.
type FormOption func(*FormModel)

// WithDropdownRows sets how many dropdown items are listed at once.
func WithDropdownRows(n int) FormOption {
	return func(m *FormModel) {
		if n > 0 {
			m.rows = n
		}
	}
}

// WithHelp shows or hides the key help line.
func WithHelp(show bool) FormOption {
	return func(m *FormModel) { m.showHelp = show }
}

// WithLogger sets the logger used for UI events.
func WithLogger(logger *log.Logger) FormOption {
	return func(m *FormModel) { m.logger = logger }
}

// NewFormModel creates a model for manager. When the manager runs on a
// form.QueueLoop the model drains it, so debounced searches resolve
// while the program runs.
func NewFormModel(title string, manager *form.Manager, opts ...FormOption) *FormModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = NoticeStyle

	m := &FormModel{
		title:    title,
		manager:  manager,
		logger:   log.New(io.Discard),
		viewport: viewport.New(80, 20), // Default size
		spinner:  s,
		rows:     DefaultDropdownRows,
		showHelp: true,
	}
	for _, opt := range opts {
		opt(m)
	}

	if q, ok := manager.Loop().(*form.QueueLoop); ok {
		m.tasks = q.Tasks()
	}

	m.loadFields()
	if submit := manager.Submit(); submit != nil {
		submit.AddCallback(func() {
			m.submitted = true
		})
	}
	return m
}

// loadFields lists the inputs in layout order. The submit button is
// rendered in the footer, so it always comes last.
func (m *FormModel) loadFields() {
	m.fields = nil
	var walk func(g *form.Group)
	walk = func(g *form.Group) {
		for _, node := range g.Nodes() {
			if node.Group != nil {
				walk(node.Group)
				continue
			}
			if node.Input == form.Input(m.manager.Submit()) {
				continue
			}
			m.fields = append(m.fields, newField(node.Input))
		}
	}
	walk(m.manager.Root())

	if submit := m.manager.Submit(); submit != nil {
		m.fields = append(m.fields, newField(submit))
	}
}

func (m *FormModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.tasks != nil {
		cmds = append(cmds, waitForTask(m.tasks))
	}
	if f := m.focused(); f != nil {
		cmds = append(cmds, f.focus())
	}
	return tea.Batch(cmds...)
}

func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case loopTaskMsg:
		msg.task()
		m.syncEditors()
		if m.tasks == nil {
			return m, nil
		}
		return m, waitForTask(m.tasks)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StatusMsg:
		m.statusMsg = string(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *FormModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		m.logger.Debug("form cancelled")
		return m, tea.Quit

	case "tab":
		return m, m.moveFocus(1)

	case "shift+tab":
		return m, m.moveFocus(-1)

	case "ctrl+y":
		return m, m.yankValues()
	}

	f := m.focused()
	if f == nil {
		return m, nil
	}
	m.statusMsg = ""

	if f.button != nil {
		switch msg.String() {
		case "enter", " ":
			if !f.button.Click() {
				m.statusMsg = "Form is incomplete"
				return m, nil
			}
			if m.submitted {
				m.logger.Debug("form submitted")
				return m, tea.Quit
			}
		}
		return m, nil
	}

	if f.dropdown != nil {
		switch msg.String() {
		case "down":
			f.reopen()
			f.dropdown.HighlightNext()
			return m, nil
		case "up":
			f.reopen()
			f.dropdown.HighlightPrev()
			return m, nil
		case "enter":
			if f.dropdown.CommitHighlight() {
				f.syncEditor()
				return m, nil
			}
			return m, m.moveFocus(1)
		case "backspace":
			if f.unpickLast() {
				return m, nil
			}
		}
	}

	if msg.String() == "enter" && !f.multiline {
		return m, m.moveFocus(1)
	}

	return m, f.update(msg)
}

func (m *FormModel) focused() *field {
	if m.focus < 0 || m.focus >= len(m.fields) {
		return nil
	}
	return m.fields[m.focus]
}

// moveFocus blurs the current field and focuses the one delta steps
// away, wrapping around.
func (m *FormModel) moveFocus(delta int) tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	if f := m.focused(); f != nil {
		f.blur()
	}
	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)
	return m.fields[m.focus].focus()
}

// FocusID moves focus to the input with id and reports whether it exists.
func (m *FormModel) FocusID(id string) bool {
	for i, f := range m.fields {
		if f.input.ID() == id {
			m.moveFocus(i - m.focus)
			return true
		}
	}
	return false
}

// FocusedID returns the id of the focused input.
func (m *FormModel) FocusedID() string {
	if f := m.focused(); f != nil {
		return f.input.ID()
	}
	return ""
}

func (m *FormModel) syncEditors() {
	for _, f := range m.fields {
		f.syncEditor()
	}
}

func (m *FormModel) yankValues() tea.Cmd {
	out, err := yaml.Marshal(m.manager.Values())
	if err != nil {
		return func() tea.Msg { return StatusMsg("Failed to encode values: " + err.Error()) }
	}
	if err := clipboard.WriteAll(string(out)); err != nil {
		m.logger.Warn("clipboard write failed", "err", err)
		return func() tea.Msg { return StatusMsg("Clipboard unavailable") }
	}
	return func() tea.Msg { return StatusMsg("values → clipboard") }
}

// SetSize updates the model to the terminal size.
func (m *FormModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	m.viewport.Width = width
	m.viewport.Height = max(height-m.chromeHeight(), 3)

	for _, f := range m.fields {
		f.resize(min(width-2, 80))
	}
}

// Result reports how the form ended and, when submitted, its values.
func (m *FormModel) Result() Result {
	if !m.submitted {
		return Result{}
	}
	return Result{Submitted: true, Values: m.manager.Values()}
}

// Cancelled reports whether the user left the form without submitting.
func (m *FormModel) Cancelled() bool {
	return m.cancelled
}

// Run starts a full screen program for the model and returns its result.
func Run(model *FormModel, opts ...tea.ProgramOption) (Result, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(model, opts...)
	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	if fm, ok := final.(*FormModel); ok {
		return fm.Result(), nil
	}
	return Result{}, nil
}
