package form

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// SubmitID is the id of the input that acts as a form's submit control.
const SubmitID = "submit"

// Manager registers every input of a form, keeps their aggregate validity
// and enables or disables the submit control to match it.
type Manager struct {
	inputs []Input
	submit *TextButton
	root   *Group
	loop   Loop
	logger *log.Logger
	ctx    context.Context
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLoop sets the loop used for debounced searches.
func WithLoop(loop Loop) ManagerOption {
	return func(m *Manager) { m.loop = loop }
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) ManagerOption {
	return func(m *Manager) { m.logger = logger }
}

// WithContext sets the context passed to search functions.
func WithContext(ctx context.Context) ManagerOption {
	return func(m *Manager) { m.ctx = ctx }
}

// NewManager creates an empty manager. Without WithLoop a QueueLoop is used.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		root:   NewGroup("root"),
		logger: discardLogger,
		ctx:    context.Background(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.loop == nil {
		m.loop = NewQueueLoop()
	}
	return m
}

// Setup builds a manager from markup elements, attaching each input to the
// root group in order. The element with id "submit" must be a button and
// starts disabled; a form with inputs but no submit control is rejected.
func Setup(markup []Markup, opts ...ManagerOption) (*Manager, error) {
	m := NewManager(opts...)

	for _, mk := range markup {
		input, err := Build(mk)
		if err != nil {
			return nil, err
		}
		if err := m.Add(input, WithoutRecompute()); err != nil {
			return nil, err
		}
		m.root.attach(input)
	}

	if m.submit == nil && len(m.inputs) > 0 {
		return nil, constructionErr("", ErrMissingSubmit, "")
	}

	m.OnInputChange(nil)
	m.logger.Debug("form set up", "inputs", len(m.inputs))
	return m, nil
}

type addConfig struct {
	recompute bool
}

// AddOption tunes Add and Create.
type AddOption func(*addConfig)

// WithoutRecompute skips the validity check, for bulk setup.
func WithoutRecompute() AddOption {
	return func(c *addConfig) { c.recompute = false }
}

// Add registers input with the manager.
func (m *Manager) Add(input Input, opts ...AddOption) error {
	cfg := addConfig{recompute: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := input.core()
	if c.manager != nil || m.Get(c.id) != nil {
		return constructionErr(c.id, ErrDuplicateID, "")
	}

	isSubmit := c.id == SubmitID
	if isSubmit {
		button, ok := input.(*TextButton)
		if !ok {
			return constructionErr(c.id, ErrInvalidAttribute, "submit must be a button")
		}
		m.submit = button
		button.Disable()
	} else if cfg.recompute && m.submit == nil {
		return constructionErr(c.id, ErrMissingSubmit, "")
	}

	c.manager = m
	m.inputs = append(m.inputs, input)

	if cfg.recompute {
		m.OnInputChange(input)
	}
	return nil
}

// Create builds an input from attrs, attaches it under parent (a nil
// parent leaves it detached) and registers it.
func (m *Manager) Create(id string, attrs Attributes, parent *Group, opts ...AddOption) (Input, error) {
	input, err := Build(Markup{ID: id, Attributes: attrs})
	if err != nil {
		return nil, err
	}
	if err := m.Add(input, opts...); err != nil {
		return nil, err
	}
	if parent != nil {
		parent.attach(input)
	}
	return input, nil
}

// Get returns the input with id, nil if there is none.
func (m *Manager) Get(id string) Input {
	for _, input := range m.inputs {
		if input.ID() == id {
			return input
		}
	}
	return nil
}

// GetRequired returns the input with id or ErrNotFound.
func (m *Manager) GetRequired(id string) (Input, error) {
	if input := m.Get(id); input != nil {
		return input, nil
	}
	return nil, fmt.Errorf("%w by id '%s'", ErrNotFound, id)
}

// Remove unregisters the input with id and returns it, nil if absent.
func (m *Manager) Remove(id string) Input {
	for i, input := range m.inputs {
		if input.ID() != id {
			continue
		}

		m.inputs = append(m.inputs[:i], m.inputs[i+1:]...)
		c := input.core()
		if c.parent != nil {
			c.parent.detach(input)
		}
		c.manager = nil
		if s, ok := input.(*TextSearch); ok {
			s.Stop()
		}
		if input == Input(m.submit) {
			m.submit = nil
		}

		m.OnInputChange(nil)
		return input
	}
	return nil
}

// Query returns every input whose id contains match, in registration order.
func (m *Manager) Query(match string) []Input {
	var out []Input
	for _, input := range m.inputs {
		if strings.Contains(input.ID(), match) {
			out = append(out, input)
		}
	}
	return out
}

// Inputs returns all registered inputs in registration order.
func (m *Manager) Inputs() []Input {
	return m.inputs
}

// Submit returns the submit control, nil for an empty form.
func (m *Manager) Submit() *TextButton {
	return m.submit
}

// Root returns the group markup-created inputs are attached to.
func (m *Manager) Root() *Group {
	return m.root
}

// Loop returns the loop searches are scheduled on.
func (m *Manager) Loop() Loop {
	return m.loop
}

// Valid reports the aggregate validity of every registered input.
func (m *Manager) Valid() bool {
	for _, input := range m.inputs {
		if !input.CheckValueValidity() {
			return false
		}
	}
	return true
}

// OnInputChange recomputes aggregate validity after changed (nil when
// the change is not tied to one input) and updates the submit control.
// An invalid changed input disables submit without scanning the others.
func (m *Manager) OnInputChange(changed Input) {
	if m.submit == nil {
		return
	}

	if changed != nil && !changed.CheckValueValidity() {
		m.submit.Disable()
		return
	}

	for _, other := range m.inputs {
		if other == changed {
			continue
		}
		if !other.CheckValueValidity() {
			m.submit.Disable()
			return
		}
	}

	m.submit.Enable()
}

func (m *Manager) context() context.Context {
	if m == nil || m.ctx == nil {
		return context.Background()
	}
	return m.ctx
}

// As converts in to T.
func As[T Input](in Input) (T, bool) {
	t, ok := in.(T)
	return t, ok
}

// GetAs returns the input with id as a T.
func GetAs[T Input](m *Manager, id string) (T, error) {
	var zero T
	input, err := m.GetRequired(id)
	if err != nil {
		return zero, err
	}
	t, ok := input.(T)
	if !ok {
		return zero, fmt.Errorf("input '%s' is a %s, not the requested kind", id, input.Kind())
	}
	return t, nil
}

// QueryAs is Query restricted to inputs of type T.
func QueryAs[T Input](m *Manager, match string) []T {
	var out []T
	for _, input := range m.Query(match) {
		if t, ok := input.(T); ok {
			out = append(out, t)
		}
	}
	return out
}
