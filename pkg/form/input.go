package form

import (
	"io"

	"github.com/charmbracelet/log"
)

// Input is implemented by every form input kind. The set of
// implementations is closed: TextInput, TextDropdown, TextSearch and
// TextButton.
type Input interface {
	ID() string
	Kind() Kind
	// CheckValueValidity reports whether the current value may be
	// submitted. It never changes state.
	CheckValueValidity() bool
	Manager() *Manager
	Parent() *Group
	core() *base
}

// base holds what every input shares. self points back to the outermost
// value so the manager is always handed the concrete input.
type base struct {
	id         string
	kind       Kind
	label      string
	innerStyle string
	width      int
	manager    *Manager
	parent     *Group
	self       Input
}

func (b *base) ID() string         { return b.id }
func (b *base) Kind() Kind         { return b.kind }
func (b *base) Manager() *Manager  { return b.manager }
func (b *base) Parent() *Group     { return b.parent }
func (b *base) core() *base        { return b }
func (b *base) Label() string      { return b.label }
func (b *base) InnerStyle() string { return b.innerStyle }

// Width is the render width set with Resize; 0 means the renderer decides.
func (b *base) Width() int { return b.width }

// Resize changes the render width of the input.
func (b *base) Resize(width int) {
	b.width = width
}

func (b *base) notify() {
	if b.manager != nil {
		b.manager.OnInputChange(b.self)
	}
}

var discardLogger = log.New(io.Discard)

func (b *base) logger() *log.Logger {
	if b.manager != nil && b.manager.logger != nil {
		return b.manager.logger
	}
	return discardLogger
}

// Node is one child of a Group: either an input or a nested group.
type Node struct {
	Input Input
	Group *Group
}

// Group is an ordered container that inputs are attached to for layout.
type Group struct {
	Name       string
	Horizontal bool

	parent *Group
	nodes  []Node
}

// NewGroup creates a detached group.
func NewGroup(name string) *Group {
	return &Group{Name: name}
}

// NewGroup appends a child group and returns it.
func (g *Group) NewGroup(name string) *Group {
	child := &Group{Name: name, parent: g}
	g.nodes = append(g.nodes, Node{Group: child})
	return child
}

// Nodes returns the children in insertion order.
func (g *Group) Nodes() []Node {
	return g.nodes
}

// Inputs returns every input under g, depth first.
func (g *Group) Inputs() []Input {
	var out []Input
	for _, n := range g.nodes {
		if n.Input != nil {
			out = append(out, n.Input)
		} else {
			out = append(out, n.Group.Inputs()...)
		}
	}
	return out
}

// Detach removes g from its parent group.
func (g *Group) Detach() {
	if g.parent == nil {
		return
	}
	p := g.parent
	for i, n := range p.nodes {
		if n.Group == g {
			p.nodes = append(p.nodes[:i], p.nodes[i+1:]...)
			break
		}
	}
	g.parent = nil
}

func (g *Group) attach(in Input) {
	c := in.core()
	if c.parent != nil {
		c.parent.detach(in)
	}
	c.parent = g
	g.nodes = append(g.nodes, Node{Input: in})
}

func (g *Group) detach(in Input) {
	for i, n := range g.nodes {
		if n.Input == in {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
			break
		}
	}
	in.core().parent = nil
}
