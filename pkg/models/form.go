package models

import (
	"fmt"
	"strings"

	"github.com/otdb/otdb-terminal/pkg/form"
)

// FormDefinition describes a form file: plain inputs plus repeated groups.
type FormDefinition struct {
	Title  string            `yaml:"title"`
	Inputs []form.Markup     `yaml:"inputs"`
	Groups []GroupDefinition `yaml:"groups,omitempty"`
	// Searches binds search inputs, by id, to an API collection.
	Searches map[string]SearchKind `yaml:"searches,omitempty"`
}

// GroupDefinition is a set of inputs repeated Count times. Each copy gets
// the suffix "-<n>" on its ids, so a group can be read back with a
// prefix query.
type GroupDefinition struct {
	Name       string        `yaml:"name"`
	Count      int           `yaml:"count"`
	Horizontal bool          `yaml:"horizontal,omitempty"`
	Inputs     []form.Markup `yaml:"inputs"`
}

// Build sets the form up and creates every group copy under the root group.
func (d *FormDefinition) Build(opts ...form.ManagerOption) (*form.Manager, error) {
	m, err := form.Setup(d.Inputs, opts...)
	if err != nil {
		return nil, err
	}

	for _, g := range d.Groups {
		section := m.Root().NewGroup(g.Name)
		for n := 1; n <= g.Count; n++ {
			if err := AddGroupRow(m, section, g, n); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// AddGroupRow creates copy n of g under section.
func AddGroupRow(m *form.Manager, section *form.Group, g GroupDefinition, n int) error {
	row := section.NewGroup(fmt.Sprintf("%s-%d", g.Name, n))
	row.Horizontal = g.Horizontal
	for _, mk := range g.Inputs {
		id := fmt.Sprintf("%s-%d", mk.ID, n)
		if _, err := m.Create(id, mk.Attributes, row); err != nil {
			return fmt.Errorf("group %s: %w", g.Name, err)
		}
	}
	return nil
}

// SearchKindFor returns the collection bound to a search input id. Ids
// created by groups match on their unsuffixed name, the longest one
// winning.
func (d *FormDefinition) SearchKindFor(id string) (SearchKind, bool) {
	if kind, ok := d.Searches[id]; ok {
		return kind, true
	}
	best := ""
	for key := range d.Searches {
		if len(key) > len(best) && strings.HasPrefix(id, key+"-") {
			best = key
		}
	}
	if best == "" {
		return "", false
	}
	return d.Searches[best], true
}
