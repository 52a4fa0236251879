package form

import (
	"strings"
)

// Option is a selectable entry. Value is optional and carries whatever
// the option stands for (a user id, a mappool id).
type Option struct {
	Label string `yaml:"label" json:"label"`
	Value any    `yaml:"value,omitempty" json:"value,omitempty"`
}

// TextDropdownItem is one option of a dropdown. It is owned by its
// dropdown and dies when the dropdown clears its items.
type TextDropdownItem struct {
	parent  *TextDropdown
	option  Option
	picked  bool
	matches bool
}

// Label returns the item's label.
func (i *TextDropdownItem) Label() string { return i.option.Label }

// Value returns the item's optional value.
func (i *TextDropdownItem) Value() any { return i.option.Value }

// Picked reports whether the item is picked.
func (i *TextDropdownItem) Picked() bool { return i.picked }

// Visible reports whether the item is listed: it matches the current
// text and is not already picked.
func (i *TextDropdownItem) Visible() bool { return i.matches && !i.picked }

// Pick selects the item as if it had been clicked.
func (i *TextDropdownItem) Pick() {
	i.parent.Pick(i)
}

func (i *TextDropdownItem) filter(text string) bool {
	i.matches = text == "" || i.parent.match(i.option.Label, text)
	return i.matches
}

func containsFold(label, text string) bool {
	return strings.Contains(strings.ToLower(label), strings.ToLower(text))
}

// TextDropdown is a text field that filters and picks from a set of items.
type TextDropdown struct {
	*TextInput

	items     []*TextDropdownItem
	chips     []*TextDropdownItem
	multi     bool
	highlight int
	offset    int
	anyMatch  bool
	match     func(label, text string) bool
}

func newTextDropdown(id string, kind Kind, attrs Attributes) *TextDropdown {
	d := &TextDropdown{
		TextInput: newTextInput(id, kind, attrs, nil),
		multi:     attrs.Multi,
		highlight: -1,
		match:     containsFold,
	}
	d.validate = func(string) bool { return d.anyMatch || d.hasPicked() }
	d.hooks = textHooks{
		before: d.refresh,
		empty:  d.isEmpty,
	}
	d.self = d

	for _, label := range attrs.Options {
		d.addItem(Option{Label: label})
	}
	d.refresh()
	return d
}

func buildTextDropdown(m Markup) (Input, error) {
	if m.Validation != "" && m.Validation != ValidationAny {
		return nil, constructionErr(m.ID, ErrInvalidAttribute, "validation="+m.Validation)
	}
	return newTextDropdown(m.ID, KindDropdown, m.Attributes), nil
}

// refresh revokes a single pick the text no longer names and re-filters
// every item against the text.
func (d *TextDropdown) refresh() {
	if !d.multi {
		for _, item := range d.items {
			if item.picked && item.option.Label != d.value {
				item.picked = false
			}
		}
	}

	d.anyMatch = false
	for _, item := range d.items {
		if item.filter(d.value) {
			d.anyMatch = true
		}
	}
	d.clampHighlight()
}

func (d *TextDropdown) isEmpty() bool {
	return d.value == "" && !d.hasPicked()
}

func (d *TextDropdown) hasPicked() bool {
	for _, item := range d.items {
		if item.picked {
			return true
		}
	}
	return false
}

// CheckValueValidity implements Input. With something typed, at least one
// item has to match it or already be picked.
func (d *TextDropdown) CheckValueValidity() bool {
	if !d.lastValid {
		return false
	}
	return !d.required || strings.TrimSpace(d.value) != "" || d.hasPicked()
}

// Multi reports whether several items can be picked.
func (d *TextDropdown) Multi() bool { return d.multi }

// Open reports whether the item list is shown.
func (d *TextDropdown) Open() bool { return d.focused }

// Blur closes the dropdown and removes focus.
func (d *TextDropdown) Blur() {
	d.TextInput.Blur()
	d.highlight = -1
	d.offset = 0
}

// CreateItem appends an item with only a label.
func (d *TextDropdown) CreateItem(label string) *TextDropdownItem {
	return d.AddOption(Option{Label: label})
}

// AddOption appends an item for opt. The text may now match, so validity
// is recomputed.
func (d *TextDropdown) AddOption(opt Option) *TextDropdownItem {
	item := d.addItem(opt)
	d.recompute()
	return item
}

func (d *TextDropdown) addItem(opt Option) *TextDropdownItem {
	item := &TextDropdownItem{parent: d, option: opt}
	d.items = append(d.items, item)
	return item
}

// SetOptions replaces the whole item set and recomputes validity once.
func (d *TextDropdown) SetOptions(opts []Option) {
	d.ClearItems()
	for _, opt := range opts {
		d.addItem(opt)
	}
	d.recompute()
}

// ClearItems drops every item, picked ones included.
func (d *TextDropdown) ClearItems() {
	d.items = nil
	d.chips = nil
	d.anyMatch = false
	d.highlight = -1
	d.offset = 0
}

// Items returns all items in order.
func (d *TextDropdown) Items() []*TextDropdownItem {
	return d.items
}

// Item finds an item by label, nil if there is none.
func (d *TextDropdown) Item(label string) *TextDropdownItem {
	for _, item := range d.items {
		if item.option.Label == label {
			return item
		}
	}
	return nil
}

// VisibleItems returns the pickable items: visible and not picked.
func (d *TextDropdown) VisibleItems() []*TextDropdownItem {
	var out []*TextDropdownItem
	for _, item := range d.items {
		if item.Visible() {
			out = append(out, item)
		}
	}
	return out
}

// Chips returns picked items of a multi dropdown in the order they were picked.
func (d *TextDropdown) Chips() []*TextDropdownItem {
	return d.chips
}

// Pick selects item. A single dropdown takes the item's label as its
// text and closes; a multi dropdown adds a chip, clears the text and
// stays open.
func (d *TextDropdown) Pick(item *TextDropdownItem) {
	if item == nil || item.parent != d || item.picked {
		return
	}

	if d.multi {
		item.picked = true
		d.chips = append(d.chips, item)
		d.SetValue("")
	} else {
		for _, other := range d.items {
			other.picked = false
		}
		item.picked = true
		d.SetValue(item.option.Label)
		d.Blur()
	}

	item.filter(d.value)
	d.logger().Debug("dropdown item picked", "input", d.id, "label", item.option.Label)
}

// Unpick reverses a pick, e.g. when a chip's remove affordance is used.
func (d *TextDropdown) Unpick(item *TextDropdownItem) {
	if item == nil || item.parent != d || !item.picked {
		return
	}

	item.picked = false
	for i, chip := range d.chips {
		if chip == item {
			d.chips = append(d.chips[:i], d.chips[i+1:]...)
			break
		}
	}
	if d.isEmpty() {
		d.labelActive = false
	}
	d.recompute()
}

// Values returns the labels of the picked items.
func (d *TextDropdown) Values() []string {
	var out []string
	for _, item := range d.items {
		if item.picked {
			out = append(out, item.option.Label)
		}
	}
	return out
}

// InnerValues returns the values of the picked items that carry one.
func (d *TextDropdown) InnerValues() []any {
	var out []any
	for _, item := range d.items {
		if item.picked && item.option.Value != nil {
			out = append(out, item.option.Value)
		}
	}
	return out
}

// Highlighted returns the highlighted item, nil if none.
func (d *TextDropdown) Highlighted() *TextDropdownItem {
	visible := d.VisibleItems()
	if d.highlight < 0 || d.highlight >= len(visible) {
		return nil
	}
	return visible[d.highlight]
}

// HighlightIndex returns the highlight position among VisibleItems, -1 if none.
func (d *TextDropdown) HighlightIndex() int {
	return d.highlight
}

// HighlightNext moves the highlight down, stopping at the last item.
func (d *TextDropdown) HighlightNext() {
	d.moveHighlight(1)
}

// HighlightPrev moves the highlight up, stopping at the first item.
func (d *TextDropdown) HighlightPrev() {
	d.moveHighlight(-1)
}

func (d *TextDropdown) moveHighlight(delta int) {
	n := len(d.VisibleItems())
	if n == 0 {
		d.highlight = -1
		return
	}
	if d.highlight < 0 {
		d.highlight = 0
		return
	}
	d.highlight = min(max(d.highlight+delta, 0), n-1)
}

func (d *TextDropdown) clampHighlight() {
	n := len(d.VisibleItems())
	if d.highlight >= n {
		d.highlight = n - 1
	}
}

// CommitHighlight picks the highlighted item and reports whether one was.
func (d *TextDropdown) CommitHighlight() bool {
	item := d.Highlighted()
	if item == nil {
		return false
	}
	d.Pick(item)
	return true
}

// ScrollOffset returns the first visible row for a list showing rows
// items, moved just enough to keep the highlight in view.
func (d *TextDropdown) ScrollOffset(rows int) int {
	n := len(d.VisibleItems())
	if rows <= 0 || n <= rows {
		d.offset = 0
		return 0
	}
	if d.highlight >= 0 {
		if d.highlight < d.offset {
			d.offset = d.highlight
		} else if d.highlight >= d.offset+rows {
			d.offset = d.highlight - rows + 1
		}
	}
	d.offset = min(max(d.offset, 0), n-rows)
	return d.offset
}
