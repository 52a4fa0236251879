package form

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind selects the concrete input built for a markup element.
type Kind string

const (
	KindText     Kind = "text"
	KindButton   Kind = "button"
	KindDropdown Kind = "text-dropdown"
	KindSearch   Kind = "text-search"
)

// DefaultTextareaRows is used when a textarea input has no rows attribute.
const DefaultTextareaRows = 4

// Attributes describe how an input is built. Zero values mean "absent".
type Attributes struct {
	Type       Kind    `yaml:"type" json:"type"`
	Label      string  `yaml:"label,omitempty" json:"label,omitempty"`
	Validation string  `yaml:"validation,omitempty" json:"validation,omitempty"`
	Required   bool    `yaml:"required,omitempty" json:"required,omitempty"`
	MaxLength  int     `yaml:"max-length,omitempty" json:"max-length,omitempty"`
	Textarea   bool    `yaml:"textarea,omitempty" json:"textarea,omitempty"`
	Rows       int     `yaml:"rows,omitempty" json:"rows,omitempty"`
	Options    Options `yaml:"options,omitempty" json:"options,omitempty"`
	Multi      bool    `yaml:"multi,omitempty" json:"multi,omitempty"`
	Danger     bool    `yaml:"danger,omitempty" json:"danger,omitempty"`
	Square     bool    `yaml:"square,omitempty" json:"square,omitempty"`
	InnerStyle string  `yaml:"innerStyle,omitempty" json:"innerStyle,omitempty"`
}

// Options is the static option list of a dropdown. In yaml it may be
// written either as a sequence or as a single comma-joined string.
type Options []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *Options) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*o = splitOptions(value.Value)
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*o = list
		return nil
	default:
		return fmt.Errorf("options: expected a string or a list, got yaml kind %d", value.Kind)
	}
}

func splitOptions(s string) Options {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// Markup is a single declarative form-input element: an id plus its attributes.
type Markup struct {
	ID         string `yaml:"id" json:"id"`
	Attributes `yaml:",inline"`
}

// ParseMarkup converts raw element attributes into Markup. Boolean
// attributes are presence flags: any value, including "", turns them on.
func ParseMarkup(attrs map[string]string) (Markup, error) {
	id, ok := attrs["id"]
	if !ok || id == "" {
		return Markup{}, constructionErr("", ErrMissingID, "")
	}

	has := func(key string) bool {
		_, ok := attrs[key]
		return ok
	}

	m := Markup{
		ID: id,
		Attributes: Attributes{
			Type:       Kind(attrs["type"]),
			Label:      attrs["label"],
			Validation: attrs["validation"],
			Required:   has("required"),
			Textarea:   has("textarea"),
			Multi:      has("multi"),
			Danger:     has("danger"),
			Square:     has("square"),
			InnerStyle: attrs["innerStyle"],
			Options:    splitOptions(attrs["options"]),
		},
	}

	var err error
	if m.MaxLength, err = parsePositive(id, attrs, "max-length"); err != nil {
		return Markup{}, err
	}
	if m.Rows, err = parsePositive(id, attrs, "rows"); err != nil {
		return Markup{}, err
	}

	return m, nil
}

func parsePositive(id string, attrs map[string]string, key string) (int, error) {
	raw, ok := attrs[key]
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, constructionErr(id, ErrInvalidAttribute, key+"="+raw)
	}
	return n, nil
}
