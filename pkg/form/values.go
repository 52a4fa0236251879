package form

// FieldValue is one entry of a form submission.
type FieldValue struct {
	ID    string `yaml:"id" json:"id"`
	Value any    `yaml:"value" json:"value"`
}

// Values collects the value of every non-button input in registration
// order. Dropdowns submit their picks: a list for multi dropdowns, a
// single entry otherwise. Search inputs prefer option values to labels.
func (m *Manager) Values() []FieldValue {
	var out []FieldValue
	for _, input := range m.inputs {
		switch in := input.(type) {
		case *TextButton:
			continue
		case *TextSearch:
			out = append(out, FieldValue{ID: in.id, Value: pickedValue(in.TextDropdown, true)})
		case *TextDropdown:
			out = append(out, FieldValue{ID: in.id, Value: pickedValue(in, false)})
		case *TextInput:
			out = append(out, FieldValue{ID: in.id, Value: in.value})
		}
	}
	return out
}

func pickedValue(d *TextDropdown, preferInner bool) any {
	if preferInner {
		if inner := d.InnerValues(); len(inner) > 0 {
			if d.multi {
				return inner
			}
			return inner[0]
		}
	}
	labels := d.Values()
	if d.multi {
		if labels == nil {
			return []string{}
		}
		return labels
	}
	if len(labels) == 0 {
		return nil
	}
	return labels[0]
}
