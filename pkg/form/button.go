package form

// TextButton is a momentary action input.
type TextButton struct {
	base

	enabled   bool
	danger    bool
	square    bool
	callbacks []func()
}

func buildTextButton(m Markup) (Input, error) {
	b := &TextButton{
		base: base{
			id:         m.ID,
			kind:       KindButton,
			label:      m.Label,
			innerStyle: m.InnerStyle,
		},
		enabled: true,
		danger:  m.Danger,
		square:  m.Square,
	}
	b.self = b
	return b, nil
}

// AddCallback registers fn to run when the button is clicked while enabled.
func (b *TextButton) AddCallback(fn func()) {
	b.callbacks = append(b.callbacks, fn)
}

// Click activates the button. It reports whether the callbacks ran.
func (b *TextButton) Click() bool {
	if !b.enabled {
		return false
	}
	for _, fn := range b.callbacks {
		fn()
	}
	return true
}

// Enable allows the button to be clicked.
func (b *TextButton) Enable() { b.enabled = true }

// Disable stops clicks from running callbacks.
func (b *TextButton) Disable() { b.enabled = false }

// Enabled reports whether the button can be clicked.
func (b *TextButton) Enabled() bool { return b.enabled }

// Danger reports whether the button is styled as destructive.
func (b *TextButton) Danger() bool { return b.danger }

// Square reports whether the button uses the compact square style.
func (b *TextButton) Square() bool { return b.square }

// CheckValueValidity implements Input. Buttons carry no value.
func (b *TextButton) CheckValueValidity() bool {
	return true
}
