package form

type constructor func(m Markup) (Input, error)

var constructors = map[Kind]constructor{
	KindText:     buildTextInput,
	KindButton:   buildTextButton,
	KindDropdown: buildTextDropdown,
	KindSearch:   buildTextSearch,
}

// Build constructs the input described by m without registering it.
func Build(m Markup) (Input, error) {
	if m.ID == "" {
		return nil, constructionErr("", ErrMissingID, "")
	}
	if m.Type == "" {
		return nil, constructionErr(m.ID, ErrMissingType, "")
	}
	build, ok := constructors[m.Type]
	if !ok {
		return nil, constructionErr(m.ID, ErrUnknownType, string(m.Type))
	}
	return build(m)
}
