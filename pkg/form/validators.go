package form

import (
	"regexp"
	"strings"
)

// ValidatorFunc reports whether text is acceptable for a field.
type ValidatorFunc func(text string) bool

// Validation names accepted by the validation attribute.
const (
	ValidationAny  = "any"
	ValidationInt  = "int"
	ValidationUint = "uint"
	ValidationMod  = "mod"
)

// ModAcronyms lists the mod prefixes accepted by the mod validation.
var ModAcronyms = []string{"NM", "HD", "HR", "DT", "FM", "EZ", "HT", "FL", "TB", "OTH", "RX", "AP"}

var (
	intPattern  = regexp.MustCompile(`^-?\d+$`)
	uintPattern = regexp.MustCompile(`^\d+$`)
	modPattern  = regexp.MustCompile(`(?i)^(` + strings.Join(ModAcronyms, "|") + `)\d+$`)
)

// IsInt accepts an optional leading minus followed by digits.
func IsInt(text string) bool {
	return intPattern.MatchString(text)
}

// IsUint accepts digits only.
func IsUint(text string) bool {
	return uintPattern.MatchString(text)
}

// IsMod accepts a mod acronym followed by a slot number, e.g. "HD2".
func IsMod(text string) bool {
	return modPattern.MatchString(text)
}

var validators = map[string]ValidatorFunc{
	ValidationAny:  nil,
	"":             nil,
	ValidationInt:  IsInt,
	ValidationUint: IsUint,
	ValidationMod:  IsMod,
}

// ValidatorFor resolves a validation name. "any" and "" resolve to a nil
// validator, which accepts everything.
func ValidatorFor(name string) (ValidatorFunc, error) {
	fn, ok := validators[name]
	if !ok {
		return nil, constructionErr("", ErrUnknownValidation, name)
	}
	return fn, nil
}
