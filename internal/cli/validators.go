package cli

import (
	"fmt"
	"strings"

	"github.com/otdb/otdb-terminal/pkg/form"
	"github.com/otdb/otdb-terminal/pkg/models"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateSearchKind validates a search collection name
func ValidateSearchKind(kind string) (models.SearchKind, error) {
	normalized := strings.ToLower(kind)
	for _, k := range models.SearchKinds {
		if normalized == string(k) || normalized+"s" == string(k) {
			return k, nil
		}
	}
	return "", fmt.Errorf("invalid search collection: %s (must be: users, mappools, or tournaments)", kind)
}

// ValidateValidation resolves a validation name to its check
func ValidateValidation(name string) (form.ValidatorFunc, error) {
	fn, err := form.ValidatorFor(strings.ToLower(name))
	if err != nil {
		return nil, fmt.Errorf("invalid validation: %s (must be: any, int, uint, or mod)", name)
	}
	if fn == nil {
		fn = func(string) bool { return true }
	}
	return fn, nil
}
