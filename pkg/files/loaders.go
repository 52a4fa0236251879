package files

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/otdb/otdb-terminal/pkg/models"
)

// LoadForm reads a form definition file.
func LoadForm(path string) (*models.FormDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read form %s: %w", path, err)
	}

	var def models.FormDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse form %s: %w", path, err)
	}

	for id, kind := range def.Searches {
		if !isSearchKind(kind) {
			return nil, fmt.Errorf("form %s: search %s: unknown collection %q", path, id, kind)
		}
	}

	return &def, nil
}

func isSearchKind(kind models.SearchKind) bool {
	for _, k := range models.SearchKinds {
		if k == kind {
			return true
		}
	}
	return false
}
