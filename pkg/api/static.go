package api

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/otdb/otdb-terminal/pkg/form"
	"github.com/otdb/otdb-terminal/pkg/models"
)

// StaticSource answers searches from fixed option lists, for working
// without a server.
type StaticSource struct {
	options map[models.SearchKind][]form.Option
}

// NewStaticSource creates a source over options.
func NewStaticSource(options map[models.SearchKind][]form.Option) *StaticSource {
	return &StaticSource{options: options}
}

// LoadStaticSource reads a JSON file of the form
// {"users": [{"label": "...", "value": 1}], "mappools": [...]}.
func LoadStaticSource(path string) (*StaticSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	options := map[models.SearchKind][]form.Option{}
	if err := json.Unmarshal(data, &options); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return NewStaticSource(options), nil
}

// Search implements Searcher with a case-insensitive substring match.
func (s *StaticSource) Search(ctx context.Context, kind models.SearchKind, query string) ([]form.Option, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	list, ok := s.options[kind]
	if !ok {
		return nil, fmt.Errorf("unknown search collection %q", kind)
	}

	needle := strings.ToLower(query)
	var out []form.Option
	for _, opt := range list {
		if strings.Contains(strings.ToLower(opt.Label), needle) {
			out = append(out, opt)
		}
	}
	return out, nil
}
