package testhelpers

import (
	"context"
	"strings"
	"sync"

	"github.com/otdb/otdb-terminal/pkg/form"
)

// SearchRecorder is a fake search backend that records every query.
type SearchRecorder struct {
	mu      sync.Mutex
	queries []string
	results map[string][]form.Option
	// Fallback is returned for queries without a canned result.
	Fallback []form.Option
	// Err, when set, is returned for every query.
	Err error
}

// NewSearchRecorder creates a recorder with no canned results.
func NewSearchRecorder() *SearchRecorder {
	return &SearchRecorder{results: map[string][]form.Option{}}
}

// On registers the result for query.
func (r *SearchRecorder) On(query string, opts ...form.Option) *SearchRecorder {
	r.results[query] = opts
	return r
}

// Search implements form.SearchFunc.
func (r *SearchRecorder) Search(_ context.Context, query string) ([]form.Option, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.queries = append(r.queries, query)
	if r.Err != nil {
		return nil, r.Err
	}
	if opts, ok := r.results[query]; ok {
		return opts, nil
	}
	var out []form.Option
	for _, opt := range r.Fallback {
		if strings.Contains(strings.ToLower(opt.Label), strings.ToLower(query)) {
			out = append(out, opt)
		}
	}
	return out, nil
}

// Queries returns the queries seen so far.
func (r *SearchRecorder) Queries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.queries...)
}
