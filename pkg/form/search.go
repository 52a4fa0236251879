package form

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// DebounceDelay is the quiet period after the last edit before a search
// is dispatched.
const DebounceDelay = 500 * time.Millisecond

// SearchFunc fetches options for query. It is called off the form's loop
// and may block.
type SearchFunc func(ctx context.Context, query string) ([]Option, error)

// TextSearch is a dropdown whose items come from a remote search rather
// than a static list.
type TextSearch struct {
	*TextDropdown

	search     SearchFunc
	timer      Timer
	generation uint64
	inFlight   bool
	lastQuery  string
	err        error
	notice     string
}

func newTextSearch(id string, attrs Attributes) *TextSearch {
	s := &TextSearch{
		TextDropdown: newTextDropdown(id, KindSearch, attrs),
	}
	// Results are already filtered by the remote side.
	s.match = func(string, string) bool { return true }
	s.validate = nil
	s.hooks.after = s.onEdit
	s.self = s
	return s
}

func buildTextSearch(m Markup) (Input, error) {
	if len(m.Options) > 0 {
		return nil, constructionErr(m.ID, ErrInvalidAttribute, "options")
	}
	if m.Validation != "" && m.Validation != ValidationAny {
		return nil, constructionErr(m.ID, ErrInvalidAttribute, "validation="+m.Validation)
	}
	return newTextSearch(m.ID, m.Attributes), nil
}

// BindSearch sets the function used to fetch options.
func (s *TextSearch) BindSearch(fn SearchFunc) {
	s.search = fn
}

// CheckValueValidity implements Input. Only the text field rules apply;
// matching against the items is left to the remote side.
func (s *TextSearch) CheckValueValidity() bool {
	return s.TextDropdown.CheckValueValidity()
}

// onEdit drops any pending search and, unless a pick locks the field,
// clears the items and schedules a fresh one.
func (s *TextSearch) onEdit() {
	s.notice = ""
	s.cancel()

	if s.hasPicked() {
		return
	}

	s.ClearItems()

	query := strings.TrimSpace(s.value)
	if query == "" || s.search == nil {
		return
	}

	loop := s.loop()
	if loop == nil {
		s.logger().Warn("search input has no loop, not scheduling", "input", s.id)
		return
	}

	gen := s.generation
	s.timer = loop.AfterFunc(DebounceDelay, func() { s.dispatch(gen, query) })
}

func (s *TextSearch) cancel() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.inFlight = false
	s.generation++
}

func (s *TextSearch) loop() Loop {
	if s.manager == nil {
		return nil
	}
	return s.manager.loop
}

func (s *TextSearch) dispatch(gen uint64, query string) {
	if gen != s.generation {
		return
	}
	s.timer = nil
	s.inFlight = true
	s.lastQuery = query

	ctx := s.manager.context()
	search := s.search
	s.logger().Debug("dispatching search", "input", s.id, "query", query)

	s.loop().Go(func() func() {
		opts, err := search(ctx, query)
		return func() { s.resolve(gen, query, opts, err) }
	})
}

func (s *TextSearch) resolve(gen uint64, query string, opts []Option, err error) {
	if gen != s.generation {
		s.logger().Debug("dropping stale search result", "input", s.id, "query", query)
		return
	}
	s.inFlight = false

	if err != nil {
		s.err = err
		s.notice = fmt.Sprintf("search for %q failed", query)
		s.logger().Warn("search failed", "input", s.id, "query", query, "err", err)
		return
	}

	s.err = nil
	s.SetOptions(opts)
}

// Searching reports whether a search is scheduled or awaiting its result.
func (s *TextSearch) Searching() bool {
	return s.timer != nil || s.inFlight
}

// LastQuery returns the text of the most recently dispatched search.
func (s *TextSearch) LastQuery() string {
	return s.lastQuery
}

// Err returns the error of the last search, nil if it succeeded.
func (s *TextSearch) Err() error {
	return s.err
}

// Notice returns a short message about a failed search. The next edit
// clears it.
func (s *TextSearch) Notice() string {
	return s.notice
}

// Stop cancels any pending search. The manager calls it on removal.
func (s *TextSearch) Stop() {
	s.cancel()
}
