// Package listview holds the read-side behavior of the portal's record
// list screens: loading a collection, narrowing it with a search term and
// categorical filters, and summarizing the full collection independently
// of whatever narrowing is active.
package listview

import (
	"context"
	"strings"
	"sync"
)

// FilterAll is the sentinel that deactivates a categorical filter.
const FilterAll = "all"

// Loader fetches the full record collection for a view.
type Loader[T any] func(ctx context.Context) ([]T, error)

// View is one list screen's state. Search matches case-insensitively
// against the fields the view designates; each categorical filter matches
// exactly unless set to FilterAll. Stats always run over the full loaded
// collection, never the narrowed one.
type View[T any] struct {
	mu       sync.RWMutex
	loader   Loader[T]
	searched func(T) []string
	category map[string]func(T) string

	records []T
	search  string
	active  map[string]string
	loaded  bool
}

func newView[T any](loader Loader[T], searched func(T) []string, category map[string]func(T) string) *View[T] {
	return &View[T]{
		loader:   loader,
		searched: searched,
		category: category,
		active:   make(map[string]string),
	}
}

// Load replaces the collection with a fresh fetch. Filters and the search
// term survive a reload.
func (v *View[T]) Load(ctx context.Context) error {
	records, err := v.loader(ctx)
	if err != nil {
		return err
	}
	v.mu.Lock()
	v.records = records
	v.loaded = true
	v.mu.Unlock()
	return nil
}

func (v *View[T]) Loaded() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.loaded
}

// SetSearch sets the free-text term. An empty term matches everything.
func (v *View[T]) SetSearch(term string) {
	v.mu.Lock()
	v.search = term
	v.mu.Unlock()
}

// SetFilter selects a category value. FilterAll (or "") deactivates it.
// Unknown filter names are ignored.
func (v *View[T]) SetFilter(name, value string) {
	if _, ok := v.category[name]; !ok {
		return
	}
	v.mu.Lock()
	if value == "" || value == FilterAll {
		delete(v.active, name)
	} else {
		v.active[name] = value
	}
	v.mu.Unlock()
}

// All returns the full loaded collection.
func (v *View[T]) All() []T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]T, len(v.records))
	copy(out, v.records)
	return out
}

// Visible returns the records that pass the search term and every active
// filter.
func (v *View[T]) Visible() []T {
	v.mu.RLock()
	defer v.mu.RUnlock()

	term := strings.ToLower(v.search)
	out := make([]T, 0, len(v.records))
	for _, rec := range v.records {
		if term != "" && !matchesSearch(v.searched(rec), term) {
			continue
		}
		if !v.matchesFiltersLocked(rec) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func matchesSearch(fields []string, term string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func (v *View[T]) matchesFiltersLocked(rec T) bool {
	for name, want := range v.active {
		if v.category[name](rec) != want {
			return false
		}
	}
	return true
}

// Empty reports whether the current narrowing leaves nothing to show.
// Callers pair it with an empty-state message instead of a blank table.
func (v *View[T]) Empty() bool {
	return len(v.Visible()) == 0
}
