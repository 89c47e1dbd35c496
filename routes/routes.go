// Package routes holds the site's route registry: the single table mapping
// logical pages to their path, display title and SEO metadata.
//
// A Registry is built once, validated at construction and never mutated
// afterwards, so it can be shared by concurrent requests without locking.
package routes

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ID is the symbolic key of a page, e.g. "HOME" or "SERVICES".
type ID string

// Entry is one logical page of the site.
type Entry struct {
	ID          ID     `validate:"required"`
	Title       string `validate:"required"`
	Path        string `validate:"required,startswith=/"`
	MetaTitle   string `validate:"required"`
	Description string `validate:"required"`

	// ShowInNav places the entry in the primary menu.
	ShowInNav bool
	// CallToAction renders the entry as the emphasised menu button.
	CallToAction bool
}

// Registry is an immutable, ordered set of entries.
type Registry struct {
	entries []Entry
	byID    map[ID]int
	byPath  map[string]int
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// New builds a registry from entries, keeping their order. It fails if an
// entry is incomplete or if two entries share an ID or a path.
func New(entries ...Entry) (*Registry, error) {
	r := &Registry{
		entries: make([]Entry, 0, len(entries)),
		byID:    make(map[ID]int, len(entries)),
		byPath:  make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if err := validate.Struct(e); err != nil {
			return nil, &InvalidRouteError{ID: e.ID, Err: err}
		}
		if i, ok := r.byID[e.ID]; ok {
			return nil, &DuplicateIDError{ID: e.ID, Path: r.entries[i].Path}
		}
		if i, ok := r.byPath[e.Path]; ok {
			return nil, &DuplicateRouteError{Path: e.Path, First: r.entries[i].ID, Second: e.ID}
		}
		r.byID[e.ID] = len(r.entries)
		r.byPath[e.Path] = len(r.entries)
		r.entries = append(r.entries, e)
	}
	return r, nil
}

// MustNew is like New but panics on error. It is meant for tables fixed at
// build time, where an error is a programming mistake.
func MustNew(entries ...Entry) *Registry {
	r, err := New(entries...)
	if err != nil {
		panic(fmt.Errorf("routes: %w", err))
	}
	return r
}

// Lookup returns the entry registered under id. An unknown id yields an
// error wrapping ErrNotFound.
func (r *Registry) Lookup(id ID) (Entry, error) {
	i, ok := r.byID[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return r.entries[i], nil
}

// MustLookup is like Lookup but panics when id is not registered.
func (r *Registry) MustLookup(id ID) Entry {
	e, err := r.Lookup(id)
	if err != nil {
		panic(err)
	}
	return e
}

// ByPath returns the entry whose path equals p exactly.
func (r *Registry) ByPath(p string) (Entry, bool) {
	i, ok := r.byPath[p]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// All returns every entry in insertion order. The slice is a copy.
func (r *Registry) All() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len reports the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}
