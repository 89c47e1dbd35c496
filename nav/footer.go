package nav

import (
	"errors"

	"github.com/algotixai/site/routes"
)

// Column is a hand-authored group of footer links.
type Column struct {
	Heading string
	IDs     []routes.ID
}

// ColumnView is a Column resolved against the registry.
type ColumnView struct {
	Heading string
	Links   []Link
}

// CheckLinks verifies that every id is registered. The returned error joins
// one ErrNotFound-wrapping error per missing id.
func CheckLinks(r *routes.Registry, ids ...routes.ID) error {
	var errs []error
	for _, id := range ids {
		if _, err := r.Lookup(id); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ResolveColumns turns footer columns into links for s.
func ResolveColumns(s State, r *routes.Registry, cols []Column) ([]ColumnView, error) {
	out := make([]ColumnView, 0, len(cols))
	for _, c := range cols {
		entries := make([]routes.Entry, 0, len(c.IDs))
		for _, id := range c.IDs {
			e, err := r.Lookup(id)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}
		out = append(out, ColumnView{Heading: c.Heading, Links: Render(s, entries)})
	}
	return out, nil
}
