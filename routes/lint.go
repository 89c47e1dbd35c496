package routes

import (
	"fmt"
	"unicode/utf8"
)

// Recommended bounds for a search-result description.
const (
	MinDescriptionLen = 50
	MaxDescriptionLen = 160
)

// Warning is a soft problem with an entry. Warnings never block startup.
type Warning struct {
	ID      ID
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.ID, w.Message)
}

// Lint reports entries whose description falls outside the recommended length.
func Lint(r *Registry) []Warning {
	var out []Warning
	for _, e := range r.entries {
		n := utf8.RuneCountInString(e.Description)
		switch {
		case n < MinDescriptionLen:
			out = append(out, Warning{ID: e.ID, Message: fmt.Sprintf("description is %d characters, recommended at least %d", n, MinDescriptionLen)})
		case n > MaxDescriptionLen:
			out = append(out, Warning{ID: e.ID, Message: fmt.Sprintf("description is %d characters, recommended at most %d", n, MaxDescriptionLen)})
		}
	}
	return out
}
