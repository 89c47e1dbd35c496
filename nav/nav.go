// Package nav decides which menu links are active for the page being viewed
// and tracks whether the small-viewport menu is expanded.
//
// State is a plain value. Every operation here is a pure function of its
// inputs, so menu behaviour can be tested without a browser or a server.
package nav

import (
	"net/http"
	"net/url"

	"github.com/algotixai/site/routes"
)

// MenuParam is the query parameter carrying the menu state between requests.
const MenuParam = "menu"

const menuOpen = "open"

// State is the per-render navigation state.
type State struct {
	CurrentPath  string
	MenuExpanded bool
}

// NewState returns the initial state for a page: collapsed.
func NewState(currentPath string) State {
	return State{CurrentPath: currentPath}
}

// Toggle flips the menu between collapsed and expanded.
func Toggle(s State) State {
	s.MenuExpanded = !s.MenuExpanded
	return s
}

// Toggle is shorthand for Toggle(s).
func (s State) Toggle() State {
	return Toggle(s)
}

// ResolveActive reports whether a link to path represents the current page.
// Only an exact match counts; "/services/" is not "/services".
func ResolveActive(path, currentPath string) bool {
	return path == currentPath
}

// Link pairs a registry entry with its active flag.
type Link struct {
	Entry  routes.Entry
	Active bool
}

// Render pairs each entry with its active flag, keeping the input order.
func Render(s State, entries []routes.Entry) []Link {
	links := make([]Link, 0, len(entries))
	for _, e := range entries {
		links = append(links, Link{Entry: e, Active: ResolveActive(e.Path, s.CurrentPath)})
	}
	return links
}

// Menu returns the registry entries flagged for the primary menu, in
// registry order.
func Menu(r *routes.Registry) []routes.Entry {
	var out []routes.Entry
	for _, e := range r.All() {
		if e.ShowInNav {
			out = append(out, e)
		}
	}
	return out
}

// View is the navbar view model.
type View struct {
	CurrentPath  string
	Links        []Link
	CallToAction []Link
	Expanded     bool
	ToggleHref   string
}

// Build assembles the navbar view model for s from the registry menu.
func Build(s State, r *routes.Registry) View {
	v := View{
		CurrentPath: s.CurrentPath,
		Expanded:    s.MenuExpanded,
		ToggleHref:  ToggleHref(s),
	}
	for _, l := range Render(s, Menu(r)) {
		if l.Entry.CallToAction {
			v.CallToAction = append(v.CallToAction, l)
			continue
		}
		v.Links = append(v.Links, l)
	}
	return v
}

// StateFromRequest derives the state from the request path and the menu
// query parameter. A request without the parameter starts collapsed.
func StateFromRequest(r *http.Request) State {
	s := NewState(r.URL.Path)
	s.MenuExpanded = r.URL.Query().Get(MenuParam) == menuOpen
	return s
}

// ToggleHref returns the URL of the current page with the menu flipped.
func ToggleHref(s State) string {
	next := Toggle(s)
	p := s.CurrentPath
	if p == "" {
		p = "/"
	}
	if !next.MenuExpanded {
		return p
	}
	q := url.Values{}
	q.Set(MenuParam, menuOpen)
	return p + "?" + q.Encode()
}
