package nav

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/algotixai/site/routes"
)

// Crumb is one breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Breadcrumbs returns Home followed by the page at currentPath. Registered
// pages use their registry title; anything else gets a label derived from
// the last path segment.
func Breadcrumbs(r *routes.Registry, currentPath string) []Crumb {
	home, err := r.Lookup(routes.Home)
	if err != nil {
		home = routes.Entry{Title: "Home", Path: "/"}
	}
	crumbs := []Crumb{{Href: home.Path, Label: home.Title, Active: ResolveActive(home.Path, currentPath)}}
	if currentPath == "" || currentPath == home.Path {
		return crumbs
	}
	if e, ok := r.ByPath(currentPath); ok {
		return append(crumbs, Crumb{Href: e.Path, Label: e.Title, Active: true})
	}
	return append(crumbs, Crumb{Href: currentPath, Label: SegmentLabel(path.Base(currentPath)), Active: true})
}

// SegmentLabel turns a slug such as "case-studies" into "Case Studies".
func SegmentLabel(seg string) string {
	seg = strings.NewReplacer("-", " ", "_", " ").Replace(strings.Trim(seg, "/"))
	// A Caser is stateful and must not be shared.
	return cases.Title(language.English).String(seg)
}
