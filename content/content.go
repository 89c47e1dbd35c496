// Package content loads the page copy that sits under each route: markdown
// files with YAML front matter, embedded in the binary and rendered once at
// startup.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v3"

	"github.com/algotixai/site/routes"
)

//go:embed pages/*.md
var embedded embed.FS

// ErrFrontMatter is returned for a page whose front matter is missing or
// cannot be parsed.
var ErrFrontMatter = errors.New("invalid front matter")

// Page is one rendered content page. Slug is the route path without its
// leading slash.
type Page struct {
	Slug    string
	Title   string
	Summary string
	HTML    string
	SEO     SEO
}

// SEO holds optional metadata overrides from front matter.
type SEO struct {
	Title       string
	Description string
}

type frontMatter struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	SEO     struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
	} `yaml:"seo"`
}

// Library is the immutable set of loaded pages.
type Library struct {
	pages map[string]Page
}

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Typographer),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// Default loads the pages embedded in the binary.
func Default() (*Library, error) {
	return Load(embedded, "pages")
}

// Load reads every *.md file directly under dir in fsys.
func Load(fsys fs.FS, dir string) (*Library, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.md"))
	if err != nil {
		return nil, err
	}
	policy := bluemonday.UGCPolicy()
	lib := &Library{pages: make(map[string]Page, len(files))}
	for _, f := range files {
		raw, err := fs.ReadFile(fsys, f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f, err)
		}
		p, err := parse(raw, policy)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", f, err)
		}
		p.Slug = strings.TrimSuffix(path.Base(f), ".md")
		lib.pages[p.Slug] = p
	}
	return lib, nil
}

func parse(raw []byte, policy *bluemonday.Policy) (Page, error) {
	raw = bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(raw, []byte("---\n")) {
		return Page{}, fmt.Errorf("%w: missing opening ---", ErrFrontMatter)
	}
	head, body, ok := bytes.Cut(raw[4:], []byte("\n---\n"))
	if !ok {
		return Page{}, fmt.Errorf("%w: missing closing ---", ErrFrontMatter)
	}
	var fm frontMatter
	if err := yaml.Unmarshal(head, &fm); err != nil {
		return Page{}, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	if fm.Title == "" {
		return Page{}, fmt.Errorf("%w: title is required", ErrFrontMatter)
	}
	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return Page{}, fmt.Errorf("render markdown: %w", err)
	}
	return Page{
		Title:   fm.Title,
		Summary: fm.Summary,
		HTML:    string(policy.SanitizeBytes(buf.Bytes())),
		SEO:     SEO{Title: fm.SEO.Title, Description: fm.SEO.Description},
	}, nil
}

// Get returns the page for slug.
func (l *Library) Get(slug string) (Page, bool) {
	p, ok := l.pages[slug]
	return p, ok
}

// ForEntry returns the page backing a registry entry.
func (l *Library) ForEntry(e routes.Entry) (Page, bool) {
	return l.Get(strings.TrimPrefix(e.Path, "/"))
}

// Slugs returns the loaded slugs in sorted order.
func (l *Library) Slugs() []string {
	out := make([]string, 0, len(l.pages))
	for s := range l.pages {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// CheckRoutes verifies that every page belongs to a registered path. Orphan
// pages would never be served.
func (l *Library) CheckRoutes(r *routes.Registry) error {
	var errs []error
	for _, s := range l.Slugs() {
		if _, ok := r.ByPath("/" + s); !ok {
			errs = append(errs, fmt.Errorf("content page %q: %w: no route with path /%s", s, routes.ErrNotFound, s))
		}
	}
	return errors.Join(errs...)
}
