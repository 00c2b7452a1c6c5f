// Package templates owns the HTML page templates. A Store is parsed once at
// startup and is read-only afterwards, so it can be shared by every request
// without locking.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"sort"
)

const (
	Layout = "layout.html"
	Index  = "index.html"
	Error  = "error.html"
)

//go:embed html/*.html
var embedded embed.FS

// IndexContext is the data consumed by the index page.
type IndexContext struct {
	Lang       string
	Color      string
	Title      string
	Heading    string
	Tagline    string
	ColorLabel string
}

// ErrorContext is the data consumed by the error page.
type ErrorContext struct {
	Lang       string
	Error      string
	StatusCode string
}

// Store maps template names to parsed templates. Every page is executed
// through the layout.
type Store struct {
	pages map[string]*template.Template
}

// Embedded returns the template sources compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "html")
	if err != nil {
		panic(fmt.Sprintf("templates: embedded sources: %v", err))
	}
	return sub
}

// Load parses the layout plus the index and error pages from fsys.
func Load(fsys fs.FS) (*Store, error) {
	return Parse(fsys, Index, Error)
}

// Parse builds a store from the layout and the given pages. Each page
// overrides the layout's blocks in its own clone of the layout.
func Parse(fsys fs.FS, pages ...string) (*Store, error) {
	layoutSrc, err := fs.ReadFile(fsys, Layout)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", Layout, err)
	}
	layout, err := template.New(Layout).Option("missingkey=error").Parse(string(layoutSrc))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", Layout, err)
	}

	store := &Store{pages: make(map[string]*template.Template, len(pages)+1)}
	for _, page := range pages {
		src, err := fs.ReadFile(fsys, page)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", page, err)
		}
		set, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", page, err)
		}
		set.Option("missingkey=error")
		if _, err := set.New(page).Parse(string(src)); err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		store.pages[page] = set
	}
	store.pages[Layout] = layout

	return store, nil
}

// Names lists the templates in the store.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.pages))
	for name := range s.pages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render executes the named template against data. Output is buffered so a
// failed render never yields a partial page. Map data must hold every key the
// template references.
func (s *Store) Render(name string, data any) ([]byte, error) {
	var set *template.Template
	if s != nil {
		set = s.pages[name]
	}
	if set == nil {
		return nil, &RenderError{Kind: KindTemplateNotFound, Template: name}
	}

	var buf bytes.Buffer
	if err := set.ExecuteTemplate(&buf, Layout, data); err != nil {
		return nil, &RenderError{Kind: KindRenderFailure, Template: name, Err: err}
	}
	return buf.Bytes(), nil
}

// RenderIndex renders the index page.
func (s *Store) RenderIndex(ctx IndexContext) ([]byte, error) {
	return s.Render(Index, ctx)
}

// RenderErrorPage renders the error page.
func (s *Store) RenderErrorPage(ctx ErrorContext) ([]byte, error) {
	return s.Render(Error, ctx)
}
