// Package gallery is the sample shell: a registry of demo pages that
// exercise the toolkit controls. Pages are thin glue over the public
// control APIs and write a transcript of the interaction to a writer,
// which keeps them runnable without a window system.
package gallery

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
)

// Page is one sample page of the demo shell.
type Page struct {
	// Name is the registry key, e.g. "lazy-image".
	Name string

	// Title is the human-readable page title.
	Title string

	// Description is a one-line summary shown in listings.
	Description string

	// Run executes the page's scripted interaction.
	Run func(ctx context.Context, out io.Writer) error
}

// Registry holds the registered sample pages.
type Registry struct {
	mu    sync.Mutex
	pages map[string]Page
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{pages: make(map[string]Page)}
}

// Register adds a page, replacing any page with the same name.
func (r *Registry) Register(p Page) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pages[p.Name] = p
}

// Lookup returns the page registered under name.
func (r *Registry) Lookup(name string) (Page, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pages[name]
	return p, ok
}

// Pages returns all pages sorted by name.
func (r *Registry) Pages() []Page {
	r.mu.Lock()
	defer r.mu.Unlock()
	pages := make([]Page, 0, len(r.pages))
	for _, p := range r.pages {
		pages = append(pages, p)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].Name < pages[j].Name })
	return pages
}

// Run looks up and executes a page.
func (r *Registry) Run(ctx context.Context, name string, out io.Writer) error {
	p, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("gallery: unknown page %q", name)
	}
	return p.Run(ctx, out)
}
