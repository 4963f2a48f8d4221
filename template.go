package lucid

import "sync"

// Template is a visual template: a set of named parts a control resolves
// when the template is applied. Parts are arbitrary host objects; a
// control type-checks the parts it cares about and tolerates absent or
// unexpected ones.
//
// Templates are safe for concurrent use. A template may be shared by
// many controls; each control resolves its own part references on every
// application pass.
type Template struct {
	mu    sync.RWMutex
	parts map[string]any
}

// NewTemplate creates an empty template.
func NewTemplate() *Template {
	return &Template{parts: make(map[string]any)}
}

// Define registers a named part, replacing any previous definition.
// Defining a nil part removes the name.
func (t *Template) Define(name string, part any) *Template {
	t.mu.Lock()
	defer t.mu.Unlock()
	if part == nil {
		delete(t.parts, name)
		return t
	}
	t.parts[name] = part
	return t
}

// Part returns the part registered under name, or nil when the template
// omits it.
func (t *Template) Part(name string) any {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.parts[name]
}

// Names returns the names of all defined parts, in unspecified order.
func (t *Template) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.parts))
	for name := range t.parts {
		names = append(names, name)
	}
	return names
}
