// Package imagex provides a lazy-loading image control. The control
// coordinates asynchronous image acquisition, viewport-driven deferred
// loading, template-part binding, and a finite visual state machine on
// top of a host framework's image-painting primitive.
package imagex

import (
	"fmt"
	"sync"
)

// Source is the logical image source a control is asked to display.
// The control only holds a reference; ownership of the bytes and of the
// decoded pixels stays with the caller and the painting primitive.
type Source interface {
	// Ref returns a short description of the source for diagnostics.
	Ref() string
}

// URISource is a source addressed by URI or file path.
type URISource string

// Ref returns the URI.
func (u URISource) Ref() string { return string(u) }

// BytesSource is an in-memory encoded image.
type BytesSource []byte

// Ref returns a short description of the byte payload.
func (b BytesSource) Ref() string { return fmt.Sprintf("bytes[%d]", len(b)) }

// Loader starts asynchronous decode of src on the host's own pipeline
// and invokes done exactly once when the decode settles. Implementations
// must not block the caller.
type Loader func(src Source, done func(err error))

// Primitive is the capability surface of an image-painting primitive.
// Two variants exist, ImageElement and ImageBrush; both expose
// semantically identical opened and failed signals. The image control
// depends only on this interface.
//
// Detach methods are safe no-ops when nothing is attached. AssignSource
// with a nil source clears the primitive without raising either signal.
type Primitive interface {
	AttachOpened(fn func())
	DetachOpened()
	AttachFailed(fn func(message string))
	DetachFailed()
	AssignSource(src Source)
}

// primitiveBase carries the handler slots and decode delegation shared
// by both primitive variants.
type primitiveBase struct {
	mu     sync.Mutex
	loader Loader
	source Source
	opened func()
	failed func(message string)
}

// AttachOpened registers the opened handler, replacing any previous one.
func (p *primitiveBase) AttachOpened(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opened = fn
}

// DetachOpened removes the opened handler. Safe with none attached.
func (p *primitiveBase) DetachOpened() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opened = nil
}

// AttachFailed registers the failed handler, replacing any previous one.
func (p *primitiveBase) AttachFailed(fn func(message string)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failed = fn
}

// DetachFailed removes the failed handler. Safe with none attached.
func (p *primitiveBase) DetachFailed() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failed = nil
}

// AssignSource hands src to the host decode pipeline. A nil src clears
// the primitive. Completion is reported through the attached handlers;
// a stale completion for a superseded source is not filtered.
func (p *primitiveBase) AssignSource(src Source) {
	p.mu.Lock()
	p.source = src
	loader := p.loader
	p.mu.Unlock()

	if src == nil || loader == nil {
		return
	}
	loader(src, func(err error) {
		if err != nil {
			p.NotifyFailed(err.Error())
			return
		}
		p.NotifyOpened()
	})
}

// Source returns the most recently assigned source, or nil.
func (p *primitiveBase) Source() Source {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.source
}

// NotifyOpened raises the opened signal. Hosts with their own decode
// pipeline call this instead of supplying a Loader.
func (p *primitiveBase) NotifyOpened() {
	p.mu.Lock()
	fn := p.opened
	p.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// NotifyFailed raises the failed signal with an error message.
func (p *primitiveBase) NotifyFailed(message string) {
	p.mu.Lock()
	fn := p.failed
	p.mu.Unlock()
	if fn != nil {
		fn(message)
	}
}

// ImageElement is the plain image element variant of the painting
// primitive. The decoded image is drawn directly into the element's
// layout slot.
type ImageElement struct {
	primitiveBase

	// Fit controls how the decoded image fits the element's bounds:
	// "contain" (default), "cover", "fill" or "none".
	Fit string
}

// NewImageElement creates an image element delegating decode to loader.
// A nil loader is valid; signals are then raised only through
// NotifyOpened/NotifyFailed.
func NewImageElement(loader Loader) *ImageElement {
	e := &ImageElement{Fit: "contain"}
	e.loader = loader
	return e
}

// ImageBrush is the brush variant of the painting primitive. The decoded
// image paints the fill of an arbitrary shape rather than a dedicated
// element.
type ImageBrush struct {
	primitiveBase

	// Stretch controls how the image stretches across the painted
	// geometry: "uniform" (default), "uniform-fill", "fill" or "none".
	Stretch string

	// TileMode controls repetition outside the image bounds:
	// "none" (default), "tile", "flip-x", "flip-y" or "flip-xy".
	TileMode string
}

// NewImageBrush creates an image brush delegating decode to loader.
func NewImageBrush(loader Loader) *ImageBrush {
	b := &ImageBrush{Stretch: "uniform", TileMode: "none"}
	b.loader = loader
	return b
}
