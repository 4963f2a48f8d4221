package lucid

import "sync"

// ProgressRing is a minimal busy indicator suitable as the progress
// part of a templated control. Hosts bind Active to a visual state
// (typically showing the ring while a control reports Loading).
type ProgressRing struct {
	mu            sync.Mutex
	width, height float32
	active        bool
}

// NewProgressRing creates an inactive ring with the given square size.
func NewProgressRing(size float32) *ProgressRing {
	return &ProgressRing{width: size, height: size}
}

// Size returns the ring's width and height.
func (p *ProgressRing) Size() (width, height float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.width, p.height
}

// SetSize sets the ring's width and height.
func (p *ProgressRing) SetSize(width, height float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.width, p.height = width, height
}

// SetActive starts or stops the busy animation.
func (p *ProgressRing) SetActive(active bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active = active
}

// Active reports whether the busy animation is running.
func (p *ProgressRing) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}
