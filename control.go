package lucid

import (
	"sync"
	"sync/atomic"
)

// ControlID uniquely identifies a control instance.
// IDs are stable for the lifetime of the control.
type ControlID uint64

var nextControlID atomic.Uint64

func newControlID() ControlID {
	return ControlID(nextControlID.Add(1))
}

// StateSink receives visual state transitions. The host framework
// implements this to drive style/animation systems. A nil sink is valid;
// transitions are then tracked but not reported anywhere.
type StateSink interface {
	// StateChanged is called after a control entered a new state within
	// a state group. It is never called when the state did not change.
	StateChanged(c *Control, group, state string)
}

// StateSinkFunc adapts a function to the StateSink interface.
type StateSinkFunc func(c *Control, group, state string)

// StateChanged calls f.
func (f StateSinkFunc) StateChanged(c *Control, group, state string) { f(c, group, state) }

// Control is the base for templated controls. It owns the control's
// identity, its arranged size, and its visual state groups.
//
// Controls are safe for concurrent property access. All methods may be
// called from any goroutine, though hosts typically drive a control from
// a single UI goroutine.
type Control struct {
	mu sync.RWMutex

	id            ControlID
	width, height float32

	template *Template

	// Visual states, one current state per group. Exactly one state of a
	// group is active at a time.
	states map[string]string

	sink StateSink
}

// NewControl creates a control with no template and no visual states.
func NewControl() *Control {
	return &Control{
		id:     newControlID(),
		states: make(map[string]string),
	}
}

// ID returns the control's unique identifier.
func (c *Control) ID() ControlID {
	return c.id
}

// SetStateSink sets the sink notified on visual state transitions.
func (c *Control) SetStateSink(sink StateSink) *Control {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sink = sink
	return c
}

// ============================================================================
// Size
// ============================================================================

// SetActualSize records the arranged width and height.
func (c *Control) SetActualSize(width, height float32) *Control {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.width, c.height = width, height
	return c
}

// ActualSize returns the arranged width and height.
func (c *Control) ActualSize() (width, height float32) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.width, c.height
}

// ActualWidth returns the arranged width.
func (c *Control) ActualWidth() float32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.width
}

// ActualHeight returns the arranged height.
func (c *Control) ActualHeight() float32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.height
}

// ============================================================================
// Template
// ============================================================================

// SetTemplate stores the visual template for the next application pass.
// SetTemplate does not resolve parts; controls do that in their template
// application method.
func (c *Control) SetTemplate(t *Template) *Control {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.template = t
	return c
}

// Template returns the current visual template, or nil.
func (c *Control) Template() *Template {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.template
}

// Part resolves a named part from the current template. It returns nil
// when no template is set or the template omits the part.
func (c *Control) Part(name string) any {
	c.mu.RLock()
	t := c.template
	c.mu.RUnlock()
	if t == nil {
		return nil
	}
	return t.Part(name)
}

// ============================================================================
// Visual States
// ============================================================================

// GoToState transitions the given state group to the named state.
// It reports whether the active state changed. The sink is notified only
// on an actual transition, after the state is recorded.
func (c *Control) GoToState(group, state string) bool {
	c.mu.Lock()
	if c.states[group] == state {
		c.mu.Unlock()
		return false
	}
	c.states[group] = state
	sink := c.sink
	c.mu.Unlock()

	if sink != nil {
		sink.StateChanged(c, group, state)
	}
	return true
}

// State returns the active state of a group, or "" if the group has not
// been driven yet.
func (c *Control) State(group string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.states[group]
}
