package lucid

import "sync"

// EffectiveViewport describes an element's relation to the visible
// region of its scroll host. The bring-into-view distances are how far
// the element would have to travel on each axis to be fully on screen;
// zero on both axes means the element is already visible.
type EffectiveViewport struct {
	// BringIntoViewDistanceX is the horizontal distance, in pixels,
	// between the element and the nearest edge of the visible region.
	BringIntoViewDistanceX float32

	// BringIntoViewDistanceY is the vertical distance.
	BringIntoViewDistanceY float32
}

// ViewportNotifier publishes effective-viewport changes to subscribed
// elements. The host framework owns one notifier per scroll host and
// publishes on every scroll or resize pass.
type ViewportNotifier struct {
	mu   sync.Mutex
	next uint64
	subs []viewportSub

	last    EffectiveViewport
	hasLast bool
}

type viewportSub struct {
	id uint64
	fn func(EffectiveViewport)
}

// NewViewportNotifier creates a notifier with no subscribers.
func NewViewportNotifier() *ViewportNotifier {
	return &ViewportNotifier{}
}

// Subscribe registers a handler for viewport changes and returns a
// cancel function. If the notifier has published before, the handler is
// immediately invoked with the most recent viewport so late subscribers
// do not miss the current visibility.
func (n *ViewportNotifier) Subscribe(fn func(EffectiveViewport)) (cancel func()) {
	n.mu.Lock()
	n.next++
	id := n.next
	n.subs = append(n.subs, viewportSub{id: id, fn: fn})
	replay := n.hasLast
	last := n.last
	n.mu.Unlock()

	if replay {
		fn(last)
	}

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		for i, sub := range n.subs {
			if sub.id == id {
				n.subs = append(n.subs[:i], n.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers a viewport change to all current subscribers.
func (n *ViewportNotifier) Publish(vp EffectiveViewport) {
	n.mu.Lock()
	n.last = vp
	n.hasLast = true
	subs := make([]viewportSub, len(n.subs))
	copy(subs, n.subs)
	n.mu.Unlock()

	for _, sub := range subs {
		sub.fn(vp)
	}
}
