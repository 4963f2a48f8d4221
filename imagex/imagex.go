package imagex

import (
	"sync"

	"github.com/lucidui/lucid"
)

// Template part names resolved by ImageEx.
const (
	PartImage    = "Image"
	PartProgress = "Progress"
)

// Visual state group and states driven by ImageEx.
const (
	StateGroupCommon = "CommonStates"
	StateLoading     = "Loading"
	StateLoaded      = "Loaded"
	StateUnloaded    = "Unloaded"
	StateFailed      = "Failed"
)

// LoadError describes a decode failure reported by the painting
// primitive. It wraps the primitive's message and is carried by the
// Failed signal.
type LoadError struct {
	Message string
}

// Error implements the error interface.
func (e *LoadError) Error() string { return "imagex: load failed: " + e.Message }

// Indicator is the progress template part: a busy indicator the control
// resizes during arrangement. Any host object with a measurable square
// size satisfies it.
type Indicator interface {
	Size() (width, height float32)
	SetSize(width, height float32)
}

// ImageEx is a lazy-loading image control. It binds the "Image" and
// "Progress" parts of its template, defers source assignment until the
// control scrolls into view when lazy loading is enabled, and bridges
// the primitive's opened/failed signals into its own public signals and
// the CommonStates visual state group.
//
// The control never decodes image bytes itself; assigning a source to
// the primitive starts the host's asynchronous decode pipeline, and the
// control only reacts to the completion signals. A completion for a
// superseded source is not filtered out.
type ImageEx struct {
	*lucid.Control

	// mu guards the fields below. Decode completions may arrive off the
	// UI goroutine, so this is a real mutex rather than a placeholder.
	mu sync.Mutex

	source     Source
	lazySource Source // held while deferred; at most one, silently overwritten

	enableLazy    bool
	lazySupported bool
	inViewport    bool
	initialized   bool

	image            Primitive
	progress         Indicator
	handlersAttached bool

	detachViewport func()

	// Initialized fires once per template application, after parts are
	// resolved and before load dispatch.
	Initialized lucid.Signal[struct{}]

	// Opened fires when the primitive reports a successful decode,
	// before the Loaded state transition.
	Opened lucid.Signal[struct{}]

	// Failed fires when the primitive reports a decode failure, before
	// the Failed state transition.
	Failed lucid.Signal[*LoadError]
}

// New creates an image control. A non-nil viewport enables lazy-loading
// support and subscribes the control to viewport changes; passing nil
// models a host without an effective-viewport mechanism, in which case
// every source is loaded immediately.
func New(viewport *lucid.ViewportNotifier) *ImageEx {
	ex := &ImageEx{Control: lucid.NewControl()}
	ex.Control.GoToState(StateGroupCommon, StateUnloaded)
	if viewport != nil {
		ex.lazySupported = true
		ex.detachViewport = viewport.Subscribe(ex.onViewportChanged)
	}
	return ex
}

// IsLazyLoadingSupported reports whether the host supplied a viewport
// mechanism at construction.
func (ex *ImageEx) IsLazyLoadingSupported() bool {
	ex.mu.Lock()
	defer ex.mu.Unlock()
	return ex.lazySupported
}

// SetEnableLazyLoading enables or disables deferred loading. It only
// takes effect when lazy loading is supported.
func (ex *ImageEx) SetEnableLazyLoading(enable bool) *ImageEx {
	ex.mu.Lock()
	ex.enableLazy = enable
	ex.mu.Unlock()
	return ex
}

// EnableLazyLoading returns whether deferred loading is enabled.
func (ex *ImageEx) EnableLazyLoading() bool {
	ex.mu.Lock()
	defer ex.mu.Unlock()
	return ex.enableLazy
}

// IsInitialized reports whether a template has been applied at least
// once. Image parts must not be assumed available before this.
func (ex *ImageEx) IsInitialized() bool {
	ex.mu.Lock()
	defer ex.mu.Unlock()
	return ex.initialized
}

// SetSource sets the logical image source and re-evaluates the load
// dispatch decision. Setting nil clears the primitive; clearing is
// always safe, even before the first template application.
func (ex *ImageEx) SetSource(src Source) *ImageEx {
	ex.mu.Lock()
	ex.source = src
	ex.mu.Unlock()
	ex.reload()
	return ex
}

// Source returns the logical image source, which may be nil.
func (ex *ImageEx) Source() Source {
	ex.mu.Lock()
	defer ex.mu.Unlock()
	return ex.source
}

// InViewport reports whether the control currently sits within the
// bring-into-view region on both axes.
func (ex *ImageEx) InViewport() bool {
	ex.mu.Lock()
	defer ex.mu.Unlock()
	return ex.inViewport
}

// ApplyTemplate applies the control's current visual template:
// previously attached handlers are detached from the old image part,
// the Image and Progress parts are re-resolved by name, Initialized is
// raised, the load dispatch decision runs, and handlers are attached to
// the new image part. Either part may be absent; the control tolerates
// missing parts silently.
func (ex *ImageEx) ApplyTemplate() {
	ex.mu.Lock()
	ex.detachHandlersLocked()

	image, _ := ex.Part(PartImage).(Primitive)
	progress, _ := ex.Part(PartProgress).(Indicator)
	ex.image = image
	ex.progress = progress

	ex.initialized = true
	ex.mu.Unlock()

	ex.Initialized.Emit(struct{}{})

	ex.reload()

	ex.mu.Lock()
	ex.attachHandlersLocked()
	ex.mu.Unlock()
}

// Release detaches the control from viewport notifications and from its
// primitive's signals. The control raises no further signals afterwards.
func (ex *ImageEx) Release() {
	ex.mu.Lock()
	ex.detachHandlersLocked()
	detach := ex.detachViewport
	ex.detachViewport = nil
	ex.mu.Unlock()

	if detach != nil {
		detach()
	}
}

// Arrange participates in the host's arrange pass. The progress
// indicator targets a square of one eighth of the smaller final
// dimension, then the final size is recorded as the actual size.
func (ex *ImageEx) Arrange(finalWidth, finalHeight float32) {
	target := finalWidth
	if finalHeight < target {
		target = finalHeight
	}
	target /= 8

	ex.mu.Lock()
	progress := ex.progress
	ex.mu.Unlock()

	if progress != nil {
		// TODO: this guard looks inverted (the size is only reasserted
		// when the width already matches the target); confirm with the
		// host styling before changing it, tests pin the current
		// behavior.
		if w, _ := progress.Size(); w == target {
			progress.SetSize(target, target)
		}
	}

	ex.SetActualSize(finalWidth, finalHeight)
}

// ============================================================================
// Load dispatch
// ============================================================================

// reload runs the dispatch decision: hand the current source to the
// image primitive now, or hold it as the pending lazy source until the
// control scrolls into view.
func (ex *ImageEx) reload() {
	ex.mu.Lock()
	image := ex.image
	src := ex.source

	if ex.lazySupported && src != nil && ex.enableLazy && !ex.inViewport {
		ex.lazySource = src
		ex.mu.Unlock()
		return
	}

	ex.lazySource = nil
	ex.mu.Unlock()
	ex.assign(image, src)
}

// assign drives the primitive and the pre-outcome visual state. A nil
// primitive makes this a no-op; a nil source clears the primitive and
// returns the control to Unloaded.
func (ex *ImageEx) assign(image Primitive, src Source) {
	if image == nil {
		return
	}
	if src == nil {
		image.AssignSource(nil)
		ex.Control.GoToState(StateGroupCommon, StateUnloaded)
		return
	}
	ex.Control.GoToState(StateGroupCommon, StateLoading)
	image.AssignSource(src)
}

// ============================================================================
// Signal bridging
// ============================================================================

func (ex *ImageEx) attachHandlersLocked() {
	if ex.image == nil || ex.handlersAttached {
		return
	}
	ex.image.AttachOpened(ex.onOpened)
	ex.image.AttachFailed(ex.onFailed)
	ex.handlersAttached = true
}

func (ex *ImageEx) detachHandlersLocked() {
	if ex.image != nil {
		ex.image.DetachOpened()
		ex.image.DetachFailed()
	}
	ex.handlersAttached = false
}

func (ex *ImageEx) onOpened() {
	ex.Opened.Emit(struct{}{})
	ex.Control.GoToState(StateGroupCommon, StateLoaded)
}

func (ex *ImageEx) onFailed(message string) {
	ex.Failed.Emit(&LoadError{Message: message})
	ex.Control.GoToState(StateGroupCommon, StateFailed)
}

// ============================================================================
// Viewport tracking
// ============================================================================

// onViewportChanged compares the reported bring-into-view distances
// against the control's arranged size. A distance exactly equal to the
// dimension counts as in view. Entering the viewport releases the
// pending lazy source, at most once; leaving it keeps the pending
// source held.
func (ex *ImageEx) onViewportChanged(vp lucid.EffectiveViewport) {
	width, height := ex.ActualSize()

	if vp.BringIntoViewDistanceX <= width && vp.BringIntoViewDistanceY <= height {
		ex.mu.Lock()
		ex.inViewport = true
		pending := ex.lazySource
		ex.lazySource = nil
		image := ex.image
		ex.mu.Unlock()

		if pending != nil {
			ex.assign(image, pending)
		}
		return
	}

	ex.mu.Lock()
	ex.inViewport = false
	ex.mu.Unlock()
}

// pendingSource returns the held lazy source, or nil. Test hook.
func (ex *ImageEx) pendingSource() Source {
	ex.mu.Lock()
	defer ex.mu.Unlock()
	return ex.lazySource
}
