package imagex

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetachWithoutAttachIsSafe(t *testing.T) {
	e := NewImageElement(nil)
	e.DetachOpened()
	e.DetachFailed()

	b := NewImageBrush(nil)
	b.DetachOpened()
	b.DetachFailed()

	// Notifying with nothing attached is also a no-op.
	e.NotifyOpened()
	b.NotifyFailed("nobody listening")
}

func TestLoaderRoutesCompletion(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantOpened int
		wantFailed string
	}{
		{name: "success", err: nil, wantOpened: 1},
		{name: "failure", err: errors.New("404"), wantFailed: "404"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := func(src Source, done func(err error)) {
				done(tt.err)
			}
			e := NewImageElement(loader)

			opened := 0
			failed := ""
			e.AttachOpened(func() { opened++ })
			e.AttachFailed(func(message string) { failed = message })

			e.AssignSource(URISource("assets/photo.png"))

			assert.Equal(t, tt.wantOpened, opened)
			assert.Equal(t, tt.wantFailed, failed)
		})
	}
}

func TestAssignNilClearsWithoutSignals(t *testing.T) {
	calls := 0
	loader := func(src Source, done func(err error)) {
		calls++
		done(nil)
	}

	e := NewImageElement(loader)
	opened := 0
	e.AttachOpened(func() { opened++ })

	e.AssignSource(nil)

	assert.Equal(t, 0, calls, "nil source must not reach the loader")
	assert.Equal(t, 0, opened)
	assert.Nil(t, e.Source())
}

func TestAttachReplacesHandler(t *testing.T) {
	e := NewImageElement(nil)

	first, second := 0, 0
	e.AttachOpened(func() { first++ })
	e.AttachOpened(func() { second++ })

	e.NotifyOpened()

	assert.Equal(t, 0, first, "replaced handler must not fire")
	assert.Equal(t, 1, second)
}

func TestBrushDefaults(t *testing.T) {
	b := NewImageBrush(nil)
	assert.Equal(t, "uniform", b.Stretch)
	assert.Equal(t, "none", b.TileMode)

	e := NewImageElement(nil)
	assert.Equal(t, "contain", e.Fit)
}

func TestSourceRefs(t *testing.T) {
	assert.Equal(t, "assets/a.png", URISource("assets/a.png").Ref())
	assert.Equal(t, "bytes[3]", BytesSource([]byte{1, 2, 3}).Ref())
}
