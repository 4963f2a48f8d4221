package gallery

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"time"

	"github.com/lucidui/lucid"
	"github.com/lucidui/lucid/chrome"
	"github.com/lucidui/lucid/dial"
	"github.com/lucidui/lucid/imagex"
	"github.com/lucidui/lucid/internal/paint"
	"github.com/lucidui/lucid/theme"
)

// Default builds the registry of built-in sample pages against a theme.
func Default(th theme.Theme) *Registry {
	r := NewRegistry()
	r.Register(lazyImagePage(th))
	r.Register(dialPage(th))
	r.Register(chromePage(th))
	return r
}

// samplePNG encodes a small gradient image so the lazy-image page has
// real bytes to decode without touching the network or the filesystem.
func samplePNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 96, A: 255})
		}
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

func lazyImagePage(th theme.Theme) Page {
	return Page{
		Name:        "lazy-image",
		Title:       "Lazy Image",
		Description: "defers image loading until the control scrolls into view",
		Run: func(ctx context.Context, out io.Writer) error {
			backend := paint.NewBackend(512)
			viewport := lucid.NewViewportNotifier()

			ex := imagex.New(viewport)
			ex.SetEnableLazyLoading(true)
			ex.SetSource(imagex.BytesSource(samplePNG(64, 64)))

			tpl := lucid.NewTemplate().
				Define(imagex.PartImage, imagex.NewImageElement(backend.Loader())).
				Define(imagex.PartProgress, lucid.NewProgressRing(th.Progress.Size))
			ex.SetTemplate(tpl)

			ex.SetStateSink(lucid.StateSinkFunc(func(_ *lucid.Control, group, state string) {
				fmt.Fprintf(out, "state %s -> %s\n", group, state)
			}))

			settled := make(chan struct{}, 1)
			ex.Initialized.Subscribe(func(struct{}) { fmt.Fprintln(out, "event initialized") })
			ex.Opened.Subscribe(func(struct{}) {
				fmt.Fprintln(out, "event opened")
				settled <- struct{}{}
			})
			ex.Failed.Subscribe(func(e *imagex.LoadError) {
				fmt.Fprintf(out, "event failed: %s\n", e.Message)
				settled <- struct{}{}
			})

			ex.ApplyTemplate()
			ex.Arrange(200, 160)

			fmt.Fprintln(out, "scrolled far below the fold")
			viewport.Publish(lucid.EffectiveViewport{BringIntoViewDistanceX: 0, BringIntoViewDistanceY: 2000})
			fmt.Fprintf(out, "in viewport: %v\n", ex.InViewport())

			fmt.Fprintln(out, "scrolled into view")
			viewport.Publish(lucid.EffectiveViewport{})

			select {
			case <-settled:
			case <-time.After(5 * time.Second):
				return fmt.Errorf("gallery: image never settled")
			case <-ctx.Done():
				return ctx.Err()
			}

			fmt.Fprintf(out, "final state: %s\n", ex.State(imagex.StateGroupCommon))
			ex.Release()
			return nil
		},
	}
}

func dialPage(th theme.Theme) Page {
	return Page{
		Name:        "dial",
		Title:       "Dial Input",
		Description: "radial value input with step snapping",
		Run: func(ctx context.Context, out io.Writer) error {
			d := dial.New().
				SetRange(th.Dial.Min, th.Dial.Max).
				SetStep(th.Dial.Step)
			d.SetActualSize(120, 120)

			d.Changed.Subscribe(func(v float32) {
				fmt.Fprintf(out, "value %.1f (needle %.1f deg)\n", v, d.Angle()*180/3.14159265)
			})

			fmt.Fprintln(out, "turning up three steps")
			for i := 0; i < 3; i++ {
				d.AdjustBy(1)
			}

			fmt.Fprintln(out, "dragging to the top-right")
			d.SetValueFromPoint(110, 20)

			fmt.Fprintln(out, "dragging past the arc end")
			d.SetValueFromPoint(59, 119)

			fmt.Fprintf(out, "final value: %.1f\n", d.Value())
			return nil
		},
	}
}

// transcriptTitleBar echoes every caption color it receives.
type transcriptTitleBar struct {
	out io.Writer
}

func (t *transcriptTitleBar) SetBackground(c uint32) {
	fmt.Fprintf(t.out, "background %s\n", chrome.Hex(c))
}
func (t *transcriptTitleBar) SetForeground(c uint32) {
	fmt.Fprintf(t.out, "foreground %s\n", chrome.Hex(c))
}
func (t *transcriptTitleBar) SetButtonBackground(c uint32) {
	fmt.Fprintf(t.out, "button background %s\n", chrome.Hex(c))
}
func (t *transcriptTitleBar) SetButtonForeground(c uint32) {
	fmt.Fprintf(t.out, "button foreground %s\n", chrome.Hex(c))
}
func (t *transcriptTitleBar) SetButtonHoverBackground(c uint32) {
	fmt.Fprintf(t.out, "button hover %s\n", chrome.Hex(c))
}
func (t *transcriptTitleBar) SetButtonPressedBackground(c uint32) {
	fmt.Fprintf(t.out, "button pressed %s\n", chrome.Hex(c))
}

func chromePage(th theme.Theme) Page {
	return Page{
		Name:        "chrome",
		Title:       "Title Bar Colors",
		Description: "applies theme colors to the window caption",
		Run: func(ctx context.Context, out io.Writer) error {
			chrome.Apply(&transcriptTitleBar{out: out}, chrome.Colors{
				Background: uint32(th.Window.Background),
				Foreground: uint32(th.Window.Foreground),
			})
			return nil
		},
	}
}
