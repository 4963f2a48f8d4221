// Package paint is the demo host's image-painting backend: it decodes
// image sources on background goroutines, optionally downscales them,
// and caches the resulting textures by source ref. Controls never call
// this package directly; they see it only through an imagex.Loader.
package paint

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"sync"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"github.com/lucidui/lucid/imagex"
)

// Texture is a decoded image ready for upload to a renderer.
type Texture struct {
	RGBA *image.RGBA

	// Natural dimensions of the encoded image, before any downscale.
	NaturalWidth  int
	NaturalHeight int
}

// Backend decodes and caches image sources.
type Backend struct {
	// MaxEdge bounds the longer edge of decoded textures; larger images
	// are downscaled preserving aspect ratio. Zero disables scaling.
	MaxEdge int

	mu    sync.Mutex
	cache map[string]*Texture
}

// NewBackend creates a backend with the given texture edge bound.
func NewBackend(maxEdge int) *Backend {
	return &Backend{
		MaxEdge: maxEdge,
		cache:   make(map[string]*Texture),
	}
}

// Loader returns an imagex.Loader that decodes on a background
// goroutine and reports completion through done.
func (b *Backend) Loader() imagex.Loader {
	return func(src imagex.Source, done func(err error)) {
		go func() {
			_, err := b.Decode(src)
			done(err)
		}()
	}
}

// Decode decodes src, caching the texture. Repeated decodes of the same
// ref return the cached texture.
func (b *Backend) Decode(src imagex.Source) (*Texture, error) {
	if src == nil {
		return nil, fmt.Errorf("paint: nil source")
	}

	b.mu.Lock()
	if tex, ok := b.cache[src.Ref()]; ok {
		b.mu.Unlock()
		return tex, nil
	}
	b.mu.Unlock()

	data, err := readSource(src)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("paint: decode %s: %w", src.Ref(), err)
	}

	bounds := img.Bounds()
	tex := &Texture{
		NaturalWidth:  bounds.Dx(),
		NaturalHeight: bounds.Dy(),
	}

	w, h := fit(bounds.Dx(), bounds.Dy(), b.MaxEdge)
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == bounds.Dx() && h == bounds.Dy() {
		xdraw.Draw(rgba, rgba.Bounds(), img, bounds.Min, xdraw.Src)
	} else {
		xdraw.ApproxBiLinear.Scale(rgba, rgba.Bounds(), img, bounds, xdraw.Src, nil)
	}
	tex.RGBA = rgba

	b.mu.Lock()
	b.cache[src.Ref()] = tex
	b.mu.Unlock()
	return tex, nil
}

// Texture returns the cached texture for src, if decoded.
func (b *Backend) Texture(src imagex.Source) (*Texture, bool) {
	if src == nil {
		return nil, false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	tex, ok := b.cache[src.Ref()]
	return tex, ok
}

// Prefetch decodes sources concurrently, at most four at a time,
// stopping at the first failure.
func (b *Backend) Prefetch(ctx context.Context, sources ...imagex.Source) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for _, src := range sources {
		src := src
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := b.Decode(src)
			return err
		})
	}
	return g.Wait()
}

func readSource(src imagex.Source) ([]byte, error) {
	switch s := src.(type) {
	case imagex.BytesSource:
		return []byte(s), nil
	case imagex.URISource:
		data, err := os.ReadFile(string(s))
		if err != nil {
			return nil, fmt.Errorf("paint: read %s: %w", s, err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("paint: unsupported source %s", src.Ref())
	}
}

// fit scales (w, h) down so the longer edge is at most maxEdge,
// preserving aspect ratio. Images within the bound keep their size.
func fit(w, h, maxEdge int) (int, int) {
	if maxEdge <= 0 {
		return w, h
	}
	long := w
	if h > long {
		long = h
	}
	if long <= maxEdge {
		return w, h
	}
	scale := float64(maxEdge) / float64(long)
	sw := int(float64(w)*scale + 0.5)
	sh := int(float64(h)*scale + 0.5)
	if sw < 1 {
		sw = 1
	}
	if sh < 1 {
		sh = 1
	}
	return sw, sh
}
