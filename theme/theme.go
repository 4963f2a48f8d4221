// Package theme loads toolkit theme configuration from TOML files and
// supports live reload while a file is being edited.
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
)

// Color is a packed 0xRRGGBBAA color. In TOML it is written as
// "#RRGGBB" or "#RRGGBBAA"; the short form implies full opacity.
type Color uint32

// UnmarshalText parses a hex color string.
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(string(text), "#")
	switch len(s) {
	case 6:
		s += "FF"
	case 8:
	default:
		return fmt.Errorf("theme: color %q must be #RRGGBB or #RRGGBBAA", string(text))
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("theme: color %q: %w", string(text), err)
	}
	*c = Color(v)
	return nil
}

// MarshalText formats the color as #RRGGBBAA.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("#%08X", uint32(c))), nil
}

// Window configures window chrome colors.
type Window struct {
	Background Color `toml:"background"`
	Foreground Color `toml:"foreground"`
}

// Progress configures busy indicators.
type Progress struct {
	// Size is the default square size of a progress ring, in pixels.
	Size float32 `toml:"size"`
}

// Dial configures dial input defaults.
type Dial struct {
	Min  float32 `toml:"min"`
	Max  float32 `toml:"max"`
	Step float32 `toml:"step"`
}

// Theme is the full toolkit theme.
type Theme struct {
	Window   Window   `toml:"window"`
	Progress Progress `toml:"progress"`
	Dial     Dial     `toml:"dial"`
}

// Default returns the built-in dark theme.
func Default() Theme {
	return Theme{
		Window: Window{
			Background: 0x202020FF,
			Foreground: 0xF0F0F0FF,
		},
		Progress: Progress{Size: 20},
		Dial:     Dial{Min: 0, Max: 100},
	}
}

// Parse decodes a theme from TOML. Fields absent from the document keep
// their Default values.
func Parse(data []byte) (Theme, error) {
	t := Default()
	if err := toml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("theme: parse: %w", err)
	}
	return t, nil
}

// Load reads and decodes a theme file.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	return Parse(data)
}

// Watch reloads the theme file whenever it changes, calling onChange
// with each successfully parsed theme. Files that fail to parse
// mid-edit are skipped until the next change. The directory rather than
// the file is watched so editors that replace the file on save keep
// triggering reloads.
//
// The returned stop function releases the watcher.
func Watch(path string, onChange func(Theme)) (stop func() error, err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("theme: watch: %w", err)
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("theme: watch %s: %w", dir, err)
	}

	base := filepath.Base(path)
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if t, err := Load(path); err == nil {
					onChange(t)
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return watcher.Close, nil
}
