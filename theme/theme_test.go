package theme

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	th, err := Parse([]byte(`
[window]
background = "#336699"
foreground = "#FFFFFFCC"

[progress]
size = 32.0

[dial]
min = 10.0
max = 20.0
step = 0.5
`))
	require.NoError(t, err)

	assert.Equal(t, Color(0x336699FF), th.Window.Background, "short form implies full opacity")
	assert.Equal(t, Color(0xFFFFFFCC), th.Window.Foreground)
	assert.Equal(t, float32(32), th.Progress.Size)
	assert.Equal(t, float32(10), th.Dial.Min)
	assert.Equal(t, float32(20), th.Dial.Max)
	assert.Equal(t, float32(0.5), th.Dial.Step)
}

func TestParseKeepsDefaults(t *testing.T) {
	th, err := Parse([]byte(`[progress]
size = 8.0`))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.Window, th.Window, "absent sections keep defaults")
	assert.Equal(t, float32(8), th.Progress.Size)
}

func TestParseRejectsBadColor(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{name: "wrong length", toml: `[window]
background = "#12345"`},
		{name: "not hex", toml: `[window]
background = "#GGGGGG"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.toml))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[window]
background = "#101010"`), 0o644))

	th, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Color(0x101010FF), th.Window.Background)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[progress]
size = 8.0`), 0o644))

	changes := make(chan Theme, 4)
	stop, err := Watch(path, func(th Theme) { changes <- th })
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte(`[progress]
size = 16.0`), 0o644))

	// Truncate-then-write saves can surface as two events; keep
	// draining until the final content arrives.
	deadline := time.After(3 * time.Second)
	for {
		select {
		case th := <-changes:
			if th.Progress.Size == 16 {
				return
			}
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}

func TestColorRoundTrip(t *testing.T) {
	text, err := Color(0x336699FF).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#336699FF", string(text))

	var c Color
	require.NoError(t, c.UnmarshalText(text))
	assert.Equal(t, Color(0x336699FF), c)
}
