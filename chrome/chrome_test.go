package chrome

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTitleBar struct {
	background, foreground             uint32
	buttonBackground, buttonForeground uint32
	buttonHoverBackground              uint32
	buttonPressedBackground            uint32
}

func (f *fakeTitleBar) SetBackground(c uint32)              { f.background = c }
func (f *fakeTitleBar) SetForeground(c uint32)              { f.foreground = c }
func (f *fakeTitleBar) SetButtonBackground(c uint32)        { f.buttonBackground = c }
func (f *fakeTitleBar) SetButtonForeground(c uint32)        { f.buttonForeground = c }
func (f *fakeTitleBar) SetButtonHoverBackground(c uint32)   { f.buttonHoverBackground = c }
func (f *fakeTitleBar) SetButtonPressedBackground(c uint32) { f.buttonPressedBackground = c }

func TestApply(t *testing.T) {
	tb := &fakeTitleBar{}
	Apply(tb, Colors{Background: 0x202020FF, Foreground: 0xF0F0F0FF})

	assert.Equal(t, uint32(0x202020FF), tb.background)
	assert.Equal(t, uint32(0xF0F0F0FF), tb.foreground)
	assert.Equal(t, tb.background, tb.buttonBackground)
	assert.Equal(t, tb.foreground, tb.buttonForeground)
	assert.Equal(t, Lighten(0x202020FF, 0.12), tb.buttonHoverBackground)
	assert.Equal(t, Darken(0x202020FF, 0.12), tb.buttonPressedBackground)
}

func TestLighten(t *testing.T) {
	tests := []struct {
		name   string
		color  uint32
		amount float32
		want   uint32
	}{
		{name: "to white", color: 0x000000FF, amount: 1, want: 0xFFFFFFFF},
		{name: "no change", color: 0x336699FF, amount: 0, want: 0x336699FF},
		{name: "white stays white", color: 0xFFFFFF80, amount: 0.5, want: 0xFFFFFF80},
		{name: "half gray", color: 0x00000080, amount: 0.5, want: 0x80808080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lighten(tt.color, tt.amount))
		})
	}
}

func TestDarken(t *testing.T) {
	tests := []struct {
		name   string
		color  uint32
		amount float32
		want   uint32
	}{
		{name: "to black", color: 0xFFFFFFFF, amount: 1, want: 0x000000FF},
		{name: "no change", color: 0x336699FF, amount: 0, want: 0x336699FF},
		{name: "alpha untouched", color: 0x80808040, amount: 1, want: 0x00000040},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Darken(tt.color, tt.amount))
		})
	}
}

func TestAmountClamped(t *testing.T) {
	assert.Equal(t, uint32(0xFFFFFFFF), Lighten(0x101010FF, 2))
	assert.Equal(t, uint32(0x101010FF), Lighten(0x101010FF, -1))
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#202020FF", Hex(0x202020FF))
}
