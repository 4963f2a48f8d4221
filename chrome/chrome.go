// Package chrome extends a host window's title bar with toolkit
// colors. The host implements TitleBar; Apply derives the hover and
// pressed caption-button tints from the base colors and pushes the full
// set in one pass.
//
// Colors are packed 0xRRGGBBAA, matching the widget color convention.
package chrome

import "fmt"

// TitleBar is the surface a host window exposes for caption styling.
type TitleBar interface {
	SetBackground(color uint32)
	SetForeground(color uint32)
	SetButtonBackground(color uint32)
	SetButtonForeground(color uint32)
	SetButtonHoverBackground(color uint32)
	SetButtonPressedBackground(color uint32)
}

// Colors are the base title bar colors. Button tints are derived.
type Colors struct {
	Background uint32
	Foreground uint32
}

// Apply pushes c onto the title bar. Caption buttons inherit the base
// colors; the hover tint lightens the background by 12% and the pressed
// tint darkens it by 12%.
func Apply(tb TitleBar, c Colors) {
	tb.SetBackground(c.Background)
	tb.SetForeground(c.Foreground)
	tb.SetButtonBackground(c.Background)
	tb.SetButtonForeground(c.Foreground)
	tb.SetButtonHoverBackground(Lighten(c.Background, 0.12))
	tb.SetButtonPressedBackground(Darken(c.Background, 0.12))
}

// Lighten moves each color channel toward white by the given fraction,
// leaving alpha untouched.
func Lighten(color uint32, amount float32) uint32 {
	return blendChannels(color, amount, func(ch float32, f float32) float32 {
		return ch + (255-ch)*f
	})
}

// Darken moves each color channel toward black by the given fraction,
// leaving alpha untouched.
func Darken(color uint32, amount float32) uint32 {
	return blendChannels(color, amount, func(ch float32, f float32) float32 {
		return ch - ch*f
	})
}

func blendChannels(color uint32, amount float32, blend func(ch, f float32) float32) uint32 {
	if amount < 0 {
		amount = 0
	}
	if amount > 1 {
		amount = 1
	}
	r := blend(float32(color>>24&0xFF), amount)
	g := blend(float32(color>>16&0xFF), amount)
	b := blend(float32(color>>8&0xFF), amount)
	a := color & 0xFF
	return uint32(r+0.5)<<24 | uint32(g+0.5)<<16 | uint32(b+0.5)<<8 | a
}

// Hex formats a packed color as #RRGGBBAA.
func Hex(color uint32) string {
	return fmt.Sprintf("#%08X", color)
}
