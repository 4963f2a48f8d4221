// Package dial provides a radial value input control: a knob the user
// turns by dragging around its center. Values map onto a gauge arc and
// snap to an optional step increment.
package dial

import (
	"github.com/chewxy/math32"

	"github.com/lucidui/lucid"
)

// PartNeedle is the template part rotated to reflect the current value.
const PartNeedle = "Needle"

// Rotatable is the needle template part contract.
type Rotatable interface {
	// SetRotation sets the rotation around the part's center, in radians.
	SetRotation(rad float32)
}

// Gauge arc covered by the dial, measured from straight up.
// -120 degrees at minimum value, +120 degrees at maximum.
const (
	minAngle = -120 * math32.Pi / 180
	maxAngle = 120 * math32.Pi / 180
)

// Dial is a radial input control. Default range is 0-100 with the value
// at 50 and continuous (unstepped) adjustment.
type Dial struct {
	*lucid.Control

	value    float32
	min, max float32
	step     float32
	disabled bool

	needle Rotatable

	// Changed fires with the new value after every change.
	Changed lucid.Signal[float32]
}

// New creates a dial with the default 0-100 range.
func New() *Dial {
	return &Dial{
		Control: lucid.NewControl(),
		min:     0,
		max:     100,
		value:   50,
	}
}

// ApplyTemplate resolves the needle part from the current template and
// aligns it with the current value. A template without a needle is
// tolerated.
func (d *Dial) ApplyTemplate() {
	d.needle, _ = d.Part(PartNeedle).(Rotatable)
	d.rotateNeedle()
}

// SetRange sets the minimum and maximum values. The current value is
// clamped into the new range.
func (d *Dial) SetRange(min, max float32) *Dial {
	if max < min {
		min, max = max, min
	}
	d.min, d.max = min, max
	d.setValue(d.value)
	return d
}

// SetStep sets the snap increment. Zero means continuous.
func (d *Dial) SetStep(step float32) *Dial {
	d.step = step
	return d
}

// SetDisabled enables or disables input handling.
func (d *Dial) SetDisabled(disabled bool) *Dial {
	d.disabled = disabled
	return d
}

// Value returns the current value.
func (d *Dial) Value() float32 {
	return d.value
}

// SetValue sets the value, clamping into range and snapping to the step
// increment. Changed fires only on an actual change.
func (d *Dial) SetValue(v float32) *Dial {
	d.setValue(v)
	return d
}

// AdjustBy offsets the value by delta steps. With no step configured,
// one delta unit is 1% of the range, matching arrow-key behavior of
// linear sliders.
func (d *Dial) AdjustBy(delta float32) *Dial {
	if d.disabled {
		return d
	}
	step := d.step
	if step == 0 {
		step = (d.max - d.min) / 100
	}
	d.setValue(d.value + delta*step)
	return d
}

// SetValueFromPoint sets the value from a pointer position in local
// coordinates. The angle from the dial's center to the point is mapped
// onto the gauge arc; positions outside the arc clamp to the nearest
// end. Disabled dials ignore pointer input.
func (d *Dial) SetValueFromPoint(localX, localY float32) *Dial {
	if d.disabled {
		return d
	}
	width, height := d.ActualSize()
	cx, cy := width/2, height/2

	dx := localX - cx
	dy := localY - cy
	if dx == 0 && dy == 0 {
		return d
	}

	// Angle measured from straight up, clockwise positive.
	angle := math32.Atan2(dx, -dy)
	if angle < minAngle {
		angle = minAngle
	}
	if angle > maxAngle {
		angle = maxAngle
	}

	ratio := (angle - minAngle) / (maxAngle - minAngle)
	d.setValue(d.min + ratio*(d.max-d.min))
	return d
}

// Angle returns the needle rotation for the current value, in radians
// from straight up.
func (d *Dial) Angle() float32 {
	if d.max == d.min {
		return minAngle
	}
	ratio := (d.value - d.min) / (d.max - d.min)
	return minAngle + ratio*(maxAngle-minAngle)
}

func (d *Dial) setValue(v float32) {
	if d.step > 0 {
		v = math32.Round((v-d.min)/d.step)*d.step + d.min
	}
	if v < d.min {
		v = d.min
	}
	if v > d.max {
		v = d.max
	}
	if v == d.value {
		return
	}
	d.value = v
	d.rotateNeedle()
	d.Changed.Emit(v)
}

func (d *Dial) rotateNeedle() {
	if d.needle != nil {
		d.needle.SetRotation(d.Angle())
	}
}
