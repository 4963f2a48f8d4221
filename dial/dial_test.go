package dial

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/lucidui/lucid"
)

const epsilon = 1e-4

type fakeNeedle struct {
	rotation float32
	calls    int
}

func (n *fakeNeedle) SetRotation(rad float32) {
	n.rotation = rad
	n.calls++
}

func TestDefaults(t *testing.T) {
	d := New()
	assert.Equal(t, float32(50), d.Value())
	assert.InDelta(t, 0, d.Angle(), epsilon, "mid value points straight up")
}

func TestSetValueClampsAndSnaps(t *testing.T) {
	tests := []struct {
		name string
		step float32
		set  float32
		want float32
	}{
		{name: "in range", set: 30, want: 30},
		{name: "below min clamps", set: -10, want: 0},
		{name: "above max clamps", set: 200, want: 100},
		{name: "snaps to step", step: 5, set: 33, want: 35},
		{name: "snaps down", step: 5, set: 32, want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New().SetStep(tt.step)
			d.SetValue(tt.set)
			assert.InDelta(t, tt.want, d.Value(), epsilon)
		})
	}
}

func TestChangedFiresOnlyOnChange(t *testing.T) {
	d := New()

	var got []float32
	d.Changed.Subscribe(func(v float32) { got = append(got, v) })

	d.SetValue(60)
	d.SetValue(60)
	d.SetValue(70)

	assert.Equal(t, []float32{60, 70}, got)
}

func TestAngleValueRoundTrip(t *testing.T) {
	d := New().SetRange(0, 240)
	d.SetActualSize(100, 100)

	for _, v := range []float32{0, 60, 120, 180, 240} {
		d.SetValue(v)
		angle := d.Angle()

		// Rebuild a pointer position from the angle and feed it back.
		x := 50 + 40*math32.Sin(angle)
		y := 50 - 40*math32.Cos(angle)
		d.SetValue(0)
		d.SetValueFromPoint(x, y)

		assert.InDelta(t, v, d.Value(), 1e-2, "value %v", v)
	}
}

func TestPointerOutsideArcClamps(t *testing.T) {
	d := New()
	d.SetActualSize(100, 100)

	// Straight down is outside the arc; the nearest end wins.
	d.SetValueFromPoint(50-1e-3, 100)
	assert.InDelta(t, 0, d.Value(), 1e-2)

	d.SetValueFromPoint(50+1e-3, 100)
	assert.InDelta(t, 100, d.Value(), 1e-2)
}

func TestAdjustBy(t *testing.T) {
	d := New() // continuous: one delta unit is 1% of range
	d.AdjustBy(3)
	assert.InDelta(t, 53, d.Value(), epsilon)

	d.SetStep(10)
	d.AdjustBy(-1)
	assert.InDelta(t, 40, d.Value(), epsilon)
}

func TestDisabledIgnoresInput(t *testing.T) {
	d := New().SetDisabled(true)
	d.SetActualSize(100, 100)

	d.AdjustBy(5)
	d.SetValueFromPoint(90, 10)

	assert.Equal(t, float32(50), d.Value())
}

func TestNeedleTracksValue(t *testing.T) {
	needle := &fakeNeedle{}
	d := New()
	d.SetTemplate(lucid.NewTemplate().Define(PartNeedle, needle))
	d.ApplyTemplate()

	assert.Equal(t, 1, needle.calls, "needle aligned on template application")

	d.SetValue(100)
	assert.InDelta(t, 120*math32.Pi/180, needle.rotation, epsilon)

	d.SetValue(0)
	assert.InDelta(t, -120*math32.Pi/180, needle.rotation, epsilon)
}

func TestTemplateWithoutNeedle(t *testing.T) {
	d := New()
	d.SetTemplate(lucid.NewTemplate())
	d.ApplyTemplate()
	d.SetValue(80) // must not panic without a needle part
	assert.Equal(t, float32(80), d.Value())
}
