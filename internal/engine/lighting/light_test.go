package lighting

import (
	"testing"

	"github.com/Faultbox/vantage/pkg/math"
)

func TestRegistryZeroHandleNeverResolves(t *testing.T) {
	r := NewRegistry()

	if r.Get(0) != nil {
		t.Error("zero handle resolved")
	}
	if r.Get(5) != nil {
		t.Error("out of range handle resolved")
	}
	if r.Len() != 0 {
		t.Errorf("empty registry Len = %d, want 0", r.Len())
	}
}

func TestRegistryAddGet(t *testing.T) {
	r := NewRegistry()

	h := r.Add(Light{Kind: Point, Range: 12, Intensity: 2})
	if h == 0 {
		t.Fatal("Add returned the zero handle")
	}

	l := r.Get(h)
	if l == nil {
		t.Fatal("registered light does not resolve")
	}
	if l.Kind != Point || l.Range != 12 || l.Intensity != 2 {
		t.Errorf("light record mangled: %+v", l)
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}

func TestSunDirection(t *testing.T) {
	// Latitude 90 points straight up regardless of longitude.
	d := SunDirection(123, 90)
	if !d.ApproxEqual(math.Vec3{Y: 1}, 0.001) {
		t.Errorf("zenith direction = %v, want (0,1,0)", d)
	}

	// On the horizon at longitude 0 the sun sits on +Z.
	d = SunDirection(0, 0)
	if !d.ApproxEqual(math.Vec3{Z: 1}, 0.001) {
		t.Errorf("horizon direction = %v, want (0,0,1)", d)
	}

	// Directions are always unit length.
	d = SunDirection(37, 21)
	if l := d.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("direction length = %v, want 1", l)
	}
}
