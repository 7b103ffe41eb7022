package math

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 12}.Normalize()
	if l := n.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero vector normalized to %v", z)
	}
}

func TestVec3Distance(t *testing.T) {
	d := Vec3{1, 2, 3}.Distance(Vec3{1, 2, 8})
	if d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		x, lo, hi, want float32
	}{
		{-10, 1, 120, 1},
		{500, 1, 120, 120},
		{45, 1, 120, 45},
		{1, 1, 120, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.x, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.x, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestRadiansDegrees(t *testing.T) {
	if r := Radians(180); abs(r-math.Pi) > 1e-6 {
		t.Errorf("Radians(180) = %v", r)
	}
	if d := Degrees(math.Pi / 2); abs(d-90) > 1e-4 {
		t.Errorf("Degrees(pi/2) = %v", d)
	}
}
