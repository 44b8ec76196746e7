package geometry

import (
	"math"
	"testing"
)

const tol = 1e-12

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tol
}

func TestArithmetic(t *testing.T) {
	a := New(1, 2, 3)
	b := New(4, -5, 6)

	if got, want := a.Add(b), New(5, -3, 9); got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
	if got, want := a.Sub(b), New(-3, 7, -3); got != want {
		t.Errorf("Sub = %v, want %v", got, want)
	}
	if got, want := a.Scale(2), New(2, 4, 6); got != want {
		t.Errorf("Scale = %v, want %v", got, want)
	}
	if got, want := a.Mul(b), New(4, -10, 18); got != want {
		t.Errorf("Mul = %v, want %v", got, want)
	}
	if got, want := b.Div(2), New(2, -2.5, 3); got != want {
		t.Errorf("Div = %v, want %v", got, want)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot = %v, want 12", got)
	}
}

func TestOperationsReturnNewValues(t *testing.T) {
	a := New(1, 1, 1)
	_ = a.Add(New(9, 9, 9))
	_ = a.Scale(10)
	if a != New(1, 1, 1) {
		t.Errorf("receiver mutated: %v", a)
	}
}

func TestEqualityIsExact(t *testing.T) {
	if New(1, 2, 3) != New(1, 2, 3) {
		t.Error("identical vectors compare unequal")
	}
	if New(1, 2, 3) == New(1, 2, 3+1e-15) {
		t.Error("equality must not tolerate component differences")
	}
}

func TestMag(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want float64
	}{
		{"zero", Vec3{}, 0},
		{"unit x", New(1, 0, 0), 1},
		{"3-4-5", New(3, 4, 0), 5},
		{"negative components", New(-3, -4, 0), 5},
		{"full 3d", New(2, 3, 6), 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Mag(); !almostEqual(got, tt.want) {
				t.Errorf("Mag() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalized(t *testing.T) {
	n := New(3, 4, 0).Normalized()
	if !almostEqual(n.Mag(), 1) {
		t.Errorf("normalized magnitude = %v, want 1", n.Mag())
	}
	if !almostEqual(n.X, 0.6) || !almostEqual(n.Y, 0.8) {
		t.Errorf("Normalized() = %v, want (0.6, 0.8, 0)", n)
	}

	// Zero vector stays as-is rather than dividing by zero.
	if z := (Vec3{}).Normalized(); z != (Vec3{}) {
		t.Errorf("zero vector normalized = %v, want zero", z)
	}
}

func TestAngleRad(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want float64
	}{
		{"zero vector", Vec3{}, 0},
		{"positive x", New(1, 0, 0), 0},
		{"first quadrant", New(3, 4, 0), math.Acos(3.0 / 5.0)},
		{"positive y", New(0, 1, 0), math.Pi / 2},
		{"second quadrant", New(-1, 1, 0), 3 * math.Pi / 4},
		{"negative x", New(-1, 0, 0), math.Pi},
		{"third quadrant", New(-1, -1, 0), 5 * math.Pi / 4},
		{"negative y", New(0, -1, 0), 3 * math.Pi / 2},
		{"fourth quadrant", New(3, -4, 0), 2*math.Pi - math.Acos(3.0/5.0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.AngleRad(); !almostEqual(got, tt.want) {
				t.Errorf("AngleRad() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAngleDeg(t *testing.T) {
	if got := New(0, 1, 0).AngleDeg(); !almostEqual(got, 90) {
		t.Errorf("AngleDeg() = %v, want 90", got)
	}
	if got := New(0, -1, 0).AngleDeg(); !almostEqual(got, 270) {
		t.Errorf("AngleDeg() = %v, want 270", got)
	}
}

func TestString(t *testing.T) {
	if got, want := New(1, -2.5, 0).String(), "1.000, -2.500, 0.000"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
