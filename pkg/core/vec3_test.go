package core

import (
	"math"
	"testing"
)

func TestVec3_BasicOperations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); got != NewVec3(5, 7, 9) {
		t.Errorf("Add = %v, want (5,7,9)", got)
	}
	if got := b.Subtract(a); got != NewVec3(3, 3, 3) {
		t.Errorf("Subtract = %v, want (3,3,3)", got)
	}
	if got := a.Multiply(2); got != NewVec3(2, 4, 6) {
		t.Errorf("Multiply = %v, want (2,4,6)", got)
	}
	if got := a.MultiplyVec(b); got != NewVec3(4, 10, 18) {
		t.Errorf("MultiplyVec = %v, want (4,10,18)", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
	if got := a.Negate(); got != NewVec3(-1, -2, -3) {
		t.Errorf("Negate = %v, want (-1,-2,-3)", got)
	}
}

func TestVec3_Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	if got := x.Cross(y); got != NewVec3(0, 0, 1) {
		t.Errorf("x × y = %v, want (0,0,1)", got)
	}
	if got := y.Cross(x); got != NewVec3(0, 0, -1) {
		t.Errorf("y × x = %v, want (0,0,-1)", got)
	}
}

func TestVec3_NormalizeAndLength(t *testing.T) {
	v := NewVec3(3, 4, 0)

	if got := v.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := v.LengthSquared(); got != 25 {
		t.Errorf("LengthSquared = %v, want 25", got)
	}

	unit := v.Normalize()
	if math.Abs(unit.Length()-1) > 1e-12 {
		t.Errorf("Normalized length = %v, want 1", unit.Length())
	}

	// Zero vector normalizes to zero rather than NaN
	if got := NewVec3(0, 0, 0).Normalize(); got != NewVec3(0, 0, 0) {
		t.Errorf("zero Normalize = %v, want (0,0,0)", got)
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("expected near-zero vector to report NearZero")
	}
	if NewVec3(1e-3, 0, 0).NearZero() {
		t.Error("expected non-trivial vector to not report NearZero")
	}
}

func TestVec3_ClampAndGamma(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)
	if v != NewVec3(0, 0.5, 1) {
		t.Errorf("Clamp = %v, want (0,0.5,1)", v)
	}

	g := NewVec3(0.25, 1, 0).GammaCorrect(2.0)
	if math.Abs(g.X-0.5) > 1e-12 || g.Y != 1 || g.Z != 0 {
		t.Errorf("GammaCorrect = %v, want (0.5,1,0)", g)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 2, 0))
	if got := ray.At(1.5); got != NewVec3(1, 3, 0) {
		t.Errorf("At(1.5) = %v, want (1,3,0)", got)
	}
}
