package vec3

import (
	"math"
	"testing"
)

func TestAdd(t *testing.T) {
	v1 := New(1, 2, 3)
	v2 := New(4, 5, 6)
	result := v1.Add(v2)

	expected := New(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestSub(t *testing.T) {
	v1 := New(5, 7, 9)
	v2 := New(1, 2, 3)
	result := v1.Sub(v2)

	expected := New(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestLength(t *testing.T) {
	v := New(3, 4, 0)
	if math.Abs(v.Length()-5.0) > 1e-10 {
		t.Errorf("Length failed: expected 5.0, got %v", v.Length())
	}
}

func TestDistance(t *testing.T) {
	v1 := New(0, 0, 0)
	v2 := New(3, 4, 0)
	if math.Abs(v1.Distance(v2)-5.0) > 1e-10 {
		t.Errorf("Distance failed: expected 5.0, got %v", v1.Distance(v2))
	}
}

func TestNormalize(t *testing.T) {
	v := New(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1.0) > 1e-10 {
		t.Errorf("Normalize failed: expected unit length, got %v", v.Length())
	}
}

func TestNormalizeZero(t *testing.T) {
	v := New(0, 0, 0).Normalize()
	if v != (Vec3{}) {
		t.Errorf("Normalize of zero vector should be zero, got %v", v)
	}
}

func TestCross(t *testing.T) {
	result := New(1, 0, 0).Cross(New(0, 1, 0))
	expected := New(0, 0, 1)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestLerp(t *testing.T) {
	a := New(0, 0, 0)
	b := New(10, 0, 0)
	mid := Lerp(a, b, 0.5)
	if math.Abs(mid.X-5) > 1e-10 {
		t.Errorf("Lerp failed: expected X=5, got %v", mid.X)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 1) != 1 {
		t.Errorf("Clamp failed to cap at hi")
	}
	if Clamp(-5, 0, 1) != 0 {
		t.Errorf("Clamp failed to cap at lo")
	}
}
