package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)
	inner := outer.Centered(20, 6)

	if inner.X != 30 || inner.Y != 9 {
		t.Errorf("Centered() origin = (%d, %d), expected (30, 9)", inner.X, inner.Y)
	}
	if inner.Right() != 50 || inner.Bottom() != 15 {
		t.Errorf("Centered() far edge = (%d, %d), expected (50, 15)", inner.Right(), inner.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		name                    string
		val, min, max, expected float64
	}{
		{"within", 5.5, 0.0, 10.0, 5.5},
		{"below", -5.5, 0.0, 10.0, 0.0},
		{"above", 15.5, 0.0, 10.0, 10.0},
		{"nan", math.NaN(), 1.0, 5.0, 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := ClampF(tc.val, tc.min, tc.max)
			if result != tc.expected {
				t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
			}
		})
	}
}

func TestApproach(t *testing.T) {
	v, arrived := Approach(0, 2, 0.5)
	if v != 0.5 || arrived {
		t.Errorf("Approach(0, 2, 0.5) = (%f, %v), expected (0.5, false)", v, arrived)
	}

	v, arrived = Approach(2, 0, 0.5)
	if v != 1.5 || arrived {
		t.Errorf("Approach(2, 0, 0.5) = (%f, %v), expected (1.5, false)", v, arrived)
	}

	v, arrived = Approach(1.9, 2, 0.5)
	if v != 2 || !arrived {
		t.Errorf("Approach(1.9, 2, 0.5) = (%f, %v), expected (2, true)", v, arrived)
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs should return the magnitude")
	}
}
