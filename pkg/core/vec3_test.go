package core

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"Add", NewVec3(1, 2, 3).Add(NewVec3(4, 5, 6)), NewVec3(5, 7, 9)},
		{"Subtract", NewVec3(4, 5, 6).Subtract(NewVec3(1, 2, 3)), NewVec3(3, 3, 3)},
		{"Multiply", NewVec3(1, -2, 3).Multiply(2), NewVec3(2, -4, 6)},
		{"MultiplyVec", NewVec3(1, 2, 3).MultiplyVec(NewVec3(2, 0, -1)), NewVec3(2, 0, -3)},
		{"Negate", NewVec3(1, -2, 3).Negate(), NewVec3(-1, 2, -3)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"Clamp", NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1), NewVec3(0, 0.5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.result.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	v := NewVec3(3, 4, 0)

	if got := v.Dot(NewVec3(1, 1, 1)); got != 7 {
		t.Errorf("Expected dot product 7, got %f", got)
	}
	if got := v.Length(); got != 5 {
		t.Errorf("Expected length 5, got %f", got)
	}
	if got := v.LengthSquared(); got != 25 {
		t.Errorf("Expected squared length 25, got %f", got)
	}
	if got := NewVec3(0, 0, 0).Distance(v); got != 5 {
		t.Errorf("Expected distance 5, got %f", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	const tolerance = 1e-12

	normalized := NewVec3(3, 4, 0).Normalize()
	if math.Abs(normalized.Length()-1.0) > tolerance {
		t.Errorf("Expected unit length, got %f", normalized.Length())
	}

	expected := NewVec3(0.6, 0.8, 0)
	if normalized.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected %v, got %v", expected, normalized)
	}

	// Zero vector normalizes to zero rather than NaN
	zero := NewVec3(0, 0, 0).Normalize()
	if !zero.Equals(NewVec3(0, 0, 0)) {
		t.Errorf("Expected zero vector, got %v", zero)
	}
}
