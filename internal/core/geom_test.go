package core

import "testing"

func TestBoxEdges(t *testing.T) {
	b := Box{Pos: Vec2{100, 40}, Size: Size{25, 25}}
	if b.Left() != 100 || b.Right() != 125 {
		t.Errorf("horizontal edges = (%v, %v), expected (100, 125)", b.Left(), b.Right())
	}
	if b.Top() != 40 || b.Bottom() != 65 {
		t.Errorf("vertical edges = (%v, %v), expected (40, 65)", b.Top(), b.Bottom())
	}
}

func TestVec2Add(t *testing.T) {
	got := Vec2{100, 0}.Add(Vec2{5, 5})
	if got != (Vec2{105, 5}) {
		t.Errorf("Add() = %v, expected {105 5}", got)
	}
}

func TestRectEdges(t *testing.T) {
	a := NewRect(3, 4, 10, 6)
	if a.Right() != 13 || a.Bottom() != 10 {
		t.Errorf("edges = (%d, %d), expected (13, 10)", a.Right(), a.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{390, 0, 700, 390},
		{-40, 0, 700, 0},
		{740, 0, 700, 700},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
