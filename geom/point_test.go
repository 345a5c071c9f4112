package geom

import (
	"errors"
	"testing"
)

func TestNewPointFillsMissingCoordinates(t *testing.T) {
	p, err := NewPoint[int](3, 5)
	if err != nil {
		t.Fatalf("unexpected NewPoint error: %v", err)
	}
	if !p.Equal(Point[int]{5, 0, 0}) {
		t.Fatalf("expected (5, 0, 0), got %v", p)
	}
}

func TestNewPointRejectsExcessCoordinates(t *testing.T) {
	_, err := NewPoint[int](2, 1, 2, 3)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestPointEquality(t *testing.T) {
	a := Point[float64]{1, 2}
	b := Point[float64]{1, 2}
	c := Point[float64]{1, 3}
	if !a.Equal(b) {
		t.Errorf("expected %v == %v", a, b)
	}
	if a.Equal(c) {
		t.Errorf("expected %v != %v", a, c)
	}
	if a.Equal(Point[float64]{1}) {
		t.Errorf("points of different dimensionality must not be equal")
	}
}

func TestPointCloneIsIndependent(t *testing.T) {
	a := Point[int]{1, 2}
	b := a.Clone()
	b[0] = 9
	if a[0] != 1 {
		t.Fatalf("clone aliases its source")
	}
}

func TestPointString(t *testing.T) {
	p := Point[int]{5, 6}
	if p.String() != "(5, 6)" {
		t.Errorf("unexpected rendering %q", p.String())
	}
}
