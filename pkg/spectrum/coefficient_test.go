package spectrum

import (
	"math"
	"testing"
)

func TestConstantCoefficient(t *testing.T) {
	c := ConstantCoefficient{Coefficient: 0.5}
	if got := c.At(600e-9); got != 0.5 {
		t.Errorf("expected 0.5, got %f", got)
	}
	if err := (ConstantCoefficient{Coefficient: -1}).Validate(); err == nil {
		t.Error("expected error for negative coefficient")
	}
}

func TestWaterCoefficient_ReferencePoints(t *testing.T) {
	c := WaterCoefficient{Scale: 2.0}

	// At 450 nm the exponent is zero, so the value is the bare scale
	if got := c.At(450e-9); math.Abs(got-2.0) > 1e-12 {
		t.Errorf("expected 2.0 at 450nm, got %f", got)
	}
	// One decade per 133.3 nm
	if got := c.At(583.3e-9); math.Abs(got-20.0) > 1e-9 {
		t.Errorf("expected 20.0 at 583.3nm, got %f", got)
	}
}

func TestWaterCoefficient_RedAbsorbsMoreThanBlue(t *testing.T) {
	c := WaterCoefficient{Scale: 1.0}
	if c.At(700e-9) <= c.At(450e-9) {
		t.Error("expected red to be absorbed more strongly than blue")
	}
}
