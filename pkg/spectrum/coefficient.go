package spectrum

import (
	"errors"
	"math"
)

// AttenuationCoefficient is a linear absorption coefficient (1/m) governing
// Beer-Lambert decay inside a transmitting body. The default (absent) is
// zero absorption.
type AttenuationCoefficient interface {
	Distribution
	Validate() error
}

// ConstantCoefficient absorbs all wavelengths equally
type ConstantCoefficient struct {
	Coefficient float64 // 1/m
}

// At returns the constant coefficient regardless of wavelength
func (c ConstantCoefficient) At(wavelength float64) float64 {
	return c.Coefficient
}

// Validate checks the coefficient is non-negative
func (c ConstantCoefficient) Validate() error {
	if c.Coefficient < 0 {
		return errors.New("constant coefficient: must be non-negative")
	}
	return nil
}

// WaterCoefficient is an empirical approximation of the absorption spectrum
// of water across the visible range, scaled by Scale:
// https://en.wikipedia.org/wiki/Electromagnetic_absorption_by_water
type WaterCoefficient struct {
	Scale float64 // 1/m
}

// At evaluates the empirical curve: Scale · 10^((λ − 450nm) / 133.3nm)
func (c WaterCoefficient) At(wavelength float64) float64 {
	return c.Scale * math.Pow(10.0, (wavelength-450e-9)/133.3e-9)
}

// Validate checks the scale is non-negative
func (c WaterCoefficient) Validate() error {
	if c.Scale < 0 {
		return errors.New("water coefficient: scale must be non-negative")
	}
	return nil
}
