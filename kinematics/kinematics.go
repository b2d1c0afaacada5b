// Package kinematics implements the bandwidth-allocation law of the DHCN
// model. Each node of the causal network owns a fixed processing budget
// Omega_max that splits between a spatial translation rate and a temporal
// refresh rate, with the sum of squares conserved. The normalized temporal
// rate reproduces the special-relativistic time dilation factor.
package kinematics

import (
	"fmt"
	"math"
)

// RateVector holds the two orthogonal processing rate components of a node.
// The components satisfy Temporal^2 + Spatial^2 == OmegaMax^2.
type RateVector struct {
	Temporal float64
	Spatial  float64
}

// Model computes the bandwidth split for bodies moving at a fraction of the
// maximum signal speed.
type Model struct {
	c        float64
	omegaMax float64
}

// NewModel creates a Model. C is the maximum signal speed and omegaMax the
// total processing rate of a node, both strictly positive.
func NewModel(c, omegaMax float64) (Model, error) {
	if c <= 0 || math.IsNaN(c) || math.IsInf(c, 0) {
		return Model{}, fmt.Errorf(
			"maximum signal speed must be positive, got %g", c)
	}

	if omegaMax <= 0 || math.IsNaN(omegaMax) || math.IsInf(omegaMax, 0) {
		return Model{}, fmt.Errorf(
			"maximum processing rate must be positive, got %g", omegaMax)
	}

	return Model{c: c, omegaMax: omegaMax}, nil
}

// C returns the maximum signal speed.
func (m Model) C() float64 {
	return m.c
}

// OmegaMax returns the total processing rate of a node.
func (m Model) OmegaMax() float64 {
	return m.omegaMax
}

func (m Model) checkSpeed(v float64) error {
	if math.IsNaN(v) || v < 0 {
		return fmt.Errorf("speed must be non-negative, got %g", v)
	}

	if v >= m.c {
		return fmt.Errorf(
			"speed %g is at or beyond the maximum signal speed %g", v, m.c)
	}

	return nil
}

// SpatialRate returns the processing rate consumed by spatial translation
// at speed v. The rate grows linearly with v and saturates the budget as
// v approaches the maximum signal speed.
func (m Model) SpatialRate(v float64) (float64, error) {
	if err := m.checkSpeed(v); err != nil {
		return 0, err
	}

	return m.omegaMax * (v / m.c), nil
}

// TemporalRate returns the internal refresh rate left over after spatial
// translation at speed v. The returned value lies in (0, OmegaMax].
func (m Model) TemporalRate(v float64) (float64, error) {
	if err := m.checkSpeed(v); err != nil {
		return 0, err
	}

	beta := v / m.c
	return m.omegaMax * math.Sqrt(1-beta*beta), nil
}

// Split returns both rate components at speed v.
func (m Model) Split(v float64) (RateVector, error) {
	spatial, err := m.SpatialRate(v)
	if err != nil {
		return RateVector{}, err
	}

	temporal, err := m.TemporalRate(v)
	if err != nil {
		return RateVector{}, err
	}

	return RateVector{Temporal: temporal, Spatial: spatial}, nil
}

// Gamma returns the Lorentz factor at speed v, the inverse of the
// normalized temporal rate.
func (m Model) Gamma(v float64) (float64, error) {
	temporal, err := m.TemporalRate(v)
	if err != nil {
		return 0, err
	}

	return m.omegaMax / temporal, nil
}
