// Package cosmology evolves the scale of the causal network over cosmic
// time. The expansion velocity has two parts: an inertial matter component
// damped by gravity, and a network-proliferation component that grows with
// the size of the network itself. Their crossover produces the transition
// from decelerating to accelerating expansion.
package cosmology

import (
	"fmt"
	"math"
)

// Params configures a cosmic expansion run.
type Params struct {
	// InitialSize of the network.
	InitialSize float64

	// Hubble0 is the initial expansion velocity provided by the big bang.
	Hubble0 float64

	// GravityDrag is the per-step damping factor of the matter component.
	GravityDrag float64

	// Lambda is the per-step node proliferation rate.
	Lambda float64

	// Steps is the number of cosmic time steps to simulate.
	Steps int
}

// DefaultParams mirrors the reference run.
func DefaultParams() Params {
	return Params{
		InitialSize: 50,
		Hubble0:     3,
		GravityDrag: 0.05,
		Lambda:      0.008,
		Steps:       150,
	}
}

func (p Params) validate() error {
	if p.InitialSize <= 0 || math.IsNaN(p.InitialSize) {
		return fmt.Errorf("initial size must be positive, got %g", p.InitialSize)
	}

	if p.Hubble0 <= 0 || math.IsNaN(p.Hubble0) {
		return fmt.Errorf("initial expansion velocity must be positive, got %g",
			p.Hubble0)
	}

	if p.GravityDrag < 0 || math.IsNaN(p.GravityDrag) {
		return fmt.Errorf("gravity drag must be non-negative, got %g",
			p.GravityDrag)
	}

	if p.Lambda < 0 || math.IsNaN(p.Lambda) {
		return fmt.Errorf("proliferation rate must be non-negative, got %g",
			p.Lambda)
	}

	if p.Steps < 1 {
		return fmt.Errorf("need at least 1 step, got %d", p.Steps)
	}

	return nil
}

// A Universe is the evolving network scale. Each Step advances one unit of
// cosmic time.
type Universe struct {
	params Params

	size     float64
	vMatter  float64
	stepsRun int
}

// NewUniverse creates a Universe in its initial state.
func NewUniverse(params Params) (*Universe, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	return &Universe{
		params:  params,
		size:    params.InitialSize,
		vMatter: params.Hubble0,
	}, nil
}

// Size returns the current network size.
func (u *Universe) Size() float64 {
	return u.size
}

// StepsRun returns the number of steps performed so far.
func (u *Universe) StepsRun() int {
	return u.stepsRun
}

// Done reports whether the configured number of steps has been performed.
func (u *Universe) Done() bool {
	return u.stepsRun >= u.params.Steps
}

// Step advances the universe by one unit of cosmic time and returns the
// total expansion velocity of that step.
func (u *Universe) Step() float64 {
	u.vMatter /= 1 + u.params.GravityDrag
	vDarkEnergy := u.size * u.params.Lambda

	vTotal := u.vMatter + vDarkEnergy
	u.size += vTotal
	u.stepsRun++

	return vTotal
}

// History is the recorded expansion velocity per step.
type History struct {
	Velocity []float64
	Size     []float64
}

// JerkStep returns the step at which the expansion switched from
// deceleration to acceleration, the minimum of the velocity history, and
// whether such an interior minimum exists.
func (h History) JerkStep() (int, float64, bool) {
	if len(h.Velocity) < 3 {
		return 0, 0, false
	}

	minIdx := 0
	for i, v := range h.Velocity {
		if v < h.Velocity[minIdx] {
			minIdx = i
		}
	}

	if minIdx == 0 || minIdx == len(h.Velocity)-1 {
		return 0, 0, false
	}

	return minIdx, h.Velocity[minIdx], true
}

// Run evolves a fresh universe to completion and returns the full history.
func Run(params Params) (History, error) {
	u, err := NewUniverse(params)
	if err != nil {
		return History{}, err
	}

	h := History{
		Velocity: make([]float64, 0, params.Steps),
		Size:     make([]float64, 0, params.Steps),
	}

	for !u.Done() {
		h.Velocity = append(h.Velocity, u.Step())
		h.Size = append(h.Size, u.Size())
	}

	return h, nil
}
