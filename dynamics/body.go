// Package dynamics integrates the motion of a body driven by a constant
// thrust under the DHCN bandwidth limit. Thrust changes momentum linearly;
// speed is solved back from momentum, which keeps it below the maximum
// signal speed for any number of steps while the effective inertia
// diverges.
package dynamics

import (
	"fmt"
	"math"

	"github.com/dhcnlab/dhcn/kinematics"
)

// Config parameterizes a driven body.
type Config struct {
	// RestMass of the body, strictly positive.
	RestMass float64

	// Force is the constant thrust applied at each step, strictly positive.
	Force float64

	// Dt is the global time step, strictly positive.
	Dt float64
}

func (c Config) validate() error {
	if c.RestMass <= 0 || math.IsNaN(c.RestMass) {
		return fmt.Errorf("rest mass must be positive, got %g", c.RestMass)
	}

	if c.Force <= 0 || math.IsNaN(c.Force) {
		return fmt.Errorf("thrust must be positive, got %g", c.Force)
	}

	if c.Dt <= 0 || math.IsNaN(c.Dt) {
		return fmt.Errorf("time step must be positive, got %g", c.Dt)
	}

	return nil
}

// StepResult reports the state of the body after one integration step.
type StepResult struct {
	Speed            float64
	Acceleration     float64
	EffectiveInertia float64
	ProperTicks      float64
}

// A Body is a driven DHCN agent. The zero speed state is the initial state;
// each Step advances the body by one global time step.
type Body struct {
	cfg   Config
	model kinematics.Model

	momentum    float64
	speed       float64
	properTicks float64
}

// NewBody creates a Body at rest.
func NewBody(cfg Config, model kinematics.Model) (*Body, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Body{cfg: cfg, model: model}, nil
}

// Speed returns the current speed of the body.
func (b *Body) Speed() float64 {
	return b.speed
}

// ProperTicks returns the accumulated internal clock ticks of the body.
func (b *Body) ProperTicks() float64 {
	return b.properTicks
}

// Step applies the thrust for one time step and returns the new state.
//
// The thrust raises momentum by F*dt. Speed follows from the momentum
// relation p = gamma*m*v, solved as v = p / sqrt((m*c)^2 + (p/c)^2), which
// stays below c no matter how large p grows. The effective inertia is the
// ratio of the applied force to the realized acceleration.
func (b *Body) Step() StepResult {
	c := b.model.C()

	b.momentum += b.cfg.Force * b.cfg.Dt

	oldSpeed := b.speed
	mc := b.cfg.RestMass * c
	b.speed = b.momentum / math.Sqrt(mc*mc+(b.momentum/c)*(b.momentum/c))

	// At extreme momentum the rest-mass term falls below the floating-point
	// resolution of p^2 and the quotient rounds up to exactly c.
	if b.speed >= c {
		b.speed = math.Nextafter(c, 0)
	}

	acceleration := (b.speed - oldSpeed) / b.cfg.Dt

	effectiveInertia := math.Inf(1)
	if acceleration > 1e-9 {
		effectiveInertia = b.cfg.Force / acceleration
	}

	// The new speed is always below c, so the bandwidth split cannot fail.
	temporal, err := b.model.TemporalRate(b.speed)
	if err != nil {
		panic(err)
	}
	ticksGained := temporal * b.cfg.Dt
	b.properTicks += ticksGained

	return StepResult{
		Speed:            b.speed,
		Acceleration:     acceleration,
		EffectiveInertia: effectiveInertia,
		ProperTicks:      b.properTicks,
	}
}
