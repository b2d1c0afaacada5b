package experiments

import (
	"fmt"

	"github.com/dhcnlab/dhcn/dynamics"
	"github.com/dhcnlab/dhcn/kinematics"
	"github.com/dhcnlab/dhcn/netsim"
	"github.com/dhcnlab/dhcn/recording"
)

// InertiaParams configures the inertia limit experiment.
type InertiaParams struct {
	C        float64
	OmegaMax float64
	RestMass float64
	Force    float64

	// TotalTime is the simulated time span of the thrust phase.
	TotalTime float64

	// TickRate is the number of integration steps per second.
	TickRate netsim.Rate
}

// DefaultInertiaParams mirrors the reference run: unit rest mass pushed by
// a constant 0.5 thrust for 20 seconds.
func DefaultInertiaParams() InertiaParams {
	return InertiaParams{
		C:         1.0,
		OmegaMax:  100.0,
		RestMass:  1.0,
		Force:     0.5,
		TotalTime: 20.0,
		TickRate:  100 * netsim.Hz,
	}
}

// InertiaResult is the outcome of the inertia limit experiment.
type InertiaResult struct {
	FinalSpeed        float64
	FinalAcceleration float64
	FinalInertia      float64
	ProperTicks       float64
}

// InertiaRow is one recorded integration step.
type InertiaRow struct {
	Step             int
	GlobalTime       float64
	Speed            float64
	Acceleration     float64
	EffectiveInertia float64
}

// thrustAgent advances a driven body once per tick.
type thrustAgent struct {
	body    *dynamics.Body
	endTime netsim.VTime

	last    dynamics.StepResult
	history []dynamics.StepResult
}

func (a *thrustAgent) Tick(now netsim.VTime) bool {
	a.last = a.body.Step()
	a.history = append(a.history, a.last)

	return now < a.endTime
}

// RunInertia runs the inertia limit experiment. The recorder may be nil.
func RunInertia(p InertiaParams, rec recording.Recorder) (InertiaResult, error) {
	model, err := kinematics.NewModel(p.C, p.OmegaMax)
	if err != nil {
		return InertiaResult{}, err
	}

	if p.TotalTime <= 0 {
		return InertiaResult{}, fmt.Errorf(
			"total time must be positive, got %g", p.TotalTime)
	}

	dt := float64(p.TickRate.Period())
	body, err := dynamics.NewBody(dynamics.Config{
		RestMass: p.RestMass,
		Force:    p.Force,
		Dt:       dt,
	}, model)
	if err != nil {
		return InertiaResult{}, err
	}

	engine := netsim.NewSerialEngine()
	agent := &thrustAgent{
		body:    body,
		endTime: netsim.VTime(p.TotalTime - dt/2),
	}

	netsim.NewTickingAgent("Rocket", engine, p.TickRate, agent).TickLater()

	if err := engine.Run(); err != nil {
		return InertiaResult{}, err
	}
	engine.Finished()

	if rec != nil {
		rec.CreateTable("thrust_history", InertiaRow{})
		for i, res := range agent.history {
			rec.Insert("thrust_history", InertiaRow{
				Step:             i + 1,
				GlobalTime:       dt * float64(i+1),
				Speed:            res.Speed,
				Acceleration:     res.Acceleration,
				EffectiveInertia: res.EffectiveInertia,
			})
		}
		rec.Flush()
	}

	return InertiaResult{
		FinalSpeed:        agent.last.Speed,
		FinalAcceleration: agent.last.Acceleration,
		FinalInertia:      agent.last.EffectiveInertia,
		ProperTicks:       body.ProperTicks(),
	}, nil
}
