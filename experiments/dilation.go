// Package experiments wires the DHCN models to the simulation kernel and
// the results recorder. Each experiment reproduces one numerical study:
// time dilation, the inertia limit, galaxy rotation curves, the double
// slit, cosmic expansion, and spacetime crystallization.
package experiments

import (
	"fmt"
	"math"

	"github.com/dhcnlab/dhcn/kinematics"
	"github.com/dhcnlab/dhcn/netsim"
	"github.com/dhcnlab/dhcn/recording"
)

// DilationParams configures the time dilation experiment.
type DilationParams struct {
	// C is the maximum signal speed.
	C float64

	// OmegaMax is the per-node processing budget.
	OmegaMax float64

	// Speed of the traveling agent, in [0, C).
	Speed float64

	// TotalTime is the simulated global time span.
	TotalTime float64

	// TickRate is the number of global steps per second.
	TickRate netsim.Rate
}

// DefaultDilationParams mirrors the reference run: a traveler at 0.8c
// observed for 10 seconds of global time at 100 steps per second.
func DefaultDilationParams() DilationParams {
	return DilationParams{
		C:         1.0,
		OmegaMax:  100.0,
		Speed:     0.8,
		TotalTime: 10.0,
		TickRate:  100 * netsim.Hz,
	}
}

// DilationResult is the outcome of the time dilation experiment.
type DilationResult struct {
	StaticTicks   float64
	TravelerTicks float64

	// Ratio is traveler over static proper time.
	Ratio float64

	// Predicted is the analytic dilation factor sqrt(1 - (v/c)^2).
	Predicted float64
}

// DilationRow is one recorded sample of the two proper clocks.
type DilationRow struct {
	Step          int
	GlobalTime    float64
	StaticTicks   float64
	TravelerTicks float64
}

// clockAgent accumulates proper time for a body moving at a fixed speed.
type clockAgent struct {
	temporalRate float64
	dt           float64
	endTime      netsim.VTime

	ticks   float64
	history []float64
}

func (a *clockAgent) Tick(now netsim.VTime) bool {
	a.ticks += a.temporalRate * a.dt
	a.history = append(a.history, a.ticks)

	return now < a.endTime
}

// RunDilation runs the time dilation experiment. The recorder may be nil.
func RunDilation(
	p DilationParams,
	rec recording.Recorder,
) (DilationResult, error) {
	model, err := kinematics.NewModel(p.C, p.OmegaMax)
	if err != nil {
		return DilationResult{}, err
	}

	if p.TotalTime <= 0 {
		return DilationResult{}, fmt.Errorf(
			"total time must be positive, got %g", p.TotalTime)
	}

	staticRate, err := model.TemporalRate(0)
	if err != nil {
		return DilationResult{}, err
	}

	travelerRate, err := model.TemporalRate(p.Speed)
	if err != nil {
		return DilationResult{}, err
	}

	engine := netsim.NewSerialEngine()
	dt := float64(p.TickRate.Period())
	// The final tick lands exactly on TotalTime; the half-step slack keeps
	// the comparison robust against rounding of the tick times.
	endTime := netsim.VTime(p.TotalTime - dt/2)

	static := &clockAgent{
		temporalRate: staticRate, dt: dt, endTime: endTime}
	traveler := &clockAgent{
		temporalRate: travelerRate, dt: dt, endTime: endTime}

	netsim.NewTickingAgent("StaticObserver", engine, p.TickRate, static).
		TickLater()
	netsim.NewTickingAgent("FastTraveler", engine, p.TickRate, traveler).
		TickLater()

	if err := engine.Run(); err != nil {
		return DilationResult{}, err
	}
	engine.Finished()

	if rec != nil {
		rec.CreateTable("clock_history", DilationRow{})
		for i := range static.history {
			rec.Insert("clock_history", DilationRow{
				Step:          i + 1,
				GlobalTime:    dt * float64(i+1),
				StaticTicks:   static.history[i],
				TravelerTicks: traveler.history[i],
			})
		}
		rec.Flush()
	}

	beta := p.Speed / p.C
	return DilationResult{
		StaticTicks:   static.ticks,
		TravelerTicks: traveler.ticks,
		Ratio:         traveler.ticks / static.ticks,
		Predicted:     math.Sqrt(1 - beta*beta),
	}, nil
}
