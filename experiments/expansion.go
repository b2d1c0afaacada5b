package experiments

import (
	"github.com/dhcnlab/dhcn/cosmology"
	"github.com/dhcnlab/dhcn/netsim"
	"github.com/dhcnlab/dhcn/recording"
)

// ExpansionResult is the outcome of the cosmic expansion experiment.
type ExpansionResult struct {
	// JerkStep is the cosmic time step at which expansion switched from
	// deceleration to acceleration; JerkFound is false when the history
	// has no interior minimum.
	JerkStep  int
	JerkFound bool

	FinalVelocity float64
	FinalSize     float64
}

// ExpansionRow is one recorded cosmic time step.
type ExpansionRow struct {
	Step     int
	Velocity float64
	Size     float64
}

// universeAgent advances the cosmic scale once per tick.
type universeAgent struct {
	universe *cosmology.Universe
	history  cosmology.History
}

func (a *universeAgent) Tick(now netsim.VTime) bool {
	v := a.universe.Step()
	a.history.Velocity = append(a.history.Velocity, v)
	a.history.Size = append(a.history.Size, a.universe.Size())

	return !a.universe.Done()
}

// RunExpansion runs the cosmic expansion experiment on the event kernel,
// one cosmic time step per cycle. The recorder may be nil.
func RunExpansion(
	p cosmology.Params,
	rec recording.Recorder,
) (ExpansionResult, error) {
	universe, err := cosmology.NewUniverse(p)
	if err != nil {
		return ExpansionResult{}, err
	}

	engine := netsim.NewSerialEngine()
	agent := &universeAgent{universe: universe}

	netsim.NewTickingAgent("Universe", engine, 1*netsim.Hz, agent).TickLater()

	if err := engine.Run(); err != nil {
		return ExpansionResult{}, err
	}
	engine.Finished()

	if rec != nil {
		rec.CreateTable("expansion_history", ExpansionRow{})
		for i := range agent.history.Velocity {
			rec.Insert("expansion_history", ExpansionRow{
				Step:     i + 1,
				Velocity: agent.history.Velocity[i],
				Size:     agent.history.Size[i],
			})
		}
		rec.Flush()
	}

	jerkStep, _, found := agent.history.JerkStep()
	n := len(agent.history.Velocity)

	return ExpansionResult{
		JerkStep:      jerkStep,
		JerkFound:     found,
		FinalVelocity: agent.history.Velocity[n-1],
		FinalSize:     agent.history.Size[n-1],
	}, nil
}
