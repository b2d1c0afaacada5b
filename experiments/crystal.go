package experiments

import (
	"github.com/dhcnlab/dhcn/causalgraph"
	"github.com/dhcnlab/dhcn/netsim"
	"github.com/dhcnlab/dhcn/recording"
)

// CrystalResult is the outcome of the spacetime crystallization
// experiment.
type CrystalResult struct {
	InitialOrder float64
	InitialEdges int
	FinalOrder   float64
	FinalEdges   int
}

// CrystalRow is one recorded evolution sweep.
type CrystalRow struct {
	Sweep       int
	OrderMetric float64
	Edges       int
	Severed     int
}

// latticeAgent performs one evolution sweep per tick.
type latticeAgent struct {
	lattice *causalgraph.Lattice
	history []causalgraph.SweepResult
}

func (a *latticeAgent) Tick(now netsim.VTime) bool {
	severed := a.lattice.Sweep()
	a.history = append(a.history, causalgraph.SweepResult{
		Sweep:   a.lattice.SweepsRun(),
		Order:   a.lattice.Order(),
		Edges:   a.lattice.EdgeCount(),
		Severed: severed,
	})

	return !a.lattice.Done()
}

// RunCrystal runs the spacetime crystallization experiment on the event
// kernel, one sweep per cycle. The recorder may be nil.
func RunCrystal(
	p causalgraph.Params,
	rec recording.Recorder,
) (CrystalResult, error) {
	lattice, err := causalgraph.NewLattice(p)
	if err != nil {
		return CrystalResult{}, err
	}

	initialOrder := lattice.Order()
	initialEdges := lattice.EdgeCount()

	engine := netsim.NewSerialEngine()
	agent := &latticeAgent{lattice: lattice}

	netsim.NewTickingAgent("Lattice", engine, 1*netsim.Hz, agent).TickLater()

	if err := engine.Run(); err != nil {
		return CrystalResult{}, err
	}
	engine.Finished()

	if rec != nil {
		rec.CreateTable("crystal_history", CrystalRow{})
		for _, r := range agent.history {
			rec.Insert("crystal_history", CrystalRow{
				Sweep:       r.Sweep,
				OrderMetric: r.Order,
				Edges:       r.Edges,
				Severed:     r.Severed,
			})
		}
		rec.Flush()
	}

	last := agent.history[len(agent.history)-1]
	return CrystalResult{
		InitialOrder: initialOrder,
		InitialEdges: initialEdges,
		FinalOrder:   last.Order,
		FinalEdges:   last.Edges,
	}, nil
}
