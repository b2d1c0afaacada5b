// Package causalgraph evolves the link structure of a random causal
// network toward a crystallized geometry. Edges with strong neighborhood
// overlap (high discrete curvature) are reinforced by gravity; every edge
// pays a constant dark-energy toll; links that fall below the cutoff are
// severed. The average clustering coefficient serves as the order metric
// of the emerging geometry.
package causalgraph

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Params configures a crystallization run.
type Params struct {
	// Nodes is the number of network nodes.
	Nodes int

	// EdgeProb is the initial link probability between any two nodes.
	EdgeProb float64

	// GravityStrength rewards edges with high curvature.
	GravityStrength float64

	// DarkEnergy is the constant per-sweep weight toll on every edge.
	DarkEnergy float64

	// Cutoff is the weight below which a link is severed.
	Cutoff float64

	// MaxWeight caps the link weight.
	MaxWeight float64

	// Steps is the number of evolution sweeps.
	Steps int

	// Seed drives the initial random wiring.
	Seed int64
}

// DefaultParams mirrors the reference run.
func DefaultParams() Params {
	return Params{
		Nodes:           60,
		EdgeProb:        0.25,
		GravityStrength: 0.3,
		DarkEnergy:      0.1,
		Cutoff:          0.5,
		MaxWeight:       2.0,
		Steps:           60,
		Seed:            42,
	}
}

func (p Params) validate() error {
	if p.Nodes < 2 {
		return fmt.Errorf("need at least 2 nodes, got %d", p.Nodes)
	}

	if p.EdgeProb <= 0 || p.EdgeProb > 1 || math.IsNaN(p.EdgeProb) {
		return fmt.Errorf("edge probability must be in (0, 1], got %g",
			p.EdgeProb)
	}

	if p.GravityStrength < 0 || math.IsNaN(p.GravityStrength) {
		return fmt.Errorf("gravity strength must be non-negative, got %g",
			p.GravityStrength)
	}

	if p.DarkEnergy < 0 || math.IsNaN(p.DarkEnergy) {
		return fmt.Errorf("dark energy must be non-negative, got %g",
			p.DarkEnergy)
	}

	if p.Cutoff < 0 || math.IsNaN(p.Cutoff) {
		return fmt.Errorf("cutoff must be non-negative, got %g", p.Cutoff)
	}

	if p.MaxWeight <= p.Cutoff {
		return fmt.Errorf("max weight %g must exceed the cutoff %g",
			p.MaxWeight, p.Cutoff)
	}

	if p.Steps < 1 {
		return fmt.Errorf("need at least 1 sweep, got %d", p.Steps)
	}

	return nil
}

// A Lattice is the evolving causal network.
type Lattice struct {
	params Params
	g      *simple.WeightedUndirectedGraph

	sweepsRun int
}

// NewLattice wires a random network according to the parameters.
func NewLattice(params Params) (*Lattice, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	l := &Lattice{
		params: params,
		g:      simple.NewWeightedUndirectedGraph(0, 0),
	}

	for i := 0; i < params.Nodes; i++ {
		l.g.AddNode(simple.Node(i))
	}

	rnd := rand.New(rand.NewSource(params.Seed))
	for i := 0; i < params.Nodes; i++ {
		for j := i + 1; j < params.Nodes; j++ {
			if rnd.Float64() < params.EdgeProb {
				l.g.SetWeightedEdge(simple.WeightedEdge{
					F: simple.Node(i),
					T: simple.Node(j),
					W: 1.0,
				})
			}
		}
	}

	return l, nil
}

// EdgeCount returns the current number of links.
func (l *Lattice) EdgeCount() int {
	return l.g.Edges().Len()
}

// SweepsRun returns the number of sweeps performed so far.
func (l *Lattice) SweepsRun() int {
	return l.sweepsRun
}

// Done reports whether the configured number of sweeps has been performed.
func (l *Lattice) Done() bool {
	return l.sweepsRun >= l.params.Steps
}

func (l *Lattice) neighborSet(id int64) map[int64]struct{} {
	set := make(map[int64]struct{})
	it := l.g.From(id)
	for it.Next() {
		set[it.Node().ID()] = struct{}{}
	}
	return set
}

// Curvature returns the discrete Ricci-like curvature of the link between
// u and v: the Jaccard overlap of their neighborhoods. Isolated endpoints
// have curvature -1.
func (l *Lattice) Curvature(u, v int64) float64 {
	nu := l.neighborSet(u)
	nv := l.neighborSet(v)
	if len(nu) == 0 || len(nv) == 0 {
		return -1
	}

	common := 0
	for id := range nu {
		if _, ok := nv[id]; ok {
			common++
		}
	}

	union := len(nu) + len(nv) - common
	if union == 0 {
		return -1
	}

	return float64(common) / float64(union)
}

// Sweep performs one evolution step over all links and returns the number
// of links severed.
func (l *Lattice) Sweep() int {
	type update struct {
		u, v int64
		w    float64
	}

	var updates []update
	it := l.g.WeightedEdges()
	for it.Next() {
		e := it.WeightedEdge()
		u := e.From().ID()
		v := e.To().ID()

		kappa := l.Curvature(u, v)
		w := e.Weight() + l.params.GravityStrength*kappa - l.params.DarkEnergy
		if w > l.params.MaxWeight {
			w = l.params.MaxWeight
		}

		updates = append(updates, update{u: u, v: v, w: w})
	}

	severed := 0
	for _, up := range updates {
		if up.w < l.params.Cutoff {
			l.g.RemoveEdge(up.u, up.v)
			severed++
			continue
		}

		l.g.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(up.u),
			T: simple.Node(up.v),
			W: up.w,
		})
	}

	l.sweepsRun++

	return severed
}

// Order returns the average clustering coefficient of the network, the
// order metric of the crystallization.
func (l *Lattice) Order() float64 {
	nodes := graph.NodesOf(l.g.Nodes())
	if len(nodes) == 0 {
		return 0
	}

	total := 0.0
	for _, n := range nodes {
		neighbors := graph.NodesOf(l.g.From(n.ID()))
		k := len(neighbors)
		if k < 2 {
			continue
		}

		links := 0
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if l.g.HasEdgeBetween(neighbors[i].ID(), neighbors[j].ID()) {
					links++
				}
			}
		}

		total += 2.0 * float64(links) / float64(k*(k-1))
	}

	return total / float64(len(nodes))
}

// SweepResult is the state of the lattice after one sweep.
type SweepResult struct {
	Sweep   int
	Order   float64
	Edges   int
	Severed int
}

// Run evolves a fresh lattice to completion and returns the per-sweep
// history.
func Run(params Params) ([]SweepResult, error) {
	l, err := NewLattice(params)
	if err != nil {
		return nil, err
	}

	results := make([]SweepResult, 0, params.Steps)
	for !l.Done() {
		severed := l.Sweep()
		results = append(results, SweepResult{
			Sweep:   l.SweepsRun(),
			Order:   l.Order(),
			Edges:   l.EdgeCount(),
			Severed: severed,
		})
	}

	return results, nil
}
