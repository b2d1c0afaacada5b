package experiments

import (
	"github.com/dhcnlab/dhcn/quantum"
	"github.com/dhcnlab/dhcn/recording"
)

// SlitResult is the outcome of the double-slit experiment.
type SlitResult struct {
	// CenterWave and CenterParticle are the normalized intensities at the
	// screen center in the two summation modes.
	CenterWave     float64
	CenterParticle float64

	// Ratio is CenterWave over CenterParticle; constructive interference
	// makes it 2.
	Ratio float64
}

// SlitRow is one screen sample of the interference pattern.
type SlitRow struct {
	Y        float64
	Wave     float64
	Particle float64
}

// RunSlit runs the double-slit experiment. The recorder may be nil.
func RunSlit(g quantum.Geometry, rec recording.Recorder) (SlitResult, error) {
	pattern, err := quantum.Propagate(g)
	if err != nil {
		return SlitResult{}, err
	}

	if rec != nil {
		rec.CreateTable("interference_pattern", SlitRow{})
		for i := range pattern.Y {
			rec.Insert("interference_pattern", SlitRow{
				Y:        pattern.Y[i],
				Wave:     pattern.Wave[i],
				Particle: pattern.Particle[i],
			})
		}
		rec.Flush()
	}

	center := len(pattern.Y) / 2
	return SlitResult{
		CenterWave:     pattern.Wave[center],
		CenterParticle: pattern.Particle[center],
		Ratio:          pattern.CenterRatio(),
	}, nil
}
