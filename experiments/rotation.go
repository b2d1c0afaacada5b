package experiments

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/dhcnlab/dhcn/gravity"
	"github.com/dhcnlab/dhcn/recording"
)

// RotationParams configures the galaxy rotation experiment.
type RotationParams struct {
	// G is the gravitational constant.
	G float64

	// GalaxyMass is the enclosed visible mass.
	GalaxyMass float64

	// Alpha is the entropic coupling of the "true" universe that produced
	// the observations.
	Alpha float64

	// RMin, RMax and CurvePoints define the radius range of the predicted
	// curves.
	RMin, RMax  float64
	CurvePoints int

	// ObsPoints synthetic observations are placed inside the radius range
	// with Gaussian noise of ObsNoise standard deviation.
	ObsPoints int
	ObsNoise  float64
	Seed      int64
}

// DefaultRotationParams mirrors the reference run.
func DefaultRotationParams() RotationParams {
	return RotationParams{
		G:           1.0,
		GalaxyMass:  1000.0,
		Alpha:       2.0,
		RMin:        1.0,
		RMax:        100.0,
		CurvePoints: 200,
		ObsPoints:   20,
		ObsNoise:    0.2,
		Seed:        42,
	}
}

// RotationResult is the outcome of the galaxy rotation experiment.
type RotationResult struct {
	// FittedAlpha is the coupling recovered from the noisy observations.
	FittedAlpha float64

	// AsymptoticVelocity is the flat-curve velocity implied by the fit.
	AsymptoticVelocity float64

	// OuterNewtonian and OuterCorrected compare the two predictions at the
	// outer edge of the disk.
	OuterNewtonian float64
	OuterCorrected float64
}

// RotationCurveRow is one radius sample of the predicted curves.
type RotationCurveRow struct {
	Radius    float64
	Newtonian float64
	Corrected float64
}

// RotationObsRow is one synthetic observation.
type RotationObsRow struct {
	Radius   float64
	Velocity float64
}

// RunRotation runs the galaxy rotation experiment. The recorder may be nil.
func RunRotation(p RotationParams, rec recording.Recorder) (RotationResult, error) {
	if p.CurvePoints < 2 || p.ObsPoints < 1 {
		return RotationResult{}, fmt.Errorf(
			"need at least 2 curve points and 1 observation, got %d and %d",
			p.CurvePoints, p.ObsPoints)
	}

	if p.RMin <= 0 || p.RMax <= p.RMin {
		return RotationResult{}, fmt.Errorf(
			"invalid radius range [%g, %g]", p.RMin, p.RMax)
	}

	radii := make([]float64, p.CurvePoints)
	floats.Span(radii, p.RMin, p.RMax)

	newtonian := make([]float64, len(radii))
	for i, r := range radii {
		v, err := gravity.NewtonianVelocity(r, p.GalaxyMass, p.G)
		if err != nil {
			return RotationResult{}, err
		}
		newtonian[i] = v
	}

	corrected, err := gravity.Curve(radii, p.GalaxyMass, p.G, p.Alpha)
	if err != nil {
		return RotationResult{}, err
	}

	// Observations live away from the disk edges, as a telescope would
	// sample them.
	obsRadii := make([]float64, p.ObsPoints)
	span := p.RMax - p.RMin
	floats.Span(obsRadii, p.RMin+0.05*span, p.RMax-0.05*span)

	obs, err := gravity.SyntheticObservations(
		obsRadii, p.GalaxyMass, p.G, p.Alpha, p.ObsNoise, p.Seed)
	if err != nil {
		return RotationResult{}, err
	}

	fitted, err := gravity.FitAlpha(obs, p.GalaxyMass, p.G)
	if err != nil {
		return RotationResult{}, err
	}

	if rec != nil {
		rec.CreateTable("rotation_curve", RotationCurveRow{})
		for i := range radii {
			rec.Insert("rotation_curve", RotationCurveRow{
				Radius:    radii[i],
				Newtonian: newtonian[i],
				Corrected: corrected[i],
			})
		}

		rec.CreateTable("rotation_observations", RotationObsRow{})
		for _, s := range obs {
			rec.Insert("rotation_observations", RotationObsRow{
				Radius:   s.Radius,
				Velocity: s.Velocity,
			})
		}
		rec.Flush()
	}

	return RotationResult{
		FittedAlpha:        fitted,
		AsymptoticVelocity: gravity.AsymptoticVelocity(fitted),
		OuterNewtonian:     newtonian[len(newtonian)-1],
		OuterCorrected:     corrected[len(corrected)-1],
	}, nil
}
