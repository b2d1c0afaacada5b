// Package quantum runs the double-slit path summation of the DHCN model.
// The network either adds the complex propagators of the two paths before
// squaring (unobserved, wave mode) or adds the squared magnitudes
// (observed, particle mode). The center-of-screen ratio between the two
// modes is the 2.0 verification figure.
package quantum

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

// Geometry describes the double-slit setup.
type Geometry struct {
	// ScreenPoints is the number of sample points on the screen.
	ScreenPoints int

	// ScreenHalfWidth is the half extent of the screen along y.
	ScreenHalfWidth float64

	// Wavelength of the propagating signal.
	Wavelength float64

	// SlitDistance separates the two slits.
	SlitDistance float64

	// ScreenDistance separates the slit plane from the screen. Large values
	// put the screen in the far field.
	ScreenDistance float64
}

// DefaultGeometry mirrors the reference experiment setup.
func DefaultGeometry() Geometry {
	return Geometry{
		ScreenPoints:    1000,
		ScreenHalfWidth: 400,
		Wavelength:      20,
		SlitDistance:    120,
		ScreenDistance:  2000,
	}
}

func (g Geometry) validate() error {
	if g.ScreenPoints < 3 {
		return fmt.Errorf("need at least 3 screen points, got %d", g.ScreenPoints)
	}

	if g.ScreenHalfWidth <= 0 {
		return fmt.Errorf("screen half width must be positive, got %g",
			g.ScreenHalfWidth)
	}

	if g.Wavelength <= 0 {
		return fmt.Errorf("wavelength must be positive, got %g", g.Wavelength)
	}

	if g.SlitDistance <= 0 {
		return fmt.Errorf("slit distance must be positive, got %g",
			g.SlitDistance)
	}

	if g.ScreenDistance <= 0 {
		return fmt.Errorf("screen distance must be positive, got %g",
			g.ScreenDistance)
	}

	return nil
}

// Pattern is the intensity distribution over the screen in both modes,
// normalized by the peak single-slit intensity.
type Pattern struct {
	Y        []float64
	Wave     []float64
	Particle []float64
}

// CenterRatio returns the ratio of wave to particle intensity at the
// center of the screen. Full constructive interference doubles the
// incoherent sum, so the expected value is 2.
func (p Pattern) CenterRatio() float64 {
	center := len(p.Y) / 2
	return p.Wave[center] / p.Particle[center]
}

// Propagate computes the interference pattern for the geometry.
func Propagate(g Geometry) (Pattern, error) {
	if err := g.validate(); err != nil {
		return Pattern{}, err
	}

	k := 2 * math.Pi / g.Wavelength

	y := make([]float64, g.ScreenPoints)
	floats.Span(y, -g.ScreenHalfWidth, g.ScreenHalfWidth)

	wave := make([]float64, g.ScreenPoints)
	particle := make([]float64, g.ScreenPoints)

	maxSingle := 0.0
	for i, yi := range y {
		r1 := math.Hypot(g.ScreenDistance, yi-g.SlitDistance/2)
		r2 := math.Hypot(g.ScreenDistance, yi+g.SlitDistance/2)

		// Green's function of each path: (1/r) e^{ikr}.
		psi1 := cmplx.Exp(complex(0, k*r1)) * complex(1/r1, 0)
		psi2 := cmplx.Exp(complex(0, k*r2)) * complex(1/r2, 0)

		i1 := real(psi1)*real(psi1) + imag(psi1)*imag(psi1)
		i2 := real(psi2)*real(psi2) + imag(psi2)*imag(psi2)
		if i1 > maxSingle {
			maxSingle = i1
		}

		total := psi1 + psi2
		wave[i] = real(total)*real(total) + imag(total)*imag(total)
		particle[i] = i1 + i2
	}

	for i := range wave {
		wave[i] /= maxSingle
		particle[i] /= maxSingle
	}

	return Pattern{Y: y, Wave: wave, Particle: particle}, nil
}
