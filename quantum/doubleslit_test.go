package quantum_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dhcnlab/dhcn/quantum"
)

var _ = Describe("Propagate", func() {
	It("should double the center intensity in wave mode", func() {
		pattern, err := quantum.Propagate(quantum.DefaultGeometry())

		Expect(err).ToNot(HaveOccurred())
		Expect(pattern.CenterRatio()).To(BeNumerically("~", 2.0, 1e-3))
	})

	It("should give an exact ratio of 2 on the symmetry axis", func() {
		g := quantum.DefaultGeometry()
		g.ScreenPoints = 1001 // odd count puts a sample at y = 0

		pattern, err := quantum.Propagate(g)

		Expect(err).ToNot(HaveOccurred())
		Expect(pattern.CenterRatio()).To(BeNumerically("~", 2.0, 1e-9))
	})

	It("should produce a symmetric pattern", func() {
		g := quantum.DefaultGeometry()
		g.ScreenPoints = 1001

		pattern, err := quantum.Propagate(g)
		Expect(err).ToNot(HaveOccurred())

		n := len(pattern.Wave)
		for i := 0; i < n/2; i++ {
			Expect(pattern.Wave[i]).To(
				BeNumerically("~", pattern.Wave[n-1-i], 1e-9))
			Expect(pattern.Particle[i]).To(
				BeNumerically("~", pattern.Particle[n-1-i], 1e-9))
		}
	})

	It("should show destructive fringes only in wave mode", func() {
		pattern, err := quantum.Propagate(quantum.DefaultGeometry())
		Expect(err).ToNot(HaveOccurred())

		minWave, minParticle := pattern.Wave[0], pattern.Particle[0]
		for i := range pattern.Wave {
			if pattern.Wave[i] < minWave {
				minWave = pattern.Wave[i]
			}
			if pattern.Particle[i] < minParticle {
				minParticle = pattern.Particle[i]
			}
		}

		// Coherent summation nearly cancels at dark fringes; the incoherent
		// sum never drops below the single-slit floor.
		Expect(minWave).To(BeNumerically("<", 0.05))
		Expect(minParticle).To(BeNumerically(">", 0.5))
	})

	It("should reject invalid geometry", func() {
		g := quantum.DefaultGeometry()
		g.Wavelength = 0
		_, err := quantum.Propagate(g)
		Expect(err).To(HaveOccurred())

		g = quantum.DefaultGeometry()
		g.ScreenPoints = 1
		_, err = quantum.Propagate(g)
		Expect(err).To(HaveOccurred())
	})
})
