package gravity_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dhcnlab/dhcn/gravity"
)

var _ = Describe("CorrectedVelocity", func() {
	It("should reduce to the Newtonian baseline at alpha = 0", func() {
		for r := 1.0; r <= 100; r += 1.0 {
			newton, err := gravity.NewtonianVelocity(r, 1000, 1)
			Expect(err).ToNot(HaveOccurred())

			corrected, err := gravity.CorrectedVelocity(r, 1000, 1, 0)
			Expect(err).ToNot(HaveOccurred())

			Expect(corrected).To(BeNumerically("==", newton))
		}
	})

	It("should give 0.5 for unit mass at radius 4", func() {
		v, err := gravity.CorrectedVelocity(4, 1, 1, 0)

		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(BeNumerically("~", 0.5, 1e-6))
	})

	It("should flatten at large radii when alpha is positive", func() {
		asymptote := gravity.AsymptoticVelocity(2.0)

		v, err := gravity.CorrectedVelocity(10000, 1000, 1, 2.0)
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(BeNumerically("~", asymptote, 0.01*asymptote))
	})

	It("should stay above the decaying Newtonian curve", func() {
		for r := 1.0; r <= 200; r += 1.0 {
			newton, err := gravity.NewtonianVelocity(r, 1000, 1)
			Expect(err).ToNot(HaveOccurred())

			corrected, err := gravity.CorrectedVelocity(r, 1000, 1, 2.0)
			Expect(err).ToNot(HaveOccurred())

			Expect(corrected).To(BeNumerically(">", newton))
		}
	})

	It("should reject a non-positive radius", func() {
		_, err := gravity.CorrectedVelocity(0, 1000, 1, 2.0)
		Expect(err).To(HaveOccurred())

		_, err = gravity.CorrectedVelocity(-4, 1000, 1, 2.0)
		Expect(err).To(HaveOccurred())
	})

	It("should reject a negative coupling", func() {
		_, err := gravity.CorrectedVelocity(1, 1000, 1, -0.5)
		Expect(err).To(HaveOccurred())
	})

	It("should never return NaN", func() {
		v, err := gravity.CorrectedVelocity(1e-12, 1000, 1, 2.0)
		Expect(err).ToNot(HaveOccurred())
		Expect(math.IsNaN(v)).To(BeFalse())
	})
})

var _ = Describe("Curve", func() {
	It("should evaluate the whole radius range", func() {
		radii := []float64{1, 2, 4, 8, 16}

		velocities, err := gravity.Curve(radii, 1000, 1, 2.0)

		Expect(err).ToNot(HaveOccurred())
		Expect(velocities).To(HaveLen(5))
		for i, r := range radii {
			expected := math.Sqrt(1000/r + 2.0)
			Expect(velocities[i]).To(BeNumerically("~", expected, 1e-12))
		}
	})

	It("should report the offending sample", func() {
		_, err := gravity.Curve([]float64{1, -1}, 1000, 1, 2.0)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("FitAlpha", func() {
	It("should recover the coupling from noiseless samples", func() {
		radii := make([]float64, 0, 90)
		for r := 5.0; r < 95; r++ {
			radii = append(radii, r)
		}

		samples, err := gravity.SyntheticObservations(radii, 1000, 1, 2.0, 0, 42)
		Expect(err).ToNot(HaveOccurred())

		alpha, err := gravity.FitAlpha(samples, 1000, 1)
		Expect(err).ToNot(HaveOccurred())
		Expect(alpha).To(BeNumerically("~", 2.0, 1e-9))
	})

	It("should stay close to the coupling under noise", func() {
		radii := make([]float64, 0, 90)
		for r := 5.0; r < 95; r++ {
			radii = append(radii, r)
		}

		samples, err := gravity.SyntheticObservations(
			radii, 1000, 1, 2.0, 0.2, 42)
		Expect(err).ToNot(HaveOccurred())

		alpha, err := gravity.FitAlpha(samples, 1000, 1)
		Expect(err).ToNot(HaveOccurred())
		Expect(alpha).To(BeNumerically("~", 2.0, 1.0))
	})

	It("should fail on an empty sample set", func() {
		_, err := gravity.FitAlpha(nil, 1000, 1)
		Expect(err).To(HaveOccurred())
	})

	It("should clamp to zero for purely Newtonian data", func() {
		samples := []gravity.Sample{
			{Radius: 10, Velocity: 5},
			{Radius: 40, Velocity: 2.5},
		}

		// v^2 = 1000/r exactly, slightly undershot.
		samples[0].Velocity = math.Sqrt(1000.0/10) * 0.99
		samples[1].Velocity = math.Sqrt(1000.0/40) * 0.99

		alpha, err := gravity.FitAlpha(samples, 1000, 1)
		Expect(err).ToNot(HaveOccurred())
		Expect(alpha).To(BeNumerically("==", 0))
	})
})
