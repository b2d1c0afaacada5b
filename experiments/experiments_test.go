package experiments_test

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dhcnlab/dhcn/causalgraph"
	"github.com/dhcnlab/dhcn/cosmology"
	"github.com/dhcnlab/dhcn/experiments"
	"github.com/dhcnlab/dhcn/quantum"
	"github.com/dhcnlab/dhcn/recording"
)

var _ = Describe("RunDilation", func() {
	It("should dilate the traveler clock by the predicted factor", func() {
		res, err := experiments.RunDilation(
			experiments.DefaultDilationParams(), nil)

		Expect(err).ToNot(HaveOccurred())
		Expect(res.Predicted).To(BeNumerically("~", 0.6, 1e-12))
		Expect(res.Ratio).To(BeNumerically("~", 0.6, 1e-6))
		Expect(res.StaticTicks).To(BeNumerically("~", 1000.0, 1e-6))
	})

	It("should reject a speed at the signal limit", func() {
		p := experiments.DefaultDilationParams()
		p.Speed = 1.0

		_, err := experiments.RunDilation(p, nil)
		Expect(err).To(HaveOccurred())
	})

	It("should record the clock history", func() {
		dir, err := os.MkdirTemp("", "dhcn-test")
		Expect(err).ToNot(HaveOccurred())
		defer os.RemoveAll(dir)

		rec := recording.NewRecorder(dir + "/dilation")
		defer rec.Close()

		_, err = experiments.RunDilation(
			experiments.DefaultDilationParams(), rec)
		Expect(err).ToNot(HaveOccurred())

		reader, err := recording.OpenReader(dir + "/dilation")
		Expect(err).ToNot(HaveOccurred())
		defer reader.Close()

		points, err := reader.ReadXY(
			"clock_history", "GlobalTime", "TravelerTicks")
		Expect(err).ToNot(HaveOccurred())
		Expect(points).To(HaveLen(1000))

		last := points[len(points)-1]
		Expect(last[0]).To(BeNumerically("~", 10.0, 1e-9))
		Expect(last[1]).To(BeNumerically("~", 600.0, 1e-6))
	})
})

var _ = Describe("RunInertia", func() {
	It("should approach but never reach the signal speed", func() {
		res, err := experiments.RunInertia(
			experiments.DefaultInertiaParams(), nil)

		Expect(err).ToNot(HaveOccurred())
		Expect(res.FinalSpeed).To(BeNumerically("<", 1.0))
		Expect(res.FinalSpeed).To(BeNumerically(">", 0.9))
		Expect(res.FinalInertia).To(BeNumerically(">", 10.0))
	})

	It("should reject an invalid thrust", func() {
		p := experiments.DefaultInertiaParams()
		p.Force = 0

		_, err := experiments.RunInertia(p, nil)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("RunRotation", func() {
	It("should recover a flat rotation curve from the observations", func() {
		res, err := experiments.RunRotation(
			experiments.DefaultRotationParams(), nil)

		Expect(err).ToNot(HaveOccurred())
		Expect(res.FittedAlpha).To(BeNumerically("~", 2.0, 1.5))
		Expect(res.OuterCorrected).To(
			BeNumerically(">", res.OuterNewtonian))
	})

	It("should recover the exact coupling without noise", func() {
		p := experiments.DefaultRotationParams()
		p.ObsNoise = 0

		res, err := experiments.RunRotation(p, nil)

		Expect(err).ToNot(HaveOccurred())
		Expect(res.FittedAlpha).To(BeNumerically("~", 2.0, 1e-9))
		Expect(res.AsymptoticVelocity).To(
			BeNumerically("~", 1.4142135, 1e-6))
	})

	It("should reject an inverted radius range", func() {
		p := experiments.DefaultRotationParams()
		p.RMin, p.RMax = 10, 1

		_, err := experiments.RunRotation(p, nil)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("RunSlit", func() {
	It("should report the 2.0 constructive ratio", func() {
		res, err := experiments.RunSlit(quantum.DefaultGeometry(), nil)

		Expect(err).ToNot(HaveOccurred())
		Expect(res.Ratio).To(BeNumerically("~", 2.0, 1e-3))
	})
})

var _ = Describe("RunExpansion", func() {
	It("should find the cosmic jerk", func() {
		res, err := experiments.RunExpansion(cosmology.DefaultParams(), nil)

		Expect(err).ToNot(HaveOccurred())
		Expect(res.JerkFound).To(BeTrue())
		Expect(res.JerkStep).To(BeNumerically(">", 0))
		Expect(res.FinalSize).To(BeNumerically(">", 50.0))
	})
})

var _ = Describe("RunCrystal", func() {
	It("should evolve the lattice without growing links", func() {
		res, err := experiments.RunCrystal(causalgraph.DefaultParams(), nil)

		Expect(err).ToNot(HaveOccurred())
		Expect(res.FinalEdges).To(BeNumerically("<=", res.InitialEdges))
		Expect(res.FinalOrder).To(BeNumerically(">=", 0))
		Expect(res.FinalOrder).To(BeNumerically("<=", 1))
	})
})
