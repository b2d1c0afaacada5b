package kinematics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dhcnlab/dhcn/kinematics"
)

var _ = Describe("Model", func() {
	var model kinematics.Model

	BeforeEach(func() {
		var err error
		model, err = kinematics.NewModel(1.0, 100.0)
		Expect(err).ToNot(HaveOccurred())
	})

	It("should reject a non-positive signal speed", func() {
		_, err := kinematics.NewModel(0, 100)
		Expect(err).To(HaveOccurred())

		_, err = kinematics.NewModel(-1, 100)
		Expect(err).To(HaveOccurred())
	})

	It("should reject a non-positive processing rate", func() {
		_, err := kinematics.NewModel(1, 0)
		Expect(err).To(HaveOccurred())
	})

	It("should conserve the total bandwidth for all speeds", func() {
		for v := 0.0; v < 1.0; v += 0.001 {
			rates, err := model.Split(v)
			Expect(err).ToNot(HaveOccurred())

			sum := rates.Temporal*rates.Temporal + rates.Spatial*rates.Spatial
			Expect(sum).To(BeNumerically("~", 100.0*100.0, 1e-9*100.0*100.0))
		}
	})

	It("should refresh at 0.6 Omega_max when moving at 0.8c", func() {
		temporal, err := model.TemporalRate(0.8)

		Expect(err).ToNot(HaveOccurred())
		Expect(temporal).To(BeNumerically("~", 60.0, 1e-6))
	})

	It("should dedicate the full budget to refresh at rest", func() {
		rates, err := model.Split(0)

		Expect(err).ToNot(HaveOccurred())
		Expect(rates.Temporal).To(BeNumerically("==", 100.0))
		Expect(rates.Spatial).To(BeNumerically("==", 0.0))
	})

	It("should strictly decrease the temporal rate with speed", func() {
		prev, err := model.TemporalRate(0)
		Expect(err).ToNot(HaveOccurred())

		for v := 0.01; v < 1.0; v += 0.01 {
			temporal, err := model.TemporalRate(v)
			Expect(err).ToNot(HaveOccurred())
			Expect(temporal).To(BeNumerically("<", prev))
			prev = temporal
		}
	})

	It("should fail at or beyond the maximum signal speed", func() {
		_, err := model.TemporalRate(1.0)
		Expect(err).To(HaveOccurred())

		_, err = model.TemporalRate(1.5)
		Expect(err).To(HaveOccurred())

		_, err = model.SpatialRate(1.0)
		Expect(err).To(HaveOccurred())
	})

	It("should fail for a negative speed", func() {
		_, err := model.TemporalRate(-0.1)
		Expect(err).To(HaveOccurred())
	})

	It("should reproduce the Lorentz factor", func() {
		gamma, err := model.Gamma(0.8)

		Expect(err).ToNot(HaveOccurred())
		Expect(gamma).To(BeNumerically("~", 1.0/0.6, 1e-9))
	})

	It("should return 0.6 in normalized units", func() {
		normalized, err := kinematics.NewModel(1, 1)
		Expect(err).ToNot(HaveOccurred())

		temporal, err := normalized.TemporalRate(0.8)
		Expect(err).ToNot(HaveOccurred())
		Expect(temporal).To(BeNumerically("~", 0.6, 1e-6))
	})
})
