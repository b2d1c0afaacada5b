package dynamics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dhcnlab/dhcn/dynamics"
	"github.com/dhcnlab/dhcn/kinematics"
)

var _ = Describe("Body", func() {
	var model kinematics.Model

	BeforeEach(func() {
		var err error
		model, err = kinematics.NewModel(1.0, 100.0)
		Expect(err).ToNot(HaveOccurred())
	})

	newBody := func(cfg dynamics.Config) *dynamics.Body {
		body, err := dynamics.NewBody(cfg, model)
		Expect(err).ToNot(HaveOccurred())
		return body
	}

	It("should reject invalid configurations", func() {
		_, err := dynamics.NewBody(
			dynamics.Config{RestMass: 1, Force: 0.5, Dt: 0}, model)
		Expect(err).To(HaveOccurred())

		_, err = dynamics.NewBody(
			dynamics.Config{RestMass: 1, Force: 0, Dt: 0.01}, model)
		Expect(err).To(HaveOccurred())

		_, err = dynamics.NewBody(
			dynamics.Config{RestMass: -1, Force: 0.5, Dt: 0.01}, model)
		Expect(err).To(HaveOccurred())
	})

	It("should never reach the maximum signal speed", func() {
		body := newBody(dynamics.Config{RestMass: 1, Force: 0.5, Dt: 0.01})

		for i := 0; i < 200000; i++ {
			res := body.Step()
			Expect(res.Speed).To(BeNumerically("<", 1.0))
		}
	})

	It("should hold the speed limit under a very large thrust", func() {
		body := newBody(dynamics.Config{RestMass: 1, Force: 1e6, Dt: 0.1})

		for i := 0; i < 10000; i++ {
			res := body.Step()
			Expect(res.Speed).To(BeNumerically("<", 1.0))
		}
	})

	It("should accelerate monotonically toward the limit", func() {
		body := newBody(dynamics.Config{RestMass: 1, Force: 0.5, Dt: 0.01})

		prev := 0.0
		for i := 0; i < 5000; i++ {
			res := body.Step()
			Expect(res.Speed).To(BeNumerically(">=", prev))
			prev = res.Speed
		}
	})

	It("should match the Newtonian rate at low speed", func() {
		body := newBody(dynamics.Config{RestMass: 1, Force: 0.5, Dt: 1e-4})

		res := body.Step()

		// a = F/m while v << c.
		Expect(res.Acceleration).To(BeNumerically("~", 0.5, 1e-4))
		Expect(res.EffectiveInertia).To(BeNumerically("~", 1.0, 1e-3))
	})

	It("should grow the effective inertia as speed builds up", func() {
		body := newBody(dynamics.Config{RestMass: 1, Force: 0.5, Dt: 0.01})

		var early, late dynamics.StepResult
		for i := 0; i < 100; i++ {
			early = body.Step()
		}
		for i := 0; i < 10000; i++ {
			late = body.Step()
		}

		Expect(late.EffectiveInertia).To(
			BeNumerically(">", 10*early.EffectiveInertia))
	})

	It("should tick the internal clock slower than a resting clock", func() {
		body := newBody(dynamics.Config{RestMass: 1, Force: 0.5, Dt: 0.01})

		steps := 10000
		for i := 0; i < steps; i++ {
			body.Step()
		}

		restingTicks := 100.0 * 0.01 * float64(steps)
		Expect(body.ProperTicks()).To(BeNumerically("<", restingTicks))
		Expect(body.ProperTicks()).To(BeNumerically(">", 0))
	})
})
