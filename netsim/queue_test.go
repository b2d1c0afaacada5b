package netsim

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("EventQueue", func() {
	var q EventQueue

	BeforeEach(func() {
		q = NewEventQueue()
	})

	It("should pop events in time order", func() {
		r := rand.New(rand.NewSource(1))
		for i := 0; i < 200; i++ {
			q.Push(MakeTickEvent(nil, VTime(r.Float64())))
		}

		prev := VTime(0)
		for q.Len() > 0 {
			evt := q.Pop()
			Expect(evt.Time()).To(BeNumerically(">=", prev))
			prev = evt.Time()
		}
	})

	It("should peek without removing", func() {
		q.Push(MakeTickEvent(nil, 2))
		q.Push(MakeTickEvent(nil, 1))

		Expect(q.Peek().Time()).To(BeNumerically("==", 1))
		Expect(q.Len()).To(Equal(2))
	})
})
