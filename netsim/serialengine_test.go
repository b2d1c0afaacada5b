package netsim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type recordingHandler struct {
	times []VTime
}

func (h *recordingHandler) Handle(e Event) error {
	h.times = append(h.times, e.Time())
	return nil
}

type countingEndHandler struct {
	called int
	at     VTime
}

func (h *countingEndHandler) Handle(now VTime) {
	h.called++
	h.at = now
}

type recordingHook struct {
	positions []*HookPos
}

func (h *recordingHook) Func(ctx HookCtx) {
	h.positions = append(h.positions, ctx.Pos)
}

var _ = Describe("SerialEngine", func() {
	var (
		engine  *SerialEngine
		handler *recordingHandler
	)

	BeforeEach(func() {
		engine = NewSerialEngine()
		handler = &recordingHandler{}
	})

	It("should deliver events in time order", func() {
		for _, t := range []VTime{3, 1, 2, 5, 4} {
			engine.Schedule(MakeTickEvent(handler, t))
		}

		Expect(engine.Run()).To(Succeed())

		Expect(handler.times).To(Equal([]VTime{1, 2, 3, 4, 5}))
		Expect(engine.CurrentTime()).To(BeNumerically("==", 5))
	})

	It("should panic when scheduling into the past", func() {
		engine.Schedule(MakeTickEvent(handler, 2))
		Expect(engine.Run()).To(Succeed())

		Expect(func() {
			engine.Schedule(MakeTickEvent(handler, 1))
		}).To(Panic())
	})

	It("should call run end handlers when finished", func() {
		end := &countingEndHandler{}
		engine.RegisterRunEndHandler(end)

		engine.Schedule(MakeTickEvent(handler, 7))
		Expect(engine.Run()).To(Succeed())
		engine.Finished()

		Expect(end.called).To(Equal(1))
		Expect(end.at).To(BeNumerically("==", 7))
	})

	It("should invoke hooks around each event", func() {
		hook := &recordingHook{}
		engine.AcceptHook(hook)

		engine.Schedule(MakeTickEvent(handler, 1))
		Expect(engine.Run()).To(Succeed())

		Expect(hook.positions).To(Equal([]*HookPos{
			HookPosBeforeEvent,
			HookPosAfterEvent,
		}))
	})
})
