package netsim

import (
	"log"
	"reflect"
	"sync"
)

// A SerialEngine runs events one after another in time order.
type SerialEngine struct {
	HookableBase

	timeLock sync.RWMutex
	time     VTime

	queue EventQueue

	runEndHandlers []RunEndHandler
}

// NewSerialEngine creates a SerialEngine.
func NewSerialEngine() *SerialEngine {
	e := new(SerialEngine)
	e.queue = NewEventQueue()
	return e
}

// Schedule registers an event to happen in the future.
func (e *SerialEngine) Schedule(evt Event) {
	now := e.readNow()
	if evt.Time() < now {
		log.Panic("scheduling an event earlier than current time")
	}

	e.queue.Push(evt)
}

func (e *SerialEngine) readNow() VTime {
	e.timeLock.RLock()
	t := e.time
	e.timeLock.RUnlock()
	return t
}

func (e *SerialEngine) writeNow(t VTime) {
	e.timeLock.Lock()
	e.time = t
	e.timeLock.Unlock()
}

// Run processes all the events scheduled in the SerialEngine.
func (e *SerialEngine) Run() error {
	for {
		if e.queue.Len() == 0 {
			return nil
		}

		evt := e.queue.Pop()
		now := e.readNow()
		if evt.Time() < now {
			log.Panicf(
				"cannot run event in the past, evt %s @ %.10f, now %.10f",
				reflect.TypeOf(evt), evt.Time(), now,
			)
		}
		e.writeNow(evt.Time())

		hookCtx := HookCtx{
			Domain: e,
			Pos:    HookPosBeforeEvent,
			Item:   evt,
		}
		e.InvokeHook(hookCtx)

		handler := evt.Handler()
		err := handler.Handle(evt)
		if err != nil {
			return err
		}

		hookCtx.Pos = HookPosAfterEvent
		e.InvokeHook(hookCtx)
	}
}

// CurrentTime returns the time of the event that is currently processed.
func (e *SerialEngine) CurrentTime() VTime {
	return e.readNow()
}

// RegisterRunEndHandler registers a handler to be called after the run.
func (e *SerialEngine) RegisterRunEndHandler(handler RunEndHandler) {
	e.runEndHandlers = append(e.runEndHandlers, handler)
}

// Finished calls all the registered RunEndHandlers. It should be called
// after Run returns.
func (e *SerialEngine) Finished() {
	now := e.readNow()
	for _, h := range e.runEndHandlers {
		h.Handle(now)
	}
}
