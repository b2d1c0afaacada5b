package netsim

import "sync"

// TickEvent is a generic event that ticking agents use to update their
// state.
type TickEvent struct {
	EventBase
}

// MakeTickEvent creates a TickEvent.
func MakeTickEvent(handler Handler, t VTime) TickEvent {
	evt := TickEvent{}
	evt.EventBase = *NewEventBase(t, handler)
	return evt
}

// A Ticker updates its state once per operation cycle. It returns false
// when it has nothing more to do, which stops the tick chain.
type Ticker interface {
	Tick(now VTime) bool
}

// TickScheduler schedules tick events at a fixed processing rate.
type TickScheduler struct {
	lock    sync.Mutex
	handler Handler
	Engine  Engine
	Rate    Rate

	nextTickTime VTime
}

// NewTickScheduler creates a TickScheduler.
func NewTickScheduler(handler Handler, engine Engine, rate Rate) *TickScheduler {
	s := new(TickScheduler)
	s.handler = handler
	s.Engine = engine
	s.Rate = rate
	s.nextTickTime = -1
	return s
}

// TickNow schedules a tick event at the current time.
func (s *TickScheduler) TickNow() {
	s.lock.Lock()
	now := s.Engine.CurrentTime()

	if s.nextTickTime >= now {
		s.lock.Unlock()
		return
	}

	s.nextTickTime = s.Rate.ThisTick(now)
	tick := MakeTickEvent(s.handler, s.nextTickTime)
	s.Engine.Schedule(tick)
	s.lock.Unlock()
}

// TickLater schedules a tick event at the cycle after the current time.
func (s *TickScheduler) TickLater() {
	s.lock.Lock()
	t := s.Rate.NextTick(s.Engine.CurrentTime())

	if s.nextTickTime >= t {
		s.lock.Unlock()
		return
	}

	s.nextTickTime = t
	tick := MakeTickEvent(s.handler, t)
	s.Engine.Schedule(tick)
	s.lock.Unlock()
}

// A TickingAgent is an entity of the causal network that updates its state
// from cycle to cycle. Implementers only need to provide a Tick function.
type TickingAgent struct {
	*TickScheduler

	name   string
	ticker Ticker
}

// NewTickingAgent creates a TickingAgent.
func NewTickingAgent(
	name string,
	engine Engine,
	rate Rate,
	ticker Ticker,
) *TickingAgent {
	a := new(TickingAgent)
	a.TickScheduler = NewTickScheduler(a, engine, rate)
	a.name = name
	a.ticker = ticker
	return a
}

// Name returns the name of the agent.
func (a *TickingAgent) Name() string {
	return a.name
}

// Handle triggers the tick function of the agent and reschedules the next
// tick while the agent keeps making progress.
func (a *TickingAgent) Handle(e Event) error {
	madeProgress := a.ticker.Tick(e.Time())
	if madeProgress {
		a.TickLater()
	}

	return nil
}
