package netsim

// TimeTeller can be used to get the current global network time.
type TimeTeller interface {
	CurrentTime() VTime
}

// EventScheduler can be used to schedule future events.
type EventScheduler interface {
	Schedule(e Event)
}

// A RunEndHandler is called after the last event has been processed.
type RunEndHandler interface {
	Handle(now VTime)
}

// An Engine runs a discrete event simulation to completion.
type Engine interface {
	Hookable
	TimeTeller
	EventScheduler

	// Run processes all the events until none remain.
	Run() error

	// RegisterRunEndHandler registers a handler that performs some action
	// after the run is finished.
	RegisterRunEndHandler(handler RunEndHandler)

	// Finished invokes all the registered RunEndHandlers.
	Finished()
}
