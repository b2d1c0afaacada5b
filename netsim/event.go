// Package netsim provides the discrete event kernel that drives the
// time-stepped DHCN experiments. The kernel keeps a single global clock and
// delivers events to their handlers in time order.
package netsim

import "github.com/rs/xid"

// An Event is something that happens at a point of global network time.
type Event interface {
	// Time returns the time at which the event happens.
	Time() VTime

	// Handler returns the handler that processes the event.
	Handler() Handler
}

// A Handler processes events that were scheduled for it.
type Handler interface {
	Handle(e Event) error
}

// EventBase provides the fields and getters common to all events.
type EventBase struct {
	ID      string
	time    VTime
	handler Handler
}

// NewEventBase creates a new EventBase.
func NewEventBase(t VTime, handler Handler) *EventBase {
	e := new(EventBase)
	e.ID = xid.New().String()
	e.time = t
	e.handler = handler
	return e
}

// Time returns the time at which the event happens.
func (e EventBase) Time() VTime {
	return e.time
}

// Handler returns the handler that processes the event.
func (e EventBase) Handler() Handler {
	return e.handler
}
