package netsim

import (
	"log"
	"math"
)

// VTime is the global network time, in seconds.
type VTime float64

// Rate is the number of processing operations per second that a node
// performs.
type Rate float64

// Units of processing rate.
const (
	Hz  Rate = 1
	KHz Rate = 1e3
	MHz Rate = 1e6
)

// Period returns the time between two consecutive operations.
func (r Rate) Period() VTime {
	if r <= 0 {
		log.Panic("processing rate must be positive")
	}
	return VTime(1.0 / r)
}

// Cycle converts a time to the number of operations performed since time 0.
func (r Rate) Cycle(t VTime) uint64 {
	return uint64(math.Round(float64(t) * float64(r)))
}

// ThisTick returns the operation boundary at or immediately before the end
// of the current operation.
//
//	          Input
//	          (          ]
//	|---------|----------|----------|----->
//	                     |
//	                     Output
func (r Rate) ThisTick(now VTime) VTime {
	if math.IsNaN(float64(now)) {
		log.Panic("invalid time")
	}
	count := math.Ceil(math.Round(float64(now)*10*float64(r)) / 10)
	return VTime(count / float64(r))
}

// NextTick returns the operation boundary right after the given time.
//
//	          Input
//	          [          )
//	|---------|----------|----------|----->
//	                     |
//	                     Output
func (r Rate) NextTick(now VTime) VTime {
	if math.IsNaN(float64(now)) {
		log.Panic("invalid time")
	}
	count := math.Floor(math.Round(float64(now)*10*float64(r)) / 10)
	return VTime((count + 1) / float64(r))
}

// NCyclesLater returns the time after n operations, aligned to an operation
// boundary.
func (r Rate) NCyclesLater(n int, now VTime) VTime {
	if math.IsNaN(float64(now)) {
		log.Panic("invalid time")
	}
	return r.ThisTick(now + VTime(Rate(n)/r))
}
