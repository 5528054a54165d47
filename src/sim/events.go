package sim

import "liftsim/src/types"

// Simulation events, delivered to the policy one at a time through the
// world's FIFO queue.

type hallButtonEvent struct {
	Floor int
	Dir   types.Direction
}

type carButtonEvent struct {
	Elevator *Elevator
	Floor    int
}

type idleEvent struct {
	Elevator *Elevator
}

type passingFloorEvent struct {
	Elevator *Elevator
	Floor    int
	Dir      types.Direction
}

type stoppedAtFloorEvent struct {
	Elevator *Elevator
	Floor    int
}
