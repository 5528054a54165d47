package sim

import (
	"time"

	"liftsim/src/config"
	"liftsim/src/types"
)

// Elevator is a simulated car driven by tick countdowns: a per-floor travel
// countdown while moving and a door countdown while stopped. It satisfies
// dispatch.ElevatorHandle; the policy mutates it only through GoToFloor and
// GoToFloorFirst.
type Elevator struct {
	id           int
	floor        int
	destinations []int
	travelLeft   time.Duration
	doorLeft     time.Duration
}

func NewElevator(id, floor int) *Elevator {
	return &Elevator{id: id, floor: floor}
}

func (e *Elevator) ID() int {
	return e.id
}

func (e *Elevator) CurrentFloor() int {
	return e.floor
}

func (e *Elevator) Destinations() []int {
	out := make([]int, len(e.destinations))
	copy(out, e.destinations)
	return out
}

func (e *Elevator) DestinationDirection() types.Direction {
	if len(e.destinations) == 0 {
		return types.DirNone
	}
	return types.DirectionBetween(e.floor, e.destinations[0])
}

func (e *Elevator) GoToFloor(floor int) {
	e.destinations = append(e.destinations, floor)
}

func (e *Elevator) GoToFloorFirst(floor int) {
	e.destinations = append([]int{floor}, e.destinations...)
}

// Snapshot copies the observable state for wait projections.
func (e *Elevator) Snapshot() types.ElevSnapshot {
	return types.ElevSnapshot{
		Floor:        e.floor,
		Dir:          e.DestinationDirection(),
		Destinations: e.Destinations(),
	}
}

// DoorOpen reports whether the car is currently boarding.
func (e *Elevator) DoorOpen() bool {
	return e.doorLeft > 0
}

// step advances the car by dt. At most one floor is crossed per call; the
// world's tick interval is far below the per-floor travel time.
func (e *Elevator) step(dt time.Duration, emit func(ev any)) {
	if e.doorLeft > 0 {
		e.doorLeft -= dt
		if e.doorLeft > 0 {
			return
		}
		e.doorLeft = 0
		if len(e.destinations) == 0 {
			emit(idleEvent{Elevator: e})
		}
		return
	}

	if len(e.destinations) == 0 {
		return
	}

	head := e.destinations[0]
	if head == e.floor {
		e.arrive(emit)
		return
	}

	if e.travelLeft <= 0 {
		e.travelLeft = config.TravelDuration
	}
	e.travelLeft -= dt
	if e.travelLeft > 0 {
		return
	}
	e.travelLeft = 0

	if head > e.floor {
		e.floor++
	} else {
		e.floor--
	}
	if e.floor == e.destinations[0] {
		e.arrive(emit)
		return
	}
	emit(passingFloorEvent{
		Elevator: e,
		Floor:    e.floor,
		Dir:      types.DirectionBetween(e.floor, e.destinations[0]),
	})
}

func (e *Elevator) arrive(emit func(ev any)) {
	floor := e.destinations[0]
	e.destinations = e.destinations[1:]
	e.travelLeft = 0
	e.doorLeft = config.DoorOpenDuration
	emit(stoppedAtFloorEvent{Elevator: e, Floor: floor})
}
