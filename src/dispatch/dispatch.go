package dispatch

import (
	"log/slog"
	"time"

	"liftsim/src/types"
)

// ElevatorHandle is the capability contract the policy requires from a host
// elevator. Any simulation satisfying it can be driven by the policy.
type ElevatorHandle interface {
	ID() int
	CurrentFloor() int
	// Destinations returns a copy of the destination queue, next stop first.
	Destinations() []int
	// DestinationDirection is the travel direction toward the next stop, or
	// DirNone when the destination queue is empty.
	DestinationDirection() types.Direction
	// GoToFloor appends a stop to the destination queue.
	GoToFloor(floor int)
	// GoToFloorFirst inserts a stop at the head of the destination queue,
	// making it the next stop.
	GoToFloorFirst(floor int)
}

// FloorHandle exposes a floor landing of the host building.
type FloorHandle interface {
	FloorNum() int
}

// Policy assigns hall calls to elevators: nearest eligible elevator on press,
// FIFO queue drain on idle, and en-route pickups while passing a floor with a
// matching pending call. The policy owns only the two pending-call queues;
// elevator state is read through the handles on every event, never cached.
type Policy struct {
	elevators []ElevatorHandle
	floors    []FloorHandle
	up        requestQueue
	down      requestQueue
}

// New builds a policy over the host's elevator and floor handles. The handle
// slices are fixed for the life of the run.
func New(elevators []ElevatorHandle, floors []FloorHandle) *Policy {
	return &Policy{elevators: elevators, floors: floors}
}

// FloorButtonPressed records a hall call and immediately tries to assign an
// elevator to it. A repeated press for a pending call is a no-op.
func (p *Policy) FloorButtonPressed(floor int, dir types.Direction) {
	queue := p.queueFor(dir)
	if queue == nil {
		return
	}
	if !queue.Push(floor) {
		slog.Debug("Hall call already pending", "floor", floor, "dir", dir)
		return
	}
	slog.Debug("Hall call recorded", "floor", floor, "dir", dir)
	if p.assignElevator(floor, dir) {
		queue.Remove(floor)
	}
}

// assignElevator searches for the nearest eligible elevator and commands it to
// the call floor. An elevator is eligible if it is idle or already travelling
// in the call direction. Ties go to the first elevator in registration order.
// With no eligible elevator the call stays queued for a later idle drain or
// en-route pickup.
func (p *Policy) assignElevator(floor int, dir types.Direction) bool {
	var best ElevatorHandle
	bestDist := 0
	for _, elev := range p.elevators {
		elevDir := elev.DestinationDirection()
		if elevDir != types.DirNone && elevDir != dir {
			continue
		}
		dist := abs(elev.CurrentFloor() - floor)
		if best == nil || dist < bestDist {
			best = elev
			bestDist = dist
		}
	}
	if best == nil {
		slog.Debug("No eligible elevator, call stays queued", "floor", floor, "dir", dir)
		return false
	}
	slog.Debug("Hall call assigned", "floor", floor, "dir", dir, "elevator", best.ID(), "distance", bestDist)
	best.GoToFloor(floor)
	return true
}

// ElevatorIdle drains the oldest pending call into the idle elevator, trying
// the up queue before the down queue. With both queues empty the elevator
// stays where it is.
func (p *Policy) ElevatorIdle(e ElevatorHandle) {
	if floor, ok := p.up.PopOldest(); ok {
		slog.Debug("Idle elevator takes up call", "elevator", e.ID(), "floor", floor)
		e.GoToFloor(floor)
		return
	}
	if floor, ok := p.down.PopOldest(); ok {
		slog.Debug("Idle elevator takes down call", "elevator", e.ID(), "floor", floor)
		e.GoToFloor(floor)
		return
	}
}

// ElevatorFloorButtonPressed handles an in-car destination press. The floor is
// commanded unconditionally; range and duplicate checks are left to the host.
func (p *Policy) ElevatorFloorButtonPressed(e ElevatorHandle, floor int) {
	slog.Debug("Car call", "elevator", e.ID(), "floor", floor)
	e.GoToFloor(floor)
}

// ElevatorPassingFloor picks up a pending call en route: if the passed floor
// has a call in the elevator's travel direction, the call is consumed and the
// floor becomes the elevator's next stop.
func (p *Policy) ElevatorPassingFloor(e ElevatorHandle, floor int, dir types.Direction) {
	queue := p.queueFor(dir)
	if queue == nil || !queue.Remove(floor) {
		return
	}
	slog.Debug("En-route pickup", "elevator", e.ID(), "floor", floor, "dir", dir)
	e.GoToFloorFirst(floor)
}

// ElevatorStoppedAtFloor clears the stopped floor from both queues. A stop
// satisfies whoever is waiting there regardless of which path triggered it,
// e.g. a car call that coincides with a pending hall call.
func (p *Policy) ElevatorStoppedAtFloor(e ElevatorHandle, floor int) {
	upCleared := p.up.Remove(floor)
	downCleared := p.down.Remove(floor)
	if upCleared || downCleared {
		slog.Debug("Stop cleared pending calls", "elevator", e.ID(), "floor", floor,
			"up", upCleared, "down", downCleared)
	}
}

// Update is the periodic tick callback of the host contract. The policy acts
// only on events, so there is nothing to do here.
func (p *Policy) Update(dt time.Duration) {}

// PendingUp returns the floors with pending up calls, oldest first.
func (p *Policy) PendingUp() []int {
	return p.up.Snapshot()
}

// PendingDown returns the floors with pending down calls, oldest first.
func (p *Policy) PendingDown() []int {
	return p.down.Snapshot()
}

func (p *Policy) queueFor(dir types.Direction) *requestQueue {
	switch dir {
	case types.DirUp:
		return &p.up
	case types.DirDown:
		return &p.down
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
