package sim

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"liftsim/src/config"
	"liftsim/src/dispatch"
	"liftsim/src/types"
	"liftsim/src/utils"
)

// World owns the simulated building and delivers its events to the dispatch
// policy. All events pass through a single FIFO queue drained by one logical
// thread, so policy handlers run synchronously and never interleave.
type World struct {
	cfg         config.Config
	elevators   []*Elevator
	floors      []*Floor
	policy      *dispatch.Policy
	traffic     *Traffic
	stats       *Stats
	rng         *rand.Rand
	queue       []any
	clock       time.Duration
	renderEvery time.Duration
}

// SetRenderInterval makes Run redraw the building panel periodically.
// Zero disables rendering.
func (w *World) SetRenderInterval(d time.Duration) {
	w.renderEvery = d
}

// NewWorld builds the building, the policy and the bookkeeping for one run.
// All elevators start at the bottom floor and announce themselves idle so any
// call placed before the first tick can be drained.
func NewWorld(cfg config.Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := &World{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		stats: NewStats(),
	}

	handles := make([]dispatch.ElevatorHandle, cfg.NumElevators)
	for i := 0; i < cfg.NumElevators; i++ {
		elev := NewElevator(i, 0)
		w.elevators = append(w.elevators, elev)
		handles[i] = elev
	}

	floorHandles := make([]dispatch.FloorHandle, cfg.NumFloors)
	for i := 0; i < cfg.NumFloors; i++ {
		floor := NewFloor(i)
		w.floors = append(w.floors, floor)
		floorHandles[i] = floor
	}

	w.policy = dispatch.New(handles, floorHandles)

	if cfg.TrafficPerMinute > 0 {
		w.traffic = NewTraffic(w.rng, cfg.NumFloors, cfg.TrafficPerMinute)
	}

	for _, elev := range w.elevators {
		w.enqueue(idleEvent{Elevator: elev})
	}
	return w, nil
}

// PressFloorButton places a hall call, as a waiting passenger would.
func (w *World) PressFloorButton(floor int, dir types.Direction) {
	if floor < 0 || floor >= w.cfg.NumFloors || dir == types.DirNone {
		slog.Warn("Ignoring invalid hall call", "floor", floor, "dir", dir)
		return
	}
	w.enqueue(hallButtonEvent{Floor: floor, Dir: dir})
	w.drain()
}

// PressCarButton places an in-car destination press on one elevator.
func (w *World) PressCarButton(elevatorID, floor int) {
	if elevatorID < 0 || elevatorID >= len(w.elevators) {
		return
	}
	w.enqueue(carButtonEvent{Elevator: w.elevators[elevatorID], Floor: floor})
	w.drain()
}

// Step advances simulated time by dt: every elevator moves, then the events
// the movement produced are delivered in order.
func (w *World) Step(dt time.Duration) {
	w.clock += dt
	for _, elev := range w.elevators {
		elev.step(dt, w.enqueue)
	}
	w.drain()
	w.policy.Update(dt)
}

// Run drives the world off a real-time ticker until ctx is cancelled.
// External hall calls arrive on calls; with traffic configured, generated
// calls arrive on their own timer.
func (w *World) Run(ctx context.Context, calls <-chan types.HallCall) {
	ticker := time.NewTicker(config.TickInterval)
	defer ticker.Stop()

	var trafficCh <-chan time.Time
	var trafficTimer *time.Timer
	if w.traffic != nil {
		trafficTimer = time.NewTimer(w.traffic.NextArrival())
		defer trafficTimer.Stop()
		trafficCh = trafficTimer.C
	}

	var renderCh <-chan time.Time
	if w.renderEvery > 0 {
		renderTicker := time.NewTicker(w.renderEvery)
		defer renderTicker.Stop()
		renderCh = renderTicker.C
	}

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case call := <-calls:
			w.PressFloorButton(call.Floor, call.Dir)
		case <-renderCh:
			fmt.Print("\033[2J\033[H")
			fmt.Print(w.Render())
		case <-trafficCh:
			call := w.traffic.Call()
			slog.Debug("Generated hall call", "call", utils.FormatCall(call))
			w.PressFloorButton(call.Floor, call.Dir)
			trafficTimer.Reset(w.traffic.NextArrival())
		case now := <-ticker.C:
			w.Step(now.Sub(last))
			last = now
		}
	}
}

// Clock returns the accumulated simulated time.
func (w *World) Clock() time.Duration {
	return w.clock
}

// Stats exposes the run's wait-time bookkeeping.
func (w *World) Stats() *Stats {
	return w.stats
}

// Policy exposes the registered dispatch policy.
func (w *World) Policy() *dispatch.Policy {
	return w.policy
}

func (w *World) enqueue(ev any) {
	w.queue = append(w.queue, ev)
}

func (w *World) drain() {
	for len(w.queue) > 0 {
		ev := w.queue[0]
		w.queue = w.queue[1:]
		w.handle(ev)
	}
}

func (w *World) handle(ev any) {
	switch ev := ev.(type) {
	case hallButtonEvent:
		call := types.HallCall{Floor: ev.Floor, Dir: ev.Dir}
		w.stats.CallPlaced(call, w.clock, w.projectWait(ev.Floor))
		w.policy.FloorButtonPressed(ev.Floor, ev.Dir)
	case carButtonEvent:
		w.policy.ElevatorFloorButtonPressed(ev.Elevator, ev.Floor)
	case idleEvent:
		w.policy.ElevatorIdle(ev.Elevator)
	case passingFloorEvent:
		w.policy.ElevatorPassingFloor(ev.Elevator, ev.Floor, ev.Dir)
	case stoppedAtFloorEvent:
		w.policy.ElevatorStoppedAtFloor(ev.Elevator, ev.Floor)
		served := w.stats.CallsServed(ev.Floor, w.clock)
		// Boarding passengers pick a destination in their call direction.
		if w.traffic != nil {
			for _, call := range served {
				w.enqueue(carButtonEvent{
					Elevator: ev.Elevator,
					Floor:    w.traffic.Destination(call),
				})
			}
		}
	}
}

// projectWait is the best-case wait projection over all elevators, recorded
// alongside the actual wait for the run summary.
func (w *World) projectWait(floor int) time.Duration {
	var best time.Duration
	for i, elev := range w.elevators {
		projected := dispatch.EstimateServeTime(elev.Snapshot(), floor)
		if i == 0 || projected < best {
			best = projected
		}
	}
	return best
}
