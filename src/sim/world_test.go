package sim

import (
	"testing"

	"liftsim/src/config"
	"liftsim/src/types"
)

func quietConfig() config.Config {
	cfg := config.Default()
	cfg.NumFloors = 6
	cfg.NumElevators = 2
	cfg.TrafficPerMinute = 0
	return cfg
}

// stepUntil advances the world until done reports true, bounded to keep a
// broken scenario from spinning forever.
func stepUntil(t *testing.T, w *World, maxTicks int, done func() bool) {
	t.Helper()
	for i := 0; i < maxTicks; i++ {
		if done() {
			return
		}
		w.Step(config.TickInterval)
	}
	if !done() {
		t.Fatalf("condition not reached within %d ticks", maxTicks)
	}
}

func TestWorldServesHallCall(t *testing.T) {
	w, err := NewWorld(quietConfig())
	if err != nil {
		t.Fatal(err)
	}

	w.PressFloorButton(3, types.DirUp)
	if w.Stats().Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", w.Stats().Pending())
	}
	if got := w.Policy().PendingUp(); len(got) != 0 {
		t.Errorf("PendingUp() = %v, want empty after immediate assignment", got)
	}

	stepUntil(t, w, 500, func() bool { return w.Stats().Served() == 1 })

	if w.elevators[0].CurrentFloor() != 3 {
		t.Errorf("elevator 0 at floor %d, want 3", w.elevators[0].CurrentFloor())
	}
	if w.elevators[1].CurrentFloor() != 0 {
		t.Errorf("elevator 1 at floor %d, should not have moved", w.elevators[1].CurrentFloor())
	}
}

func TestWorldQueuedCallDrainsOnIdle(t *testing.T) {
	cfg := quietConfig()
	cfg.NumElevators = 1
	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatal(err)
	}

	// Send the only elevator up, then place a down call behind it. The call
	// has no eligible elevator and must wait for the idle drain.
	w.PressCarButton(0, 5)
	stepUntil(t, w, 500, func() bool { return w.elevators[0].CurrentFloor() >= 2 })
	w.PressFloorButton(1, types.DirDown)

	if got := w.Policy().PendingDown(); len(got) != 1 {
		t.Fatalf("PendingDown() = %v, want the call queued", got)
	}

	stepUntil(t, w, 2000, func() bool { return w.Stats().Served() == 1 })
	if got := w.Policy().PendingDown(); len(got) != 0 {
		t.Errorf("PendingDown() = %v, want empty after idle drain", got)
	}
}

func TestWorldEnRoutePickup(t *testing.T) {
	cfg := quietConfig()
	cfg.NumElevators = 1
	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatal(err)
	}

	// The elevator heads up with two car stops queued. A down call placed
	// mid-travel has no eligible elevator, so it waits in the queue until the
	// elevator passes its floor on the way back down.
	w.PressCarButton(0, 5)
	w.PressCarButton(0, 1)
	stepUntil(t, w, 500, func() bool { return w.elevators[0].CurrentFloor() == 2 })
	w.PressFloorButton(3, types.DirDown)
	if got := w.Policy().PendingDown(); len(got) != 1 {
		t.Fatalf("PendingDown() = %v, want the call queued", got)
	}

	stepUntil(t, w, 2000, func() bool { return w.Stats().Served() == 1 })
	if w.elevators[0].CurrentFloor() != 3 {
		t.Errorf("elevator at floor %d, want picked up at 3 on the way down", w.elevators[0].CurrentFloor())
	}
	if got := w.elevators[0].Destinations(); len(got) != 1 || got[0] != 1 {
		t.Errorf("Destinations() = %v, want [1] still pending", got)
	}
}

func TestWorldIgnoresInvalidHallCall(t *testing.T) {
	w, err := NewWorld(quietConfig())
	if err != nil {
		t.Fatal(err)
	}
	w.PressFloorButton(-1, types.DirUp)
	w.PressFloorButton(17, types.DirDown)
	w.PressFloorButton(2, types.DirNone)
	if w.Stats().Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", w.Stats().Pending())
	}
}

func TestWorldBoardingGeneratesCarCall(t *testing.T) {
	cfg := quietConfig()
	cfg.NumElevators = 1
	cfg.TrafficPerMinute = 1 // enables boarding destinations; arrivals come from Run only
	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatal(err)
	}

	w.PressFloorButton(2, types.DirUp)
	stepUntil(t, w, 500, func() bool { return w.Stats().Served() == 1 })

	// The boarding passenger pressed an in-car destination above floor 2.
	dests := w.elevators[0].Destinations()
	if len(dests) != 1 || dests[0] <= 2 {
		t.Errorf("Destinations() = %v, want one destination above floor 2", dests)
	}
}

func TestWorldRejectsInvalidConfig(t *testing.T) {
	cfg := quietConfig()
	cfg.NumFloors = 1
	if _, err := NewWorld(cfg); err == nil {
		t.Error("NewWorld() should reject a single-floor building")
	}
}
