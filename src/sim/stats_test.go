package sim

import (
	"strings"
	"testing"
	"time"

	"liftsim/src/types"
)

func TestStatsRepeatedPressKeepsOriginalClock(t *testing.T) {
	s := NewStats()
	call := types.HallCall{Floor: 2, Dir: types.DirUp}
	s.CallPlaced(call, 0, time.Second)
	s.CallPlaced(call, 10*time.Second, time.Second)

	served := s.CallsServed(2, 30*time.Second)
	if len(served) != 1 {
		t.Fatalf("CallsServed() = %v, want one call", served)
	}
	if s.waits[0] != 30*time.Second {
		t.Errorf("wait = %v, want 30s measured from the first press", s.waits[0])
	}
}

func TestStatsServesBothDirectionsOnStop(t *testing.T) {
	s := NewStats()
	s.CallPlaced(types.HallCall{Floor: 4, Dir: types.DirUp}, 0, 0)
	s.CallPlaced(types.HallCall{Floor: 4, Dir: types.DirDown}, 0, 0)
	s.CallPlaced(types.HallCall{Floor: 2, Dir: types.DirUp}, 0, 0)

	served := s.CallsServed(4, time.Minute)
	if len(served) != 2 {
		t.Fatalf("CallsServed() = %v, want both directions at floor 4", served)
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, want the floor 2 call still open", s.Pending())
	}
	if s.CallsServed(4, time.Minute) != nil {
		t.Error("second stop at the same floor should serve nothing")
	}
}

func TestStatsSummary(t *testing.T) {
	s := NewStats()
	if got := s.Summary(); !strings.Contains(got, "no calls served") {
		t.Errorf("empty Summary() = %q", got)
	}

	s.CallPlaced(types.HallCall{Floor: 1, Dir: types.DirUp}, 0, 4*time.Second)
	s.CallsServed(1, 6*time.Second)
	got := s.Summary()
	for _, want := range []string{"served 1", "avg wait 6s", "avg projected 4s"} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary() = %q, want it to contain %q", got, want)
		}
	}
}
