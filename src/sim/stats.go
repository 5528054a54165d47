package sim

import (
	"fmt"
	"time"

	"liftsim/src/types"
)

type openCall struct {
	placed    time.Duration
	projected time.Duration
}

// Stats tracks the wait time of every hall call from press to the first stop
// at its floor, next to the projected wait computed at press time.
type Stats struct {
	open      map[types.HallCall]openCall
	waits     []time.Duration
	projected []time.Duration
}

func NewStats() *Stats {
	return &Stats{open: make(map[types.HallCall]openCall)}
}

// CallPlaced opens the wait clock for a hall call. A repeated press keeps the
// original press time.
func (s *Stats) CallPlaced(call types.HallCall, now, projected time.Duration) {
	if _, pending := s.open[call]; pending {
		return
	}
	s.open[call] = openCall{placed: now, projected: projected}
}

// CallsServed closes every open call at the stopped floor, both directions,
// and returns them so the host can model passengers boarding.
func (s *Stats) CallsServed(floor int, now time.Duration) []types.HallCall {
	var served []types.HallCall
	for _, dir := range []types.Direction{types.DirUp, types.DirDown} {
		call := types.HallCall{Floor: floor, Dir: dir}
		record, pending := s.open[call]
		if !pending {
			continue
		}
		delete(s.open, call)
		s.waits = append(s.waits, now-record.placed)
		s.projected = append(s.projected, record.projected)
		served = append(served, call)
	}
	return served
}

// Pending returns the number of calls still waiting.
func (s *Stats) Pending() int {
	return len(s.open)
}

// Served returns the number of calls answered so far.
func (s *Stats) Served() int {
	return len(s.waits)
}

// Summary formats the run totals: served and still-pending counts, average
// and worst actual wait, and the average projected wait for comparison.
func (s *Stats) Summary() string {
	if len(s.waits) == 0 {
		return fmt.Sprintf("no calls served, %d pending", len(s.open))
	}

	var total, worst, totalProjected time.Duration
	for i, wait := range s.waits {
		total += wait
		totalProjected += s.projected[i]
		if wait > worst {
			worst = wait
		}
	}
	n := time.Duration(len(s.waits))
	return fmt.Sprintf("served %d calls (%d pending) | avg wait %v | max wait %v | avg projected %v",
		len(s.waits), len(s.open),
		(total / n).Round(time.Millisecond),
		worst.Round(time.Millisecond),
		(totalProjected / n).Round(time.Millisecond))
}
