package dispatch

import (
	"time"

	"liftsim/src/config"
	"liftsim/src/types"

	"github.com/tiendc/go-deepcopy"
)

// EstimateServeTime projects how long an elevator in the given state would
// take to reach a prospective call floor, by walking a copy of the snapshot
// through its remaining stops:
//   - travel time is charged per floor travelled
//   - door time is charged per intermediate stop
//   - passing the call floor on the way to a stop counts as arrival
//
// The projection is advisory only; assignment itself is by plain distance.
func EstimateServeTime(snapshot types.ElevSnapshot, floor int) time.Duration {
	sim := new(types.ElevSnapshot)
	if err := deepcopy.Copy(sim, &snapshot); err != nil {
		panic(err)
	}

	var cost time.Duration
	for _, dest := range sim.Destinations {
		if dest == floor || between(floor, sim.Floor, dest) {
			return cost + travelTime(sim.Floor, floor)
		}
		cost += travelTime(sim.Floor, dest) + config.DoorOpenDuration
		sim.Floor = dest
	}
	return cost + travelTime(sim.Floor, floor)
}

func travelTime(from, to int) time.Duration {
	return time.Duration(abs(from-to)) * config.TravelDuration
}

func between(f, lo, hi int) bool {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo < f && f < hi
}
