package sim

import (
	"math/rand"
	"time"

	"liftsim/src/types"
)

// Traffic generates passenger hall calls with exponentially distributed
// inter-arrival times. A fixed seed gives a reproducible run.
type Traffic struct {
	rng          *rand.Rand
	numFloors    int
	meanInterval time.Duration
}

func NewTraffic(rng *rand.Rand, numFloors int, callsPerMinute float64) *Traffic {
	return &Traffic{
		rng:          rng,
		numFloors:    numFloors,
		meanInterval: time.Duration(float64(time.Minute) / callsPerMinute),
	}
}

// NextArrival draws the delay until the next generated call.
func (t *Traffic) NextArrival() time.Duration {
	return time.Duration(t.rng.ExpFloat64() * float64(t.meanInterval))
}

// Call draws a hall call at a random floor. At the edge floors only the
// inward direction exists.
func (t *Traffic) Call() types.HallCall {
	floor := t.rng.Intn(t.numFloors)
	var dir types.Direction
	switch {
	case floor == 0:
		dir = types.DirUp
	case floor == t.numFloors-1:
		dir = types.DirDown
	case t.rng.Intn(2) == 0:
		dir = types.DirUp
	default:
		dir = types.DirDown
	}
	return types.HallCall{Floor: floor, Dir: dir}
}

// Destination draws an in-car destination consistent with the call direction.
// A call in an impossible direction at an edge floor maps to the edge itself.
func (t *Traffic) Destination(call types.HallCall) int {
	if call.Dir == types.DirUp {
		if call.Floor >= t.numFloors-1 {
			return t.numFloors - 1
		}
		return call.Floor + 1 + t.rng.Intn(t.numFloors-call.Floor-1)
	}
	if call.Floor <= 0 {
		return 0
	}
	return t.rng.Intn(call.Floor)
}
