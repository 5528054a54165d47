package sim

// Floor is a landing of the simulated building.
type Floor struct {
	num int
}

func NewFloor(num int) *Floor {
	return &Floor{num: num}
}

func (f *Floor) FloorNum() int {
	return f.num
}
