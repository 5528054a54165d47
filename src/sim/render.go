package sim

import (
	"fmt"
	"strings"
)

// Render draws the building as a text panel, top floor first: pending call
// markers on the left, one column per elevator. A car with its door open is
// shown in parentheses.
func (w *World) Render() string {
	pendingUp := make(map[int]bool)
	for _, f := range w.policy.PendingUp() {
		pendingUp[f] = true
	}
	pendingDown := make(map[int]bool)
	for _, f := range w.policy.PendingDown() {
		pendingDown[f] = true
	}

	var b strings.Builder
	for floor := w.cfg.NumFloors - 1; floor >= 0; floor-- {
		fmt.Fprintf(&b, "%2d ", floor)

		mark := func(set map[int]bool, symbol string) {
			if set[floor] {
				b.WriteString(symbol)
			} else {
				b.WriteString(" ")
			}
		}
		mark(pendingUp, "^")
		mark(pendingDown, "v")
		b.WriteString(" |")

		for _, elev := range w.elevators {
			switch {
			case elev.CurrentFloor() != floor:
				b.WriteString("     ")
			case elev.DoorOpen():
				fmt.Fprintf(&b, " (%d) ", elev.ID())
			default:
				fmt.Fprintf(&b, " [%d] ", elev.ID())
			}
		}
		b.WriteString("|\n")
	}
	return b.String()
}
