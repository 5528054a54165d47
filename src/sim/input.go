package sim

import (
	"log/slog"

	"liftsim/src/types"

	"github.com/eiannone/keyboard"
)

// ListenKeyboard turns key presses into hall calls for interactive runs:
// a digit selects a floor, then 'u' or 'd' places the call. 'q' or Ctrl-C
// ends the run via stop. Blocks until quit or a keyboard error.
func ListenKeyboard(numFloors int, calls chan<- types.HallCall, stop func()) {
	selected := -1
	for {
		char, key, err := keyboard.GetSingleKey()
		if err != nil {
			slog.Error("Keyboard read failed", "err", err)
			stop()
			return
		}
		switch {
		case key == keyboard.KeyCtrlC || char == 'q':
			stop()
			return
		case char >= '0' && char <= '9':
			floor := int(char - '0')
			if floor >= numFloors {
				slog.Warn("No such floor", "floor", floor, "numFloors", numFloors)
				continue
			}
			selected = floor
		case char == 'u' && selected >= 0:
			calls <- types.HallCall{Floor: selected, Dir: types.DirUp}
		case char == 'd' && selected >= 0:
			calls <- types.HallCall{Floor: selected, Dir: types.DirDown}
		}
	}
}
