// Package draw renders game geometry to a terminal. A Canvas buffers
// sub-pixel state at double vertical resolution using half-block
// characters and scales the game's logical space to whatever terminal
// it is shown on. World coordinates are Y-up with the origin at the
// bottom left, matching the simulation.
package draw

// Block characters used by the canvas renderer.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
