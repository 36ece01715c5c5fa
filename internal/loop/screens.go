package loop

import (
	"fmt"

	"github.com/arcadeworks/steroids/internal/draw"
	"github.com/arcadeworks/steroids/internal/game"
)

// drawTitleScreen centers the title and the key bindings.
func drawTitleScreen(cw *draw.ChunkWriter, canvas *draw.Canvas) {
	centerX := canvas.TerminalWidth() / 2
	centerY := canvas.TerminalHeight() / 2

	title := "S T E R O I D S"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	subtitle := "Press ENTER to start"
	cw.WriteAt(centerX-len(subtitle)/2, centerY+1, subtitle)

	controls := "A/D or arrows rotate, W thrusts, SPACE shoots, T teleports, Q quits"
	cw.WriteAt(centerX-len(controls)/2, centerY+4, controls)
}

// drawPlayingHUD draws score, lives and level along the top row, plus
// the teleport charge state and the respawn grace marker.
func drawPlayingHUD(cw *draw.ChunkWriter, canvas *draw.Canvas, session *game.Session) {
	termWidth := canvas.TerminalWidth()
	p := session.Player()

	cw.WriteAt(2, 1, fmt.Sprintf("Score: %d", p.Score()))

	level := fmt.Sprintf("Level %d", session.Manager().LevelNum())
	cw.WriteAt(termWidth/2-len(level)/2, 1, level)

	lives := fmt.Sprintf("Lives: %d", p.Lives())
	cw.WriteAt(termWidth-len(lives)-1, 1, lives)

	status := "Teleport CHARGING"
	if ship := p.Ship(); ship != nil && ship.TeleportUp() {
		status = "Teleport READY"
	}
	cw.WriteAt(2, canvas.TerminalHeight(), status)

	if p.Invincible() {
		const tag = "INVULN"
		cw.WriteAt(termWidth-len(tag)-1, canvas.TerminalHeight(), tag)
	}
}

// drawPlayerName writes the login name above the ship, clamped to the
// render area so the label never lands on the border.
func drawPlayerName(cw *draw.ChunkWriter, canvas *draw.Canvas, session *game.Session, name string) {
	if name == "" {
		return
	}
	ship := session.Player().Ship()
	if ship == nil || ship.Hidden() {
		return
	}

	col, row := canvas.WorldToTerminal(ship.Pos)
	col -= len(name) / 2
	row -= nameRowsAboveShip

	if col < 1 {
		col = 1
	}
	if col+len(name)-1 > canvas.TerminalWidth() {
		col = canvas.TerminalWidth() - len(name) + 1
	}
	if row < 1 {
		row = 1
	}
	cw.WriteAt(col, row, name)
}

// drawGameOverScreen overlays the final score and the restart prompt.
func drawGameOverScreen(cw *draw.ChunkWriter, canvas *draw.Canvas, session *game.Session) {
	centerX := canvas.TerminalWidth() / 2
	centerY := canvas.TerminalHeight() / 2

	title := "GAME OVER"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	score := fmt.Sprintf("Score: %d   Level: %d", session.Player().Score(), session.Manager().LevelNum())
	cw.WriteAt(centerX-len(score)/2, centerY, score)

	prompt := "Press R to restart, Q to quit"
	cw.WriteAt(centerX-len(prompt)/2, centerY+2, prompt)
}
