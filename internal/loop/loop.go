// Package loop runs one terminal game: the fixed-rate Input, Update,
// Draw cycle around a session, plus the title and game-over screens.
package loop

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/arcadeworks/steroids/internal/draw"
	"github.com/arcadeworks/steroids/internal/effects"
	"github.com/arcadeworks/steroids/internal/entity"
	"github.com/arcadeworks/steroids/internal/game"
	"github.com/arcadeworks/steroids/internal/geometry"
	"github.com/arcadeworks/steroids/internal/input"
	"github.com/arcadeworks/steroids/internal/rules"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// maxFrameDt caps the simulated step after a stall, so a suspended
// terminal does not fast-forward every cooldown at once.
const maxFrameDt = 0.1

// invulnBlinkFrames is the half-period of the respawn blink.
const invulnBlinkFrames = 6

// Maximum render resolution. Larger terminals get the play field
// centered inside a border instead of stretched across the full
// screen. 160x60 keeps the sub-pixels square for the default world.
const (
	maxRenderWidth  = 160
	maxRenderHeight = 60
)

// nameRowsAboveShip lifts the player label clear of the ship polygon.
const nameRowsAboveShip = 2

type phase int

const (
	phaseTitle phase = iota
	phasePlaying
	phaseOver
)

// Options configures a game run.
type Options struct {
	Catalog *entity.Catalog
	Levels  []rules.Level
	Bounds  geometry.Bounds
	Seed    int64

	// TermSize reports the terminal dimensions each frame; local play
	// uses draw.StdoutTermSize, SSH sessions report the client PTY.
	TermSize draw.TermSizeFunc

	// PlayerName, when set, is drawn above the ship. SSH sessions pass
	// the login user; local play leaves it empty.
	PlayerName string

	// OnGameOver runs once per finished game with the final score and
	// the level reached. Optional.
	OnGameOver func(score, level int)
}

// Run drives the game on the given reader and writer until the player
// quits or the reader closes.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	particles := effects.NewParticles(rand.New(rand.NewSource(seed + 1)))
	session := game.NewSession(opts.Catalog, opts.Levels, opts.Bounds, seed, particles)
	stream := input.StartStream(r)

	termWidth, termHeight, err := opts.TermSize()
	if err != nil {
		return err
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewCanvas(renderWidth, renderHeight, opts.Bounds)
	canvas.SetOffset(offsetCol, offsetRow)
	cw := draw.NewChunkWriter(w, offsetCol, offsetRow)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	ph := phaseTitle
	frame := 0
	lastTime := time.Now()

	for {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart
		if dt > maxFrameDt {
			dt = maxFrameDt
		}
		frame++

		// ===== INPUT PHASE =====
		in := stream.Read()
		if in.Quit {
			break
		}

		// ===== UPDATE PHASE =====
		if tw, th, err := opts.TermSize(); err == nil {
			rw, rh, offCol, offRow := clampTermSize(tw, th)
			canvas.Resize(rw, rh)
			canvas.SetOffset(offCol, offRow)
			cw.SetOffset(offCol, offRow)
		}

		switch ph {
		case phaseTitle:
			if in.Enter || in.Controls.Fire {
				ph = phasePlaying
			}
		case phasePlaying:
			session.Update(dt, in.Controls)
			particles.Update(dt)
			if session.Player().GameOver() {
				ph = phaseOver
				if opts.OnGameOver != nil {
					opts.OnGameOver(session.Player().Score(), session.Manager().LevelNum())
				}
			}
		case phaseOver:
			particles.Update(dt)
			session.Update(dt, in.Controls)
			if !session.Player().GameOver() {
				ph = phasePlaying
			}
		}

		// ===== DRAW PHASE =====
		draw.ClearScreen(cw)
		canvas.Clear()
		if ph != phaseTitle {
			drawWorld(canvas, session, particles, frame)
		}
		canvas.Render(cw)
		canvas.RenderBorder(cw)
		if ph != phaseTitle {
			drawPlayerName(cw, canvas, session, opts.PlayerName)
		}

		switch ph {
		case phaseTitle:
			drawTitleScreen(cw, canvas)
		case phasePlaying:
			drawPlayingHUD(cw, canvas, session)
		case phaseOver:
			drawGameOverScreen(cw, canvas, session)
		}
		if err := cw.Flush(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// clampTermSize caps the terminal dimensions at the max render
// resolution and computes the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = termWidth
	renderHeight = termHeight
	if renderWidth > maxRenderWidth {
		renderWidth = maxRenderWidth
	}
	if renderHeight > maxRenderHeight {
		renderHeight = maxRenderHeight
	}
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// drawWorld renders the ship, its bullets, the asteroid field and any
// particles onto the canvas.
func drawWorld(canvas *draw.Canvas, session *game.Session, particles *effects.Particles, frame int) {
	p := session.Player()
	if ship := p.Ship(); ship != nil && !ship.Hidden() {
		blinkOff := p.Invincible() && (frame/invulnBlinkFrames)%2 == 1
		if !blinkOff {
			canvas.DrawPolygon(ship.WorldVertices(), false)
		}
		for _, b := range ship.Bullets() {
			if !b.Expired() {
				canvas.DrawPolygon(b.WorldVertices(), true)
			}
		}
	}

	for _, a := range session.Manager().Asteroids() {
		if !a.IsDestroyed() {
			canvas.DrawPolygon(a.WorldVertices(), false)
		}
	}

	particles.Draw(canvas)
}
