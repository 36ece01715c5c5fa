package game

import (
	"github.com/arcadeworks/steroids/internal/entity"
	"github.com/arcadeworks/steroids/internal/geometry"
)

// Scoring and player lifecycle constants.
const (
	InitialLives        = 3
	ScoreSmallAsteroid  = 10
	ScoreLevelCleared   = 50
	respawnDelay        = 3.0 // seconds between death and respawn
	invincibilitySecond = 2.0 // grace period after respawning
	respawnRot          = 90.0
)

// Player tracks the lives, score and ship of a single player. Between
// a death and the respawn that follows it the player has no ship.
type Player struct {
	ship     *entity.Ship
	lives    int
	score    int
	invuln   float64
	gameOver bool
}

// NewPlayer creates a player with a fresh ship at the screen center,
// facing up.
func NewPlayer(bounds geometry.Bounds) *Player {
	return &Player{
		ship:  entity.NewShip(bounds.Center(), respawnRot),
		lives: InitialLives,
	}
}

// Ship returns the player's ship, or nil while a respawn is pending or
// after game over.
func (p *Player) Ship() *entity.Ship {
	return p.ship
}

func (p *Player) Lives() int {
	return p.lives
}

func (p *Player) Score() int {
	return p.score
}

func (p *Player) AddScore(points int) {
	p.score += points
}

// Invincible reports whether the player is inside the post-respawn
// grace period.
func (p *Player) Invincible() bool {
	return p.invuln > 0
}

func (p *Player) GameOver() bool {
	return p.gameOver
}

// Vulnerable reports whether the player can currently be killed: there
// is a visible ship and no grace period running.
func (p *Player) Vulnerable() bool {
	return p.ship != nil && !p.ship.Hidden() && p.invuln <= 0
}

// Update counts down the grace period and advances the ship.
func (p *Player) Update(ctx entity.Context) {
	if p.ship == nil {
		return
	}
	if p.invuln > 0 {
		p.invuln -= ctx.Dt
		if p.invuln < 0 {
			p.invuln = 0
		}
	}
	p.ship.Update(ctx)
}

// Kill removes the ship and spends a life. Unless that was the last
// life, a respawn at the screen center is scheduled; the new ship
// starts with a short grace period.
func (p *Player) Kill(ctx entity.Context) {
	if p.ship == nil {
		return
	}
	ctx.Effects.PlayAnimation(entity.AnimPlayerDead, p.ship.Pos)
	ctx.Effects.PlaySound(entity.SoundExplosion)

	p.ship = nil
	p.lives--
	if p.lives <= 0 {
		p.gameOver = true
		return
	}

	bounds := ctx.Bounds
	ctx.Timers.After(respawnDelay, func() {
		p.ship = entity.NewShip(bounds.Center(), respawnRot)
		p.invuln = invincibilitySecond
	})
}
