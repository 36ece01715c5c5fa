// Package game ties the simulation together: player lifecycle, the
// deterministic timer set and the per-session update cycle that drives
// entities, asteroid rules and collision handling.
package game

import (
	"math/rand"

	"github.com/arcadeworks/steroids/internal/entity"
	"github.com/arcadeworks/steroids/internal/geometry"
	"github.com/arcadeworks/steroids/internal/rules"
)

// Session is one complete game: a player, an asteroid manager and the
// timers both share. Sessions are independent; each SSH client or
// local run owns exactly one and drives it from its own loop.
type Session struct {
	bounds  geometry.Bounds
	catalog *entity.Catalog
	levels  []rules.Level
	rng     *rand.Rand
	effects entity.Effects

	timers  *Timers
	player  *Player
	manager *rules.Manager
}

// NewSession builds a session over the given shape catalog and level
// progression. The seed fixes all randomness, making a session
// reproducible under a scripted input sequence. A nil effects sink is
// replaced with a no-op.
func NewSession(catalog *entity.Catalog, levels []rules.Level, bounds geometry.Bounds, seed int64, effects entity.Effects) *Session {
	if effects == nil {
		effects = entity.NopEffects{}
	}
	s := &Session{
		bounds:  bounds,
		catalog: catalog,
		levels:  levels,
		rng:     rand.New(rand.NewSource(seed)),
		effects: effects,
	}
	s.Reset()
	return s
}

// Reset starts the session over: fresh player, fresh level progression
// and an empty timer set. Pending timers are discarded, never fired.
func (s *Session) Reset() {
	s.timers = NewTimers()
	s.player = NewPlayer(s.bounds)
	s.manager = rules.NewManager(s.catalog, s.rng, s.bounds, s.levels, func(int) {
		s.player.AddScore(ScoreLevelCleared)
	})
}

func (s *Session) Player() *Player {
	return s.player
}

func (s *Session) Manager() *rules.Manager {
	return s.manager
}

func (s *Session) Bounds() geometry.Bounds {
	return s.bounds
}

// Update advances the session by one tick: timers first, then the
// player and the asteroid field, collisions last.
func (s *Session) Update(dt float64, controls entity.Controls) {
	if s.player.GameOver() {
		if controls.Restart {
			s.Reset()
		}
		return
	}

	s.timers.Advance(dt)

	ctx := entity.Context{
		Dt:       dt,
		Controls: controls,
		Bounds:   s.bounds,
		Timers:   s.timers,
		Effects:  s.effects,
		Rng:      s.rng,
	}
	s.player.Update(ctx)
	s.manager.Update(dt)
	s.handleCollisions(ctx)
}

// handleCollisions resolves bullet hits first, then checks the ship
// against whatever asteroids survived.
func (s *Session) handleCollisions(ctx entity.Context) {
	ship := s.player.Ship()
	asteroids := s.manager.Asteroids()

	if ship != nil {
		for _, b := range ship.Bullets() {
			if b.Expired() {
				continue
			}
			for _, a := range asteroids {
				if a.IsDestroyed() {
					continue
				}
				if b.Collides(&a.Entity) {
					b.Expire()
					s.shatter(ctx, a)
					break
				}
			}
		}
	}

	if !s.player.Vulnerable() {
		return
	}
	for _, a := range asteroids {
		if a.IsDestroyed() {
			continue
		}
		if ship.Collides(&a.Entity) {
			s.player.Kill(ctx)
			return
		}
	}
}

// shatter destroys an asteroid, scoring it when it was one of the
// small ones that actually disappear.
func (s *Session) shatter(ctx entity.Context, a *entity.Asteroid) {
	ctx.Effects.PlayAnimation(entity.AnimExplosion, a.Pos)
	ctx.Effects.PlaySound(entity.SoundExplosion)
	if a.Size == entity.SizeSmall {
		s.player.AddScore(ScoreSmallAsteroid)
	}
	s.manager.Shatter(a)
}
