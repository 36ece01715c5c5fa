// Package effects renders animation events as short-lived particle
// bursts. Sounds have nowhere to go in a terminal and are dropped.
package effects

import (
	"math"
	"math/rand"

	"github.com/arcadeworks/steroids/internal/draw"
	"github.com/arcadeworks/steroids/internal/entity"
	"github.com/arcadeworks/steroids/internal/geometry"
)

// Burst shapes per animation.
const (
	deathCount    = 40
	deathSpeed    = 60.0
	deathLife     = 2.0
	explodeCount  = 20
	explodeSpeed  = 50.0
	explodeLife   = 1.0
	teleportCount = 12
	teleportSpeed = 35.0
	teleportLife  = 0.5

	particleDrag = 0.95 // decay per 1/60s
)

type particle struct {
	pos      geometry.Vector
	vel      geometry.Vector // world units per second
	lifetime float64
	maxLife  float64
}

// Particles is an entity.Effects sink that turns animation events into
// expanding fragment bursts. Not safe for concurrent use; each session
// owns its own instance.
type Particles struct {
	rng  *rand.Rand
	live []particle
}

func NewParticles(rng *rand.Rand) *Particles {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Particles{rng: rng}
}

// PlayAnimation spawns the burst matching the named animation.
// Unknown names are ignored.
func (ps *Particles) PlayAnimation(name string, pos geometry.Vector) {
	switch name {
	case entity.AnimPlayerDead:
		ps.burst(pos, deathCount, deathSpeed, deathLife)
	case entity.AnimExplosion:
		ps.burst(pos, explodeCount, explodeSpeed, explodeLife)
	case entity.AnimPlayerTeleport:
		ps.burst(pos, teleportCount, teleportSpeed, teleportLife)
	}
}

// PlaySound implements entity.Effects.
func (ps *Particles) PlaySound(string) {}

// burst emits count particles in random directions, with speed and
// lifetime jittered per particle.
func (ps *Particles) burst(pos geometry.Vector, count int, speed, lifetime float64) {
	for i := 0; i < count; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		spd := speed * (0.5 + ps.rng.Float64())
		life := lifetime * (0.5 + ps.rng.Float64()*0.5)

		ps.live = append(ps.live, particle{
			pos:      pos,
			vel:      geometry.Vector{X: math.Cos(angle) * spd, Y: math.Sin(angle) * spd},
			lifetime: life,
			maxLife:  life,
		})
	}
}

// Update ages particles and drops the expired ones. Particles do not
// wrap; they drift off screen and die.
func (ps *Particles) Update(dt float64) {
	drag := math.Pow(particleDrag, dt*60)
	kept := ps.live[:0]
	for _, p := range ps.live {
		p.lifetime -= dt
		if p.lifetime <= 0 {
			continue
		}
		p.vel = p.vel.Scale(drag)
		p.pos = p.pos.Add(p.vel.Scale(dt))
		kept = append(kept, p)
	}
	ps.live = kept
}

// Draw plots each living particle as a single point. Particles in the
// last quarter of their lifetime are skipped, which reads as a fade.
func (ps *Particles) Draw(c *draw.Canvas) {
	for _, p := range ps.live {
		if p.lifetime/p.maxLife < 0.25 {
			continue
		}
		c.DrawPoint(p.pos)
	}
}

// Live reports the number of active particles.
func (ps *Particles) Live() int {
	return len(ps.live)
}
