package entity

import "github.com/arcadeworks/steroids/internal/geometry"

// Ship tuning.
const (
	shipLinSpeed  = 1.0
	shipRotSpeed  = 2.0 // degrees per tick while turning
	shipScale     = 0.5
	shipMaxSpeed  = 1.5 // momentum magnitude cap, units per tick
	shootDelay    = 0.8 // seconds between shots
	teleportDelay = 14.0
	teleportHide  = 1.5  // seconds spent off-screen mid-teleport
	teleportInset = 20.0 // safety margin from the edges when rematerializing
	muzzleOffset  = 3.0  // bullet spawn distance along the facing direction
)

// shipVerts is the classic arrow profile, pointing along +X at rot 0.
var shipVerts = []float64{20, 0, -30, 20, -30, -20}

// teleportSentinel is where the ship hides mid-teleport: far enough out
// that the bounding-circle pre-filter rejects every collision pair.
var teleportSentinel = geometry.Vector{X: 5000, Y: 5000}

// Ship is the player-controlled entity. Unlike the base entity it moves
// by an accumulated momentum vector: thrust adds to momentum in the
// facing direction, and momentum persists when the ship turns, giving
// the classic drifting feel.
type Ship struct {
	Entity

	momentum      geometry.Vector
	sinceShot     float64
	sinceTeleport float64
	teleportUp    bool
	hidden        bool

	bullets []*Bullet
}

// NewShip creates a ship at the given position facing the given
// rotation. The weapon starts ready and the teleport charged.
func NewShip(pos geometry.Vector, rot float64) *Ship {
	return &Ship{
		Entity:        *NewEntity(shipVerts, geometry.FromAngle(rot), pos, rot, shipScale, shipLinSpeed, shipRotSpeed),
		momentum:      geometry.Zero(),
		sinceShot:     shootDelay,
		sinceTeleport: teleportDelay,
		teleportUp:    true,
	}
}

// SetRot sets the ship's rotation and re-derives the facing direction
// from it, keeping the two in lockstep.
func (s *Ship) SetRot(deg float64) {
	s.Rot = wrapAngle(deg)
	s.direction = geometry.FromAngle(s.Rot)
}

// Update handles input, applies momentum, and advances the ship's
// bullets. Turning and momentum displacement are per-tick; cooldowns
// and thrust accumulation scale with dt.
func (s *Ship) Update(ctx Context) {
	s.handleInput(ctx)

	s.Pos = s.Pos.Add(s.momentum)
	s.shape.SetPose(s.Pos, s.Rot, s.Scale)
	if !s.hidden {
		s.wrapAcrossScreen(ctx.Bounds)
	}

	// Advance bullets, compacting expired ones after the loop.
	kept := s.bullets[:0]
	for _, b := range s.bullets {
		b.Update(ctx.Dt, ctx.Bounds)
		if !b.Expired() {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(s.bullets); i++ {
		s.bullets[i] = nil
	}
	s.bullets = kept
}

func (s *Ship) handleInput(ctx Context) {
	// Thrust accumulates into momentum; the cap preserves direction
	// and clamps magnitude.
	if ctx.Controls.Thrust {
		s.momentum = s.momentum.Add(s.direction.Scale(s.LinSpeed * ctx.Dt))
	}
	speed := geometry.Clamp(s.momentum.Length(), -shipMaxSpeed, shipMaxSpeed)
	s.momentum = s.momentum.Normalize().Scale(speed)

	if ctx.Controls.Left {
		s.SetRot(s.Rot + s.RotSpeed)
	} else if ctx.Controls.Right {
		s.SetRot(s.Rot - s.RotSpeed)
	}

	if ctx.Controls.Fire && s.sinceShot >= shootDelay {
		pos := s.Pos.Add(s.direction.Scale(muzzleOffset))
		s.bullets = append(s.bullets, NewBullet(pos, s.Rot, s.direction))
		s.sinceShot = 0
		ctx.Effects.PlaySound(SoundShoot)
	} else {
		s.sinceShot += ctx.Dt
	}

	if s.sinceTeleport >= teleportDelay {
		s.teleportUp = true
	}

	if ctx.Controls.Teleport && s.teleportUp {
		s.teleport(ctx)
	} else {
		s.sinceTeleport += ctx.Dt
	}
}

// teleport hides the ship at the sentinel position and schedules the
// relocation to a random on-screen point. While hidden the ship skips
// screen wrapping, so the sentinel cannot bounce back into play.
func (s *Ship) teleport(ctx Context) {
	ctx.Effects.PlayAnimation(AnimPlayerTeleport, s.Pos)
	ctx.Effects.PlaySound(SoundTeleport)

	s.Pos = teleportSentinel
	s.momentum = geometry.Zero()
	s.hidden = true
	s.sinceTeleport = 0
	s.teleportUp = false

	bounds := ctx.Bounds
	rng := ctx.Rng
	ctx.Timers.After(teleportHide, func() {
		s.Pos = geometry.Vector{
			X: teleportInset + rng.Float64()*(bounds.Width-2*teleportInset),
			Y: teleportInset + rng.Float64()*(bounds.Height-2*teleportInset),
		}
		s.hidden = false
	})
}

// Hidden reports whether the ship is mid-teleport and should be
// excluded from collision checks and drawing.
func (s *Ship) Hidden() bool {
	return s.hidden
}

// TeleportUp reports whether the teleport ability is charged.
func (s *Ship) TeleportUp() bool {
	return s.teleportUp
}

// Momentum returns the ship's current momentum vector.
func (s *Ship) Momentum() geometry.Vector {
	return s.momentum
}

// Bullets returns the ship's live bullets.
func (s *Ship) Bullets() []*Bullet {
	return s.bullets
}
