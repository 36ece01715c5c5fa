// Package entity defines the moving objects of the game: the base
// kinematic entity plus the ship, bullets and asteroids derived from it.
package entity

import (
	"math"
	"math/rand"

	"github.com/arcadeworks/steroids/internal/geometry"
)

// Controls is the polled input state for one simulation tick.
type Controls struct {
	Thrust   bool
	Left     bool
	Right    bool
	Fire     bool
	Teleport bool
	Restart  bool
}

// Scheduler runs a callback after a delay in simulated seconds.
// Callbacks fire exactly once; resetting the owning session discards
// anything still pending.
type Scheduler interface {
	After(delay float64, fn func())
}

// Effects receives fire-and-forget notifications for animations and
// sounds. Implementations must not block; the simulation never waits
// on them.
type Effects interface {
	PlayAnimation(name string, pos geometry.Vector)
	PlaySound(name string)
}

// Effect and sound names understood by the effects sink.
const (
	AnimPlayerDead     = "PLAYER_DEAD"
	AnimPlayerTeleport = "PLAYER_TELEPORT"
	AnimExplosion      = "EXPLOSION"
	SoundShoot         = "SHOOT"
	SoundExplosion     = "EXPLOSION"
	SoundTeleport      = "TELEPORT"
)

// NopEffects is an Effects implementation that discards everything.
// Used in tests and headless runs.
type NopEffects struct{}

func (NopEffects) PlayAnimation(string, geometry.Vector) {}
func (NopEffects) PlaySound(string)                      {}

// Context carries everything a controllable entity needs during update.
type Context struct {
	Dt       float64
	Controls Controls
	Bounds   geometry.Bounds
	Timers   Scheduler
	Effects  Effects
	Rng      *rand.Rand
}

// Entity is the base moving object: a polygon shape with a pose and
// linear/rotational speed.
//
// Linear and rotational speeds are in units per tick, not per second;
// the simulation runs at a fixed tick rate and translation is applied
// once per update regardless of dt. Timers and cooldowns, by contrast,
// accumulate dt.
type Entity struct {
	shape *geometry.Shape

	Pos      geometry.Vector
	Rot      float64 // degrees, wrapped to [0,360)
	Scale    float64
	LinSpeed float64
	RotSpeed float64

	direction geometry.Vector // always unit length
}

// NewEntity creates an entity from a flat vertex list and an initial
// pose. The direction vector is normalized on the way in.
func NewEntity(coords []float64, direction geometry.Vector, pos geometry.Vector, rot, scale, linSpeed, rotSpeed float64) *Entity {
	return &Entity{
		shape:     geometry.NewShape(coords, pos, rot, scale),
		Pos:       pos,
		Rot:       wrapAngle(rot),
		Scale:     scale,
		LinSpeed:  linSpeed,
		RotSpeed:  rotSpeed,
		direction: direction.Normalize(),
	}
}

// Update advances the entity by one tick: translate along the direction
// vector, rotate, refresh the shape pose, then wrap across the screen
// if the entity has fully left it.
func (e *Entity) Update(dt float64, bounds geometry.Bounds) {
	_ = dt // base kinematics are per-tick; dt matters only to derived types

	e.Pos = e.Pos.Add(e.direction.Scale(e.LinSpeed))
	e.Rot = wrapAngle(e.Rot + e.RotSpeed)
	e.shape.SetPose(e.Pos, e.Rot, e.Scale)
	e.wrapAcrossScreen(bounds)
}

// Direction returns the entity's unit direction vector.
func (e *Entity) Direction() geometry.Vector {
	return e.direction
}

// SetDirection replaces the direction vector, renormalizing it to keep
// the unit-length invariant.
func (e *Entity) SetDirection(v geometry.Vector) {
	e.direction = v.Normalize()
}

// Collides reports whether this entity's shape overlaps another's.
func (e *Entity) Collides(other *Entity) bool {
	return e.shape.Collides(other.shape)
}

// EffectiveLength returns the shape's heuristic radius, used for
// coarse bounds checks.
func (e *Entity) EffectiveLength() float64 {
	return e.shape.EffectiveLength()
}

// WorldVertices returns the shape's vertices in world space, for
// rendering and tests.
func (e *Entity) WorldVertices() []geometry.Vector {
	e.shape.SetPose(e.Pos, e.Rot, e.Scale)
	return e.shape.TransformedVertices()
}

// wrapAcrossScreen teleports an entity that has fully exited one screen
// edge to just past the opposite edge, offset by the overshoot so the
// transition is seamless rather than snapped.
func (e *Entity) wrapAcrossScreen(b geometry.Bounds) {
	eff := e.shape.EffectiveLength()
	pos := e.Pos

	if pos.X+eff < 0 {
		pos.X = b.Width + math.Abs(pos.X+eff)
	} else if pos.X-eff > b.Width {
		pos.X = -math.Abs(pos.X - eff - b.Width)
	}

	if pos.Y+eff < 0 {
		pos.Y = b.Height + math.Abs(pos.Y+eff)
	} else if pos.Y-eff > b.Height {
		pos.Y = -math.Abs(pos.Y - eff - b.Height)
	}

	e.Pos = pos
	e.shape.SetPose(e.Pos, e.Rot, e.Scale)
}

// wrapAngle wraps an angle in degrees onto [0, 360).
func wrapAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
