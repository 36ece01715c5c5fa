package entity

import "github.com/arcadeworks/steroids/internal/geometry"

// Bullet tuning.
const (
	bulletSpeed    = 3.0
	bulletScale    = 0.25
	bulletLifespan = 3.0 // seconds
)

// bulletVerts is a small square, scaled down at construction.
var bulletVerts = []float64{10, 10, 10, -10, -10, -10, -10, 10}

// Bullet is a straight-line projectile with a fixed lifespan.
type Bullet struct {
	Entity

	age     float64
	expired bool
}

// NewBullet creates a bullet at the given position traveling along the
// supplied direction.
func NewBullet(pos geometry.Vector, rot float64, direction geometry.Vector) *Bullet {
	return &Bullet{
		Entity: *NewEntity(bulletVerts, direction, pos, rot, bulletScale, bulletSpeed, 0),
	}
}

// Update moves the bullet and expires it once its lifespan runs out.
func (b *Bullet) Update(dt float64, bounds geometry.Bounds) {
	b.Entity.Update(dt, bounds)
	b.age += dt
	if b.age >= bulletLifespan {
		b.expired = true
	}
}

// Expired reports whether the bullet should be removed.
func (b *Bullet) Expired() bool {
	return b.expired
}

// Expire marks the bullet for removal, used when it hits something
// before its lifespan runs out.
func (b *Bullet) Expire() {
	b.expired = true
}
