package entity

import (
	"math/rand"

	"github.com/arcadeworks/steroids/internal/geometry"
)

// Size is an asteroid's discrete size category.
type Size int

const (
	SizeSmall  Size = iota // explodes, no children
	SizeMedium             // breaks into 2 smalls
	SizeLarge              // breaks into 2 mediums
	SizeHuge               // breaks into 3 mediums
)

// String returns the size name for HUD and log output.
func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	case SizeHuge:
		return "huge"
	default:
		return "unknown"
	}
}

// scaleFactor is the per-size multiplier applied on top of a shape's
// catalog default scale (a medium asteroid uses the default as-is).
func (s Size) scaleFactor() float64 {
	switch s {
	case SizeSmall:
		return 0.7
	case SizeLarge:
		return 1.2
	case SizeHuge:
		return 1.5
	default:
		return 1.0
	}
}

// Asteroid speed ranges. New and child asteroids draw linear speed from
// [MinAsteroidLinSpeed, MaxAsteroidLinSpeed] and rotational speed from
// [0, MaxAsteroidRotSpeed].
const (
	MinAsteroidLinSpeed = 0.5
	MaxAsteroidLinSpeed = 2.5
	MaxAsteroidRotSpeed = 2.5
)

// RandomShape requests a uniformly random catalog shape index.
const RandomShape = -1

// Asteroid is a drifting rock. Its size category determines its scale
// and what it breaks into when destroyed; the shape index picks its
// visual family from the catalog, which children inherit.
type Asteroid struct {
	Entity

	Size       Size
	ShapeIndex int

	catalog   *Catalog
	rng       *rand.Rand
	destroyed bool
}

// NewAsteroid creates an asteroid of the given size. Pass RandomShape
// as shapeIndex to draw a template uniformly from the catalog.
func NewAsteroid(catalog *Catalog, rng *rand.Rand, size Size, shapeIndex int, direction geometry.Vector, linSpeed, rotSpeed float64, pos geometry.Vector) *Asteroid {
	if shapeIndex < 0 {
		shapeIndex = rng.Intn(catalog.Len())
	}
	tmpl := catalog.Shape(shapeIndex)

	return &Asteroid{
		Entity:     *NewEntity(tmpl.Coords, direction, pos, 0, tmpl.DefaultScale*size.scaleFactor(), linSpeed, rotSpeed),
		Size:       size,
		ShapeIndex: shapeIndex,
		catalog:    catalog,
		rng:        rng,
	}
}

// Destroy breaks the asteroid into child asteroids per the breakdown
// table: huge yields three mediums, large two mediums, medium two
// smalls, and small nothing. Children spawn at the parent's position
// with the parent's shape and freshly randomized motion.
func (a *Asteroid) Destroy() []*Asteroid {
	switch a.Size {
	case SizeMedium:
		return []*Asteroid{a.child(SizeSmall), a.child(SizeSmall)}
	case SizeLarge:
		return []*Asteroid{a.child(SizeMedium), a.child(SizeMedium)}
	case SizeHuge:
		return []*Asteroid{a.child(SizeMedium), a.child(SizeMedium), a.child(SizeMedium)}
	default:
		return nil
	}
}

func (a *Asteroid) child(size Size) *Asteroid {
	direction := geometry.FromAngle(a.rng.Float64() * 360)
	linSpeed := MinAsteroidLinSpeed + a.rng.Float64()*(MaxAsteroidLinSpeed-MinAsteroidLinSpeed)
	rotSpeed := a.rng.Float64() * MaxAsteroidRotSpeed
	return NewAsteroid(a.catalog, a.rng, size, a.ShapeIndex, direction, linSpeed, rotSpeed, a.Pos)
}

// MarkDestroyed flags the asteroid for removal on the next compaction.
func (a *Asteroid) MarkDestroyed() {
	a.destroyed = true
}

// IsDestroyed reports whether the asteroid is flagged for removal.
func (a *Asteroid) IsDestroyed() bool {
	return a.destroyed
}
