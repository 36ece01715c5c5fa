package rules

import (
	"math/rand"

	"github.com/arcadeworks/steroids/internal/entity"
	"github.com/arcadeworks/steroids/internal/geometry"
)

// Spawn ring geometry: candidate coordinates sit this far outside the
// screen on each side, stepped so asteroids do not all enter from the
// same point.
const (
	spawnRingNear = 20.0
	spawnRingFar  = 60.0
	spawnRingStep = 10.0
)

// Manager owns the live asteroid population and walks the level queue:
// it spawns asteroids on a randomized timer according to the current
// level's rules, and advances to the next level once the field is
// cleared.
type Manager struct {
	catalog *entity.Catalog
	rng     *rand.Rand
	bounds  geometry.Bounds

	asteroids []*entity.Asteroid
	pending   []*entity.Asteroid // children queued during the current tick

	generated int // asteroids generated this level (children excluded)
	levelNum  int
	current   Level
	queue     []Level

	nextGen float64 // seconds until the next spawn is due
	lastGen float64 // seconds since the last spawn

	onLevelChange func(level int)
}

// NewManager creates a manager consuming the given levels in order.
// The callback fires on every level transition with the new level
// number; pass nil to ignore transitions. An empty level slice is a
// programming error and panics.
func NewManager(catalog *entity.Catalog, rng *rand.Rand, bounds geometry.Bounds, levels []Level, onLevelChange func(int)) *Manager {
	if len(levels) == 0 {
		panic("rules: manager needs at least one level")
	}
	if onLevelChange == nil {
		onLevelChange = func(int) {}
	}
	return &Manager{
		catalog:       catalog,
		rng:           rng,
		bounds:        bounds,
		current:       levels[0],
		queue:         levels[1:],
		levelNum:      1,
		onLevelChange: onLevelChange,
	}
}

// Asteroids returns the live asteroid collection. Callers must not
// mutate it; use Shatter to destroy an asteroid.
func (m *Manager) Asteroids() []*entity.Asteroid {
	return m.asteroids
}

// LevelNum returns the 1-based number of the level in play.
func (m *Manager) LevelNum() int {
	return m.levelNum
}

// CurrentLevel returns the rule set in effect.
func (m *Manager) CurrentLevel() Level {
	return m.current
}

// Shatter destroys an asteroid: it is flagged for removal and its
// children (if any) are queued for insertion at the start of the next
// update. Safe to call while iterating Asteroids.
func (m *Manager) Shatter(a *entity.Asteroid) []*entity.Asteroid {
	if a.IsDestroyed() {
		return nil
	}
	a.MarkDestroyed()
	children := a.Destroy()
	m.pending = append(m.pending, children...)
	return children
}

// Update advances all live asteroids by one tick, spawns a new asteroid
// when one is due and the level's population budget allows, and handles
// the level-clear transition when the field empties.
func (m *Manager) Update(dt float64) {
	m.compact()

	for _, a := range m.asteroids {
		a.Update(dt, m.bounds)
	}

	if m.lastGen >= m.nextGen && m.generated < m.current.MaxTotal {
		m.asteroids = append(m.asteroids, m.generate())
		m.generated++

		span := m.current.MaxTime - m.current.MinTime
		m.nextGen = float64(m.current.MinTime + m.rng.Intn(span+1))
		m.lastGen = 0
	}

	if len(m.asteroids) == 0 {
		// Field cleared: force an immediate spawn and move to the
		// next level, repeating the last one once the queue runs dry.
		m.lastGen = 0
		m.nextGen = 0
		m.generated = 0

		if len(m.queue) > 0 {
			m.current = m.queue[0]
			m.queue = m.queue[1:]
			m.levelNum++
		}
		m.onLevelChange(m.levelNum)
		return
	}

	m.lastGen += dt
}

// compact removes destroyed asteroids and inserts queued children.
func (m *Manager) compact() {
	if len(m.pending) == 0 {
		clean := true
		for _, a := range m.asteroids {
			if a.IsDestroyed() {
				clean = false
				break
			}
		}
		if clean {
			return
		}
	}

	kept := m.asteroids[:0]
	for _, a := range m.asteroids {
		if !a.IsDestroyed() {
			kept = append(kept, a)
		}
	}
	for i := len(kept); i < len(m.asteroids); i++ {
		m.asteroids[i] = nil
	}
	m.asteroids = append(kept, m.pending...)
	m.pending = m.pending[:0]
}

// generate builds one randomized asteroid per the current level's
// rules: weighted size, a spawn point from the ring outside the screen,
// and a direction aimed at a random visible point.
func (m *Manager) generate() *entity.Asteroid {
	size := chooseSize(m.rng, m.current.sizeWeights())

	pos := geometry.Vector{
		X: m.ringCoordinate(m.bounds.Width),
		Y: m.ringCoordinate(m.bounds.Height),
	}
	target := geometry.Vector{
		X: m.rng.Float64() * m.bounds.Width,
		Y: m.rng.Float64() * m.bounds.Height,
	}
	direction := target.Sub(pos).Normalize()

	linSpeed := entity.MinAsteroidLinSpeed + m.rng.Float64()*(entity.MaxAsteroidLinSpeed-entity.MinAsteroidLinSpeed)
	rotSpeed := m.rng.Float64() * entity.MaxAsteroidRotSpeed

	return entity.NewAsteroid(m.catalog, m.rng, size, entity.RandomShape, direction, linSpeed, rotSpeed, pos)
}

// ringCoordinate picks one coordinate from the bands just outside the
// screen on either side of the given extent.
func (m *Manager) ringCoordinate(extent float64) float64 {
	steps := int((spawnRingFar-spawnRingNear)/spawnRingStep) + 1
	offset := spawnRingNear + float64(m.rng.Intn(steps))*spawnRingStep
	if m.rng.Intn(2) == 0 {
		return -offset
	}
	return extent + offset
}
