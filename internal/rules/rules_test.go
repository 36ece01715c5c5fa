package rules

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/arcadeworks/steroids/internal/entity"
	"github.com/arcadeworks/steroids/internal/geometry"
)

var testBounds = geometry.Bounds{Width: 640, Height: 480}

const testLevelData = `10 0 0 0 4 3 5
6 4 2 0 6 2 4
2 4 4 2 8 1 3
`

func testCatalog(t *testing.T) *entity.Catalog {
	t.Helper()
	cat, err := entity.LoadCatalog(strings.NewReader(
		"20 0 10 17 -10 17 -20 0 -10 -17 10 -17 0.5\n"))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	return cat
}

func TestLoadLevels(t *testing.T) {
	levels, err := LoadLevels(strings.NewReader(testLevelData))
	if err != nil {
		t.Fatalf("LoadLevels: %v", err)
	}
	if len(levels) != 3 {
		t.Fatalf("got %d levels, want 3", len(levels))
	}
	want := Level{SmallWeight: 6, MediumWeight: 4, LargeWeight: 2, HugeWeight: 0, MaxTotal: 6, MinTime: 2, MaxTime: 4}
	if levels[1] != want {
		t.Errorf("level 2 = %+v, want %+v", levels[1], want)
	}
}

func TestLoadLevelsErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty file", ""},
		{"too few entries", "1 2 3 4 5 6\n"},
		{"too many entries", "1 2 3 4 5 6 7 8\n"},
		{"non-numeric", "1 2 x 4 5 6 7\n"},
		{"all weights zero", "0 0 0 0 5 1 2\n"},
		{"inverted times", "1 0 0 0 5 4 2\n"},
	}
	for _, tt := range tests {
		if _, err := LoadLevels(strings.NewReader(tt.data)); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestChooseSizeRespectsZeroWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	choices := []sizeWeight{
		{entity.SizeSmall, 0},
		{entity.SizeMedium, 1},
		{entity.SizeLarge, 0},
		{entity.SizeHuge, 0},
	}
	for i := 0; i < 1000; i++ {
		if got := chooseSize(rng, choices); got != entity.SizeMedium {
			t.Fatalf("trial %d: chose %v, want medium every time", i, got)
		}
	}
}

func TestChooseSizeProportions(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	choices := []sizeWeight{
		{entity.SizeSmall, 3},
		{entity.SizeMedium, 1},
		{entity.SizeLarge, 0},
		{entity.SizeHuge, 0},
	}
	counts := map[entity.Size]int{}
	const trials = 10000
	for i := 0; i < trials; i++ {
		counts[chooseSize(rng, choices)]++
	}
	if counts[entity.SizeLarge] != 0 || counts[entity.SizeHuge] != 0 {
		t.Error("zero-weight sizes were chosen")
	}
	// Small should land near 75% of draws; allow generous slack.
	ratio := float64(counts[entity.SizeSmall]) / trials
	if ratio < 0.70 || ratio > 0.80 {
		t.Errorf("small ratio = %v, want ~0.75", ratio)
	}
}

func newTestManager(t *testing.T, levels []Level, onChange func(int)) *Manager {
	t.Helper()
	return NewManager(testCatalog(t), rand.New(rand.NewSource(11)), testBounds, levels, onChange)
}

func TestManagerPanicsWithoutLevels(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty level queue")
		}
	}()
	newTestManager(t, nil, nil)
}

func TestManagerSpawnsImmediatelyThenWaits(t *testing.T) {
	// max_total=1, min=max=0: exactly one asteroid on the first tick
	// and no more until the field is cleared.
	levels := []Level{{SmallWeight: 1, MaxTotal: 1}}
	m := newTestManager(t, levels, nil)

	dt := 1.0 / 60
	m.Update(dt)
	if got := len(m.Asteroids()); got != 1 {
		t.Fatalf("asteroids after first tick = %d, want 1", got)
	}

	for i := 0; i < 600; i++ {
		m.Update(dt)
	}
	if got := len(m.Asteroids()); got != 1 {
		t.Errorf("asteroids after 10s = %d, want still 1 (budget spent)", got)
	}
}

func TestManagerLevelClearAdvances(t *testing.T) {
	levels := []Level{
		{SmallWeight: 1, MaxTotal: 1},
		{MediumWeight: 1, MaxTotal: 2},
	}
	var changes []int
	m := newTestManager(t, levels, func(n int) { changes = append(changes, n) })

	dt := 1.0 / 60
	m.Update(dt)
	ast := m.Asteroids()[0]
	if ast.Size != entity.SizeSmall {
		t.Fatalf("level 1 spawned %v, want small", ast.Size)
	}

	m.Shatter(ast) // small: no children
	m.Update(dt)   // compaction empties the field, level advances

	if m.LevelNum() != 2 {
		t.Fatalf("level = %d, want 2", m.LevelNum())
	}
	if len(changes) != 1 || changes[0] != 2 {
		t.Errorf("level-change notifications = %v, want [2]", changes)
	}

	// Spawn timers were reset, so the next tick spawns immediately
	// from the new level's rules.
	m.Update(dt)
	if got := len(m.Asteroids()); got != 1 {
		t.Fatalf("asteroids after advance = %d, want 1", got)
	}
	if m.Asteroids()[0].Size != entity.SizeMedium {
		t.Errorf("level 2 spawned %v, want medium", m.Asteroids()[0].Size)
	}
}

func TestManagerRepeatsFinalLevel(t *testing.T) {
	levels := []Level{{SmallWeight: 1, MaxTotal: 1}}
	var changes []int
	m := newTestManager(t, levels, func(n int) { changes = append(changes, n) })

	dt := 1.0 / 60
	for round := 0; round < 3; round++ {
		m.Update(dt)
		if len(m.Asteroids()) != 1 {
			t.Fatalf("round %d: no asteroid spawned", round)
		}
		m.Shatter(m.Asteroids()[0])
		m.Update(dt)
	}

	if m.LevelNum() != 1 {
		t.Errorf("level = %d, want 1 (final level repeats)", m.LevelNum())
	}
	for i, n := range changes {
		if n != 1 {
			t.Errorf("notification %d = %d, want 1", i, n)
		}
	}
}

func TestManagerShatterReplacesWithChildren(t *testing.T) {
	levels := []Level{{HugeWeight: 1, MaxTotal: 1}}
	m := newTestManager(t, levels, nil)

	dt := 1.0 / 60
	m.Update(dt)
	parent := m.Asteroids()[0]
	if parent.Size != entity.SizeHuge {
		t.Fatalf("spawned %v, want huge", parent.Size)
	}

	children := m.Shatter(parent)
	if len(children) != 3 {
		t.Fatalf("huge shatter yielded %d children, want 3", len(children))
	}
	// Double-shatter is a no-op.
	if again := m.Shatter(parent); again != nil {
		t.Error("shattering a destroyed asteroid should do nothing")
	}

	m.Update(dt)
	if got := len(m.Asteroids()); got != 3 {
		t.Fatalf("asteroids after compaction = %d, want 3", got)
	}
	for _, a := range m.Asteroids() {
		if a.Size != entity.SizeMedium {
			t.Errorf("child size = %v, want medium", a.Size)
		}
	}
}

func TestManagerSpawnPositionOutsideScreen(t *testing.T) {
	levels := []Level{{SmallWeight: 1, MaxTotal: 50, MinTime: 0, MaxTime: 0}}
	m := newTestManager(t, levels, nil)

	dt := 1.0 / 60
	for i := 0; i < 50; i++ {
		before := len(m.Asteroids())
		m.Update(dt)
		for _, a := range m.Asteroids()[before:] {
			if testBounds.Contains(a.Pos) {
				t.Fatalf("asteroid spawned on screen at %v", a.Pos)
			}
			x, y := a.Pos.X, a.Pos.Y
			if x > -spawnRingNear && x < testBounds.Width+spawnRingNear {
				t.Fatalf("spawn X %v inside the ring margin", x)
			}
			if y > -spawnRingNear && y < testBounds.Height+spawnRingNear {
				t.Fatalf("spawn Y %v inside the ring margin", y)
			}
		}
	}
}

func TestManagerSpawnIntervalWithinLevelBounds(t *testing.T) {
	levels := []Level{{SmallWeight: 1, MaxTotal: 100, MinTime: 2, MaxTime: 4}}
	m := newTestManager(t, levels, nil)

	dt := 1.0 / 60
	m.Update(dt) // first spawn is immediate

	lastCount := len(m.Asteroids())
	sinceSpawn := 0.0
	for i := 0; i < 60*30; i++ {
		m.Update(dt)
		sinceSpawn += dt
		if len(m.Asteroids()) > lastCount {
			if sinceSpawn < 2-dt || sinceSpawn > 4+2*dt {
				t.Fatalf("spawn interval %vs outside [2,4]", sinceSpawn)
			}
			lastCount = len(m.Asteroids())
			sinceSpawn = 0
		}
	}
}
