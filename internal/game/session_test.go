package game

import (
	"strings"
	"testing"

	"github.com/arcadeworks/steroids/internal/entity"
	"github.com/arcadeworks/steroids/internal/geometry"
	"github.com/arcadeworks/steroids/internal/rules"
)

const tick = 1.0 / 60

var testBounds = geometry.Bounds{Width: 640, Height: 480}

func testSession(t *testing.T, levels []rules.Level) *Session {
	t.Helper()
	cat, err := entity.LoadCatalog(strings.NewReader(
		"20 0 10 17 -10 17 -20 0 -10 -17 10 -17 0.5\n"))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	return NewSession(cat, levels, testBounds, 7, nil)
}

// spawnOne ticks until the manager has produced its first asteroid,
// then parks it at pos with no motion.
func spawnOne(t *testing.T, s *Session, pos geometry.Vector) *entity.Asteroid {
	t.Helper()
	for i := 0; i < 10 && len(s.Manager().Asteroids()) == 0; i++ {
		s.Update(tick, entity.Controls{})
	}
	asts := s.Manager().Asteroids()
	if len(asts) == 0 {
		t.Fatal("manager never spawned an asteroid")
	}
	a := asts[0]
	a.Pos = pos
	a.LinSpeed = 0
	a.RotSpeed = 0
	return a
}

func TestNewSessionState(t *testing.T) {
	s := testSession(t, []rules.Level{{SmallWeight: 1, MaxTotal: 1}})
	p := s.Player()
	if p.Lives() != InitialLives {
		t.Errorf("lives = %d, want %d", p.Lives(), InitialLives)
	}
	if p.Score() != 0 {
		t.Errorf("score = %d, want 0", p.Score())
	}
	if p.Ship() == nil {
		t.Fatal("no ship at session start")
	}
	if got := p.Ship().Pos; got != testBounds.Center() {
		t.Errorf("ship at %v, want screen center %v", got, testBounds.Center())
	}
}

func TestBulletDestroysAsteroidAndScores(t *testing.T) {
	s := testSession(t, []rules.Level{{SmallWeight: 1, MaxTotal: 1}})
	ship := s.Player().Ship()
	a := spawnOne(t, s, ship.Pos)

	s.Update(tick, entity.Controls{Fire: true})
	if !a.IsDestroyed() {
		t.Fatal("bullet did not destroy the asteroid")
	}
	if got := s.Player().Score(); got != ScoreSmallAsteroid {
		t.Errorf("score = %d, want %d for a small asteroid", got, ScoreSmallAsteroid)
	}
	if s.Player().Ship() == nil {
		t.Error("ship died in the same tick the bullet landed")
	}
}

func TestLevelClearBonus(t *testing.T) {
	s := testSession(t, []rules.Level{{SmallWeight: 1, MaxTotal: 1}})
	ship := s.Player().Ship()
	spawnOne(t, s, ship.Pos)

	s.Update(tick, entity.Controls{Fire: true})
	// Next tick compacts the destroyed asteroid and fires the
	// level transition.
	s.Update(tick, entity.Controls{})
	want := ScoreSmallAsteroid + ScoreLevelCleared
	if got := s.Player().Score(); got != want {
		t.Errorf("score = %d, want %d after level clear", got, want)
	}
}

func TestAsteroidKillsShipAndRespawns(t *testing.T) {
	s := testSession(t, []rules.Level{{SmallWeight: 1, MaxTotal: 1}})
	p := s.Player()
	a := spawnOne(t, s, p.Ship().Pos)

	s.Update(tick, entity.Controls{})
	if p.Ship() != nil {
		t.Fatal("ship survived direct contact")
	}
	if p.Lives() != InitialLives-1 {
		t.Fatalf("lives = %d, want %d", p.Lives(), InitialLives-1)
	}
	if a.IsDestroyed() {
		t.Error("asteroid should survive ramming the ship")
	}

	// Keep the asteroid away from the respawn point.
	a.Pos = geometry.Vector{X: 100, Y: 100}

	for i := 0; i < 185; i++ {
		s.Update(tick, entity.Controls{})
	}
	if p.Ship() == nil {
		t.Fatal("ship did not respawn")
	}
	if got := p.Ship().Pos; got != testBounds.Center() {
		t.Errorf("respawned at %v, want center %v", got, testBounds.Center())
	}
	if !p.Invincible() {
		t.Error("no grace period after respawn")
	}

	for i := 0; i < 130; i++ {
		s.Update(tick, entity.Controls{})
	}
	if p.Invincible() {
		t.Error("grace period never expired")
	}
}

func TestInvincibleShipSurvivesContact(t *testing.T) {
	s := testSession(t, []rules.Level{{SmallWeight: 1, MaxTotal: 1}})
	p := s.Player()
	a := spawnOne(t, s, p.Ship().Pos)

	s.Update(tick, entity.Controls{})
	a.Pos = geometry.Vector{X: 100, Y: 100}
	for i := 0; i < 185; i++ {
		s.Update(tick, entity.Controls{})
	}
	if p.Ship() == nil || !p.Invincible() {
		t.Fatal("bad respawn state")
	}

	a.Pos = p.Ship().Pos
	s.Update(tick, entity.Controls{})
	if p.Ship() == nil {
		t.Error("invincible ship was killed")
	}
	if p.Lives() != InitialLives-1 {
		t.Errorf("lives = %d, want %d", p.Lives(), InitialLives-1)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	s := testSession(t, []rules.Level{{SmallWeight: 1, MaxTotal: 1}})
	p := s.Player()
	a := spawnOne(t, s, p.Ship().Pos)

	for life := 0; life < InitialLives; life++ {
		a.Pos = p.Ship().Pos
		s.Update(tick, entity.Controls{})
		if p.Ship() != nil {
			t.Fatalf("life %d: ship survived contact", life)
		}
		if life == InitialLives-1 {
			break
		}
		a.Pos = geometry.Vector{X: 100, Y: 100}
		for i := 0; i < 185; i++ { // respawn
			s.Update(tick, entity.Controls{})
		}
		for i := 0; i < 130; i++ { // grace period
			s.Update(tick, entity.Controls{})
		}
		if p.Ship() == nil || p.Invincible() {
			t.Fatalf("life %d: bad state before next contact", life)
		}
	}

	if !p.GameOver() {
		t.Fatal("no game over after last life")
	}
	if p.Lives() != 0 {
		t.Errorf("lives = %d at game over, want 0", p.Lives())
	}

	// The session is inert until restarted.
	s.Update(tick, entity.Controls{Fire: true})
	if s.Player().Ship() != nil {
		t.Error("session still running after game over")
	}

	s.Update(tick, entity.Controls{Restart: true})
	fresh := s.Player()
	if fresh == p {
		t.Fatal("restart did not replace the player")
	}
	if fresh.Lives() != InitialLives || fresh.Score() != 0 {
		t.Errorf("restarted with %d lives, score %d", fresh.Lives(), fresh.Score())
	}
	if s.Manager().LevelNum() != 1 {
		t.Errorf("restarted at level %d, want 1", s.Manager().LevelNum())
	}
	if len(s.Manager().Asteroids()) != 0 {
		t.Error("old asteroids survived the restart")
	}
}

func TestRestartIgnoredMidGame(t *testing.T) {
	s := testSession(t, []rules.Level{{SmallWeight: 1, MaxTotal: 1}})
	s.Player().AddScore(30)
	s.Update(tick, entity.Controls{Restart: true})
	if s.Player().Score() != 30 {
		t.Error("restart reset a running session")
	}
}
