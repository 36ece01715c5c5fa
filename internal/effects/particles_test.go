package effects

import (
	"math/rand"
	"testing"

	"github.com/arcadeworks/steroids/internal/entity"
	"github.com/arcadeworks/steroids/internal/geometry"
)

func newTestParticles() *Particles {
	return NewParticles(rand.New(rand.NewSource(3)))
}

func TestBurstCounts(t *testing.T) {
	tests := []struct {
		anim string
		want int
	}{
		{entity.AnimPlayerDead, deathCount},
		{entity.AnimExplosion, explodeCount},
		{entity.AnimPlayerTeleport, teleportCount},
		{"UNKNOWN", 0},
	}
	for _, tt := range tests {
		ps := newTestParticles()
		ps.PlayAnimation(tt.anim, geometry.Vector{X: 100, Y: 100})
		if ps.Live() != tt.want {
			t.Errorf("%s: %d particles, want %d", tt.anim, ps.Live(), tt.want)
		}
	}
}

func TestParticlesExpire(t *testing.T) {
	ps := newTestParticles()
	ps.PlayAnimation(entity.AnimPlayerDead, geometry.Vector{X: 100, Y: 100})

	// Lifetimes are jittered but never exceed the base value.
	for i := 0; i < int(deathLife*60)+1; i++ {
		ps.Update(1.0 / 60)
	}
	if ps.Live() != 0 {
		t.Errorf("%d particles alive past max lifetime", ps.Live())
	}
}

func TestParticlesDisperse(t *testing.T) {
	ps := newTestParticles()
	origin := geometry.Vector{X: 100, Y: 100}
	ps.PlayAnimation(entity.AnimExplosion, origin)

	for i := 0; i < 6; i++ {
		ps.Update(1.0 / 60)
	}
	moved := 0
	for _, p := range ps.live {
		if p.pos.Distance(origin) > 0.5 {
			moved++
		}
	}
	if moved != len(ps.live) {
		t.Errorf("%d of %d particles moved away from the burst origin", moved, len(ps.live))
	}
}
