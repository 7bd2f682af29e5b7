package actor

import (
	"testing"

	"hmactors/internal/ecs"
	"hmactors/internal/vmath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedActiveProjectile(t *testing.T) {
	s := NewShared()
	caster := ecs.EntityID(1<<32 | 1)

	assert.False(t, s.HasActiveProjectile(caster))
	s.SetActiveProjectile(caster, true)
	assert.True(t, s.HasActiveProjectile(caster))
	s.ClearActiveProjectile(caster)
	assert.False(t, s.HasActiveProjectile(caster))
	// Clearing again, or clearing a caster never seen, is harmless.
	s.ClearActiveProjectile(caster)
	s.ClearActiveProjectile(ecs.NilEntity)

	var zero Shared
	zero.SetActiveProjectile(caster, true)
	assert.True(t, zero.HasActiveProjectile(caster))
}

func TestConsumeSong(t *testing.T) {
	s := NewShared()
	assert.False(t, s.ConsumeSong())
	s.SongPlayed = true
	assert.True(t, s.ConsumeSong())
	assert.False(t, s.ConsumeSong())
}

func TestRefreshTargetCache(t *testing.T) {
	tgt := NewTarget(vmath.Vec3f{X: 30, Y: 40, Z: 0}, 48)
	a := New(KindRat, 0, PosRot{})
	a.RefreshTargetCache(tgt)

	assert.Equal(t, 30.0, a.XZDistToTarget)
	assert.Equal(t, 2500.0, a.XYZDistToTargetSq)
	assert.Equal(t, int16(0x4000), a.YawTowardsTarget)
	assert.Equal(t, 80.0, tgt.Collar().Y)
	assert.Equal(t, 95.0, tgt.Head().Y)
}

func TestKillIsDeferredRequest(t *testing.T) {
	a := New(KindRat, 0, PosRot{})
	require.False(t, a.Killed())
	a.Kill()
	assert.True(t, a.Killed())
}

func TestParseKind(t *testing.T) {
	for k := KindWizFire; k < numKinds; k++ {
		got, ok := ParseKind(k.String())
		require.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}
	_, ok := ParseKind("none")
	assert.False(t, ok)
}
