package component

import (
	"testing"

	"hmactors/internal/vmath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumeACHitAtMostOnce(t *testing.T) {
	var c Collider
	_, ok := c.ConsumeACHit()
	require.False(t, ok)

	c.RegisterACHit(Hit{Source: SourceIceArrow})
	assert.True(t, c.ACHit())
	h, ok := c.ConsumeACHit()
	require.True(t, ok)
	assert.Equal(t, SourceIceArrow, h.Source)
	_, ok = c.ConsumeACHit()
	assert.False(t, ok)
}

func TestConsumeATAndBounce(t *testing.T) {
	var c Collider
	c.RegisterATHit()
	c.RegisterBounce()
	assert.True(t, c.ConsumeATHit())
	assert.False(t, c.ConsumeATHit())
	assert.True(t, c.ConsumeBounce())
	assert.False(t, c.ConsumeBounce())
}

func TestColliderContains(t *testing.T) {
	var c Collider
	c.SetDim(20, 30, -5)
	c.UpdateCylinder(vmath.Vec3f{X: 100, Y: 0, Z: 100})

	cases := []struct {
		name string
		p    vmath.Vec3f
		want bool
	}{
		{"center", vmath.Vec3f{X: 100, Y: 10, Z: 100}, true},
		{"edge", vmath.Vec3f{X: 120, Y: 10, Z: 100}, true},
		{"outside radius", vmath.Vec3f{X: 121, Y: 10, Z: 100}, false},
		{"below shift", vmath.Vec3f{X: 100, Y: -6, Z: 100}, false},
		{"above top", vmath.Vec3f{X: 100, Y: 26, Z: 100}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.Contains(tc.p, 0))
		})
	}
}

func TestColliderOverlaps(t *testing.T) {
	var a, b Collider
	a.SetDim(20, 30, 0)
	a.UpdateCylinder(vmath.Vec3f{X: 100, Z: 100})
	b.SetDim(10, 10, 0)

	b.UpdateCylinder(vmath.Vec3f{X: 130, Z: 100})
	assert.True(t, a.Overlaps(&b))
	assert.True(t, b.Overlaps(&a))

	b.UpdateCylinder(vmath.Vec3f{X: 131, Z: 100})
	assert.False(t, a.Overlaps(&b))

	b.UpdateCylinder(vmath.Vec3f{X: 100, Y: 31, Z: 100})
	assert.False(t, a.Overlaps(&b), "stacked above")
}

func TestAttackSourceFlagsAndNames(t *testing.T) {
	assert.Equal(t, uint32(0x1000), SourceIceArrow.Flag())
	assert.Equal(t, uint32(0x20), SourceArrow.Flag())
	for s := AttackSource(0); s < NumAttackSources; s++ {
		got, ok := ParseAttackSource(s.String())
		require.True(t, ok, s.String())
		assert.Equal(t, s, got)
	}
	_, ok := ParseAttackSource("banana")
	assert.False(t, ok)
}

func TestHealthApplyClamps(t *testing.T) {
	h := Health{Current: 3, Max: 4}
	assert.Equal(t, 1, h.Apply(2))
	assert.Equal(t, 0, h.Apply(5))
	assert.True(t, h.Dead())
}
