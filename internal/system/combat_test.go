package system

import (
	"testing"

	"hmactors/internal/actor"
	"hmactors/internal/component"
	"hmactors/internal/vmath"

	"github.com/stretchr/testify/assert"
)

func testTable() *component.DamageTable {
	var t component.DamageTable
	t[component.SourceDekuNut] = component.DamageEntry{Damage: 0, Effect: component.EffectStun}
	t[component.SourceKokiriSword] = component.DamageEntry{Damage: 2, Effect: component.EffectDefault}
	t[component.SourceFireMagic] = component.DamageEntry{Damage: 4, Effect: component.EffectNone}
	return &t
}

func TestResolveHit(t *testing.T) {
	cases := []struct {
		name       string
		health     int
		src        component.AttackSource
		want       Reaction
		wantHealth int
		wantFilter actor.FilterColor
	}{
		{"stun with health to spare", 4, component.SourceDekuNut, ReactStun, 4, actor.FilterBlue},
		{"stun on last point is ignored", 1, component.SourceDekuNut, ReactNone, 1, actor.FilterNone},
		{"sword damages", 4, component.SourceKokiriSword, ReactDamaged, 2, actor.FilterRed},
		{"sword kills", 2, component.SourceKokiriSword, ReactDeath, 0, actor.FilterRed},
		{"overkill clamps", 1, component.SourceKokiriSword, ReactDeath, 0, actor.FilterRed},
		{"no effect", 4, component.SourceFireMagic, ReactNone, 4, actor.FilterNone},
		{"unlisted source", 4, component.SourceHookshot, ReactNone, 4, actor.FilterNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestActor(vmath.Vec3f{})
			a.Health = component.Health{Current: tc.health, Max: 4}
			got := ResolveHit(a, testTable(), component.Hit{Source: tc.src})
			assert.Equal(t, tc.want, got, got.String())
			assert.Equal(t, tc.wantHealth, a.Health.Current)
			assert.Equal(t, tc.wantFilter, a.ColorFilter.Color)
		})
	}
}

func TestColorFilterRunsOut(t *testing.T) {
	a := newTestActor(vmath.Vec3f{})
	SetColorFilter(a, actor.FilterRed, 200, 2)
	TickColorFilter(a)
	assert.Equal(t, 1, a.ColorFilter.Timer)
	assert.Equal(t, actor.FilterRed, a.ColorFilter.Color)
	TickColorFilter(a)
	assert.Equal(t, actor.ColorFilter{}, a.ColorFilter)
	TickColorFilter(a)
	assert.Equal(t, 0, a.ColorFilter.Timer)
}
