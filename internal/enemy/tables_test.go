package enemy

import (
	"testing"

	"hmactors/internal/actor"
	"hmactors/internal/component"
	"hmactors/internal/system"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestTablesCoverEverySource(t *testing.T) {
	// Deku nuts always stun, shields never hurt.
	for _, table := range []*component.DamageTable{&RatDamageTable, &PolsVoiceDamageTable} {
		assert.Equal(t, component.EffectStun, table.Lookup(component.SourceDekuNut).Effect)
		assert.Equal(t, component.DamageEntry{}, table.Lookup(component.SourceShield))
	}
	assert.Equal(t, 10, PolsVoiceDamageTable.Lookup(component.SourceLightArrow).Damage)
	assert.Equal(t, 6, RatDamageTable.Lookup(component.SourceGiantsKnife).Damage)
}

// Health only ever moves by the table damage of a default-effect hit, never
// goes negative, and death is reported exactly when it reaches zero.
func TestHitResolutionAgainstTables(t *testing.T) {
	tables := []*component.DamageTable{&RatDamageTable, &PolsVoiceDamageTable}
	rapid.Check(t, func(t *rapid.T) {
		table := tables[rapid.IntRange(0, len(tables)-1).Draw(t, "table")]
		src := component.AttackSource(rapid.IntRange(0, int(component.NumAttackSources)-1).Draw(t, "source"))
		health := rapid.IntRange(1, 12).Draw(t, "health")

		a := actor.New(actor.KindRat, 0, actor.PosRot{})
		a.Health = component.Health{Current: health, Max: 12}
		e := table.Lookup(src)
		r := system.ResolveHit(a, table, component.Hit{Source: src})

		switch e.Effect {
		case component.EffectDefault:
			want := max(health-e.Damage, 0)
			if a.Health.Current != want {
				t.Fatalf("%s: health %d, want %d", src, a.Health.Current, want)
			}
			if (r == system.ReactDeath) != (want == 0) {
				t.Fatalf("%s: reaction %s at health %d", src, r, want)
			}
		default:
			if a.Health.Current != health {
				t.Fatalf("%s: %s hit changed health %d -> %d", src, r, health, a.Health.Current)
			}
			if r == system.ReactDeath || r == system.ReactDamaged {
				t.Fatalf("%s: reaction %s from a non-damaging hit", src, r)
			}
		}
	})
}

// Rows whose effect is not default carry a damage value that is never
// applied: only default hits subtract health.
func TestNonDefaultRowsKeepHealth(t *testing.T) {
	cases := []struct {
		name   string
		src    component.AttackSource
		health int
		want   system.Reaction
	}{
		{"fire magic", component.SourceFireMagic, 4, system.ReactNone},
		{"light magic", component.SourceLightMagic, 4, system.ReactNone},
		{"hammer jump", component.SourceHammerJump, 4, system.ReactNone},
		{"boomerang stuns", component.SourceBoomerang, 4, system.ReactStun},
		{"boomerang at last point", component.SourceBoomerang, 1, system.ReactNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := RatDamageTable.Lookup(tc.src)
			assert.NotZero(t, e.Damage, "row carries damage")
			assert.NotEqual(t, component.EffectDefault, e.Effect)

			a := actor.New(actor.KindRat, 0, actor.PosRot{})
			a.Health = component.Health{Current: tc.health, Max: ratHealth}
			assert.Equal(t, tc.want, system.ResolveHit(a, &RatDamageTable, component.Hit{Source: tc.src}))
			assert.Equal(t, tc.health, a.Health.Current)
		})
	}
}
