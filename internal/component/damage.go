package component

// AttackSource identifies what landed a hit. The numeric value is also the
// bit index of the source in collider damage flags.
type AttackSource uint8

const (
	SourceDekuNut AttackSource = iota
	SourceDekuStick
	SourceSlingshot
	SourceExplosive
	SourceBoomerang
	SourceArrow
	SourceHammerSwing
	SourceHookshot
	SourceKokiriSword
	SourceMasterSword
	SourceGiantsKnife
	SourceFireArrow
	SourceIceArrow
	SourceLightArrow
	SourceUnkArrow1
	SourceUnkArrow2
	SourceUnkArrow3
	SourceFireMagic
	SourceIceMagic
	SourceLightMagic
	SourceShield
	SourceMirrorRay
	SourceKokiriSpin
	SourceGiantSpin
	SourceMasterSpin
	SourceKokiriJump
	SourceGiantJump
	SourceMasterJump
	SourceUnknown1
	SourceUnblockable
	SourceHammerJump
	SourceUnknown2

	NumAttackSources
)

var sourceNames = [NumAttackSources]string{
	"deku_nut", "deku_stick", "slingshot", "explosive", "boomerang", "arrow",
	"hammer_swing", "hookshot", "kokiri_sword", "master_sword", "giants_knife",
	"fire_arrow", "ice_arrow", "light_arrow", "unk_arrow_1", "unk_arrow_2",
	"unk_arrow_3", "fire_magic", "ice_magic", "light_magic", "shield",
	"mirror_ray", "kokiri_spin", "giant_spin", "master_spin", "kokiri_jump",
	"giant_jump", "master_jump", "unknown_1", "unblockable", "hammer_jump",
	"unknown_2",
}

// Flag returns the damage-flag bit for the source (ice arrow is 0x1000).
func (s AttackSource) Flag() uint32 { return 1 << s }

func (s AttackSource) String() string {
	if s < NumAttackSources {
		return sourceNames[s]
	}
	return "invalid"
}

// ParseAttackSource maps a name produced by String back to its source.
func ParseAttackSource(name string) (AttackSource, bool) {
	for i, n := range sourceNames {
		if n == name {
			return AttackSource(i), true
		}
	}
	return 0, false
}

// DamageEffect selects how a creature reacts to a hit.
type DamageEffect uint8

const (
	EffectNone DamageEffect = iota
	EffectStun
	EffectDefault
)

// DamageEntry is one row of a damage table.
type DamageEntry struct {
	Damage int
	Effect DamageEffect
}

// DamageTable maps every attack source to its damage and reaction.
type DamageTable [NumAttackSources]DamageEntry

// Lookup returns the entry for src; unknown sources deal nothing.
func (t *DamageTable) Lookup(src AttackSource) DamageEntry {
	if src >= NumAttackSources {
		return DamageEntry{}
	}
	return t[src]
}
