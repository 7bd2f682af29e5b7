package enemy

import "hmactors/internal/component"

func dmg(damage int, effect component.DamageEffect) component.DamageEntry {
	return component.DamageEntry{Damage: damage, Effect: effect}
}

const (
	none = component.EffectNone
	stun = component.EffectStun
	def  = component.EffectDefault
)

// RatDamageTable is how the rat reacts to each attack source.
var RatDamageTable = component.DamageTable{
	component.SourceDekuNut:     dmg(0, stun),
	component.SourceDekuStick:   dmg(2, def),
	component.SourceSlingshot:   dmg(1, def),
	component.SourceExplosive:   dmg(2, def),
	component.SourceBoomerang:   dmg(1, stun),
	component.SourceArrow:       dmg(2, def),
	component.SourceHammerSwing: dmg(4, def),
	component.SourceHookshot:    dmg(4, def),
	component.SourceKokiriSword: dmg(2, def),
	component.SourceMasterSword: dmg(4, def),
	component.SourceGiantsKnife: dmg(6, def),
	component.SourceFireArrow:   dmg(4, def),
	component.SourceIceArrow:    dmg(4, def),
	component.SourceLightArrow:  dmg(4, def),
	component.SourceUnkArrow1:   dmg(2, def),
	component.SourceUnkArrow2:   dmg(2, def),
	component.SourceUnkArrow3:   dmg(2, def),
	component.SourceFireMagic:   dmg(4, none),
	component.SourceIceMagic:    dmg(4, def),
	component.SourceLightMagic:  dmg(4, none),
	component.SourceShield:      dmg(0, none),
	component.SourceMirrorRay:   dmg(0, none),
	component.SourceKokiriSpin:  dmg(2, def),
	component.SourceGiantSpin:   dmg(8, def),
	component.SourceMasterSpin:  dmg(4, def),
	component.SourceKokiriJump:  dmg(2, def),
	component.SourceGiantJump:   dmg(8, def),
	component.SourceMasterJump:  dmg(4, def),
	component.SourceUnknown1:    dmg(0, none),
	component.SourceUnblockable: dmg(0, none),
	component.SourceHammerJump:  dmg(4, none),
	component.SourceUnknown2:    dmg(0, none),
}

// PolsVoiceDamageTable is how Pols Voice reacts to each attack source.
var PolsVoiceDamageTable = component.DamageTable{
	component.SourceDekuNut:     dmg(0, stun),
	component.SourceDekuStick:   dmg(3, def),
	component.SourceSlingshot:   dmg(2, def),
	component.SourceExplosive:   dmg(4, def),
	component.SourceBoomerang:   dmg(0, stun),
	component.SourceArrow:       dmg(5, def),
	component.SourceHammerSwing: dmg(3, def),
	component.SourceHookshot:    dmg(0, stun),
	component.SourceKokiriSword: dmg(2, def),
	component.SourceMasterSword: dmg(3, def),
	component.SourceGiantsKnife: dmg(4, def),
	component.SourceFireArrow:   dmg(5, def),
	component.SourceIceArrow:    dmg(5, def),
	component.SourceLightArrow:  dmg(10, def),
	component.SourceUnkArrow1:   dmg(5, def),
	component.SourceUnkArrow2:   dmg(5, def),
	component.SourceUnkArrow3:   dmg(5, def),
	component.SourceFireMagic:   dmg(0, none),
	component.SourceIceMagic:    dmg(0, none),
	component.SourceLightMagic:  dmg(0, none),
	component.SourceShield:      dmg(0, none),
	component.SourceMirrorRay:   dmg(0, none),
	component.SourceKokiriSpin:  dmg(2, def),
	component.SourceGiantSpin:   dmg(4, def),
	component.SourceMasterSpin:  dmg(3, def),
	component.SourceKokiriJump:  dmg(3, def),
	component.SourceGiantJump:   dmg(5, def),
	component.SourceMasterJump:  dmg(4, def),
	component.SourceUnknown1:    dmg(0, none),
	component.SourceUnblockable: dmg(0, none),
	component.SourceHammerJump:  dmg(4, def),
	component.SourceUnknown2:    dmg(0, none),
}
