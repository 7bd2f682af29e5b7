package audio

// Cue identifies a sound effect.
type Cue uint8

const (
	CueNone Cue = iota
	CueBombExplosion
	CueIceFreeze
	CueIceMelt
	CueShieldReflect
	CueBurnOut
	CueCasterShoot
	CueRatCry
	CueRatDeath
	CueRatDamage
	CueStunFreeze
	CuePolsJump
	CuePolsBite
	CuePolsDeath
	CuePolsDamage
	CueTargetHurt
	CueTargetHurtKid
	CueBombBound
	CueBlockBound

	numCues
)

var cueNames = [numCues]string{
	"none", "bomb_explosion", "ice_freeze", "ice_melt", "shield_reflect",
	"burn_out", "caster_shoot", "rat_cry", "rat_death", "rat_damage",
	"stun_freeze", "pols_jump", "pols_bite", "pols_death", "pols_damage",
	"target_hurt", "target_hurt_kid", "bomb_bound", "block_bound",
}

func (c Cue) String() string {
	if c < numCues {
		return cueNames[c]
	}
	return "unknown"
}
