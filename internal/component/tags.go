package component

// Tags is a bitset of actor traits the scene and viewer key off.
type Tags uint8

const (
	// TagHostile marks actors that attack the target.
	TagHostile Tags = 1 << iota
	// TagTargetable marks actors the target's strikes can land on.
	TagTargetable
	// TagProjectile marks projectile-like actors.
	TagProjectile
	// TagDecoration marks actors with no collision of their own.
	TagDecoration
)

// Has reports whether every bit in o is set.
func (t Tags) Has(o Tags) bool { return t&o == o }
