package actor

// Kind selects the behaviour an actor runs.
type Kind uint8

const (
	KindNone Kind = iota
	KindWizFire
	KindCaster
	KindRat
	KindPolsVoice
	KindJumptoggle

	numKinds
)

var kindNames = [numKinds]string{"none", "wiz_fire", "caster", "rat", "pols_voice", "jumptoggle"}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind maps a config name back to its kind.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if i != int(KindNone) && n == name {
			return Kind(i), true
		}
	}
	return KindNone, false
}
