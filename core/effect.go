package core

// Effect identifies one of the four status-effect timers
type Effect uint8

const (
	EffectSelfImmunity  Effect = iota // May cross own body
	EffectWallPass                    // Wraps at grid edges
	EffectCannotConsume               // Poison debuff
	EffectMoveFreeze                  // Short stop after poison
	EffectCount
)

var effectNames = [EffectCount]string{
	EffectSelfImmunity:  "self-immunity",
	EffectWallPass:      "wall-pass",
	EffectCannotConsume: "cannot-consume",
	EffectMoveFreeze:    "move-freeze",
}

func (e Effect) String() string {
	if e < EffectCount {
		return effectNames[e]
	}
	return "unknown"
}
