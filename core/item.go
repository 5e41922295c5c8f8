package core

// ItemKind identifies a consumable
type ItemKind uint8

const (
	ItemPlain      ItemKind = iota // Red apple: +1, grow
	ItemPoison                     // Brown apple: reverse, freeze, debuff
	ItemBoost                      // Orange: +2, grow, self immunity
	ItemSuperBoost                 // Yellow: Boost plus wall passthrough
	ItemTeleport                   // Purple: relocate snake
	ItemKindCount
)

var itemKindNames = [ItemKindCount]string{
	ItemPlain:      "plain",
	ItemPoison:     "poison",
	ItemBoost:      "boost",
	ItemSuperBoost: "superboost",
	ItemTeleport:   "teleport",
}

func (k ItemKind) String() string {
	if k < ItemKindCount {
		return itemKindNames[k]
	}
	return "unknown"
}
