package engine

import "github.com/lixenwraith/term-snake/core"

// Item is a consumable on the board
type Item struct {
	Cell core.Cell
	Kind core.ItemKind

	// SpawnTime is the game time the item appeared
	SpawnTime float64

	// DespawnAfter is the lifetime in seconds; only honored by modes with despawning
	DespawnAfter float64
}

// Expired reports whether the item has outlived its deadline at game time now
func (it Item) Expired(now float64) bool {
	return now-it.SpawnTime >= it.DespawnAfter
}
