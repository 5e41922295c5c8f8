package engine

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/event"
)

// Spawner places items and applies the mode's replenishment policy
type Spawner struct {
	rng   Random
	queue *event.EventQueue
}

func NewSpawner(rng Random, queue *event.EventQueue) *Spawner {
	return &Spawner{rng: rng, queue: queue}
}

// TrySpawn places one item by rejection sampling
// Returns false without mutation when the board is at MaxItems or no free cell
// was found within SpawnMaxAttempts draws
func (sp *Spawner) TrySpawn(s *State, now float64) bool {
	if len(s.Items) >= constant.MaxItems {
		return false
	}

	for attempt := 0; attempt < constant.SpawnMaxAttempts; attempt++ {
		c := core.Cell{Col: sp.rng.Intn(s.Width), Row: sp.rng.Intn(s.Height)}
		if !s.IsFree(c) {
			continue
		}

		it := Item{
			Cell:         c,
			Kind:         sp.RollKind(),
			SpawnTime:    now,
			DespawnAfter: float64(RangeInclusive(sp.rng, constant.DespawnMinSeconds, constant.DespawnMaxSeconds)),
		}
		s.Items = append(s.Items, it)
		sp.queue.Emit(event.EventItemSpawned, &event.ItemPayload{Kind: it.Kind, Cell: it.Cell}, s.Frame)
		return true
	}
	return false
}

// RollKind draws an item kind; rare kinds are checked first
func (sp *Spawner) RollKind() core.ItemKind {
	roll := RangeInclusive(sp.rng, 1, 100)
	switch {
	case roll <= constant.BoostRollMax:
		return core.ItemBoost
	case roll <= constant.SuperBoostRollMax:
		return core.ItemSuperBoost
	case roll <= constant.PoisonRollMax:
		return core.ItemPoison
	case roll <= constant.TeleportRollMax:
		return core.ItemTeleport
	default:
		return core.ItemPlain
	}
}

// Replenish runs the post-consumption spawn burst for the state's mode
func (sp *Spawner) Replenish(s *State) {
	for i := 0; i < s.Preset.SpawnBurst && len(s.Items) < constant.MaxItems; i++ {
		sp.TrySpawn(s, s.GameTime)
	}
}

// Sweep removes timed-out items and tops the board up to MinItems
// Top-up stops at the first failed spawn and resumes next tick
func (sp *Spawner) Sweep(s *State) {
	kept := s.Items[:0]
	for _, it := range s.Items {
		if it.Expired(s.GameTime) {
			sp.queue.Emit(event.EventItemDespawned, &event.ItemPayload{Kind: it.Kind, Cell: it.Cell}, s.Frame)
			continue
		}
		kept = append(kept, it)
	}
	s.Items = kept

	for len(s.Items) < constant.MinItems {
		if !sp.TrySpawn(s, s.GameTime) {
			break
		}
	}
}

// Seed places the initial items for a fresh session at time zero
func (sp *Spawner) Seed(s *State) {
	for i := 0; i < s.Preset.InitialItems; i++ {
		sp.TrySpawn(s, 0)
	}
}

// FreeCells lists every cell free of snake and items in row-major order
func (sp *Spawner) FreeCells(s *State) []core.Cell {
	taken := mapset.New[core.Cell]()
	for _, c := range s.Snake {
		taken.Put(c)
	}
	for _, it := range s.Items {
		taken.Put(it.Cell)
	}

	free := make([]core.Cell, 0, s.Width*s.Height-taken.Size())
	for row := 0; row < s.Height; row++ {
		for col := 0; col < s.Width; col++ {
			c := core.Cell{Col: col, Row: row}
			if !taken.Has(c) {
				free = append(free, c)
			}
		}
	}
	return free
}

// RandomFreeCell picks uniformly among free cells
func (sp *Spawner) RandomFreeCell(s *State) (core.Cell, bool) {
	free := sp.FreeCells(s)
	if len(free) == 0 {
		return core.Cell{}, false
	}
	return free[sp.rng.Intn(len(free))], true
}
