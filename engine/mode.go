package engine

import (
	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/core"
)

// ModePreset is the immutable per-session configuration of a game mode
type ModePreset struct {
	Mode core.GameMode

	// MoveInterval is seconds per grid step
	MoveInterval float64

	// SpawnBurst is how many spawns are attempted per consumption
	SpawnBurst int

	// InitialItems is the item count seeded at reset
	InitialItems int

	// Despawns enables the per-tick timeout sweep and minimum top-up
	Despawns bool
}

var presets = [core.GameModeCount]ModePreset{
	core.ModeRegular: {
		Mode:         core.ModeRegular,
		MoveInterval: constant.MoveIntervalRegular,
		SpawnBurst:   1,
		InitialItems: 1,
		Despawns:     false,
	},
	core.ModeAccelerated: {
		Mode:         core.ModeAccelerated,
		MoveInterval: constant.MoveIntervalAccelerated,
		SpawnBurst:   constant.AcceleratedSpawnBurst,
		InitialItems: constant.AcceleratedInitialItems,
		Despawns:     true,
	},
}

// Preset returns the preset for m, falling back to Regular for unknown modes
func Preset(m core.GameMode) ModePreset {
	if m < core.GameModeCount {
		return presets[m]
	}
	return presets[core.ModeRegular]
}
