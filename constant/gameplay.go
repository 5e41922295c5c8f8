package constant

// Board
const (
	// GridWidth is the playable column count (border cells excluded)
	GridWidth = 22

	// GridHeight is the playable row count (border cells excluded)
	GridHeight = 22

	// BorderOffset is the number of border cells drawn around the playable area
	BorderOffset = 1
)

// Movement cadence in seconds per grid step
const (
	MoveIntervalRegular     = 0.25
	MoveIntervalAccelerated = 0.20
)

// Status effect durations in seconds
const (
	// SelfImmunityDuration is granted by Boost and SuperBoost
	SelfImmunityDuration = 10.0

	// WallPassDuration is granted by SuperBoost
	WallPassDuration = 10.0

	// CannotConsumeDuration is the poison debuff length
	CannotConsumeDuration = 10.0

	// MoveFreezeDuration is the movement pause right after eating poison
	MoveFreezeDuration = 0.5

	// ResumeGraceDuration is the countdown after unpausing before the game moves again
	ResumeGraceDuration = 2.0

	// CuePulseInterval spaces the repeating poison and resume cues
	CuePulseInterval = 1.0
)

// Scoring
const (
	PlainScore = 1
	BoostScore = 2
)

// Item Spawning
const (
	// MaxItems caps the live item count in every mode
	MaxItems = 12

	// MinItems is the floor the accelerated despawn sweep tops up to
	MinItems = 2

	// SpawnMaxAttempts is the rejection sampling budget per spawn
	SpawnMaxAttempts = 100

	// AcceleratedSpawnBurst is the spawn count per consumption in accelerated mode
	AcceleratedSpawnBurst = 3

	// AcceleratedInitialItems is the item count seeded at accelerated reset
	AcceleratedInitialItems = 3

	// DespawnMinSeconds and DespawnMaxSeconds bound the uniform despawn deadline (inclusive)
	DespawnMinSeconds = 13
	DespawnMaxSeconds = 18
)

// Item kind roll thresholds over a 1..100 percentile draw, checked in this order
const (
	BoostRollMax      = 4  // 4%
	SuperBoostRollMax = 5  // 1%
	PoisonRollMax     = 15 // 10%
	TeleportRollMax   = 18 // 3%
	// Plain takes the remaining 82%
)
