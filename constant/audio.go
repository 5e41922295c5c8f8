package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// SpeakerBufferDuration sets speaker latency
	SpeakerBufferDuration = 50 * time.Millisecond
)

// Apple Sound (Plain item)
const (
	AppleSoundDuration = 90 * time.Millisecond
	AppleSoundAttack   = 5 * time.Millisecond
	AppleSoundRelease  = 60 * time.Millisecond
)

// Poison Sound
const (
	PoisonSoundDuration = 220 * time.Millisecond
	PoisonSoundAttack   = 10 * time.Millisecond
	PoisonSoundRelease  = 120 * time.Millisecond
)

// Golden Sound (Boost, SuperBoost)
const (
	GoldenSoundNote1Duration = 80 * time.Millisecond
	GoldenSoundNote2Duration = 260 * time.Millisecond
	GoldenSoundAttack        = 5 * time.Millisecond
	GoldenSoundNote1Release  = 40 * time.Millisecond
	GoldenSoundNote2Release  = 200 * time.Millisecond
)

// Purple Sound (Teleport)
const (
	PurpleSoundDuration = 300 * time.Millisecond
	PurpleSoundAttack   = 150 * time.Millisecond
	PurpleSoundRelease  = 150 * time.Millisecond
)

// Game Over Sound
const (
	GameOverSoundNoteDuration = 180 * time.Millisecond
	GameOverSoundAttack       = 5 * time.Millisecond
	GameOverSoundRelease      = 120 * time.Millisecond
)

// Pause Sound
const (
	PauseSoundDuration = 120 * time.Millisecond
	PauseSoundAttack   = 5 * time.Millisecond
	PauseSoundRelease  = 80 * time.Millisecond
)
