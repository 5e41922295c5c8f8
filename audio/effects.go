package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    uint32
}

// NewOscillator creates a wave source lasting duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    0x9e3779b9,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			o.noise ^= o.noise << 13
			o.noise ^= o.noise >> 17
			o.noise ^= o.noise << 5
			val = float64(o.noise)/float64(math.MaxUint32)*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope wraps s with an attack/sustain/release gain curve
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = total - att
		if rel < 0 {
			att, rel = total, 0
		}
	}
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: total - rel,
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		switch {
		case e.position < e.attack:
			vol = float64(e.position) / float64(e.attack)
		case e.release > 0 && e.position >= e.releaseStart:
			vol = float64(e.total-e.position) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; math.Log2(0) is -Inf so zero maps to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, wave WaveType, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

func (cfg *AudioConfig) gain(st core.SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// CreateAppleSound generates a short bright blip for a plain item
func CreateAppleSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constant.AppleSoundDuration

	mixed := beep.Mix(
		newVolume(tone(659.25, WaveSine, d, constant.AppleSoundAttack, constant.AppleSoundRelease, rate), 0.7),
		newVolume(tone(1318.51, WaveSine, d, constant.AppleSoundAttack, constant.AppleSoundRelease/2, rate), 0.3),
	)
	return newVolume(mixed, cfg.gain(core.SoundApple))
}

// CreatePoisonSound generates a low sour buzz
func CreatePoisonSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constant.PoisonSoundDuration

	mixed := beep.Mix(
		newVolume(tone(146.83, WaveSaw, d, constant.PoisonSoundAttack, constant.PoisonSoundRelease, rate), 0.6),
		newVolume(tone(155.56, WaveSquare, d, constant.PoisonSoundAttack, constant.PoisonSoundRelease, rate), 0.25),
	)
	return newVolume(mixed, cfg.gain(core.SoundPoison))
}

// CreateGoldenSound generates a two-note chime for boosts
func CreateGoldenSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	seq := beep.Seq(
		tone(987.77, WaveSquare, constant.GoldenSoundNote1Duration, constant.GoldenSoundAttack, constant.GoldenSoundNote1Release, rate),
		tone(1318.51, WaveSquare, constant.GoldenSoundNote2Duration, constant.GoldenSoundAttack, constant.GoldenSoundNote2Release, rate),
	)
	return newVolume(seq, cfg.gain(core.SoundGolden)*0.5)
}

// CreatePurpleSound generates a breathy shimmer for teleport
func CreatePurpleSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constant.PurpleSoundDuration

	mixed := beep.Mix(
		newVolume(tone(0, WaveNoise, d, constant.PurpleSoundAttack, constant.PurpleSoundRelease, rate), 0.3),
		newVolume(tone(880, WaveSine, d, constant.PurpleSoundAttack, constant.PurpleSoundRelease, rate), 0.5),
	)
	return newVolume(mixed, cfg.gain(core.SoundPurple))
}

// CreateGameOverSound generates a descending three-note phrase
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constant.GameOverSoundNoteDuration

	notes := []float64{392.00, 329.63, 261.63}
	parts := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		parts[i] = tone(f, WaveSquare, d, constant.GameOverSoundAttack, constant.GameOverSoundRelease, rate)
	}
	return newVolume(beep.Seq(parts...), cfg.gain(core.SoundGameOver)*0.5)
}

// CreatePauseSound generates a soft tick for the resume countdown
func CreatePauseSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(440, WaveSine, constant.PauseSoundDuration, constant.PauseSoundAttack, constant.PauseSoundRelease, rate)
	return newVolume(s, cfg.gain(core.SoundPause))
}

// GetSoundEffect returns the streamer for st, or nil when unknown
func GetSoundEffect(st core.SoundType, cfg *AudioConfig) beep.Streamer {
	switch st {
	case core.SoundApple:
		return CreateAppleSound(cfg)
	case core.SoundPoison:
		return CreatePoisonSound(cfg)
	case core.SoundGolden:
		return CreateGoldenSound(cfg)
	case core.SoundPurple:
		return CreatePurpleSound(cfg)
	case core.SoundGameOver:
		return CreateGameOverSound(cfg)
	case core.SoundPause:
		return CreatePauseSound(cfg)
	default:
		return nil
	}
}
