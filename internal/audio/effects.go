package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Effect lengths.
const (
	turnDuration      = 40 * time.Millisecond
	teleportDuration  = 220 * time.Millisecond
	eatNoteDuration   = 70 * time.Millisecond
	collisionDuration = 450 * time.Millisecond
)

// turnEffect is a short square blip.
func turnEffect(rate beep.SampleRate) beep.Streamer {
	osc := NewTone(660, turnDuration, WaveSquare, rate)
	return withVolume(NewEnvelope(osc, turnDuration, 2*time.Millisecond, 20*time.Millisecond, rate), 0.25)
}

// teleportEffect is a rising sine sweep.
func teleportEffect(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(300, 1500, teleportDuration, WaveSine, rate)
	return withVolume(NewEnvelope(osc, teleportDuration, 20*time.Millisecond, 80*time.Millisecond, rate), 0.6)
}

// eatEffect is a two-note chime, E5 then B5.
func eatEffect(rate beep.SampleRate) beep.Streamer {
	n1 := NewEnvelope(NewTone(659.25, eatNoteDuration, WaveSquare, rate),
		eatNoteDuration, 3*time.Millisecond, 30*time.Millisecond, rate)
	n2 := NewEnvelope(NewTone(987.77, 2*eatNoteDuration, WaveSquare, rate),
		2*eatNoteDuration, 3*time.Millisecond, 100*time.Millisecond, rate)
	return withVolume(beep.Seq(n1, n2), 0.3)
}

// collisionEffect is a noise burst over a falling low rumble.
func collisionEffect(rate beep.SampleRate) beep.Streamer {
	noise := NewEnvelope(NewTone(0, 120*time.Millisecond, WaveNoise, rate),
		120*time.Millisecond, 0, 100*time.Millisecond, rate)
	rumble := NewEnvelope(NewSweep(110, 40, collisionDuration, WaveSine, rate),
		collisionDuration, 5*time.Millisecond, 350*time.Millisecond, rate)
	return beep.Mix(withVolume(noise, 0.4), withVolume(rumble, 0.8))
}

// Effect returns a fresh streamer for s at the given sample rate and
// linear volume, or nil for sounds without an effect.
func Effect(s core.Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	var st beep.Streamer
	switch s {
	case core.SoundTurn:
		st = turnEffect(rate)
	case core.SoundTeleport:
		st = teleportEffect(rate)
	case core.SoundEat:
		st = eatEffect(rate)
	case core.SoundCollision:
		st = collisionEffect(rate)
	default:
		return nil
	}
	return withVolume(st, volume)
}
