package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const testRate = beep.SampleRate(8000)

// drain streams s to the end and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 256)
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestToneLengthAndRange(t *testing.T) {
	for _, w := range []Wave{WaveSine, WaveSquare, WaveNoise} {
		samples := drain(t, NewTone(440, 100*time.Millisecond, w, testRate))
		assert.Len(t, samples, testRate.N(100*time.Millisecond))
		for _, s := range samples {
			assert.GreaterOrEqual(t, s[0], -1.0)
			assert.LessOrEqual(t, s[0], 1.0)
			assert.Equal(t, s[0], s[1], "mono output")
		}
	}
}

func TestEnvelopeRamps(t *testing.T) {
	d := 100 * time.Millisecond
	env := NewEnvelope(NewTone(0, d, WaveSquare, testRate), d, 10*time.Millisecond, 10*time.Millisecond, testRate)
	samples := drain(t, env)
	require.Len(t, samples, testRate.N(d))

	assert.Equal(t, 0.0, samples[0][0], "attack starts silent")
	assert.Equal(t, 1.0, samples[len(samples)/2][0], "sustain at full level")
	assert.Less(t, samples[len(samples)-1][0], 0.01, "release ends near silence")
}

func TestEffects(t *testing.T) {
	for _, s := range []core.Sound{core.SoundTurn, core.SoundTeleport, core.SoundEat, core.SoundCollision} {
		st := Effect(s, testRate, 1)
		require.NotNil(t, st, s.String())
		samples := drain(t, st)
		assert.NotEmpty(t, samples, s.String())
		assert.Less(t, len(samples), testRate.N(time.Second), s.String())
	}

	assert.Nil(t, Effect(core.SoundNone, testRate, 1))
}

func TestEffectVolumeZeroIsSilent(t *testing.T) {
	for _, s := range drain(t, Effect(core.SoundEat, testRate, 0)) {
		assert.Equal(t, 0.0, s[0])
	}
}

func TestNewFallsBackToSilent(t *testing.T) {
	p := New(Config{Enabled: false, Volume: 1, SampleRate: 44100}, nil)
	assert.IsType(t, Silent{}, p)
	p.Play(core.SoundEat)
	assert.NoError(t, p.Close())
}
