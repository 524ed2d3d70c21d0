package sound

import (
	"testing"
	"time"

	"go-survivor/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s *toneStreamer) (int, [][2]float64) {
	t.Helper()
	var all [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		all = append(all, buf[:n]...)
		if !ok || n < len(buf) {
			return len(all), all
		}
	}
}

func TestToneStreamerLength(t *testing.T) {
	tone := Tone{FreqFrom: 440, FreqTo: 440, Length: 100 * time.Millisecond, Wave: WaveSine, Volume: 1}
	s := newToneStreamer(tone, sampleRate)

	n, _ := drain(t, s)
	assert.Equal(t, sampleRate.N(100*time.Millisecond), n)

	n, ok := s.Stream(make([][2]float64, 16))
	assert.Equal(t, 0, n)
	assert.False(t, ok)
}

func TestToneStreamerStaysInRange(t *testing.T) {
	for _, w := range []Wave{WaveSine, WaveSquare, WaveNoise} {
		tone := Tone{FreqFrom: 200, FreqTo: 2000, Length: 50 * time.Millisecond, Wave: w, Volume: 1}
		_, samples := drain(t, newToneStreamer(tone, sampleRate))
		require.NotEmpty(t, samples)
		for _, smp := range samples {
			assert.LessOrEqual(t, smp[0], 1.0)
			assert.GreaterOrEqual(t, smp[0], -1.0)
			assert.Equal(t, smp[0], smp[1])
		}
	}
}

func TestToneStreamerFadesOut(t *testing.T) {
	tone := Tone{FreqFrom: 100, FreqTo: 100, Length: 200 * time.Millisecond, Wave: WaveSquare, Volume: 1}
	_, samples := drain(t, newToneStreamer(tone, sampleRate))

	assert.InDelta(t, 1.0, samples[0][0], 1e-9)
	assert.Less(t, abs(samples[len(samples)-1][0]), 0.01)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestToneFor(t *testing.T) {
	_, ok := ToneFor(event.ShotFired)
	assert.True(t, ok)
	_, ok = ToneFor(event.EnemySpawned)
	assert.False(t, ok, "spawns are silent")
}

func TestManagerNoopWhenUninitialized(t *testing.T) {
	m := NewManager(true)
	assert.NotPanics(t, func() {
		m.OnEvent(event.Event{Type: event.ShotFired})
		m.Play(Tone{FreqFrom: 440, Length: time.Millisecond})
		m.Close()
	})
	m.SetEnabled(false)
	assert.False(t, m.Enabled())
}

func TestEventsMatchToneTable(t *testing.T) {
	types := Events()
	require.Len(t, types, len(tones))
	for i, typ := range types {
		_, ok := ToneFor(typ)
		assert.True(t, ok, typ)
		if i > 0 {
			assert.Less(t, types[i-1], typ)
		}
	}
	assert.NotContains(t, types, event.EnemySpawned)
}

func TestAttachDetach(t *testing.T) {
	d := event.NewDispatcher()
	m := NewManager(true)

	assert.NotPanics(t, func() {
		m.Attach(d)
		m.Attach(d)
		d.Dispatch(event.Event{Type: event.PlayerHit})
		m.Detach(d)
		d.Dispatch(event.Event{Type: event.PlayerHit})
	})
}
