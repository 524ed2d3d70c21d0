// internal/sound/tone.go
package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave — форма сигнала генератора
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// Tone — описание короткого синтезированного звука
type Tone struct {
	FreqFrom float64
	FreqTo   float64
	Length   time.Duration
	Wave     Wave
	Volume   float64 // 0..1
}

// toneStreamer играет тон со сдвигом частоты от FreqFrom к FreqTo и линейным затуханием.
type toneStreamer struct {
	tone    Tone
	rate    beep.SampleRate
	rng     *rand.Rand
	phase   float64
	pos     int
	samples int
}

func newToneStreamer(t Tone, rate beep.SampleRate) *toneStreamer {
	return &toneStreamer{
		tone:    t,
		rate:    rate,
		rng:     rand.New(rand.NewSource(int64(t.FreqFrom*1000) + int64(t.Length))),
		samples: rate.N(t.Length),
	}
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.samples {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.samples)
		freq := s.tone.FreqFrom + (s.tone.FreqTo-s.tone.FreqFrom)*progress

		var val float64
		switch s.tone.Wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			val = 1
			if s.phase >= 0.5 {
				val = -1
			}
		case WaveNoise:
			val = s.rng.Float64()*2 - 1
		}
		val *= 1 - progress

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *toneStreamer) Err() error { return nil }

// withVolume оборачивает поток в effects.Volume; 0 и меньше — тишина.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
