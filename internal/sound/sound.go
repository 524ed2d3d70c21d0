// internal/sound/sound.go
package sound

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"go-survivor/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

var tones = map[event.EventType]Tone{
	event.ShotFired:        {FreqFrom: 1400, FreqTo: 900, Length: 40 * time.Millisecond, Wave: WaveSquare, Volume: 0.08},
	event.PlayerHit:        {FreqFrom: 160, FreqTo: 70, Length: 120 * time.Millisecond, Wave: WaveNoise, Volume: 0.3},
	event.EnemyKilled:      {FreqFrom: 500, FreqTo: 1100, Length: 80 * time.Millisecond, Wave: WaveSine, Volume: 0.25},
	event.BossSpawned:      {FreqFrom: 70, FreqTo: 45, Length: 900 * time.Millisecond, Wave: WaveSquare, Volume: 0.3},
	event.BossPhaseChanged: {FreqFrom: 90, FreqTo: 220, Length: 600 * time.Millisecond, Wave: WaveSquare, Volume: 0.3},
	event.WaveStarted:      {FreqFrom: 660, FreqTo: 880, Length: 250 * time.Millisecond, Wave: WaveSine, Volume: 0.2},
	event.BossDefeated:     {FreqFrom: 300, FreqTo: 1200, Length: 1200 * time.Millisecond, Wave: WaveSine, Volume: 0.3},
	event.PlayerDied:       {FreqFrom: 600, FreqTo: 80, Length: 1200 * time.Millisecond, Wave: WaveSine, Volume: 0.3},
}

// ToneFor возвращает звук для типа события, если он есть.
func ToneFor(t event.EventType) (Tone, bool) {
	tone, ok := tones[t]
	return tone, ok
}

// Events — типы событий, у которых есть звук, в алфавитном порядке.
func Events() []event.EventType {
	types := make([]event.EventType, 0, len(tones))
	for t := range tones {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Manager plays short synthesized effects in reaction to game events.
// Until Initialize succeeds (or while disabled) every call is a no-op.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	enabled     bool
	initialized bool
}

func NewManager(enabled bool) *Manager {
	return &Manager{mixer: &beep.Mixer{}, enabled: enabled}
}

// Initialize opens the audio device. Safe to call more than once.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

func (m *Manager) SetEnabled(enabled bool) {
	m.mu.Lock()
	m.enabled = enabled
	m.mu.Unlock()
}

func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled
}

// Attach подписывает менеджер только на озвучиваемые события.
// Повторный вызов не дублирует подписку.
func (m *Manager) Attach(d *event.Dispatcher) {
	d.Unsubscribe(m)
	d.Subscribe(m, Events()...)
}

// Detach снимает менеджер с диспетчера, например когда звук выключен в опциях.
func (m *Manager) Detach(d *event.Dispatcher) {
	d.Unsubscribe(m)
}

func (m *Manager) OnEvent(e event.Event) {
	if tone, ok := tones[e.Type]; ok {
		m.Play(tone)
	}
}

// Play добавляет тон в микшер.
func (m *Manager) Play(t Tone) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || !m.enabled {
		return
	}
	speaker.Lock()
	m.mixer.Add(withVolume(newToneStreamer(t, sampleRate), t.Volume))
	speaker.Unlock()
}
