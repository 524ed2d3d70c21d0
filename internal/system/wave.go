// internal/system/wave.go
package system

import (
	"log"

	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/utils"
)

// WaveState — состояние машины волн
type WaveState int

const (
	WaveSpawning       WaveState = iota // враги появляются по таймеру до лимита волны
	WaveClearing                        // лимит достигнут, ждём пока поле опустеет
	WaveInterWaveDelay                  // пауза перед следующей волной
	WaveBossPending                     // последняя волна зачищена, босс появится в следующем тике
	WaveBossActive
	WaveBossDefeated // конечное состояние
)

func (s WaveState) String() string {
	switch s {
	case WaveSpawning:
		return "spawning"
	case WaveClearing:
		return "clearing"
	case WaveInterWaveDelay:
		return "inter-wave delay"
	case WaveBossPending:
		return "boss pending"
	case WaveBossActive:
		return "boss active"
	case WaveBossDefeated:
		return "boss defeated"
	}
	return "unknown"
}

// MaxEnemiesForWave — лимит врагов волны: (8 + 3*wave) * множитель, не меньше 1.
func MaxEnemiesForWave(wave int, waveSizeMultiplier float64) int {
	base := float64(config.BaseEnemiesPerWave + wave*config.EnemiesPerWaveStep)
	return max(1, int(base*waveSizeMultiplier))
}

// SpawnIntervalForWave — тиков между появлениями врагов.
func SpawnIntervalForWave(wave int) int {
	if wave <= 1 {
		return config.InitialSpawnInterval
	}
	return max(config.MinSpawnInterval, config.InitialSpawnInterval-wave*config.SpawnIntervalStep)
}

// EnemyManager владеет списком врагов и ведёт волны.
type EnemyManager struct {
	enemies []entity.Enemy

	state         WaveState
	wave          int
	spawned       int
	maxEnemies    int
	spawnTimer    int
	spawnInterval int
	delayTimer    int
	bossSpawned   bool
	bossDefeated  bool
	ticks         int

	difficulty      defs.Multipliers
	library         defs.EnemyLibrary
	prng            *utils.PRNGService
	ids             entity.IDGenerator
	eventDispatcher *event.Dispatcher
}

func NewEnemyManager(library defs.EnemyLibrary, prng *utils.PRNGService, eventDispatcher *event.Dispatcher) *EnemyManager {
	m := &EnemyManager{
		library:         library,
		prng:            prng,
		eventDispatcher: eventDispatcher,
	}
	m.Reset(defs.DifficultyNormal.Multipliers())
	return m
}

// Reset очищает поле и начинает с первой волны с новыми множителями.
func (m *EnemyManager) Reset(difficulty defs.Multipliers) {
	m.enemies = nil
	m.difficulty = difficulty
	m.wave = 0
	m.bossSpawned = false
	m.bossDefeated = false
	m.ticks = 0
	m.spawnTimer = 0
	m.ids.Reset()
	m.startWave(1)
}

// SetPRNG меняет генератор; используется при новом забеге с другим сидом.
func (m *EnemyManager) SetPRNG(prng *utils.PRNGService) {
	m.prng = prng
}

// Update runs one tick: prune the dead, detect boss defeat, advance every
// living enemy, then advance the wave state machine.
func (m *EnemyManager) Update(player *entity.Player, sink entity.ProjectileSink) {
	m.ticks++
	m.prune()

	if m.bossSpawned && !m.bossDefeated && m.Boss() == nil {
		m.bossDefeated = true
		m.state = WaveBossDefeated
		log.Printf("Wave %d: boss defeated after %d ticks", m.wave, m.ticks)
	}

	for _, e := range m.enemies {
		phase := e.Phase()
		e.Update(player, sink)
		if e.Phase() != phase {
			log.Printf("Boss #%d entered phase %d", e.ID(), e.Phase())
			m.dispatch(event.BossPhaseChanged, enemyData(e))
		}
	}

	switch m.state {
	case WaveSpawning:
		m.spawnTimer--
		if m.spawnTimer <= 0 {
			m.spawnEnemy()
			m.spawnTimer = m.spawnInterval
		}
		if m.spawned >= m.maxEnemies {
			m.state = WaveClearing
		}
	case WaveClearing:
		if len(m.enemies) > 0 {
			return
		}
		m.dispatch(event.WaveCleared, event.WaveData{Wave: m.wave, MaxEnemies: m.maxEnemies})
		if m.wave < config.FinalWave {
			m.state = WaveInterWaveDelay
			m.delayTimer = config.InterWaveDelay
			log.Printf("Wave %d cleared, next wave in %d ticks", m.wave, m.delayTimer)
		} else {
			m.state = WaveBossPending
			log.Printf("Wave %d cleared, boss incoming", m.wave)
		}
	case WaveInterWaveDelay:
		m.delayTimer--
		if m.delayTimer <= 0 {
			m.startWave(m.wave + 1)
		}
	case WaveBossPending:
		m.spawnBoss()
		m.state = WaveBossActive
	}
}

// startWave не трогает spawnTimer: отсчёт после последнего появления
// прошлой волны продолжается, первый враг новой волны не появляется сразу.
func (m *EnemyManager) startWave(wave int) {
	m.wave = wave
	m.spawned = 0
	m.maxEnemies = MaxEnemiesForWave(wave, m.difficulty.WaveSize)
	m.spawnInterval = SpawnIntervalForWave(wave)
	m.delayTimer = 0
	m.state = WaveSpawning
	log.Printf("Wave %d started: %d enemies, every %d ticks", wave, m.maxEnemies, m.spawnInterval)
	m.dispatch(event.WaveStarted, event.WaveData{Wave: wave, MaxEnemies: m.maxEnemies})
}

// prune убирает мёртвых, сохраняя порядок живых.
func (m *EnemyManager) prune() {
	kept := m.enemies[:0]
	for _, e := range m.enemies {
		if e.Alive() {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(m.enemies); i++ {
		m.enemies[i] = nil
	}
	m.enemies = kept
}

func (m *EnemyManager) spawnEnemy() {
	kind := m.prng.ChooseWeighted(defs.WaveComposition(m.wave))
	x, y := m.edgeSpawnPosition()
	e := entity.NewEnemy(m.ids.NewEntity(), m.library.Get(kind), x, y)
	e.ApplyDifficulty(m.difficulty)
	m.Add(e)
	m.spawned++
	m.dispatch(event.EnemySpawned, enemyData(e))
}

// Босс появляется один раз за забег в фиксированной точке над центром.
// Множители сложности к нему не применяются.
func (m *EnemyManager) spawnBoss() {
	if m.bossSpawned {
		return
	}
	boss := entity.NewEnemy(m.ids.NewEntity(), m.library.Get(defs.EnemyBoss), config.ScreenWidth/2.0, config.BossSpawnY)
	m.Add(boss)
	m.bossSpawned = true
	log.Printf("Boss #%d spawned with %d hp", boss.ID(), boss.Health().Max)
	m.dispatch(event.BossSpawned, enemyData(boss))
}

// edgeSpawnPosition выбирает случайную сторону экрана и точку на ней,
// вынесенную наружу на отступ.
func (m *EnemyManager) edgeSpawnPosition() (float64, float64) {
	const margin = config.SpawnEdgeMargin
	w, h := float64(config.ScreenWidth), float64(config.ScreenHeight)
	switch m.prng.Intn(4) {
	case 0:
		return m.prng.Float64() * w, -margin
	case 1:
		return m.prng.Float64() * w, h + margin
	case 2:
		return -margin, m.prng.Float64() * h
	default:
		return w + margin, m.prng.Float64() * h
	}
}

// Add inserts an already built enemy at the end of the live list. Spawns go
// through it too, so list order is spawn order.
func (m *EnemyManager) Add(e entity.Enemy) {
	m.enemies = append(m.enemies, e)
}

func (m *EnemyManager) dispatch(t event.EventType, data interface{}) {
	m.eventDispatcher.Dispatch(event.Event{Type: t, Tick: m.ticks, Data: data})
}

func enemyData(e entity.Enemy) event.EnemyData {
	pos := e.Position()
	return event.EnemyData{ID: uint64(e.ID()), Kind: e.Kind(), X: pos.X, Y: pos.Y, Phase: e.Phase()}
}

func (m *EnemyManager) Enemies() []entity.Enemy { return m.enemies }
func (m *EnemyManager) Wave() int { return m.wave }
func (m *EnemyManager) State() WaveState { return m.state }
func (m *EnemyManager) Spawned() int { return m.spawned }
func (m *EnemyManager) MaxEnemies() int { return m.maxEnemies }
func (m *EnemyManager) SpawnInterval() int { return m.spawnInterval }
func (m *EnemyManager) DelayRemaining() int { return m.delayTimer } // тиков до следующей волны
func (m *EnemyManager) BossDefeated() bool { return m.bossDefeated }

// BossActive — босс на поле и ещё жив
func (m *EnemyManager) BossActive() bool {
	return m.bossSpawned && !m.bossDefeated
}

// WaitingForNextWave — идёт пауза между волнами
func (m *EnemyManager) WaitingForNextWave() bool {
	return m.state == WaveInterWaveDelay
}

// Boss возвращает живого босса или nil.
func (m *EnemyManager) Boss() entity.Enemy {
	for _, e := range m.enemies {
		if e.Kind() == defs.EnemyBoss && e.Alive() {
			return e
		}
	}
	return nil
}
