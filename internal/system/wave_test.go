package system

import (
	"testing"

	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestManager(m defs.Multipliers) (*EnemyManager, *eventLog) {
	d := event.NewDispatcher()
	mgr := NewEnemyManager(defs.DefaultEnemyLibrary(), utils.NewPRNGService(1234), d)
	log := &eventLog{}
	d.SubscribeAll(log)
	mgr.Reset(m)
	return mgr, log
}

func killAll(m *EnemyManager) {
	for _, e := range m.Enemies() {
		for e.Alive() {
			e.TakeDamage(1 << 20)
		}
	}
}

func TestMaxEnemiesForWave(t *testing.T) {
	assert.Equal(t, 11, MaxEnemiesForWave(1, 1.0))
	assert.Equal(t, 6, MaxEnemiesForWave(1, 0.6))
	assert.Equal(t, 16, MaxEnemiesForWave(1, 1.5))
	assert.Equal(t, 23, MaxEnemiesForWave(5, 1.0))
	assert.Equal(t, 1, MaxEnemiesForWave(1, 0.01))
	assert.Equal(t, 1, MaxEnemiesForWave(5, 0))
}

func TestMaxEnemiesMonotonicAndLinear(t *testing.T) {
	for _, d := range defs.Difficulties {
		mult := d.Multipliers().WaveSize
		prev := 0
		for wave := 1; wave <= config.FinalWave; wave++ {
			got := MaxEnemiesForWave(wave, mult)
			assert.GreaterOrEqual(t, got, prev, "%s wave %d", d, wave)
			base := float64(8 + 3*wave)
			assert.InDelta(t, base*mult, float64(got), 1.0)
			prev = got
		}
	}
}

func TestSpawnIntervalForWave(t *testing.T) {
	want := []int{120, 100, 90, 80, 70}
	for i, w := range want {
		assert.Equal(t, w, SpawnIntervalForWave(i+1))
	}
	assert.Equal(t, config.MinSpawnInterval, SpawnIntervalForWave(20))
}

func TestManagerSpawnsOnCadence(t *testing.T) {
	m, log := newTestManager(defs.DifficultyNormal.Multipliers())
	player := entity.NewPlayer()
	var sink entity.Projectiles

	require.Equal(t, 1, m.Wave())
	require.Equal(t, WaveSpawning, m.State())
	assert.Equal(t, 1, log.count(event.WaveStarted))

	m.Update(player, &sink)
	assert.Len(t, m.Enemies(), 1, "first enemy appears on the first tick")

	for i := 1; i < SpawnIntervalForWave(1); i++ {
		m.Update(player, &sink)
	}
	assert.Len(t, m.Enemies(), 1)
	m.Update(player, &sink)
	assert.Len(t, m.Enemies(), 2)
	assert.Equal(t, 2, m.Spawned())
}

func TestSpawnedEnemiesStartOffScreen(t *testing.T) {
	m, _ := newTestManager(defs.Multipliers{HP: 1, Damage: 1, WaveSize: 1})
	player := entity.NewPlayer()
	w, h := float64(config.ScreenWidth), float64(config.ScreenHeight)

	for m.State() == WaveSpawning {
		m.spawnTimer = 0
		spawned := m.Spawned()
		m.Update(player, &entity.Projectiles{})
		require.Equal(t, spawned+1, m.Spawned())
		require.NotEmpty(t, m.Enemies())

		// новый враг всегда последний, а убитые на прошлом тике уже убраны
		pos := m.Enemies()[len(m.Enemies())-1].Position()
		onEdge := pos.X == -config.SpawnEdgeMargin || pos.X == w+config.SpawnEdgeMargin ||
			pos.Y == -config.SpawnEdgeMargin || pos.Y == h+config.SpawnEdgeMargin
		assert.True(t, onEdge, "spawned at %+v", pos)
		killAll(m)
	}
	assert.Equal(t, MaxEnemiesForWave(1, 1), m.Spawned())
}

func TestFirstWaveIsAllMelee(t *testing.T) {
	m, _ := newTestManager(defs.Multipliers{HP: 1, Damage: 1, WaveSize: 4})
	player := entity.NewPlayer()
	seen := 0
	for m.State() == WaveSpawning {
		m.spawnTimer = 0
		m.Update(player, &entity.Projectiles{})
		for _, e := range m.Enemies() {
			assert.Equal(t, defs.EnemyMelee, e.Kind())
		}
		seen += len(m.Enemies())
		killAll(m)
	}
	assert.Equal(t, MaxEnemiesForWave(1, 4), seen)
}

func TestDifficultyScalesSpawnedEnemies(t *testing.T) {
	m, _ := newTestManager(defs.DifficultyHard.Multipliers())
	m.Update(entity.NewPlayer(), &entity.Projectiles{})
	require.Len(t, m.Enemies(), 1)
	e := m.Enemies()[0]
	assert.Equal(t, 60, e.Health().Max)
	assert.Equal(t, 60, e.Health().Value)
	assert.Equal(t, 14, e.Damage())
}

func TestDeadEnemiesPrunedNextTick(t *testing.T) {
	m, _ := newTestManager(defs.DifficultyNormal.Multipliers())
	player := entity.NewPlayer()
	m.Update(player, &entity.Projectiles{})
	require.Len(t, m.Enemies(), 1)

	killAll(m)
	assert.Len(t, m.Enemies(), 1, "removal waits for the next tick")
	m.Update(player, &entity.Projectiles{})
	assert.Empty(t, m.Enemies())
}

func TestInterWaveDelay(t *testing.T) {
	m, log := newTestManager(defs.Multipliers{HP: 1, Damage: 1, WaveSize: 0.01})
	player := entity.NewPlayer()

	m.Update(player, &entity.Projectiles{})
	require.Equal(t, 1, m.MaxEnemies())
	require.Equal(t, WaveClearing, m.State())
	killAll(m)

	m.Update(player, &entity.Projectiles{})
	require.Empty(t, m.Enemies())
	assert.Equal(t, WaveInterWaveDelay, m.State())
	assert.True(t, m.WaitingForNextWave())
	assert.Equal(t, 1, m.Wave(), "wave does not advance immediately")
	assert.Equal(t, 1, log.count(event.WaveCleared))

	for i := 1; i < config.InterWaveDelay; i++ {
		m.Update(player, &entity.Projectiles{})
		require.Equal(t, 1, m.Wave(), "tick %d", i)
	}
	m.Update(player, &entity.Projectiles{})
	assert.Equal(t, 2, m.Wave())
	assert.Equal(t, WaveSpawning, m.State())
	assert.False(t, m.WaitingForNextWave())
	assert.Equal(t, SpawnIntervalForWave(2), m.SpawnInterval())
	assert.Equal(t, 2, log.count(event.WaveStarted))
}

func TestNextWaveKeepsSpawnCountdown(t *testing.T) {
	m, _ := newTestManager(defs.Multipliers{HP: 1, Damage: 1, WaveSize: 0.01})
	player := entity.NewPlayer()

	m.Update(player, &entity.Projectiles{})
	require.Equal(t, 1, m.Spawned())
	killAll(m)
	for m.Wave() == 1 {
		m.Update(player, &entity.Projectiles{})
	}
	require.Equal(t, WaveSpawning, m.State())
	assert.Equal(t, 0, m.DelayRemaining())

	// отсчёт, заведённый последним появлением первой волны, продолжается
	for i := 1; i < SpawnIntervalForWave(1); i++ {
		m.Update(player, &entity.Projectiles{})
		require.Zero(t, m.Spawned(), "tick %d", i)
	}
	m.Update(player, &entity.Projectiles{})
	assert.Equal(t, 1, m.Spawned())
	assert.Len(t, m.Enemies(), 1)
}

func TestDelayRemainingCountsDown(t *testing.T) {
	m, _ := newTestManager(defs.Multipliers{HP: 1, Damage: 1, WaveSize: 0.01})
	player := entity.NewPlayer()

	m.Update(player, &entity.Projectiles{})
	killAll(m)
	m.Update(player, &entity.Projectiles{})
	require.True(t, m.WaitingForNextWave())
	assert.Equal(t, config.InterWaveDelay, m.DelayRemaining())

	m.Update(player, &entity.Projectiles{})
	assert.Equal(t, config.InterWaveDelay-1, m.DelayRemaining())
}

func TestClearingWaitsForLivingEnemies(t *testing.T) {
	m, _ := newTestManager(defs.Multipliers{HP: 1, Damage: 1, WaveSize: 0.01})
	player := entity.NewPlayer()
	m.Update(player, &entity.Projectiles{})
	require.Equal(t, WaveClearing, m.State())

	for i := 0; i < 300; i++ {
		m.Update(player, &entity.Projectiles{})
	}
	assert.Equal(t, WaveClearing, m.State())
	assert.Equal(t, 1, m.Wave())
}

func TestBossAppearsOnceAfterFinalWave(t *testing.T) {
	m, log := newTestManager(defs.Multipliers{HP: 1.5, Damage: 1.4, WaveSize: 0.01})
	player := entity.NewPlayer()

	for i := 0; i < 5000 && m.State() != WaveBossActive; i++ {
		require.False(t, m.BossActive())
		m.Update(player, &entity.Projectiles{})
		if m.State() != WaveBossActive {
			killAll(m)
		}
	}
	require.Equal(t, WaveBossActive, m.State())
	assert.Equal(t, config.FinalWave, m.Wave())
	assert.True(t, m.BossActive())
	assert.Equal(t, 1, log.count(event.BossSpawned))
	assert.Equal(t, config.FinalWave, log.count(event.WaveStarted))

	boss := m.Boss()
	require.NotNil(t, boss)
	assert.Equal(t, config.ScreenWidth/2.0, boss.Position().X)
	assert.Equal(t, config.BossSpawnY, boss.Position().Y)
	assert.Equal(t, 1000, boss.Health().Max, "boss ignores difficulty scaling")

	for i := 0; i < 100; i++ {
		m.Update(player, &entity.Projectiles{})
	}
	assert.Equal(t, 1, log.count(event.BossSpawned))
	assert.False(t, m.BossDefeated())

	killAll(m)
	m.Update(player, &entity.Projectiles{})
	assert.True(t, m.BossDefeated())
	assert.False(t, m.BossActive())
	assert.Equal(t, WaveBossDefeated, m.State())
}

func TestBossPhaseChangeIsDispatched(t *testing.T) {
	m, log := newTestManager(defs.DifficultyNormal.Multipliers())
	def := defs.DefaultEnemyLibrary().Get(defs.EnemyBoss)
	boss := entity.NewBoss(99, def, 100, 100)
	m.Add(boss)
	player := entity.NewPlayer()

	boss.TakeDamage(def.Health / 2)
	m.Update(player, &entity.Projectiles{})

	require.Equal(t, 1, log.count(event.BossPhaseChanged))
	for _, e := range log.events {
		if e.Type == event.BossPhaseChanged {
			assert.Equal(t, 2, e.Data.(event.EnemyData).Phase)
		}
	}
}

func TestResetStartsOver(t *testing.T) {
	m, _ := newTestManager(defs.Multipliers{HP: 1, Damage: 1, WaveSize: 0.01})
	player := entity.NewPlayer()
	for i := 0; i < 400; i++ {
		m.Update(player, &entity.Projectiles{})
		killAll(m)
	}
	require.Greater(t, m.Wave(), 1)

	m.Reset(defs.DifficultyNormal.Multipliers())
	assert.Equal(t, 1, m.Wave())
	assert.Empty(t, m.Enemies())
	assert.Equal(t, WaveSpawning, m.State())
	assert.Equal(t, 11, m.MaxEnemies())
	assert.False(t, m.BossActive())
}
