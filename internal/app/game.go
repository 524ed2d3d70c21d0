// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/system"
	"go-survivor/internal/utils"

	"github.com/google/uuid"
)

// Outcome — чем закончился (или не закончился) забег
type Outcome int

const (
	Running Outcome = iota
	GameOver
	Victory
)

// Game holds the simulation state of one run: player, enemies, projectiles,
// score and elapsed ticks. Everything is touched only from the loop that
// calls Update.
type Game struct {
	Player          *entity.Player
	EnemyManager    *system.EnemyManager
	Projectiles     entity.Projectiles
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Stats           *RunStats

	settings      config.Settings
	library       defs.EnemyLibrary
	score         int
	survivalTicks int
	outcome       Outcome
	runID         string
}

// NewGame собирает симуляцию и сразу готовит первый забег.
func NewGame(settings config.Settings, library defs.EnemyLibrary, eventDispatcher *event.Dispatcher) *Game {
	if library == nil {
		library = defs.DefaultEnemyLibrary()
	}
	if eventDispatcher == nil {
		eventDispatcher = event.NewDispatcher()
	}
	rng := utils.NewPRNGService(settings.Seed)
	g := &Game{
		Player:          entity.NewPlayer(),
		EnemyManager:    system.NewEnemyManager(library, rng, eventDispatcher),
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Stats:           &RunStats{},
		settings:        settings,
		library:         library,
	}
	eventDispatcher.SubscribeAll(g.Stats)
	g.Reset()
	return g
}

// SetSettings запоминает новые настройки; они вступят в силу при следующем Reset.
func (g *Game) SetSettings(s config.Settings) {
	g.settings = s
}

func (g *Game) Settings() config.Settings {
	return g.settings
}

// Reset reinitializes the player, the enemy manager, the projectile list,
// the score and the elapsed-time counter. Call it before every run.
func (g *Game) Reset() {
	g.runID = uuid.NewString()
	// фиксированный сид повторяет забег, нулевой даёт новый от времени
	g.Rng = utils.NewPRNGService(g.settings.Seed)
	g.Player.Reset()
	g.Projectiles = nil
	g.score = 0
	g.survivalTicks = 0
	g.outcome = Running
	g.Stats.Reset()

	g.EnemyManager.SetPRNG(g.Rng)
	g.EventDispatcher.Dispatch(event.Event{Type: event.RunStarted, Data: event.RunData{
		RunID:      g.runID,
		Difficulty: g.settings.Difficulty,
		Seed:       g.Rng.Seed(),
	}})
	g.EnemyManager.Reset(g.settings.Difficulty.Multipliers())
}

// Update runs one simulation tick. It does nothing once the run is over.
func (g *Game) Update(in entity.MoveInput) {
	if g.outcome != Running {
		return
	}
	g.survivalTicks++
	hpBefore := g.Player.Health.Value

	system.AdvanceProjectiles(&g.Projectiles, config.ScreenWidth, config.ScreenHeight)

	g.EnemyManager.Update(g.Player, &g.Projectiles)

	for _, e := range system.ResolveProjectileHits(g.Projectiles, g.EnemyManager.Enemies()) {
		g.score += config.ScorePerKill
		pos := e.Position()
		g.dispatch(event.EnemyKilled, event.EnemyData{
			ID: uint64(e.ID()), Kind: e.Kind(), X: pos.X, Y: pos.Y, Phase: e.Phase(),
		})
	}

	if g.Player.Update(in, g.EnemyManager.Enemies(), &g.Projectiles) {
		g.dispatch(event.ShotFired, nil)
	}

	if lost := hpBefore - g.Player.Health.Value; lost > 0 {
		g.dispatch(event.PlayerHit, event.PlayerHitData{Damage: lost, HP: g.Player.Health.Value})
	}

	if !g.Player.Alive() {
		g.outcome = GameOver
	}
	if g.EnemyManager.BossDefeated() {
		g.outcome = Victory
	}
	switch g.outcome {
	case GameOver:
		g.dispatch(event.PlayerDied, g.scoreData())
	case Victory:
		g.dispatch(event.BossDefeated, g.scoreData())
	}
}

func (g *Game) dispatch(t event.EventType, data interface{}) {
	g.EventDispatcher.Dispatch(event.Event{Type: t, Tick: g.survivalTicks, Data: data})
}

func (g *Game) scoreData() event.ScoreData {
	return event.ScoreData{Score: g.score, Ticks: g.survivalTicks, Wave: g.EnemyManager.Wave()}
}

func (g *Game) Score() int { return g.score }
func (g *Game) Ticks() int { return g.survivalTicks }
func (g *Game) Outcome() Outcome { return g.outcome }
func (g *Game) RunID() string { return g.runID }
func (g *Game) Enemies() []entity.Enemy { return g.EnemyManager.Enemies() }
func (g *Game) Wave() int { return g.EnemyManager.Wave() }
func (g *Game) BossActive() bool { return g.EnemyManager.BossActive() }
func (g *Game) WaitingForNextWave() bool { return g.EnemyManager.WaitingForNextWave() }
func (g *Game) Boss() entity.Enemy { return g.EnemyManager.Boss() }
func (g *Game) Difficulty() defs.Difficulty { return g.settings.Difficulty }
func (g *Game) SurvivalTime() string { return FormatSurvivalTime(g.survivalTicks) }

// FormatSurvivalTime переводит тики в строку вида "2m 5s".
// NextWaveBanner — надпись на паузе между волнами, секунды округляются вверх.
// Пустая строка, если паузы нет.
func (g *Game) NextWaveBanner() string {
	if !g.WaitingForNextWave() {
		return ""
	}
	ticks := g.EnemyManager.DelayRemaining()
	seconds := (ticks + config.TPS - 1) / config.TPS
	return fmt.Sprintf("Wave %d in %ds", g.Wave()+1, seconds)
}

func FormatSurvivalTime(ticks int) string {
	seconds := ticks / config.TPS
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}

// LogListener пишет в лог итоговые события забега.
type LogListener struct{}

func (LogListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.RunStarted:
		d := e.Data.(event.RunData)
		log.Printf("Run %s started: difficulty %s, seed %d", d.RunID, d.Difficulty.Label(), d.Seed)
	case event.PlayerDied:
		d := e.Data.(event.ScoreData)
		log.Printf("Game over on wave %d: score %d, survived %s", d.Wave, d.Score, FormatSurvivalTime(d.Ticks))
	case event.BossDefeated:
		d := e.Data.(event.ScoreData)
		log.Printf("Victory: score %d in %s", d.Score, FormatSurvivalTime(d.Ticks))
	}
}
