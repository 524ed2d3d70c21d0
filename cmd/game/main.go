// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-survivor/internal/app"
	"go-survivor/internal/config"
	"go-survivor/internal/event"
	"go-survivor/internal/sound"
	"go-survivor/internal/state"
	"go-survivor/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	ctx            *state.Context
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.ctx.ShouldQuit() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	// --- Флаги командной строки ---
	devMode := flag.Bool("dev", false, "Start directly in the game state for development")
	envFile := flag.String("env", ".env", "Path to the settings file")
	pprofAddr := flag.String("pprof", "", "Serve pprof on this address (e.g. localhost:6060)")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// --- Настройки и определения ---
	settings, err := config.LoadSettings(*envFile)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	library, err := app.LoadLibrary(settings.EnemyDefsPath)
	if err != nil {
		log.Fatalf("Failed to load definitions: %v", err)
	}

	// --- События и звук ---
	dispatcher := event.NewDispatcher()
	snd := sound.NewManager(settings.Sound)
	if settings.Sound {
		if err := snd.Initialize(); err != nil {
			log.Printf("Sound disabled: %v", err)
		}
	}
	defer snd.Close()

	// --- Инициализация игры ---
	game := app.NewGame(settings, library, dispatcher)
	// слушатели подключаются после подготовительного Reset внутри NewGame
	dispatcher.SubscribeAll(app.LogListener{})
	if settings.Sound {
		snd.Attach(dispatcher)
	}
	ctx := state.NewContext(game, library, settings, ui.LoadFonts(), snd)
	sm := state.NewStateMachine()

	// --- Выбор начального состояния ---
	if *devMode {
		log.Println("---" + "DEV MODE: Starting game directly" + "---")
		ctx.StartRun(settings.Difficulty)
		sm.SetState(state.NewGameState(sm, ctx))
	} else {
		sm.SetState(state.NewMenuState(sm, ctx))
	}

	a := &AppGame{
		stateMachine:   sm,
		ctx:            ctx,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Survivor")
	ebiten.SetTPS(config.TPS)
	ebiten.SetFullscreen(settings.Fullscreen)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
