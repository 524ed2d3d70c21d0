// cmd/tty/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-survivor/internal/app"
	"go-survivor/internal/config"
	"go-survivor/internal/event"
	"go-survivor/internal/loop"
	"go-survivor/internal/sound"
	"go-survivor/internal/tty"

	"github.com/gdamore/tcell/v2"
)

func main() {
	envFile := flag.String("env", ".env", "Path to the settings file")
	logFile := flag.String("log", "", "Write logs to this file (terminal output is reserved for the arena)")
	flag.Parse()

	// лог в терминал ломает отрисовку
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	if err := run(*envFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(envFile string) (err error) {
	settings, err := config.LoadSettings(envFile)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	library, err := app.LoadLibrary(settings.EnemyDefsPath)
	if err != nil {
		return err
	}

	dispatcher := event.NewDispatcher()
	snd := sound.NewManager(settings.Sound)
	if settings.Sound {
		if err := snd.Initialize(); err != nil {
			log.Printf("Sound disabled: %v", err)
		}
	}
	defer snd.Close()

	game := app.NewGame(settings, library, dispatcher)
	dispatcher.SubscribeAll(app.LogListener{})
	if settings.Sound {
		snd.Attach(dispatcher)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	// терминал восстанавливается даже при панике в цикле
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			panic(r)
		}
		screen.Fini()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := tty.NewSession(screen, game)
	err = session.Run(ctx, loop.NewFixedStep(config.TPS))
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	log.Printf("Run %s finished: score %d, survived %s", game.RunID(), game.Score(), game.SurvivalTime())
	return err
}
