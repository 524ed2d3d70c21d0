// internal/tty/session.go
package tty

import (
	"context"
	"log"

	"go-survivor/internal/app"
	"go-survivor/internal/loop"

	"github.com/gdamore/tcell/v2"
)

// Session — терминальный забег. События терминала приходят из отдельной
// горутины через канал, а симуляция и отрисовка идут только в Tick.
type Session struct {
	screen tcell.Screen
	game   *app.Game
	input  Input
	events chan tcell.Event
	paused bool
	quit   bool
}

func NewSession(screen tcell.Screen, game *app.Game) *Session {
	return &Session{
		screen: screen,
		game:   game,
		events: make(chan tcell.Event, 100),
	}
}

// Run запускает опрос терминала и фиксированный цикл до выхода или отмены ctx.
func (s *Session) Run(ctx context.Context, step *loop.FixedStep) error {
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return // экран закрыт
			}
			select {
			case s.events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return step.Run(ctx, s.Tick)
}

// Tick разбирает накопившиеся события, делает шаг симуляции и рисует кадр.
// Возвращает false, когда игрок вышел.
func (s *Session) Tick() bool {
	for drained := false; !drained; {
		select {
		case ev := <-s.events:
			s.HandleEvent(ev)
		default:
			drained = true
		}
	}
	if s.quit {
		return false
	}

	s.input.Tick()
	if !s.paused && s.game.Outcome() == app.Running {
		s.game.Update(s.input.MoveInput())
	}
	Draw(s.screen, s.game, s.paused)
	return true
}

// HandleEvent применяет одно событие терминала.
func (s *Session) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.handleKey(ev)
	case *tcell.EventResize:
		s.screen.Sync()
	}
}

func (s *Session) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		s.quit = true
		return
	case tcell.KeyEscape:
		if s.game.Outcome() == app.Running {
			s.paused = !s.paused
			s.input.Release()
		}
		return
	case tcell.KeyEnter:
		if s.game.Outcome() != app.Running {
			log.Printf("Restarting run")
			s.game.Reset()
			s.input.Release()
		}
		return
	}
	if !s.paused {
		s.input.Press(ev)
	}
}

func (s *Session) Paused() bool { return s.paused }
func (s *Session) Quit() bool   { return s.quit }
