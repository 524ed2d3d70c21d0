// internal/state/difficulty_state.go
package state

import (
	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/ui"
	"go-survivor/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// DifficultyState — выбор сложности перед забегом
type DifficultyState struct {
	sm      *StateMachine
	ctx     *Context
	buttons []*ui.Button
}

func NewDifficultyState(sm *StateMachine, ctx *Context) *DifficultyState {
	labels := make([]string, 0, len(defs.Difficulties)+1)
	for _, d := range defs.Difficulties {
		labels = append(labels, d.Label())
	}
	return &DifficultyState{
		sm:      sm,
		ctx:     ctx,
		buttons: ui.ButtonColumn(menuTop-40, append(labels, "Back")...),
	}
}

func (s *DifficultyState) Enter() {
	for i, d := range defs.Difficulties {
		s.buttons[i].BgColor = render.DarkenColor(ui.DifficultyColor(d))
	}
}

func (s *DifficultyState) Update(deltaTime float64) {
	if escPressed() {
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
		return
	}
	if enterPressed() {
		s.start(s.ctx.Settings.Difficulty)
		return
	}
	i := clickedButton(s.buttons)
	switch {
	case i < 0:
	case i < len(defs.Difficulties):
		s.start(defs.Difficulties[i])
	default:
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

func (s *DifficultyState) start(d defs.Difficulty) {
	s.ctx.StartRun(d)
	s.sm.SetState(NewGameState(s.sm, s.ctx))
}

func (s *DifficultyState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawCentered(screen, "Choose difficulty", s.ctx.Fonts.Title, config.ScreenWidth/2, 200, config.TextLightColor)
	drawButtons(screen, s.ctx, s.buttons)
	for i, d := range defs.Difficulties {
		b := s.buttons[i]
		ui.DrawCentered(screen, d.Description(), s.ctx.Fonts.Small, config.ScreenWidth/2, b.Rect.Max.Y+13, config.TextDimColor)
	}
}

func (s *DifficultyState) Exit() {}
