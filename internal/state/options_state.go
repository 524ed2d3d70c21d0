// internal/state/options_state.go
package state

import (
	"go-survivor/internal/config"
	"go-survivor/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// OptionsState — переключатели настроек. Возвращается туда, откуда пришли.
type OptionsState struct {
	sm       *StateMachine
	ctx      *Context
	previous State
	buttons  []*ui.Button
}

func NewOptionsState(sm *StateMachine, ctx *Context, previous State) *OptionsState {
	s := &OptionsState{
		sm:       sm,
		ctx:      ctx,
		previous: previous,
		buttons:  ui.ButtonColumn(menuTop-40, "", "", "", "Back"),
	}
	s.refreshLabels()
	return s
}

func (s *OptionsState) Enter() {}

func (s *OptionsState) Update(deltaTime float64) {
	if escPressed() {
		s.back()
		return
	}
	switch clickedButton(s.buttons) {
	case 0:
		s.ctx.Settings.ShowRange = !s.ctx.Settings.ShowRange
	case 1:
		s.ctx.Settings.Fullscreen = !s.ctx.Settings.Fullscreen
	case 2:
		s.ctx.Settings.Sound = !s.ctx.Settings.Sound
	case 3:
		s.back()
		return
	default:
		return
	}
	s.ctx.ApplySettings()
	s.refreshLabels()
}

func (s *OptionsState) back() {
	s.sm.SetState(s.previous)
}

func (s *OptionsState) refreshLabels() {
	s.buttons[0].Text = "Show range: " + onOff(s.ctx.Settings.ShowRange)
	s.buttons[1].Text = "Fullscreen: " + onOff(s.ctx.Settings.Fullscreen)
	s.buttons[2].Text = "Sound: " + onOff(s.ctx.Settings.Sound)
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

func (s *OptionsState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawCentered(screen, "Options", s.ctx.Fonts.Title, config.ScreenWidth/2, 200, config.TextLightColor)
	drawButtons(screen, s.ctx, s.buttons)
}

func (s *OptionsState) Exit() {}
