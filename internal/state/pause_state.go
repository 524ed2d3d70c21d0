// internal/state/pause_state.go
package state

import (
	"go-survivor/internal/config"
	"go-survivor/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseState замораживает забег и рисует поверх него меню.
type PauseState struct {
	stateMachine  *StateMachine
	ctx           *Context
	previousState State
	buttons       []*ui.Button
}

func NewPauseState(sm *StateMachine, ctx *Context, prevState State) *PauseState {
	buttons := ui.ButtonColumn(menuTop-60, "Resume", "Options", "Info", "Main menu", "Quit")
	buttons[4].BgColor = config.ButtonQuitColor
	return &PauseState{
		stateMachine:  sm,
		ctx:           ctx,
		previousState: prevState,
		buttons:       buttons,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if escPressed() {
		s.stateMachine.SetState(s.previousState)
		return
	}
	switch clickedButton(s.buttons) {
	case 0:
		s.stateMachine.SetState(s.previousState)
	case 1:
		s.stateMachine.SetState(NewOptionsState(s.stateMachine, s.ctx, s))
	case 2:
		s.stateMachine.SetState(NewInfoState(s.stateMachine, s.ctx, s))
	case 3:
		s.stateMachine.SetState(NewMenuState(s.stateMachine, s.ctx))
	case 4:
		s.ctx.Quit()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	ui.DrawOutlined(screen, "PAUSED", s.ctx.Fonts.Huge, config.ScreenWidth/2, 200, 2, config.TextLightColor, config.TextDarkColor)
	drawButtons(screen, s.ctx, s.buttons)
}

func (s *PauseState) Exit() {}
