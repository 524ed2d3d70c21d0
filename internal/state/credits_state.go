// internal/state/credits_state.go
package state

import (
	"go-survivor/internal/config"
	"go-survivor/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

var creditLines = []string{
	"Code and design: the Survivor team",
	"Rendering: Ebitengine",
	"Terminal mode: tcell",
	"Sound: beep",
	"Fonts: Go fonts",
}

// CreditsState — экран авторов
type CreditsState struct {
	sm     *StateMachine
	ctx    *Context
	back   *ui.Button
	scroll float64
}

func NewCreditsState(sm *StateMachine, ctx *Context) *CreditsState {
	return &CreditsState{
		sm:   sm,
		ctx:  ctx,
		back: ui.ButtonColumn(config.ScreenHeight-140, "Back")[0],
	}
}

func (s *CreditsState) Enter() {
	s.scroll = 0
}

func (s *CreditsState) Update(deltaTime float64) {
	s.scroll += deltaTime * 40
	if escPressed() || enterPressed() || s.back.IsClicked() {
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

func (s *CreditsState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawCentered(screen, "Credits", s.ctx.Fonts.Title, config.ScreenWidth/2, 160, config.TextLightColor)

	// строки въезжают снизу и останавливаются на своих местах
	offset := max(0, 200-int(s.scroll))
	for i, line := range creditLines {
		ui.DrawCentered(screen, line, s.ctx.Fonts.Regular, config.ScreenWidth/2, 260+i*40+offset, config.TextDimColor)
	}
	s.back.Draw(screen, s.ctx.Fonts.Regular)
}

func (s *CreditsState) Exit() {}
