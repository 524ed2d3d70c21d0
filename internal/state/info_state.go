// internal/state/info_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// InfoState — панель информации поверх паузы
type InfoState struct {
	sm       *StateMachine
	ctx      *Context
	previous *PauseState
}

func NewInfoState(sm *StateMachine, ctx *Context, previous *PauseState) *InfoState {
	return &InfoState{sm: sm, ctx: ctx, previous: previous}
}

func (s *InfoState) Enter() {}

func (s *InfoState) Update(deltaTime float64) {
	if escPressed() || clicked() {
		s.sm.SetState(s.previous)
	}
}

func (s *InfoState) Draw(screen *ebiten.Image) {
	if s.previous != nil && s.previous.previousState != nil {
		s.previous.previousState.Draw(screen)
	}
	s.ctx.Info.Draw(screen, s.ctx.Game.Player, s.ctx.Game.Difficulty())
}

func (s *InfoState) Exit() {}
