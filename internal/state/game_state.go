// internal/state/game_state.go
package state

import (
	"go-survivor/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameState — идёт забег. Один вызов Update — один тик симуляции.
type GameState struct {
	sm  *StateMachine
	ctx *Context
}

func NewGameState(sm *StateMachine, ctx *Context) *GameState {
	return &GameState{sm: sm, ctx: ctx}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	if escPressed() {
		g.sm.SetState(NewPauseState(g.sm, g.ctx, g))
		return
	}

	game := g.ctx.Game
	game.Update(readMoveInput())

	if game.Outcome() != app.Running {
		g.sm.SetState(NewGameOverState(g.sm, g.ctx))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.ctx.Renderer.Draw(screen, g.ctx.Game, g.ctx.Settings.ShowRange)
	g.ctx.HUD.Draw(screen, g.ctx.Game)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
