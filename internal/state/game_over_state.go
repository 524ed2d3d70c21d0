// internal/state/game_over_state.go
package state

import (
	"fmt"

	"go-survivor/internal/app"
	"go-survivor/internal/config"
	"go-survivor/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GameOverState — итоги забега: поражение или победа.
type GameOverState struct {
	sm      *StateMachine
	ctx     *Context
	buttons []*ui.Button
}

func NewGameOverState(sm *StateMachine, ctx *Context) *GameOverState {
	return &GameOverState{
		sm:      sm,
		ctx:     ctx,
		buttons: ui.ButtonColumn(config.ScreenHeight-220, "Play again", "Main menu"),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if enterPressed() {
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
		return
	}
	switch clickedButton(s.buttons) {
	case 0:
		s.ctx.StartRun(s.ctx.Settings.Difficulty)
		s.sm.SetState(NewGameState(s.sm, s.ctx))
	case 1:
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

// SummaryLines — строки итогов забега
func SummaryLines(g *app.Game) []string {
	lines := []string{
		fmt.Sprintf("Score : %d", g.Score()),
		"Survived : " + g.SurvivalTime(),
		fmt.Sprintf("Wave reached : %d / %d", g.Wave(), config.FinalWave),
		"Difficulty : " + g.Difficulty().Label(),
	}
	if g.Stats != nil {
		lines = append(lines,
			fmt.Sprintf("Kills : %d   Shots : %d   Damage taken : %d", g.Stats.TotalKills(), g.Stats.ShotsFired, g.Stats.DamageTaken),
		)
	}
	return append(lines, "Run "+g.RunID())
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	g := s.ctx.Game
	s.ctx.Renderer.Draw(screen, g, false)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	title, clr := "GAME OVER", config.HPLowColor
	if g.Outcome() == app.Victory {
		title, clr = "VICTORY", config.HPHighColor
	}
	ui.DrawOutlined(screen, title, s.ctx.Fonts.Huge, config.ScreenWidth/2, 200, 3, clr, config.TextDarkColor)

	y := 290
	lines := SummaryLines(g)
	for i, line := range lines {
		face := s.ctx.Fonts.Regular
		lineClr := config.TextLightColor
		if i == len(lines)-1 {
			face, lineClr = s.ctx.Fonts.Small, config.TextDimColor
		}
		ui.DrawCentered(screen, line, face, config.ScreenWidth/2, y, lineClr)
		y += 34
	}
	drawButtons(screen, s.ctx, s.buttons)
	ui.DrawCentered(screen, "Enter to return to the menu", s.ctx.Fonts.Small, config.ScreenWidth/2, config.ScreenHeight-30, config.TextDimColor)
}

func (s *GameOverState) Exit() {}
