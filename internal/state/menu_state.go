// internal/state/menu_state.go
package state

import (
	"math"

	"go-survivor/internal/config"
	"go-survivor/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// Убеждаемся, что все экраны соответствуют интерфейсу State
var (
	_ State = (*MenuState)(nil)
	_ State = (*DifficultyState)(nil)
	_ State = (*OptionsState)(nil)
	_ State = (*GameState)(nil)
	_ State = (*PauseState)(nil)
	_ State = (*InfoState)(nil)
	_ State = (*CreditsState)(nil)
	_ State = (*GameOverState)(nil)
)

const menuTop = 330

// MenuState — главное меню
type MenuState struct {
	sm      *StateMachine
	ctx     *Context
	buttons []*ui.Button
	elapsed float64
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	return &MenuState{
		sm:      sm,
		ctx:     ctx,
		buttons: ui.ButtonColumn(menuTop, "Play", "Options", "Credits", "Quit"),
	}
}

func (m *MenuState) Enter() {
	m.buttons[3].BgColor = config.ButtonQuitColor
}

func (m *MenuState) Update(deltaTime float64) {
	m.elapsed += deltaTime

	if enterPressed() {
		m.sm.SetState(NewDifficultyState(m.sm, m.ctx))
		return
	}
	switch clickedButton(m.buttons) {
	case 0:
		m.sm.SetState(NewDifficultyState(m.sm, m.ctx))
	case 1:
		m.sm.SetState(NewOptionsState(m.sm, m.ctx, m))
	case 2:
		m.sm.SetState(NewCreditsState(m.sm, m.ctx))
	case 3:
		m.ctx.Quit()
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	// заголовок слегка покачивается
	y := 200 + int(6*math.Sin(m.elapsed*2))
	ui.DrawOutlined(screen, "SURVIVOR", m.ctx.Fonts.Huge, config.ScreenWidth/2, y, 3, config.PlayerColor, config.TextDarkColor)
	ui.DrawCentered(screen, "Survive five waves and defeat the boss", m.ctx.Fonts.Regular, config.ScreenWidth/2, y+50, config.TextDimColor)
	drawButtons(screen, m.ctx, m.buttons)
	ui.DrawCentered(screen, "Enter to play", m.ctx.Fonts.Small, config.ScreenWidth/2, config.ScreenHeight-30, config.TextDimColor)
}

func (m *MenuState) Exit() {}

// clickedButton возвращает индекс нажатой кнопки или -1.
func clickedButton(buttons []*ui.Button) int {
	for i, b := range buttons {
		if b.IsClicked() {
			return i
		}
	}
	return -1
}

func drawButtons(screen *ebiten.Image, ctx *Context, buttons []*ui.Button) {
	for _, b := range buttons {
		b.Draw(screen, ctx.Fonts.Regular)
	}
}
