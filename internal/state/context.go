// internal/state/context.go
package state

import (
	"log"

	"go-survivor/internal/app"
	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/sound"
	"go-survivor/internal/ui"
	"go-survivor/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Context — всё, что делят между собой экраны: симуляция, настройки, шрифты, звук.
type Context struct {
	Game     *app.Game
	Library  defs.EnemyLibrary
	Settings config.Settings
	Fonts    ui.Fonts
	HUD      *ui.HUD
	Info     *ui.InfoPanel
	Renderer *render.ArenaRenderer
	Sound    *sound.Manager

	quit bool
}

func NewContext(game *app.Game, library defs.EnemyLibrary, settings config.Settings, fonts ui.Fonts, snd *sound.Manager) *Context {
	return &Context{
		Game:     game,
		Library:  library,
		Settings: settings,
		Fonts:    fonts,
		HUD:      ui.NewHUD(fonts),
		Info:     ui.NewInfoPanel(fonts, library),
		Renderer: render.NewArenaRenderer(library),
		Sound:    snd,
	}
}

// StartRun применяет выбранную сложность и начинает новый забег.
func (c *Context) StartRun(d defs.Difficulty) {
	c.Settings.Difficulty = d
	c.Game.SetSettings(c.Settings)
	c.Game.Reset()
	c.Renderer.ResetAim()
}

// ApplySettings пробрасывает изменённые опции в звук и окно.
func (c *Context) ApplySettings() {
	c.Game.SetSettings(c.Settings)
	ebiten.SetFullscreen(c.Settings.Fullscreen)
	if c.Sound == nil {
		return
	}
	c.Sound.SetEnabled(c.Settings.Sound)
	if !c.Settings.Sound {
		c.Sound.Detach(c.Game.EventDispatcher)
		return
	}
	if err := c.Sound.Initialize(); err != nil {
		log.Printf("Sound disabled: %v", err)
		return
	}
	c.Sound.Attach(c.Game.EventDispatcher)
}

func (c *Context) Quit()            { c.quit = true }
func (c *Context) ShouldQuit() bool { return c.quit }
