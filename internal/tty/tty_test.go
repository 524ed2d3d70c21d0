package tty

import (
	"strings"
	"testing"

	"go-survivor/internal/app"
	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/entity"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func special(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func newTestSession(t *testing.T) (*Session, tcell.SimulationScreen, *app.Game) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(120, 40)
	t.Cleanup(screen.Fini)

	settings := config.DefaultSettings()
	settings.Seed = 11
	g := app.NewGame(settings, defs.DefaultEnemyLibrary(), nil)
	return NewSession(screen, g), screen, g
}

func TestKeyDirectionLayouts(t *testing.T) {
	cases := map[*tcell.EventKey]direction{
		key('z'):                dirUp,
		key('W'):                dirUp,
		key('s'):                dirDown,
		key('q'):                dirLeft,
		key('a'):                dirLeft,
		key('d'):                dirRight,
		special(tcell.KeyUp):    dirUp,
		special(tcell.KeyDown):  dirDown,
		special(tcell.KeyLeft):  dirLeft,
		special(tcell.KeyRight): dirRight,
	}
	for ev, want := range cases {
		got, ok := keyDirection(ev)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := keyDirection(key('x'))
	assert.False(t, ok)
}

func TestInputHoldDecays(t *testing.T) {
	var in Input
	require.True(t, in.Press(key('d')))
	assert.Equal(t, entity.MoveInput{Right: true}, in.MoveInput())

	for i := 0; i < KeyHoldTicks-1; i++ {
		in.Tick()
	}
	assert.True(t, in.MoveInput().Right)
	in.Tick()
	assert.False(t, in.MoveInput().Right)
}

func TestInputRepeatExtendsHold(t *testing.T) {
	var in Input
	in.Press(key('z'))
	for i := 0; i < KeyHoldTicks-2; i++ {
		in.Tick()
	}
	in.Press(key('z'))
	for i := 0; i < KeyHoldTicks-1; i++ {
		in.Tick()
	}
	assert.True(t, in.MoveInput().Up)
	in.Release()
	assert.Equal(t, entity.MoveInput{}, in.MoveInput())
}

func TestGridMapping(t *testing.T) {
	g := NewGrid(120, 40)
	assert.Equal(t, 39, g.Rows, "last row is the status line")

	col, row, ok := g.ToCell(0, 0)
	assert.True(t, ok)
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)

	col, row, ok = g.ToCell(config.ScreenWidth-1, config.ScreenHeight-1)
	assert.True(t, ok)
	assert.Equal(t, 119, col)
	assert.Equal(t, 38, row)

	_, _, ok = g.ToCell(-1, 10)
	assert.False(t, ok)
	_, _, ok = g.ToCell(10, config.ScreenHeight)
	assert.False(t, ok)

	assert.Equal(t, 1, g.CellsFor(8))
	assert.Equal(t, 7, g.CellsFor(70))
}

func TestDrawPlacesPlayerAndStatus(t *testing.T) {
	s, screen, g := newTestSession(t)
	Draw(screen, g, false)

	grid := NewGrid(120, 40)
	col, row, ok := grid.ToCell(g.Player.Pos.X, g.Player.Pos.Y)
	require.True(t, ok)
	r, _, _, _ := screen.GetContent(col, row)
	assert.Equal(t, PlayerGlyph, r)

	var status strings.Builder
	for x := 0; x < 40; x++ {
		r, _, _, _ := screen.GetContent(x, 39)
		status.WriteRune(r)
	}
	assert.Contains(t, status.String(), "HP 100/100")
	assert.False(t, s.Paused())
}

func TestStatusLine(t *testing.T) {
	_, _, g := newTestSession(t)
	line := StatusLine(g)
	assert.Contains(t, line, "Score 0")
	assert.Contains(t, line, "Wave I/V")
	assert.Contains(t, line, "Normal")
	assert.NotContains(t, line, "BOSS")
}

func TestSessionPauseFreezesSimulation(t *testing.T) {
	s, _, g := newTestSession(t)

	require.True(t, s.Tick())
	assert.Equal(t, 1, g.Ticks())

	s.HandleEvent(special(tcell.KeyEscape))
	require.True(t, s.Paused())
	s.Tick()
	s.Tick()
	assert.Equal(t, 1, g.Ticks())

	s.HandleEvent(special(tcell.KeyEscape))
	s.Tick()
	assert.Equal(t, 2, g.Ticks())
}

func TestSessionMovesPlayer(t *testing.T) {
	s, _, g := newTestSession(t)
	x := g.Player.Pos.X

	s.HandleEvent(key('d'))
	s.Tick()
	assert.Equal(t, x+config.PlayerStep, g.Player.Pos.X)
}

func TestSessionEventsArriveThroughChannel(t *testing.T) {
	s, _, g := newTestSession(t)
	x := g.Player.Pos.X

	s.events <- key('q')
	s.Tick()
	assert.Equal(t, x-config.PlayerStep, g.Player.Pos.X)
}

func TestSessionQuitAndRestart(t *testing.T) {
	s, _, g := newTestSession(t)

	g.Player.Health.Value = 0
	s.Tick()
	require.Equal(t, app.GameOver, g.Outcome())

	s.HandleEvent(special(tcell.KeyEnter))
	assert.Equal(t, app.Running, g.Outcome())
	assert.Equal(t, 0, g.Ticks())

	s.HandleEvent(special(tcell.KeyCtrlC))
	assert.False(t, s.Tick())
	assert.True(t, s.Quit())
}
