package ui

import (
	"image"
	"testing"

	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillWidthClamps(t *testing.T) {
	assert.Equal(t, float32(100), FillWidth(200, 0.5))
	assert.Equal(t, float32(0), FillWidth(200, -1))
	assert.Equal(t, float32(200), FillWidth(200, 3))
}

func TestWaveLabel(t *testing.T) {
	assert.Equal(t, "", WaveLabel(0, false))
	assert.Equal(t, "Wave I / V", WaveLabel(1, false))
	assert.Equal(t, "Wave IV / V", WaveLabel(4, false))
	assert.Equal(t, "BOSS", WaveLabel(5, true))
}

func TestButtonColumnLayout(t *testing.T) {
	buttons := ButtonColumn(300, "Play", "Options", "Quit")
	require.Len(t, buttons, 3)

	for i, b := range buttons {
		assert.Equal(t, ButtonWidth, b.Rect.Dx())
		assert.Equal(t, ButtonHeight, b.Rect.Dy())
		assert.Equal(t, config.ScreenWidth/2, b.Rect.Min.X+b.Rect.Dx()/2)
		if i > 0 {
			assert.Equal(t, ButtonHeight+ButtonSpacing, b.Rect.Min.Y-buttons[i-1].Rect.Min.Y)
		}
	}
	assert.Equal(t, "Options", buttons[1].Text)
}

func TestButtonContains(t *testing.T) {
	b := NewButton(image.Rect(10, 10, 110, 60), "Ok")
	assert.True(t, b.Contains(10, 10))
	assert.True(t, b.Contains(109, 59))
	assert.False(t, b.Contains(110, 30), "max edge is exclusive")
	assert.False(t, b.Contains(5, 30))
}

func TestEnemyRowsFollowLibrary(t *testing.T) {
	lib := defs.DefaultEnemyLibrary()
	tank := lib[defs.EnemyTank]
	tank.Health = 321
	lib[defs.EnemyTank] = tank

	rows := EnemyRows(lib)
	require.Len(t, rows, len(defs.EnemyKinds))
	assert.Equal(t, []string{"Melee", "Triangle", "40", "10", "2.0", "1/s"}, rows[0])
	assert.Equal(t, "0.5/s", rows[1][5])
	assert.Equal(t, "321", rows[2][2])
}

func TestWaveRows(t *testing.T) {
	rows := WaveRows(1.0)
	require.Len(t, rows, config.FinalWave)
	assert.Equal(t, [3]string{"Wave 1", "11", "100% Melee"}, rows[0])
	assert.Equal(t, "23", rows[4][1])
	assert.Contains(t, rows[4][2], "BOSS")

	easy := WaveRows(defs.DifficultyEasy.Multipliers().WaveSize)
	assert.Equal(t, "6", easy[0][1])
}

func TestPlayerRows(t *testing.T) {
	rows := PlayerRows(entity.NewPlayer())
	assert.Equal(t, [2]string{"Health", "100 / 100"}, rows[0])
	assert.Equal(t, "3 shots/s", rows[3][1])
}

func TestFallbackFontsComplete(t *testing.T) {
	f := FallbackFonts()
	assert.NotNil(t, f.Small)
	assert.NotNil(t, f.Regular)
	assert.NotNil(t, f.Title)
	assert.NotNil(t, f.Huge)
}

func TestDifficultyColor(t *testing.T) {
	assert.Equal(t, config.HPHighColor, DifficultyColor(defs.DifficultyEasy))
	assert.Equal(t, config.HPMidColor, DifficultyColor(defs.DifficultyNormal))
	assert.Equal(t, config.HPLowColor, DifficultyColor(defs.DifficultyHard))
}
