// internal/defs/difficulty.go
package defs

import (
	"fmt"
	"strings"
)

// Difficulty — уровень сложности, выбирается перед забегом
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyNormal Difficulty = "NORMAL"
	DifficultyHard   Difficulty = "HARD"
)

// Difficulties in menu order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}

// Multipliers — множители, применяемые к врагам при создании
type Multipliers struct {
	HP       float64
	Damage   float64
	WaveSize float64
}

var difficultyMultipliers = map[Difficulty]Multipliers{
	DifficultyEasy:   {HP: 0.7, Damage: 0.6, WaveSize: 0.6},
	DifficultyNormal: {HP: 1.0, Damage: 1.0, WaveSize: 1.0},
	DifficultyHard:   {HP: 1.5, Damage: 1.4, WaveSize: 1.5},
}

// Multipliers returns the scaling for d; unknown levels scale like Normal.
func (d Difficulty) Multipliers() Multipliers {
	if m, ok := difficultyMultipliers[d]; ok {
		return m
	}
	return difficultyMultipliers[DifficultyNormal]
}

// Label — название для меню
func (d Difficulty) Label() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyHard:
		return "Hard"
	}
	return "Normal"
}

// Description — подпись под кнопкой выбора сложности
func (d Difficulty) Description() string {
	m := d.Multipliers()
	return fmt.Sprintf("HP x%.1f  DMG x%.1f  Waves x%.1f", m.HP, m.Damage, m.WaveSize)
}

// ParseDifficulty accepts the level name in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := difficultyMultipliers[d]; !ok {
		return DifficultyNormal, fmt.Errorf("unknown difficulty %q", s)
	}
	return d, nil
}
