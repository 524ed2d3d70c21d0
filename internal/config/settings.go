// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"go-survivor/internal/defs"

	"github.com/joho/godotenv"
)

// Переменные окружения, которые понимает игра
const (
	EnvDifficulty = "ARENA_DIFFICULTY"
	EnvSeed       = "ARENA_SEED"
	EnvSound      = "ARENA_SOUND"
	EnvShowRange  = "ARENA_SHOW_RANGE"
	EnvFullscreen = "ARENA_FULLSCREEN"
	EnvEnemyDefs  = "ARENA_ENEMY_DEFS"
)

// Settings — настройки забега и интерфейса. Передаются явно в симуляцию.
type Settings struct {
	Difficulty    defs.Difficulty
	Seed          int64 // 0 — сид от времени
	Sound         bool
	ShowRange     bool
	Fullscreen    bool
	EnemyDefsPath string
}

func DefaultSettings() Settings {
	return Settings{
		Difficulty: defs.DifficultyNormal,
		Sound:      true,
	}
}

// LoadSettings reads envFile into the process environment (a missing file is
// fine) and builds Settings from the ARENA_* variables. Invalid values fall
// back to the defaults with a log line.
func LoadSettings(envFile string) (Settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return DefaultSettings(), fmt.Errorf("failed to load %s: %w", envFile, err)
			}
			log.Printf("No %s file found, using environment only", envFile)
		}
	}
	return SettingsFromEnv(os.Getenv), nil
}

// SettingsFromEnv собирает настройки через функцию поиска переменных.
func SettingsFromEnv(getenv func(string) string) Settings {
	s := DefaultSettings()

	if v := getenv(EnvDifficulty); v != "" {
		d, err := defs.ParseDifficulty(v)
		if err != nil {
			log.Printf("%s: %v, using %s", EnvDifficulty, err, s.Difficulty.Label())
		} else {
			s.Difficulty = d
		}
	}
	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			log.Printf("%s: invalid seed %q, using time-based seed", EnvSeed, v)
		} else {
			s.Seed = seed
		}
	}
	s.Sound = envBool(getenv, EnvSound, s.Sound)
	s.ShowRange = envBool(getenv, EnvShowRange, s.ShowRange)
	s.Fullscreen = envBool(getenv, EnvFullscreen, s.Fullscreen)
	s.EnemyDefsPath = strings.TrimSpace(getenv(EnvEnemyDefs))
	return s
}

func envBool(getenv func(string) string, key string, fallback bool) bool {
	v := getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		log.Printf("%s: invalid bool %q, keeping %v", key, v, fallback)
		return fallback
	}
	return b
}
