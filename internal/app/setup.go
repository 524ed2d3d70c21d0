// internal/app/setup.go
package app

import (
	"fmt"

	"go-survivor/internal/defs"
)

// LoadLibrary возвращает встроенные определения врагов, поверх которых
// накладывается JSON-файл, если путь задан.
func LoadLibrary(path string) (defs.EnemyLibrary, error) {
	library := defs.DefaultEnemyLibrary()
	if path == "" {
		return library, nil
	}
	library, err := defs.LoadEnemyDefinitions(path, library)
	if err != nil {
		return nil, fmt.Errorf("failed to load enemy definitions: %w", err)
	}
	return library, nil
}
