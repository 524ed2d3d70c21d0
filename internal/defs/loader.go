// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
)

// LoadEnemyDefinitions reads a JSON object keyed by enemy kind and overlays
// its non-zero fields onto a copy of base.
//
//	{"TANK": {"health": 260, "speed": 0.7}}
func LoadEnemyDefinitions(path string, base EnemyLibrary) (EnemyLibrary, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var raw map[string]EnemyDefinition
	if err := json.Unmarshal(file, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	lib := make(EnemyLibrary, len(base))
	for kind, def := range base {
		lib[kind] = def
	}
	for key, over := range raw {
		kind := EnemyKind(strings.ToUpper(key))
		if !kind.Valid() {
			return nil, fmt.Errorf("unknown enemy kind %q in %s", key, path)
		}
		def := overlay(lib.Get(kind), over)
		def.Kind = kind
		lib[kind] = def
	}

	log.Printf("Loaded %d enemy definition overrides from %s", len(raw), path)
	return lib, nil
}
