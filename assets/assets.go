package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/strider/terrain"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelsDir is the embedded directory holding the TMX maps.
const LevelsDir = "levels"

// LevelFS exposes the embedded levels for callers that load maps themselves.
func LevelFS() fs.FS {
	return assetFS
}

// LoadLevels loads every embedded map, keyed by name, plus the sorted names.
func LoadLevels() (map[string]*terrain.Map, []string, error) {
	return terrain.LoadAll(assetFS, LevelsDir)
}

// MustLoadLevel loads one embedded map by name and panics when it is missing.
func MustLoadLevel(name string) *terrain.Map {
	m, err := terrain.Load(assetFS, fmt.Sprintf("%s/%s.tmx", LevelsDir, name))
	if err != nil {
		panic(fmt.Sprintf("Failed to load level %s: %v", name, err))
	}
	return m
}
