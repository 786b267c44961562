package terrain

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names recognised in TMX files.
const (
	GroupGround  = "Ground"
	GroupSpawn   = "Spawn"
	DefaultLayer = "ground"
)

// Load parses a TMX file into a ground map. One tile edge equals one world
// unit. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Map, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile size must be positive", tmxPath)
	}

	unitX := float64(levelMap.TileWidth)
	unitZ := float64(levelMap.TileHeight)
	m := &Map{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(levelMap.Width),
		Depth: float64(levelMap.Height),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupGround:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					return nil, fmt.Errorf("load TMX %s: ground object %d has no area", tmxPath, o.ID)
				}
				layer := o.Properties.GetString("layer")
				if layer == "" {
					layer = DefaultLayer
				}
				m.Slabs = append(m.Slabs, Slab{
					X:      o.X / unitX,
					Z:      o.Y / unitZ,
					Width:  o.Width / unitX,
					Depth:  o.Height / unitZ,
					Height: o.Properties.GetFloat("height"),
					GradeX: o.Properties.GetFloat("gradeX"),
					GradeZ: o.Properties.GetFloat("gradeZ"),
					Layer:  layer,
				})
			}
		case GroupSpawn:
			for _, o := range og.Objects {
				m.Spawns = append(m.Spawns, Spawn{
					X:     o.X / unitX,
					Z:     o.Y / unitZ,
					Yaw:   o.Properties.GetFloat("yaw"),
					Index: o.Properties.GetInt("index"),
				})
			}
		}
	}

	if len(m.Slabs) == 0 {
		return nil, fmt.Errorf("load TMX %s: no %q objects", tmxPath, GroupGround)
	}

	// Sort spawns by index for consistent assignment
	sort.SliceStable(m.Spawns, func(i, j int) bool {
		return m.Spawns[i].Index < m.Spawns[j].Index
	})

	return m, nil
}

// LoadAll discovers all .tmx files in dir within fsys and returns them keyed
// by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Map, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	maps := make(map[string]*Map, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		m, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		maps[m.Name] = m
		names = append(names, m.Name)
	}

	sort.Strings(names)
	return maps, names, nil
}
