package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from the map.
const (
	GroupSolids      = "Solids"
	GroupPlatforms   = "Platforms"
	GroupEnemies     = "Enemies"
	GroupPlayerSpawn = "PlayerSpawn"
)

// ErrNoSpawn is returned for a map without a PlayerSpawn object.
var ErrNoSpawn = errors.New("no player spawn")

// LoadArena parses a TMX file into an Arena. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupSolids:
			arena.Solids = appendRects(arena.Solids, og.Objects)
		case GroupPlatforms:
			arena.Platforms = appendRects(arena.Platforms, og.Objects)
		case GroupEnemies:
			for _, o := range og.Objects {
				arena.Enemies = append(arena.Enemies, EnemySpawn{
					Rect:      Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					ExpReward: o.Properties.GetFloat("expReward"),
				})
			}
		case GroupPlayerSpawn:
			// Point objects; the first one wins.
			if len(og.Objects) > 0 && !spawnFound {
				arena.PlayerSpawn = Point{X: og.Objects[0].X, Y: og.Objects[0].Y}
				spawnFound = true
			}
		}
	}
	if !spawnFound {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoSpawn)
	}

	// Left to right for stable enemy order
	sort.SliceStable(arena.Enemies, func(i, j int) bool {
		return arena.Enemies[i].X < arena.Enemies[j].X
	})

	return arena, nil
}

func appendRects(rects []Rect, objects []*tiled.Object) []Rect {
	for _, o := range objects {
		if o.Width <= 0 || o.Height <= 0 {
			continue
		}
		rects = append(rects, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
	}
	return rects
}

// ListArenas returns the stems of all .tmx files in dir, sorted.
func ListArenas(fsys fs.FS, dir string) ([]string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".tmx"))
	}
	sort.Strings(names)
	return names, nil
}
