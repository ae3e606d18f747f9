// Package levels turns level configuration and text map files into world
// level specs. Maps are re-read on every load so a reload restores pickups.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/vovakirdan/tui-punchman/internal/config"
	"github.com/vovakirdan/tui-punchman/internal/games/punchman/world"
)

//go:embed maps/*.txt
var bundled embed.FS

// ErrBadPlacement is returned when a level puts something outside its map.
var ErrBadPlacement = errors.New("levels: placement outside the map")

// Loader implements world.LevelSource over a file system of map files.
type Loader struct {
	fsys   fs.FS
	levels []config.LevelConfig
	cellW  int
	cellH  int
}

// New creates a loader reading map files from fsys.
func New(fsys fs.FS, cfg config.PunchmanConfig) *Loader {
	return &Loader{
		fsys:   fsys,
		levels: cfg.Levels,
		cellW:  cfg.World.CellWidth,
		cellH:  cfg.World.CellHeight,
	}
}

// Bundled creates a loader over the maps compiled into the binary.
func Bundled(cfg config.PunchmanConfig) *Loader {
	sub, err := fs.Sub(bundled, "maps")
	if err != nil {
		// fs.Sub only fails on an invalid path literal
		panic(err)
	}
	return New(sub, cfg)
}

// FromDir creates a loader reading map files from a directory on disk.
func FromDir(dir string, cfg config.PunchmanConfig) *Loader {
	return New(os.DirFS(dir), cfg)
}

// Count returns the number of configured levels.
func (l *Loader) Count() int {
	return len(l.levels)
}

// Name returns the display name of a level, or "" if out of range.
func (l *Loader) Name(index int) string {
	if index < 0 || index >= len(l.levels) {
		return ""
	}
	return l.levels[index].Name
}

// Load reads a level's map and builds its spec.
func (l *Loader) Load(index int) (world.LevelSpec, error) {
	if index < 0 || index >= len(l.levels) {
		return world.LevelSpec{}, fmt.Errorf("%w: %d", world.ErrUnknownLevel, index+1)
	}
	lc := l.levels[index]

	grid, err := LoadMap(l.fsys, lc.Map, l.cellW, l.cellH)
	if err != nil {
		return world.LevelSpec{}, err
	}

	spec := world.LevelSpec{
		Name:   lc.Name,
		Grid:   grid,
		Spawn:  point(lc.Spawn),
		Portal: point(lc.Portal),
		Switch: point(lc.Switch),
		Reveal: world.Reveal{
			Col:  lc.Reveal.Col,
			Row:  lc.Reveal.Row,
			Code: revealCode(lc.Reveal.Code),
		},
	}
	for _, e := range lc.Enemies {
		spec.Enemies = append(spec.Enemies, point(e))
	}

	if err := checkPlacement(spec); err != nil {
		return world.LevelSpec{}, fmt.Errorf("levels: %s: %w", lc.Map, err)
	}
	return spec, nil
}

// LoadMap reads and parses one map file.
func LoadMap(fsys fs.FS, name string, cellW, cellH int) (*world.Grid, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("levels: open map %s: %w", name, err)
	}
	defer f.Close()

	grid, err := world.ParseGrid(f, cellW, cellH)
	if err != nil {
		return nil, fmt.Errorf("levels: parse map %s: %w", name, err)
	}
	return grid, nil
}

// CheckFile parses a map file on disk, for validating hand-edited maps.
func CheckFile(path string, cellW, cellH int) (*world.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("levels: open map %s: %w", path, err)
	}
	defer f.Close()

	grid, err := world.ParseGrid(f, cellW, cellH)
	if err != nil {
		return nil, fmt.Errorf("levels: parse map %s: %w", path, err)
	}
	return grid, nil
}

// checkPlacement rejects spawns, enemies, portals, switches and reveal cells
// that fall off the map.
func checkPlacement(spec world.LevelSpec) error {
	g := spec.Grid
	inside := func(p world.Point) bool {
		return p.X >= 0 && p.Y >= 0 &&
			p.X < float64(g.PixelWidth()) && p.Y < float64(g.PixelHeight())
	}

	if !inside(spec.Spawn) {
		return fmt.Errorf("%w: spawn (%v, %v)", ErrBadPlacement, spec.Spawn.X, spec.Spawn.Y)
	}
	for i, e := range spec.Enemies {
		if !inside(e) {
			return fmt.Errorf("%w: enemy %d at (%v, %v)", ErrBadPlacement, i+1, e.X, e.Y)
		}
	}
	if !inside(spec.Portal) {
		return fmt.Errorf("%w: portal (%v, %v)", ErrBadPlacement, spec.Portal.X, spec.Portal.Y)
	}
	if !inside(spec.Switch) {
		return fmt.Errorf("%w: switch (%v, %v)", ErrBadPlacement, spec.Switch.X, spec.Switch.Y)
	}
	if !g.InBounds(spec.Reveal.Col, spec.Reveal.Row) {
		return fmt.Errorf("%w: reveal cell (%d, %d)", ErrBadPlacement, spec.Reveal.Col, spec.Reveal.Row)
	}
	return nil
}

func point(p config.Point) world.Point {
	return world.Point{X: p.X, Y: p.Y}
}

// revealCode converts the configured character; an empty code reveals a platform.
func revealCode(s string) world.TileCode {
	if s == "" {
		return world.TilePlatform
	}
	return world.TileCode(s[0])
}
