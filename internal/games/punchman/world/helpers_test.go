package world

import (
	"strings"
	"testing"
	"time"
)

const tick = 16 * time.Millisecond

// flatMap is a walled room with a two-row floor and one coin.
const flatMap = `g........g
g........g
g........g
g.....c..g
gggggggggg
gggggggggg`

// pitMap has a two-cell gap in the floor.
const pitMap = `g........g
g........g
g........g
g........g
gggg..gggg
gggg..gggg`

type memLevel struct {
	name    string
	text    string
	spawn   Point
	enemies []Point
	portal  Point
	sw      Point
	reveal  Reveal
	loads   *int
}

// memLevels is an in-memory level source that parses its text on every load,
// the way a file-backed source re-reads the file.
type memLevels []memLevel

func (m memLevels) Count() int { return len(m) }

func (m memLevels) Load(index int) (LevelSpec, error) {
	if index < 0 || index >= len(m) {
		return LevelSpec{}, ErrUnknownLevel
	}
	l := m[index]
	if l.loads != nil {
		*l.loads++
	}
	g, err := ParseGrid(strings.NewReader(l.text), 32, 32)
	if err != nil {
		return LevelSpec{}, err
	}
	return LevelSpec{
		Name:    l.name,
		Grid:    g,
		Spawn:   l.spawn,
		Enemies: l.enemies,
		Portal:  l.portal,
		Switch:  l.sw,
		Reveal:  l.reveal,
	}, nil
}

func flatLevel(name string) memLevel {
	return memLevel{
		name:   name,
		text:   flatMap,
		spawn:  Point{X: 64, Y: 98},
		portal: Point{X: 64, Y: 80},
		sw:     Point{X: 256, Y: 96},
		reveal: Reveal{Col: 4, Row: 2, Code: TilePlatform},
	}
}

func twoLevels() memLevels {
	return memLevels{flatLevel("one"), flatLevel("two")}
}

func newTestWorld(t *testing.T, levels LevelSource) *World {
	t.Helper()
	w, err := New(DefaultConfig(), levels)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return w
}

func newPlayingWorld(t *testing.T, levels LevelSource) *World {
	t.Helper()
	w := newTestWorld(t, levels)
	if err := w.Apply(IntentPlay); err != nil {
		t.Fatalf("Apply(play) error: %v", err)
	}
	return w
}

// settle runs enough ticks for spawned bodies to land.
func settle(w *World) {
	for range 5 {
		w.Step(tick)
	}
}

// shape is a free-standing Shape for geometry tests.
type shape struct {
	x, y, w, h, r float64
}

func (s shape) Bounds() (float64, float64, float64, float64) { return s.x, s.y, s.w, s.h }
func (s shape) CircleRadius() float64                         { return s.r }
