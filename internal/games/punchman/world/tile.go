// Package world implements the Punch Man simulation: the tile grid, collision
// geometry, entity kinematics, enemy patrol, interactions and the per-tick
// update loop. It has no terminal, audio or storage dependencies; the platform
// feeds it intents and reads back snapshots and cues.
package world

// TileCode classifies the contents of one grid cell.
// Codes are the single characters used in map files.
type TileCode byte

// Known tile codes. Any other non-air code behaves as a plain solid.
const (
	TileAir      TileCode = '.'
	TileGround   TileCode = 'g'
	TilePlatform TileCode = 'p'
	TileSpikes   TileCode = 's'
	TileCoin     TileCode = 'c'
	TileGem      TileCode = 'v'
)

// IsAir reports whether the code is empty space.
func (c TileCode) IsAir() bool {
	return c == TileAir
}

// IsCollectible reports whether the code is a pickup (coin or gem).
func (c TileCode) IsCollectible() bool {
	return c == TileCoin || c == TileGem
}

// IsHazard reports whether touching the code kills the player.
func (c TileCode) IsHazard() bool {
	return c == TileSpikes
}

// String returns the map character for the code.
func (c TileCode) String() string {
	return string(rune(c))
}

// Tile is a single cell looked up from a Grid.
// X and Y are the pixel coordinates of the cell's top-left corner.
type Tile struct {
	Col, Row int
	X, Y     float64
	Code     TileCode
}
