package world

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

// Map load errors.
var (
	ErrEmptyMap    = errors.New("world: map has no rows")
	ErrRaggedRows  = errors.New("world: map rows have inconsistent width")
	ErrBadCellSize = errors.New("world: cell size must be positive")
)

// Grid is the tile map of a loaded level.
// Its shape and cell size are fixed for its lifetime; cell contents change
// through SetTile (pickups and switch reveals).
// Cells are stored in row-major order: index = row*cols + col.
type Grid struct {
	cols, rows   int
	cellW, cellH int
	codes        []TileCode
}

// NewGrid creates a grid filled with air.
func NewGrid(cols, rows, cellW, cellH int) *Grid {
	codes := make([]TileCode, cols*rows)
	for i := range codes {
		codes[i] = TileAir
	}
	return &Grid{
		cols:  cols,
		rows:  rows,
		cellW: cellW,
		cellH: cellH,
		codes: codes,
	}
}

// ParseGrid reads a text map, one row per line and one character per cell.
// Trailing carriage returns are ignored and trailing blank lines are dropped.
// Rows of differing width are a fatal error; no partial grid is returned.
func ParseGrid(r io.Reader, cellW, cellH int) (*Grid, error) {
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadCellSize, cellW, cellH)
	}

	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("world: reading map: %w", err)
	}

	// Trailing blank lines are an editor artefact, not map rows
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyMap
	}

	width := len(lines[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: line 1 is empty", ErrRaggedRows)
	}

	g := NewGrid(width, len(lines), cellW, cellH)
	for row, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: line %d has %d cells, expected %d", ErrRaggedRows, row+1, len(line), width)
		}
		for col := range width {
			g.codes[row*width+col] = TileCode(line[col])
		}
	}
	return g, nil
}

// Cols returns the grid width in cells.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height in cells.
func (g *Grid) Rows() int { return g.rows }

// CellWidth returns the width of one cell in pixels.
func (g *Grid) CellWidth() int { return g.cellW }

// CellHeight returns the height of one cell in pixels.
func (g *Grid) CellHeight() int { return g.cellH }

// PixelWidth returns the grid width in pixels.
func (g *Grid) PixelWidth() int { return g.cols * g.cellW }

// PixelHeight returns the grid height in pixels.
func (g *Grid) PixelHeight() int { return g.rows * g.cellH }

// InBounds returns true if the cell is inside the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// CellOf converts a pixel position to cell coordinates.
// Floor division keeps negative pixels in negative cells, so they stay out of range.
func (g *Grid) CellOf(px, py float64) (col, row int) {
	return int(math.Floor(px / float64(g.cellW))), int(math.Floor(py / float64(g.cellH)))
}

// Cell returns the tile at the given cell.
// The boolean is false for out-of-range cells, which mean "no tile".
func (g *Grid) Cell(col, row int) (Tile, bool) {
	if !g.InBounds(col, row) {
		return Tile{}, false
	}
	return Tile{
		Col:  col,
		Row:  row,
		X:    float64(col * g.cellW),
		Y:    float64(row * g.cellH),
		Code: g.codes[row*g.cols+col],
	}, true
}

// TileAt returns the tile containing the pixel position.
func (g *Grid) TileAt(px, py float64) (Tile, bool) {
	col, row := g.CellOf(px, py)
	return g.Cell(col, row)
}

// Code returns the code at the given cell, or air with ok=false when out of range.
func (g *Grid) Code(col, row int) (TileCode, bool) {
	if !g.InBounds(col, row) {
		return TileAir, false
	}
	return g.codes[row*g.cols+col], true
}

// SetTile rewrites one cell. Out-of-range cells are left alone and false is returned.
func (g *Grid) SetTile(code TileCode, col, row int) bool {
	if !g.InBounds(col, row) {
		return false
	}
	g.codes[row*g.cols+col] = code
	return true
}

// Count returns the number of cells holding the given code.
func (g *Grid) Count(code TileCode) int {
	n := 0
	for _, c := range g.codes {
		if c == code {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	codes := make([]TileCode, len(g.codes))
	copy(codes, g.codes)
	return &Grid{
		cols:  g.cols,
		rows:  g.rows,
		cellW: g.cellW,
		cellH: g.cellH,
		codes: codes,
	}
}

// String renders the grid back to its map text.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.cols*g.rows + g.rows)
	for row := range g.rows {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range g.cols {
			sb.WriteByte(byte(g.codes[row*g.cols+col]))
		}
	}
	return sb.String()
}
