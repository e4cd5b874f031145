// Package obj holds the game objects: the tile map, the player, the flying
// enemy, and their supporting pieces. All positions are in game units.
package obj

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/cavern/common"
	"github.com/milk9111/cavern/units"
)

// TileType classifies a grid cell.
type TileType int

const (
	AirTile TileType = iota
	WallTile
)

// CollisionTile is a read-only snapshot of one grid cell returned by
// CollidingTiles.
type CollisionTile struct {
	Row, Col units.Tile
	Type     TileType
}

// Map is the level's tile grid. Actors only query it; nothing in the core
// mutates a map after construction.
type Map struct {
	width, height units.Tile
	tiles         [][]TileType // row-major [row][col]

	spawnRow, spawnCol units.Tile

	wallImg *ebiten.Image
}

const (
	wallRune  = '#'
	spawnRune = '@'
)

// NewMapFromRows builds a map from one string per row, where '#' is a wall,
// '@' marks the player spawn, and anything else is open space. All rows must
// be the same length.
func NewMapFromRows(rows []string) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("map: empty rows")
	}

	m := &Map{
		width:    units.Tile(len(rows[0])),
		height:   units.Tile(len(rows)),
		spawnRow: units.Tile(len(rows)) / 2,
		spawnCol: units.Tile(len(rows[0])) / 2,
	}
	m.tiles = make([][]TileType, m.height)
	for row, line := range rows {
		if units.Tile(len(line)) != m.width {
			return nil, fmt.Errorf("map: row %d has %d tiles, want %d", row, len(line), m.width)
		}
		m.tiles[row] = make([]TileType, m.width)
		for col, r := range line {
			switch r {
			case wallRune:
				m.tiles[row][col] = WallTile
			case spawnRune:
				m.spawnRow = units.Tile(row)
				m.spawnCol = units.Tile(col)
			}
		}
	}
	return m, nil
}

type mapFile struct {
	Rows []string `yaml:"rows"`
}

// ParseMap decodes the YAML level format: a `rows` list of strings using the
// NewMapFromRows runes.
func ParseMap(data []byte) (*Map, error) {
	var file mapFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("map: unmarshal: %w", err)
	}
	return NewMapFromRows(file.Rows)
}

// LoadMap reads a YAML level from disk.
func LoadMap(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("map: load %s: %w", path, err)
	}
	m, err := ParseMap(data)
	if err != nil {
		return nil, fmt.Errorf("map: load %s: %w", path, err)
	}
	return m, nil
}

// NewTestMap builds the hardcoded cave used when no level file is given:
// a 20x15 room with a floor, bounding walls, and one free-standing column.
func NewTestMap() *Map {
	rows := []string{
		"####################",
		"#..................#",
		"#..................#",
		"#..................#",
		"#..................#",
		"#..................#",
		"#..................#",
		"#.........@........#",
		"#..................#",
		"#...............#..#",
		"#...............#..#",
		"#...............#..#",
		"####################",
		"####################",
		"####################",
	}
	m, err := NewMapFromRows(rows)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Map) Width() units.Tile  { return m.width }
func (m *Map) Height() units.Tile { return m.height }

// SpawnPosition is the player spawn in game units.
func (m *Map) SpawnPosition() (units.Game, units.Game) {
	return units.TileToGame(m.spawnCol), units.TileToGame(m.spawnRow)
}

func (m *Map) clampRow(row units.Tile) units.Tile {
	if row < 0 {
		return 0
	}
	if row >= m.height {
		return m.height - 1
	}
	return row
}

func (m *Map) clampCol(col units.Tile) units.Tile {
	if col < 0 {
		return 0
	}
	if col >= m.width {
		return m.width - 1
	}
	return col
}

// CollidingTiles returns a snapshot of every grid cell the rectangle's
// bounding tile range overlaps, boundary cells included. Rectangles reaching
// past the grid are clamped to valid indices. Traversal order is
// deterministic (row-major) but callers scan for the tile type they want
// rather than relying on it.
func (m *Map) CollidingTiles(rect common.Rectangle) []CollisionTile {
	firstRow := m.clampRow(units.GameToTile(rect.Top))
	lastRow := m.clampRow(units.GameToTile(rect.Bottom()))
	firstCol := m.clampCol(units.GameToTile(rect.Left))
	lastCol := m.clampCol(units.GameToTile(rect.Right()))

	tiles := make([]CollisionTile, 0, (lastRow-firstRow+1)*(lastCol-firstCol+1))
	for row := firstRow; row <= lastRow; row++ {
		for col := firstCol; col <= lastCol; col++ {
			tiles = append(tiles, CollisionTile{Row: row, Col: col, Type: m.tiles[row][col]})
		}
	}
	return tiles
}

// Draw renders every wall tile as a flat square.
func (m *Map) Draw(screen *ebiten.Image) {
	if m.wallImg == nil {
		m.wallImg = ebiten.NewImage(int(units.TileSize), int(units.TileSize))
		m.wallImg.Fill(colornames.Darkslateblue)
	}
	for row := units.Tile(0); row < m.height; row++ {
		for col := units.Tile(0); col < m.width; col++ {
			if m.tiles[row][col] != WallTile {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(units.TileToPixel(col)), float64(units.TileToPixel(row)))
			screen.DrawImage(m.wallImg, op)
		}
	}
}
