package entity

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
)

// Tile represents a single tile in the level
type Tile struct {
	Type  TileType
	Solid bool
}

// Level holds the tile grid and every object placed in it
type Level struct {
	Name     string
	Width    int // tiles
	Height   int // tiles
	TileSize int
	Tiles    [][]Tile
	SpawnX   int // pixels
	SpawnY   int // pixels

	Objects map[ObjectID]*Object
	Levers  map[ObjectID]*Lever
	Hints   map[ObjectID]*Hint
	Chests  map[ObjectID]*Chest
	Enemies map[ObjectID]*Enemy
	Door    *Door
	DoorID  ObjectID
}

// NewLevel creates an empty level with allocated component maps
func NewLevel(name string, width, height, tileSize int) *Level {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
	}
	return &Level{
		Name:     name,
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		Tiles:    tiles,
		Objects:  make(map[ObjectID]*Object),
		Levers:   make(map[ObjectID]*Lever),
		Hints:    make(map[ObjectID]*Hint),
		Chests:   make(map[ObjectID]*Chest),
		Enemies:  make(map[ObjectID]*Enemy),
	}
}

// GetTile returns the tile at the given tile coordinates
func (l *Level) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= l.Width || ty < 0 || ty >= l.Height {
		return Tile{Type: TileWall, Solid: true}
	}
	return l.Tiles[ty][tx]
}

// SnapToGridCenter returns the center of the grid cell containing pos,
// clamped to the level bounds.
func (l *Level) SnapToGridCenter(pos Vec2) Vec2 {
	ts := float64(l.TileSize)
	tx := clamp(floorDiv(int(pos.X), l.TileSize), 0, l.Width-1)
	ty := clamp(floorDiv(int(pos.Y), l.TileSize), 0, l.Height-1)
	return Vec2{X: float64(tx)*ts + ts/2, Y: float64(ty)*ts + ts/2}
}

// PixelWidth returns the level width in pixels
func (l *Level) PixelWidth() int { return l.Width * l.TileSize }

// PixelHeight returns the level height in pixels
func (l *Level) PixelHeight() int { return l.Height * l.TileSize }

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
