package system

import (
	"fmt"

	"github.com/younwookim/keeper/internal/domain/entity"
	"github.com/younwookim/keeper/internal/infrastructure/config"
)

// LoadLevel converts a LevelConfig into a Level entity. Object IDs are
// assigned in file order starting at 1, objects first, then enemies.
func LoadLevel(cfg *config.LevelConfig, entities *config.EntitiesConfig) (*entity.Level, error) {
	if cfg.TileSize <= 0 {
		return nil, fmt.Errorf("level %q: tile_size must be positive", cfg.ID)
	}

	rows := make([][]rune, len(cfg.Tiles))
	width := 0
	for y, row := range cfg.Tiles {
		rows[y] = []rune(row)
		width = max(width, len(rows[y]))
	}
	height := len(cfg.Tiles)
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("level %q: no tiles", cfg.ID)
	}

	level := entity.NewLevel(cfg.ID, width, height, cfg.TileSize)
	level.SpawnX = cfg.PlayerSpawn.X
	level.SpawnY = cfg.PlayerSpawn.Y

	for y, row := range rows {
		for x, char := range row {
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				continue
			}
			var tileType entity.TileType
			switch mapping.Type {
			case "wall":
				tileType = entity.TileWall
			default:
				tileType = entity.TileEmpty
			}
			level.Tiles[y][x] = entity.Tile{Type: tileType, Solid: mapping.Solid}
		}
	}

	nextID := entity.ObjectID(1)
	for i, spawn := range cfg.Objects {
		kind, err := entity.ParseKind(spawn.Tag)
		if err != nil {
			return nil, fmt.Errorf("level %q: object %d: %w", cfg.ID, i, err)
		}
		if kind == entity.KindEnemy {
			return nil, fmt.Errorf("level %q: object %d: enemies belong in the enemies list", cfg.ID, i)
		}

		layerName := spawn.Layer
		if layerName == "" {
			layerName = "item"
		}
		layer, err := entity.ParseLayer(layerName)
		if err != nil {
			return nil, fmt.Errorf("level %q: object %d: %w", cfg.ID, i, err)
		}

		w, h := level.TileSize, level.TileSize
		if entities != nil {
			if oc, ok := entities.Objects[spawn.Tag]; ok && oc.Sprite.FrameWidth > 0 {
				w, h = oc.Sprite.FrameWidth, oc.Sprite.FrameHeight
			}
		}

		id := nextID
		nextID++
		pos := entity.Vec2{X: float64(spawn.X), Y: float64(spawn.Y)}
		level.Objects[id] = entity.NewObject(id, kind, pos, w, h, layer)

		switch kind {
		case entity.KindLever:
			level.Levers[id] = &entity.Lever{On: spawn.On}
		case entity.KindHint:
			level.Hints[id] = &entity.Hint{Text: spawn.Text}
		case entity.KindChest:
			level.Chests[id] = &entity.Chest{Keys: spawn.Keys}
		case entity.KindDoor:
			if level.Door != nil {
				return nil, fmt.Errorf("level %q: object %d: second door", cfg.ID, i)
			}
			level.Door = &entity.Door{Required: spawn.Required}
			level.DoorID = id
		}
	}

	for i, spawn := range cfg.Enemies {
		if entities == nil {
			return nil, fmt.Errorf("level %q: enemy %d: no entity config", cfg.ID, i)
		}
		ec, ok := entities.Enemies[spawn.Type]
		if !ok {
			return nil, fmt.Errorf("level %q: enemy %d: unknown enemy type %q", cfg.ID, i, spawn.Type)
		}

		id := nextID
		nextID++
		level.Enemies[id] = entity.NewEnemy(id, float64(spawn.X), float64(spawn.Y), spawn.Type,
			spawn.DirX, spawn.DirY, ec.AI.PatrolDistance, ec.AI.MoveSpeed)
	}

	return level, nil
}
