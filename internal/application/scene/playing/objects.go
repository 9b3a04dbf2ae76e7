package playing

import "github.com/younwookim/keeper/internal/domain/entity"

// levelObjects exposes a level's objects and components by ID
type levelObjects struct {
	level *entity.Level
}

func (o levelObjects) Object(id entity.ObjectID) (*entity.Object, bool) {
	obj, ok := o.level.Objects[id]
	return obj, ok
}

func (o levelObjects) Lever(id entity.ObjectID) (*entity.Lever, bool) {
	lever, ok := o.level.Levers[id]
	return lever, ok
}

func (o levelObjects) Hint(id entity.ObjectID) (*entity.Hint, bool) {
	hint, ok := o.level.Hints[id]
	return hint, ok
}

func (o levelObjects) Chest(id entity.ObjectID) (*entity.Chest, bool) {
	chest, ok := o.level.Chests[id]
	return chest, ok
}
