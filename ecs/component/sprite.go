package component

import "image/color"

// Sprite is the debug presentation of an entity: a filled rectangle the size
// of its collider.
type Sprite struct {
	Color  color.NRGBA
	Hidden bool
	Layer  int
}

var SpriteComponent = NewComponent[Sprite]()
