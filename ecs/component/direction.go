package component

// Direction is one of the four cardinal directions. The numeric order matches
// the order enemies roll from.
type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Directions lists every cardinal direction.
var Directions = [...]Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}

// Unit returns the screen-space unit vector (y grows downward).
func (d Direction) Unit() (x, y float64) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	}
	return 0, 0
}

// Suffix is the facing part of an animation key.
func (d Direction) Suffix() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "side"
	}
}

func (d Direction) Valid() bool {
	return d <= DirectionRight
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return "invalid"
}

// ParseDirection maps a prefab string to a Direction.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if d.String() == s {
			return d, true
		}
	}
	return DirectionRight, false
}
