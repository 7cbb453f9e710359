package component

// Player holds the player's tuning and the state that is not part of the
// health machine.
type Player struct {
	MoveSpeed  float64
	ThrowSpeed float64
	// AnimPrefix is the entity part of animation keys, e.g. "faune".
	AnimPrefix string

	Coins int
	// ActiveLoot is the loot container the player currently overlaps, or 0.
	ActiveLoot uint64
	// Weapon is the entity holding the player's ProjectilePool, or 0.
	Weapon uint64
}

var PlayerComponent = NewComponent[Player]()

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()
