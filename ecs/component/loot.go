package component

// Loot is a single-use coin source.
type Loot struct {
	Opened bool
	Coins  int
}

// Open yields Coins the first time and 0 on every later call.
func (l *Loot) Open() int {
	if l == nil || l.Opened {
		return 0
	}
	l.Opened = true
	return l.Coins
}

var LootComponent = NewComponent[Loot]()

const (
	LootClosedAnimation = "chest-closed"
	LootOpenedAnimation = "chest-empty-open"
)
