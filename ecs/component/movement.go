package component

// MoveRule maps one held direction to its motion and presentation.
type MoveRule struct {
	Dir     Direction
	Pressed func(in *Input) bool
	FlipX   bool
}

// PlayerMoveRules is checked in order and the first held direction wins, so
// diagonal input degrades to left, right, up, down priority. No match means
// idle.
var PlayerMoveRules = []MoveRule{
	{Dir: DirectionLeft, Pressed: func(in *Input) bool { return in.Left }, FlipX: true},
	{Dir: DirectionRight, Pressed: func(in *Input) bool { return in.Right }},
	{Dir: DirectionUp, Pressed: func(in *Input) bool { return in.Up }},
	{Dir: DirectionDown, Pressed: func(in *Input) bool { return in.Down }},
}

// ResolveMove returns the rule for the snapshot, or false for idle.
func ResolveMove(in *Input) (MoveRule, bool) {
	if in == nil {
		return MoveRule{}, false
	}
	for _, rule := range PlayerMoveRules {
		if rule.Pressed(in) {
			return rule, true
		}
	}
	return MoveRule{}, false
}
