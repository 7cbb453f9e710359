package component

// Input is the per-frame input snapshot. Confirm is edge-triggered: it is
// true only on the frame the button went down.
type Input struct {
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Confirm bool
}

var InputComponent = NewComponent[Input]()
