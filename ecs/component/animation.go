package component

import "strings"

const (
	MotionIdle = "idle"
	MotionRun  = "run"
)

// Animation is the key the renderer should play. The core never touches
// frames; it only selects keys of the form {entity}-{motion}-{facing}.
type Animation struct {
	Current string
	// Changed is set whenever Current switches and cleared by the renderer.
	Changed bool
}

// Play selects key, leaving a running animation alone when it already plays.
func (a *Animation) Play(key string) {
	if a == nil || a.Current == key {
		return
	}
	a.Current = key
	a.Changed = true
}

// AnimationKey composes {entity}-{motion}-{facing}.
func AnimationKey(entity, motion, facing string) string {
	return entity + "-" + motion + "-" + facing
}

// FacingSuffix returns the facing part of a composed key, or "" when the key
// has none (e.g. "faune-faint").
func FacingSuffix(key string) string {
	parts := strings.Split(key, "-")
	if len(parts) < 3 {
		return ""
	}
	return parts[len(parts)-1]
}

var AnimationComponent = NewComponent[Animation]()
