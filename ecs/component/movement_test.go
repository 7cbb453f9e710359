package component

import "testing"

func TestResolveMovePriority(t *testing.T) {
	cases := []struct {
		name  string
		in    Input
		want  Direction
		moves bool
	}{
		{"none", Input{}, 0, false},
		{"left", Input{Left: true}, DirectionLeft, true},
		{"right", Input{Right: true}, DirectionRight, true},
		{"up", Input{Up: true}, DirectionUp, true},
		{"down", Input{Down: true}, DirectionDown, true},
		{"left_beats_right", Input{Left: true, Right: true}, DirectionLeft, true},
		{"right_beats_up", Input{Right: true, Up: true}, DirectionRight, true},
		{"up_beats_down", Input{Up: true, Down: true}, DirectionUp, true},
		{"confirm_only", Input{Confirm: true}, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rule, ok := ResolveMove(&c.in)
			if ok != c.moves {
				t.Fatalf("moves=%v, want %v", ok, c.moves)
			}
			if ok && rule.Dir != c.want {
				t.Fatalf("dir=%s, want %s", rule.Dir, c.want)
			}
		})
	}
}

func TestAnimationKeys(t *testing.T) {
	if got := AnimationKey("faune", MotionRun, DirectionLeft.Suffix()); got != "faune-run-side" {
		t.Fatalf("unexpected key %q", got)
	}
	if got := FacingSuffix("faune-run-up"); got != "up" {
		t.Fatalf("unexpected suffix %q", got)
	}
	if got := FacingSuffix("faune-faint"); got != "" {
		t.Fatalf("expected no suffix, got %q", got)
	}

	var a Animation
	a.Play("faune-idle-down")
	a.Changed = false
	a.Play("faune-idle-down")
	if a.Changed {
		t.Fatalf("replaying the current key must not flag a change")
	}
}
