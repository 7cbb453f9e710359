package component

import "testing"

func TestLootOpensOnce(t *testing.T) {
	cases := []struct {
		name  string
		coins int
		calls int
	}{
		{"two_calls", 50, 2},
		{"many_calls", 120, 10},
		{"empty_chest", 0, 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := &Loot{Coins: c.coins}
			if got := l.Open(); got != c.coins {
				t.Fatalf("first open yielded %d, want %d", got, c.coins)
			}
			for i := 1; i < c.calls; i++ {
				if got := l.Open(); got != 0 {
					t.Fatalf("open #%d yielded %d, want 0", i+1, got)
				}
			}
			if !l.Opened {
				t.Fatalf("loot should be marked opened")
			}
		})
	}
}

func TestNilLootYieldsNothing(t *testing.T) {
	var l *Loot
	if l.Open() != 0 {
		t.Fatalf("nil loot must yield 0")
	}
}
