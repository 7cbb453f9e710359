package hud

import (
	"testing"

	"github.com/milk9111/dungeon/event"
)

func TestModelFollowsEvents(t *testing.T) {
	ch := event.NewChannel()
	m := NewModel(3)
	updates := 0
	m.OnChange = func(*Model) { updates++ }
	m.Attach(ch)

	ch.Emit(event.HealthChanged, 2)
	ch.Emit(event.CoinsChanged, 50)

	cases := []struct {
		slot int
		full bool
	}{
		{0, true}, {1, true}, {2, false}, {3, false}, {-1, false},
	}
	for _, tc := range cases {
		if got := m.HeartFull(tc.slot); got != tc.full {
			t.Fatalf("slot %d full=%v, want %v", tc.slot, got, tc.full)
		}
	}
	if m.CoinsText() != "50" {
		t.Fatalf("coins label %q", m.CoinsText())
	}
	if updates != 2 {
		t.Fatalf("expected 2 change callbacks, got %d", updates)
	}
}

func TestHeartsAreClamped(t *testing.T) {
	ch := event.NewChannel()
	m := NewModel(3)
	m.Attach(ch)

	ch.Emit(event.HealthChanged, -4)
	if m.Hearts != 0 {
		t.Fatalf("expected 0 hearts, got %d", m.Hearts)
	}
	ch.Emit(event.HealthChanged, 9)
	if m.Hearts != 3 {
		t.Fatalf("expected 3 hearts, got %d", m.Hearts)
	}
}

func TestDetachStopsUpdates(t *testing.T) {
	ch := event.NewChannel()
	m := NewModel(3)
	m.Attach(ch)
	m.Detach()

	ch.Emit(event.HealthChanged, 1)
	ch.Emit(event.CoinsChanged, 10)
	if m.Hearts != 3 || m.Coins != 0 {
		t.Fatalf("detached model changed: %+v", m)
	}
	for _, topic := range event.Topics {
		if n := ch.HandlerCount(topic); n != 0 {
			t.Fatalf("%s still has %d handlers", topic, n)
		}
	}
}

func TestReattachMovesChannels(t *testing.T) {
	first, second := event.NewChannel(), event.NewChannel()
	m := NewModel(3)
	m.Attach(first)
	m.Attach(second)

	first.Emit(event.CoinsChanged, 5)
	second.Emit(event.CoinsChanged, 7)
	if m.Coins != 7 {
		t.Fatalf("expected coins from the second channel, got %d", m.Coins)
	}
	if first.HandlerCount(event.CoinsChanged) != 0 {
		t.Fatalf("first channel should be released")
	}
}
