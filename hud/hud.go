// Package hud keeps the heads-up display state in sync with gameplay through
// the event channel. It holds no drawing code.
package hud

import (
	"strconv"

	"github.com/milk9111/dungeon/event"
)

type Model struct {
	MaxHearts int
	Hearts    int
	Coins     int

	// OnChange runs after every update applied from the channel.
	OnChange func(*Model)

	ch   *event.Channel
	subs []event.Subscription
}

func NewModel(maxHearts int) *Model {
	return &Model{MaxHearts: maxHearts, Hearts: maxHearts}
}

// Attach subscribes to health and coin changes. Attaching again first
// detaches from the previous channel.
func (m *Model) Attach(ch *event.Channel) {
	m.Detach()
	if ch == nil {
		return
	}
	m.ch = ch
	m.subs = append(m.subs,
		ch.Subscribe(event.HealthChanged, m.setHearts),
		ch.Subscribe(event.CoinsChanged, m.setCoins),
	)
}

// Detach drops every subscription made by Attach.
func (m *Model) Detach() {
	if m.ch == nil {
		return
	}
	for _, sub := range m.subs {
		m.ch.Unsubscribe(sub)
	}
	m.subs = nil
	m.ch = nil
}

// HeartFull reports whether heart slot i is drawn full.
func (m *Model) HeartFull(i int) bool {
	return i >= 0 && i < m.Hearts
}

func (m *Model) CoinsText() string {
	return strconv.Itoa(m.Coins)
}

func (m *Model) setHearts(health int) {
	m.Hearts = min(max(health, 0), m.MaxHearts)
	m.changed()
}

func (m *Model) setCoins(coins int) {
	m.Coins = coins
	m.changed()
}

func (m *Model) changed() {
	if m.OnChange != nil {
		m.OnChange(m)
	}
}
