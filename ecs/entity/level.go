package entity

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/levels"
	"github.com/milk9111/dungeon/prefabs"
)

// Spawned lists what SpawnLevel created.
type Spawned struct {
	Player  ecs.Entity
	Walls   []ecs.Entity
	Enemies []ecs.Entity
	Chests  []ecs.Entity
}

// SpawnLevel builds every wall, enemy, chest and the player of lvl into w.
func SpawnLevel(w *ecs.World, lvl *levels.Level, cat *prefabs.Catalog, log *zap.Logger) (*Spawned, error) {
	if lvl == nil || cat == nil {
		return nil, fmt.Errorf("level: nil level or catalog")
	}
	if log == nil {
		log = zap.NewNop()
	}

	out := &Spawned{}
	for i, r := range lvl.Walls {
		e, err := NewWall(w, r)
		if err != nil {
			return nil, fmt.Errorf("level %s: wall %d: %w", lvl.Name, i, err)
		}
		out.Walls = append(out.Walls, e)
	}
	for i, c := range lvl.Chests {
		e, err := NewChest(w, cat.Loot, c.X, c.Y, c.Coins)
		if err != nil {
			return nil, fmt.Errorf("level %s: chest %d: %w", lvl.Name, i, err)
		}
		out.Chests = append(out.Chests, e)
	}
	for i, p := range lvl.Enemies {
		e, err := NewLizard(w, cat.Enemy, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("level %s: enemy %d: %w", lvl.Name, i, err)
		}
		out.Enemies = append(out.Enemies, e)
	}

	player, err := NewPlayer(w, cat.Player, cat.Weapon, lvl.Player.X, lvl.Player.Y)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", lvl.Name, err)
	}
	out.Player = player

	log.Info("level: spawned",
		zap.String("level", lvl.Name),
		zap.Int("walls", len(out.Walls)),
		zap.Int("enemies", len(out.Enemies)),
		zap.Int("chests", len(out.Chests)))
	return out, nil
}
