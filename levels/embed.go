package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Level is a room built from wall rectangles plus spawn points. Coordinates
// are world pixels; walls are given by their top-left corner.
type Level struct {
	Name    string  `yaml:"name"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Walls   []Rect  `yaml:"walls"`
	Player  Point   `yaml:"player"`
	Enemies []Point `yaml:"enemies"`
	Chests  []Chest `yaml:"chests"`
}

type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Center returns the middle of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Chest is a loot container spawn. Zero coins means the prefab default.
type Chest struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Coins int     `yaml:"coins"`
}

func LoadLevelFromFS(name string) (*Level, error) {
	if path.Ext(name) == "" {
		name += ".yaml"
	}
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level %s: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(name, path.Ext(name))
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return &lvl, nil
}

// Names lists the embedded levels without extension.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return errors.New("size must be positive")
	}
	if !l.inside(l.Player.X, l.Player.Y) {
		return fmt.Errorf("player spawn (%v,%v) outside the level", l.Player.X, l.Player.Y)
	}
	for i, w := range l.Walls {
		if w.W <= 0 || w.H <= 0 {
			return fmt.Errorf("wall %d has no area", i)
		}
	}
	for i, e := range l.Enemies {
		if !l.inside(e.X, e.Y) {
			return fmt.Errorf("enemy %d outside the level", i)
		}
	}
	for i, c := range l.Chests {
		if !l.inside(c.X, c.Y) {
			return fmt.Errorf("chest %d outside the level", i)
		}
		if c.Coins < 0 {
			return fmt.Errorf("chest %d has negative coins", i)
		}
	}
	return nil
}

func (l *Level) inside(x, y float64) bool {
	return x >= 0 && y >= 0 && x <= l.Width && y <= l.Height
}
