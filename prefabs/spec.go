package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PlayerSpec struct {
	Name       string       `yaml:"name"`
	AnimPrefix string       `yaml:"anim_prefix"`
	Health     int          `yaml:"health"`
	MoveSpeed  float64      `yaml:"move_speed"`
	ThrowSpeed float64      `yaml:"throw_speed"`
	RecoverMS  int          `yaml:"recover_ms"`
	Facing     string       `yaml:"facing"`
	Weapon     string       `yaml:"weapon"`
	Collider   ColliderSpec `yaml:"collider"`
	Color      YAMLColor    `yaml:"color"`
}

type ProjectileSpec struct {
	Name     string       `yaml:"name"`
	Capacity int          `yaml:"capacity"`
	Collider ColliderSpec `yaml:"collider"`
	Color    YAMLColor    `yaml:"color"`
}

type EnemySpec struct {
	Name      string       `yaml:"name"`
	Speed     float64      `yaml:"speed"`
	Direction string       `yaml:"direction"`
	Script    string       `yaml:"script"`
	Collider  ColliderSpec `yaml:"collider"`
	Color     YAMLColor    `yaml:"color"`
}

type LootSpec struct {
	Name     string       `yaml:"name"`
	Coins    int          `yaml:"coins"`
	Collider ColliderSpec `yaml:"collider"`
	Color    YAMLColor    `yaml:"color"`
}

// Catalog holds every prefab a level can spawn.
type Catalog struct {
	Player PlayerSpec
	Weapon ProjectileSpec
	Enemy  EnemySpec
	Loot   LootSpec
}

// LoadCatalog reads the player, its weapon, the lizard and the chest prefabs.
func LoadCatalog() (*Catalog, error) {
	player, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if player.Weapon == "" {
		return nil, errors.New("prefabs: player.yaml: weapon is required")
	}
	weapon, err := LoadSpec[ProjectileSpec](player.Weapon)
	if err != nil {
		return nil, err
	}
	enemy, err := LoadSpec[EnemySpec]("lizard.yaml")
	if err != nil {
		return nil, err
	}
	loot, err := LoadSpec[LootSpec]("chest.yaml")
	if err != nil {
		return nil, err
	}
	return &Catalog{Player: player, Weapon: weapon, Enemy: enemy, Loot: loot}, nil
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.NRGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.NRGBA = parsed
	return nil
}

func ParseColor(v string) (color.NRGBA, error) {
	s := strings.TrimPrefix(v, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", v)
	}

	var ch [4]uint8
	ch[3] = 255
	for i := 0; i*2 < len(s); i++ {
		n, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color format: %s", v)
		}
		ch[i] = uint8(n)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}
