package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/riptide/ecs/component"
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

type Vec2Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type RectSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type SegmentSpec struct {
	AX float64 `yaml:"ax"`
	AY float64 `yaml:"ay"`
	BX float64 `yaml:"bx"`
	BY float64 `yaml:"by"`
}

type SpriteSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"`
}

type PlayerSpec struct {
	Name   string                 `yaml:"name"`
	Sprite SpriteSpec             `yaml:"sprite"`
	Tuning component.PlayerTuning `yaml:"tuning"`
}

func (s *PlayerSpec) Validate() error {
	if s == nil {
		return errors.New("prefabs: nil player spec")
	}
	if s.Sprite.Width <= 0 || s.Sprite.Height <= 0 {
		return fmt.Errorf("prefabs: player %q has no sprite bounds", s.Name)
	}
	if s.Tuning.MaxSpeed <= 0 || s.Tuning.JumpSpeed <= 0 {
		return fmt.Errorf("prefabs: player %q missing locomotion tuning", s.Name)
	}
	if s.Tuning.AttackDuration <= 0 {
		return fmt.Errorf("prefabs: player %q attack duration must be positive", s.Name)
	}
	return nil
}

type BossSpec struct {
	Name     string               `yaml:"name"`
	Sprite   SpriteSpec           `yaml:"sprite"`
	Tuning   component.BossTuning `yaml:"tuning"`
	Tentacle string               `yaml:"tentacle"`
}

func (s *BossSpec) Validate() error {
	if s == nil {
		return errors.New("prefabs: nil boss spec")
	}
	if s.Sprite.Width <= 0 || s.Sprite.Height <= 0 {
		return fmt.Errorf("prefabs: boss %q has no sprite bounds", s.Name)
	}
	if s.Tuning.HitsPerCycle <= 0 {
		return fmt.Errorf("prefabs: boss %q hits_per_cycle must be positive", s.Name)
	}
	if s.Tuning.SpawnInterval <= 0 || s.Tuning.ShieldDuration <= 0 {
		return fmt.Errorf("prefabs: boss %q missing shield cycle tuning", s.Name)
	}
	if s.Tuning.ProbeMaxDist <= 0 {
		return fmt.Errorf("prefabs: boss %q ground probe distance must be positive", s.Name)
	}
	return nil
}

type TentacleSpec struct {
	Name   string                   `yaml:"name"`
	Sprite SpriteSpec               `yaml:"sprite"`
	Tuning component.TentacleTuning `yaml:"tuning"`
}

func (s *TentacleSpec) Validate() error {
	if s == nil {
		return errors.New("prefabs: nil tentacle spec")
	}
	if s.Tuning.FrameCount <= 0 || s.Tuning.FrameRate <= 0 {
		return fmt.Errorf("prefabs: tentacle %q missing frame tuning", s.Name)
	}
	if s.Tuning.DeactivationFrame < s.Tuning.ActivationFrame {
		return fmt.Errorf("prefabs: tentacle %q deactivation frame precedes activation frame", s.Name)
	}
	return nil
}

type LevelSpec struct {
	Name        string        `yaml:"name"`
	Width       float64       `yaml:"width"`
	Height      float64       `yaml:"height"`
	PlayerSpawn Vec2Spec      `yaml:"player_spawn"`
	BossSpawn   Vec2Spec      `yaml:"boss_spawn"`
	Walls       []RectSpec    `yaml:"walls"`
	Segments    []SegmentSpec `yaml:"segments"`
}

func (s *LevelSpec) Validate() error {
	if s == nil {
		return errors.New("prefabs: nil level spec")
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("prefabs: level %q has no bounds", s.Name)
	}
	if len(s.Walls) == 0 && len(s.Segments) == 0 {
		return fmt.Errorf("prefabs: level %q has no terrain", s.Name)
	}
	return nil
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func LoadBossSpec() (*BossSpec, error) {
	spec, err := LoadSpec[BossSpec]("boss.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func LoadTentacleSpec(name string) (*TentacleSpec, error) {
	if strings.TrimSpace(name) == "" {
		name = "tentacle.yaml"
	}
	spec, err := LoadSpec[TentacleSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func LoadLevelSpec() (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec]("level.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// ParseColor reads "#RRGGBB" or "#RRGGBBAA". Empty or malformed strings
// fall back to opaque white.
func ParseColor(s string) color.Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.White
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return color.White
	}
	a := uint8(0xff)
	if len(s) == 8 {
		a = uint8(v & 0xff)
		v >>= 8
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: a,
	}
}
