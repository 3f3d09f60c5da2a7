package prefabs

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/milk9111/mazeportal/common"
	"gopkg.in/yaml.v3"
)

const (
	PortalFile = "portal.yaml"
	ActorsFile = "actors.yaml"
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

// PortalSpec tunes the portal gun, the gate sheets and the portal sounds.
type PortalSpec struct {
	Name                string         `yaml:"name"`
	Projectile          ProjectileSpec `yaml:"projectile"`
	RestoreTilesOnClear bool           `yaml:"restore_tiles_on_clear"`
	Gates               GatePairSpec   `yaml:"gates"`
	Audio               AudioSpec      `yaml:"audio"`
}

func LoadPortalSpec() (*PortalSpec, error) {
	spec, err := LoadSpec[PortalSpec](PortalFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ProjectileSpec struct {
	Size  int `yaml:"size"`
	Speed int `yaml:"speed"`
}

type GatePairSpec struct {
	Blue   GateSpec `yaml:"blue"`
	Orange GateSpec `yaml:"orange"`
}

// GateSpec describes one gate color: its animation and its projectile tint.
type GateSpec struct {
	Sheet      string      `yaml:"sheet"`
	Tint       *YAMLColor  `yaml:"tint"`
	IntervalMS int         `yaml:"interval_ms"`
	Frames     []FrameSpec `yaml:"frames"`
}

func (g GateSpec) Interval() time.Duration {
	if g.IntervalMS <= 0 {
		return 250 * time.Millisecond
	}
	return time.Duration(g.IntervalMS) * time.Millisecond
}

// Rects returns the frame sub-rects in sheet coordinates.
func (g GateSpec) Rects() []image.Rectangle {
	out := make([]image.Rectangle, 0, len(g.Frames))
	for _, f := range g.Frames {
		out = append(out, f.Rect())
	}
	return out
}

// FrameSpec is a sub-rect of a sprite sheet.
type FrameSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

func (f FrameSpec) Rect() image.Rectangle {
	return image.Rect(f.X, f.Y, f.X+f.W, f.Y+f.H)
}

// AudioSpec places a set of cues on one sound channel.
type AudioSpec struct {
	Channel int       `yaml:"channel"`
	Cues    []CueSpec `yaml:"cues"`
}

type CueSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

// ActorsSpec tunes the player and the ghosts.
type ActorsSpec struct {
	Player PlayerSpec `yaml:"player"`
	Ghosts GhostSpec  `yaml:"ghosts"`
}

func LoadActorsSpec() (*ActorsSpec, error) {
	spec, err := LoadSpec[ActorsSpec](ActorsFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PlayerSpec struct {
	Speed int        `yaml:"speed"`
	Color *YAMLColor `yaml:"color"`
	// Facing is the heading at spawn and after a reset.
	Facing common.Direction `yaml:"facing"`
}

type GhostSpec struct {
	Speed int `yaml:"speed"`
	// ChaseChance is the probability a ghost heads for the player at a
	// junction instead of turning at random.
	ChaseChance float64          `yaml:"chase_chance"`
	Facing      common.Direction `yaml:"facing"`
	PathLimit   int              `yaml:"path_limit"`
	Seed        int64            `yaml:"seed"`
	Colors      []*YAMLColor     `yaml:"colors"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("prefabs: color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("prefabs: invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// ColorOr returns the decoded color, or fallback when c is unset.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
