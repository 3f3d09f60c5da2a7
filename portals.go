package main

import (
	"fmt"

	"github.com/milk9111/mazeportal/assets"
	"github.com/milk9111/mazeportal/component"
	"github.com/milk9111/mazeportal/portal"
	"github.com/milk9111/mazeportal/prefabs"
	"github.com/milk9111/mazeportal/sound"
	"github.com/sirupsen/logrus"
)

func gateClipKey(c portal.Color) string {
	return "gate_" + c.String()
}

// registerGateClips (re)registers both gate clips from spec. Gates opened
// afterwards use the new frames.
func registerGateClips(lib *component.AnimationLibrary, spec *prefabs.PortalSpec) {
	for _, c := range portal.Colors {
		g := gateSpec(spec, c)
		lib.Register(gateClipKey(c), component.Clip{
			Sheet:    g.Sheet,
			Frames:   g.Rects(),
			Interval: g.Interval(),
			Loop:     true,
		})
	}
}

func gateSpec(spec *prefabs.PortalSpec, c portal.Color) prefabs.GateSpec {
	if c == portal.Orange {
		return spec.Gates.Orange
	}
	return spec.Gates.Blue
}

// gateAnimations hands the controller a fresh tile-sized animation per gate.
func gateAnimations(lib *component.AnimationLibrary, size int) portal.AnimatorFactory {
	return func(c portal.Color) (portal.Animator, error) {
		anim, err := lib.New(gateClipKey(c), size)
		if err != nil {
			return nil, err
		}
		return anim, nil
	}
}

func portalTuning(spec *prefabs.PortalSpec) portal.Tuning {
	def := portal.DefaultTuning()
	t := portal.Tuning{
		ProjectileSize:  spec.Projectile.Size,
		ProjectileSpeed: spec.Projectile.Speed,
	}
	for _, c := range portal.Colors {
		t.Tints[c] = gateSpec(spec, c).Tint.ColorOr(def.Tints[c])
	}
	return t
}

// loadPortalCues opens the portal sound channel. A missing or undecodable cue
// is fatal.
func loadPortalCues(spec *prefabs.PortalSpec, volume float64, logger logrus.FieldLogger) (*sound.Channel, error) {
	id := spec.Audio.Channel
	if id == 0 {
		id = portal.SoundChannel
	}
	cues := make([]sound.Cue, 0, len(spec.Audio.Cues))
	for _, c := range spec.Audio.Cues {
		cues = append(cues, sound.Cue{Name: c.Name, File: c.File, Volume: c.Volume})
	}
	ch, err := sound.LoadChannel(id, cues, logger)
	if err != nil {
		return nil, fmt.Errorf("portal sounds: %w", err)
	}
	ch.SetVolume(volume)
	return ch, nil
}

// checkGateSheets fails early when a gate sheet is missing from the assets.
func checkGateSheets(spec *prefabs.PortalSpec) error {
	for _, c := range portal.Colors {
		sheet := gateSpec(spec, c).Sheet
		if _, err := assets.LoadFile(sheet); err != nil {
			return fmt.Errorf("%s gate: %w", c, err)
		}
	}
	return nil
}
