package main

import (
	"github.com/milk9111/mazeportal/prefabs"
	"github.com/sirupsen/logrus"
)

// reload applies prefab files changed on disk since the last frame. A spec
// that fails to parse is logged and the previous values stay in effect.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	names, err := g.watcher.Poll()
	if err != nil {
		g.log.WithError(err).Warn("prefab watcher")
	}
	for _, name := range names {
		entry := g.log.WithField("prefab", name)
		switch name {
		case prefabs.PortalFile:
			spec, err := prefabs.LoadPortalSpec()
			if err != nil {
				entry.WithError(err).Warn("reload failed")
				continue
			}
			registerGateClips(g.clips, spec)
			g.ctrl.SetTuning(portalTuning(spec))
			g.ctrl.SetRestoreTilesOnClear(spec.RestoreTilesOnClear)
			entry.WithFields(logrus.Fields{
				"size":  spec.Projectile.Size,
				"speed": spec.Projectile.Speed,
			}).Info("portal reloaded")
		case prefabs.ActorsFile:
			spec, err := prefabs.LoadActorsSpec()
			if err != nil {
				entry.WithError(err).Warn("reload failed")
				continue
			}
			applyActorSpeeds(g.world, spec)
			entry.Info("actors reloaded")
		default:
			entry.Debug("ignored prefab change")
		}
	}
}
