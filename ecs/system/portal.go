package system

import (
	"time"

	"github.com/milk9111/mazeportal/common"
	"github.com/milk9111/mazeportal/ecs"
	"github.com/milk9111/mazeportal/ecs/component"
	"github.com/milk9111/mazeportal/portal"
	"github.com/sirupsen/logrus"
)

// FrameTime is the simulation step at ebiten's default 60 ticks per second.
const FrameTime = time.Second / 60

// PortalSystem drives a portal.Controller from the world: it forwards fire and
// reset requests, advances projectiles and gates, then moves every Traveler
// that touches a gate.
type PortalSystem struct {
	ctrl *portal.Controller
	dt   time.Duration
	log  logrus.FieldLogger
}

func NewPortalSystem(ctrl *portal.Controller, logger logrus.FieldLogger) *PortalSystem {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &PortalSystem{ctrl: ctrl, dt: FrameTime, log: logger}
}

func (s *PortalSystem) Controller() *portal.Controller { return s.ctrl }

func (s *PortalSystem) Update(w *ecs.World) error {
	if s == nil || s.ctrl == nil || w == nil {
		return nil
	}

	ecs.ForEach(w, component.PlayerControlComponent, func(e ecs.Entity, pc *component.PlayerControl) {
		if pc.Reset {
			s.ctrl.Clear()
			w.Events().Push(ecs.Event{Type: ecs.EventReset, Entity: e})
			s.log.Debug("portal: gates cleared")
		}
		if pc.FireBlue {
			s.ctrl.FireBlue()
		}
		if pc.FireOrange {
			s.ctrl.FireOrange()
		}
		*pc = component.PlayerControl{}
	})

	var before [2]*portal.Gate
	for _, col := range portal.Colors {
		before[col], _ = s.ctrl.Gate(col)
	}
	if err := s.ctrl.Update(s.dt); err != nil {
		return err
	}
	for _, col := range portal.Colors {
		if g, ok := s.ctrl.Gate(col); ok && g != before[col] {
			w.Events().Push(ecs.Event{Type: ecs.EventGateOpened})
		}
	}

	if !s.ctrl.GatesActive() {
		return nil
	}
	var travelers []portal.Traveler
	ecs.ForEach2(w, component.BodyComponent, component.TravelerComponent, func(e ecs.Entity, b *component.Body, t *component.Traveler) {
		m, _ := ecs.Get(w, e, component.MoverComponent)
		travelers = append(travelers, &actor{w: w, e: e, body: b, mover: m, traveler: t})
	})
	s.ctrl.TeleportCheck(travelers...)
	return nil
}

// actor adapts an entity's Body and Mover to the portal collaborator
// interfaces.
type actor struct {
	w        *ecs.World
	e        ecs.Entity
	body     *component.Body
	mover    *component.Mover
	traveler *component.Traveler
}

func (a *actor) Rect() common.Rect { return a.body.Rect }

func (a *actor) SetPosition(x, y int) {
	a.body.Rect = a.body.Rect.At(x, y)
	if a.traveler != nil {
		a.traveler.Teleports++
	}
	a.w.Events().Push(ecs.Event{Type: ecs.EventTeleported, Entity: a.e})
}

func (a *actor) SetDirection(d common.Direction) {
	if a.mover == nil || !d.Valid() {
		return
	}
	a.mover.Dir = d
	a.mover.Next = common.NoDirection
	a.mover.Facing = d
}

// Shooter fires from an entity's Body in the direction its Mover last faced.
type Shooter struct {
	w *ecs.World
	e ecs.Entity
}

func NewShooter(w *ecs.World, e ecs.Entity) *Shooter {
	return &Shooter{w: w, e: e}
}

func (s *Shooter) Rect() common.Rect {
	if b, ok := ecs.Get(s.w, s.e, component.BodyComponent); ok {
		return b.Rect
	}
	return common.Rect{}
}

func (s *Shooter) Facing() common.Direction {
	if m, ok := ecs.Get(s.w, s.e, component.MoverComponent); ok {
		return m.Facing
	}
	return common.NoDirection
}
