package portal

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mazeportal/common"
	"github.com/milk9111/mazeportal/grid"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
)

// Tuning holds the projectile parameters that may be hot reloaded.
type Tuning struct {
	ProjectileSize  int
	ProjectileSpeed int
	Tints           [2]color.Color
}

// DefaultTuning matches the arcade cabinet: 5px shots moving 10px a frame,
// tinted cyan and orange.
func DefaultTuning() Tuning {
	return Tuning{
		ProjectileSize:  5,
		ProjectileSpeed: 10,
		Tints:           [2]color.Color{colornames.Cyan, color.NRGBA{R: 0xff, G: 0x80, A: 0xff}},
	}
}

func (t Tuning) withDefaults() Tuning {
	def := DefaultTuning()
	if t.ProjectileSize <= 0 {
		t.ProjectileSize = def.ProjectileSize
	}
	if t.ProjectileSpeed <= 0 {
		t.ProjectileSpeed = def.ProjectileSpeed
	}
	for i := range t.Tints {
		if t.Tints[i] == nil {
			t.Tints[i] = def.Tints[i]
		}
	}
	return t
}

// Options wires a Controller to its collaborators.
type Options struct {
	Mapper     grid.Mapper
	Tiles      TileSet
	Cues       Cues
	Animations AnimatorFactory
	Shooter    Shooter
	Tuning     Tuning

	// RestoreTilesOnClear puts plain wall tiles back where gates stood when
	// Clear is called. Replacing a gate always restores its old tile.
	RestoreTilesOnClear bool

	Logger logrus.FieldLogger
}

// Controller owns at most one gate and one in-flight projectile per color
// and runs the fire / collide / place / teleport cycle once per frame.
type Controller struct {
	mapper     grid.Mapper
	tiles      TileSet
	cues       Cues
	animations AnimatorFactory
	shooter    Shooter
	tuning     Tuning
	restore    bool
	log        logrus.FieldLogger

	gates       [2]*Gate
	projectiles [2]*Projectile
}

func NewController(opts Options) (*Controller, error) {
	if opts.Tiles == nil {
		return nil, ErrMissingTiles
	}
	if opts.Animations == nil {
		return nil, ErrMissingAnim
	}
	if opts.Shooter == nil {
		return nil, ErrMissingSource
	}
	if ts := opts.Tiles.TileSize(); opts.Mapper.TileSize > 0 && ts > 0 && ts != opts.Mapper.TileSize {
		return nil, fmt.Errorf("%w: mapper %d, tiles %d", ErrTileSize, opts.Mapper.TileSize, ts)
	}
	if opts.Mapper.TileSize <= 0 {
		opts.Mapper.TileSize = opts.Tiles.TileSize()
	}
	if opts.Mapper.TileSize <= 0 {
		return nil, fmt.Errorf("portal: invalid tile size %d", opts.Mapper.TileSize)
	}
	cues := opts.Cues
	if cues == nil {
		cues = silentCues{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Controller{
		mapper:     opts.Mapper,
		tiles:      opts.Tiles,
		cues:       cues,
		animations: opts.Animations,
		shooter:    opts.Shooter,
		tuning:     opts.Tuning.withDefaults(),
		restore:    opts.RestoreTilesOnClear,
		log:        logger,
	}, nil
}

// SetTuning changes the parameters used by projectiles fired from now on.
// Projectiles already in flight keep their launch speed.
func (c *Controller) SetTuning(t Tuning) {
	c.tuning = t.withDefaults()
}

func (c *Controller) Tuning() Tuning {
	return c.tuning
}

// SetRestoreTilesOnClear switches the Clear policy.
func (c *Controller) SetRestoreTilesOnClear(restore bool) {
	c.restore = restore
}

// Fire launches a projectile of color col from the shooter. It does nothing
// when the shooter has no facing or when a projectile of that color is
// already in flight. It reports whether a projectile was launched.
func (c *Controller) Fire(col Color) bool {
	facing := c.shooter.Facing()
	if !facing.Valid() {
		c.log.WithField("color", col).Debug("portal: fire ignored, shooter has no facing")
		return false
	}
	if c.projectiles[col] != nil {
		c.log.WithField("color", col).Debug("portal: fire ignored, projectile already in flight")
		return false
	}
	c.projectiles[col] = NewProjectile(c.shooter.Rect(), facing, col, c.tuning.ProjectileSize, c.tuning.ProjectileSpeed, c.tuning.Tints[col])
	return true
}

func (c *Controller) FireBlue() bool   { return c.Fire(Blue) }
func (c *Controller) FireOrange() bool { return c.Fire(Orange) }

// Update advances one frame. Blue is processed completely before Orange.
// The only error is a failure to load a new gate's animation, which wraps
// ErrAssetLoad and should be treated as fatal.
func (c *Controller) Update(dt time.Duration) error {
	for _, col := range Colors {
		if err := c.updateColor(col, dt); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) updateColor(col Color, dt time.Duration) error {
	if g := c.gates[col]; g != nil {
		g.AdvanceAnimation(dt)
	}

	p := c.projectiles[col]
	if p == nil {
		return nil
	}
	p.Advance()

	// gate > tile > off-screen
	if c.OverlapsAnyGate(p.Rect()) {
		c.projectiles[col] = nil
		return nil
	}

	if tile, ok := c.tiles.FirstOverlap(p.Rect()); ok {
		anim, err := c.animations(col)
		if err != nil {
			return fmt.Errorf("%w: %s gate animation: %w", ErrAssetLoad, col, err)
		}
		c.tiles.Remove(tile)
		c.projectiles[col] = nil
		c.placeGate(col, tile.X, tile.Y, p.Direction().Opposite(), anim)
		c.cues.Play(CueOpen)
		return nil
	}

	if p.OffScreen(c.mapper.ScreenWidth, c.mapper.ScreenHeight) {
		c.projectiles[col] = nil
	}
	return nil
}

// placeGate replaces the gate of color col, putting a plain tile back where
// the old gate stood.
func (c *Controller) placeGate(col Color, x, y int, facing common.Direction, anim Animator) {
	if old := c.gates[col]; old != nil {
		r := old.Rect()
		c.tiles.AddBlock(r.X, r.Y)
	}
	c.gates[col] = NewGate(x, y, facing, col, c.mapper, anim)
	c.log.WithFields(logrus.Fields{
		"color":  col,
		"row":    c.gates[col].GridRow(),
		"col":    c.gates[col].GridCol(),
		"facing": facing,
	}).Debug("portal: gate opened")
}

// GatesActive reports whether both gates exist, which is required for any
// teleport to happen.
func (c *Controller) GatesActive() bool {
	return c.gates[Blue] != nil && c.gates[Orange] != nil
}

// OverlapsAnyGate reports whether r overlaps either gate.
func (c *Controller) OverlapsAnyGate(r common.Rect) bool {
	for _, g := range c.gates {
		if g != nil && g.Overlaps(r) {
			return true
		}
	}
	return false
}

// TeleportCheck moves every traveler touching a gate to the exit cell of the
// paired gate. Each traveler is moved at most once per call, and the Blue
// gate is checked before the Orange one. Without a paired gate nothing
// happens. Steerable travelers leave facing the way the exit gate faces.
func (c *Controller) TeleportCheck(travelers ...Traveler) {
	for _, t := range travelers {
		if t == nil {
			continue
		}
		r := t.Rect()
		for _, col := range Colors {
			entry := c.gates[col]
			if entry == nil || !entry.Overlaps(r) {
				continue
			}
			dest := c.gates[col.Other()]
			if dest == nil {
				c.log.WithField("color", col).Debug("portal: teleport ignored, no paired gate")
				continue
			}
			row, column := dest.ExitCell()
			x, y := c.mapper.CellToPixel(row, column)
			t.SetPosition(x, y)
			if s, ok := t.(Steerable); ok {
				s.SetDirection(dest.Facing())
			}
			c.cues.Play(CueTravel)
			break
		}
	}
}

// Clear removes both gates and both projectiles. Wall tiles are restored
// only when the controller was built with RestoreTilesOnClear.
func (c *Controller) Clear() {
	for i, g := range c.gates {
		if g != nil && c.restore {
			r := g.Rect()
			c.tiles.AddBlock(r.X, r.Y)
		}
		c.gates[i] = nil
	}
	c.projectiles = [2]*Projectile{}
}

// Gate returns the live gate of color col, if any.
func (c *Controller) Gate(col Color) (*Gate, bool) {
	g := c.gates[col]
	return g, g != nil
}

// Projectile returns the in-flight projectile of color col, if any.
func (c *Controller) Projectile(col Color) (*Projectile, bool) {
	p := c.projectiles[col]
	return p, p != nil
}

type drawer interface {
	Draw(screen *ebiten.Image)
}

// Render draws projectiles first and gates on top of them.
func (c *Controller) Render(screen *ebiten.Image) {
	for _, d := range c.drawOrder() {
		d.Draw(screen)
	}
}

// drawOrder lists what Render paints, bottom layer first.
func (c *Controller) drawOrder() []drawer {
	out := make([]drawer, 0, len(c.projectiles)+len(c.gates))
	for _, p := range c.projectiles {
		if p != nil {
			out = append(out, p)
		}
	}
	for _, g := range c.gates {
		if g != nil {
			out = append(out, g)
		}
	}
	return out
}
