package portal

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mazeportal/common"
	"github.com/milk9111/mazeportal/grid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

const testTile = 20

// testMapper puts cell (0,0) at (160,50) with 20px tiles.
var testMapper = grid.NewMapper(800, 600, testTile)

type fakeTiles struct {
	size    int
	rects   []common.Rect
	added   []common.Rect
	removed []common.Rect
}

func newFakeTiles(cells ...[2]int) *fakeTiles {
	t := &fakeTiles{size: testTile}
	for _, c := range cells {
		t.rects = append(t.rects, testMapper.CellRect(c[0], c[1]))
	}
	return t
}

func (t *fakeTiles) TileSize() int { return t.size }

func (t *fakeTiles) FirstOverlap(r common.Rect) (common.Rect, bool) {
	for _, tile := range t.rects {
		if tile.Intersects(r) {
			return tile, true
		}
	}
	return common.Rect{}, false
}

func (t *fakeTiles) Remove(r common.Rect) bool {
	for i, tile := range t.rects {
		if tile == r {
			t.rects = append(t.rects[:i], t.rects[i+1:]...)
			t.removed = append(t.removed, r)
			return true
		}
	}
	return false
}

func (t *fakeTiles) AddBlock(x, y int) {
	r := common.Rect{X: x, Y: y, Width: t.size, Height: t.size}
	t.rects = append(t.rects, r)
	t.added = append(t.added, r)
}

func (t *fakeTiles) has(row, col int) bool {
	want := testMapper.CellRect(row, col)
	for _, r := range t.rects {
		if r == want {
			return true
		}
	}
	return false
}

type fakeCues struct {
	played []string
}

func (c *fakeCues) Play(name string) { c.played = append(c.played, name) }

func (c *fakeCues) count(name string) int {
	n := 0
	for _, p := range c.played {
		if p == name {
			n++
		}
	}
	return n
}

type fakeAnim struct {
	elapsed time.Duration
	steps   int
}

func (a *fakeAnim) Advance(dt time.Duration) {
	a.elapsed += dt
	a.steps++
}

func (a *fakeAnim) Draw(*ebiten.Image, common.Rect) {}

type fakeShooter struct {
	rect   common.Rect
	facing common.Direction
}

func (s *fakeShooter) Rect() common.Rect        { return s.rect }
func (s *fakeShooter) Facing() common.Direction { return s.facing }

// shooterAt returns a tile-sized shooter standing in (row, col).
func shooterAt(row, col int, facing common.Direction) *fakeShooter {
	return &fakeShooter{rect: testMapper.CellRect(row, col), facing: facing}
}

type fakeTraveler struct {
	rect  common.Rect
	moves int
}

func (f *fakeTraveler) Rect() common.Rect { return f.rect }

func (f *fakeTraveler) SetPosition(x, y int) {
	f.rect.X = x
	f.rect.Y = y
	f.moves++
}

type fakeSteerable struct {
	fakeTraveler
	dir common.Direction
}

func (f *fakeSteerable) SetDirection(d common.Direction) { f.dir = d }

func travelerAt(row, col int) *fakeTraveler {
	return &fakeTraveler{rect: testMapper.CellRect(row, col)}
}

var errMissingSheet = errors.New("missing sheet")

type harness struct {
	ctrl    *Controller
	tiles   *fakeTiles
	cues    *fakeCues
	shooter *fakeShooter
	anims   []*fakeAnim
	hook    *test.Hook
	failAnm bool
}

func newHarness(shooter *fakeShooter, tiles *fakeTiles, restore bool) (*harness, error) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	h := &harness{tiles: tiles, cues: &fakeCues{}, shooter: shooter, hook: hook}
	ctrl, err := NewController(Options{
		Mapper: testMapper,
		Tiles:  tiles,
		Cues:   h.cues,
		Animations: func(Color) (Animator, error) {
			if h.failAnm {
				return nil, errMissingSheet
			}
			a := &fakeAnim{}
			h.anims = append(h.anims, a)
			return a, nil
		},
		Shooter:             shooter,
		RestoreTilesOnClear: restore,
		Logger:              logger,
	})
	if err != nil {
		return nil, err
	}
	h.ctrl = ctrl
	return h, nil
}

// runUntilLanded updates until the projectile of col is gone, up to limit frames.
func (h *harness) runUntilLanded(col Color, limit int) (int, error) {
	for i := 1; i <= limit; i++ {
		if err := h.ctrl.Update(16 * time.Millisecond); err != nil {
			return i, err
		}
		if _, ok := h.ctrl.Projectile(col); !ok {
			return i, nil
		}
	}
	return limit, errors.New("projectile still in flight")
}

// placeGate installs a gate directly, bypassing projectiles.
func (h *harness) placeGate(col Color, row, column int, facing common.Direction) *Gate {
	r := testMapper.CellRect(row, column)
	h.tiles.Remove(r)
	g := NewGate(r.X, r.Y, facing, col, testMapper, &fakeAnim{})
	h.ctrl.gates[col] = g
	return g
}
