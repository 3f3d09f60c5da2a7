package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/mazeportal/common"
	"github.com/milk9111/mazeportal/ecs"
	"github.com/milk9111/mazeportal/ecs/component"
)

// Keys is the keyboard state the input system reads.
type Keys interface {
	Pressed(key ebiten.Key) bool
	JustPressed(key ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(key ebiten.Key) bool     { return ebiten.IsKeyPressed(key) }
func (ebitenKeys) JustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

// Bindings maps keys to player actions. Any key in a slice triggers it.
type Bindings struct {
	Move       map[common.Direction][]ebiten.Key
	FireBlue   []ebiten.Key
	FireOrange []ebiten.Key
	Reset      []ebiten.Key
}

func DefaultBindings() Bindings {
	return Bindings{
		Move: map[common.Direction][]ebiten.Key{
			common.Left:  {ebiten.KeyArrowLeft, ebiten.KeyA},
			common.Right: {ebiten.KeyArrowRight, ebiten.KeyD},
			common.Up:    {ebiten.KeyArrowUp, ebiten.KeyW},
			common.Down:  {ebiten.KeyArrowDown, ebiten.KeyS},
		},
		FireBlue:   []ebiten.Key{ebiten.KeyZ, ebiten.KeyJ},
		FireOrange: []ebiten.Key{ebiten.KeyX, ebiten.KeyK},
		Reset:      []ebiten.Key{ebiten.KeyR},
	}
}

type InputSystem struct {
	keys     Keys
	bindings Bindings
}

func NewInputSystem() *InputSystem {
	return &InputSystem{keys: ebitenKeys{}, bindings: DefaultBindings()}
}

// NewInputSystemWith reads from keys instead of the live keyboard.
func NewInputSystemWith(keys Keys, bindings Bindings) *InputSystem {
	if keys == nil {
		keys = ebitenKeys{}
	}
	return &InputSystem{keys: keys, bindings: bindings}
}

// Update queues a turn for the player and records fire and reset presses.
// Movement keys are held; actions trigger once per press.
func (i *InputSystem) Update(w *ecs.World) error {
	if i == nil || w == nil {
		return nil
	}

	next := common.NoDirection
	for _, d := range common.Directions {
		if i.anyPressed(i.bindings.Move[d]) {
			next = d
			break
		}
	}
	fireBlue := i.anyJustPressed(i.bindings.FireBlue)
	fireOrange := i.anyJustPressed(i.bindings.FireOrange)
	reset := i.anyJustPressed(i.bindings.Reset)

	ecs.ForEach2(w, component.PlayerControlComponent, component.MoverComponent, func(_ ecs.Entity, ctrl *component.PlayerControl, m *component.Mover) {
		if next.Valid() {
			m.Next = next
		}
		ctrl.FireBlue = fireBlue
		ctrl.FireOrange = fireOrange
		ctrl.Reset = reset
	})
	return nil
}

func (i *InputSystem) anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if i.keys.Pressed(k) {
			return true
		}
	}
	return false
}

func (i *InputSystem) anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if i.keys.JustPressed(k) {
			return true
		}
	}
	return false
}
