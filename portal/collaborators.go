package portal

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mazeportal/common"
)

// Cue names registered on the portal sound channel.
const (
	CueOpen   = "open"
	CueTravel = "travel"
)

// SoundChannel is the mixer channel the portal cues are registered on.
const SoundChannel = 3

var (
	ErrAssetLoad     = errors.New("portal: asset load failed")
	ErrMissingTiles  = errors.New("portal: tile set is required")
	ErrMissingAnim   = errors.New("portal: animator factory is required")
	ErrMissingSource = errors.New("portal: shooter is required")
	ErrTileSize      = errors.New("portal: mapper and tile set disagree on tile size")
)

// TileSet is the mutable maze wall collection gates are carved out of.
type TileSet interface {
	TileSize() int
	// FirstOverlap returns the rect of the first tile overlapping r.
	FirstOverlap(r common.Rect) (common.Rect, bool)
	// Remove deletes the tile whose rect equals r.
	Remove(r common.Rect) bool
	// AddBlock puts a plain wall tile back with its top-left at (x, y).
	AddBlock(x, y int)
}

// Cues plays named, fire-and-forget sound cues.
type Cues interface {
	Play(name string)
}

// Animator is a cyclic image sequence.
type Animator interface {
	Advance(dt time.Duration)
	Draw(screen *ebiten.Image, r common.Rect)
}

// AnimatorFactory returns a fresh animator for a gate of the given color,
// sized to one tile.
type AnimatorFactory func(c Color) (Animator, error)

// Shooter is the entity projectiles are fired from.
type Shooter interface {
	Rect() common.Rect
	Facing() common.Direction
}

// Traveler is anything a gate can relocate.
type Traveler interface {
	Rect() common.Rect
	SetPosition(x, y int)
}

// Steerable travelers are also turned to face out of the exit gate.
type Steerable interface {
	Traveler
	SetDirection(d common.Direction)
}

type silentCues struct{}

func (silentCues) Play(string) {}
