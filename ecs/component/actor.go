package component

import (
	"image/color"

	"github.com/milk9111/mazeportal/common"
)

// Body is an actor's pixel rect on the playfield.
type Body struct {
	Rect common.Rect
}

var BodyComponent = NewComponent[Body]("body")

// Mover walks an actor along the maze grid. Dir is the current travel
// direction and Next a queued turn taken at the next cell corner. Facing is
// the last direction actually travelled and stays set while stopped.
type Mover struct {
	Dir    common.Direction
	Next   common.Direction
	Facing common.Direction
	Speed  int
}

var MoverComponent = NewComponent[Mover]("mover")

// PlayerControl holds the actions requested this frame.
type PlayerControl struct {
	FireBlue   bool
	FireOrange bool
	Reset      bool
}

var PlayerControlComponent = NewComponent[PlayerControl]("player_control")

// Ghost marks a wandering enemy.
type Ghost struct {
	ChaseChance float64
	PathLimit   int
}

var GhostComponent = NewComponent[Ghost]("ghost")

type Tint struct {
	Color color.Color
}

var TintComponent = NewComponent[Tint]("tint")

// Traveler marks entities the gates may relocate.
type Traveler struct {
	Teleports int
}

var TravelerComponent = NewComponent[Traveler]("traveler")

// Spawn remembers where an actor started so a reset can put it back.
type Spawn struct {
	Row, Col int
	Dir      common.Direction
}

var SpawnComponent = NewComponent[Spawn]("spawn")
