// Command spsa previews a gate animation from portal.yaml so sheet frames
// and intervals can be tuned without starting the game.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/mazeportal/assets"
	"github.com/milk9111/mazeportal/common"
	"github.com/milk9111/mazeportal/component"
	"github.com/milk9111/mazeportal/portal"
	"github.com/milk9111/mazeportal/prefabs"
	"github.com/sirupsen/logrus"
)

const screenSize = 512

type previewGame struct {
	anim   *component.Animation
	color  portal.Color
	scale  int
	paused bool
}

func (g *previewGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if g.paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
			g.anim.SetFrame((g.anim.Frame() + 1) % g.anim.Len())
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
			g.anim.SetFrame((g.anim.Frame() + g.anim.Len() - 1) % g.anim.Len())
		}
		return nil
	}
	g.anim.Advance(time.Second / 60)
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	size := g.anim.Size() * g.scale
	off := (screenSize - size) / 2
	g.anim.Draw(screen, common.Rect{X: off, Y: off, Width: size, Height: size})
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s gate  frame %d/%d  space: pause  arrows: step",
		g.color, g.anim.Frame()+1, g.anim.Len()))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize, screenSize
}

func main() {
	dir := flag.String("prefabs", prefabs.Dir, "directory searched for portal.yaml before the embedded copy")
	colorName := flag.String("color", "blue", "gate color to preview (blue or orange)")
	scale := flag.Int("scale", 8, "integer zoom applied to the frame")
	size := flag.Int("size", 32, "edge length frames are resized to")
	flag.Parse()

	prefabs.Dir = *dir
	col, err := portal.ParseColor(*colorName)
	if err != nil {
		logrus.WithError(err).Fatal("bad -color")
	}
	spec, err := prefabs.LoadPortalSpec()
	if err != nil {
		logrus.WithError(err).Fatal("load portal spec")
	}
	gate := spec.Gates.Blue
	if col == portal.Orange {
		gate = spec.Gates.Orange
	}

	lib := component.NewAnimationLibrary(assets.LoadImage)
	lib.Register(col.String(), component.Clip{
		Sheet:    gate.Sheet,
		Frames:   gate.Rects(),
		Interval: gate.Interval(),
		Loop:     true,
	})
	anim, err := lib.New(col.String(), *size)
	if err != nil {
		logrus.WithError(err).Fatal("build animation")
	}
	if *scale < 1 {
		*scale = 1
	}

	ebiten.SetWindowSize(screenSize, screenSize)
	ebiten.SetWindowTitle("gate preview: " + col.String())
	if err := ebiten.RunGame(&previewGame{anim: anim, color: col, scale: *scale}); err != nil {
		logrus.WithError(err).Fatal("preview stopped")
	}
}
