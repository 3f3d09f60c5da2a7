package component

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mazeportal/common"
)

// Sequence steps through count frames, one frame per interval of accumulated
// time. It holds no images so it can be driven and inspected on its own.
type Sequence struct {
	count    int
	interval time.Duration
	loop     bool

	elapsed time.Duration
	current int
}

func NewSequence(count int, interval time.Duration, loop bool) Sequence {
	if count < 0 {
		count = 0
	}
	return Sequence{count: count, interval: interval, loop: loop}
}

// Advance adds dt to the frame clock and moves forward one frame for every
// full interval. Non-looping sequences stop on their last frame.
func (s *Sequence) Advance(dt time.Duration) {
	if s.count <= 1 || s.interval <= 0 || dt <= 0 {
		return
	}
	s.elapsed += dt
	for s.elapsed >= s.interval {
		s.elapsed -= s.interval
		s.current++
		if s.current < s.count {
			continue
		}
		if !s.loop {
			s.current = s.count - 1
			s.elapsed = 0
			return
		}
		s.current = 0
	}
}

func (s *Sequence) Frame() int { return s.current }
func (s *Sequence) Len() int   { return s.count }

// Done reports whether a non-looping sequence has reached its last frame.
func (s *Sequence) Done() bool {
	return !s.loop && s.count > 0 && s.current == s.count-1
}

func (s *Sequence) Reset() {
	s.current = 0
	s.elapsed = 0
}

// SetFrame jumps to frame i, clamped to the valid range.
func (s *Sequence) SetFrame(i int) {
	if s.count == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= s.count {
		i = s.count - 1
	}
	s.current = i
	s.elapsed = 0
}

// Animation is a Sequence over frames cut from a sprite sheet. Every frame is
// resized to size×size when the animation is built.
type Animation struct {
	Sequence
	frames []*ebiten.Image
	size   int
}

// NewAnimation cuts the given sub-rects out of sheet. Rects that fall outside
// the sheet are skipped. A size of 0 keeps the source frame size.
func NewAnimation(sheet *ebiten.Image, rects []image.Rectangle, size int, interval time.Duration, loop bool) *Animation {
	a := &Animation{size: size}
	if sheet == nil {
		return a
	}
	bounds := sheet.Bounds()
	for _, r := range rects {
		if r.Empty() || !r.In(bounds) {
			continue
		}
		a.frames = append(a.frames, resize(sheet.SubImage(r).(*ebiten.Image), size))
	}
	a.Sequence = NewSequence(len(a.frames), interval, loop)
	return a
}

func resize(src *ebiten.Image, size int) *ebiten.Image {
	b := src.Bounds()
	if size <= 0 || (b.Dx() == size && b.Dy() == size) {
		return ebiten.NewImageFromImage(src)
	}
	dst := ebiten.NewImage(size, size)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Min.X), -float64(b.Min.Y))
	op.GeoM.Scale(float64(size)/float64(b.Dx()), float64(size)/float64(b.Dy()))
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(src, op)
	return dst
}

// Current returns the image for the current frame, or nil when there are no
// frames.
func (a *Animation) Current() *ebiten.Image {
	if a == nil || len(a.frames) == 0 {
		return nil
	}
	return a.frames[a.Frame()]
}

// Draw stretches the current frame over r.
func (a *Animation) Draw(screen *ebiten.Image, r common.Rect) {
	frame := a.Current()
	if frame == nil || screen == nil || r.Width <= 0 || r.Height <= 0 {
		return
	}
	b := frame.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Width)/float64(b.Dx()), float64(r.Height)/float64(b.Dy()))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(frame, op)
}

// Size returns the edge length frames were resized to.
func (a *Animation) Size() int { return a.size }
