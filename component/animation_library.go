package component

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

var ErrUnknownClip = errors.New("component: unknown animation clip")

// ImageLoader resolves a sheet path to an image.
type ImageLoader func(path string) (*ebiten.Image, error)

// Clip describes how to cut an animation out of a sheet.
type Clip struct {
	Sheet    string
	Frames   []image.Rectangle
	Interval time.Duration
	Loop     bool
}

// AnimationLibrary stores clips by key and builds independent animations from
// them. Sheets are loaded on first use and cached.
type AnimationLibrary struct {
	load   ImageLoader
	clips  map[string]Clip
	sheets map[string]*ebiten.Image
}

func NewAnimationLibrary(load ImageLoader) *AnimationLibrary {
	return &AnimationLibrary{
		load:   load,
		clips:  make(map[string]Clip),
		sheets: make(map[string]*ebiten.Image),
	}
}

// Register adds or replaces a clip.
func (l *AnimationLibrary) Register(key string, clip Clip) {
	if l == nil || key == "" {
		return
	}
	l.clips[key] = clip
}

func (l *AnimationLibrary) Clip(key string) (Clip, bool) {
	if l == nil {
		return Clip{}, false
	}
	clip, ok := l.clips[key]
	return clip, ok
}

// New builds a fresh animation for key with frames resized to size.
func (l *AnimationLibrary) New(key string, size int) (*Animation, error) {
	clip, ok := l.Clip(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClip, key)
	}
	sheet, err := l.sheet(clip.Sheet)
	if err != nil {
		return nil, err
	}
	anim := NewAnimation(sheet, clip.Frames, size, clip.Interval, clip.Loop)
	if anim.Len() == 0 {
		return nil, fmt.Errorf("component: clip %q has no frames inside %s", key, clip.Sheet)
	}
	return anim, nil
}

func (l *AnimationLibrary) sheet(path string) (*ebiten.Image, error) {
	if img, ok := l.sheets[path]; ok {
		return img, nil
	}
	if l.load == nil {
		return nil, fmt.Errorf("component: load sheet %s: no image loader", path)
	}
	img, err := l.load(path)
	if err != nil {
		return nil, fmt.Errorf("component: load sheet %s: %w", path, err)
	}
	l.sheets[path] = img
	return img, nil
}
