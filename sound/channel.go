package sound

import (
	"errors"
	"fmt"

	"github.com/milk9111/mazeportal/assets"
	"github.com/sirupsen/logrus"
)

var ErrNoCues = errors.New("sound: no cues")

// Player is the part of *audio.Player a channel drives.
type Player interface {
	Play()
	Pause()
	Rewind() error
	IsPlaying() bool
	SetVolume(v float64)
}

// Cue names an audio file and its relative volume.
type Cue struct {
	Name   string
	File   string
	Volume float64
}

// Channel plays named cues one at a time. Starting a cue stops whatever was
// playing on the channel and restarts the new cue from the beginning.
type Channel struct {
	id      int
	volume  float64
	players map[string]Player
	levels  map[string]float64
	current Player
	log     logrus.FieldLogger
}

func NewChannel(id int, logger logrus.FieldLogger) *Channel {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Channel{
		id:      id,
		volume:  1,
		players: make(map[string]Player),
		levels:  make(map[string]float64),
		log:     logger.WithField("channel", id),
	}
}

// LoadChannel builds a channel whose cues are embedded wav assets.
func LoadChannel(id int, cues []Cue, logger logrus.FieldLogger) (*Channel, error) {
	return loadChannel(id, cues, logger, func(path string) (Player, error) {
		return assets.LoadAudioPlayer(path)
	})
}

func loadChannel(id int, cues []Cue, logger logrus.FieldLogger, open func(string) (Player, error)) (*Channel, error) {
	if len(cues) == 0 {
		return nil, fmt.Errorf("%w for channel %d", ErrNoCues, id)
	}
	ch := NewChannel(id, logger)
	for i, cue := range cues {
		p, err := open(cue.File)
		if err != nil {
			return nil, fmt.Errorf("sound: load cue %d (%q): %w", i, cue.Name, err)
		}
		ch.Register(cue.Name, p, cue.Volume)
	}
	return ch, nil
}

func (c *Channel) ID() int { return c.id }

// Register adds or replaces the player for name. A volume of 0 or less means
// full volume.
func (c *Channel) Register(name string, p Player, volume float64) {
	if name == "" || p == nil {
		return
	}
	if volume <= 0 {
		volume = 1
	}
	c.players[name] = p
	c.levels[name] = volume
}

// SetVolume scales every cue on the channel. It is clamped to [0, 1].
func (c *Channel) SetVolume(v float64) {
	c.volume = min(max(v, 0), 1)
}

func (c *Channel) Volume() float64 { return c.volume }

// Play starts the named cue. Unknown names are ignored.
func (c *Channel) Play(name string) {
	p, ok := c.players[name]
	if !ok {
		c.log.WithField("cue", name).Debug("sound: unknown cue")
		return
	}
	if c.current != nil && c.current.IsPlaying() {
		c.current.Pause()
	}
	p.SetVolume(c.volume * c.levels[name])
	if err := p.Rewind(); err != nil {
		c.log.WithError(err).WithField("cue", name).Warn("sound: rewind failed")
	}
	p.Play()
	c.current = p
}

// Stop pauses the cue currently playing, if any.
func (c *Channel) Stop() {
	if c.current != nil && c.current.IsPlaying() {
		c.current.Pause()
	}
}

// Busy reports whether a cue is playing on the channel.
func (c *Channel) Busy() bool {
	return c.current != nil && c.current.IsPlaying()
}
