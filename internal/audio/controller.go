package audio

import (
	"log"

	"github.com/schollz/multiverse/internal/model"
)

// DuckLevel is the master level while a timeline transition runs.
const DuckLevel = 0.35

// Controller keeps a Backend in step with the UI state: it plays the active
// timeline's soundscape while audio is enabled, swaps it when the timeline
// changes and ducks the output during transitions.
type Controller struct {
	state   *model.State
	backend Backend

	playing bool
	current Soundscape
	ducked  bool

	unsubscribe []func()
}

// NewController subscribes to state and brings the backend in line with it.
func NewController(state *model.State, backend Backend) *Controller {
	if backend == nil {
		backend = Discard{}
	}
	c := &Controller{state: state, backend: backend}
	c.unsubscribe = append(c.unsubscribe,
		state.Subscribe(model.FieldTimeline, c.sync),
		state.Subscribe(model.FieldAudio, c.sync),
		state.Subscribe(model.FieldTransitioning, c.syncLevel),
	)
	c.sync()
	return c
}

// Current returns the soundscape being played, if any.
func (c *Controller) Current() (Soundscape, bool) {
	return c.current, c.playing
}

func (c *Controller) sync() {
	if !c.state.AudioEnabled() {
		if c.playing {
			c.playing = false
			if err := c.backend.Stop(); err != nil {
				log.Printf("audio: stop: %v", err)
			}
		}
		return
	}

	tl := c.state.Timeline()
	if c.playing && c.current.Timeline == tl {
		return
	}
	c.current = ForTimeline(tl)
	c.playing = true
	if err := c.backend.Play(c.current); err != nil {
		log.Printf("audio: play %s: %v", tl, err)
	}
	// A fresh soundscape starts at whatever level the synth last had.
	c.applyLevel(c.state.Transitioning())
}

func (c *Controller) syncLevel() {
	if !c.playing || c.state.Transitioning() == c.ducked {
		return
	}
	c.applyLevel(c.state.Transitioning())
}

func (c *Controller) applyLevel(duck bool) {
	c.ducked = duck
	level := 1.0
	if duck {
		level = DuckLevel
	}
	if err := c.backend.SetLevel(level); err != nil {
		log.Printf("audio: level: %v", err)
	}
}

// Close unsubscribes from the state and shuts the backend down.
func (c *Controller) Close() error {
	for _, unsub := range c.unsubscribe {
		unsub()
	}
	c.unsubscribe = nil
	c.playing = false
	return c.backend.Close()
}
