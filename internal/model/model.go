package model

import (
	"log"

	"github.com/schollz/multiverse/internal/types"
)

// Field identifies one observable slot of the UI state.
type Field int

const (
	FieldTimeline Field = iota
	FieldPointer
	FieldTransitioning
	FieldAudio
	FieldInfluence
	numFields
)

func (f Field) String() string {
	switch f {
	case FieldTimeline:
		return "timeline"
	case FieldPointer:
		return "pointer"
	case FieldTransitioning:
		return "transitioning"
	case FieldAudio:
		return "audio"
	case FieldInfluence:
		return "influence"
	}
	return "unknown"
}

type observer struct {
	id int
	fn func()
}

// State is the process-wide UI state: the active timeline, the normalized
// pointer, the transition flag and the audio toggle, plus the smoothed cursor
// influence used by the singularity scene.
//
// State is owned by the bubbletea event loop. It is not safe for concurrent
// use and does not need to be: every mutation and every read happens on the
// goroutine running Update.
type State struct {
	timeline      types.Timeline
	pointer       types.PointerVector
	transitioning bool
	audioEnabled  bool
	influence     types.PointerVector

	observers [numFields][]observer
	nextID    int
}

// NewState returns a State holding the start-up defaults.
func NewState() *State {
	return &State{}
}

func (s *State) Timeline() types.Timeline { return s.timeline }
func (s *State) Pointer() types.PointerVector { return s.pointer }
func (s *State) Transitioning() bool { return s.transitioning }
func (s *State) AudioEnabled() bool { return s.audioEnabled }
func (s *State) CursorInfluence() types.PointerVector { return s.influence }

// SetTimeline makes t the active timeline.
func (s *State) SetTimeline(t types.Timeline) {
	if s.timeline == t {
		return
	}
	log.Printf("timeline: %s -> %s", s.timeline, t)
	s.timeline = t
	s.notify(FieldTimeline)
}

// SetPointer stores a pointer position, clamped to [-1, 1] on both axes.
func (s *State) SetPointer(x, y float64) {
	p := types.PointerVector{X: x, Y: y}.Clamp()
	if s.pointer == p {
		return
	}
	s.pointer = p
	s.notify(FieldPointer)
}

func (s *State) SetTransitioning(v bool) {
	if s.transitioning == v {
		return
	}
	s.transitioning = v
	s.notify(FieldTransitioning)
}

// ToggleAudio flips AudioEnabled.
func (s *State) ToggleAudio() {
	s.audioEnabled = !s.audioEnabled
	log.Printf("audio enabled: %v", s.audioEnabled)
	s.notify(FieldAudio)
}

func (s *State) SetCursorInfluence(x, y float64) {
	p := types.PointerVector{X: x, Y: y}.Clamp()
	if s.influence == p {
		return
	}
	s.influence = p
	s.notify(FieldInfluence)
}

// Subscribe registers fn to run after every change of field f. Observers of
// other fields are not woken. The returned func removes the subscription and
// is safe to call more than once.
func (s *State) Subscribe(f Field, fn func()) (unsubscribe func()) {
	if f < 0 || f >= numFields || fn == nil {
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.observers[f] = append(s.observers[f], observer{id: id, fn: fn})
	return func() {
		obs := s.observers[f]
		for i := range obs {
			if obs[i].id == id {
				s.observers[f] = append(obs[:i:i], obs[i+1:]...)
				return
			}
		}
	}
}

// notify runs a snapshot of the observer list so that observers may
// subscribe or unsubscribe while being notified.
func (s *State) notify(f Field) {
	obs := append([]observer(nil), s.observers[f]...)
	for _, o := range obs {
		o.fn()
	}
}
