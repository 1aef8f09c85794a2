package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schollz/multiverse/internal/types"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState()
	assert.Equal(t, types.Singularity, s.Timeline())
	assert.Equal(t, types.PointerVector{}, s.Pointer())
	assert.False(t, s.Transitioning())
	assert.False(t, s.AudioEnabled())
	assert.Equal(t, types.PointerVector{}, s.CursorInfluence())
}

func TestToggleAudioTwiceRestores(t *testing.T) {
	s := NewState()
	before := s.AudioEnabled()
	s.ToggleAudio()
	assert.NotEqual(t, before, s.AudioEnabled())
	s.ToggleAudio()
	assert.Equal(t, before, s.AudioEnabled())
}

func TestSetPointerClamps(t *testing.T) {
	s := NewState()
	s.SetPointer(2.5, -9)
	assert.Equal(t, types.PointerVector{X: 1, Y: -1}, s.Pointer())

	s.SetCursorInfluence(-4, 0.25)
	assert.Equal(t, types.PointerVector{X: -1, Y: 0.25}, s.CursorInfluence())
}

func TestFineGrainedObservers(t *testing.T) {
	s := NewState()
	counts := map[Field]int{}
	for _, f := range []Field{FieldTimeline, FieldPointer, FieldTransitioning, FieldAudio, FieldInfluence} {
		f := f
		s.Subscribe(f, func() { counts[f]++ })
	}

	s.SetTimeline(types.DataTimeline)
	assert.Equal(t, map[Field]int{FieldTimeline: 1}, counts)

	s.SetPointer(0.1, 0.2)
	s.SetTransitioning(true)
	s.ToggleAudio()
	s.SetCursorInfluence(0.1, 0.1)
	assert.Equal(t, 1, counts[FieldTimeline])
	assert.Equal(t, 1, counts[FieldPointer])
	assert.Equal(t, 1, counts[FieldTransitioning])
	assert.Equal(t, 1, counts[FieldAudio])
	assert.Equal(t, 1, counts[FieldInfluence])
}

func TestObserversSkipUnchangedValues(t *testing.T) {
	s := NewState()
	calls := 0
	s.Subscribe(FieldTimeline, func() { calls++ })
	s.Subscribe(FieldPointer, func() { calls++ })
	s.Subscribe(FieldTransitioning, func() { calls++ })

	s.SetTimeline(types.Singularity)
	s.SetPointer(0, 0)
	s.SetTransitioning(false)
	assert.Zero(t, calls)
}

func TestObserverSeesNewValue(t *testing.T) {
	s := NewState()
	var seen types.Timeline
	s.Subscribe(FieldTimeline, func() { seen = s.Timeline() })
	s.SetTimeline(types.Web3Timeline)
	assert.Equal(t, types.Web3Timeline, seen)
}

func TestUnsubscribe(t *testing.T) {
	s := NewState()
	var order []string
	unsubA := s.Subscribe(FieldAudio, func() { order = append(order, "a") })
	s.Subscribe(FieldAudio, func() { order = append(order, "b") })

	s.ToggleAudio()
	unsubA()
	unsubA()
	s.ToggleAudio()

	assert.Equal(t, []string{"a", "b", "b"}, order)
}

func TestUnsubscribeDuringNotify(t *testing.T) {
	s := NewState()
	calls := 0
	var unsub func()
	unsub = s.Subscribe(FieldTimeline, func() {
		calls++
		unsub()
	})
	s.SetTimeline(types.ComicTimeline)
	s.SetTimeline(types.DataTimeline)
	assert.Equal(t, 1, calls)
}

func TestSubscribeInvalidField(t *testing.T) {
	s := NewState()
	unsub := s.Subscribe(Field(99), func() { t.Fatal("must not run") })
	unsub()
	s.Subscribe(FieldAudio, nil)
	s.ToggleAudio()
}
