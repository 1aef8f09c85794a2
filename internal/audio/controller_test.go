package audio

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schollz/multiverse/internal/model"
	"github.com/schollz/multiverse/internal/types"
)

// recorder is a Backend that logs every call.
type recorder struct {
	calls []string
}

func (r *recorder) Play(s Soundscape) error {
	r.calls = append(r.calls, "play:"+s.Timeline.String())
	return nil
}

func (r *recorder) Stop() error {
	r.calls = append(r.calls, "stop")
	return nil
}

func (r *recorder) SetLevel(level float64) error {
	r.calls = append(r.calls, fmt.Sprintf("level:%.2f", level))
	return nil
}

func (r *recorder) Close() error {
	r.calls = append(r.calls, "close")
	return nil
}

func TestControllerSilentUntilEnabled(t *testing.T) {
	state := model.NewState()
	rec := &recorder{}
	c := NewController(state, rec)

	state.SetTimeline(types.DataTimeline)
	assert.Empty(t, rec.calls)
	_, playing := c.Current()
	assert.False(t, playing)

	state.ToggleAudio()
	assert.Equal(t, []string{"play:data", "level:1.00"}, rec.calls)
	current, playing := c.Current()
	assert.True(t, playing)
	assert.Equal(t, types.DataTimeline, current.Timeline)
}

func TestControllerSwapsAndDucks(t *testing.T) {
	state := model.NewState()
	state.ToggleAudio()
	rec := &recorder{}
	NewController(state, rec)
	assert.Equal(t, []string{"play:singularity", "level:1.00"}, rec.calls)
	rec.calls = nil

	state.SetTransitioning(true)
	state.SetTimeline(types.Web3Timeline)
	state.SetTransitioning(false)

	assert.Equal(t, []string{
		"level:0.35",
		"play:web3",
		"level:0.35",
		"level:1.00",
	}, rec.calls)
}

func TestControllerStopsAndCloses(t *testing.T) {
	state := model.NewState()
	state.ToggleAudio()
	rec := &recorder{}
	c := NewController(state, rec)
	rec.calls = nil

	state.ToggleAudio()
	state.SetTransitioning(true)
	assert.Equal(t, []string{"stop"}, rec.calls)

	assert.NoError(t, c.Close())
	state.ToggleAudio()
	assert.Equal(t, []string{"stop", "close"}, rec.calls)
}

func TestControllerNilBackend(t *testing.T) {
	state := model.NewState()
	c := NewController(state, nil)
	state.ToggleAudio()
	_, playing := c.Current()
	assert.True(t, playing)
	assert.NoError(t, c.Close())
}
