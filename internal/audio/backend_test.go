package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schollz/multiverse/internal/types"
)

func TestOSCMessages(t *testing.T) {
	b := NewOSCBackend("127.0.0.1", 57120)
	msgs := b.Messages(ForTimeline(types.ComicTimeline))

	require.Len(t, msgs, 4)
	assert.Equal(t, "/multiverse/stop", msgs[0].Address)
	assert.Equal(t, "/multiverse/soundscape", msgs[1].Address)
	assert.Equal(t, []interface{}{"lo-fi bounce", "comic", int32(2)}, msgs[1].Arguments)

	bass := msgs[2]
	assert.Equal(t, "/multiverse/voice", bass.Address)
	require.Len(t, bass.Arguments, 10)
	assert.Equal(t, int32(0), bass.Arguments[0])
	assert.Equal(t, "triangle", bass.Arguments[2])
	assert.Equal(t, float32(110), bass.Arguments[3])
	assert.Equal(t, float32(0.5), bass.Arguments[5])

	click := msgs[3]
	assert.Equal(t, int32(1), click.Arguments[0])
	assert.Equal(t, "square", click.Arguments[2])
}

func TestDiscardBackend(t *testing.T) {
	var b Backend = Discard{}
	assert.NoError(t, b.Play(ForTimeline(types.DataTimeline)))
	assert.NoError(t, b.SetLevel(0.5))
	assert.NoError(t, b.Stop())
	assert.NoError(t, b.Close())
}
