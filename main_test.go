package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-audio/wav"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schollz/multiverse/internal/audio"
	"github.com/schollz/multiverse/internal/input"
	"github.com/schollz/multiverse/internal/model"
	"github.com/schollz/multiverse/internal/remote"
	"github.com/schollz/multiverse/internal/storage"
	"github.com/schollz/multiverse/internal/types"
)

func run(cmd *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestClassifyCommand(t *testing.T) {
	tests := []struct {
		x, y string
		want string
	}{
		{"0", "0", "singularity"},
		{"-0.5", "0", "data"},
		{"0.5", "0.9", "web3"},
		{"0", "0.5", "comic"},
		{"-3", "0", "data"},
	}
	for _, tt := range tests {
		out, err := run(newClassifyCmd(), tt.x, tt.y)
		require.NoError(t, err)
		assert.Equal(t, tt.want, strings.TrimSpace(out), "(%s, %s)", tt.x, tt.y)
	}

	_, err := run(newClassifyCmd(), "left", "0")
	assert.Error(t, err)
	_, err = run(newClassifyCmd(), "0")
	assert.Error(t, err)
}

func TestRenderCommand(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out", "web3.wav")

	out, err := run(newRenderCmd(), "web3", path, "--seconds", "0.25", "--rate", "8000")
	require.NoError(t, err)
	assert.Contains(t, out, "ethereal pads")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile())
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, 2000, len(buf.Data))
	assert.Equal(t, uint32(8000), dec.SampleRate)

	_, err = run(newRenderCmd(), "steampunk", path)
	assert.Error(t, err)
}

func TestContentInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")

	_, err := run(newContentCmd(), "init", path)
	require.NoError(t, err)

	c, err := storage.LoadContent(path)
	require.NoError(t, err)
	assert.Equal(t, storage.DefaultContent(), c)
}

func TestParseColorProfile(t *testing.T) {
	tests := []struct {
		in       string
		want     termenv.Profile
		override bool
	}{
		{"auto", termenv.Ascii, false},
		{"", termenv.Ascii, false},
		{"ascii", termenv.Ascii, true},
		{"ANSI", termenv.ANSI, true},
		{"ansi256", termenv.ANSI256, true},
		{"truecolor", termenv.TrueColor, true},
	}
	for _, tt := range tests {
		p, override, err := parseColorProfile(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.override, override, tt.in)
		if override {
			assert.Equal(t, tt.want, p, tt.in)
		}
	}

	_, _, err := parseColorProfile("sepia")
	assert.Error(t, err)
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := newApp(model.NewState(), storage.DefaultContent(), 30, "")
	require.NoError(t, err)
	app.ctl.Sequencer.LeaveDuration = time.Millisecond
	app.ctl.Sequencer.EnterDuration = time.Millisecond
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return app
}

func TestAppSplashDismissal(t *testing.T) {
	app := newTestApp(t)
	assert.True(t, app.showingSplash)
	assert.Contains(t, app.View(), "press any key")

	// Motion does not dismiss the splash.
	_, cmd := app.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionMotion})
	assert.Nil(t, cmd)
	assert.True(t, app.showingSplash)

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.NotNil(t, cmd, "frame loop starts")
	assert.False(t, app.showingSplash)

	// A second dismissal must not start a second loop.
	assert.Nil(t, app.dismissSplash())
	_, cmd = app.Update(SplashTickMsg{})
	assert.Nil(t, cmd)

	assert.Contains(t, app.View(), "MULTIVERSE")
}

func TestAppFullHandoff(t *testing.T) {
	app := newTestApp(t)
	app.dismissSplash()

	_, cmd := app.Update(remote.SwitchMsg{Timeline: types.ComicTimeline})
	require.NotNil(t, cmd)
	assert.True(t, app.state.Transitioning())

	// Drive the sequencer through both phases.
	msg := cmd()
	_, cmd = app.Update(msg)
	require.IsType(t, input.PhaseMsg{}, msg)
	assert.Equal(t, types.ComicTimeline, app.state.Timeline())
	require.NotNil(t, cmd)

	_, cmd = app.Update(cmd())
	assert.Nil(t, cmd)
	assert.False(t, app.state.Transitioning())
	assert.Contains(t, app.View(), "The Anomaly")
}

func TestAppRemoteMessages(t *testing.T) {
	app := newTestApp(t)

	app.Update(remote.SoundMsg{})
	assert.True(t, app.state.AudioEnabled())

	app.Update(remote.PointerMsg{X: -0.9, Y: 0.1})
	assert.Equal(t, types.PointerVector{X: -0.9, Y: 0.1}, app.state.Pointer())

	col, row := app.ctl.Tracker.Cell()
	assert.Equal(t, 4, col, "anchor follows the remote pointer")
	assert.Equal(t, 11, row)

	_, cmd := app.Update(FrameMsg{})
	assert.NotNil(t, cmd)
	assert.Equal(t, types.DataTimeline, app.ctl.Dominant())

	// A nudge continues from the remote position instead of the last mouse cell.
	app.dismissSplash()
	app.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.InDelta(t, -0.85, app.state.Pointer().X, 1e-9)
}

func TestAppTracksPointerUnderSplash(t *testing.T) {
	app := newTestApp(t)
	require.True(t, app.showingSplash)

	app.Update(tea.MouseMsg{X: 0, Y: 12, Action: tea.MouseActionMotion})
	assert.True(t, app.showingSplash)
	assert.Equal(t, types.PointerVector{X: -1, Y: 0}, app.state.Pointer())

	app.dismissSplash()
	app.Update(FrameMsg{})
	assert.Equal(t, types.DataTimeline, app.ctl.Dominant())
}

func TestAppDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.txt")
	app, err := newApp(model.NewState(), storage.DefaultContent(), 30, path)
	require.NoError(t, err)
	app.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	app.dismissSplash()

	_, cmd := app.Update(DumpTickMsg{})
	assert.NotNil(t, cmd)
	app.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "=== Frame at")
	assert.Contains(t, string(data), "MULTIVERSE")

	_, err = newApp(model.NewState(), nil, 30, filepath.Join(path, "nested"))
	assert.Error(t, err)
}

func TestNewBackend(t *testing.T) {
	saved := config
	defer func() { config = saved }()

	config.midi, config.oscHost = "", ""
	b, err := newBackend()
	require.NoError(t, err)
	assert.IsType(t, audio.Discard{}, b)

	config.oscHost, config.port = "127.0.0.1", 57120
	b, err = newBackend()
	require.NoError(t, err)
	assert.IsType(t, &audio.OSCBackend{}, b)
}
