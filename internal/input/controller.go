package input

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/schollz/multiverse/internal/model"
	"github.com/schollz/multiverse/internal/types"
)

// Hotspots resolves a screen cell to the control drawn there.
type Hotspots interface {
	At(x, y int) (types.Hotspot, bool)
}

// Controller routes keyboard, mouse and frame events into the UI state.
type Controller struct {
	State     *model.State
	Tracker   *Tracker
	Sequencer *Sequencer
	Keys      KeyMap

	ShowFullHelp bool

	dominant types.Timeline

	spring           harmonica.Spring
	infX, infY       float64
	infVelX, infVelY float64
}

// NewController wires a tracker and a sequencer onto state. fps is the frame
// rate Frame will be called at; it sizes the influence spring.
func NewController(state *model.State, fps int) *Controller {
	if fps <= 0 {
		fps = 30
	}
	return &Controller{
		State:     state,
		Tracker:   NewTracker(state),
		Sequencer: NewSequencer(state),
		Keys:      DefaultKeyMap,
		spring:    harmonica.NewSpring(harmonica.FPS(fps), 6.0, 0.8),
	}
}

// Dominant is the classifier's last verdict. It is frozen while a committed
// timeline is active.
func (c *Controller) Dominant() types.Timeline { return c.dominant }

// Frame runs once per rendered frame. In the singularity it re-classifies
// the pointer and eases the cursor influence toward it; once a timeline is
// committed the classifier is left alone.
func (c *Controller) Frame() {
	if c.State.Timeline() != types.Singularity {
		return
	}
	p := c.State.Pointer()
	c.dominant = Classify(p)
	c.infX, c.infVelX = c.spring.Update(c.infX, c.infVelX, p.X)
	c.infY, c.infVelY = c.spring.Update(c.infY, c.infVelY, p.Y)
	c.State.SetCursorInfluence(c.infX, c.infY)
}

// Commit switches to the dominant timeline when the singularity has one.
func (c *Controller) Commit() tea.Cmd {
	if c.State.Timeline() != types.Singularity {
		return nil
	}
	target := Classify(c.State.Pointer())
	if target == types.Singularity {
		return nil
	}
	log.Printf("commit: singularity collapses into %s", target)
	return c.Sequencer.Request(target)
}

// HandleKeyInput maps a key press to its action.
func HandleKeyInput(c *Controller, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, c.Keys.Quit):
		c.Shutdown()
		return tea.Quit
	case key.Matches(msg, c.Keys.Data):
		return c.Sequencer.Request(types.DataTimeline)
	case key.Matches(msg, c.Keys.Comic):
		return c.Sequencer.Request(types.ComicTimeline)
	case key.Matches(msg, c.Keys.Web3):
		return c.Sequencer.Request(types.Web3Timeline)
	case key.Matches(msg, c.Keys.Collapse):
		return c.Sequencer.Request(types.Singularity)
	case key.Matches(msg, c.Keys.Commit):
		return c.Commit()
	case key.Matches(msg, c.Keys.Sound):
		c.State.ToggleAudio()
	case key.Matches(msg, c.Keys.Left):
		c.Tracker.Nudge(-2, 0)
	case key.Matches(msg, c.Keys.Right):
		c.Tracker.Nudge(2, 0)
	case key.Matches(msg, c.Keys.Up):
		c.Tracker.Nudge(0, -1)
	case key.Matches(msg, c.Keys.Down):
		c.Tracker.Nudge(0, 1)
	case key.Matches(msg, c.Keys.Help):
		c.ShowFullHelp = !c.ShowFullHelp
	}
	return nil
}

// HandleMouseInput feeds the tracker and resolves left clicks against the
// rendered controls.
func HandleMouseInput(c *Controller, msg tea.MouseMsg, spots Hotspots) tea.Cmd {
	c.Tracker.Handle(msg)

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || spots == nil {
		return nil
	}
	spot, ok := spots.At(msg.X, msg.Y)
	if !ok {
		return nil
	}
	switch spot.Action {
	case types.ActionSwitch:
		return c.Sequencer.Request(spot.Timeline)
	case types.ActionToggleAudio:
		c.State.ToggleAudio()
	case types.ActionCommit:
		return c.Commit()
	}
	return nil
}

// Shutdown detaches the tracker and stops any running sequence.
func (c *Controller) Shutdown() {
	c.Tracker.Uninstall()
	c.Sequencer.Abort()
}
