package input

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/schollz/multiverse/internal/model"
	"github.com/schollz/multiverse/internal/types"
)

const (
	DefaultLeaveDuration = 300 * time.Millisecond
	DefaultEnterDuration = 500 * time.Millisecond
)

// Phase is the sequencer's position in a timeline handoff.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLeaving
	PhaseEntering
)

func (p Phase) String() string {
	switch p {
	case PhaseLeaving:
		return "leaving"
	case PhaseEntering:
		return "entering"
	}
	return "idle"
}

// PhaseMsg is delivered when a scheduled phase deadline passes. Token ties
// it to the timer that produced it; messages from cancelled timers carry a
// stale token and are dropped.
type PhaseMsg struct {
	Token uint64
}

// Scheduler turns a delay and a message into a command that delivers the
// message after the delay. tea.Tick is the production implementation.
type Scheduler func(d time.Duration, msg tea.Msg) tea.Cmd

// TickScheduler schedules msg with tea.Tick.
func TickScheduler(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// timerHandle is the single pending deadline the sequencer owns.
type timerHandle struct {
	token uint64
	armed bool
}

// Sequencer runs the three-phase handoff between timelines:
//
//	Idle --Request(t)--> Leaving(t) --leave--> Entering(t) --enter--> Idle
//
// Entering Leaving raises the transition flag, entering Entering commits the
// target timeline, returning to Idle lowers the flag. A request that arrives
// mid-sequence cancels the pending deadline and restarts from Leaving.
type Sequencer struct {
	state    *model.State
	schedule Scheduler

	LeaveDuration time.Duration
	EnterDuration time.Duration

	phase  Phase
	target types.Timeline
	timer  timerHandle
	tokens uint64
}

// NewSequencer returns an idle sequencer using tea.Tick and the default
// phase durations.
func NewSequencer(state *model.State) *Sequencer {
	return &Sequencer{
		state:         state,
		schedule:      TickScheduler,
		LeaveDuration: DefaultLeaveDuration,
		EnterDuration: DefaultEnterDuration,
	}
}

// WithScheduler replaces the scheduler, mainly for tests.
func (s *Sequencer) WithScheduler(sched Scheduler) *Sequencer {
	s.schedule = sched
	return s
}

func (s *Sequencer) Phase() Phase { return s.phase }

// Target is the timeline the running sequence is heading to.
func (s *Sequencer) Target() types.Timeline { return s.target }

// Portal returns the timeline whose portal style should be drawn and
// whether a sequence is running. It is the target, not the live timeline,
// so the overlay is right during Leaving as well.
func (s *Sequencer) Portal() (types.Timeline, bool) {
	if s.phase == PhaseIdle {
		return types.Singularity, false
	}
	return s.target, true
}

// Request asks for a switch to target. It returns the command that delivers
// the leave deadline, or nil when the request is a no-op: target is already
// active with no sequence running, or target is already the destination of
// the running sequence.
func (s *Sequencer) Request(target types.Timeline) tea.Cmd {
	switch {
	case s.phase == PhaseIdle && target == s.state.Timeline():
		return nil
	case s.phase != PhaseIdle && target == s.target:
		return nil
	}

	if s.phase != PhaseIdle {
		log.Printf("sequencer: %s(%s) interrupted by request for %s", s.phase, s.target, target)
	}
	s.Cancel()

	log.Printf("sequencer: leaving %s for %s", s.state.Timeline(), target)
	s.phase = PhaseLeaving
	s.target = target
	s.state.SetTransitioning(true)
	return s.arm(s.LeaveDuration)
}

// Handle advances the machine when msg belongs to the pending timer.
func (s *Sequencer) Handle(msg PhaseMsg) tea.Cmd {
	if !s.timer.armed || msg.Token != s.timer.token {
		return nil
	}
	s.timer.armed = false

	switch s.phase {
	case PhaseLeaving:
		s.phase = PhaseEntering
		s.state.SetTimeline(s.target)
		return s.arm(s.EnterDuration)
	case PhaseEntering:
		s.phase = PhaseIdle
		s.state.SetTransitioning(false)
		log.Printf("sequencer: settled in %s", s.target)
	}
	return nil
}

// Cancel drops the pending deadline without touching the state. A message
// already in flight for it will be ignored by Handle.
func (s *Sequencer) Cancel() {
	s.timer.armed = false
}

// Abort cancels the running sequence and lowers the transition flag,
// leaving whatever timeline is active in place. Used on teardown.
func (s *Sequencer) Abort() {
	s.Cancel()
	s.phase = PhaseIdle
	s.state.SetTransitioning(false)
}

func (s *Sequencer) arm(d time.Duration) tea.Cmd {
	s.tokens++
	s.timer = timerHandle{token: s.tokens, armed: true}
	return s.schedule(d, PhaseMsg{Token: s.tokens})
}
