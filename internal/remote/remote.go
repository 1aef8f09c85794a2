// Package remote lets another process steer the portfolio over OSC: switch
// timelines, toggle sound and move the pointer.
package remote

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hypebeast/go-osc/osc"

	"github.com/schollz/multiverse/internal/types"
)

const (
	AddrSwitch  = "/multiverse/switch"
	AddrSound   = "/multiverse/sound"
	AddrPointer = "/multiverse/pointer"
)

// SwitchMsg asks for a transition to Timeline.
type SwitchMsg struct {
	Timeline types.Timeline
}

// SoundMsg toggles audio.
type SoundMsg struct{}

// PointerMsg places the pointer at a normalized position.
type PointerMsg struct {
	X, Y float64
}

// NewDispatcher routes incoming OSC messages to send, which is normally
// (*tea.Program).Send. Malformed messages are logged and dropped.
func NewDispatcher(send func(tea.Msg)) *osc.StandardDispatcher {
	d := osc.NewStandardDispatcher()

	d.AddMsgHandler(AddrSwitch, func(msg *osc.Message) {
		name, ok := stringArg(msg, 0)
		if !ok {
			log.Printf("remote: %s wants a timeline name, got %v", AddrSwitch, msg.Arguments)
			return
		}
		t, err := types.ParseTimeline(name)
		if err != nil {
			log.Printf("remote: %v", err)
			return
		}
		send(SwitchMsg{Timeline: t})
	})

	d.AddMsgHandler(AddrSound, func(msg *osc.Message) {
		send(SoundMsg{})
	})

	d.AddMsgHandler(AddrPointer, func(msg *osc.Message) {
		x, okX := floatArg(msg, 0)
		y, okY := floatArg(msg, 1)
		if !okX || !okY {
			log.Printf("remote: %s wants two floats, got %v", AddrPointer, msg.Arguments)
			return
		}
		p := types.PointerVector{X: x, Y: y}.Clamp()
		send(PointerMsg{X: p.X, Y: p.Y})
	})

	return d
}

// NewServer builds an OSC server on port feeding d.
func NewServer(port int, d osc.Dispatcher) *osc.Server {
	return &osc.Server{Addr: fmt.Sprintf(":%d", port), Dispatcher: d}
}

func stringArg(msg *osc.Message, i int) (string, bool) {
	if i >= len(msg.Arguments) {
		return "", false
	}
	s, ok := msg.Arguments[i].(string)
	return s, ok
}

func floatArg(msg *osc.Message, i int) (float64, bool) {
	if i >= len(msg.Arguments) {
		return 0, false
	}
	switch v := msg.Arguments[i].(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case int32:
		return float64(v), true
	}
	return 0, false
}
