package audio

import (
	"fmt"
	"log"

	"github.com/hypebeast/go-osc/osc"
)

// Backend is whatever turns soundscapes into sound.
type Backend interface {
	Play(s Soundscape) error
	Stop() error
	// SetLevel scales the master output, 1 being full level.
	SetLevel(level float64) error
	Close() error
}

// OSCBackend drives an external synthesizer (SuperCollider or similar) over
// OSC. Each Play sends the voice table; the synth does the actual rendering.
//
//	/multiverse/stop
//	/multiverse/soundscape  <name string> <timeline string> <voices int32>
//	/multiverse/voice       <index int32> <name string> <waveform string>
//	                        <freq f32> <gain f32> <pulse f32> <width f32>
//	                        <attack f32> <vibrato-rate f32> <vibrato-depth f32>
//	/multiverse/level       <level f32>
type OSCBackend struct {
	client *osc.Client
	prefix string
}

// NewOSCBackend sends to host:port. Nothing is sent until Play.
func NewOSCBackend(host string, port int) *OSCBackend {
	return &OSCBackend{
		client: osc.NewClient(host, port),
		prefix: "/multiverse",
	}
}

func (b *OSCBackend) send(msg *osc.Message) error {
	if err := b.client.Send(msg); err != nil {
		return fmt.Errorf("osc send %s: %w", msg.Address, err)
	}
	return nil
}

// Messages builds the OSC messages Play sends for s, in order.
func (b *OSCBackend) Messages(s Soundscape) []*osc.Message {
	msgs := []*osc.Message{
		osc.NewMessage(b.prefix+"/stop"),
		osc.NewMessage(b.prefix+"/soundscape", s.Name, s.Timeline.String(), int32(len(s.Voices))),
	}
	for i, v := range s.Voices {
		msg := osc.NewMessage(b.prefix + "/voice")
		msg.Append(int32(i))
		msg.Append(v.Name)
		msg.Append(v.Waveform.String())
		msg.Append(float32(v.Frequency))
		msg.Append(float32(v.Gain))
		msg.Append(float32(v.PulseInterval))
		msg.Append(float32(v.PulseWidth))
		msg.Append(float32(v.Attack))
		msg.Append(float32(v.VibratoRate))
		msg.Append(float32(v.VibratoDepth))
		msgs = append(msgs, msg)
	}
	return msgs
}

func (b *OSCBackend) Play(s Soundscape) error {
	log.Printf("osc: playing soundscape %q (%d voices)", s.Name, len(s.Voices))
	for _, msg := range b.Messages(s) {
		if err := b.send(msg); err != nil {
			return err
		}
	}
	return nil
}

func (b *OSCBackend) Stop() error {
	return b.send(osc.NewMessage(b.prefix + "/stop"))
}

func (b *OSCBackend) SetLevel(level float64) error {
	return b.send(osc.NewMessage(b.prefix+"/level", float32(level)))
}

// Close silences the synth. The UDP client itself holds no resources.
func (b *OSCBackend) Close() error {
	return b.Stop()
}

// Discard is a Backend that does nothing. Used when no synth is configured.
type Discard struct{}

func (Discard) Play(Soundscape) error { return nil }
func (Discard) Stop() error { return nil }
func (Discard) SetLevel(float64) error { return nil }
func (Discard) Close() error { return nil }
