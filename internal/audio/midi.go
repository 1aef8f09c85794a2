package audio

import (
	"fmt"
	"log"
	"math"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

const (
	midiChannel   = 0
	midiVelocity  = 96
	ccVolume      = 7
	ccAllNotesOff = 123
)

// MIDIDevices lists the names of the available MIDI output ports.
func MIDIDevices() []string {
	var names []string
	for _, out := range midi.GetOutPorts() {
		names = append(names, out.String())
	}
	return names
}

// MIDIBackend plays soundscapes on a MIDI instrument: every voice becomes a
// held note on one channel, the level is channel volume.
type MIDIBackend struct {
	port drivers.Out
	send func(midi.Message) error
	held []uint8
}

// NewMIDIBackend opens the first output port whose name contains device.
func NewMIDIBackend(device string) (*MIDIBackend, error) {
	out, err := midi.FindOutPort(device)
	if err != nil {
		return nil, fmt.Errorf("finding midi device %q: %w", device, err)
	}
	send, err := midi.SendTo(out)
	if err != nil {
		return nil, fmt.Errorf("opening midi device %q: %w", device, err)
	}
	log.Printf("midi: sending to %s", out)
	b := newMIDIBackend(send)
	b.port = out
	return b, nil
}

func newMIDIBackend(send func(midi.Message) error) *MIDIBackend {
	return &MIDIBackend{send: send}
}

// MIDINote is the nearest equal-tempered note to freq, A4 = 440 Hz = 69.
func MIDINote(freq float64) uint8 {
	if freq <= 0 {
		return 0
	}
	n := math.Round(69 + 12*math.Log2(freq/440))
	return uint8(math.Max(0, math.Min(127, n)))
}

// Notes returns the distinct notes s holds, in voice order.
func Notes(s Soundscape) []uint8 {
	var notes []uint8
	seen := map[uint8]bool{}
	for _, v := range s.Voices {
		n := MIDINote(v.Frequency)
		if seen[n] {
			continue
		}
		seen[n] = true
		notes = append(notes, n)
	}
	return notes
}

func (b *MIDIBackend) write(msg midi.Message) error {
	if err := b.send(msg); err != nil {
		return fmt.Errorf("midi send %s: %w", msg, err)
	}
	return nil
}

func (b *MIDIBackend) Play(s Soundscape) error {
	if err := b.release(); err != nil {
		return err
	}
	log.Printf("midi: playing soundscape %q", s.Name)
	for _, n := range Notes(s) {
		if err := b.write(midi.NoteOn(midiChannel, n, midiVelocity)); err != nil {
			return err
		}
		b.held = append(b.held, n)
	}
	return nil
}

// release sends note-off for every held note.
func (b *MIDIBackend) release() error {
	held := b.held
	b.held = nil
	for _, n := range held {
		if err := b.write(midi.NoteOff(midiChannel, n)); err != nil {
			return err
		}
	}
	return nil
}

func (b *MIDIBackend) Stop() error {
	if err := b.release(); err != nil {
		return err
	}
	return b.write(midi.ControlChange(midiChannel, ccAllNotesOff, 0))
}

func (b *MIDIBackend) SetLevel(level float64) error {
	v := uint8(math.Round(math.Max(0, math.Min(1, level)) * 127))
	return b.write(midi.ControlChange(midiChannel, ccVolume, v))
}

// Close silences the instrument and closes the port.
func (b *MIDIBackend) Close() error {
	err := b.Stop()
	if b.port != nil {
		if cerr := b.port.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
