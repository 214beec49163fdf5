// Package input turns a raw terminal byte stream into per-tick game input:
// one steering intent per player plus edge-triggered control signals.
package input

import (
	"bufio"
	"io"
	"time"

	"github.com/tomz197/slither-sprint/internal/entity"
)

// keyHoldDuration is how long a key is considered "held" after its last
// press. Terminals only deliver discrete presses and autorepeat, so held
// steering keys are reconstructed from press recency.
const keyHoldDuration = 150 * time.Millisecond

// Frame is one tick's worth of input. Steering intents are level signals;
// the control flags fire once per key press.
type Frame struct {
	P1, P2 entity.Intent

	Restart bool
	Pause   bool
	Start   bool
	Quit    bool
}

// keyState tracks the last press time of each steering key.
type keyState struct {
	p1Left  time.Time
	p1Right time.Time
	p2Left  time.Time
	p2Right time.Time
}

// Stream delivers input bytes via a channel and tracks steering key state.
type Stream struct {
	ch    chan byte
	state keyState
}

// NewStream spawns a goroutine that reads from r and feeds the stream.
// The goroutine exits when the reader returns an error (EOF, closed
// session).
func NewStream(r io.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	br := bufio.NewReader(r)
	go func() {
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadFrame drains all pending bytes (non-blocking) and builds the frame.
// Player 1 steers with A/D, player 2 with the arrow keys. R restarts,
// P pauses, space/enter starts, Q or Ctrl-C quits.
func (s *Stream) ReadFrame() Frame {
	now := time.Now()
	var frame Frame

	var buf []byte
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				frame.Quit = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequences: ESC [ <code> for the arrow keys.
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'C':
				s.state.p2Right = now
			case 'D':
				s.state.p2Left = now
			}
			i += 2
			continue
		}

		switch b {
		case 'a', 'A':
			s.state.p1Left = now
		case 'd', 'D':
			s.state.p1Right = now
		case 'r', 'R':
			frame.Restart = true
		case 'p', 'P':
			frame.Pause = true
		case ' ', '\n', '\r':
			frame.Start = true
		case 'q', 'Q', '\x03':
			frame.Quit = true
		}
	}

	frame.P1 = intentFrom(s.state.p1Left, s.state.p1Right, now)
	frame.P2 = intentFrom(s.state.p2Left, s.state.p2Right, now)
	return frame
}

// intentFrom resolves the two steering keys into one intent; when both are
// recent the later press wins.
func intentFrom(left, right time.Time, now time.Time) entity.Intent {
	leftHeld := now.Sub(left) < keyHoldDuration
	rightHeld := now.Sub(right) < keyHoldDuration

	switch {
	case leftHeld && rightHeld:
		if right.After(left) {
			return entity.IntentRight
		}
		return entity.IntentLeft
	case leftHeld:
		return entity.IntentLeft
	case rightHeld:
		return entity.IntentRight
	default:
		return entity.IntentNone
	}
}
