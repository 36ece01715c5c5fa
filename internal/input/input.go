// Package input turns raw terminal bytes into per-tick control state.
// A background goroutine feeds a channel; each frame drains it without
// blocking and keys count as held for a short window after their last
// byte, so terminal autorepeat reads as a continuous press.
package input

import (
	"bufio"
	"time"

	"github.com/arcadeworks/steroids/internal/entity"
)

// keyHoldDuration is how long a key is considered "held" after its
// last press.
const keyHoldDuration = 30 * time.Millisecond

// Frame is the input state for one tick: the simulation controls plus
// the meta keys the loop itself reacts to.
type Frame struct {
	Controls entity.Controls
	Quit     bool
	Enter    bool
}

// keyState tracks the last time each key was seen.
type keyState struct {
	thrust   time.Time
	left     time.Time
	right    time.Time
	fire     time.Time
	teleport time.Time
	restart  time.Time
	quit     time.Time
	enter    time.Time
}

// Stream delivers input bytes via a channel and keeps per-key state so
// simultaneous presses survive the byte-at-a-time terminal protocol.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine reading from r until EOF.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Read drains all pending bytes (non-blocking) and returns the current
// frame's input. Arrow keys arrive as CSI escape sequences.
func (s *Stream) Read() Frame {
	now := time.Now()
	var buf []byte

	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				// Reader hit EOF: the session is gone. Latch quit but
				// still parse whatever arrived before the close.
				s.closed = true
			} else {
				buf = append(buf, b)
			}
		default:
			goto parse
		}
	}

parse:
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // up arrow
				s.state.thrust = now
				i += 2
				continue
			case 'C': // right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // left arrow
				s.state.left = now
				i += 2
				continue
			}
		}

		s.applyByte(b, now)
	}

	held := func(t time.Time) bool { return now.Sub(t) < keyHoldDuration }
	return Frame{
		Controls: entity.Controls{
			Thrust:   held(s.state.thrust),
			Left:     held(s.state.left),
			Right:    held(s.state.right),
			Fire:     held(s.state.fire),
			Teleport: held(s.state.teleport),
			Restart:  held(s.state.restart),
		},
		Quit:  s.closed || held(s.state.quit),
		Enter: held(s.state.enter),
	}
}

func (s *Stream) applyByte(b byte, now time.Time) {
	switch b {
	case 'w', 'W':
		s.state.thrust = now
	case 'a', 'A':
		s.state.left = now
	case 'd', 'D':
		s.state.right = now
	case ' ':
		s.state.fire = now
	case 't', 'T':
		s.state.teleport = now
	case 'r', 'R':
		s.state.restart = now
	case 'q', 'Q', '\x03':
		s.state.quit = now
	case '\n', '\r':
		s.state.enter = now
	}
}
