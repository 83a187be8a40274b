package console

// Session state. A session idles until a byte arrives, reads until a line
// terminator, and then holds the completed line until it is consumed.
type State uint8

const (
	StateIdle State = iota
	StateReading
	StateReady
)

// LineCapacity bounds the line buffer. Bytes past the bound are dropped
// silently, not reported as an error.
const LineCapacity = 100

const (
	byteBackspace = 0x08
	byteDelete    = 0x7f
)

// Session assembles serial bytes into command lines, one byte at a time,
// without ever blocking. It backs both the non-blocking menu poll and the
// blocking interactive prompts.
type Session struct {
	buf   [LineCapacity]byte
	n     int
	state State
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// Begin transitions an idle session to reading with an empty buffer.
func (s *Session) Begin() {
	s.n = 0
	s.state = StateReading
}

// Feed advances the state machine by one input byte and reports whether a
// completed line is now ready. Feeding a ready session is a no-op until the
// line is consumed.
func (s *Session) Feed(b byte) bool {
	switch s.state {
	case StateIdle:
		s.Begin()
	case StateReady:
		return true
	}

	switch {
	case b == '\n' || b == '\r':
		s.state = StateReady
		return true
	case b == byteBackspace || b == byteDelete:
		if s.n > 0 {
			s.n--
		}
	default:
		if s.n < LineCapacity {
			s.buf[s.n] = b
			s.n++
		}
	}
	return false
}

// Line returns the completed line and resets the session to idle. It must
// be called exactly once per completed line.
func (s *Session) Line() string {
	line := string(s.buf[:s.n])
	s.n = 0
	s.state = StateIdle
	return line
}

// Reset discards any partial input and returns the session to idle.
func (s *Session) Reset() {
	s.n = 0
	s.state = StateIdle
}
