package console

import (
	"fmt"
	"io"
	"time"
)

// fifoCapacity buffers incoming serial bytes between the reader goroutine
// and the foreground poll loop.
const fifoCapacity = 256

// Console owns the serial user channel. A reader goroutine pumps incoming
// port bytes into a FIFO; the foreground loop drains the FIFO one byte per
// poll through the line state machine. Output goes straight to the port
// with LF expanded for raw terminals.
type Console struct {
	port    io.ReadWriter
	fifo    *Fifo
	session Session
}

// New creates a console over the given port and starts its reader.
func New(port io.ReadWriter) *Console {
	c := &Console{
		port: port,
		fifo: NewFifo(fifoCapacity),
	}
	go c.readerLoop()
	return c
}

// readerLoop continuously copies port bytes into the FIFO. Bytes arriving
// while the foreground path is busy (an alarm episode, a blocking prompt)
// accumulate here up to the FIFO capacity and overflow is dropped.
func (c *Console) readerLoop() {
	buf := make([]byte, 64)
	for {
		n, err := c.port.Read(buf)
		if n > 0 {
			c.fifo.Write(buf[:n])
		}
		if err != nil {
			if err == io.EOF {
				return
			}
			// Transient read error; back off briefly.
			time.Sleep(time.Millisecond)
		}
	}
}

// PollLine advances the input state machine by at most one buffered byte
// and never blocks. It returns a completed command line and true once one
// is ready.
func (c *Console) PollLine() (string, bool) {
	switch c.session.State() {
	case StateIdle:
		if !c.fifo.IsEmpty() {
			c.session.Begin()
		}
	case StateReading:
		if b, ok := c.fifo.ReadByte(); ok {
			c.session.Feed(b)
		}
	case StateReady:
		return c.session.Line(), true
	}
	return "", false
}

// ReadLine blocks until a full line arrives. Interactive prompts use this
// mode; they are allowed to stall the foreground loop since configuration
// is user-paced.
func (c *Console) ReadLine() string {
	c.session.Reset()
	for {
		b, ok := c.fifo.ReadByte()
		if !ok {
			time.Sleep(time.Millisecond)
			continue
		}
		if c.session.Feed(b) {
			return c.session.Line()
		}
	}
}

// Print writes s to the port, following each LF with a CR for raw serial
// terminals.
func (c *Console) Print(s string) {
	out := make([]byte, 0, len(s)+8)
	for i := 0; i < len(s); i++ {
		out = append(out, s[i])
		if s[i] == '\n' {
			out = append(out, '\r')
		}
	}
	_, _ = c.port.Write(out)
}

// Printf formats and writes to the port.
func (c *Console) Printf(format string, args ...any) {
	c.Print(fmt.Sprintf(format, args...))
}
