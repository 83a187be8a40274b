package serial

import (
	"io"
	"os"
)

// stdioPort runs the device loop on the local terminal.
type stdioPort struct {
	in  io.Reader
	out io.Writer
}

// Stdio returns a Port backed by os.Stdin and os.Stdout.
func Stdio() Port {
	return &stdioPort{in: os.Stdin, out: os.Stdout}
}

func (p *stdioPort) Read(b []byte) (int, error)  { return p.in.Read(b) }
func (p *stdioPort) Write(b []byte) (int, error) { return p.out.Write(b) }

// Close is a no-op; the process owns stdio.
func (p *stdioPort) Close() error { return nil }
