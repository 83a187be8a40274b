package console

import "sync"

// Fifo is a fixed-capacity byte ring between the reader goroutine and the
// foreground poll loop. One slot is kept empty to distinguish full from
// empty, so a Fifo created with capacity n holds n bytes.
type Fifo struct {
	mu    sync.Mutex
	buf   []byte
	read  int
	write int
	size  int
}

// NewFifo creates a Fifo holding up to capacity bytes.
func NewFifo(capacity int) *Fifo {
	return &Fifo{
		buf:  make([]byte, capacity+1),
		size: capacity + 1,
	}
}

// Write appends data, dropping bytes once the ring is full, and returns the
// number of bytes accepted.
func (f *Fifo) Write(data []byte) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	written := 0
	for _, b := range data {
		next := (f.write + 1) % f.size
		if next == f.read {
			break
		}
		f.buf[f.write] = b
		f.write = next
		written++
	}
	return written
}

// ReadByte removes and returns the oldest byte, reporting false when empty.
func (f *Fifo) ReadByte() (byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.read == f.write {
		return 0, false
	}
	b := f.buf[f.read]
	f.read = (f.read + 1) % f.size
	return b, true
}

// Available returns the number of buffered bytes.
func (f *Fifo) Available() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.write >= f.read {
		return f.write - f.read
	}
	return f.size - f.read + f.write
}

// IsEmpty reports whether the ring holds no bytes.
func (f *Fifo) IsEmpty() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read == f.write
}

// Reset discards all buffered bytes.
func (f *Fifo) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.read = 0
	f.write = 0
}
