package mocks

import (
	"context"
	"sync"

	"github.com/user/framepipe/pkg/frame"
)

// ShownFrame records one Show call.
type ShownFrame struct {
	Buffer *frame.Buffer
	Title  string
}

// Display is a mock implementation of ports.Display. Run blocks until
// Close is called or the context is done, like a real window loop.
type Display struct {
	mu     sync.Mutex
	shown  []ShownFrame
	closed chan struct{}
	once   sync.Once
}

// NewDisplay creates a new mock Display.
func NewDisplay() *Display {
	return &Display{closed: make(chan struct{})}
}

func (m *Display) Show(buf *frame.Buffer, title string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shown = append(m.shown, ShownFrame{Buffer: buf, Title: title})
}

func (m *Display) Close() {
	m.once.Do(func() { close(m.closed) })
}

func (m *Display) Run(ctx context.Context) error {
	select {
	case <-m.closed:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shown returns a copy of the recorded Show calls.
func (m *Display) Shown() []ShownFrame {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ShownFrame, len(m.shown))
	copy(out, m.shown)
	return out
}
