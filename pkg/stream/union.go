package stream

import (
	"io"
	"sync"
)

// UnionWriter serializes all writes to a stage's stdout: the stage's
// own record emission and, in union mode, the verbatim copy of each
// input line. A single mutex keeps lines from interleaving mid-line.
type UnionWriter struct {
	mu      sync.Mutex
	w       io.Writer
	enabled bool
}

// NewUnionWriter wraps the stage's stdout. enabled controls whether
// Echo forwards input lines.
func NewUnionWriter(w io.Writer, enabled bool) *UnionWriter {
	return &UnionWriter{w: w, enabled: enabled}
}

// Enabled reports whether union mode is on.
func (u *UnionWriter) Enabled() bool {
	return u.enabled
}

// Echo copies one input line to stdout with a terminating newline. It
// is a no-op when union mode is off. Lines arriving without a final
// newline are re-emitted with one appended so downstream consumers
// stay line-aligned.
func (u *UnionWriter) Echo(line []byte) error {
	if !u.enabled {
		return nil
	}
	return u.writeLine(line)
}

// Emit writes one of the stage's own record lines to stdout. line must
// already be newline-terminated (MarshalLine output).
func (u *UnionWriter) Emit(line []byte) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	_, err := u.w.Write(line)
	return err
}

func (u *UnionWriter) writeLine(line []byte) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, err := u.w.Write(line); err != nil {
		return err
	}
	_, err := u.w.Write([]byte{'\n'})
	return err
}
