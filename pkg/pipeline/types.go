package pipeline

import (
	"github.com/user/framepipe/pkg/frame"
)

// Size is a target width/height pair parsed from a WxH specification.
type Size struct {
	Width  int
	Height int
}

// =============================================================================
// Acquire Stage Types
// =============================================================================

// AcquireInput names one input source.
type AcquireInput struct {
	// Target is a local path or URL; empty means stdin.
	Target string
}

// AcquireResult carries the raw source bytes and their provenance id.
type AcquireResult struct {
	Data []byte
	ID   string
}

// =============================================================================
// Decode Stage Types
// =============================================================================

// DecodeInput carries raw bytes to sniff-decode, with an optional
// resize applied after decoding.
type DecodeInput struct {
	Data   []byte
	ID     string
	Resize *Size
}

// DecodeResult is the decoded (and possibly resized) pixel buffer.
type DecodeResult struct {
	Buffer *frame.Buffer
	Format string
	ID     string
}

// =============================================================================
// Emit Stage Types
// =============================================================================

// EmitInput is a decoded buffer ready to leave as a frame record.
type EmitInput struct {
	Buffer *frame.Buffer
	ID     string
	Format string
}

// EmitResult reports the emitted line size.
type EmitResult struct {
	Bytes int
}

// =============================================================================
// Sink Stage Types
// =============================================================================

// SinkInput is one incoming frame fanned out to every output path.
type SinkInput struct {
	Buffer *frame.Buffer
	// Index is the 1-based position of the frame in the stream,
	// used for diagnostics only.
	Index int
	Paths []string
}

// SinkResult reports per-path outcomes. A failed path never aborts the
// other paths of the same frame.
type SinkResult struct {
	Written []string
	Failed  []PathError
}

// PathError is a failure scoped to a single output path.
type PathError struct {
	Path string
	Err  error
}
