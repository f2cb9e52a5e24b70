package ports

import "context"

// SourceFetcher acquires the raw bytes of one input source.
//
// The target may be a local path (optionally prefixed with file: or
// file://), an http(s) URL, or empty to read standard input to EOF.
// The returned id is the canonical provenance identifier recorded in
// the emitted frame (file:<absolute path>, the URL, or "stdin:").
type SourceFetcher interface {
	Fetch(ctx context.Context, target string) (data []byte, id string, err error)
}
