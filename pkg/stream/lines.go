// Package stream provides the line-delimited stdio plumbing shared by
// the pipeline stages: newline splitting on the way in and union/tee
// duplication on the way out.
package stream

import (
	"bufio"
	"io"
)

// LineReader splits an input stream on newline boundaries. Records can
// be arbitrarily long (a base64 pixel payload easily exceeds any fixed
// token size), so it reads through bufio.Reader rather than a Scanner.
type LineReader struct {
	r   *bufio.Reader
	eof bool
}

// NewLineReader creates a LineReader over r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// Next returns the next line with its trailing newline stripped, or
// io.EOF once the stream is exhausted. A trailing line without a
// terminating newline is returned as a final line.
func (lr *LineReader) Next() ([]byte, error) {
	if lr.eof {
		return nil, io.EOF
	}

	line, err := lr.r.ReadBytes('\n')
	if err == io.EOF {
		lr.eof = true
		if len(line) == 0 {
			return nil, io.EOF
		}
		return line, nil
	}
	if err != nil {
		return nil, err
	}
	return line[:len(line)-1], nil
}
