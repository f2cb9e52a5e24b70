// Package framepipe defines the error taxonomy and exit code mapping
// shared by the reader, viewer and writer binaries.
package framepipe

import (
	"errors"
	"fmt"
)

// Exit codes follow the POSIX sysexits convention. The same mapping is
// used by all three binaries so that a given failure category always
// produces the same exit status regardless of which stage hit it.
const (
	ExOK       = 0  // success
	ExUsage    = 64 // bad arguments, invalid size spec
	ExDataErr  = 65 // undecodable image, malformed record
	ExNoInput  = 66 // source file or URL does not exist
	ExSoftware = 70 // internal error
	ExIOErr    = 74 // read/write failure
)

// Category classifies an error for reporting and exit code selection.
type Category int

const (
	// CategoryUsage covers bad command-line arguments. Fatal before any I/O.
	CategoryUsage Category = iota
	// CategoryFetch covers failures reading source bytes (file, URL, stdin).
	CategoryFetch
	// CategoryDecode covers bytes that match no supported image format.
	CategoryDecode
	// CategoryRecord covers input lines that are not valid frame records.
	// Non-fatal in the viewer and writer.
	CategoryRecord
	// CategoryFormat covers output extensions with no known encoder.
	// Scoped to a single output path.
	CategoryFormat
	// CategoryEncode covers failures encoding a pixel buffer to bytes.
	CategoryEncode
	// CategoryWrite covers filesystem write failures. Scoped to one path.
	CategoryWrite
	// CategoryInternal covers everything that should not happen.
	CategoryInternal
)

// String returns the human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryUsage:
		return "usage"
	case CategoryFetch:
		return "fetch"
	case CategoryDecode:
		return "decode"
	case CategoryRecord:
		return "record"
	case CategoryFormat:
		return "format"
	case CategoryEncode:
		return "encode"
	case CategoryWrite:
		return "write"
	default:
		return "internal"
	}
}

// Error is a categorized pipeline error. The category decides the exit
// code and whether the caller treats it as fatal or per-record.
type Error struct {
	Category Category
	Message  string
	Err      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a categorized error without a cause.
func New(cat Category, msg string) *Error {
	return &Error{Category: cat, Message: msg}
}

// Newf creates a categorized error with a formatted message.
func Newf(cat Category, format string, args ...interface{}) *Error {
	return &Error{Category: cat, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a categorized error around a cause.
func Wrap(cat Category, msg string, err error) *Error {
	return &Error{Category: cat, Message: msg, Err: err}
}

// CategoryOf extracts the category from an error chain.
// Uncategorized errors are internal.
func CategoryOf(err error) Category {
	var e *Error
	if errors.As(err, &e) {
		return e.Category
	}
	return CategoryInternal
}

// Is reports whether err carries the given category.
func Is(err error, cat Category) bool {
	return err != nil && CategoryOf(err) == cat
}

// ExitCode maps an error to its sysexits code.
func ExitCode(err error) int {
	if err == nil {
		return ExOK
	}
	switch CategoryOf(err) {
	case CategoryUsage:
		return ExUsage
	case CategoryDecode, CategoryRecord, CategoryFormat, CategoryEncode:
		return ExDataErr
	case CategoryFetch:
		return ExNoInput
	case CategoryWrite:
		return ExIOErr
	default:
		return ExSoftware
	}
}
