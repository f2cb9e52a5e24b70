package ports

import (
	"github.com/user/framepipe/pkg/frame"
)

// ImageFormat identifies an on-disk image encoding.
type ImageFormat string

const (
	FormatPNG  ImageFormat = "png"
	FormatJPEG ImageFormat = "jpeg"
	FormatGIF  ImageFormat = "gif"
	FormatBMP  ImageFormat = "bmp"
	FormatTIFF ImageFormat = "tiff"
)

// ImageCodec abstracts image byte decode and encode.
//
// Decode identifies the format by probing the byte content, never by a
// file name: piped stdin has no name to trust and a misnamed file
// should still decode. Encode is the opposite: the caller names the
// format explicitly, which the writer derives from the output path's
// extension.
type ImageCodec interface {
	// Decode sniffs and decodes image bytes into a pixel buffer,
	// returning the detected format name.
	Decode(data []byte) (*frame.Buffer, string, error)

	// Encode serializes a pixel buffer into the given format.
	Encode(buf *frame.Buffer, format ImageFormat) ([]byte, error)

	// FormatForPath maps an output path's extension to a format.
	FormatForPath(path string) (ImageFormat, error)
}
