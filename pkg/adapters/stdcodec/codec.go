// Package stdcodec implements the ImageCodec port on top of the Go
// image registry: PNG, JPEG and GIF from the standard library plus
// BMP, TIFF and WebP from golang.org/x/image.
package stdcodec

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // decode-only: sniffable input, not an output format

	"github.com/user/framepipe/pkg/frame"
	"github.com/user/framepipe/pkg/framepipe"
	"github.com/user/framepipe/pkg/ports"
)

// DefaultJPEGQuality is used when no quality override is configured.
const DefaultJPEGQuality = 90

// Codec implements ports.ImageCodec.
type Codec struct {
	jpegQuality int
}

// Options configures the codec.
type Options struct {
	// JPEGQuality overrides the JPEG encode quality (1-100).
	JPEGQuality int
}

// New creates a codec with default options.
func New() *Codec {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a codec with the given options.
func NewWithOptions(opts Options) *Codec {
	quality := opts.JPEGQuality
	if quality <= 0 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	return &Codec{jpegQuality: quality}
}

// Decode sniffs the image format from the byte content and decodes it
// into a pixel buffer. The format is identified by magic numbers, not
// by any file name. Images with an alpha channel decode to RGBA,
// everything else to RGB.
func (c *Codec) Decode(data []byte) (*frame.Buffer, string, error) {
	if len(data) == 0 {
		return nil, "", framepipe.New(framepipe.CategoryDecode, "no image data")
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", framepipe.Wrap(framepipe.CategoryDecode, "failed to decode image data", err)
	}

	channels := frame.ChannelsRGB
	switch img.(type) {
	case *image.NRGBA, *image.RGBA, *image.NRGBA64, *image.RGBA64:
		channels = frame.ChannelsRGBA
	}

	buf, err := frame.FromImage(img, channels)
	if err != nil {
		return nil, "", err
	}
	return buf, format, nil
}

// Encode serializes a pixel buffer into the given format.
func (c *Codec) Encode(buf *frame.Buffer, format ports.ImageFormat) ([]byte, error) {
	img, err := buf.ToImage()
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	switch format {
	case ports.FormatPNG:
		err = png.Encode(&out, img)
	case ports.FormatJPEG:
		err = jpeg.Encode(&out, img, &jpeg.Options{Quality: c.jpegQuality})
	case ports.FormatGIF:
		err = gif.Encode(&out, img, nil)
	case ports.FormatBMP:
		err = bmp.Encode(&out, img)
	case ports.FormatTIFF:
		err = tiff.Encode(&out, img, nil)
	default:
		return nil, framepipe.Newf(framepipe.CategoryFormat, "unsupported output format %q", format)
	}
	if err != nil {
		return nil, framepipe.Wrap(framepipe.CategoryEncode,
			"failed to encode "+strings.ToUpper(string(format)), err)
	}
	return out.Bytes(), nil
}

// FormatForPath maps an output path's extension to an encode format.
// This is the one place format is inferred from a name: output paths
// are chosen by the user, so the extension declares intent.
func (c *Codec) FormatForPath(path string) (ports.ImageFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return ports.FormatPNG, nil
	case ".jpg", ".jpeg":
		return ports.FormatJPEG, nil
	case ".gif":
		return ports.FormatGIF, nil
	case ".bmp":
		return ports.FormatBMP, nil
	case ".tif", ".tiff":
		return ports.FormatTIFF, nil
	default:
		return "", framepipe.Newf(framepipe.CategoryFormat,
			"unrecognized output extension for %q", path)
	}
}

// Ensure Codec implements ports.ImageCodec
var _ ports.ImageCodec = (*Codec)(nil)
