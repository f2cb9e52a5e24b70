// Package frame provides the decoded pixel buffer, the JSON-LD frame
// record codec and the resize operator shared by the three binaries.
package frame

import (
	"image"

	"github.com/user/framepipe/pkg/framepipe"
)

// Channel layouts carried by a Buffer.
const (
	ChannelsRGB  = 3
	ChannelsRGBA = 4
)

// maxDim bounds width and height so that width*height*channels cannot
// overflow an int64 during validation.
const maxDim = 1 << 30

// Buffer is a decoded image: interleaved per-pixel channel values,
// row-major, top-to-bottom. It is created by decoding, optionally
// replaced once by Resize, then consumed by an encoder or renderer.
type Buffer struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// Validate checks the buffer invariant: positive dimensions, a known
// channel layout, and len(Pix) == Width*Height*Channels.
func (b *Buffer) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return framepipe.Newf(framepipe.CategoryRecord,
			"invalid image buffer: dimensions %dx%d", b.Width, b.Height)
	}
	if b.Width > maxDim || b.Height > maxDim {
		return framepipe.Newf(framepipe.CategoryRecord,
			"invalid image buffer: dimensions %dx%d out of range", b.Width, b.Height)
	}
	if b.Channels != ChannelsRGB && b.Channels != ChannelsRGBA {
		return framepipe.Newf(framepipe.CategoryRecord,
			"invalid image buffer: %d channels", b.Channels)
	}
	expected := int64(b.Width) * int64(b.Height) * int64(b.Channels)
	if int64(len(b.Pix)) != expected {
		return framepipe.Newf(framepipe.CategoryRecord,
			"invalid image buffer: byte length %d does not match %dx%dx%d (%d)",
			len(b.Pix), b.Width, b.Height, b.Channels, expected)
	}
	return nil
}

// FromImage converts a decoded image into a Buffer with the given
// channel layout. The RGB layout drops alpha; RGBA keeps it.
func FromImage(img image.Image, channels int) (*Buffer, error) {
	if channels != ChannelsRGB && channels != ChannelsRGBA {
		return nil, framepipe.Newf(framepipe.CategoryInternal,
			"unsupported channel layout: %d", channels)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, framepipe.Newf(framepipe.CategoryDecode,
			"decoded image has empty bounds %dx%d", w, h)
	}

	nrgba := toNRGBA(img)

	buf := &Buffer{
		Width:    w,
		Height:   h,
		Channels: channels,
		Pix:      make([]byte, w*h*channels),
	}
	if channels == ChannelsRGBA {
		copy(buf.Pix, nrgba.Pix)
		return buf, nil
	}

	src := nrgba.Pix
	dst := buf.Pix
	for si, di := 0, 0; di < len(dst); si, di = si+4, di+3 {
		dst[di+0] = src[si+0]
		dst[di+1] = src[si+1]
		dst[di+2] = src[si+2]
	}
	return buf, nil
}

// ToImage converts the buffer back to an image.Image. RGB buffers get
// an opaque alpha channel.
func (b *Buffer) ToImage() (image.Image, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	if b.Channels == ChannelsRGBA {
		copy(nrgba.Pix, b.Pix)
		return nrgba, nil
	}

	src := b.Pix
	dst := nrgba.Pix
	for si, di := 0, 0; si < len(src); si, di = si+3, di+4 {
		dst[di+0] = src[si+0]
		dst[di+1] = src[si+1]
		dst[di+2] = src[si+2]
		dst[di+3] = 0xff
	}
	return nrgba, nil
}

// toNRGBA returns img as *image.NRGBA without re-encoding when it
// already has the right representation.
func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Bounds().Min == image.Pt(0, 0) &&
		nrgba.Stride == nrgba.Bounds().Dx()*4 {
		return nrgba
	}

	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.Set(x-bounds.Min.X, y-bounds.Min.Y, img.At(x, y))
		}
	}
	return dst
}
