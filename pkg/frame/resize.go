package frame

import (
	"image"
	"strconv"
	"strings"

	"golang.org/x/image/draw"

	"github.com/user/framepipe/pkg/framepipe"
)

// ParseSize parses a WxH size specification such as "1920x1080".
// Both dimensions must be positive decimal integers separated by a
// single "x" (the Unicode "×" is also accepted). Surrounding spaces
// around each number are tolerated.
func ParseSize(spec string) (width, height int, err error) {
	s := strings.ReplaceAll(strings.TrimSpace(spec), "×", "x")
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return 0, 0, framepipe.Newf(framepipe.CategoryUsage,
			"invalid size %q: expected WxH (e.g. 1920x1080)", spec)
	}

	width, err = parseDimension(spec, parts[0])
	if err != nil {
		return 0, 0, err
	}
	height, err = parseDimension(spec, parts[1])
	if err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

func parseDimension(spec, part string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(part))
	if err != nil {
		return 0, framepipe.Newf(framepipe.CategoryUsage,
			"invalid size %q: %q is not an integer", spec, strings.TrimSpace(part))
	}
	if n <= 0 {
		return 0, framepipe.Newf(framepipe.CategoryUsage,
			"invalid size %q: dimensions must be positive", spec)
	}
	if n > maxDim {
		return 0, framepipe.Newf(framepipe.CategoryUsage,
			"invalid size %q: dimension %d out of range", spec, n)
	}
	return n, nil
}

// Resize scales the buffer to the target dimensions with Catmull-Rom
// resampling. It never mutates its input, preserves the channel
// layout, and is deterministic: the same buffer and target always
// produce byte-identical output.
func Resize(buf *Buffer, width, height int) (*Buffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 || width > maxDim || height > maxDim {
		return nil, framepipe.Newf(framepipe.CategoryUsage,
			"invalid resize dimensions %dx%d", width, height)
	}

	if width == buf.Width && height == buf.Height {
		out := &Buffer{
			Width:    buf.Width,
			Height:   buf.Height,
			Channels: buf.Channels,
			Pix:      make([]byte, len(buf.Pix)),
		}
		copy(out.Pix, buf.Pix)
		return out, nil
	}

	src, err := buf.ToImage()
	if err != nil {
		return nil, err
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return FromImage(dst, buf.Channels)
}
