// Package ggsplash renders the viewer's idle placeholder canvas with
// the gg library, shown until the first frame record arrives.
package ggsplash

import (
	"image"

	"github.com/fogleman/gg"
)

// Default placeholder dimensions, also the viewer's initial window size.
const (
	DefaultWidth  = 320
	DefaultHeight = 240
)

// Render draws the placeholder: a dark canvas with a frame outline and
// crosshair, so an empty viewer window is visibly "waiting" rather
// than broken.
func Render(width, height int) image.Image {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	dc := gg.NewContext(width, height)

	dc.SetRGB255(30, 30, 30)
	dc.Clear()

	w := float64(width)
	h := float64(height)
	margin := w / 16
	if hm := h / 16; hm < margin {
		margin = hm
	}

	dc.SetRGB255(80, 80, 80)
	dc.SetLineWidth(2)
	dc.DrawRectangle(margin, margin, w-2*margin, h-2*margin)
	dc.Stroke()

	dc.SetLineWidth(1)
	dc.DrawLine(margin, h/2, w-margin, h/2)
	dc.Stroke()
	dc.DrawLine(w/2, margin, w/2, h-margin)
	dc.Stroke()

	dc.SetRGB255(100, 180, 255)
	dc.DrawCircle(w/2, h/2, margin/2)
	dc.Stroke()

	return dc.Image()
}
