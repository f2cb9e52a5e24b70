// Package ebitenview implements the Display port as a resizable
// window driven by the ebiten game loop.
//
// Ingestion and rendering are decoupled: Show is called from the read
// loop goroutine and only swaps a pending frame under a mutex, while
// Run must be called from the main goroutine (a windowing constraint)
// and presents whatever is newest on each tick. A frame that is
// replaced before it was presented is simply dropped.
package ebitenview

import (
	"context"
	"fmt"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/user/framepipe/pkg/frame"
	"github.com/user/framepipe/pkg/ports"
)

// Display implements ports.Display.
type Display struct {
	baseTitle   string
	placeholder image.Image

	mu      sync.Mutex
	pending *pendingFrame
	closed  bool

	ctx     context.Context
	current *ebiten.Image
	width   int
	height  int
	shown   bool
}

type pendingFrame struct {
	img    image.Image
	width  int
	height int
	title  string
}

// New creates a display with the given window title and idle
// placeholder image.
func New(title string, placeholder image.Image) *Display {
	bounds := placeholder.Bounds()
	return &Display{
		baseTitle:   title,
		placeholder: placeholder,
		width:       bounds.Dx(),
		height:      bounds.Dy(),
	}
}

// Show queues a frame for presentation. The conversion out of the
// pixel buffer happens here, on the caller's goroutine, so the render
// loop only ever blits.
func (d *Display) Show(buf *frame.Buffer, title string) {
	img, err := buf.ToImage()
	if err != nil {
		// Callers validate records before Show; a bad buffer here is
		// dropped rather than crashing the window.
		return
	}

	d.mu.Lock()
	d.pending = &pendingFrame{
		img:    img,
		width:  buf.Width,
		height: buf.Height,
		title:  title,
	}
	d.mu.Unlock()
}

// Close signals end of stream: Run returns once everything pending has
// been presented.
func (d *Display) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
}

// Run opens the window and drives the render loop. It blocks until the
// stream is closed and drained, the user cancels (Escape or closing
// the window), or the context is done.
func (d *Display) Run(ctx context.Context) error {
	d.ctx = ctx

	ebiten.SetWindowTitle(d.baseTitle)
	ebiten.SetWindowSize(d.width, d.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(d); err != nil {
		return fmt.Errorf("display loop: %w", err)
	}
	return nil
}

// Update implements ebiten.Game. It swaps in the newest pending frame
// and decides termination.
func (d *Display) Update() error {
	if d.ctx != nil && d.ctx.Err() != nil {
		return ebiten.Termination
	}
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	d.mu.Lock()
	pending := d.pending
	d.pending = nil
	closed := d.closed
	d.mu.Unlock()

	if pending != nil {
		d.current = ebiten.NewImageFromImage(pending.img)
		d.width = pending.width
		d.height = pending.height
		d.shown = false
		ebiten.SetWindowSize(pending.width, pending.height)
		ebiten.SetWindowTitle(fmt.Sprintf("%s (%dx%d)", pending.title, pending.width, pending.height))
		return nil
	}

	// End of stream: stop once the last frame got at least one draw.
	if closed && d.shown {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (d *Display) Draw(screen *ebiten.Image) {
	if d.current == nil {
		screen.DrawImage(ebiten.NewImageFromImage(d.placeholder), nil)
		d.shown = true
		return
	}
	screen.DrawImage(d.current, nil)
	d.shown = true
}

// Layout implements ebiten.Game: the logical screen always matches the
// displayed frame exactly, so the window presents pixel content 1:1.
func (d *Display) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.width, d.height
}

// Ensure Display implements ports.Display
var _ ports.Display = (*Display)(nil)
