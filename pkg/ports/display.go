package ports

import (
	"context"

	"github.com/user/framepipe/pkg/frame"
)

// Display presents decoded frames in a window.
//
// Show never blocks the ingestion loop: a frame that arrives while an
// earlier one is still pending replaces it (newest frame wins). Run
// owns the render loop and blocks until the user cancels, the context
// is done, or Close was called and every pending frame was presented.
type Display interface {
	// Show queues a frame for presentation under the given title.
	Show(buf *frame.Buffer, title string)

	// Close signals that no further frames will arrive.
	Close()

	// Run drives the window until cancellation or end of stream.
	Run(ctx context.Context) error
}
