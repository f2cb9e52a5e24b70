package runner

import (
	"context"
	"io"

	"github.com/user/framepipe/pkg/frame"
	"github.com/user/framepipe/pkg/ports"
	"github.com/user/framepipe/pkg/stream"
)

// Viewer consumes frame records from stdin and presents each one on a
// display. Ingestion runs on its own goroutine so the render loop
// never blocks the stream.
type Viewer struct {
	display ports.Display
	union   *stream.UnionWriter
	logger  ports.Logger
}

// NewViewer wires the viewer.
func NewViewer(display ports.Display, union *stream.UnionWriter, logger ports.Logger) *Viewer {
	return &Viewer{
		display: display,
		union:   union,
		logger:  logger,
	}
}

// Run starts ingestion and blocks on the display loop. It must be
// called from the main goroutine (windowing constraint).
func (v *Viewer) Run(ctx context.Context, in io.Reader) error {
	v.logger.Debug("Viewer started")
	go v.ingest(ctx, in)
	return v.display.Run(ctx)
}

// ingest reads records until EOF. Malformed records are reported and
// skipped: a long-running consumer survives one bad upstream frame.
// The union copy is written before the frame is handed to the display;
// the ordering between the copy and the present is not observable
// downstream.
func (v *Viewer) ingest(ctx context.Context, in io.Reader) {
	defer v.display.Close()

	lines := stream.NewLineReader(in)
	index := 0
	for {
		if ctx.Err() != nil {
			return
		}

		line, err := lines.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			v.logger.Warn("Stdin read error: %s", err)
			break
		}

		if err := v.union.Echo(line); err != nil {
			v.logger.Warn("Failed to write %s: %s", "stdout", err)
			break
		}

		rec, err := frame.DecodeRecord(line)
		if err != nil {
			v.logger.Warn("Skipping malformed record: %s", err)
			continue
		}

		index++
		v.logger.Debug("Displaying frame %d (%dx%d)", index, rec.Width, rec.Height)
		v.display.Show(rec.Buffer(), frameTitle(rec))
	}

	v.logger.Debug("Input stream closed")
}

// frameTitle picks the window title for a record: its provenance when
// known, the program name otherwise.
func frameTitle(rec *frame.Record) string {
	switch {
	case rec.Source != "":
		return rec.Source
	case rec.ID != "":
		return rec.ID
	default:
		return "framepipe"
	}
}
