package runner

import (
	"context"
	"io"

	"github.com/user/framepipe/pkg/frame"
	"github.com/user/framepipe/pkg/framepipe"
	"github.com/user/framepipe/pkg/pipeline"
	"github.com/user/framepipe/pkg/ports"
	"github.com/user/framepipe/pkg/stages/sink"
	"github.com/user/framepipe/pkg/stream"
)

// Writer consumes frame records from stdin and persists each frame to
// every configured output path.
type Writer struct {
	sinkStage pipeline.Stage[pipeline.SinkInput, pipeline.SinkResult]
	union     *stream.UnionWriter
	logger    ports.Logger
	paths     []string
}

// NewWriter wires the writer.
func NewWriter(codec ports.ImageCodec, fs ports.FileSystem, union *stream.UnionWriter, logger ports.Logger, paths []string) *Writer {
	return &Writer{
		sinkStage: sink.New(codec, fs, logger),
		union:     union,
		logger:    logger,
		paths:     paths,
	}
}

// Run is the pull loop: one line, one frame, one fan-out. Malformed
// records and per-path failures are reported and skipped; only losing
// stdout (a closed downstream pipe) ends the run early. In union mode
// the raw line is copied to stdout after its file writes were
// attempted, preserving record order.
func (w *Writer) Run(ctx context.Context, in io.Reader) error {
	if len(w.paths) == 0 {
		w.logger.Info("No output FILES provided; frames will not be saved")
	}

	lines := stream.NewLineReader(in)
	frames := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := lines.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			w.logger.Warn("Stdin read error: %s", err)
			break
		}

		if err := w.handleLine(ctx, line, &frames); err != nil {
			return err
		}
	}

	w.logger.Info("Processed %d frames", frames)
	return nil
}

func (w *Writer) handleLine(ctx context.Context, line []byte, frames *int) error {
	// The union copy happens even for lines that fail to parse:
	// passthrough must reproduce the input regardless of outcomes.
	rec, err := frame.DecodeRecord(line)
	if err != nil {
		w.logger.Warn("Skipping malformed record: %s", err)
		return w.echo(line)
	}

	*frames++
	// The sink never fails the stream; per-path errors are in the result.
	_, _ = w.sinkStage.Execute(ctx, pipeline.SinkInput{
		Buffer: rec.Buffer(),
		Index:  *frames,
		Paths:  w.paths,
	})

	return w.echo(line)
}

func (w *Writer) echo(line []byte) error {
	if err := w.union.Echo(line); err != nil {
		return framepipe.Wrap(framepipe.CategoryWrite, "copying input line to stdout", err)
	}
	return nil
}
