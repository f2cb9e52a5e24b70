// Package emit implements the record emission stage of the reader.
package emit

import (
	"context"

	"github.com/user/framepipe/pkg/frame"
	"github.com/user/framepipe/pkg/framepipe"
	"github.com/user/framepipe/pkg/pipeline"
	"github.com/user/framepipe/pkg/ports"
	"github.com/user/framepipe/pkg/stream"
)

// Stage serializes a pixel buffer as one frame record line on stdout.
type Stage struct {
	out    *stream.UnionWriter
	logger ports.Logger
}

// New creates a new emit stage writing through out.
func New(out *stream.UnionWriter, logger ports.Logger) *Stage {
	return &Stage{
		out:    out,
		logger: logger.WithComponent("emit"),
	}
}

// Execute marshals and writes exactly one record line.
func (s *Stage) Execute(ctx context.Context, input pipeline.EmitInput) (pipeline.EmitResult, error) {
	rec := frame.NewRecord(input.Buffer, input.ID, input.Format)
	line, err := rec.MarshalLine()
	if err != nil {
		return pipeline.EmitResult{}, err
	}

	if err := s.out.Emit(line); err != nil {
		return pipeline.EmitResult{}, framepipe.Wrap(framepipe.CategoryWrite, "writing frame record", err)
	}

	s.logger.Debug("Emitted frame record for %s", input.ID)
	return pipeline.EmitResult{Bytes: len(line)}, nil
}
