// Package runner coordinates the stages of each framepipe binary:
// the reader's acquire/decode/emit chain and the viewer's and writer's
// record consumption loops.
package runner

import (
	"context"

	"github.com/user/framepipe/pkg/pipeline"
	"github.com/user/framepipe/pkg/ports"
	"github.com/user/framepipe/pkg/stages/acquire"
	"github.com/user/framepipe/pkg/stages/decode"
	"github.com/user/framepipe/pkg/stages/emit"
	"github.com/user/framepipe/pkg/stream"
)

// Reader runs the source-to-record pipeline: fetch bytes, sniff-decode
// them, optionally resize, and emit exactly one frame record.
type Reader struct {
	acquireStage pipeline.Stage[pipeline.AcquireInput, pipeline.AcquireResult]
	decodeStage  pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult]
	emitStage    pipeline.Stage[pipeline.EmitInput, pipeline.EmitResult]
	logger       ports.Logger
}

// NewReader wires the reader stages.
func NewReader(fetcher ports.SourceFetcher, codec ports.ImageCodec, out *stream.UnionWriter, logger ports.Logger) *Reader {
	return &Reader{
		acquireStage: acquire.New(fetcher, logger),
		decodeStage:  decode.New(codec, logger),
		emitStage:    emit.New(out, logger),
		logger:       logger,
	}
}

// Run processes one source. Any failure is fatal: the record stream
// must never carry a partial record.
func (r *Reader) Run(ctx context.Context, target string, size *pipeline.Size) error {
	acquired, err := r.acquireStage.Execute(ctx, pipeline.AcquireInput{Target: target})
	if err != nil {
		return err
	}

	decoded, err := r.decodeStage.Execute(ctx, pipeline.DecodeInput{
		Data:   acquired.Data,
		ID:     acquired.ID,
		Resize: size,
	})
	if err != nil {
		return err
	}

	_, err = r.emitStage.Execute(ctx, pipeline.EmitInput{
		Buffer: decoded.Buffer,
		ID:     decoded.ID,
		Format: decoded.Format,
	})
	return err
}
