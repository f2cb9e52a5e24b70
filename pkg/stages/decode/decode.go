// Package decode implements the sniff-decode and resize stage.
package decode

import (
	"context"

	"github.com/user/framepipe/pkg/frame"
	"github.com/user/framepipe/pkg/pipeline"
	"github.com/user/framepipe/pkg/ports"
)

// Stage decodes raw bytes into a pixel buffer by content sniffing and
// applies the optional resize.
type Stage struct {
	codec  ports.ImageCodec
	logger ports.Logger
}

// New creates a new decode stage.
func New(codec ports.ImageCodec, logger ports.Logger) *Stage {
	return &Stage{
		codec:  codec,
		logger: logger.WithComponent("decode"),
	}
}

// Execute decodes and optionally resizes. The resize is skipped when
// the target equals the source dimensions.
func (s *Stage) Execute(ctx context.Context, input pipeline.DecodeInput) (pipeline.DecodeResult, error) {
	buf, format, err := s.codec.Decode(input.Data)
	if err != nil {
		return pipeline.DecodeResult{}, err
	}
	s.logger.Debug("Decoded %s image: %dx%d", format, buf.Width, buf.Height)

	if target := input.Resize; target != nil &&
		(target.Width != buf.Width || target.Height != buf.Height) {
		s.logger.Debug("Resizing to %dx%d", target.Width, target.Height)
		buf, err = frame.Resize(buf, target.Width, target.Height)
		if err != nil {
			return pipeline.DecodeResult{}, err
		}
	}

	return pipeline.DecodeResult{Buffer: buf, Format: format, ID: input.ID}, nil
}
