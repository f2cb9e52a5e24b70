// Package sink implements the writer's fan-out stage: one incoming
// frame encoded and written to every configured output path.
package sink

import (
	"context"

	"github.com/user/framepipe/pkg/framepipe"
	"github.com/user/framepipe/pkg/pipeline"
	"github.com/user/framepipe/pkg/ports"
)

// Stage encodes and persists frames.
type Stage struct {
	codec  ports.ImageCodec
	fs     ports.FileSystem
	logger ports.Logger
}

// New creates a new sink stage.
func New(codec ports.ImageCodec, fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		codec:  codec,
		fs:     fs,
		logger: logger.WithComponent("sink"),
	}
}

// Execute fans the frame out to all paths. Failures are scoped to
// their path and reported in the result: one unsupported or unwritable
// target must not lose the others, so Execute itself never fails.
func (s *Stage) Execute(ctx context.Context, input pipeline.SinkInput) (pipeline.SinkResult, error) {
	var result pipeline.SinkResult

	for _, path := range input.Paths {
		if err := s.writeOne(input, path); err != nil {
			s.logger.Warn("Skipping %s: %s", path, err)
			result.Failed = append(result.Failed, pipeline.PathError{Path: path, Err: err})
			continue
		}
		s.logger.Debug("Saved frame %d to %s", input.Index, path)
		result.Written = append(result.Written, path)
	}

	return result, nil
}

func (s *Stage) writeOne(input pipeline.SinkInput, path string) error {
	format, err := s.codec.FormatForPath(path)
	if err != nil {
		return err
	}

	data, err := s.codec.Encode(input.Buffer, format)
	if err != nil {
		return err
	}

	if err := s.fs.WriteFile(path, data); err != nil {
		return framepipe.Wrap(framepipe.CategoryWrite, "writing "+path, err)
	}
	return nil
}
