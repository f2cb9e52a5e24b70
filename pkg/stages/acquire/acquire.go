// Package acquire implements the source acquisition stage of the reader.
package acquire

import (
	"context"

	"github.com/user/framepipe/pkg/pipeline"
	"github.com/user/framepipe/pkg/ports"
)

// Stage fetches the raw bytes of one input source.
type Stage struct {
	fetcher ports.SourceFetcher
	logger  ports.Logger
}

// New creates a new acquire stage.
func New(fetcher ports.SourceFetcher, logger ports.Logger) *Stage {
	return &Stage{
		fetcher: fetcher,
		logger:  logger.WithComponent("acquire"),
	}
}

// Execute fetches the source bytes. Fetch failures are fatal for the
// invocation: the reader processes exactly one source.
func (s *Stage) Execute(ctx context.Context, input pipeline.AcquireInput) (pipeline.AcquireResult, error) {
	if input.Target == "" {
		s.logger.Debug("Reading from standard input")
	} else {
		s.logger.Debug("Reading %s", input.Target)
	}

	data, id, err := s.fetcher.Fetch(ctx, input.Target)
	if err != nil {
		return pipeline.AcquireResult{}, err
	}

	s.logger.Debug("Read %d bytes", len(data))
	return pipeline.AcquireResult{Data: data, ID: id}, nil
}
