package mocks

import (
	"context"
	"fmt"
)

// SourceFetcher is a mock implementation of ports.SourceFetcher.
type SourceFetcher struct {
	Data []byte
	ID   string

	FetchFunc  func(ctx context.Context, target string) ([]byte, string, error)
	FetchCalls []string
}

func (m *SourceFetcher) Fetch(ctx context.Context, target string) ([]byte, string, error) {
	m.FetchCalls = append(m.FetchCalls, target)
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, target)
	}
	if m.Data == nil {
		return nil, "", fmt.Errorf("no data configured for %q", target)
	}
	return m.Data, m.ID, nil
}
