package availability

import (
	"context"
	"hash/fnv"
	"time"
)

// MockProvider simulates a registrar. Availability is derived from a hash of
// the domain, so the same domain always gets the same answer.
type MockProvider struct {
	latency time.Duration
}

func NewMockProvider(latency time.Duration) *MockProvider {
	return &MockProvider{latency: latency}
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) Available(ctx context.Context, domain string) (bool, error) {
	if m.latency > 0 {
		timer := time.NewTimer(m.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return false, err
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(domain))
	return h.Sum32()%2 == 0, nil
}
