package availability

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/MrSnakeDoc/brainstorm/internal/logger"
)

var (
	ErrUnknownProvider = errors.New("unknown availability provider")
	ErrInvalidInput    = errors.New("invalid availability request")
	ErrProviderFailed  = errors.New("availability provider failed")
)

const (
	DefaultMaxDomains  = 1000
	defaultConcurrency = 8
)

// Provider answers whether a single domain can be registered.
type Provider interface {
	Name() string
	Available(ctx context.Context, domain string) (bool, error)
}

// Checker fans a batch of domains out to one provider.
type Checker struct {
	providers   map[string]Provider
	fallback    string
	maxDomains  int
	concurrency int
	logger      logger.Logger
}

type Option func(*Checker)

// WithMaxDomains caps the batch size accepted by Check.
func WithMaxDomains(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.maxDomains = n
		}
	}
}

// WithConcurrency sets how many domains are checked in parallel.
func WithConcurrency(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithDefault selects the provider used when a request names none.
func WithDefault(name string) Option {
	return func(c *Checker) { c.fallback = name }
}

// NewChecker registers providers by name. The first provider is the default
// unless WithDefault says otherwise.
func NewChecker(log logger.Logger, providers []Provider, opts ...Option) *Checker {
	c := &Checker{
		providers:   make(map[string]Provider, len(providers)),
		maxDomains:  DefaultMaxDomains,
		concurrency: defaultConcurrency,
		logger:      log,
	}
	for i, p := range providers {
		if i == 0 {
			c.fallback = p.Name()
		}
		c.providers[p.Name()] = p
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Providers lists registered provider names, sorted.
func (c *Checker) Providers() []string {
	names := make([]string, 0, len(c.providers))
	for name := range c.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the name used when a request names no provider.
func (c *Checker) Default() string { return c.fallback }

// Check returns availability per domain. Duplicate domains are checked once.
// Any provider error fails the whole batch.
func (c *Checker) Check(ctx context.Context, domains []string, provider string) (map[string]bool, error) {
	if provider == "" {
		provider = c.fallback
	}
	p, ok := c.providers[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}
	if len(domains) == 0 {
		return nil, fmt.Errorf("%w: no domains", ErrInvalidInput)
	}
	if len(domains) > c.maxDomains {
		return nil, fmt.Errorf("%w: %d domains exceeds limit of %d", ErrInvalidInput, len(domains), c.maxDomains)
	}

	unique := make([]string, 0, len(domains))
	seen := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		if d == "" {
			return nil, fmt.Errorf("%w: empty domain", ErrInvalidInput)
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		unique = append(unique, d)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu       sync.Mutex
		results  = make(map[string]bool, len(unique))
		firstErr error
		wg       sync.WaitGroup
		jobs     = make(chan string)
	)

	workers := min(c.concurrency, len(unique))
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for d := range jobs {
				ok, err := p.Available(ctx, d)
				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = fmt.Errorf("%w: %s: %s: %w", ErrProviderFailed, p.Name(), d, err)
						cancel()
					}
				} else {
					results[d] = ok
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for _, d := range unique {
		select {
		case jobs <- d:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		c.logger.Warn("availability check failed",
			logger.String("provider", p.Name()),
			logger.Int("domains", len(unique)),
			logger.Error(firstErr))
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil && len(results) < len(unique) {
		return nil, fmt.Errorf("%w: %s: %w", ErrProviderFailed, p.Name(), err)
	}

	c.logger.Debug("availability checked",
		logger.String("provider", p.Name()),
		logger.Int("domains", len(unique)))

	return results, nil
}
