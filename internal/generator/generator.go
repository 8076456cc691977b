package generator

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/MrSnakeDoc/brainstorm/internal/combination"
	"github.com/MrSnakeDoc/brainstorm/internal/logger"
)

// Lookup classifies a batch of words as dictionary words or not.
// Implementations must be safe for concurrent use and accept batches of at
// least MaxPageSize words. Matching is case-insensitive.
type Lookup interface {
	Lookup(ctx context.Context, words []string) (map[string]bool, error)
}

// Candidate is one generated domain name.
type Candidate struct {
	Domain       string `json:"domain"`
	IsMeaningful bool   `json:"isMeaningful"`
}

// Page is the result of one generation call. Page, PageSize and
// TotalCombinations always describe the unfiltered combination space.
type Page struct {
	Domains           []Candidate `json:"domains"`
	Page              int         `json:"page"`
	PageSize          int         `json:"pageSize"`
	TotalCombinations *big.Int    `json:"totalCombinations"`
}

// Generator produces pages of domain candidates. It holds no per-call state
// and is safe for concurrent use.
type Generator struct {
	lookup      Lookup
	logger      logger.Logger
	maxPageSize int
}

type Option func(*Generator)

// WithMaxPageSize lowers the page size cap. Values outside (0, MaxPageSize]
// are ignored.
func WithMaxPageSize(n int) Option {
	return func(g *Generator) {
		if n > 0 && n <= MaxPageSize {
			g.maxPageSize = n
		}
	}
}

// New creates a Generator backed by the given dictionary lookup.
func New(lookup Lookup, log logger.Logger, opts ...Option) *Generator {
	g := &Generator{
		lookup:      lookup,
		logger:      log,
		maxPageSize: MaxPageSize,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// MaxPageSize returns the effective page size cap.
func (g *Generator) MaxPageSize() int { return g.maxPageSize }

// Generate returns one page of candidates for p.
//
// Invalid parameters yield a *ValidationError before any work is done. A page
// past the end of the combination space is empty, not an error. A failed
// lookup fails the whole page with a *DependencyError.
func (g *Generator) Generate(ctx context.Context, p Params) (*Page, error) {
	if err := p.Validate(g.maxPageSize); err != nil {
		return nil, err
	}

	ix, err := combination.New(p.Alphabet())
	if err != nil {
		return nil, fmt.Errorf("failed to build indexer: %w", err)
	}

	length := p.TotalLength()
	total := ix.Count(length)

	start := new(big.Int).Mul(big.NewInt(int64(p.Page-1)), big.NewInt(int64(p.PageSize)))

	page := &Page{
		Domains:           []Candidate{},
		Page:              p.Page,
		PageSize:          p.PageSize,
		TotalCombinations: total,
	}

	if start.Cmp(total) >= 0 {
		g.logger.Debug("page beyond combination space",
			logger.Int("page", p.Page),
			logger.Int("page_size", p.PageSize),
			logger.Stringer("total", total))
		return page, nil
	}

	began := time.Now()
	candidates := make([]Candidate, 0, p.PageSize)
	keys := make([]string, 0, p.PageSize)

	for s := range ix.Sequence(start, length, p.PageSize) {
		prefix := s[:p.PrefixLength]
		suffix := s[length-p.SuffixLength:]

		candidates = append(candidates, Candidate{Domain: prefix + "." + suffix})
		keys = append(keys, prefix+suffix)
	}

	meaningful, err := g.lookup.Lookup(ctx, keys)
	if err != nil {
		g.logger.Warn("dictionary lookup failed",
			logger.Int("page", p.Page),
			logger.Int("words", len(keys)),
			logger.Error(err))
		return nil, &DependencyError{Words: len(keys), Err: err}
	}

	for i := range candidates {
		candidates[i].IsMeaningful = meaningful[keys[i]]
	}

	if p.FilterMeaningful {
		filtered := candidates[:0]
		for _, c := range candidates {
			if c.IsMeaningful {
				filtered = append(filtered, c)
			}
		}
		candidates = filtered
	}

	page.Domains = candidates

	g.logger.Debug("generated page",
		logger.Int("page", p.Page),
		logger.Int("page_size", p.PageSize),
		logger.Int("returned", len(candidates)),
		logger.Bool("filtered", p.FilterMeaningful),
		logger.Duration("elapsed", time.Since(began)))

	return page, nil
}
