package favorites

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MrSnakeDoc/brainstorm/internal/logger"
)

// MaxDomainLength is the DNS limit for a full domain name.
const MaxDomainLength = 253

// ErrInvalidDomain is returned for empty or malformed domains.
var ErrInvalidDomain = errors.New("invalid domain")

// Store persists the favorites list: a flat, insertion-ordered set of
// domain strings.
type Store interface {
	Add(ctx context.Context, domain string) (bool, error)
	Remove(ctx context.Context, domain string) (bool, error)
	List(ctx context.Context) ([]string, error)
	// Backend names the storage for status reporting.
	Backend() string
}

// Service validates domains before handing them to a Store.
type Service struct {
	store  Store
	logger logger.Logger
}

func NewService(store Store, log logger.Logger) *Service {
	return &Service{store: store, logger: log}
}

// Add stores domain. Adding an existing favorite is a no-op.
func (s *Service) Add(ctx context.Context, domain string) error {
	d, err := Normalize(domain)
	if err != nil {
		return err
	}
	added, err := s.store.Add(ctx, d)
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	s.logger.Debug("favorite added",
		logger.String("domain", d),
		logger.Bool("new", added))
	return nil
}

// Remove deletes domain. Removing a missing favorite is a no-op.
func (s *Service) Remove(ctx context.Context, domain string) error {
	d, err := Normalize(domain)
	if err != nil {
		return err
	}
	removed, err := s.store.Remove(ctx, d)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	s.logger.Debug("favorite removed",
		logger.String("domain", d),
		logger.Bool("existed", removed))
	return nil
}

// List returns favorites in insertion order.
func (s *Service) List(ctx context.Context) ([]string, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

// Backend names the underlying store.
func (s *Service) Backend() string { return s.store.Backend() }

// Normalize lowercases domain and checks that it looks like a generated
// domain name: letters, digits, hyphens and at least one dot.
func Normalize(domain string) (string, error) {
	d := strings.ToLower(strings.TrimSpace(domain))
	if d == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidDomain)
	}
	if len(d) > MaxDomainLength {
		return "", fmt.Errorf("%w: longer than %d characters", ErrInvalidDomain, MaxDomainLength)
	}
	if !strings.Contains(d, ".") || strings.HasPrefix(d, ".") || strings.HasSuffix(d, ".") {
		return "", fmt.Errorf("%w: %q must be <name>.<suffix>", ErrInvalidDomain, domain)
	}
	for _, c := range d {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-', c == '.':
		default:
			return "", fmt.Errorf("%w: unexpected character %q", ErrInvalidDomain, c)
		}
	}
	return d, nil
}
