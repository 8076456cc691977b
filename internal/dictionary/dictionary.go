package dictionary

import (
	"context"
	"strings"
	"sync/atomic"

	"golang.org/x/text/cases"
)

// Dictionary is an immutable, case-insensitive set of words.
//
// It is built once from a word list and shared read-only afterwards; a reload
// builds a new Dictionary instead of mutating an existing one.
type Dictionary struct {
	words map[string]struct{}
}

// New builds a Dictionary from raw words. Entries are trimmed and
// case-folded; empty entries are dropped.
func New(words []string) *Dictionary {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if key := normalize(w); key != "" {
			set[key] = struct{}{}
		}
	}
	return &Dictionary{words: set}
}

// Contains reports whether word is in the dictionary, ignoring case.
func (d *Dictionary) Contains(word string) bool {
	if d == nil {
		return false
	}
	_, ok := d.words[normalize(word)]
	return ok
}

// Size returns the number of distinct words.
func (d *Dictionary) Size() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

// Lookup classifies a batch of words. The result is keyed by the caller's
// exact input strings; every input has an entry.
func (d *Dictionary) Lookup(ctx context.Context, words []string) (map[string]bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(words))
	for _, w := range words {
		out[w] = d.Contains(w)
	}
	return out, nil
}

// normalize folds case with a fresh caser; cases.Caser is not safe for
// concurrent use.
func normalize(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	return cases.Fold().String(word)
}

// Holder publishes the current Dictionary to concurrent readers.
// Readers always observe a complete snapshot.
type Holder struct {
	current atomic.Pointer[Dictionary]
}

// NewHolder returns a Holder serving d.
func NewHolder(d *Dictionary) *Holder {
	h := &Holder{}
	h.Store(d)
	return h
}

// Load returns the current snapshot, or nil if none was stored.
func (h *Holder) Load() *Dictionary { return h.current.Load() }

// Store publishes a new snapshot.
func (h *Holder) Store(d *Dictionary) { h.current.Store(d) }

// Lookup classifies words against a single snapshot.
func (h *Holder) Lookup(ctx context.Context, words []string) (map[string]bool, error) {
	d := h.Load()
	if d == nil {
		return nil, ErrNotLoaded
	}
	return d.Lookup(ctx, words)
}
