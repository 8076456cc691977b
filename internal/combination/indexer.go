package combination

import (
	"errors"
	"fmt"
	"iter"
	"math/big"
)

var (
	// ErrEmptyAlphabet is returned when an Indexer is built without symbols.
	ErrEmptyAlphabet = errors.New("alphabet must not be empty")
	// ErrDuplicateSymbol is returned when the alphabet repeats a symbol.
	ErrDuplicateSymbol = errors.New("alphabet contains duplicate symbol")
	// ErrIndexOutOfRange is returned when an index falls outside [0, size^length).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidLength is returned for negative lengths.
	ErrInvalidLength = errors.New("length must be >= 0")
	// ErrUnknownSymbol is returned by Encode for symbols outside the alphabet.
	ErrUnknownSymbol = errors.New("symbol not in alphabet")
)

// Indexer maps indexes to fixed-length strings over an ordered alphabet.
//
// The mapping is a base-N positional encoding where N is the alphabet size:
// index 0 is the first symbol repeated, and ascending indexes follow the
// alphabet order from the rightmost position. An Indexer is immutable and
// safe for concurrent use.
type Indexer struct {
	symbols  []byte
	position map[byte]int
	base     *big.Int
}

// New builds an Indexer over the given alphabet. Symbols are single bytes.
func New(alphabet string) (*Indexer, error) {
	if alphabet == "" {
		return nil, ErrEmptyAlphabet
	}

	position := make(map[byte]int, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if _, dup := position[c]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, c)
		}
		position[c] = i
	}

	return &Indexer{
		symbols:  []byte(alphabet),
		position: position,
		base:     big.NewInt(int64(len(alphabet))),
	}, nil
}

// Size returns the number of symbols in the alphabet.
func (ix *Indexer) Size() int { return len(ix.symbols) }

// Alphabet returns the ordered alphabet.
func (ix *Indexer) Alphabet() string { return string(ix.symbols) }

// Count returns size^length, the number of distinct strings of that length.
func (ix *Indexer) Count(length int) *big.Int {
	if length < 0 {
		return new(big.Int)
	}
	return new(big.Int).Exp(ix.base, big.NewInt(int64(length)), nil)
}

// Decode returns the string of the given length at position index.
func (ix *Indexer) Decode(index *big.Int, length int) (string, error) {
	if length < 0 {
		return "", ErrInvalidLength
	}
	if index == nil || index.Sign() < 0 || index.Cmp(ix.Count(length)) >= 0 {
		return "", fmt.Errorf("%w: %v for length %d over %d symbols", ErrIndexOutOfRange, index, length, len(ix.symbols))
	}

	digits := ix.digits(index, length)
	out := make([]byte, length)
	for i, d := range digits {
		out[i] = ix.symbols[d]
	}
	return string(out), nil
}

// Encode is the inverse of Decode: it returns the index of s among strings
// of len(s) symbols.
func (ix *Indexer) Encode(s string) (*big.Int, error) {
	index := new(big.Int)
	for i := 0; i < len(s); i++ {
		p, ok := ix.position[s[i]]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, s[i])
		}
		index.Mul(index, ix.base)
		index.Add(index, big.NewInt(int64(p)))
	}
	return index, nil
}

// Sequence yields up to n consecutive strings of the given length, starting
// at index start. It stops early at the end of the combination space.
//
// Only start is decoded with big-integer arithmetic; later strings are
// produced by incrementing the digits in place, so the sequence is identical
// to decoding start, start+1, ... one by one.
func (ix *Indexer) Sequence(start *big.Int, length, n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if n <= 0 || length < 0 || start == nil || start.Sign() < 0 {
			return
		}
		if start.Cmp(ix.Count(length)) >= 0 {
			return
		}

		digits := ix.digits(start, length)
		buf := make([]byte, length)
		for i, d := range digits {
			buf[i] = ix.symbols[d]
		}

		last := len(ix.symbols) - 1
		for emitted := 0; emitted < n; emitted++ {
			if !yield(string(buf)) {
				return
			}

			// Odometer step: carry from the rightmost position.
			pos := length - 1
			for pos >= 0 {
				if digits[pos] < last {
					digits[pos]++
					buf[pos] = ix.symbols[digits[pos]]
					break
				}
				digits[pos] = 0
				buf[pos] = ix.symbols[0]
				pos--
			}
			if pos < 0 {
				// Wrapped past the last string of the space.
				return
			}
		}
	}
}

// digits returns the base-N digits of index, most significant first,
// left-padded with zeros to length. index must already be in range.
func (ix *Indexer) digits(index *big.Int, length int) []int {
	digits := make([]int, length)
	if length == 0 {
		return digits
	}

	if index.IsUint64() {
		rem := index.Uint64()
		base := uint64(len(ix.symbols))
		for i := length - 1; i >= 0; i-- {
			digits[i] = int(rem % base)
			rem /= base
		}
		return digits
	}

	rem := new(big.Int).Set(index)
	mod := new(big.Int)
	for i := length - 1; i >= 0; i-- {
		rem.QuoRem(rem, ix.base, mod)
		digits[i] = int(mod.Int64())
	}
	return digits
}
