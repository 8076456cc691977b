package generator

import (
	"strconv"
	"strings"
)

const (
	MinSegmentLength = 1
	MaxSegmentLength = 10

	// DefaultPageSize is used when a request does not carry a page size.
	DefaultPageSize = 100
	// MaxPageSize is the hard upper bound for a page. Deployments may lower it.
	MaxPageSize = 1000

	letters = "abcdefghijklmnopqrstuvwxyz"
	digits  = "0123456789"
	hyphen  = "-"
)

// Params are the inputs of one generation call.
type Params struct {
	PrefixLength     int  `json:"prefixLength"`
	SuffixLength     int  `json:"suffixLength"`
	IncludeNumbers   bool `json:"includeNumbers"`
	IncludeHyphens   bool `json:"includeHyphens"`
	Page             int  `json:"page"`
	PageSize         int  `json:"pageSize"`
	FilterMeaningful bool `json:"filterMeaningful"`
}

// Alphabet returns the ordered symbol set: letters, then digits, then hyphen.
func (p Params) Alphabet() string {
	return Alphabet(p.IncludeNumbers, p.IncludeHyphens)
}

// TotalLength is the length of every decoded string.
func (p Params) TotalLength() int {
	return p.PrefixLength + p.SuffixLength
}

// Validate checks p against the bounds. maxPageSize <= 0 means MaxPageSize.
func (p Params) Validate(maxPageSize int) error {
	if maxPageSize <= 0 || maxPageSize > MaxPageSize {
		maxPageSize = MaxPageSize
	}

	verr := &ValidationError{}
	if p.PrefixLength < MinSegmentLength || p.PrefixLength > MaxSegmentLength {
		verr.Add("prefixLength", "must be between "+strconv.Itoa(MinSegmentLength)+" and "+strconv.Itoa(MaxSegmentLength))
	}
	if p.SuffixLength < MinSegmentLength || p.SuffixLength > MaxSegmentLength {
		verr.Add("suffixLength", "must be between "+strconv.Itoa(MinSegmentLength)+" and "+strconv.Itoa(MaxSegmentLength))
	}
	if p.Page < 1 {
		verr.Add("page", "must be >= 1")
	}
	if p.PageSize < 1 || p.PageSize > maxPageSize {
		verr.Add("pageSize", "must be between 1 and "+strconv.Itoa(maxPageSize))
	}

	if verr.Empty() {
		return nil
	}
	return verr
}

// Alphabet builds the ordered alphabet for the given flags.
func Alphabet(includeNumbers, includeHyphens bool) string {
	var b strings.Builder
	b.WriteString(letters)
	if includeNumbers {
		b.WriteString(digits)
	}
	if includeHyphens {
		b.WriteString(hyphen)
	}
	return b.String()
}
