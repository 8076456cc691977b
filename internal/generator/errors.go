package generator

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrDependency matches every failure of the dictionary lookup collaborator.
var ErrDependency = errors.New("dictionary lookup failed")

// ValidationError lists the invalid generation parameters, by field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = msg
}

func (e *ValidationError) Empty() bool { return len(e.Fields) == 0 }

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return "invalid parameters: " + strings.Join(parts, "; ")
}

// DependencyError reports a failed dictionary lookup for a whole page.
type DependencyError struct {
	Words int // number of keys in the failed batch
	Err   error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s for %d words: %v", ErrDependency, e.Words, e.Err)
}

func (e *DependencyError) Unwrap() []error { return []error{ErrDependency, e.Err} }
